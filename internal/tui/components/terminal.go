package components

import (
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
)

// Terminal is a scrolling viewport over the traffic log. It owns the
// entries so toggling the display mode can re-render history.
type Terminal struct {
	viewport  viewport.Model
	formatter *DataFormatter
	entries   []Entry
	limit     int
	nextID    int
}

// NewTerminal creates a terminal keeping at most limit entries
func NewTerminal(width, height, limit int) *Terminal {
	return &Terminal{
		viewport:  viewport.New(width, height),
		formatter: NewDataFormatter(true, true),
		limit:     limit,
	}
}

func (t *Terminal) SetSize(width, height int) {
	t.viewport.Width = width
	t.viewport.Height = max(height, 1)
	t.refresh()
}

func (t *Terminal) Width() int {
	return t.viewport.Width
}

// Add appends an entry and returns its ID for later updates
func (t *Terminal) Add(e Entry) int {
	t.nextID++
	e.ID = t.nextID
	t.entries = append(t.entries, e)
	if t.limit > 0 && len(t.entries) > t.limit {
		t.entries = t.entries[len(t.entries)-t.limit:]
	}
	t.refresh()
	return e.ID
}

// SetStatus updates the status of a TX entry. IDs of entries that have been
// trimmed from the log are ignored.
func (t *Terminal) SetStatus(id int, status TXStatus) {
	for i := len(t.entries) - 1; i >= 0; i-- {
		if t.entries[i].ID == id {
			t.entries[i].Status = status
			t.refresh()
			return
		}
	}
}

func (t *Terminal) Entries() []Entry {
	return t.entries
}

func (t *Terminal) Clear() {
	t.entries = nil
	t.refresh()
}

func (t *Terminal) ToggleHex() {
	t.formatter.ToggleHex()
	t.refresh()
}

func (t *Terminal) ToggleASCII() {
	t.formatter.ToggleASCII()
	t.refresh()
}

func (t *Terminal) Mode() DisplayMode {
	return t.formatter.Mode()
}

func (t *Terminal) refresh() {
	t.viewport.SetContent(strings.Join(t.formatter.FormatAll(t.entries), "\n"))
	t.viewport.GotoBottom()
}

// Update forwards only mouse and resize events so key bindings stay ours
func (t *Terminal) Update(msg tea.Msg) tea.Cmd {
	switch msg.(type) {
	case tea.WindowSizeMsg, tea.MouseMsg:
		var cmd tea.Cmd
		t.viewport, cmd = t.viewport.Update(msg)
		return cmd
	}
	return nil
}

func (t *Terminal) View() string {
	return t.viewport.View()
}
