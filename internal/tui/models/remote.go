// Package models holds the bubbletea model of the interactive terminal. The
// model drives a remote serial session: it opens the port on start, polls
// ReadOnce on a timer, sends input lines with SendOnce and closes the port
// on quit.
package models

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/allbin/serialterm/internal/client"
	"github.com/allbin/serialterm/internal/tui/components"
	"github.com/allbin/serialterm/internal/tui/keys"
	"github.com/allbin/serialterm/internal/tui/styles"
)

// InputMode is the vim-like editing mode
type InputMode int

const (
	InputModeNormal InputMode = iota
	InputModeInsert
)

func (m InputMode) String() string {
	if m == InputModeInsert {
		return "INSERT"
	}
	return "NORMAL"
}

// Remote is the part of client.Client the terminal uses
type Remote interface {
	Open(ctx context.Context, port string, baud uint32) (client.Reply, error)
	ClosePort(ctx context.Context) (client.Reply, error)
	Send(ctx context.Context, content string) (client.Reply, error)
	Read(ctx context.Context) (client.Reply, error)
}

// Messages produced by the model's commands
type (
	OpenedMsg struct {
		Reply client.Reply
		Err   error
	}
	ClosedMsg struct {
		Reply client.Reply
		Err   error
	}
	PollMsg struct{}
	ReadMsg struct {
		At    time.Time
		Reply client.Reply
		Err   error
	}
	SentMsg struct {
		ID    int
		Reply client.Reply
		Err   error
	}
)

// Options configure the terminal
type Options struct {
	Server       string
	Port         string
	Baud         uint32
	PollInterval time.Duration
	CallTimeout  time.Duration
	LineEnding   string
	History      int // entries kept in the log
}

const (
	inputHeight     = 3
	statusBarHeight = 1
)

// Model is the interactive terminal
type Model struct {
	remote Remote
	opts   Options
	now    func() time.Time

	terminal  *components.Terminal
	input     *components.Input
	statusBar *components.StatusBar
	help      help.Model
	keys      keys.Keys

	mode    InputMode
	ready   bool
	open    bool
	paused  bool
	polling bool
	closing bool
	done    bool
}

// New creates a terminal for remote. It does nothing until Init runs.
func New(remote Remote, opts Options) *Model {
	if opts.PollInterval <= 0 {
		opts.PollInterval = 100 * time.Millisecond
	}
	if opts.CallTimeout <= 0 {
		opts.CallTimeout = 5 * time.Second
	}
	if opts.History <= 0 {
		opts.History = 5000
	}

	return &Model{
		remote:    remote,
		opts:      opts,
		now:       time.Now,
		terminal:  components.NewTerminal(0, 0, opts.History),
		input:     components.NewInput(opts.LineEnding),
		statusBar: components.NewStatusBar(opts.Server, opts.Port, opts.Baud),
		help:      help.New(),
		keys:      keys.New(),
	}
}

func (m *Model) IsOpen() bool { return m.open }
func (m *Model) Mode() InputMode { return m.mode }
func (m *Model) Entries() []components.Entry { return m.terminal.Entries() }
func (m *Model) Link() styles.Link { return m.statusBar.Link() }

func (m *Model) call() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), m.opts.CallTimeout)
}

func (m *Model) openCmd() tea.Cmd {
	remote, port, baud := m.remote, m.opts.Port, m.opts.Baud
	return func() tea.Msg {
		ctx, cancel := m.call()
		defer cancel()
		rep, err := remote.Open(ctx, port, baud)
		return OpenedMsg{Reply: rep, Err: err}
	}
}

func (m *Model) closeCmd() tea.Cmd {
	remote := m.remote
	return func() tea.Msg {
		ctx, cancel := m.call()
		defer cancel()
		rep, err := remote.ClosePort(ctx)
		return ClosedMsg{Reply: rep, Err: err}
	}
}

func (m *Model) readCmd() tea.Cmd {
	remote, now := m.remote, m.now
	return func() tea.Msg {
		ctx, cancel := m.call()
		defer cancel()
		rep, err := remote.Read(ctx)
		return ReadMsg{At: now(), Reply: rep, Err: err}
	}
}

func (m *Model) sendCmd(id int, content string) tea.Cmd {
	remote := m.remote
	return func() tea.Msg {
		ctx, cancel := m.call()
		defer cancel()
		rep, err := remote.Send(ctx, content)
		return SentMsg{ID: id, Reply: rep, Err: err}
	}
}

// schedulePoll arms the next ReadOnce. Only one poll is in flight at a time.
func (m *Model) schedulePoll() tea.Cmd {
	if m.polling || !m.open || m.closing {
		return nil
	}
	m.polling = true
	return tea.Tick(m.opts.PollInterval, func(time.Time) tea.Msg { return PollMsg{} })
}

func (m *Model) notice(format string, args ...any) {
	m.terminal.Add(components.Entry{Time: m.now(), Dir: components.Notice, Text: fmt.Sprintf(format, args...)})
}

func (m *Model) Init() tea.Cmd {
	m.statusBar.SetLink(styles.LinkOpening, "opening")
	return m.openCmd()
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.ready = true
		m.terminal.SetSize(msg.Width, msg.Height-inputHeight-statusBarHeight)
		m.input.SetWidth(msg.Width)
		m.statusBar.SetWidth(msg.Width)
		m.help.Width = msg.Width
		return m, nil

	case tea.MouseMsg:
		return m, m.terminal.Update(msg)

	case OpenedMsg:
		switch {
		case msg.Err != nil:
			m.statusBar.SetLink(styles.LinkError, "unreachable")
			m.notice("open failed: %v", msg.Err)
			return m, nil
		case !msg.Reply.Success:
			m.statusBar.SetLink(styles.LinkError, "not opened")
			m.notice("%s", msg.Reply.Content)
			return m, nil
		}
		m.open = true
		m.statusBar.SetLink(styles.LinkOpen, "")
		m.notice("%s", msg.Reply.Content)
		m.mode = InputModeInsert
		m.input.Focus()
		return m, m.schedulePoll()

	case PollMsg:
		m.polling = false
		if !m.open || m.closing {
			return m, nil
		}
		if m.paused {
			return m, m.schedulePoll()
		}
		m.polling = true
		return m, m.readCmd()

	case ReadMsg:
		m.polling = false
		switch {
		case msg.Err != nil:
			m.statusBar.SetLink(styles.LinkError, "read failed")
			m.notice("read: %v", msg.Err)
		case !msg.Reply.Success:
			m.statusBar.SetLink(styles.LinkError, msg.Reply.Content)
		default:
			if m.statusBar.Link() != styles.LinkOpen {
				m.statusBar.SetLink(styles.LinkOpen, "")
			}
			if msg.Reply.Content != "" {
				m.terminal.Add(components.Entry{Time: msg.At, Dir: components.RX, Data: []byte(msg.Reply.Content)})
			}
		}
		return m, m.schedulePoll()

	case SentMsg:
		switch {
		case msg.Err != nil:
			m.terminal.SetStatus(msg.ID, components.TXFailed)
			m.notice("send: %v", msg.Err)
		case !msg.Reply.Success:
			m.terminal.SetStatus(msg.ID, components.TXFailed)
			m.notice("%s", msg.Reply.Content)
		default:
			m.terminal.SetStatus(msg.ID, components.TXSent)
		}
		return m, nil

	case ClosedMsg:
		m.open = false
		m.done = true
		return m, tea.Quit

	case tea.KeyMsg:
		if m.closing {
			return m, nil
		}
		if m.mode == InputModeInsert {
			return m, m.updateInsert(msg)
		}
		return m, m.updateNormal(msg)
	}

	return m, nil
}

func (m *Model) quit() tea.Cmd {
	if !m.open {
		m.done = true
		return tea.Quit
	}
	m.closing = true
	m.statusBar.SetLink(styles.LinkClosed, "closing")
	return m.closeCmd()
}

func (m *Model) updateInsert(msg tea.KeyMsg) tea.Cmd {
	switch {
	case msg.Type == tea.KeyCtrlC:
		return m.quit()
	case key.Matches(msg, m.keys.Escape):
		m.mode = InputModeNormal
		m.input.Blur()
		return nil
	case key.Matches(msg, m.keys.ToggleSendMode):
		m.input.ToggleSendingMode()
		return nil
	case key.Matches(msg, m.keys.HistoryUp):
		m.input.HistoryUp()
		return nil
	case key.Matches(msg, m.keys.HistoryDown):
		m.input.HistoryDown()
		return nil
	case key.Matches(msg, m.keys.Enter):
		return m.send()
	}
	return m.input.Update(msg)
}

func (m *Model) send() tea.Cmd {
	if !m.open {
		m.notice("port is not open")
		return nil
	}

	content, wire, err := m.input.Payload()
	if errors.Is(err, components.ErrEmptyInput) {
		return nil
	}
	if err != nil {
		m.notice("invalid input: %v", err)
		return nil
	}

	id := m.terminal.Add(components.Entry{Time: m.now(), Dir: components.TX, Data: wire, Status: components.TXPending})
	m.input.AddToHistory(m.input.Value())
	m.input.SetValue("")
	return m.sendCmd(id, content)
}

func (m *Model) updateNormal(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m.quit()
	case key.Matches(msg, m.keys.Insert):
		m.mode = InputModeInsert
		m.input.Focus()
	case key.Matches(msg, m.keys.Clear):
		m.terminal.Clear()
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
	case key.Matches(msg, m.keys.ToggleHex):
		m.terminal.ToggleHex()
	case key.Matches(msg, m.keys.ToggleASCII):
		m.terminal.ToggleASCII()
	case key.Matches(msg, m.keys.ToggleSendMode):
		m.input.ToggleSendingMode()
	case key.Matches(msg, m.keys.Pause):
		m.paused = !m.paused
		m.statusBar.SetPaused(m.paused)
		if !m.paused {
			return m.schedulePoll()
		}
	}
	return nil
}

func (m *Model) View() string {
	if m.done {
		return ""
	}

	content := "Initializing..."
	if m.ready {
		content = m.terminal.View()
	}

	parts := []string{
		styles.ContentBorderStyle.Render(content),
		m.input.View(m.mode == InputModeInsert),
		m.statusBar.View(m.mode.String(), m.input.Mode().String(), m.now().Format("15:04:05")),
	}
	if m.help.ShowAll {
		parts = append(parts, m.help.View(m.keys))
	}
	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}
