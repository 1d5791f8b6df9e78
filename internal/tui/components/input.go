package components

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/allbin/serialterm/internal/session"
	"github.com/allbin/serialterm/internal/tui/styles"
)

type SendingMode int

const (
	SendingModeASCII SendingMode = iota
	SendingModeHex
)

func (s SendingMode) String() string {
	if s == SendingModeHex {
		return "HEX"
	}
	return "ASCII"
}

const historyLimit = 100

var ErrEmptyInput = errors.New("empty input")

// Input is the line editor at the bottom of the terminal
type Input struct {
	textInput    textinput.Model
	mode         SendingMode
	lineEnding   string
	history      []string
	historyIndex int
	draft        string
	width        int
}

// NewInput creates an input in ASCII mode. lineEnding is appended to ASCII
// lines before they are sent.
func NewInput(lineEnding string) *Input {
	ti := textinput.New()
	ti.CharLimit = 512
	ti.Prompt = ""

	in := &Input{textInput: ti, lineEnding: lineEnding, historyIndex: -1}
	in.setPlaceholder()
	return in
}

func (i *Input) setPlaceholder() {
	if i.mode == SendingModeHex {
		i.textInput.Placeholder = "hex bytes, e.g. 02 06 00 03 or 02060003"
	} else {
		i.textInput.Placeholder = "text, 0xHH escapes allowed"
	}
}

func (i *Input) SetWidth(width int) {
	i.width = width
	// border, padding, prompt and a space
	i.textInput.Width = max(width-6, 20)
}

func (i *Input) Focus() { i.textInput.Focus() }
func (i *Input) Blur() { i.textInput.Blur() }
func (i *Input) Value() string { return i.textInput.Value() }
func (i *Input) SetValue(v string) { i.textInput.SetValue(v) }
func (i *Input) Mode() SendingMode { return i.mode }

func (i *Input) ToggleSendingMode() {
	if i.mode == SendingModeASCII {
		i.mode = SendingModeHex
	} else {
		i.mode = SendingModeASCII
	}
	i.setPlaceholder()
}

// Payload converts the current line into SendOnce content and the bytes the
// server will write for it. Hex input is turned into 0xHH escapes.
func (i *Input) Payload() (content string, wire []byte, err error) {
	line := i.textInput.Value()
	if strings.TrimSpace(line) == "" {
		return "", nil, ErrEmptyInput
	}

	if i.mode == SendingModeHex {
		data, err := ParseHex(line)
		if err != nil {
			return "", nil, err
		}
		return session.Escape(data), data, nil
	}

	content = line + i.lineEnding
	return content, session.ExpandEscapes(content), nil
}

// ParseHex accepts space separated or continuous hex digits, with optional
// 0x prefixes per byte
func ParseHex(s string) ([]byte, error) {
	clean := strings.NewReplacer(" ", "", "\t", "", "0x", "", "0X", "").Replace(s)
	if clean == "" {
		return nil, ErrEmptyInput
	}
	if len(clean)%2 != 0 {
		return nil, fmt.Errorf("hex string must have an even number of digits (got %d)", len(clean))
	}

	out := make([]byte, 0, len(clean)/2)
	for n := 0; n < len(clean); n += 2 {
		b, err := strconv.ParseUint(clean[n:n+2], 16, 8)
		if err != nil {
			return nil, fmt.Errorf("invalid hex byte %q", clean[n:n+2])
		}
		out = append(out, byte(b))
	}
	return out, nil
}

func (i *Input) Update(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	i.textInput, cmd = i.textInput.Update(msg)
	return cmd
}

// View renders the input box. Outside insert mode it shows a hint instead of
// the editor.
func (i *Input) View(insert bool) string {
	prompt := lipgloss.NewStyle().Bold(true).Foreground(styles.Green).Render(">")
	if i.mode == SendingModeHex {
		prompt = lipgloss.NewStyle().Bold(true).Foreground(styles.Yellow).Render("#")
	}

	body := styles.HintStyle.Render("Press 'i' to enter insert mode")
	if insert {
		body = i.textInput.View()
	}

	style := styles.InputStyle.
		Width(max(i.width-4, 10)).
		AlignHorizontal(lipgloss.Left)
	if insert {
		style = style.BorderForeground(styles.Green)
	}
	return style.Render(lipgloss.JoinHorizontal(lipgloss.Left, prompt, " ", body))
}

// AddToHistory records a sent line, skipping blanks and repeats
func (i *Input) AddToHistory(line string) {
	line = strings.TrimSpace(line)
	i.historyIndex = -1
	i.draft = ""
	if line == "" || (len(i.history) > 0 && i.history[len(i.history)-1] == line) {
		return
	}

	i.history = append(i.history, line)
	if len(i.history) > historyLimit {
		i.history = i.history[1:]
	}
}

func (i *Input) HistoryUp() {
	if len(i.history) == 0 {
		return
	}

	if i.historyIndex == -1 {
		i.draft = i.textInput.Value()
		i.historyIndex = len(i.history) - 1
	} else if i.historyIndex > 0 {
		i.historyIndex--
	}
	i.textInput.SetValue(i.history[i.historyIndex])
}

func (i *Input) HistoryDown() {
	if i.historyIndex == -1 {
		return
	}

	if i.historyIndex < len(i.history)-1 {
		i.historyIndex++
		i.textInput.SetValue(i.history[i.historyIndex])
		return
	}
	i.historyIndex = -1
	i.textInput.SetValue(i.draft)
	i.draft = ""
}
