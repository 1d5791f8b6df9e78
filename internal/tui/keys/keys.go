package keys

import "github.com/charmbracelet/bubbles/key"

// Keys are the bindings of the interactive terminal. Normal mode scrolls and
// toggles the display; insert mode edits and sends the input line.
type Keys struct {
	Quit   key.Binding
	Help   key.Binding
	Insert key.Binding
	Escape key.Binding

	Clear       key.Binding
	ToggleHex   key.Binding
	ToggleASCII key.Binding
	Pause       key.Binding

	Enter          key.Binding
	ToggleSendMode key.Binding
	HistoryUp      key.Binding
	HistoryDown    key.Binding
}

func New() Keys {
	return Keys{
		Quit: key.NewBinding(
			key.WithKeys("q", "Q", "ctrl+c"),
			key.WithHelp("q/ctrl+c", "close port and quit"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "toggle help"),
		),
		Insert: key.NewBinding(
			key.WithKeys("i", "I"),
			key.WithHelp("i", "insert mode"),
		),
		Escape: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "normal mode"),
		),
		Clear: key.NewBinding(
			key.WithKeys("c"),
			key.WithHelp("c", "clear"),
		),
		ToggleHex: key.NewBinding(
			key.WithKeys("h"),
			key.WithHelp("h", "toggle hex"),
		),
		ToggleASCII: key.NewBinding(
			key.WithKeys("a"),
			key.WithHelp("a", "toggle ascii"),
		),
		Pause: key.NewBinding(
			key.WithKeys("p"),
			key.WithHelp("p", "pause polling"),
		),
		Enter: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "send"),
		),
		ToggleSendMode: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "ascii/hex"),
		),
		HistoryUp: key.NewBinding(
			key.WithKeys("up"),
			key.WithHelp("↑", "previous"),
		),
		HistoryDown: key.NewBinding(
			key.WithKeys("down"),
			key.WithHelp("↓", "next"),
		),
	}
}

func (k Keys) ShortHelp() []key.Binding {
	return []key.Binding{k.Help, k.Insert, k.Enter, k.Pause, k.Quit}
}

func (k Keys) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Insert, k.Escape, k.Enter, k.ToggleSendMode},
		{k.HistoryUp, k.HistoryDown, k.Clear, k.Pause},
		{k.ToggleHex, k.ToggleASCII, k.Help, k.Quit},
	}
}
