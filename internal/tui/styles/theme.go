package styles

import "github.com/charmbracelet/lipgloss"

// Catppuccin Mocha
var (
	Base     = lipgloss.Color("#1e1e2e")
	Surface0 = lipgloss.Color("#313244")
	Surface1 = lipgloss.Color("#45475a")
	Surface2 = lipgloss.Color("#585b70")
	Overlay0 = lipgloss.Color("#6c7086")
	Subtext0 = lipgloss.Color("#a6adc8")
	Subtext1 = lipgloss.Color("#bac2de")
	Text     = lipgloss.Color("#cdd6f4")

	Blue   = lipgloss.Color("#89b4fa")
	Sky    = lipgloss.Color("#89dceb")
	Green  = lipgloss.Color("#a6e3a1")
	Yellow = lipgloss.Color("#f9e2af")
	Peach  = lipgloss.Color("#fab387")
	Red    = lipgloss.Color("#f38ba8")
	Mauve  = lipgloss.Color("#cba6f7")
)

var (
	ContentBorderStyle = lipgloss.NewStyle().
				BorderTop(true).
				BorderStyle(lipgloss.NormalBorder()).
				BorderForeground(Surface1)

	InputStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(Surface2).
			Padding(0, 1)

	TimestampStyle = lipgloss.NewStyle().Foreground(Subtext0)
	NoticeStyle    = lipgloss.NewStyle().Foreground(Overlay0).Italic(true)
	HintStyle      = lipgloss.NewStyle().Foreground(Overlay0)
)

// Link is the state of the remote port as shown in the status bar
type Link int

const (
	LinkOpening Link = iota
	LinkOpen
	LinkClosed
	LinkError
)

// LinkStyle returns the indicator style for a link state
func LinkStyle(l Link) lipgloss.Style {
	switch l {
	case LinkOpen:
		return lipgloss.NewStyle().Foreground(Green)
	case LinkOpening:
		return lipgloss.NewStyle().Foreground(Yellow)
	default:
		return lipgloss.NewStyle().Foreground(Red)
	}
}

// LinkSymbol returns the single-character indicator for a link state
func LinkSymbol(l Link) string {
	switch l {
	case LinkOpen:
		return "●"
	case LinkError:
		return "✗"
	default:
		return "○"
	}
}
