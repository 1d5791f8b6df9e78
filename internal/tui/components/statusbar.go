package components

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"github.com/allbin/serialterm/internal/tui/styles"
)

// StatusBar is the bottom line of the terminal, laid out like a vim
// statusline: mode, port and link on the left, server and clock on the right
type StatusBar struct {
	server string
	port   string
	baud   uint32
	link   styles.Link
	detail string
	paused bool
	width  int
}

func NewStatusBar(server, port string, baud uint32) *StatusBar {
	return &StatusBar{server: server, port: port, baud: baud, link: styles.LinkOpening}
}

func (sb *StatusBar) SetWidth(width int) { sb.width = width }

// SetLink records the link state and a short description of it
func (sb *StatusBar) SetLink(link styles.Link, detail string) {
	sb.link = link
	sb.detail = detail
}

func (sb *StatusBar) Link() styles.Link { return sb.link }
func (sb *StatusBar) Detail() string { return sb.detail }

func (sb *StatusBar) SetPaused(paused bool) { sb.paused = paused }

func (sb *StatusBar) View(inputMode, sendingMode string, clock string) string {
	width := sb.width
	if width <= 0 {
		width = 80
	}

	modeBg := styles.Blue
	if inputMode == "INSERT" {
		modeBg = styles.Green
	}
	mode := lipgloss.NewStyle().
		Foreground(styles.Base).
		Background(modeBg).
		Bold(true).
		Padding(0, 1).
		Render(inputMode)

	port := lipgloss.NewStyle().Foreground(styles.Mauve).Bold(true).Padding(0, 1).Render(sb.port)
	link := styles.LinkStyle(sb.link).Render(styles.LinkSymbol(sb.link))
	divider := lipgloss.NewStyle().Foreground(styles.Surface2).Padding(0, 1).Render("│")

	left := []string{mode, port, link}
	if inputMode == "INSERT" {
		left = append(left, lipgloss.NewStyle().
			Foreground(styles.Peach).
			Bold(true).
			Padding(0, 1).
			Render(fmt.Sprintf("[%s] Tab to toggle", sendingMode)))
	}
	if sb.paused {
		left = append(left, lipgloss.NewStyle().Foreground(styles.Yellow).Padding(0, 1).Render("PAUSED"))
	}
	if sb.detail != "" {
		left = append(left, lipgloss.NewStyle().Foreground(styles.Subtext0).Padding(0, 1).Render(sb.detail))
	}
	left = append(left, divider)
	leftSide := lipgloss.JoinHorizontal(lipgloss.Left, left...)

	info := lipgloss.NewStyle().
		Foreground(styles.Subtext0).
		Padding(0, 1).
		Render(fmt.Sprintf("⚡ %d baud via %s", sb.baud, sb.server))
	clockView := lipgloss.NewStyle().Foreground(styles.Subtext1).Padding(0, 1).Render(clock)
	rightSide := lipgloss.JoinHorizontal(lipgloss.Left, info, divider, clockView)

	spacer := lipgloss.NewStyle().
		Width(max(width-lipgloss.Width(leftSide)-lipgloss.Width(rightSide), 1)).
		Render("")

	return lipgloss.NewStyle().
		Foreground(styles.Text).
		Background(styles.Surface0).
		Width(width).
		Render(lipgloss.JoinHorizontal(lipgloss.Left, leftSide, spacer, rightSide))
}
