package components

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/allbin/serialterm/internal/tui/styles"
)

// Direction of a traffic entry
type Direction int

const (
	RX Direction = iota
	TX
	Notice
)

// TXStatus tracks a SendOnce call through its lifecycle
type TXStatus int

const (
	TXPending TXStatus = iota
	TXSent
	TXFailed
)

// Entry is one line of terminal traffic
type Entry struct {
	ID     int
	Time   time.Time
	Dir    Direction
	Data   []byte
	Status TXStatus
	Text   string // notices only
}

type DisplayMode struct {
	ShowHex   bool
	ShowASCII bool
}

// DataFormatter renders entries as hex and/or printable ASCII
type DataFormatter struct {
	mode DisplayMode
}

func NewDataFormatter(showHex, showASCII bool) *DataFormatter {
	return &DataFormatter{mode: DisplayMode{ShowHex: showHex, ShowASCII: showASCII}}
}

func (df *DataFormatter) Mode() DisplayMode {
	return df.mode
}

func (df *DataFormatter) ToggleHex() {
	df.mode.ShowHex = !df.mode.ShowHex
}

func (df *DataFormatter) ToggleASCII() {
	df.mode.ShowASCII = !df.mode.ShowASCII
}

// Printable replaces every byte outside printable ASCII with '.'
func Printable(data []byte) string {
	var b strings.Builder
	b.Grow(len(data))
	for _, c := range data {
		if c >= 32 && c <= 126 {
			b.WriteByte(c)
		} else {
			b.WriteByte('.')
		}
	}
	return b.String()
}

func (df *DataFormatter) body(e Entry) string {
	var parts []string
	if df.mode.ShowHex {
		parts = append(parts, fmt.Sprintf("HEX: % X", e.Data))
	}
	if df.mode.ShowASCII {
		parts = append(parts, "ASCII: "+Printable(e.Data))
	}
	if len(parts) == 0 {
		parts = append(parts, fmt.Sprintf("BYTES: %d", len(e.Data)))
	}
	return strings.Join(parts, "  ")
}

func indicator(e Entry) string {
	style := lipgloss.NewStyle().Bold(true)
	switch e.Dir {
	case TX:
		switch e.Status {
		case TXSent:
			return style.Foreground(styles.Green).Render("↗ TX ✓")
		case TXFailed:
			return style.Foreground(styles.Red).Render("↗ TX ✗")
		default:
			return style.Foreground(styles.Yellow).Render("↗ TX ○")
		}
	case RX:
		return style.Foreground(styles.Sky).Render("↙ RX")
	default:
		return style.Foreground(styles.Mauve).Render("• ")
	}
}

// Format renders a single entry
func (df *DataFormatter) Format(e Entry) string {
	ts := styles.TimestampStyle.Render("[" + e.Time.Format("15:04:05.000") + "]")
	if e.Dir == Notice {
		return fmt.Sprintf("%s %s%s", ts, indicator(e), styles.NoticeStyle.Render(e.Text))
	}
	return fmt.Sprintf("%s %s: %s", ts, indicator(e), df.body(e))
}

// FormatAll renders entries in order
func (df *DataFormatter) FormatAll(entries []Entry) []string {
	out := make([]string, len(entries))
	for i, e := range entries {
		out[i] = df.Format(e)
	}
	return out
}
