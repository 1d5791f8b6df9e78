/*
Copyright © 2025 Mathias Djärv <mathias.djarv@allbinary.se>
*/
package cmd

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/allbin/serialterm/internal/client"
	"github.com/allbin/serialterm/internal/config"
	"github.com/allbin/serialterm/internal/tui/models"
)

var lineEndings = map[string]string{
	"none": "",
	"lf":   "\n",
	"cr":   "\r",
	"crlf": "\r\n",
}

var connectCmd = &cobra.Command{
	Use:   "connect <port>",
	Short: "Interactive terminal on a server-side serial port",
	Long: `Open a port on the server and drive it from an interactive terminal.

The terminal polls ReadOnce on an interval and shows received and sent data
with timestamps in hex and ASCII. Lines typed in insert mode are sent with
SendOnce, either as text or, in hex mode, as raw bytes. Quitting closes the
port on the server.

Keys:
  i / esc    insert / normal mode
  tab        toggle ASCII / HEX sending
  h / a      toggle hex / ascii display
  p          pause polling
  q          close the port and quit

Example usage:
  serialterm connect /dev/ttyUSB0
  serialterm connect COM3 --baud 9600 --poll 50ms --eol crlf`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		baud, _ := cmd.Flags().GetUint32("baud")
		poll, _ := cmd.Flags().GetDuration("poll")
		eol, _ := cmd.Flags().GetString("eol")

		ending, ok := lineEndings[strings.ToLower(eol)]
		if !ok {
			return fmt.Errorf("unknown line ending %q, want none, lf, cr or crlf", eol)
		}

		addr := settings.GetString(config.KeyServer)
		c, err := client.Dial(addr)
		if err != nil {
			return err
		}
		defer c.Close()

		m := models.New(c, models.Options{
			Server:       addr,
			Port:         args[0],
			Baud:         baud,
			PollInterval: poll,
			CallTimeout:  settings.GetDuration(config.KeyTimeout),
			LineEnding:   ending,
		})

		p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseCellMotion(), tea.WithContext(cmd.Context()))
		_, err = p.Run()
		return err
	},
}

func init() {
	rootCmd.AddCommand(connectCmd)
	addClientFlags(connectCmd)
	connectCmd.Flags().Uint32P("baud", "b", 115200, "Baud rate")
	connectCmd.Flags().Duration("poll", 100*time.Millisecond, "ReadOnce polling interval")
	connectCmd.Flags().String("eol", "lf", "Line ending for ASCII input: none, lf, cr, crlf")
}
