/*
Copyright © 2025 Mathias Djärv <mathias.djarv@allbinary.se>
*/
package cmd

import (
	"context"
	"fmt"
	"io"
	"path"

	"github.com/charmbracelet/lipgloss"
	"github.com/evertras/bubble-table/table"
	"github.com/spf13/cobra"

	"github.com/allbin/serialterm/internal/client"
	"github.com/allbin/serialterm/internal/driver"
)

// portsCmd lists the ports the server can see
var portsCmd = &cobra.Command{
	Use:     "ports",
	Aliases: []string{"list"},
	Short:   "List serial ports available on the server",
	Long: `List the serial ports the server's driver can enumerate.

The list comes from GetPortList and does not depend on whether a port is
currently open.

Example usage:
  serialterm ports
  serialterm ports --table --server 10.0.0.5:3333`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		tableFormat, _ := cmd.Flags().GetBool("table")

		return withClient(cmd, func(ctx context.Context, c *client.Client) error {
			ports, err := c.Ports(ctx)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if len(ports) == 0 {
				fmt.Fprintln(out, "No serial ports found")
				return nil
			}
			if tableFormat {
				renderTable(out, ports)
				return nil
			}
			for _, p := range ports {
				fmt.Fprintln(out, p)
			}
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(portsCmd)
	addClientFlags(portsCmd)
	portsCmd.Flags().Bool("table", false, "Display output in a styled table")
}

const (
	columnPort = "port"
	columnName = "name"
	columnType = "type"
)

// portTable builds the table shown by ports --table
func portTable(ports []string) table.Model {
	rows := make([]table.Row, 0, len(ports))
	for _, p := range ports {
		rows = append(rows, table.NewRow(table.RowData{
			columnPort: p,
			columnName: path.Base(p),
			columnType: driver.DescribePort(p),
		}))
	}

	return table.New([]table.Column{
		table.NewColumn(columnPort, "Port", 24),
		table.NewColumn(columnName, "Name", 14),
		table.NewColumn(columnType, "Type", 36),
	}).
		WithRows(rows).
		BorderRounded().
		HeaderStyle(lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("99"))).
		WithBaseStyle(lipgloss.NewStyle().Align(lipgloss.Left))
}

func renderTable(w io.Writer, ports []string) {
	fmt.Fprintf(w, "Found %d serial port(s):\n", len(ports))
	fmt.Fprintln(w, portTable(ports).View())
}
