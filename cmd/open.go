/*
Copyright © 2025 Mathias Djärv <mathias.djarv@allbinary.se>
*/
package cmd

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/allbin/serialterm/internal/client"
)

var openCmd = &cobra.Command{
	Use:   "open <port>",
	Short: "Open a serial port on the server",
	Long: `Open a serial port on the server with the given baud rate.

Only one port can be open at a time; opening a second one fails until the
first is closed.

Example usage:
  serialterm open /dev/ttyUSB0
  serialterm open COM3 --baud 9600`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		baud, _ := cmd.Flags().GetUint32("baud")

		return withClient(cmd, func(ctx context.Context, c *client.Client) error {
			rep, err := c.Open(ctx, args[0], baud)
			if err != nil {
				return err
			}
			return printReply(cmd, rep)
		})
	},
}

func init() {
	rootCmd.AddCommand(openCmd)
	addClientFlags(openCmd)
	openCmd.Flags().Uint32P("baud", "b", 115200, "Baud rate")
}
