/*
Copyright © 2025 Mathias Djärv <mathias.djarv@allbinary.se>
*/
package cmd

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/allbin/serialterm/internal/client"
)

var closeCmd = &cobra.Command{
	Use:   "close",
	Short: "Close the port open on the server",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return withClient(cmd, func(ctx context.Context, c *client.Client) error {
			rep, err := c.ClosePort(ctx)
			if err != nil {
				return err
			}
			return printReply(cmd, rep)
		})
	},
}

func init() {
	rootCmd.AddCommand(closeCmd)
	addClientFlags(closeCmd)
}
