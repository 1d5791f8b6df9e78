/*
Copyright © 2025 Mathias Djärv <mathias.djarv@allbinary.se>
*/
package cmd

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/allbin/serialterm/internal/client"
)

var pingCmd = &cobra.Command{
	Use:   "ping",
	Short: "Check that a serialterm server is reachable",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return withClient(cmd, func(ctx context.Context, c *client.Client) error {
			start := time.Now()
			pong, err := c.Ping(ctx)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s %s %s\n",
				successStyle.Render("✓"), pong, infoStyle.Render(time.Since(start).Round(time.Microsecond).String()))
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(pingCmd)
	addClientFlags(pingCmd)
}
