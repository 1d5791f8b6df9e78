/*
Copyright © 2025 Mathias Djärv <mathias.djarv@allbinary.se>
*/
package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/allbin/serialterm/internal/client"
	"github.com/allbin/serialterm/internal/config"
)

// addClientFlags adds --server and --timeout to a client subcommand and
// binds them to settings when the command runs
func addClientFlags(cmd *cobra.Command) {
	cmd.Flags().StringP("server", "s", config.DefaultServer, "Server address (env SERIALTERM_SERVER)")
	cmd.Flags().DurationP("timeout", "t", config.DefaultCallTimeout, "Per-call timeout (env SERIALTERM_TIMEOUT)")

	cmd.PreRunE = func(cmd *cobra.Command, args []string) error {
		if err := settings.BindPFlag(config.KeyServer, cmd.Flags().Lookup("server")); err != nil {
			return err
		}
		return settings.BindPFlag(config.KeyTimeout, cmd.Flags().Lookup("timeout"))
	}
}

// withClient dials the configured server and runs fn with a call deadline
func withClient(cmd *cobra.Command, fn func(ctx context.Context, c *client.Client) error) error {
	addr := settings.GetString(config.KeyServer)
	c, err := client.Dial(addr)
	if err != nil {
		return err
	}
	defer c.Close()

	ctx, cancel := context.WithTimeout(cmd.Context(), settings.GetDuration(config.KeyTimeout))
	defer cancel()

	if err := fn(ctx, c); err != nil {
		return fmt.Errorf("%s: %w", addr, err)
	}
	return nil
}

// printReply prints the reply content and turns success=false into errFailed
func printReply(cmd *cobra.Command, rep client.Reply) error {
	if !rep.Success {
		fmt.Fprintf(cmd.ErrOrStderr(), "%s %s\n", errorStyle.Render("✗"), rep.Content)
		return errFailed
	}
	fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", successStyle.Render("✓"), rep.Content)
	return nil
}
