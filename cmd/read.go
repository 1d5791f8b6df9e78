/*
Copyright © 2025 Mathias Djärv <mathias.djarv@allbinary.se>
*/
package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/allbin/serialterm/internal/client"
	"github.com/allbin/serialterm/internal/tui/components"
)

var readCmd = &cobra.Command{
	Use:   "read",
	Short: "Read once from the open port",
	Long: `Perform one bounded read on the port currently open on the server and
print what arrived. An empty result means nothing was waiting.

Example usage:
  serialterm read
  serialterm read --hex`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		hexMode, _ := cmd.Flags().GetBool("hex")

		return withClient(cmd, func(ctx context.Context, c *client.Client) error {
			rep, err := c.Read(ctx)
			if err != nil {
				return err
			}
			if !rep.Success {
				return printReply(cmd, rep)
			}

			out := cmd.OutOrStdout()
			if hexMode {
				data := []byte(rep.Content)
				fmt.Fprintf(out, "% X  %s\n", data, components.Printable(data))
				return nil
			}
			fmt.Fprint(out, rep.Content)
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(readCmd)
	addClientFlags(readCmd)
	readCmd.Flags().BoolP("hex", "x", false, "Print the bytes as hex")
}
