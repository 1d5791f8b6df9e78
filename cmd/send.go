/*
Copyright © 2025 Mathias Djärv <mathias.djarv@allbinary.se>
*/
package cmd

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/allbin/serialterm/internal/client"
	"github.com/allbin/serialterm/internal/session"
	"github.com/allbin/serialterm/internal/tui/components"
)

var sendCmd = &cobra.Command{
	Use:   "send [content]",
	Short: "Write a payload to the open port",
	Long: `Write a payload to the port currently open on the server.

Content can be given as an argument or piped on stdin. The server expands
0xHH escapes, so binary bytes can be written as text.

--hex turns the digits into 0xHH escapes and relies on that expansion. A server
running with SERIALTERM_ESCAPE_PAYLOAD=false writes the escapes as literal
text instead.

Example usage:
  serialterm send "AT+GMR" --newline
  serialterm send "0x020x060x00"
  serialterm send --hex "02 06 00 03"
  echo "test" | serialterm send`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		addNewline, _ := cmd.Flags().GetBool("newline")
		hexMode, _ := cmd.Flags().GetBool("hex")

		content, err := sendContent(cmd.InOrStdin(), args)
		if err != nil {
			return err
		}
		content, err = sendPayload(content, hexMode, addNewline)
		if err != nil {
			return err
		}

		return withClient(cmd, func(ctx context.Context, c *client.Client) error {
			rep, err := c.Send(ctx, content)
			if err != nil {
				return err
			}
			return printReply(cmd, rep)
		})
	},
}

func init() {
	rootCmd.AddCommand(sendCmd)
	addClientFlags(sendCmd)
	sendCmd.Flags().BoolP("newline", "n", false, "Add a newline to the end of the content")
	sendCmd.Flags().BoolP("hex", "x", false, "Interpret content as hex digits (e.g. '48656c6c6f')")
}

// sendPayload builds the SendOnce content. In hex mode the bytes, and the
// newline when asked for, go out as 0xHH escapes.
func sendPayload(content string, hexMode, addNewline bool) (string, error) {
	if !hexMode {
		if addNewline {
			content += "\n"
		}
		return content, nil
	}

	data, err := components.ParseHex(content)
	if err != nil {
		return "", fmt.Errorf("invalid hex data: %w", err)
	}
	if addNewline {
		data = append(data, '\n')
	}
	return session.Escape(data), nil
}

// sendContent returns the argument, or stdin when no argument is given and
// stdin is not a terminal
func sendContent(stdin io.Reader, args []string) (string, error) {
	if len(args) == 1 {
		return args[0], nil
	}

	if f, ok := stdin.(*os.File); ok {
		stat, err := f.Stat()
		if err != nil || stat.Mode()&os.ModeCharDevice != 0 {
			return "", fmt.Errorf("no content given")
		}
	}

	data, err := io.ReadAll(stdin)
	if err != nil {
		return "", fmt.Errorf("reading stdin: %w", err)
	}
	return strings.TrimRight(string(data), "\r\n"), nil
}
