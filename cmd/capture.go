/*
Copyright © 2025 Mathias Djärv <mathias.djarv@allbinary.se>
*/
package cmd

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/allbin/serialterm/internal/client"
	"github.com/allbin/serialterm/internal/config"
)

var captureCmd = &cobra.Command{
	Use:   "capture <output-file>",
	Short: "Poll the open port and append everything read to a file",
	Long: `Capture data from the port currently open on the server to a file.

Calls ReadOnce on an interval and appends every non-empty result to the output
file. Runs until interrupted (Ctrl+C). The port must already be open, see
"serialterm open".

Example usage:
  serialterm capture data.log
  serialterm capture data.log --interval 50ms --console`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		interval, _ := cmd.Flags().GetDuration("interval")
		showConsole, _ := cmd.Flags().GetBool("console")

		file, err := os.OpenFile(args[0], os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if err != nil {
			return fmt.Errorf("failed to open output file: %w", err)
		}
		defer file.Close()

		var w io.Writer = file
		if showConsole {
			w = io.MultiWriter(file, cmd.OutOrStdout())
		}

		c, err := client.Dial(settings.GetString(config.KeyServer))
		if err != nil {
			return err
		}
		defer c.Close()

		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		fmt.Fprintf(cmd.ErrOrStderr(), "%s Capturing to %s, press Ctrl+C to stop\n", infoStyle.Render("⚡"), args[0])
		start := time.Now()
		n, err := capture(ctx, c, w, interval, settings.GetDuration(config.KeyTimeout))
		fmt.Fprintf(cmd.ErrOrStderr(), "\nCapture complete: %d bytes written in %v\n", n, time.Since(start).Round(time.Millisecond))
		return err
	},
}

func init() {
	rootCmd.AddCommand(captureCmd)
	addClientFlags(captureCmd)
	captureCmd.Flags().Duration("interval", 100*time.Millisecond, "Delay between reads")
	captureCmd.Flags().BoolP("console", "c", false, "Also print captured data to stdout")
}

// reader is the part of client.Client capture needs
type reader interface {
	Read(ctx context.Context) (client.Reply, error)
}

// capture polls r until ctx is done, writing every non-empty read to w. A
// failed read (port closed on the server) ends the capture with errFailed.
func capture(ctx context.Context, r reader, w io.Writer, interval, callTimeout time.Duration) (int64, error) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	var written int64
	for {
		callCtx, cancel := context.WithTimeout(ctx, callTimeout)
		rep, err := r.Read(callCtx)
		cancel()

		switch {
		case ctx.Err() != nil:
			return written, nil
		case err != nil:
			return written, fmt.Errorf("read: %w", err)
		case !rep.Success:
			fmt.Fprintf(os.Stderr, "%s %s\n", errorStyle.Render("✗"), rep.Content)
			return written, errFailed
		}

		if rep.Content != "" {
			n, err := io.WriteString(w, rep.Content)
			written += int64(n)
			if err != nil {
				return written, fmt.Errorf("write error: %w", err)
			}
		}

		select {
		case <-ctx.Done():
			return written, nil
		case <-ticker.C:
		}
	}
}
