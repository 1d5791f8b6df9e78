/*
Copyright © 2025 Mathias Djärv <mathias.djarv@allbinary.se>
*/
package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/allbin/serialterm/internal/config"
	"github.com/allbin/serialterm/internal/driver"
	"github.com/allbin/serialterm/internal/server"
	"github.com/allbin/serialterm/internal/session"
)

var (
	settings = config.New()

	infoStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("99")).Bold(true)
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("40")).Bold(true)
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true)
)

// errFailed marks a command whose reply was success=false. The reply has
// already been printed, so Execute only sets the exit code.
var errFailed = errors.New("request failed")

// rootCmd serves the SerialComService on the address given as its argument
var rootCmd = &cobra.Command{
	Use:   "serialterm <host:port>",
	Short: "Expose a serial port over gRPC",
	Long: `Serve a single serial port to remote clients over gRPC.

The server binds the given address and answers serial_terminal.SerialComService
calls: Ping, GetPortList, OpenPort, ClosePort, SendOnce and ReadOnce. At most
one port is open at a time.

Tuning is read from the environment:
  SERIALTERM_DRIVER            bugst (default), tarm or termios
  SERIALTERM_READ_TIMEOUT      read timeout per ReadOnce (default 10ms)
  SERIALTERM_READ_BUFFER_SIZE  bytes per ReadOnce (default 32)
  SERIALTERM_ESCAPE_PAYLOAD    expand 0xHH escapes in SendOnce (default true)
  SERIALTERM_LOG_LEVEL         debug, info, warn or error (default info)

The same binary is also a client, see the subcommands.

Example usage:
  serialterm 127.0.0.1:3333
  SERIALTERM_DRIVER=termios serialterm 0.0.0.0:3333`,
	Args:          cobra.ExactArgs(1),
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runServer(cmd.Context(), args[0])
	},
}

// Execute runs the root command and exits non-zero on failure
func Execute() {
	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		if !errors.Is(err, errFailed) {
			fmt.Fprintf(os.Stderr, "%s %v\n", errorStyle.Render("Error:"), err)
		}
		os.Exit(1)
	}
}

func newLogger(level log.Level) *log.Logger {
	return log.NewWithOptions(os.Stderr, log.Options{
		Prefix:          "serialterm",
		ReportTimestamp: true,
		Level:           level,
	})
}

func runServer(ctx context.Context, addr string) error {
	cfg, err := config.Load(settings)
	if err != nil {
		return err
	}
	logger := newLogger(cfg.LogLevel)

	drv, err := driver.New(cfg.Driver, cfg.DriverOptions()...)
	if err != nil {
		return err
	}
	sess, err := session.New(drv, cfg.SessionOptions(logger)...)
	if err != nil {
		return err
	}
	defer func() {
		if err := sess.Shutdown(); err != nil {
			logger.Error("releasing port", "err", err)
		}
	}()

	lis, err := server.Listen(addr)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info("starting", "driver", cfg.Driver, "read_timeout", cfg.ReadTimeout, "read_buffer_size", cfg.ReadBufferSize)
	return server.New(sess, logger).Serve(ctx, lis)
}
