package session

import (
	"errors"
	"io"

	"github.com/charmbracelet/log"
)

// ErrInvalidConfig is returned by options given out-of-range values
var ErrInvalidConfig = errors.New("invalid session configuration")

// maxReadBufferSize bounds the bytes a single ReadOnce may return
const maxReadBufferSize = 64 * 1024

// Config holds the tunables of a Session
type Config struct {
	ReadBufferSize int  // bytes requested from the driver per ReadOnce
	EscapePayload  bool // expand 0xHH escapes in SendOnce content
	Logger         *log.Logger
}

// Option is a functional option for configuring a Session
type Option func(*Config) error

// DefaultConfig returns a configuration with sensible defaults
func DefaultConfig() Config {
	return Config{
		ReadBufferSize: 32,
		EscapePayload:  true,
		Logger:         log.New(io.Discard),
	}
}

// WithReadBufferSize sets how many bytes ReadOnce asks the driver for
func WithReadBufferSize(size int) Option {
	return func(c *Config) error {
		if size < 1 || size > maxReadBufferSize {
			return ErrInvalidConfig
		}
		c.ReadBufferSize = size
		return nil
	}
}

// WithEscapePayload toggles 0xHH escape expansion in SendOnce
func WithEscapePayload(enabled bool) Option {
	return func(c *Config) error {
		c.EscapePayload = enabled
		return nil
	}
}

// WithLogger sets the logger used for state transitions and driver failures
func WithLogger(logger *log.Logger) Option {
	return func(c *Config) error {
		if logger == nil {
			return ErrInvalidConfig
		}
		c.Logger = logger
		return nil
	}
}
