package driver

import "time"

// Config holds the settings shared by every driver backend
type Config struct {
	ReadTimeout time.Duration // upper bound for a single Read call
	DevDir      string        // directory scanned by the tarm and termios backends
}

// Option is a functional option for configuring a driver
type Option func(*Config) error

// DefaultConfig returns a configuration with sensible defaults
func DefaultConfig() Config {
	return Config{
		ReadTimeout: 10 * time.Millisecond,
		DevDir:      "/dev",
	}
}

// WithReadTimeout sets how long a single read waits for data. Zero asks for
// the shortest bounded wait the backend supports: an immediate return for
// bugst and termios, one VTIME tenth for tarm.
func WithReadTimeout(timeout time.Duration) Option {
	return func(c *Config) error {
		if timeout < 0 || timeout > maxReadTimeout {
			return ErrInvalidConfig
		}
		c.ReadTimeout = timeout
		return nil
	}
}

// WithDevDir sets the directory scanned for device nodes
func WithDevDir(dir string) Option {
	return func(c *Config) error {
		if dir == "" {
			return ErrInvalidConfig
		}
		c.DevDir = dir
		return nil
	}
}

// maxReadTimeout is the largest timeout VTIME can express (255 tenths).
const maxReadTimeout = 25500 * time.Millisecond
