// Package config loads serialterm settings from SERIALTERM_* environment
// variables through viper.
package config

import (
	"errors"
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cast"
	"github.com/spf13/viper"

	"github.com/allbin/serialterm/internal/driver"
	"github.com/allbin/serialterm/internal/session"
)

// EnvPrefix is prepended to every environment variable
const EnvPrefix = "SERIALTERM"

// Keys understood by Load
const (
	KeyDriver         = "driver"
	KeyReadTimeout    = "read_timeout"
	KeyReadBufferSize = "read_buffer_size"
	KeyEscapePayload  = "escape_payload"
	KeyLogLevel       = "log_level"
	KeyServer         = "server"
	KeyTimeout        = "timeout"
)

// Defaults
const (
	DefaultServer         = "127.0.0.1:3333"
	DefaultReadTimeout    = 10 * time.Millisecond
	DefaultReadBufferSize = 32
	DefaultCallTimeout    = 5 * time.Second
)

var ErrInvalid = errors.New("invalid configuration")

// Config is the validated server configuration
type Config struct {
	Driver         string
	ReadTimeout    time.Duration
	ReadBufferSize int
	EscapePayload  bool
	LogLevel       log.Level
}

// New returns a viper instance bound to the SERIALTERM_ environment with
// every default registered
func New() *viper.Viper {
	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))
	v.AutomaticEnv()

	v.SetDefault(KeyDriver, driver.Bugst)
	v.SetDefault(KeyReadTimeout, DefaultReadTimeout)
	v.SetDefault(KeyReadBufferSize, DefaultReadBufferSize)
	v.SetDefault(KeyEscapePayload, true)
	v.SetDefault(KeyLogLevel, "info")
	v.SetDefault(KeyServer, DefaultServer)
	v.SetDefault(KeyTimeout, DefaultCallTimeout)
	return v
}

// Load reads and validates the server settings from v
func Load(v *viper.Viper) (Config, error) {
	level, err := log.ParseLevel(v.GetString(KeyLogLevel))
	if err != nil {
		return Config{}, fmt.Errorf("%w: %s: %v", ErrInvalid, KeyLogLevel, err)
	}

	timeout, err := cast.ToDurationE(v.Get(KeyReadTimeout))
	if err != nil {
		return Config{}, fmt.Errorf("%w: %s: %v", ErrInvalid, KeyReadTimeout, err)
	}
	size, err := cast.ToIntE(v.Get(KeyReadBufferSize))
	if err != nil {
		return Config{}, fmt.Errorf("%w: %s: %v", ErrInvalid, KeyReadBufferSize, err)
	}
	escape, err := cast.ToBoolE(v.Get(KeyEscapePayload))
	if err != nil {
		return Config{}, fmt.Errorf("%w: %s: %v", ErrInvalid, KeyEscapePayload, err)
	}

	cfg := Config{
		Driver:         strings.ToLower(strings.TrimSpace(v.GetString(KeyDriver))),
		ReadTimeout:    timeout,
		ReadBufferSize: size,
		EscapePayload:  escape,
		LogLevel:       level,
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks every field against the ranges the driver and session
// accept
func (c Config) Validate() error {
	if !slices.Contains(driver.Names(), c.Driver) {
		return fmt.Errorf("%w: %s %q, want one of %s", ErrInvalid, KeyDriver, c.Driver, strings.Join(driver.Names(), ", "))
	}

	var dc driver.Config
	for _, opt := range c.DriverOptions() {
		if err := opt(&dc); err != nil {
			return fmt.Errorf("%w: %s %s: %v", ErrInvalid, KeyReadTimeout, c.ReadTimeout, err)
		}
	}

	sc := session.DefaultConfig()
	if err := session.WithReadBufferSize(c.ReadBufferSize)(&sc); err != nil {
		return fmt.Errorf("%w: %s %d: %v", ErrInvalid, KeyReadBufferSize, c.ReadBufferSize, err)
	}
	return nil
}

// DriverOptions converts the configuration into driver options
func (c Config) DriverOptions() []driver.Option {
	return []driver.Option{driver.WithReadTimeout(c.ReadTimeout)}
}

// SessionOptions converts the configuration into session options
func (c Config) SessionOptions(logger *log.Logger) []session.Option {
	opts := []session.Option{
		session.WithReadBufferSize(c.ReadBufferSize),
		session.WithEscapePayload(c.EscapePayload),
	}
	if logger != nil {
		opts = append(opts, session.WithLogger(logger))
	}
	return opts
}
