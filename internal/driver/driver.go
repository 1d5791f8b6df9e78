package driver

import (
	"fmt"
	"sort"
)

// Backend names accepted by New
const (
	Bugst   = "bugst"
	Tarm    = "tarm"
	Termios = "termios"
)

// Driver enumerates serial ports and opens them
type Driver interface {
	List() ([]string, error)
	Open(name string, baud uint32) (Handle, error)
}

// Handle is an open serial connection.
// Read performs one bounded attempt and may return zero bytes without error.
type Handle interface {
	Read(buf []byte) (int, error)
	Write(data []byte) (int, error)
	Close() error
}

// Names returns the backend names accepted by New, sorted
func Names() []string {
	names := []string{Bugst, Tarm, Termios}
	sort.Strings(names)
	return names
}

// New creates the named driver backend. An empty name selects Bugst.
func New(name string, opts ...Option) (Driver, error) {
	config := DefaultConfig()
	for _, opt := range opts {
		if err := opt(&config); err != nil {
			return nil, err
		}
	}

	switch name {
	case Bugst, "":
		return &bugstDriver{config: config}, nil
	case Tarm:
		return &tarmDriver{config: config}, nil
	case Termios:
		return newTermios(config)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownDriver, name)
	}
}
