// Package session implements the single-port serial session that backs the
// SerialComService. A Session is either CLOSED or OPEN; every operation runs
// under one lock and reports its outcome as a Result rather than an error.
package session

import (
	"errors"
	"fmt"
	"sync"

	"github.com/allbin/serialterm/internal/driver"
)

// State of a Session
type State int

const (
	StateClosed State = iota
	StateOpen
)

func (s State) String() string {
	switch s {
	case StateClosed:
		return "CLOSED"
	case StateOpen:
		return "OPEN"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// Response texts
const (
	PongMessage         = "Pong!"
	AlreadyOpenMessage  = "A port is already open"
	NotOpenMessage      = "No port open"
	SentMessage         = "Request sent"
	WriteTimeoutMessage = "Serial write timed out"
	ReadTimeoutMessage  = "Serial read timed out"
)

// Result is the outcome of a state-changing or I/O operation
type Result struct {
	Success bool
	Content string
}

func ok(format string, args ...any) Result {
	return Result{Success: true, Content: fmt.Sprintf(format, args...)}
}

func fail(format string, args ...any) Result {
	return Result{Success: false, Content: fmt.Sprintf(format, args...)}
}

// Session owns at most one open serial handle
type Session struct {
	mu     sync.Mutex
	driver driver.Driver
	config Config

	handle   driver.Handle
	portName string
	baudRate uint32
}

// New creates a CLOSED session on top of drv
func New(drv driver.Driver, opts ...Option) (*Session, error) {
	if drv == nil {
		return nil, errors.New("session: nil driver")
	}

	config := DefaultConfig()
	for _, opt := range opts {
		if err := opt(&config); err != nil {
			return nil, err
		}
	}

	return &Session{driver: drv, config: config}, nil
}

// Ping returns the fixed acknowledgment. It does not take the session lock.
func (s *Session) Ping() string {
	return PongMessage
}

// PortList enumerates the ports the driver can see. Enumeration failures
// are logged and reported as an empty list.
func (s *Session) PortList() []string {
	s.mu.Lock()
	defer s.mu.Unlock()

	var ports []string
	err := guard(func() error {
		var err error
		ports, err = s.driver.List()
		return err
	})
	if err != nil {
		s.config.Logger.Warn("port enumeration failed", "err", err)
		return []string{}
	}
	if ports == nil {
		ports = []string{}
	}
	return ports
}

// Open opens name at baud. It fails without touching the driver when a port
// is already open.
func (s *Session) Open(name string, baud uint32) Result {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.handle != nil {
		return fail(AlreadyOpenMessage)
	}

	var handle driver.Handle
	err := guard(func() error {
		var err error
		handle, err = s.driver.Open(name, baud)
		return err
	})
	if err == nil && handle == nil {
		err = errors.New("driver returned no handle")
	}
	if err != nil {
		s.config.Logger.Error("open failed", "port", name, "baud", baud, "err", err)
		return fail("Could not open the port: %v", err)
	}

	s.handle = handle
	s.portName = name
	s.baudRate = baud
	s.config.Logger.Info("port opened", "port", name, "baud", baud)
	return ok("Opened port %s with a baudrate of %d", name, baud)
}

// Close releases the open handle. The session is CLOSED afterwards even if
// the driver reports an error.
func (s *Session) Close() Result {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.handle == nil {
		return fail(NotOpenMessage)
	}

	name := s.portName
	err := s.release()
	if err != nil {
		s.config.Logger.Error("close failed", "port", name, "err", err)
		return fail("Could not close port %s: %v", name, err)
	}

	s.config.Logger.Info("port closed", "port", name)
	return ok("Port %s closed", name)
}

// Send writes content to the open port, expanding 0xHH escapes when enabled.
// A short write is a failure; the port stays open either way.
func (s *Session) Send(content string) Result {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.handle == nil {
		return fail(NotOpenMessage)
	}

	payload := []byte(content)
	if s.config.EscapePayload {
		payload = ExpandEscapes(content)
	}

	var n int
	err := guard(func() error {
		var err error
		n, err = s.handle.Write(payload)
		return err
	})

	switch {
	case errors.Is(err, driver.ErrWriteTimeout):
		s.config.Logger.Warn("write timed out", "port", s.portName)
		return fail(WriteTimeoutMessage)
	case err != nil:
		s.config.Logger.Error("write failed", "port", s.portName, "err", err)
		return fail("Serial write error: %v", err)
	case n != len(payload):
		s.config.Logger.Warn("short write", "port", s.portName, "wrote", n, "want", len(payload))
		return fail("Serial write incomplete: wrote %d of %d bytes", n, len(payload))
	}

	s.config.Logger.Debug("sent", "port", s.portName, "bytes", n)
	return ok(SentMessage)
}

// Read performs one bounded read from the open port. Zero bytes is a
// successful, empty read.
func (s *Session) Read() Result {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.handle == nil {
		return fail(NotOpenMessage)
	}

	buf := make([]byte, s.config.ReadBufferSize)
	var n int
	err := guard(func() error {
		var err error
		n, err = s.handle.Read(buf)
		return err
	})

	switch {
	case errors.Is(err, driver.ErrReadTimeout):
		return fail(ReadTimeoutMessage)
	case err != nil:
		s.config.Logger.Error("read failed", "port", s.portName, "err", err)
		return fail("Serial read error: %v", err)
	}

	n = min(max(n, 0), len(buf))
	if n > 0 {
		s.config.Logger.Debug("received", "port", s.portName, "bytes", n)
	}
	return ok("%s", decodeText(buf[:n]))
}

// State reports whether a port is open
func (s *Session) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.handle != nil {
		return StateOpen
	}
	return StateClosed
}

// Port returns the name and baud rate of the open port
func (s *Session) Port() (name string, baud uint32, open bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.handle == nil {
		return "", 0, false
	}
	return s.portName, s.baudRate, true
}

// Shutdown releases any open handle. It is safe to call on a CLOSED session
// and more than once.
func (s *Session) Shutdown() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.handle == nil {
		return nil
	}

	name := s.portName
	if err := s.release(); err != nil {
		return fmt.Errorf("closing %s: %w", name, err)
	}
	s.config.Logger.Info("port released on shutdown", "port", name)
	return nil
}

// release closes the handle and clears the session. Caller holds s.mu.
func (s *Session) release() error {
	handle := s.handle
	s.handle = nil
	s.portName = ""
	s.baudRate = 0

	return guard(handle.Close)
}

// guard runs a driver call, turning a panic into an error
func guard(call func() error) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("driver panic: %v", r)
		}
	}()
	return call()
}
