// Package drivertest provides an in-memory driver.Driver for tests.
package drivertest

import (
	"bytes"
	"sync"

	"github.com/allbin/serialterm/internal/driver"
)

// Driver is a scriptable fake. Set the exported fields before use; the
// counters and handles are safe to inspect from any goroutine.
type Driver struct {
	Ports   []string
	ListErr error

	OpenErr   error
	OpenPanic any

	// WriteLimit caps the bytes accepted per Write; zero accepts everything
	WriteLimit int
	WriteErr   error

	ReadData []byte
	ReadErr  error

	CloseErr error

	mu      sync.Mutex
	calls   int
	handles []*Handle
}

var _ driver.Driver = (*Driver)(nil)

// List returns Ports or ListErr
func (d *Driver) List() ([]string, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.calls++

	if d.ListErr != nil {
		return nil, d.ListErr
	}
	return append([]string{}, d.Ports...), nil
}

// Open returns a new Handle unless OpenErr or OpenPanic is set
func (d *Driver) Open(name string, baud uint32) (driver.Handle, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.calls++

	if d.OpenPanic != nil {
		panic(d.OpenPanic)
	}
	if d.OpenErr != nil {
		return nil, d.OpenErr
	}

	h := &Handle{driver: d, Name: name, Baud: baud}
	d.handles = append(d.handles, h)
	return h, nil
}

// Calls counts every List, Open and handle operation
func (d *Driver) Calls() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.calls
}

// Handles returns every handle opened so far, oldest first
func (d *Driver) Handles() []*Handle {
	d.mu.Lock()
	defer d.mu.Unlock()
	return append([]*Handle{}, d.handles...)
}

// Handle records what was written to it and how often it was closed
type Handle struct {
	Name string
	Baud uint32

	driver  *Driver
	written bytes.Buffer
	reads   int
	closes  int
}

func (h *Handle) Read(buf []byte) (int, error) {
	d := h.driver
	d.mu.Lock()
	defer d.mu.Unlock()
	d.calls++
	h.reads++

	if d.ReadErr != nil {
		return 0, d.ReadErr
	}
	n := copy(buf, d.ReadData)
	d.ReadData = d.ReadData[n:]
	return n, nil
}

func (h *Handle) Write(data []byte) (int, error) {
	d := h.driver
	d.mu.Lock()
	defer d.mu.Unlock()
	d.calls++

	if d.WriteErr != nil {
		return 0, d.WriteErr
	}
	if d.WriteLimit > 0 && len(data) > d.WriteLimit {
		data = data[:d.WriteLimit]
	}
	h.written.Write(data)
	return len(data), nil
}

func (h *Handle) Close() error {
	d := h.driver
	d.mu.Lock()
	defer d.mu.Unlock()
	d.calls++
	h.closes++

	if h.closes > 1 {
		return driver.ErrPortClosed
	}
	return d.CloseErr
}

// Written returns a copy of every byte accepted by Write
func (h *Handle) Written() []byte {
	h.driver.mu.Lock()
	defer h.driver.mu.Unlock()
	return bytes.Clone(h.written.Bytes())
}

// Closes reports how many times Close was called
func (h *Handle) Closes() int {
	h.driver.mu.Lock()
	defer h.driver.mu.Unlock()
	return h.closes
}
