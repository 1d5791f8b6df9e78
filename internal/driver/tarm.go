package driver

import (
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/tarm/serial"
)

// tarmDriver opens ports through github.com/tarm/serial. The library has no
// enumeration, so List scans the device directory like the termios backend.
type tarmDriver struct {
	config Config
}

func (d *tarmDriver) List() ([]string, error) {
	return listPorts(d.config.DevDir)
}

func (d *tarmDriver) Open(name string, baud uint32) (Handle, error) {
	if baud == 0 {
		return nil, ErrInvalidBaudRate
	}

	port, err := serial.OpenPort(&serial.Config{
		Name:        name,
		Baud:        int(baud),
		ReadTimeout: tarmReadTimeout(d.config.ReadTimeout),
		Size:        8,
		Parity:      serial.ParityNone,
		StopBits:    serial.Stop1,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", name, classify(err))
	}

	return &tarmHandle{port: port}, nil
}

// tarmReadTimeout maps a zero timeout to the shortest bounded one. tarm/serial
// treats zero as VMIN=1, a read that blocks until a byte arrives.
func tarmReadTimeout(timeout time.Duration) time.Duration {
	if timeout <= 0 {
		return time.Nanosecond
	}
	return timeout
}

type tarmHandle struct {
	port *serial.Port
}

// Read reports an expired VTIME as an empty read instead of io.EOF
func (h *tarmHandle) Read(buf []byte) (int, error) {
	n, err := h.port.Read(buf)
	if n == 0 && errors.Is(err, io.EOF) {
		return 0, nil
	}
	return n, classify(err)
}

func (h *tarmHandle) Write(data []byte) (int, error) {
	n, err := h.port.Write(data)
	return n, classify(err)
}

func (h *tarmHandle) Close() error {
	return classify(h.port.Close())
}
