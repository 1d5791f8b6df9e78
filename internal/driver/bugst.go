package driver

import (
	"errors"
	"fmt"

	"go.bug.st/serial"
)

// bugstDriver is the default, cross-platform backend built on go.bug.st/serial
type bugstDriver struct {
	config Config
}

func (d *bugstDriver) List() ([]string, error) {
	ports, err := serial.GetPortsList()
	if err != nil {
		return nil, fmt.Errorf("failed to enumerate ports: %w", err)
	}
	if ports == nil {
		ports = []string{}
	}
	return ports, nil
}

func (d *bugstDriver) Open(name string, baud uint32) (Handle, error) {
	if baud == 0 {
		return nil, ErrInvalidBaudRate
	}

	port, err := serial.Open(name, &serial.Mode{
		BaudRate: int(baud),
		DataBits: 8,
		Parity:   serial.NoParity,
		StopBits: serial.OneStopBit,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", name, bugstError(err))
	}

	if err := port.SetReadTimeout(d.config.ReadTimeout); err != nil {
		port.Close()
		return nil, fmt.Errorf("failed to set read timeout: %w", bugstError(err))
	}

	return &bugstHandle{port: port}, nil
}

// bugstHandle maps library errors onto the package sentinels
type bugstHandle struct {
	port serial.Port
}

func (h *bugstHandle) Read(buf []byte) (int, error) {
	n, err := h.port.Read(buf)
	return n, bugstError(err)
}

func (h *bugstHandle) Write(data []byte) (int, error) {
	n, err := h.port.Write(data)
	return n, bugstError(err)
}

func (h *bugstHandle) Close() error {
	return bugstError(h.port.Close())
}

// bugstError translates a *serial.PortError into the matching sentinel
func bugstError(err error) error {
	var portErr *serial.PortError
	if !errors.As(err, &portErr) {
		return classify(err)
	}

	switch portErr.Code() {
	case serial.PortBusy:
		return fmt.Errorf("%w: %v", ErrDeviceInUse, err)
	case serial.PortNotFound, serial.InvalidSerialPort:
		return fmt.Errorf("%w: %v", ErrDeviceNotFound, err)
	case serial.PermissionDenied:
		return fmt.Errorf("%w: %v", ErrPermissionDenied, err)
	case serial.InvalidSpeed:
		return fmt.Errorf("%w: %v", ErrInvalidBaudRate, err)
	case serial.InvalidTimeoutValue:
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	case serial.PortClosed:
		return fmt.Errorf("%w: %v", ErrPortClosed, err)
	default:
		return err
	}
}
