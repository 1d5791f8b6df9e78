package driver

import (
	"errors"
	"fmt"
	"io/fs"
	"syscall"
)

// Predefined error types for robust error handling
var (
	ErrDeviceNotFound      = errors.New("serial device not found")
	ErrPermissionDenied    = errors.New("permission denied accessing serial device")
	ErrDeviceInUse         = errors.New("serial device already in use")
	ErrInvalidBaudRate     = errors.New("invalid baud rate")
	ErrInvalidConfig       = errors.New("invalid serial configuration")
	ErrPortClosed          = errors.New("serial port is closed")
	ErrWriteTimeout        = errors.New("write operation timed out")
	ErrReadTimeout         = errors.New("read operation timed out")
	ErrUnknownDriver       = errors.New("unknown serial driver")
	ErrUnsupportedPlatform = errors.New("serial driver not supported on this platform")
)

// classify wraps an OS-level error with the matching sentinel so callers can
// use errors.Is regardless of the backend that produced it.
func classify(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, fs.ErrNotExist):
		return fmt.Errorf("%w: %v", ErrDeviceNotFound, err)
	case errors.Is(err, fs.ErrPermission):
		return fmt.Errorf("%w: %v", ErrPermissionDenied, err)
	case errors.Is(err, syscall.EBUSY):
		return fmt.Errorf("%w: %v", ErrDeviceInUse, err)
	default:
		return err
	}
}
