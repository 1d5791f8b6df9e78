//go:build linux

package driver

import (
	"fmt"
	"sync"
	"time"

	"golang.org/x/sys/unix"
)

// termiosDriver talks to the kernel tty layer directly through x/sys/unix
type termiosDriver struct {
	config Config
}

func newTermios(config Config) (Driver, error) {
	return &termiosDriver{config: config}, nil
}

func (d *termiosDriver) List() ([]string, error) {
	return listPorts(d.config.DevDir)
}

// Open opens the device exclusively in raw 8N1 mode
func (d *termiosDriver) Open(name string, baud uint32) (Handle, error) {
	speed, err := getBaudRate(baud)
	if err != nil {
		return nil, err
	}

	fd, err := unix.Open(name, unix.O_RDWR|unix.O_NOCTTY|unix.O_CLOEXEC, 0)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", name, classify(err))
	}

	// TIOCEXCL makes further opens by non-root processes fail with EBUSY
	if err := unix.IoctlSetInt(fd, unix.TIOCEXCL, 0); err != nil {
		unix.Close(fd)
		return nil, fmt.Errorf("failed to lock %s: %w", name, classify(err))
	}

	if err := configurePort(fd, speed, d.config.ReadTimeout); err != nil {
		unix.Close(fd)
		return nil, err
	}

	return &termiosPort{fd: fd}, nil
}

// getBaudRate converts an integer baud rate to the unix constant
func getBaudRate(rate uint32) (uint32, error) {
	switch rate {
	case 50:
		return unix.B50, nil
	case 75:
		return unix.B75, nil
	case 110:
		return unix.B110, nil
	case 134:
		return unix.B134, nil
	case 150:
		return unix.B150, nil
	case 200:
		return unix.B200, nil
	case 300:
		return unix.B300, nil
	case 600:
		return unix.B600, nil
	case 1200:
		return unix.B1200, nil
	case 1800:
		return unix.B1800, nil
	case 2400:
		return unix.B2400, nil
	case 4800:
		return unix.B4800, nil
	case 9600:
		return unix.B9600, nil
	case 19200:
		return unix.B19200, nil
	case 38400:
		return unix.B38400, nil
	case 57600:
		return unix.B57600, nil
	case 115200:
		return unix.B115200, nil
	case 230400:
		return unix.B230400, nil
	case 460800:
		return unix.B460800, nil
	case 500000:
		return unix.B500000, nil
	case 576000:
		return unix.B576000, nil
	case 921600:
		return unix.B921600, nil
	case 1000000:
		return unix.B1000000, nil
	case 1152000:
		return unix.B1152000, nil
	case 1500000:
		return unix.B1500000, nil
	case 2000000:
		return unix.B2000000, nil
	case 2500000:
		return unix.B2500000, nil
	case 3000000:
		return unix.B3000000, nil
	case 3500000:
		return unix.B3500000, nil
	case 4000000:
		return unix.B4000000, nil
	default:
		return 0, ErrInvalidBaudRate
	}
}

// readTimeoutTenths rounds a timeout up to whole VTIME units
func readTimeoutTenths(timeout time.Duration) uint8 {
	if timeout <= 0 {
		return 0
	}
	tenths := (timeout + 100*time.Millisecond - 1) / (100 * time.Millisecond)
	if tenths > 255 {
		tenths = 255
	}
	return uint8(tenths)
}

// configurePort puts the line into raw 8N1 mode at the given speed
func configurePort(fd int, speed uint32, readTimeout time.Duration) error {
	termios, err := unix.IoctlGetTermios(fd, unix.TCGETS)
	if err != nil {
		return fmt.Errorf("failed to get termios: %w", err)
	}

	termios.Cflag = unix.CS8 | unix.CREAD | unix.CLOCAL
	termios.Iflag = 0
	termios.Oflag = 0
	termios.Lflag = 0

	// VMIN=0 with VTIME>0 gives one bounded read; VTIME=0 polls
	termios.Cc[unix.VMIN] = 0
	termios.Cc[unix.VTIME] = readTimeoutTenths(readTimeout)

	termios.Cflag = (termios.Cflag &^ unix.CBAUD) | speed
	termios.Ispeed = speed
	termios.Ospeed = speed

	if err := unix.IoctlSetTermios(fd, unix.TCSETS, termios); err != nil {
		return fmt.Errorf("failed to set termios: %w", err)
	}

	return nil
}

// termiosPort is an open tty file descriptor
type termiosPort struct {
	mu     sync.RWMutex
	fd     int
	closed bool
}

func (p *termiosPort) Read(buf []byte) (int, error) {
	p.mu.RLock()
	defer p.mu.RUnlock()

	if p.closed {
		return 0, ErrPortClosed
	}

	n, err := unix.Read(p.fd, buf)
	if err == unix.EAGAIN || err == unix.EINTR {
		return 0, nil
	}
	if n < 0 {
		n = 0
	}
	return n, err
}

func (p *termiosPort) Write(data []byte) (int, error) {
	p.mu.RLock()
	defer p.mu.RUnlock()

	if p.closed {
		return 0, ErrPortClosed
	}

	n, err := unix.Write(p.fd, data)
	if n < 0 {
		n = 0
	}
	return n, err
}

func (p *termiosPort) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.closed {
		return ErrPortClosed
	}

	// Drop the exclusive lock; the fd is closed either way
	_ = unix.IoctlSetInt(p.fd, unix.TIOCNXCL, 0)

	err := unix.Close(p.fd)
	p.closed = true
	return err
}
