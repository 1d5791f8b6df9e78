//go:build linux

package driver

import (
	"os"
	"testing"
	"time"

	"github.com/creack/pty"
	"github.com/stretchr/testify/require"
)

func openPTY(t *testing.T) (master, slave *os.File) {
	t.Helper()
	master, slave, err := pty.Open()
	require.NoError(t, err)
	t.Cleanup(func() { master.Close(); slave.Close() })
	return master, slave
}

func TestTermios_ReadWrite(t *testing.T) {
	master, slave := openPTY(t)

	drv, err := New(Termios, WithReadTimeout(100*time.Millisecond))
	require.NoError(t, err)

	h, err := drv.Open(slave.Name(), 115200)
	require.NoError(t, err)
	t.Cleanup(func() { h.Close() })

	// master -> port
	_, err = master.Write([]byte("ping"))
	require.NoError(t, err)

	buf := make([]byte, 32)
	var got []byte
	deadline := time.Now().Add(time.Second)
	for len(got) < 4 && time.Now().Before(deadline) {
		n, err := h.Read(buf)
		require.NoError(t, err)
		got = append(got, buf[:n]...)
	}
	require.Equal(t, "ping", string(got))

	// port -> master
	n, err := h.Write([]byte("pong"))
	require.NoError(t, err)
	require.Equal(t, 4, n)

	out := make([]byte, 32)
	n, err = master.Read(out)
	require.NoError(t, err)
	require.Equal(t, "pong", string(out[:n]))
}

func TestTermios_ReadTimesOutEmpty(t *testing.T) {
	_, slave := openPTY(t)

	drv, err := New(Termios, WithReadTimeout(100*time.Millisecond))
	require.NoError(t, err)

	h, err := drv.Open(slave.Name(), 9600)
	require.NoError(t, err)
	t.Cleanup(func() { h.Close() })

	start := time.Now()
	n, err := h.Read(make([]byte, 8))
	require.NoError(t, err)
	require.Zero(t, n)
	require.Less(t, time.Since(start), 2*time.Second)
}

func TestTermios_CloseTwice(t *testing.T) {
	_, slave := openPTY(t)

	drv, err := New(Termios)
	require.NoError(t, err)

	h, err := drv.Open(slave.Name(), 9600)
	require.NoError(t, err)

	require.NoError(t, h.Close())
	require.ErrorIs(t, h.Close(), ErrPortClosed)

	_, err = h.Write([]byte("x"))
	require.ErrorIs(t, err, ErrPortClosed)
	_, err = h.Read(make([]byte, 1))
	require.ErrorIs(t, err, ErrPortClosed)
}

func TestTermios_OpenErrors(t *testing.T) {
	_, slave := openPTY(t)

	drv, err := New(Termios)
	require.NoError(t, err)

	_, err = drv.Open(slave.Name(), 123456)
	require.ErrorIs(t, err, ErrInvalidBaudRate)

	_, err = drv.Open("/dev/nonexistent-tty", 9600)
	require.ErrorIs(t, err, ErrDeviceNotFound)
}

func TestGetBaudRate(t *testing.T) {
	tests := []struct {
		input    uint32
		hasError bool
	}{
		{115200, false},
		{9600, false},
		{57600, false},
		{4000000, false},
		{0, true},
		{123456, true},
	}

	for _, test := range tests {
		result, err := getBaudRate(test.input)
		if test.hasError {
			if err != ErrInvalidBaudRate {
				t.Errorf("Expected ErrInvalidBaudRate for %d, got %v", test.input, err)
			}
			continue
		}
		if err != nil {
			t.Errorf("Unexpected error for baud rate %d: %v", test.input, err)
		}
		if result == 0 {
			t.Errorf("Got zero result for valid baud rate %d", test.input)
		}
	}
}

func TestReadTimeoutTenths(t *testing.T) {
	tests := []struct {
		timeout time.Duration
		want    uint8
	}{
		{0, 0},
		{-time.Second, 0},
		{10 * time.Millisecond, 1},
		{100 * time.Millisecond, 1},
		{101 * time.Millisecond, 2},
		{2500 * time.Millisecond, 25},
		{time.Minute, 255},
	}

	for _, tt := range tests {
		if got := readTimeoutTenths(tt.timeout); got != tt.want {
			t.Errorf("readTimeoutTenths(%v) = %d, want %d", tt.timeout, got, tt.want)
		}
	}
}
