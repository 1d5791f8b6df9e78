package session

import (
	"errors"
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/allbin/serialterm/internal/driver"
	"github.com/allbin/serialterm/internal/driver/drivertest"
)

func newSession(t *testing.T, drv *drivertest.Driver, opts ...Option) *Session {
	t.Helper()
	s, err := New(drv, opts...)
	require.NoError(t, err)
	return s
}

func TestNew(t *testing.T) {
	_, err := New(nil)
	require.Error(t, err)

	_, err = New(&drivertest.Driver{}, WithReadBufferSize(0))
	require.ErrorIs(t, err, ErrInvalidConfig)

	_, err = New(&drivertest.Driver{}, WithLogger(nil))
	require.ErrorIs(t, err, ErrInvalidConfig)

	s := newSession(t, &drivertest.Driver{})
	assert.Equal(t, StateClosed, s.State())
}

func TestStateString(t *testing.T) {
	assert.Equal(t, "CLOSED", StateClosed.String())
	assert.Equal(t, "OPEN", StateOpen.String())
	assert.Equal(t, "State(7)", State(7).String())
}

func TestOpenTwice(t *testing.T) {
	drv := &drivertest.Driver{}
	s := newSession(t, drv)

	r := s.Open("COM_TEST", 9600)
	require.True(t, r.Success, r.Content)
	assert.Equal(t, "Opened port COM_TEST with a baudrate of 9600", r.Content)

	r = s.Open("COM_TEST", 9600)
	assert.False(t, r.Success)
	assert.Equal(t, AlreadyOpenMessage, r.Content)

	r = s.Open("COM_OTHER", 115200)
	assert.False(t, r.Success)

	name, baud, open := s.Port()
	assert.True(t, open)
	assert.Equal(t, "COM_TEST", name)
	assert.Equal(t, uint32(9600), baud)
	assert.Len(t, drv.Handles(), 1)
}

func TestSendWhileClosed(t *testing.T) {
	drv := &drivertest.Driver{}
	s := newSession(t, drv)

	r := s.Send("hi")
	assert.False(t, r.Success)
	assert.Contains(t, r.Content, "No port open")
	assert.Zero(t, drv.Calls())
}

func TestOpenSendCloseRead(t *testing.T) {
	drv := &drivertest.Driver{}
	s := newSession(t, drv)

	require.True(t, s.Open("/dev/ttyUSB0", 115200).Success)

	r := s.Send("hi")
	require.True(t, r.Success, r.Content)
	assert.Equal(t, SentMessage, r.Content)

	r = s.Close()
	require.True(t, r.Success, r.Content)
	assert.Equal(t, "Port /dev/ttyUSB0 closed", r.Content)
	assert.Equal(t, StateClosed, s.State())

	calls := drv.Calls()
	r = s.Read()
	assert.False(t, r.Success)
	assert.Equal(t, NotOpenMessage, r.Content)
	assert.Equal(t, calls, drv.Calls())

	h := drv.Handles()[0]
	assert.Equal(t, []byte("hi"), h.Written())
	assert.Equal(t, 1, h.Closes())
}

func TestCloseWhileClosed(t *testing.T) {
	drv := &drivertest.Driver{}
	s := newSession(t, drv)

	r := s.Close()
	assert.False(t, r.Success)
	assert.Equal(t, NotOpenMessage, r.Content)
	assert.Zero(t, drv.Calls())
}

func TestCloseDriverFailureStillCloses(t *testing.T) {
	drv := &drivertest.Driver{CloseErr: errors.New("device gone")}
	s := newSession(t, drv)
	require.True(t, s.Open("COM3", 9600).Success)

	r := s.Close()
	assert.False(t, r.Success)
	assert.Equal(t, "Could not close port COM3: device gone", r.Content)
	assert.Equal(t, StateClosed, s.State())

	_, _, open := s.Port()
	assert.False(t, open)

	// a fresh open works after a failed close
	drv.CloseErr = nil
	assert.True(t, s.Open("COM3", 9600).Success)
}

func TestOpenDriverFailure(t *testing.T) {
	drv := &drivertest.Driver{OpenErr: fmt.Errorf("%w: /dev/ttyX", driver.ErrDeviceNotFound)}
	s := newSession(t, drv)

	r := s.Open("/dev/ttyX", 9600)
	assert.False(t, r.Success)
	assert.Equal(t, "Could not open the port: serial device not found: /dev/ttyX", r.Content)
	assert.Equal(t, StateClosed, s.State())
}

func TestDriverPanicIsRecovered(t *testing.T) {
	drv := &drivertest.Driver{OpenPanic: "boom"}
	s := newSession(t, drv)

	var r Result
	require.NotPanics(t, func() { r = s.Open("COM1", 9600) })
	assert.False(t, r.Success)
	assert.Contains(t, r.Content, "driver panic: boom")
	assert.Equal(t, StateClosed, s.State())
}

func TestSendFailures(t *testing.T) {
	tests := []struct {
		name    string
		drv     *drivertest.Driver
		content string
		want    string
	}{
		{
			name:    "timeout",
			drv:     &drivertest.Driver{WriteErr: fmt.Errorf("tarm: %w", driver.ErrWriteTimeout)},
			content: "hi",
			want:    WriteTimeoutMessage,
		},
		{
			name:    "error",
			drv:     &drivertest.Driver{WriteErr: errors.New("io error")},
			content: "hi",
			want:    "Serial write error: io error",
		},
		{
			name:    "short write",
			drv:     &drivertest.Driver{WriteLimit: 2},
			content: "hello",
			want:    "Serial write incomplete: wrote 2 of 5 bytes",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newSession(t, tt.drv)
			require.True(t, s.Open("COM1", 9600).Success)

			r := s.Send(tt.content)
			assert.False(t, r.Success)
			assert.Equal(t, tt.want, r.Content)
			assert.Equal(t, StateOpen, s.State())
		})
	}
}

func TestSendEscapes(t *testing.T) {
	drv := &drivertest.Driver{}
	s := newSession(t, drv)
	require.True(t, s.Open("COM1", 9600).Success)
	require.True(t, s.Send("0x020x23ok").Success)
	assert.Equal(t, []byte{0x02, 0x23, 'o', 'k'}, drv.Handles()[0].Written())

	drv = &drivertest.Driver{}
	s = newSession(t, drv, WithEscapePayload(false))
	require.True(t, s.Open("COM1", 9600).Success)
	require.True(t, s.Send("0x02").Success)
	assert.Equal(t, []byte("0x02"), drv.Handles()[0].Written())
}

func TestRead(t *testing.T) {
	drv := &drivertest.Driver{ReadData: []byte("hello world")}
	s := newSession(t, drv, WithReadBufferSize(5))
	require.True(t, s.Open("COM1", 9600).Success)

	r := s.Read()
	require.True(t, r.Success)
	assert.Equal(t, "hello", r.Content)

	r = s.Read()
	assert.Equal(t, " worl", r.Content)

	r = s.Read()
	assert.Equal(t, "d", r.Content)

	r = s.Read()
	assert.True(t, r.Success)
	assert.Empty(t, r.Content)
}

func TestReadInvalidUTF8(t *testing.T) {
	drv := &drivertest.Driver{ReadData: []byte{'o', 'k', 0xff, 0xfe}}
	s := newSession(t, drv)
	require.True(t, s.Open("COM1", 9600).Success)

	r := s.Read()
	require.True(t, r.Success)
	assert.Equal(t, "ok��", r.Content)
}

func TestReadFailures(t *testing.T) {
	drv := &drivertest.Driver{ReadErr: driver.ErrReadTimeout}
	s := newSession(t, drv)
	require.True(t, s.Open("COM1", 9600).Success)

	r := s.Read()
	assert.False(t, r.Success)
	assert.Equal(t, ReadTimeoutMessage, r.Content)

	drv.ReadErr = errors.New("framing error")
	r = s.Read()
	assert.False(t, r.Success)
	assert.Equal(t, "Serial read error: framing error", r.Content)
	assert.Equal(t, StateOpen, s.State())
}

func TestPing(t *testing.T) {
	drv := &drivertest.Driver{}
	s := newSession(t, drv)

	assert.Equal(t, "Pong!", s.Ping())
	require.True(t, s.Open("COM1", 9600).Success)
	assert.Equal(t, "Pong!", s.Ping())
}

func TestPortList(t *testing.T) {
	drv := &drivertest.Driver{Ports: []string{"/dev/ttyACM0", "/dev/ttyUSB0"}}
	s := newSession(t, drv)
	assert.Equal(t, []string{"/dev/ttyACM0", "/dev/ttyUSB0"}, s.PortList())

	require.True(t, s.Open("/dev/ttyUSB0", 9600).Success)
	assert.Equal(t, []string{"/dev/ttyACM0", "/dev/ttyUSB0"}, s.PortList())

	drv.ListErr = errors.New("udev unavailable")
	ports := s.PortList()
	assert.NotNil(t, ports)
	assert.Empty(t, ports)

	drv.ListErr = nil
	drv.Ports = nil
	assert.NotNil(t, s.PortList())
}

func TestShutdown(t *testing.T) {
	drv := &drivertest.Driver{}
	s := newSession(t, drv)

	require.NoError(t, s.Shutdown())

	require.True(t, s.Open("COM1", 9600).Success)
	require.NoError(t, s.Shutdown())
	require.NoError(t, s.Shutdown())
	assert.Equal(t, StateClosed, s.State())
	assert.Equal(t, 1, drv.Handles()[0].Closes())

	drv.CloseErr = errors.New("stuck")
	require.True(t, s.Open("COM1", 9600).Success)
	require.Error(t, s.Shutdown())
	assert.Equal(t, StateClosed, s.State())
}

func TestConcurrentOpenClose(t *testing.T) {
	drv := &drivertest.Driver{}
	s := newSession(t, drv)

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			s.Open("COM1", 9600)
		}()
		go func() {
			defer wg.Done()
			s.Close()
		}()
	}
	wg.Wait()

	handles := drv.Handles()
	open := 0
	for _, h := range handles {
		switch h.Closes() {
		case 0:
			open++
		case 1:
		default:
			t.Errorf("handle closed %d times", h.Closes())
		}
	}

	// exactly the handle still held by the session is unreleased
	if s.State() == StateOpen {
		assert.Equal(t, 1, open)
	} else {
		assert.Equal(t, 0, open)
	}

	require.NoError(t, s.Shutdown())
	for _, h := range drv.Handles() {
		assert.Equal(t, 1, h.Closes())
	}
}
