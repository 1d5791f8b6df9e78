//go:build linux

package driver

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestTarmReadTimeout(t *testing.T) {
	require.Equal(t, time.Nanosecond, tarmReadTimeout(0))
	require.Equal(t, 10*time.Millisecond, tarmReadTimeout(10*time.Millisecond))
}

func TestTarm_ZeroTimeoutReadReturns(t *testing.T) {
	_, slave := openPTY(t)

	drv, err := New(Tarm, WithReadTimeout(0))
	require.NoError(t, err)

	h, err := drv.Open(slave.Name(), 9600)
	require.NoError(t, err)

	type result struct {
		n   int
		err error
	}
	done := make(chan result, 1)
	go func() {
		n, err := h.Read(make([]byte, 8))
		done <- result{n, err}
	}()

	select {
	case r := <-done:
		require.NoError(t, r.err)
		require.Zero(t, r.n)
	case <-time.After(2 * time.Second):
		t.Fatal("read on an idle port did not return")
	}
	require.NoError(t, h.Close())
}

func TestTarm_ReadWrite(t *testing.T) {
	master, slave := openPTY(t)

	drv, err := New(Tarm, WithReadTimeout(100*time.Millisecond))
	require.NoError(t, err)

	h, err := drv.Open(slave.Name(), 115200)
	require.NoError(t, err)
	t.Cleanup(func() { h.Close() })

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
}
