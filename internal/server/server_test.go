package server

import (
	"context"
	"errors"
	"io"
	"net"
	"sync"
	"testing"
	"time"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/grpc/test/bufconn"

	"github.com/allbin/serialterm/internal/client"
	"github.com/allbin/serialterm/internal/driver/drivertest"
	"github.com/allbin/serialterm/internal/serialterminal"
	"github.com/allbin/serialterm/internal/session"
)

type harness struct {
	driver  *drivertest.Driver
	session *session.Session
	client  *client.Client
}

func start(t *testing.T, drv *drivertest.Driver, opts ...grpc.ServerOption) *harness {
	t.Helper()

	sess, err := session.New(drv)
	require.NoError(t, err)

	logger := log.New(io.Discard)
	srv := New(sess, logger, opts...)

	lis := bufconn.Listen(1 << 20)
	ctx, cancel := context.WithCancel(context.Background())
	served := make(chan error, 1)
	go func() { served <- srv.Serve(ctx, lis) }()

	dialer := grpc.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) {
		return lis.DialContext(ctx)
	})
	c, err := client.Dial("passthrough:///bufnet", dialer)
	require.NoError(t, err)

	t.Cleanup(func() {
		c.Close()
		cancel()
		select {
		case err := <-served:
			assert.NoError(t, err)
		case <-time.After(5 * time.Second):
			t.Error("server did not stop")
		}
		assert.NoError(t, sess.Shutdown())
	})

	return &harness{driver: drv, session: sess, client: c}
}

func testContext(t *testing.T) context.Context {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	t.Cleanup(cancel)
	return ctx
}

func TestPingAndPortList(t *testing.T) {
	h := start(t, &drivertest.Driver{Ports: []string{"/dev/ttyUSB0", "/dev/ttyUSB1"}})
	ctx := testContext(t)

	pong, err := h.client.Ping(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Pong!", pong)

	ports, err := h.client.Ports(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"/dev/ttyUSB0", "/dev/ttyUSB1"}, ports)
}

func TestPortListDriverError(t *testing.T) {
	h := start(t, &drivertest.Driver{ListErr: errors.New("no /dev")})

	ports, err := h.client.Ports(testContext(t))
	require.NoError(t, err)
	assert.Empty(t, ports)
}

func TestSessionOverRPC(t *testing.T) {
	h := start(t, &drivertest.Driver{ReadData: []byte("OK\r\n")})
	ctx := testContext(t)

	rep, err := h.client.Send(ctx, "hi")
	require.NoError(t, err)
	assert.False(t, rep.Success)
	assert.Equal(t, session.NotOpenMessage, rep.Content)

	rep, err = h.client.Open(ctx, "COM_TEST", 9600)
	require.NoError(t, err)
	assert.True(t, rep.Success, rep.Content)

	rep, err = h.client.Open(ctx, "COM_TEST", 9600)
	require.NoError(t, err)
	assert.False(t, rep.Success)
	assert.Equal(t, session.AlreadyOpenMessage, rep.Content)

	rep, err = h.client.Send(ctx, "AT0x0D")
	require.NoError(t, err)
	assert.Equal(t, client.Reply{Content: "Request sent", Success: true}, rep)

	rep, err = h.client.Read(ctx)
	require.NoError(t, err)
	assert.Equal(t, client.Reply{Content: "OK\r\n", Success: true}, rep)

	rep, err = h.client.Read(ctx)
	require.NoError(t, err)
	assert.Equal(t, client.Reply{Content: "", Success: true}, rep)

	rep, err = h.client.ClosePort(ctx)
	require.NoError(t, err)
	assert.Equal(t, client.Reply{Content: "Port COM_TEST closed", Success: true}, rep)

	rep, err = h.client.Read(ctx)
	require.NoError(t, err)
	assert.False(t, rep.Success)

	rep, err = h.client.ClosePort(ctx)
	require.NoError(t, err)
	assert.False(t, rep.Success)

	handles := h.driver.Handles()
	require.Len(t, handles, 1)
	assert.Equal(t, []byte{'A', 'T', 0x0d}, handles[0].Written())
	assert.Equal(t, uint32(9600), handles[0].Baud)
}

func TestDriverPanicIsAResult(t *testing.T) {
	h := start(t, &drivertest.Driver{OpenPanic: "cable yanked"})

	rep, err := h.client.Open(testContext(t), "COM1", 9600)
	require.NoError(t, err)
	assert.False(t, rep.Success)
	assert.Contains(t, rep.Content, "cable yanked")
}

func TestConcurrentClients(t *testing.T) {
	h := start(t, &drivertest.Driver{})
	ctx := testContext(t)

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			_, err := h.client.Open(ctx, "COM1", 9600)
			assert.NoError(t, err)
		}()
		go func() {
			defer wg.Done()
			_, err := h.client.ClosePort(ctx)
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	for _, handle := range h.driver.Handles() {
		assert.LessOrEqual(t, handle.Closes(), 1)
	}
}

// panicky replaces the dispatcher to exercise the recovery interceptor
type panicky struct {
	serialterminal.UnimplementedSerialComServiceServer
}

func (panicky) Ping(context.Context, *serialterminal.SerialPingReq) (*serialterminal.SerialPingRep, error) {
	panic("bug")
}

func TestRecoverInterceptor(t *testing.T) {
	logger := log.New(io.Discard)
	gs := grpc.NewServer(grpc.ChainUnaryInterceptor(logUnary(logger), recoverUnary(logger)))
	serialterminal.RegisterSerialComServiceServer(gs, panicky{})

	lis := bufconn.Listen(1 << 20)
	go gs.Serve(lis)
	t.Cleanup(gs.Stop)

	c, err := client.Dial("passthrough:///bufnet", grpc.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) {
		return lis.DialContext(ctx)
	}))
	require.NoError(t, err)
	t.Cleanup(func() { c.Close() })

	ctx := testContext(t)
	_, err = c.Ping(ctx)
	assert.Equal(t, codes.Internal, status.Code(err))

	_, err = c.Ports(ctx)
	assert.Equal(t, codes.Unimplemented, status.Code(err))
}

func TestListen(t *testing.T) {
	lis, err := Listen("127.0.0.1:0")
	require.NoError(t, err)
	defer lis.Close()

	_, err = Listen(lis.Addr().String())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to bind")
}
