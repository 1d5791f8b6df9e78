// Package client is a thin wrapper around the SerialComService stub used by
// the command line and the interactive terminal.
package client

import (
	"context"
	"fmt"

	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"

	"github.com/allbin/serialterm/internal/serialterminal"
)

// Reply is the content/success pair returned by the port operations
type Reply struct {
	Content string
	Success bool
}

// Client talks to one serialterm server
type Client struct {
	conn *grpc.ClientConn
	stub serialterminal.SerialComServiceClient
}

// Dial connects to addr. The connection is established lazily on first call.
func Dial(addr string, opts ...grpc.DialOption) (*Client, error) {
	opts = append([]grpc.DialOption{
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	}, opts...)

	conn, err := grpc.NewClient(addr, opts...)
	if err != nil {
		return nil, fmt.Errorf("connecting to %s: %w", addr, err)
	}
	return &Client{conn: conn, stub: serialterminal.NewSerialComServiceClient(conn)}, nil
}

// Close tears down the connection
func (c *Client) Close() error {
	return c.conn.Close()
}

func (c *Client) Ping(ctx context.Context) (string, error) {
	rep, err := c.stub.Ping(ctx, &serialterminal.SerialPingReq{})
	if err != nil {
		return "", err
	}
	return rep.Content, nil
}

func (c *Client) Ports(ctx context.Context) ([]string, error) {
	rep, err := c.stub.GetPortList(ctx, &serialterminal.PortListReq{})
	if err != nil {
		return nil, err
	}
	return rep.Ports, nil
}

func (c *Client) Open(ctx context.Context, port string, baud uint32) (Reply, error) {
	rep, err := c.stub.OpenPort(ctx, &serialterminal.OpenPortReq{Port: port, Baudrate: baud})
	if err != nil {
		return Reply{}, err
	}
	return Reply{Content: rep.Content, Success: rep.Success}, nil
}

func (c *Client) ClosePort(ctx context.Context) (Reply, error) {
	rep, err := c.stub.ClosePort(ctx, &serialterminal.ClosePortReq{})
	if err != nil {
		return Reply{}, err
	}
	return Reply{Content: rep.Content, Success: rep.Success}, nil
}

func (c *Client) Send(ctx context.Context, content string) (Reply, error) {
	rep, err := c.stub.SendOnce(ctx, &serialterminal.SendOnceReq{Content: content})
	if err != nil {
		return Reply{}, err
	}
	return Reply{Content: rep.Content, Success: rep.Success}, nil
}

func (c *Client) Read(ctx context.Context) (Reply, error) {
	rep, err := c.stub.ReadOnce(ctx, &serialterminal.ReadOnceReq{})
	if err != nil {
		return Reply{}, err
	}
	return Reply{Content: rep.Content, Success: rep.Success}, nil
}
