package server

import (
	"context"

	"github.com/allbin/serialterm/internal/serialterminal"
	"github.com/allbin/serialterm/internal/session"
)

// Dispatcher forwards each SerialComService call to a Session
type Dispatcher struct {
	serialterminal.UnimplementedSerialComServiceServer

	session *session.Session
}

var _ serialterminal.SerialComServiceServer = (*Dispatcher)(nil)

// NewDispatcher returns a dispatcher bound to s
func NewDispatcher(s *session.Session) *Dispatcher {
	return &Dispatcher{session: s}
}

func (d *Dispatcher) Ping(context.Context, *serialterminal.SerialPingReq) (*serialterminal.SerialPingRep, error) {
	return &serialterminal.SerialPingRep{Content: d.session.Ping()}, nil
}

func (d *Dispatcher) GetPortList(context.Context, *serialterminal.PortListReq) (*serialterminal.PortListRep, error) {
	return &serialterminal.PortListRep{Ports: d.session.PortList()}, nil
}

func (d *Dispatcher) OpenPort(_ context.Context, req *serialterminal.OpenPortReq) (*serialterminal.OpenPortRep, error) {
	r := d.session.Open(req.Port, req.Baudrate)
	return &serialterminal.OpenPortRep{Content: r.Content, Success: r.Success}, nil
}

func (d *Dispatcher) ClosePort(context.Context, *serialterminal.ClosePortReq) (*serialterminal.ClosePortRep, error) {
	r := d.session.Close()
	return &serialterminal.ClosePortRep{Content: r.Content, Success: r.Success}, nil
}

func (d *Dispatcher) SendOnce(_ context.Context, req *serialterminal.SendOnceReq) (*serialterminal.SendOnceRep, error) {
	r := d.session.Send(req.Content)
	return &serialterminal.SendOnceRep{Content: r.Content, Success: r.Success}, nil
}

func (d *Dispatcher) ReadOnce(context.Context, *serialterminal.ReadOnceReq) (*serialterminal.ReadOnceRep, error) {
	r := d.session.Read()
	return &serialterminal.ReadOnceRep{Content: r.Content, Success: r.Success}, nil
}
