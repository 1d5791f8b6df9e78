// Package server hosts the SerialComService over gRPC.
package server

import (
	"context"
	"errors"
	"fmt"
	"net"
	"path"
	"time"

	"github.com/charmbracelet/log"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/allbin/serialterm/internal/serialterminal"
	"github.com/allbin/serialterm/internal/session"
)

// Server is a gRPC server exposing one Session
type Server struct {
	grpc   *grpc.Server
	logger *log.Logger
}

// New builds a server for s. Every call is logged and handler panics are
// reported as codes.Internal.
func New(s *session.Session, logger *log.Logger, opts ...grpc.ServerOption) *Server {
	opts = append([]grpc.ServerOption{
		grpc.ChainUnaryInterceptor(logUnary(logger), recoverUnary(logger)),
	}, opts...)

	gs := grpc.NewServer(opts...)
	serialterminal.RegisterSerialComServiceServer(gs, NewDispatcher(s))
	return &Server{grpc: gs, logger: logger}
}

// Listen binds a TCP listener on addr
func Listen(addr string) (net.Listener, error) {
	lis, err := net.Listen("tcp", addr)
	if err != nil {
		return nil, fmt.Errorf("failed to bind %s: %w", addr, err)
	}
	return lis, nil
}

// Serve accepts connections on lis until ctx is cancelled, then stops
// gracefully. It returns nil after a clean stop.
func (s *Server) Serve(ctx context.Context, lis net.Listener) error {
	done := make(chan struct{})
	defer close(done)

	go func() {
		select {
		case <-ctx.Done():
			s.logger.Info("shutting down")
			s.grpc.GracefulStop()
		case <-done:
		}
	}()

	s.logger.Info("listening", "addr", lis.Addr().String())
	if err := s.grpc.Serve(lis); err != nil && !errors.Is(err, grpc.ErrServerStopped) {
		return fmt.Errorf("serve: %w", err)
	}
	return nil
}

// Stop closes all connections immediately
func (s *Server) Stop() {
	s.grpc.Stop()
}

func logUnary(logger *log.Logger) grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
		start := time.Now()
		resp, err := handler(ctx, req)
		logger.Info("request",
			"method", path.Base(info.FullMethod),
			"code", status.Code(err),
			"duration", time.Since(start),
		)
		return resp, err
	}
}

func recoverUnary(logger *log.Logger) grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (resp any, err error) {
		defer func() {
			if r := recover(); r != nil {
				logger.Error("handler panic", "method", info.FullMethod, "panic", r)
				err = status.Errorf(codes.Internal, "internal error in %s", path.Base(info.FullMethod))
			}
		}()
		return handler(ctx, req)
	}
}
