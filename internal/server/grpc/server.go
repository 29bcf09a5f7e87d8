// Package grpc exposes the authentication engine over gRPC as the
// gatekeeper.v1.Auth service defined in proto/gatekeeper/v1/auth.proto.
package grpc

import (
	"context"
	"net"

	"github.com/dmitrijs2005/gatekeeper/internal/logging"
	pb "github.com/dmitrijs2005/gatekeeper/internal/proto"
	"github.com/dmitrijs2005/gatekeeper/internal/server/services"
	"github.com/dmitrijs2005/gatekeeper/internal/server/sessions"
	"google.golang.org/grpc"
)

type Server struct {
	pb.UnimplementedAuthServer
	address  string
	svc      *services.Services
	sessions *sessions.Manager
	logger   logging.Logger
}

func NewServer(address string, l logging.Logger, svc *services.Services, sm *sessions.Manager) *Server {
	return &Server{
		address:  address,
		logger:   l.With("module", "grpc_server"),
		svc:      svc,
		sessions: sm,
	}
}

// newGRPC builds a grpc.Server with the auth service registered.
func (s *Server) newGRPC() *grpc.Server {
	srv := grpc.NewServer(grpc.ChainUnaryInterceptor(s.loggingInterceptor, s.sessionInterceptor))
	pb.RegisterAuthServer(srv, s)
	return srv
}

// Run listens on the configured address until ctx is done.
func (s *Server) Run(ctx context.Context) error {
	listen, err := net.Listen("tcp", s.address)
	if err != nil {
		return err
	}
	return s.Serve(ctx, listen)
}

// Serve accepts connections on lis until ctx is done, then stops gracefully.
func (s *Server) Serve(ctx context.Context, lis net.Listener) error {
	srv := s.newGRPC()

	go func() {
		<-ctx.Done()
		s.logger.Info(ctx, "Stopping gRPC server...")
		srv.GracefulStop()
	}()

	s.logger.Info(ctx, "Starting gRPC server", "address", lis.Addr().String())
	return srv.Serve(lis)
}
