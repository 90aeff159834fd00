package grpc

import (
	"context"
	"net"

	"github.com/mpetrenko/authcore/internal/logging"
	pb "github.com/mpetrenko/authcore/internal/proto"
	"github.com/mpetrenko/authcore/internal/server/models"
	"google.golang.org/grpc"
)

// authSvc is the slice of the auth service the transport layer needs.
type authSvc interface {
	Register(ctx context.Context, email, password, name string) (string, error)
	Login(ctx context.Context, email, password string) (string, error)
	GetCurrentUser(ctx context.Context, token string) (*models.UserView, error)
	Logout(ctx context.Context) error
}

type GRPCServer struct {
	pb.UnimplementedAuthCoreServer
	address string
	auth    authSvc
	logger  logging.Logger
}

func NewGRPCServer(a string, l logging.Logger, as authSvc) (*GRPCServer, error) {
	return &GRPCServer{
		address: a,
		logger:  l.With("module", "grpc_server"),
		auth:    as,
	}, nil
}

func (s *GRPCServer) Run(ctx context.Context) error {

	// announces address
	listen, err := net.Listen("tcp", s.address)
	if err != nil {
		return err
	}

	// creates gRPC-server
	srv := grpc.NewServer(grpc.ChainUnaryInterceptor(s.accessTokenInterceptor))

	// registers service
	pb.RegisterAuthCoreServer(srv, s)

	go func() {
		<-ctx.Done()
		s.logger.Info(ctx, "Stopping gRPC server...")
		srv.GracefulStop()
	}()

	s.logger.Info(ctx, "Starting gRPC server", "address", s.address)

	// starts accepting incoming connections
	if err := srv.Serve(listen); err != nil {
		return err
	}

	return nil
}
