package grpc

import (
	"context"
	"errors"

	"github.com/mpetrenko/authcore/internal/common"
	pb "github.com/mpetrenko/authcore/internal/proto"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// toStatus maps service errors to gRPC statuses. Anything outside the
// known taxonomy is logged server-side and surfaced as a bare Internal.
func (s *GRPCServer) toStatus(ctx context.Context, err error) error {
	switch {
	case errors.Is(err, common.ErrInvalidInput):
		return status.Error(codes.InvalidArgument, err.Error())
	case errors.Is(err, common.ErrDuplicateEmail):
		return status.Error(codes.AlreadyExists, "email already registered")
	case errors.Is(err, common.ErrInvalidCredentials):
		return status.Error(codes.Unauthenticated, "invalid email or password")
	case errors.Is(err, common.ErrTokenExpired):
		return status.Error(codes.Unauthenticated, common.SessionExpiredMessage)
	case errors.Is(err, common.ErrInvalidToken):
		return status.Error(codes.Unauthenticated, "invalid session")
	case errors.Is(err, common.ErrUserNotFound):
		return status.Error(codes.NotFound, "user not found")
	default:
		s.logger.Error(ctx, "internal error", "error", err.Error())
		return status.Error(codes.Internal, "internal error")
	}
}

func (s *GRPCServer) Register(ctx context.Context, req *pb.RegisterRequest) (*pb.RegisterResponse, error) {

	s.logger.Info(ctx, "Registration request")

	token, err := s.auth.Register(ctx, req.GetEmail(), req.GetPassword(), req.GetName())

	if err != nil {
		return nil, s.toStatus(ctx, err)
	}

	s.logger.Info(ctx, "Registered", "email", req.GetEmail())
	return &pb.RegisterResponse{Token: token}, nil

}

func (s *GRPCServer) Login(ctx context.Context, req *pb.LoginRequest) (*pb.LoginResponse, error) {

	token, err := s.auth.Login(ctx, req.GetEmail(), req.GetPassword())

	if err != nil {
		return nil, s.toStatus(ctx, err)
	}

	return &pb.LoginResponse{Token: token}, nil

}

func (s *GRPCServer) GetCurrentUser(ctx context.Context, req *pb.GetCurrentUserRequest) (*pb.GetCurrentUserResponse, error) {

	token, ok := tokenFromContext(ctx)
	if !ok {
		return nil, status.Error(codes.Unauthenticated, "missing token")
	}

	view, err := s.auth.GetCurrentUser(ctx, token)

	if err != nil {
		return nil, s.toStatus(ctx, err)
	}

	return &pb.GetCurrentUserResponse{Id: view.ID, Email: view.Email, Name: view.Name}, nil

}

func (s *GRPCServer) Logout(ctx context.Context, req *pb.LogoutRequest) (*pb.LogoutResponse, error) {

	if _, ok := tokenFromContext(ctx); !ok {
		return nil, status.Error(codes.Unauthenticated, "missing token")
	}

	if err := s.auth.Logout(ctx); err != nil {
		return nil, s.toStatus(ctx, err)
	}

	return &pb.LogoutResponse{}, nil

}

func (s *GRPCServer) Ping(ctx context.Context, req *pb.PingRequest) (*pb.PingResponse, error) {

	return &pb.PingResponse{Status: "OK"}, nil

}
