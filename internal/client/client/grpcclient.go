package client

import (
	"context"
	"fmt"

	"github.com/mpetrenko/authcore/internal/client/models"
	"github.com/mpetrenko/authcore/internal/common"
	pb "github.com/mpetrenko/authcore/internal/proto"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
)

type GRPCClient struct {
	endpointURL string
	conn        *grpc.ClientConn
	client      pb.AuthCoreClient
	accessToken string
}

func withAccessToken(ctx context.Context, token string) context.Context {
	md, _ := metadata.FromOutgoingContext(ctx)
	md = md.Copy()
	if md == nil {
		md = metadata.MD{}
	}
	md.Delete(common.AccessTokenHeaderName)
	md.Set(common.AccessTokenHeaderName, token)

	return metadata.NewOutgoingContext(ctx, md)
}

// accessTokenInterceptor attaches the cached session token to outgoing
// calls. Session tokens are stateless and cannot be renewed in place, so
// when the server reports expiry the cached token is dropped and the user
// has to log in again.
func (s *GRPCClient) accessTokenInterceptor(
	ctx context.Context,
	method string,
	req, reply interface{},
	cc *grpc.ClientConn,
	invoker grpc.UnaryInvoker,
	opts ...grpc.CallOption,
) error {

	if s.accessToken != "" {
		ctx = withAccessToken(ctx, s.accessToken)
	}

	err := invoker(ctx, method, req, reply, cc, opts...)

	if err != nil {
		st, ok := status.FromError(err)
		if ok && st.Code() == codes.Unauthenticated && st.Message() == common.SessionExpiredMessage {
			s.accessToken = ""
		}
	}

	return err
}

func NewAuthCoreClientService(endpointURL string) (*GRPCClient, error) {
	c := &GRPCClient{endpointURL: endpointURL}
	err := c.InitGRPCClient()
	if err != nil {
		return nil, err
	}
	return c, nil
}

func (s *GRPCClient) InitGRPCClient() error {

	conn, err := grpc.NewClient(s.endpointURL, grpc.WithTransportCredentials(insecure.NewCredentials()), grpc.WithUnaryInterceptor(s.accessTokenInterceptor))
	if err != nil {
		return err
	}
	s.conn = conn
	s.client = pb.NewAuthCoreClient(conn)
	return nil
}

func (s *GRPCClient) Register(ctx context.Context, email, password, name string) error {

	req := &pb.RegisterRequest{Email: email, Password: password, Name: name}

	resp, err := s.client.Register(ctx, req)

	if err != nil {
		return s.mapError(err)
	}

	s.accessToken = resp.Token

	return nil

}

func (s *GRPCClient) Login(ctx context.Context, email, password string) error {

	req := &pb.LoginRequest{Email: email, Password: password}

	resp, err := s.client.Login(ctx, req)

	if err != nil {
		return s.mapError(err)
	}

	s.accessToken = resp.Token

	return nil

}

func (s *GRPCClient) CurrentUser(ctx context.Context) (*models.UserProfile, error) {

	req := &pb.GetCurrentUserRequest{}

	resp, err := s.client.GetCurrentUser(ctx, req)

	if err != nil {
		return nil, s.mapError(err)
	}

	return &models.UserProfile{ID: resp.Id, Email: resp.Email, Name: resp.Name}, nil

}

// Logout discards the cached session token. The server call is advisory:
// tokens are stateless, so the local discard is what ends the session.
func (s *GRPCClient) Logout(ctx context.Context) error {

	req := &pb.LogoutRequest{}

	_, err := s.client.Logout(ctx, req)

	s.accessToken = ""

	if err != nil {
		return s.mapError(err)
	}

	return nil

}

func (s *GRPCClient) Ping(ctx context.Context) error {

	req := &pb.PingRequest{}

	resp, err := s.client.Ping(ctx, req)
	if err != nil {
		return s.mapError(err)
	}

	if resp.Status != "OK" {
		return ErrUnavailable
	}

	return nil

}

func (s *GRPCClient) IsLoggedIn() bool {
	return s.accessToken != ""
}

func (s *GRPCClient) Close() error {
	return s.conn.Close()
}

func (s *GRPCClient) mapError(err error) error {
	if err == nil {
		return nil
	}
	st, _ := status.FromError(err)
	switch st.Code() {
	case codes.InvalidArgument:
		return fmt.Errorf("%w: %s", ErrInvalidInput, st.Message())
	case codes.AlreadyExists:
		return ErrEmailTaken
	case codes.Unauthenticated:
		if st.Message() == common.SessionExpiredMessage {
			return ErrSessionExpired
		}
		return ErrUnauthorized
	case codes.PermissionDenied:
		return ErrUnauthorized
	case codes.NotFound:
		return ErrNotFound
	case codes.Unavailable, codes.DeadlineExceeded:
		return ErrUnavailable
	default:
		return fmt.Errorf("rpc error: %w", err)
	}
}
