package grpc

import (
	"context"
	"testing"

	"github.com/mpetrenko/authcore/internal/common"
	pb "github.com/mpetrenko/authcore/internal/proto"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
)

func TestInterceptor_PublicMethod_AllowsWithoutToken(t *testing.T) {
	s := newServer(&fakeAuth{})

	ctx := context.Background()
	info := &grpc.UnaryServerInfo{FullMethod: pb.AuthCore_Login_FullMethodName}
	handlerCalled := false

	h := func(ctx context.Context, req interface{}) (interface{}, error) {
		handlerCalled = true
		return "ok", nil
	}

	resp, err := s.accessTokenInterceptor(ctx, nil, info, h)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !handlerCalled {
		t.Fatal("handler was not called")
	}
	if resp != "ok" {
		t.Fatalf("unexpected handler resp: %v", resp)
	}
}

func TestInterceptor_Protected_MissingToken(t *testing.T) {
	s := newServer(&fakeAuth{})

	ctx := context.Background()
	info := &grpc.UnaryServerInfo{FullMethod: pb.AuthCore_GetCurrentUser_FullMethodName}

	h := func(ctx context.Context, req interface{}) (interface{}, error) {
		t.Fatal("handler should not be called when token missing")
		return nil, nil
	}

	_, err := s.accessTokenInterceptor(ctx, nil, info, h)
	if err == nil {
		t.Fatal("expected error")
	}
	if status.Code(err) != codes.Unauthenticated {
		t.Fatalf("expected Unauthenticated, got %v", status.Code(err))
	}
	if status.Convert(err).Message() != "missing token" {
		t.Fatalf("expected 'missing token', got %q", status.Convert(err).Message())
	}
}

func TestInterceptor_Protected_EmptyTokenValue(t *testing.T) {
	s := newServer(&fakeAuth{})

	md := metadata.New(map[string]string{common.AccessTokenHeaderName: ""})
	ctx := metadata.NewIncomingContext(context.Background(), md)
	info := &grpc.UnaryServerInfo{FullMethod: pb.AuthCore_Logout_FullMethodName}

	h := func(ctx context.Context, req interface{}) (interface{}, error) {
		t.Fatal("handler should not be called for empty token")
		return nil, nil
	}

	_, err := s.accessTokenInterceptor(ctx, nil, info, h)
	if status.Code(err) != codes.Unauthenticated {
		t.Fatalf("expected Unauthenticated, got %v", status.Code(err))
	}
}

func TestInterceptor_Protected_TokenPropagatedToContext(t *testing.T) {
	s := newServer(&fakeAuth{})

	md := metadata.New(map[string]string{common.AccessTokenHeaderName: "session-token"})
	ctx := metadata.NewIncomingContext(context.Background(), md)
	info := &grpc.UnaryServerInfo{FullMethod: pb.AuthCore_GetCurrentUser_FullMethodName}

	var gotFromCtx string
	h := func(ctx context.Context, req interface{}) (interface{}, error) {
		gotFromCtx, _ = tokenFromContext(ctx)
		return "ok", nil
	}

	resp, err := s.accessTokenInterceptor(ctx, nil, info, h)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp != "ok" {
		t.Fatalf("unexpected handler resp: %v", resp)
	}
	if gotFromCtx != "session-token" {
		t.Fatalf("token not propagated in context: got %q", gotFromCtx)
	}
}
