package grpc

import (
	"context"

	"github.com/mpetrenko/authcore/internal/common"
	pb "github.com/mpetrenko/authcore/internal/proto"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
)

type ctxKey string

const accessTokenKey ctxKey = "accessToken"

// protectedMethods lists RPCs that require a session token in metadata.
var protectedMethods = map[string]bool{
	pb.AuthCore_GetCurrentUser_FullMethodName: true,
	pb.AuthCore_Logout_FullMethodName:         true,
}

// accessTokenInterceptor extracts the session token from incoming metadata
// for protected methods and stores it in the request context. Token
// verification itself is left to the auth service so that expiry and
// tampering map to distinct errors.
func (s *GRPCServer) accessTokenInterceptor(ctx context.Context, req interface{}, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (interface{}, error) {

	if protectedMethods[info.FullMethod] {

		var accessToken string
		if md, ok := metadata.FromIncomingContext(ctx); ok {
			values := md.Get(common.AccessTokenHeaderName)
			if len(values) > 0 {
				accessToken = values[0]
			}
		}
		if len(accessToken) == 0 {
			return nil, status.Error(codes.Unauthenticated, "missing token")
		}

		ctx = context.WithValue(ctx, accessTokenKey, accessToken)

	}

	return handler(ctx, req)
}

// tokenFromContext returns the session token placed there by the interceptor.
func tokenFromContext(ctx context.Context) (string, bool) {
	token, ok := ctx.Value(accessTokenKey).(string)
	return token, ok && token != ""
}
