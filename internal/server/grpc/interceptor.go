package grpc

import (
	"context"
	"errors"
	"strings"

	"github.com/khushal/hello-grpc/internal/common"
	pb "github.com/khushal/hello-grpc/internal/proto"
	"github.com/khushal/hello-grpc/internal/server/auth"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
)

type ctxKey string

const userIDKey ctxKey = "userID"

// accessTokenInterceptor guards GetUserProfile. The access token arrives in
// the "authorization" metadata entry as "Bearer <token>"; its subject is put
// into the context under userIDKey for the handler.
func (s *GRPCServer) accessTokenInterceptor(ctx context.Context, req interface{}, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (interface{}, error) {

	if info.FullMethod == pb.UserService_GetUserProfile_FullMethodName {

		var header string
		if md, ok := metadata.FromIncomingContext(ctx); ok {
			values := md.Get(common.AuthorizationHeaderName)
			if len(values) > 0 {
				header = values[0]
			}
		}
		if len(header) == 0 {
			return nil, status.Error(codes.Unauthenticated, "missing token")
		}
		if !strings.HasPrefix(header, common.BearerPrefix) {
			return nil, status.Error(codes.Unauthenticated, "invalid authorization header")
		}

		claims, err := auth.ParseToken(strings.TrimPrefix(header, common.BearerPrefix), s.jwtSecret)
		if err != nil {
			if errors.Is(err, common.ErrTokenExpired) {
				return nil, status.Error(codes.Unauthenticated, "token expired")
			}
			return nil, status.Error(codes.Unauthenticated, "invalid token")
		}
		if claims.Kind != auth.TokenKindAccess {
			return nil, status.Error(codes.Unauthenticated, "invalid token")
		}

		ctx = context.WithValue(ctx, userIDKey, claims.UserID())

	}

	return handler(ctx, req)
}
