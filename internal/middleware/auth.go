// internal/middleware/auth.go
package middleware

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"

	"github.com/planmaster/planmaster/pkg/auth"
)

// AuthInterceptor provides authentication middleware
type AuthInterceptor struct {
	tokenManager  *auth.TokenManager
	publicMethods map[string]bool
}

// NewAuthInterceptor creates a new auth interceptor
func NewAuthInterceptor(tokenManager *auth.TokenManager) *AuthInterceptor {
	// Define which methods don't require authentication
	publicMethods := map[string]bool{
		"/auth.v1.AuthService/Register": true,
		"/auth.v1.AuthService/Login":    true,
		"/grpc.health.v1.Health/Check":  true,
		"/grpc.health.v1.Health/Watch":  true,
	}

	return &AuthInterceptor{
		tokenManager:  tokenManager,
		publicMethods: publicMethods,
	}
}

// Unary returns a unary server interceptor for authentication
func (a *AuthInterceptor) Unary() grpc.UnaryServerInterceptor {
	return func(
		ctx context.Context,
		req interface{},
		info *grpc.UnaryServerInfo,
		handler grpc.UnaryHandler,
	) (interface{}, error) {
		if a.publicMethods[info.FullMethod] {
			return handler(ctx, req)
		}

		newCtx, err := a.authenticate(ctx)
		if err != nil {
			return nil, err
		}

		return handler(newCtx, req)
	}
}

// authenticate extracts and validates the JWT token from metadata
func (a *AuthInterceptor) authenticate(ctx context.Context) (context.Context, error) {
	md, ok := metadata.FromIncomingContext(ctx)
	if !ok {
		return nil, status.Error(codes.Unauthenticated, "missing metadata")
	}

	authHeaders := md.Get("authorization")
	if len(authHeaders) == 0 {
		return nil, status.Error(codes.Unauthenticated, "missing authorization header")
	}

	token, err := auth.ExtractTokenFromHeader(authHeaders[0])
	if err != nil {
		return nil, status.Error(codes.Unauthenticated, err.Error())
	}

	claims, err := a.tokenManager.Validate(token)
	if err != nil {
		return nil, status.Error(codes.Unauthenticated, "invalid token")
	}

	return WithUser(ctx, claims.UserID, claims.Email), nil
}
