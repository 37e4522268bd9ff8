// internal/service/auth_service_test.go
package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/emptypb"

	authv1 "github.com/planmaster/planmaster/api/proto/auth/v1/generated"
	ent "github.com/planmaster/planmaster/ent/generated"
	"github.com/planmaster/planmaster/pkg/auth"
)

func newTestAuthService(t *testing.T) (*AuthService, *ent.Client) {
	client := setupTestDB(t)
	t.Cleanup(func() { client.Close() })

	tokens := auth.NewTokenManager("test-secret", time.Hour)
	return NewAuthService(client, tokens, auth.NewPasswordManager()), client
}

func TestAuthService_Register(t *testing.T) {
	svc, _ := newTestAuthService(t)
	ctx := context.Background()

	resp, err := svc.Register(ctx, &authv1.RegisterRequest{
		Email:       "New.User@Example.com",
		Password:    "SecurePass123!",
		DisplayName: "New User",
	})
	require.NoError(t, err)
	assert.Equal(t, "new.user@example.com", resp.User.Email, "emails are normalized")
	assert.Equal(t, "New User", resp.User.DisplayName)
	assert.NotEmpty(t, resp.User.Id)

	// Same address again, regardless of case.
	_, err = svc.Register(ctx, &authv1.RegisterRequest{
		Email:       "new.user@example.com",
		Password:    "OtherPass456!",
		DisplayName: "Impostor",
	})
	require.Error(t, err)
	assert.Equal(t, codes.AlreadyExists, status.Code(err))
}

func TestAuthService_Login(t *testing.T) {
	svc, _ := newTestAuthService(t)
	ctx := context.Background()

	_, err := svc.Register(ctx, &authv1.RegisterRequest{
		Email:       "login@example.com",
		Password:    "SecurePass123!",
		DisplayName: "Login User",
	})
	require.NoError(t, err)

	t.Run("valid credentials", func(t *testing.T) {
		resp, err := svc.Login(ctx, &authv1.LoginRequest{
			Email:    "login@example.com",
			Password: "SecurePass123!",
		})
		require.NoError(t, err)
		assert.NotEmpty(t, resp.AccessToken)
		assert.True(t, resp.ExpiresAt.AsTime().After(time.Now()))
		assert.Equal(t, "login@example.com", resp.User.Email)
	})

	t.Run("wrong password", func(t *testing.T) {
		_, err := svc.Login(ctx, &authv1.LoginRequest{
			Email:    "login@example.com",
			Password: "WrongPass!",
		})
		require.Error(t, err)
		assert.Equal(t, codes.Unauthenticated, status.Code(err))
	})

	t.Run("unknown email", func(t *testing.T) {
		_, err := svc.Login(ctx, &authv1.LoginRequest{
			Email:    "nobody@example.com",
			Password: "SecurePass123!",
		})
		require.Error(t, err)
		// Unknown address and wrong password are indistinguishable.
		assert.Equal(t, codes.Unauthenticated, status.Code(err))
	})
}

func TestAuthService_Me(t *testing.T) {
	svc, client := newTestAuthService(t)

	u := createTestUser(t, client, "me@example.com")
	resp, err := svc.Me(userContext(u), &emptypb.Empty{})
	require.NoError(t, err)
	assert.Equal(t, u.ID.String(), resp.User.Id)
	assert.Equal(t, "me@example.com", resp.User.Email)

	_, err = svc.Me(context.Background(), &emptypb.Empty{})
	require.Error(t, err)
	assert.Equal(t, codes.Unauthenticated, status.Code(err))
}
