// internal/service/auth_service.go
package service

import (
	"context"
	"log"
	"strings"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/emptypb"
	"google.golang.org/protobuf/types/known/timestamppb"

	authv1 "github.com/planmaster/planmaster/api/proto/auth/v1/generated"
	ent "github.com/planmaster/planmaster/ent/generated"
	"github.com/planmaster/planmaster/ent/generated/user"
	"github.com/planmaster/planmaster/pkg/auth"
)

// AuthService implements the identity surface: registration, login and
// caller introspection.
type AuthService struct {
	authv1.UnimplementedAuthServiceServer
	client    *ent.Client
	tokens    *auth.TokenManager
	passwords *auth.PasswordManager
}

func NewAuthService(client *ent.Client, tokens *auth.TokenManager, passwords *auth.PasswordManager) *AuthService {
	return &AuthService{
		client:    client,
		tokens:    tokens,
		passwords: passwords,
	}
}

// Register creates a new user account.
func (s *AuthService) Register(ctx context.Context, req *authv1.RegisterRequest) (*authv1.RegisterResponse, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))

	hash, err := s.passwords.HashPassword(req.Password)
	if err != nil {
		return nil, status.Error(codes.InvalidArgument, "invalid password")
	}

	u, err := s.client.User.Create().
		SetEmail(email).
		SetPasswordHash(hash).
		SetDisplayName(req.DisplayName).
		Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			return nil, status.Error(codes.AlreadyExists, "email is already registered")
		}
		log.Printf("Failed to create user: %v", err)
		return nil, status.Error(codes.Internal, "failed to create user")
	}

	return &authv1.RegisterResponse{
		User: convertUserToProto(u),
	}, nil
}

// Login verifies credentials and issues an access token.
func (s *AuthService) Login(ctx context.Context, req *authv1.LoginRequest) (*authv1.LoginResponse, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))

	u, err := s.client.User.Query().
		Where(user.EmailEQ(email)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, status.Error(codes.Unauthenticated, "invalid email or password")
		}
		log.Printf("Failed to load user: %v", err)
		return nil, status.Error(codes.Internal, "failed to log in")
	}

	if err := s.passwords.ComparePassword(u.PasswordHash, req.Password); err != nil {
		return nil, status.Error(codes.Unauthenticated, "invalid email or password")
	}

	token, expiresAt, err := s.tokens.Generate(u.ID, u.Email)
	if err != nil {
		log.Printf("Failed to sign token: %v", err)
		return nil, status.Error(codes.Internal, "failed to log in")
	}

	return &authv1.LoginResponse{
		AccessToken: token,
		ExpiresAt:   timestamppb.New(expiresAt),
		User:        convertUserToProto(u),
	}, nil
}

// Me returns the authenticated caller's account.
func (s *AuthService) Me(ctx context.Context, _ *emptypb.Empty) (*authv1.MeResponse, error) {
	userID, err := callerID(ctx)
	if err != nil {
		return nil, err
	}

	u, err := s.client.User.Get(ctx, userID)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, status.Error(codes.NotFound, "user not found")
		}
		log.Printf("Failed to load user: %v", err)
		return nil, status.Error(codes.Internal, "failed to load user")
	}

	return &authv1.MeResponse{
		User: convertUserToProto(u),
	}, nil
}

func convertUserToProto(u *ent.User) *authv1.User {
	return &authv1.User{
		Id:          u.ID.String(),
		Email:       u.Email,
		DisplayName: u.DisplayName,
		CreatedAt:   timestamppb.New(u.CreatedAt),
	}
}
