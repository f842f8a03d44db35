package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/hearingclinic/admin-api/internal/auth"
	"github.com/hearingclinic/admin-api/internal/models"
	"github.com/hearingclinic/admin-api/internal/repository"
)

// AuthService verifies credentials and mints access tokens.
type AuthService struct {
	users  repository.UserStore
	tokens *auth.TokenManager
}

// NewAuthService creates a new auth service
func NewAuthService(users repository.UserStore, tokens *auth.TokenManager) *AuthService {
	return &AuthService{users: users, tokens: tokens}
}

// Login checks the supplied credentials and returns a signed token
// plus the public user projection. Unknown users and wrong passwords
// both return ErrInvalidCredentials.
func (s *AuthService) Login(ctx context.Context, username, password string) (*models.LoginResponse, error) {
	username = strings.TrimSpace(username)
	if username == "" || password == "" {
		return nil, fmt.Errorf("%w: username and password are required", ErrValidation)
	}

	user, err := s.users.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if !auth.CheckPassword(user.PasswordHash, password) {
		return nil, ErrInvalidCredentials
	}

	token, err := s.tokens.Generate(user.ID, user.Username, user.Role)
	if err != nil {
		return nil, fmt.Errorf("failed to generate token: %w", err)
	}

	return &models.LoginResponse{Token: token, User: user.Public()}, nil
}

// SeedAdmin provisions the initial admin account if the username is
// not taken. Safe to run on every startup.
func (s *AuthService) SeedAdmin(ctx context.Context, username, email, password string) error {
	if username == "" || email == "" || password == "" {
		return fmt.Errorf("%w: seed admin requires username, email, and password", ErrValidation)
	}

	if _, err := s.users.GetByUsername(ctx, username); err == nil {
		return nil // already provisioned
	} else if !errors.Is(err, repository.ErrNotFound) {
		return err
	}

	hash, err := auth.HashPassword(password)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	return s.users.Create(ctx, &models.User{
		Username:     username,
		Email:        email,
		PasswordHash: hash,
		Role:         models.RoleAdmin,
	})
}
