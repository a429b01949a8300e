package service

import (
	"context"
	"errors"
	"time"

	"github.com/spec-kit/user-service/internal/auth"
	"github.com/spec-kit/user-service/internal/config"
	"github.com/spec-kit/user-service/internal/domain"
	"github.com/spec-kit/user-service/internal/repository"
	"github.com/spec-kit/user-service/internal/validation"
	apperrors "github.com/spec-kit/user-service/pkg/util"
)

// AuthService coordinates registration and login flows.
type AuthService struct {
	users       repository.UserRepository
	tokenMgr    *auth.TokenManager
	loginTTL    time.Duration
	registerTTL time.Duration
}

// NewAuthService builds the service.
func NewAuthService(cfg config.AuthConfig, users repository.UserRepository) *AuthService {
	return &AuthService{
		users:       users,
		tokenMgr:    auth.NewTokenManager(cfg.JWTSecret),
		loginTTL:    cfg.LoginTokenTTL(),
		registerTTL: cfg.RegisterTokenTTL(),
	}
}

// Register creates a new user and issues a token with the registration TTL.
// Duplicate emails surface as a conflict reported by storage; there is no
// pre-insert lookup.
func (s *AuthService) Register(ctx context.Context, name, email string) (*domain.User, string, time.Time, error) {
	if err := validation.Email(email); err != nil {
		return nil, "", time.Time{}, fieldErrorToDomain(err)
	}
	if err := validation.NameForRegistration(name); err != nil {
		return nil, "", time.Time{}, fieldErrorToDomain(err)
	}

	user := &domain.User{Name: name, Email: email}
	if err := s.users.Create(ctx, user); err != nil {
		return nil, "", time.Time{}, apperrors.MapError(err)
	}

	token, exp, err := s.tokenMgr.Issue(user.ID, user.Email, s.registerTTL)
	if err != nil {
		return nil, "", time.Time{}, apperrors.NewInternalError(err)
	}
	return user, token, exp, nil
}

// Login authenticates by email alone and issues a token with the login TTL.
// An unknown email is an authentication failure, not a missing resource.
func (s *AuthService) Login(ctx context.Context, email string) (string, time.Time, error) {
	if email == "" {
		return "", time.Time{}, apperrors.NewValidationError("Email is required", map[string]any{"field": "email"})
	}

	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return "", time.Time{}, apperrors.NewUnauthorized("invalid email")
		}
		return "", time.Time{}, apperrors.MapError(err)
	}

	token, exp, err := s.tokenMgr.Issue(user.ID, user.Email, s.loginTTL)
	if err != nil {
		return "", time.Time{}, apperrors.NewInternalError(err)
	}
	return token, exp, nil
}

// TokenManager exposes the underlying token manager for middleware usage.
func (s *AuthService) TokenManager() *auth.TokenManager {
	return s.tokenMgr
}
