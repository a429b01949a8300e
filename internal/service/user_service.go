package service

import (
	"context"
	"strconv"

	"go.uber.org/zap"

	"github.com/spec-kit/user-service/internal/domain"
	"github.com/spec-kit/user-service/internal/events"
	"github.com/spec-kit/user-service/internal/repository"
	"github.com/spec-kit/user-service/internal/validation"
	apperrors "github.com/spec-kit/user-service/pkg/util"
)

// UserInput carries the mutable user fields for create and update.
type UserInput struct {
	Name  string
	Email string
}

// UserService performs CRUD operations on users, applying validation on the
// way in and storage failure translation on the way out.
type UserService struct {
	users      repository.UserRepository
	dispatcher events.Dispatcher
	logger     *zap.Logger
}

// NewUserService builds the service.
func NewUserService(users repository.UserRepository, dispatcher events.Dispatcher, logger *zap.Logger) *UserService {
	return &UserService{users: users, dispatcher: dispatcher, logger: logger}
}

// ParseUserID validates a path identifier as a positive integer. Failures
// never reach storage.
func ParseUserID(raw string) (int64, error) {
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, apperrors.NewValidationError("id must be a positive integer", map[string]any{"id": raw})
	}
	return id, nil
}

// List returns every user in storage order.
func (s *UserService) List(ctx context.Context) ([]domain.User, error) {
	users, err := s.users.List(ctx)
	if err != nil {
		return nil, apperrors.MapError(err)
	}
	return users, nil
}

// Create validates the input and inserts a new user. A duplicate email is
// detected by the storage uniqueness constraint, not a pre-check, so two
// concurrent creates cannot race past each other.
func (s *UserService) Create(ctx context.Context, input UserInput) (*domain.User, error) {
	if err := validateResourceInput(input); err != nil {
		return nil, err
	}

	user := &domain.User{Name: input.Name, Email: input.Email}
	if err := s.users.Create(ctx, user); err != nil {
		return nil, apperrors.MapError(err)
	}

	s.publish(ctx, events.EventUserCreated, user)
	return user, nil
}

// Update validates the input and rewrites the user's mutable fields.
func (s *UserService) Update(ctx context.Context, id int64, input UserInput) (*domain.User, error) {
	if err := validateResourceInput(input); err != nil {
		return nil, err
	}

	user := &domain.User{ID: id, Name: input.Name, Email: input.Email}
	if err := s.users.Update(ctx, user); err != nil {
		return nil, apperrors.MapError(err)
	}

	s.publish(ctx, events.EventUserUpdated, user)
	return user, nil
}

// Delete removes the user and returns the deleted row.
func (s *UserService) Delete(ctx context.Context, id int64) (*domain.User, error) {
	user, err := s.users.Delete(ctx, id)
	if err != nil {
		return nil, apperrors.MapError(err)
	}

	s.publish(ctx, events.EventUserDeleted, user)
	return user, nil
}

func (s *UserService) publish(ctx context.Context, eventType events.EventType, user *domain.User) {
	if s.dispatcher == nil {
		return
	}
	if err := s.dispatcher.Publish(ctx, events.NewUserEvent(eventType, user)); err != nil {
		s.logger.Warn("event publish failed", zap.String("event", string(eventType)), zap.Error(err))
	}
}

// validateResourceInput checks fields sequentially and fails fast on the
// first violation.
func validateResourceInput(input UserInput) error {
	if err := validation.NameForResource(input.Name); err != nil {
		return fieldErrorToDomain(err)
	}
	if err := validation.Email(input.Email); err != nil {
		return fieldErrorToDomain(err)
	}
	return nil
}

func fieldErrorToDomain(err error) error {
	if fe, ok := err.(*validation.FieldError); ok {
		return apperrors.NewValidationError(fe.Reason, map[string]any{"field": fe.Field})
	}
	return apperrors.NewValidationError(err.Error(), nil)
}
