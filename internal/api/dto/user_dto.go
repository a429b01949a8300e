package dto

import (
	"time"

	"github.com/spec-kit/user-service/internal/domain"
)

// RegisterRequest payload for new users.
type RegisterRequest struct {
	Email string `json:"email"`
	Name  string `json:"name"`
}

// LoginRequest payload for login. Authentication is by email alone.
type LoginRequest struct {
	Email string `json:"email"`
}

// UserRequest payload for user create and update.
type UserRequest struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

// UserResponse is the wire shape of a user.
type UserResponse struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"createdAt"`
}

// RegisterResponse is returned on successful registration.
type RegisterResponse struct {
	User  RegisteredUser `json:"user"`
	Token string         `json:"token"`
}

// RegisteredUser is the trimmed user shape inside a RegisterResponse.
type RegisteredUser struct {
	ID    int64  `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name"`
}

// LoginResponse is returned on successful login.
type LoginResponse struct {
	Token string `json:"token"`
}

// FromUser converts a domain user into its wire shape.
func FromUser(user *domain.User) UserResponse {
	return UserResponse{
		ID:        user.ID,
		Name:      user.Name,
		Email:     user.Email,
		CreatedAt: user.CreatedAt,
	}
}
