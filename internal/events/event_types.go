package events

import (
	"time"

	"github.com/google/uuid"

	"github.com/spec-kit/user-service/internal/domain"
)

// EventType enumerates supported event identifiers.
type EventType string

const (
	EventUserCreated EventType = "user_created"
	EventUserUpdated EventType = "user_updated"
	EventUserDeleted EventType = "user_deleted"
)

// Event represents a domain event emitted by services.
type Event struct {
	ID        string      `json:"id"`
	Type      EventType   `json:"type"`
	UserID    int64       `json:"user_id"`
	Timestamp time.Time   `json:"timestamp"`
	Payload   interface{} `json:"payload"`
}

// UserPayload carries the user snapshot for lifecycle events.
type UserPayload struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

// NewUserEvent builds a lifecycle event for the given user.
func NewUserEvent(eventType EventType, user *domain.User) Event {
	return Event{
		ID:        uuid.NewString(),
		Type:      eventType,
		UserID:    user.ID,
		Timestamp: time.Now(),
		Payload:   UserPayload{Name: user.Name, Email: user.Email},
	}
}
