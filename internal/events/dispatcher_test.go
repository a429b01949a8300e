package events

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/spec-kit/user-service/internal/domain"
)

func TestDispatcher_PublishInvokesSubscribersInOrder(t *testing.T) {
	d := NewInMemoryDispatcher()
	user := &domain.User{ID: 1, Name: "Ann", Email: "ann@example.com"}

	var order []string
	d.Subscribe(EventUserCreated, func(_ context.Context, _ Event) error {
		order = append(order, "first")
		return nil
	})
	d.Subscribe(EventUserCreated, func(_ context.Context, _ Event) error {
		order = append(order, "second")
		return nil
	})

	err := d.Publish(context.Background(), NewUserEvent(EventUserCreated, user))
	require.NoError(t, err)
	require.Equal(t, []string{"first", "second"}, order)
}

func TestDispatcher_FailingHandlerDoesNotStopOthers(t *testing.T) {
	d := NewInMemoryDispatcher()
	user := &domain.User{ID: 2, Name: "Bob", Email: "bob@example.com"}

	invoked := false
	d.Subscribe(EventUserDeleted, func(_ context.Context, _ Event) error {
		return errors.New("boom")
	})
	d.Subscribe(EventUserDeleted, func(_ context.Context, _ Event) error {
		invoked = true
		return nil
	})

	err := d.Publish(context.Background(), NewUserEvent(EventUserDeleted, user))
	require.NoError(t, err)
	require.True(t, invoked)
}

func TestDispatcher_IgnoresUnsubscribedTypes(t *testing.T) {
	d := NewInMemoryDispatcher()
	user := &domain.User{ID: 3, Name: "Cat", Email: "cat@example.com"}

	err := d.Publish(context.Background(), NewUserEvent(EventUserUpdated, user))
	require.NoError(t, err)
}

func TestNewUserEvent(t *testing.T) {
	user := &domain.User{ID: 9, Name: "Ann", Email: "ann@example.com"}
	event := NewUserEvent(EventUserCreated, user)

	require.NotEmpty(t, event.ID)
	require.Equal(t, EventUserCreated, event.Type)
	require.Equal(t, int64(9), event.UserID)
	require.False(t, event.Timestamp.IsZero())

	payload, ok := event.Payload.(UserPayload)
	require.True(t, ok)
	require.Equal(t, "Ann", payload.Name)
	require.Equal(t, "ann@example.com", payload.Email)
}
