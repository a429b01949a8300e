package service

import (
	"context"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/spec-kit/user-service/internal/config"
)

func testAuthConfig() config.AuthConfig {
	return config.AuthConfig{
		JWTSecret:               "test-secret",
		LoginTokenTTLMinutes:    60,
		RegisterTokenTTLMinutes: 120,
	}
}

func TestAuthService_RegisterIssuesTwoHourToken(t *testing.T) {
	repo := newMemRepo()
	svc := NewAuthService(testAuthConfig(), repo)

	user, token, exp, err := svc.Register(context.Background(), "Ann", "a@b.com")
	require.NoError(t, err)
	require.NotZero(t, user.ID)
	require.NotEmpty(t, token)
	require.WithinDuration(t, time.Now().Add(2*time.Hour), exp, 5*time.Second)

	claims, err := svc.TokenManager().Verify(token)
	require.NoError(t, err)
	require.Equal(t, user.ID, claims.UserID)
	require.Equal(t, "a@b.com", claims.Email)
}

func TestAuthService_RegisterDuplicateEmailConflicts(t *testing.T) {
	repo := newMemRepo()
	svc := NewAuthService(testAuthConfig(), repo)
	ctx := context.Background()

	_, _, _, err := svc.Register(ctx, "Ann", "a@b.com")
	require.NoError(t, err)

	_, _, _, err = svc.Register(ctx, "Another Ann", "a@b.com")
	de := requireStatus(t, err, http.StatusConflict)
	require.Equal(t, "email already in use", de.Message)
}

func TestAuthService_RegisterValidation(t *testing.T) {
	testCases := []struct {
		name      string
		userName  string
		userEmail string
	}{
		{"missing email", "Ann", ""},
		{"malformed email", "Ann", "not-an-email"},
		{"missing name", "", "a@b.com"},
		{"name too long", strings.Repeat("a", 101), "a@b.com"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			repo := newMemRepo()
			svc := NewAuthService(testAuthConfig(), repo)

			_, _, _, err := svc.Register(context.Background(), tc.userName, tc.userEmail)
			requireStatus(t, err, http.StatusBadRequest)
			require.Zero(t, repo.createCalls)
		})
	}
}

func TestAuthService_LoginIssuesOneHourToken(t *testing.T) {
	repo := newMemRepo()
	svc := NewAuthService(testAuthConfig(), repo)
	ctx := context.Background()

	user, _, _, err := svc.Register(ctx, "Ann", "a@b.com")
	require.NoError(t, err)

	token, exp, err := svc.Login(ctx, "a@b.com")
	require.NoError(t, err)
	require.WithinDuration(t, time.Now().Add(time.Hour), exp, 5*time.Second)

	claims, err := svc.TokenManager().Verify(token)
	require.NoError(t, err)
	require.Equal(t, user.ID, claims.UserID)
}

func TestAuthService_LoginUnknownEmailIsUnauthorized(t *testing.T) {
	svc := NewAuthService(testAuthConfig(), newMemRepo())

	_, _, err := svc.Login(context.Background(), "ghost@example.com")
	de := requireStatus(t, err, http.StatusUnauthorized)
	require.Equal(t, "invalid email", de.Message)
}

func TestAuthService_LoginMissingEmailIsBadRequest(t *testing.T) {
	svc := NewAuthService(testAuthConfig(), newMemRepo())

	_, _, err := svc.Login(context.Background(), "")
	requireStatus(t, err, http.StatusBadRequest)
}
