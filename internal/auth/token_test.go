package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestTokenManager_IssueAndVerify(t *testing.T) {
	tm := NewTokenManager("test-secret")

	token, exp, err := tm.Issue(42, "ann@example.com", time.Hour)
	require.NoError(t, err)
	require.NotEmpty(t, token)
	require.WithinDuration(t, time.Now().Add(time.Hour), exp, 5*time.Second)

	claims, err := tm.Verify(token)
	require.NoError(t, err)
	require.Equal(t, int64(42), claims.UserID)
	require.Equal(t, "ann@example.com", claims.Email)
	require.WithinDuration(t, exp, claims.ExpiresAt.Time, time.Second)
}

func TestTokenManager_PerCallSiteTTL(t *testing.T) {
	tm := NewTokenManager("test-secret")

	_, loginExp, err := tm.Issue(1, "a@b.com", time.Hour)
	require.NoError(t, err)
	_, registerExp, err := tm.Issue(1, "a@b.com", 2*time.Hour)
	require.NoError(t, err)

	require.WithinDuration(t, time.Now().Add(time.Hour), loginExp, 5*time.Second)
	require.WithinDuration(t, time.Now().Add(2*time.Hour), registerExp, 5*time.Second)
}

func TestTokenManager_VerifyFailures(t *testing.T) {
	tm := NewTokenManager("test-secret")

	expired, _, err := tm.Issue(7, "old@example.com", -time.Minute)
	require.NoError(t, err)

	foreign, _, err := NewTokenManager("other-secret").Issue(7, "x@y.com", time.Hour)
	require.NoError(t, err)

	testCases := []struct {
		name  string
		token string
	}{
		{"garbage", "not-a-token"},
		{"empty", ""},
		{"expired", expired},
		{"wrong signature", foreign},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			claims, err := tm.Verify(tc.token)
			require.Nil(t, claims)
			require.ErrorIs(t, err, ErrInvalidToken)
		})
	}
}
