package util

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/spec-kit/user-service/internal/repository"
)

func TestToDomainError_FixedTable(t *testing.T) {
	testCases := []struct {
		name        string
		err         error
		wantStatus  int
		wantCode    string
		wantMessage string
	}{
		{
			name:        "storage conflict",
			err:         repository.ErrConflict,
			wantStatus:  http.StatusConflict,
			wantCode:    "CONFLICT",
			wantMessage: "email already in use",
		},
		{
			name:        "wrapped storage conflict",
			err:         fmt.Errorf("insert user: %w", repository.ErrConflict),
			wantStatus:  http.StatusConflict,
			wantCode:    "CONFLICT",
			wantMessage: "email already in use",
		},
		{
			name:        "storage not found",
			err:         repository.ErrNotFound,
			wantStatus:  http.StatusNotFound,
			wantCode:    "NOT_FOUND",
			wantMessage: "user not found",
		},
		{
			name:        "unclassified failure",
			err:         errors.New("connection reset"),
			wantStatus:  http.StatusInternalServerError,
			wantCode:    "INTERNAL_ERROR",
			wantMessage: "operation failed",
		},
		{
			name:        "unauthorized",
			err:         NewUnauthorized("no token provided"),
			wantStatus:  http.StatusUnauthorized,
			wantCode:    "UNAUTHORIZED",
			wantMessage: "no token provided",
		},
		{
			name:        "forbidden",
			err:         NewForbidden("invalid token"),
			wantStatus:  http.StatusForbidden,
			wantCode:    "FORBIDDEN",
			wantMessage: "invalid token",
		},
		{
			name:        "validation",
			err:         NewValidationError("id must be a positive integer", nil),
			wantStatus:  http.StatusBadRequest,
			wantCode:    "INVALID_INPUT",
			wantMessage: "id must be a positive integer",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			de := ToDomainError(tc.err)
			require.NotNil(t, de)
			require.Equal(t, tc.wantStatus, de.HTTPStatus)
			require.Equal(t, tc.wantCode, de.Code)
			require.Equal(t, tc.wantMessage, de.Message)
		})
	}
}

func TestToDomainError_PassesThroughDomainErrors(t *testing.T) {
	original := NewConflict("email already in use")
	de := ToDomainError(original)
	require.Same(t, original, de)
}

func TestToDomainError_Nil(t *testing.T) {
	require.Nil(t, ToDomainError(nil))
}

func TestDomainError_UnwrapPreservesCause(t *testing.T) {
	cause := errors.New("pool exhausted")
	wrapped := NewInternalError(cause)
	require.ErrorIs(t, wrapped, cause)
}
