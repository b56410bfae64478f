package handler

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/micropost/micropost-server/internal/model"
)

func TestHandleError(t *testing.T) {
	tests := []struct {
		name        string
		err         error
		wantCode    int
		wantMessage string
	}{
		{
			name:        "duplicate email",
			err:         model.ErrDuplicateEmail,
			wantCode:    http.StatusBadRequest,
			wantMessage: "Email already registered",
		},
		{
			name:        "invalid credentials",
			err:         model.ErrInvalidCredentials,
			wantCode:    http.StatusBadRequest,
			wantMessage: "Invalid credentials",
		},
		{
			name:        "invalid token",
			err:         model.ErrInvalidToken,
			wantCode:    http.StatusUnauthorized,
			wantMessage: "Invalid token",
		},
		{
			name:        "not found",
			err:         model.ErrNotFound,
			wantCode:    http.StatusNotFound,
			wantMessage: "Post not found",
		},
		{
			name:        "wrapped not found",
			err:         fmt.Errorf("deleting post: %w", model.ErrNotFound),
			wantCode:    http.StatusNotFound,
			wantMessage: "Post not found",
		},
		{
			name:        "unknown error",
			err:         errors.New("connection reset"),
			wantCode:    http.StatusInternalServerError,
			wantMessage: "internal server error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := handleError(tt.err)

			httpErr := &echo.HTTPError{}
			require.ErrorAs(t, err, &httpErr)
			assert.Equal(t, tt.wantCode, httpErr.Code)
			assert.Equal(t, tt.wantMessage, httpErr.Message)
		})
	}
}

func TestHandleError_HidesInternalDetail(t *testing.T) {
	err := handleError(errors.New("pq: relation posts does not exist"))

	httpErr := &echo.HTTPError{}
	require.ErrorAs(t, err, &httpErr)
	assert.NotContains(t, fmt.Sprint(httpErr.Message), "relation")
}
