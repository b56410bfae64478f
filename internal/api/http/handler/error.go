package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/micropost/micropost-server/internal/model"
)

// handleError maps service errors to HTTP responses. Internal detail never
// crosses this boundary; anything outside the taxonomy becomes a bare 500.
func handleError(err error) error {
	switch {
	case errors.Is(err, model.ErrDuplicateEmail):
		return echo.NewHTTPError(http.StatusBadRequest, "Email already registered")
	case errors.Is(err, model.ErrInvalidCredentials):
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid credentials")
	case errors.Is(err, model.ErrInvalidToken):
		return echo.NewHTTPError(http.StatusUnauthorized, "Invalid token")
	case errors.Is(err, model.ErrNotFound):
		return echo.NewHTTPError(http.StatusNotFound, "Post not found")
	default:
		return echo.NewHTTPError(http.StatusInternalServerError, "internal server error")
	}
}
