package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/micropost/micropost-server/internal/logger"
	"github.com/micropost/micropost-server/internal/model"
)

// userIDKey is the echo context key the authenticated user ID is stored under.
const userIDKey = "user_id"

// TokenService resolves user IDs from bearer tokens.
type TokenService interface {
	Authenticate(token string) (int64, error)
}

// Authenticate validates bearer tokens and injects the user ID into the
// request context. The subject must still exist in the store.
type Authenticate struct {
	tokenService TokenService
	userStore    model.UserStore
	logger       *logger.Logger
}

// NewAuthenticate creates a new Authenticate middleware instance.
func NewAuthenticate(tokenService TokenService, userStore model.UserStore, logger *logger.Logger) *Authenticate {
	return &Authenticate{tokenService: tokenService, userStore: userStore, logger: logger}
}

// Handle parses the Authorization header, validates the token and stores
// the user ID on the context for downstream handlers.
func (m *Authenticate) Handle(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		tokenString := bearerToken(c)
		if tokenString == "" {
			return echo.NewHTTPError(http.StatusUnauthorized, "Invalid token")
		}

		userID, err := m.tokenService.Authenticate(tokenString)
		if err != nil {
			return echo.NewHTTPError(http.StatusUnauthorized, "Invalid token")
		}

		if _, err := m.userStore.GetByID(c.Request().Context(), userID); err != nil {
			if errors.Is(err, model.ErrNotFound) {
				return echo.NewHTTPError(http.StatusUnauthorized, "User not found")
			}
			m.logger.Error("Authenticate middleware: failed to get user",
				"user_id", userID,
				"error", err.Error())
			return echo.NewHTTPError(http.StatusInternalServerError, "internal server error")
		}

		c.Set(userIDKey, userID)
		return next(c)
	}
}

func bearerToken(c echo.Context) string {
	header := c.Request().Header.Get(echo.HeaderAuthorization)
	if header == "" {
		return ""
	}
	return strings.TrimPrefix(header, "Bearer ")
}

// UserID retrieves the authenticated user ID stored by Handle.
func UserID(c echo.Context) (int64, bool) {
	userID, ok := c.Get(userIDKey).(int64)
	return userID, ok
}
