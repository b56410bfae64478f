package handler

import (
	"context"
	"fmt"
	"net/http"
	"net/mail"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/micropost/micropost-server/internal/logger"
)

const minPasswordLength = 6

// AuthService handles signup and login flows.
type AuthService interface {
	Signup(ctx context.Context, email string, password string) (string, error)
	Login(ctx context.Context, email string, password string) (string, error)
}

// Auth handles authentication endpoints.
type Auth struct {
	service AuthService
	logger  *logger.Logger
}

// NewAuth creates a new Auth handler.
func NewAuth(service AuthService, logger *logger.Logger) *Auth {
	return &Auth{service: service, logger: logger}
}

type credentialsRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type tokenResponse struct {
	Token string `json:"token"`
}

// Signup registers a new user and returns an auth token.
func (h *Auth) Signup(c echo.Context) error {
	var req credentialsRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := validateCredentials(req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	tokenString, err := h.service.Signup(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		return handleError(err)
	}

	return c.JSON(http.StatusCreated, tokenResponse{Token: tokenString})
}

// Login authenticates a user and returns an auth token.
func (h *Auth) Login(c echo.Context) error {
	var req credentialsRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if req.Email == "" || req.Password == "" {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, "email and password are required")
	}

	tokenString, err := h.service.Login(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		return handleError(err)
	}

	return c.JSON(http.StatusOK, tokenResponse{Token: tokenString})
}

func validateCredentials(req credentialsRequest) error {
	if err := validateEmail(req.Email); err != nil {
		return err
	}
	if len(req.Password) < minPasswordLength {
		return fmt.Errorf("password must be at least %d characters", minPasswordLength)
	}
	return nil
}

func validateEmail(email string) error {
	addr, err := mail.ParseAddress(email)
	if err != nil || addr.Address != email {
		return fmt.Errorf("invalid email format")
	}
	domain := email[strings.LastIndex(email, "@")+1:]
	if !strings.Contains(domain, ".") {
		return fmt.Errorf("invalid email domain")
	}
	return nil
}
