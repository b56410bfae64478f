package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/micropost/micropost-server/internal/logger"
	"github.com/micropost/micropost-server/internal/model"
)

// PasswordCodec hashes and verifies password digests.
type PasswordCodec interface {
	Hash(plaintext string) (string, error)
	Verify(plaintext string, digest string) bool
}

type Auth struct {
	userStore    model.UserStore
	codec        PasswordCodec
	tokenService *TokenService
	logger       *logger.Logger
}

func NewAuth(
	userStore model.UserStore,
	codec PasswordCodec,
	tokenService *TokenService,
	logger *logger.Logger,
) *Auth {
	return &Auth{
		userStore:    userStore,
		codec:        codec,
		tokenService: tokenService,
		logger:       logger,
	}
}

// Signup registers a user and returns a freshly issued token. The existence
// check races with concurrent signups; the store's unique constraint on
// email is the backstop, surfacing as the same duplicate error.
func (a *Auth) Signup(ctx context.Context, email string, password string) (string, error) {
	a.logger.Debug("Auth service: starting user registration",
		"email", email)

	_, err := a.userStore.GetByEmail(ctx, email)
	if err == nil {
		a.logger.Info("Auth service: email already registered",
			"email", email)
		return "", model.ErrDuplicateEmail
	}
	if !errors.Is(err, model.ErrNotFound) {
		a.logger.Error("Auth service: failed to get user by email",
			"email", email,
			"error", err.Error())
		return "", fmt.Errorf("failed to get user by email: %w", err)
	}

	digest, err := a.codec.Hash(password)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}

	user, err := a.userStore.Create(ctx, email, digest)
	if errors.Is(err, model.ErrDuplicateEmail) {
		return "", model.ErrDuplicateEmail
	}
	if err != nil {
		a.logger.Error("Auth service: failed to create user",
			"email", email,
			"error", err.Error())
		return "", fmt.Errorf("failed to create user: %w", err)
	}

	tokenString, err := a.tokenService.Issue(user.ID)
	if err != nil {
		return "", fmt.Errorf("failed to issue token: %w", err)
	}

	a.logger.Info("Auth service: user registration completed",
		"email", email,
		"user_id", user.ID)

	return tokenString, nil
}

// Login authenticates a user and returns a token. Unknown email and wrong
// password produce the same error to prevent email enumeration.
func (a *Auth) Login(ctx context.Context, email string, password string) (string, error) {
	a.logger.Debug("Auth service: starting user login",
		"email", email)

	user, err := a.userStore.GetByEmail(ctx, email)
	if errors.Is(err, model.ErrNotFound) {
		a.logger.Info("Auth service: login rejected",
			"email", email)
		return "", model.ErrInvalidCredentials
	}
	if err != nil {
		return "", fmt.Errorf("failed to get user by email: %w", err)
	}

	if !a.codec.Verify(password, user.PasswordHash) {
		a.logger.Info("Auth service: login rejected",
			"email", email)
		return "", model.ErrInvalidCredentials
	}

	tokenString, err := a.tokenService.Issue(user.ID)
	if err != nil {
		return "", fmt.Errorf("failed to issue token: %w", err)
	}

	a.logger.Info("Auth service: user logged in",
		"email", email,
		"user_id", user.ID)

	return tokenString, nil
}
