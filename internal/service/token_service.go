package service

import (
	"fmt"

	"github.com/micropost/micropost-server/internal/logger"
	"github.com/micropost/micropost-server/internal/model"
)

// TokenService issues identity tokens and resolves user IDs from presented
// tokens. Every verification failure collapses to model.ErrInvalidToken;
// the underlying cause is logged but never exposed.
type TokenService struct {
	manager model.TokenManager
	logger  *logger.Logger
}

func NewTokenService(manager model.TokenManager, logger *logger.Logger) *TokenService {
	return &TokenService{manager: manager, logger: logger}
}

func (s *TokenService) Issue(userID int64) (string, error) {
	tokenString, err := s.manager.GenerateToken(userID)
	if err != nil {
		return "", fmt.Errorf("failed to issue token: %w", err)
	}
	return tokenString, nil
}

func (s *TokenService) Authenticate(tokenString string) (int64, error) {
	userID, err := s.manager.ParseToken(tokenString)
	if err != nil {
		s.logger.Info("Token service: token rejected",
			"reason", err.Error())
		return 0, model.ErrInvalidToken
	}
	return userID, nil
}
