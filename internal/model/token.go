package model

import "errors"

// TokenManager generates and validates signed identity tokens.
type TokenManager interface {
	GenerateToken(userID int64) (string, error)
	ParseToken(token string) (int64, error)
}

// Internal token failure causes. They are distinguished for logging only;
// every one of them surfaces to callers as ErrInvalidToken.
var (
	ErrTokenExpired   = errors.New("token expired")
	ErrTokenMalformed = errors.New("token malformed")
	ErrTokenSignature = errors.New("token signature invalid")
)
