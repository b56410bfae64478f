package model

import "errors"

var (
	// ErrNotFound is returned when a requested entity does not exist
	// or is not visible to the requesting user.
	ErrNotFound = errors.New("not found")

	// ErrDuplicateEmail is returned on signup with an already registered email.
	ErrDuplicateEmail = errors.New("email already registered")

	// ErrInvalidCredentials is returned on login failure. Unknown email and
	// wrong password are deliberately indistinguishable.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrInvalidToken is the single externally visible token failure.
	ErrInvalidToken = errors.New("invalid token")
)
