package auth

import "errors"

var (
	ErrInvalidCredentials = errors.New("invalid nip or password")
	ErrInvalidToken       = errors.New("invalid or expired token")
	ErrUserNotFound       = errors.New("user not found")
)
