package auth

import "errors"

var (
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrInvalidToken       = errors.New("invalid or missing token")
	ErrTokenExpired       = errors.New("token expired")
	ErrTooManyAttempts    = errors.New("too many failed login attempts, try again later")
	ErrOAuthNotConfigured = errors.New("google login is not configured")
	ErrOAuthStateMismatch = errors.New("oauth state mismatch")
)
