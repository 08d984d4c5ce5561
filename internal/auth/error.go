package auth

import "errors"

var (
	// ErrUserNotFound is a credential lookup miss. The boundary maps it to
	// 401, never 404, so username existence does not leak.
	ErrUserNotFound = errors.New("record not found")
	// ErrIncorrectPassword is a password mismatch on sign-in.
	ErrIncorrectPassword = errors.New("incorrect password")
	// ErrTokenInvalid covers every token verification failure on refresh.
	ErrTokenInvalid = errors.New("invalid token")
	// ErrInvalidScope is a validly-signed token presented with the wrong scope.
	ErrInvalidScope = errors.New("invalid scope")
	// ErrHashingUnavailable means the blocking-work pool could not take the
	// job. Internal error, distinct from a hashing-library failure.
	ErrHashingUnavailable = errors.New("hashing backend unavailable")
)
