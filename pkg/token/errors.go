package token

import "errors"

// Verification failure kinds. The API boundary collapses all of them to a
// single 401, but the distinct kinds are kept for logging and tests.
var (
	ErrTokenExpired   = errors.New("token: expired")
	ErrBadSignature   = errors.New("token: invalid signature")
	ErrBadIssuer      = errors.New("token: issuer mismatch")
	ErrTokenMalformed = errors.New("token: malformed")
)
