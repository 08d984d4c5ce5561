package token

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// IssueAccess mints an access-scoped token for subject and returns it with
// its absolute expiry in unix seconds. Pure function of (subject, clock,
// config); a signing failure is an internal error.
func (m *Manager) IssueAccess(subject string) (string, int64, error) {
	now := m.now()
	expiresAt := now.Add(m.accessTTL)

	signed, err := m.sign(subject, ScopeAccess, now, expiresAt)
	if err != nil {
		return "", 0, err
	}
	return signed, expiresAt.Unix(), nil
}

// IssueRefresh mints a refresh-scoped token for subject.
func (m *Manager) IssueRefresh(subject string) (string, error) {
	now := m.now()
	return m.sign(subject, ScopeRefresh, now, now.Add(m.refreshTTL))
}

func (m *Manager) sign(subject string, scope Scope, now, expiresAt time.Time) (string, error) {
	claims := Claims{
		Scope: scope,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    m.issuer,
			Subject:   subject,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(m.secret)
	if err != nil {
		return "", fmt.Errorf("token: sign: %w", err)
	}
	return signed, nil
}

// Verify validates the token's signature, issuer, and expiry, and returns
// its claims. Scope is NOT enforced here: call sites require different
// scopes, so the caller checks Claims.Scope against what it needs.
func (m *Manager) Verify(tokenString string) (*Claims, error) {
	claims := &Claims{}
	parsed, err := jwt.ParseWithClaims(
		tokenString,
		claims,
		func(t *jwt.Token) (any, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
			}
			return m.secret, nil
		},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(m.issuer),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(m.now),
	)
	if err != nil {
		return nil, mapParseError(err)
	}
	if !parsed.Valid {
		return nil, ErrTokenMalformed
	}
	return claims, nil
}

func mapParseError(err error) error {
	switch {
	case errors.Is(err, jwt.ErrTokenMalformed):
		return ErrTokenMalformed
	case errors.Is(err, jwt.ErrTokenSignatureInvalid):
		return ErrBadSignature
	case errors.Is(err, jwt.ErrTokenExpired):
		return ErrTokenExpired
	case errors.Is(err, jwt.ErrTokenInvalidIssuer):
		return ErrBadIssuer
	default:
		// Missing required claims, bad scope values, and any other decode
		// failure fail closed as malformed.
		return ErrTokenMalformed
	}
}
