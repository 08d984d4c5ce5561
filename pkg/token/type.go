package token

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Scope restricts what a bearer token authorizes. It is deliberately a
// closed two-variant set: any other value fails verification, so a third,
// unintended scope can never validate.
type Scope string

const (
	// ScopeAccess authorizes protected-resource requests.
	ScopeAccess Scope = "access"
	// ScopeRefresh authorizes minting a new token pair only.
	ScopeRefresh Scope = "refresh"
)

// Valid reports whether s is one of the two known scopes.
func (s Scope) Valid() bool {
	return s == ScopeAccess || s == ScopeRefresh
}

// Claims is the signed token payload.
type Claims struct {
	Scope Scope `json:"scope"`
	jwt.RegisteredClaims
}

// Validate implements jwt.ClaimsValidator; it runs during Verify in addition
// to the registered-claims checks.
func (c *Claims) Validate() error {
	if !c.Scope.Valid() {
		return ErrTokenMalformed
	}
	return nil
}

// Config holds the signing material and lifetimes shared by issuer and
// verifier. Read-only after initialization; no rotation supported.
type Config struct {
	Secret     string
	Issuer     string
	AccessTTL  time.Duration
	RefreshTTL time.Duration
}

// Manager issues and verifies HS256-signed bearer tokens.
type Manager struct {
	secret     []byte
	issuer     string
	accessTTL  time.Duration
	refreshTTL time.Duration
	now        func() time.Time
}
