package token

import (
	"fmt"
	"time"
)

const (
	// MinSecretLen is the minimum accepted signing secret length.
	MinSecretLen = 32

	// DefaultAccessTTL is the access token lifetime when unconfigured.
	DefaultAccessTTL = 15 * time.Minute
	// DefaultRefreshTTL is the refresh token lifetime when unconfigured.
	DefaultRefreshTTL = 7 * 24 * time.Hour
)

// New creates a Manager from cfg. Zero TTLs fall back to the defaults.
func New(cfg Config) (*Manager, error) {
	if len(cfg.Secret) < MinSecretLen {
		return nil, fmt.Errorf("token: secret must be at least %d characters, got %d", MinSecretLen, len(cfg.Secret))
	}
	if cfg.Issuer == "" {
		return nil, fmt.Errorf("token: issuer is required")
	}

	accessTTL := cfg.AccessTTL
	if accessTTL == 0 {
		accessTTL = DefaultAccessTTL
	}
	refreshTTL := cfg.RefreshTTL
	if refreshTTL == 0 {
		refreshTTL = DefaultRefreshTTL
	}

	return &Manager{
		secret:     []byte(cfg.Secret),
		issuer:     cfg.Issuer,
		accessTTL:  accessTTL,
		refreshTTL: refreshTTL,
		now:        time.Now,
	}, nil
}

// WithClock overrides the time source. Test hook.
func (m *Manager) WithClock(now func() time.Time) *Manager {
	m.now = now
	return m
}
