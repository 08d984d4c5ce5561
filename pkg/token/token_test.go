package token

import (
	"errors"
	"strings"
	"testing"
	"time"
)

const testSecret = "0123456789abcdef0123456789abcdef"

func newTestManager(t *testing.T) *Manager {
	t.Helper()
	m, err := New(Config{
		Secret:     testSecret,
		Issuer:     "fintrack",
		AccessTTL:  15 * time.Minute,
		RefreshTTL: 7 * 24 * time.Hour,
	})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return m
}

func TestNewValidation(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr bool
	}{
		{
			name: "valid",
			cfg:  Config{Secret: testSecret, Issuer: "fintrack"},
		},
		{
			name:    "short secret",
			cfg:     Config{Secret: "too-short", Issuer: "fintrack"},
			wantErr: true,
		},
		{
			name:    "missing issuer",
			cfg:     Config{Secret: testSecret},
			wantErr: true,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := New(tc.cfg)
			if (err != nil) != tc.wantErr {
				t.Errorf("New() error = %v, wantErr %v", err, tc.wantErr)
			}
		})
	}
}

func TestDefaultTTLs(t *testing.T) {
	m, err := New(Config{Secret: testSecret, Issuer: "fintrack"})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if m.accessTTL != DefaultAccessTTL {
		t.Errorf("accessTTL = %v, want %v", m.accessTTL, DefaultAccessTTL)
	}
	if m.refreshTTL != DefaultRefreshTTL {
		t.Errorf("refreshTTL = %v, want %v", m.refreshTTL, DefaultRefreshTTL)
	}
}

func TestIssueAndVerifyAccess(t *testing.T) {
	issuedAt := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	m := newTestManager(t).WithClock(func() time.Time { return issuedAt })

	signed, expiresAt, err := m.IssueAccess("user-1")
	if err != nil {
		t.Fatalf("IssueAccess: %v", err)
	}
	if want := issuedAt.Add(15 * time.Minute).Unix(); expiresAt != want {
		t.Errorf("expiresAt = %d, want %d", expiresAt, want)
	}

	claims, err := m.Verify(signed)
	if err != nil {
		t.Fatalf("Verify: %v", err)
	}
	if claims.Subject != "user-1" {
		t.Errorf("subject = %q, want %q", claims.Subject, "user-1")
	}
	if claims.Scope != ScopeAccess {
		t.Errorf("scope = %q, want %q", claims.Scope, ScopeAccess)
	}
	if claims.Issuer != "fintrack" {
		t.Errorf("issuer = %q, want %q", claims.Issuer, "fintrack")
	}
}

func TestIssueRefreshScope(t *testing.T) {
	m := newTestManager(t)

	signed, err := m.IssueRefresh("user-1")
	if err != nil {
		t.Fatalf("IssueRefresh: %v", err)
	}

	claims, err := m.Verify(signed)
	if err != nil {
		t.Fatalf("Verify: %v", err)
	}
	if claims.Scope != ScopeRefresh {
		t.Errorf("scope = %q, want %q", claims.Scope, ScopeRefresh)
	}
}

func TestVerifyExpired(t *testing.T) {
	issuedAt := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	m := newTestManager(t).WithClock(func() time.Time { return issuedAt })

	signed, _, err := m.IssueAccess("user-1")
	if err != nil {
		t.Fatalf("IssueAccess: %v", err)
	}

	tests := []struct {
		name    string
		now     time.Time
		wantErr error
	}{
		{
			name: "before expiry",
			now:  issuedAt.Add(14 * time.Minute),
		},
		{
			name:    "exactly at expiry",
			now:     issuedAt.Add(15 * time.Minute),
			wantErr: ErrTokenExpired,
		},
		{
			name:    "after expiry",
			now:     issuedAt.Add(16 * time.Minute),
			wantErr: ErrTokenExpired,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			m.WithClock(func() time.Time { return tc.now })
			_, err := m.Verify(signed)
			if !errors.Is(err, tc.wantErr) {
				t.Errorf("Verify() error = %v, want %v", err, tc.wantErr)
			}
		})
	}
}

func TestVerifyTampered(t *testing.T) {
	m := newTestManager(t)

	signed, _, err := m.IssueAccess("user-1")
	if err != nil {
		t.Fatalf("IssueAccess: %v", err)
	}

	parts := strings.Split(signed, ".")
	if len(parts) != 3 {
		t.Fatalf("unexpected token shape: %d parts", len(parts))
	}

	// Flip a character in the signature.
	sig := []byte(parts[2])
	if sig[0] == 'A' {
		sig[0] = 'B'
	} else {
		sig[0] = 'A'
	}
	tampered := parts[0] + "." + parts[1] + "." + string(sig)

	if _, err := m.Verify(tampered); !errors.Is(err, ErrBadSignature) {
		t.Errorf("Verify() error = %v, want %v", err, ErrBadSignature)
	}
}

func TestVerifyWrongSecret(t *testing.T) {
	m := newTestManager(t)

	other, err := New(Config{
		Secret: "ffffffffffffffffffffffffffffffff",
		Issuer: "fintrack",
	})
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	signed, _, err := other.IssueAccess("user-1")
	if err != nil {
		t.Fatalf("IssueAccess: %v", err)
	}

	if _, err := m.Verify(signed); !errors.Is(err, ErrBadSignature) {
		t.Errorf("Verify() error = %v, want %v", err, ErrBadSignature)
	}
}

func TestVerifyWrongIssuer(t *testing.T) {
	m := newTestManager(t)

	other, err := New(Config{Secret: testSecret, Issuer: "someone-else"})
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	signed, _, err := other.IssueAccess("user-1")
	if err != nil {
		t.Fatalf("IssueAccess: %v", err)
	}

	if _, err := m.Verify(signed); !errors.Is(err, ErrBadIssuer) {
		t.Errorf("Verify() error = %v, want %v", err, ErrBadIssuer)
	}
}

func TestVerifyMalformed(t *testing.T) {
	m := newTestManager(t)

	tests := []struct {
		name  string
		token string
	}{
		{name: "empty", token: ""},
		{name: "not a jwt", token: "not-a-token"},
		{name: "two parts", token: "aaaa.bbbb"},
		{name: "garbage segments", token: "aaaa.bbbb.cccc"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := m.Verify(tc.token); !errors.Is(err, ErrTokenMalformed) {
				t.Errorf("Verify() error = %v, want %v", err, ErrTokenMalformed)
			}
		})
	}
}

func TestScopeValid(t *testing.T) {
	tests := []struct {
		scope Scope
		want  bool
	}{
		{scope: ScopeAccess, want: true},
		{scope: ScopeRefresh, want: true},
		{scope: Scope(""), want: false},
		{scope: Scope("admin"), want: false},
	}

	for _, tc := range tests {
		if got := tc.scope.Valid(); got != tc.want {
			t.Errorf("Scope(%q).Valid() = %v, want %v", tc.scope, got, tc.want)
		}
	}
}
