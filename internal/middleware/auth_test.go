package middleware

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"fintrack-api/internal/model"
	"fintrack-api/pkg/log"
	"fintrack-api/pkg/response"
	"fintrack-api/pkg/token"

	"github.com/gin-gonic/gin"
)

func newTestRouter(t *testing.T) (*gin.Engine, *token.Manager) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	tokens, err := token.New(token.Config{
		Secret: "0123456789abcdef0123456789abcdef",
		Issuer: "fintrack",
	})
	if err != nil {
		t.Fatalf("token.New: %v", err)
	}

	l := log.Init(log.ZapConfig{Level: log.LevelFatal, Mode: log.ModeProduction, Encoding: log.EncodingJSON})
	mw := New(l, tokens)

	r := gin.New()
	r.GET("/protected", mw.Auth(), func(c *gin.Context) {
		sc, ok := model.ScopeFromContext(c.Request.Context())
		if !ok {
			response.Unauthorized(c)
			return
		}
		response.OK(c, gin.H{"userId": sc.UserID})
	})

	return r, tokens
}

func TestAuthRejects(t *testing.T) {
	r, tokens := newTestRouter(t)

	refresh, err := tokens.IssueRefresh("user-1")
	if err != nil {
		t.Fatalf("IssueRefresh: %v", err)
	}

	expiredTokens, err := token.New(token.Config{
		Secret: "0123456789abcdef0123456789abcdef",
		Issuer: "fintrack",
	})
	if err != nil {
		t.Fatalf("token.New: %v", err)
	}
	expiredTokens.WithClock(func() time.Time { return time.Now().Add(-time.Hour) })
	expired, _, err := expiredTokens.IssueAccess("user-1")
	if err != nil {
		t.Fatalf("IssueAccess: %v", err)
	}

	tests := []struct {
		name   string
		header string
	}{
		{name: "missing header", header: ""},
		{name: "wrong scheme", header: "Basic dXNlcjpwYXNz"},
		{name: "bearer without token", header: "Bearer "},
		{name: "garbage token", header: "Bearer not-a-token"},
		{name: "refresh scope rejected", header: "Bearer " + refresh},
		{name: "expired token", header: "Bearer " + expired},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/protected", nil)
			if tc.header != "" {
				req.Header.Set("Authorization", tc.header)
			}

			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			if w.Code != http.StatusUnauthorized {
				t.Errorf("status = %d, want %d", w.Code, http.StatusUnauthorized)
			}
		})
	}
}

func TestAuthAcceptsAccessToken(t *testing.T) {
	r, tokens := newTestRouter(t)

	access, _, err := tokens.IssueAccess("user-1")
	if err != nil {
		t.Fatalf("IssueAccess: %v", err)
	}

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+access)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d, body: %s", w.Code, http.StatusOK, w.Body.String())
	}
	if body := w.Body.String(); !strings.Contains(body, "user-1") {
		t.Errorf("body %q does not carry the principal", body)
	}
}

func TestAuthCaseInsensitiveScheme(t *testing.T) {
	r, tokens := newTestRouter(t)

	access, _, err := tokens.IssueAccess("user-1")
	if err != nil {
		t.Fatalf("IssueAccess: %v", err)
	}

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "bearer "+access)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("status = %d, want %d", w.Code, http.StatusOK)
	}
}
