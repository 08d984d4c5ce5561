package middleware

import (
	"strings"

	"fintrack-api/internal/model"
	"fintrack-api/pkg/response"
	"fintrack-api/pkg/token"

	"github.com/gin-gonic/gin"
)

// Auth guards protected routes. It expects an access-scoped bearer token in
// the Authorization header; on success the verified principal is attached to
// the request context. All failures collapse into a single 401 so callers
// cannot probe why a token was rejected.
func (m *Middleware) Auth() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()

		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			m.l.Warnf(ctx, "internal.middleware.Auth: missing Authorization header | Path: %s", c.Request.URL.Path)
			response.Unauthorized(c)
			c.Abort()
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") || strings.TrimSpace(parts[1]) == "" {
			m.l.Warnf(ctx, "internal.middleware.Auth: malformed Authorization header | Path: %s", c.Request.URL.Path)
			response.Unauthorized(c)
			c.Abort()
			return
		}

		claims, err := m.tokens.Verify(strings.TrimSpace(parts[1]))
		if err != nil {
			m.l.Warnf(ctx, "internal.middleware.Auth: token verification failed: %v | Path: %s", err, c.Request.URL.Path)
			response.Unauthorized(c)
			c.Abort()
			return
		}

		// Refresh tokens never open protected routes.
		if claims.Scope != token.ScopeAccess {
			m.l.Warnf(ctx, "internal.middleware.Auth: wrong token scope | Path: %s", c.Request.URL.Path)
			response.Unauthorized(c)
			c.Abort()
			return
		}

		ctx = model.SetScopeToContext(ctx, model.Scope{UserID: claims.Subject})
		c.Request = c.Request.WithContext(ctx)

		c.Next()
	}
}
