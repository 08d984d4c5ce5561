package model

import "context"

// Scope is the authenticated principal attached to a request after the auth
// middleware verified its access token. It is the only authentication
// context downstream handlers may trust; it is never populated from a
// client-supplied body field.
type Scope struct {
	UserID string `json:"user_id"`
}

type scopeCtxKey struct{}

// SetScopeToContext attaches the verified principal to ctx.
func SetScopeToContext(ctx context.Context, sc Scope) context.Context {
	return context.WithValue(ctx, scopeCtxKey{}, sc)
}

// ScopeFromContext returns the principal set by the auth middleware.
func ScopeFromContext(ctx context.Context) (Scope, bool) {
	sc, ok := ctx.Value(scopeCtxKey{}).(Scope)
	return sc, ok
}
