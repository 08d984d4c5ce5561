package middleware

import (
	pkgLog "fintrack-api/pkg/log"
	"fintrack-api/pkg/token"
)

type Middleware struct {
	l      pkgLog.Logger
	tokens *token.Manager
}

func New(l pkgLog.Logger, tokens *token.Manager) *Middleware {
	return &Middleware{
		l:      l,
		tokens: tokens,
	}
}
