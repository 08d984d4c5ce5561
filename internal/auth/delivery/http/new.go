package http

import (
	"fintrack-api/internal/auth"
	pkgLog "fintrack-api/pkg/log"
)

type Handler struct {
	l  pkgLog.Logger
	uc auth.UseCase
}

func New(l pkgLog.Logger, uc auth.UseCase) *Handler {
	return &Handler{
		l:  l,
		uc: uc,
	}
}
