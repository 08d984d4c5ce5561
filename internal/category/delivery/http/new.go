package http

import (
	"fintrack-api/internal/category"
	pkgLog "fintrack-api/pkg/log"
)

type Handler struct {
	l  pkgLog.Logger
	uc category.UseCase
}

func New(l pkgLog.Logger, uc category.UseCase) *Handler {
	return &Handler{
		l:  l,
		uc: uc,
	}
}
