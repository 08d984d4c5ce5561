package http

import (
	"fintrack-api/internal/transaction"
	pkgLog "fintrack-api/pkg/log"
)

type Handler struct {
	l  pkgLog.Logger
	uc transaction.UseCase
}

func New(l pkgLog.Logger, uc transaction.UseCase) *Handler {
	return &Handler{
		l:  l,
		uc: uc,
	}
}
