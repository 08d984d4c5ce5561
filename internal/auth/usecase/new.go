package usecase

import (
	"fintrack-api/internal/auth"
	"fintrack-api/internal/user/repository"
	"fintrack-api/pkg/hasher"
	pkgLog "fintrack-api/pkg/log"
	"fintrack-api/pkg/token"
	"fintrack-api/pkg/workerpool"
)

type usecase struct {
	l      pkgLog.Logger
	repo   repository.Repository
	hasher *hasher.Hasher
	tokens *token.Manager
	pool   *workerpool.Pool
}

func New(l pkgLog.Logger, repo repository.Repository, h *hasher.Hasher, tokens *token.Manager, pool *workerpool.Pool) auth.UseCase {
	return &usecase{
		l:      l,
		repo:   repo,
		hasher: h,
		tokens: tokens,
		pool:   pool,
	}
}
