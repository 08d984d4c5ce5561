package usecase

import (
	"fintrack-api/internal/category"
	"fintrack-api/internal/category/repository"
	pkgLog "fintrack-api/pkg/log"
)

type usecase struct {
	l    pkgLog.Logger
	repo repository.Repository
}

var _ category.UseCase = &usecase{}

func New(l pkgLog.Logger, repo repository.Repository) *usecase {
	return &usecase{
		l:    l,
		repo: repo,
	}
}
