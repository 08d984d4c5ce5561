package usecase

import (
	categoryRepo "fintrack-api/internal/category/repository"
	"fintrack-api/internal/transaction"
	"fintrack-api/internal/transaction/repository"
	pkgLog "fintrack-api/pkg/log"
)

type usecase struct {
	l       pkgLog.Logger
	repo    repository.Repository
	catRepo categoryRepo.Repository
}

var _ transaction.UseCase = &usecase{}

func New(l pkgLog.Logger, repo repository.Repository, catRepo categoryRepo.Repository) *usecase {
	return &usecase{
		l:       l,
		repo:    repo,
		catRepo: catRepo,
	}
}
