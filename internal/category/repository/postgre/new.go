package postgres

import (
	"time"

	"fintrack-api/internal/category/repository"
	pkgLog "fintrack-api/pkg/log"

	"github.com/uptrace/bun"
)

type implRepository struct {
	l     pkgLog.Logger
	db    *bun.DB
	clock func() time.Time
}

var _ repository.Repository = &implRepository{}

func New(l pkgLog.Logger, db *bun.DB) *implRepository {
	return &implRepository{
		l:     l,
		db:    db,
		clock: time.Now,
	}
}
