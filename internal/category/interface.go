package category

import (
	"context"

	"fintrack-api/internal/model"
)

//go:generate mockery --name UseCase
type UseCase interface {
	Create(ctx context.Context, sc model.Scope, ip CreateInput) (model.Category, error)
	Update(ctx context.Context, sc model.Scope, ip UpdateInput) (model.Category, error)
	Delete(ctx context.Context, sc model.Scope, id string) error
}
