package repository

import (
	"context"
	"errors"

	"fintrack-api/internal/model"
)

// ErrNotFound is returned when no category matches the query within the
// caller's scope.
var ErrNotFound = errors.New("category not found")

//go:generate mockery --name Repository
type Repository interface {
	Create(ctx context.Context, sc model.Scope, opts CreateOptions) (model.Category, error)
	Detail(ctx context.Context, sc model.Scope, id string) (model.Category, error)
	// ExistsByName matches case-insensitively; excludeID skips one category
	// so an update does not conflict with itself.
	ExistsByName(ctx context.Context, sc model.Scope, name, excludeID string) (bool, error)
	Update(ctx context.Context, sc model.Scope, opts UpdateOptions) (model.Category, error)
	// Delete removes the category and its transactions atomically.
	Delete(ctx context.Context, sc model.Scope, id string) error
}
