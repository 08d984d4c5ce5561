package repository

import (
	"context"

	"fintrack-api/internal/model"
	"fintrack-api/pkg/paginator"
)

//go:generate mockery --name Repository
type Repository interface {
	Create(ctx context.Context, sc model.Scope, opts CreateOptions) (model.Transaction, error)
	List(ctx context.Context, sc model.Scope, opts ListOptions) ([]model.Transaction, paginator.Paginator, error)
	// DailyExpenses returns summed spend per calendar day within the range,
	// ascending by date. Days without transactions are omitted.
	DailyExpenses(ctx context.Context, sc model.Scope, opts RangeOptions) ([]model.DailyExpense, error)
	// CategorySummaries returns every category of the user with its total
	// amount and transaction count within the range. Categories without
	// transactions appear with zero aggregates.
	CategorySummaries(ctx context.Context, sc model.Scope, opts RangeOptions) ([]model.CategorySummary, error)
}
