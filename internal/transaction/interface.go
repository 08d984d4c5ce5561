package transaction

import (
	"context"

	"fintrack-api/internal/model"
)

//go:generate mockery --name UseCase
type UseCase interface {
	Create(ctx context.Context, sc model.Scope, ip CreateInput) (model.Transaction, error)
	List(ctx context.Context, sc model.Scope, ip ListInput) (ListOutput, error)
	// Overview aggregates the user's spending over a date range: summed
	// spend per day plus per-category totals.
	Overview(ctx context.Context, sc model.Scope, ip OverviewInput) (model.ExpensesOverview, error)
}
