package transaction

import (
	"time"

	"fintrack-api/internal/model"
	"fintrack-api/pkg/paginator"
)

type CreateInput struct {
	CategoryID string
	Amount     float64
	Note       *string
}

type ListInput struct {
	CategoryID    string
	Start         time.Time
	End           time.Time
	PaginateQuery paginator.PaginateQuery
}

type ListOutput struct {
	Transactions []model.Transaction
	Paginator    paginator.Paginator
}

type OverviewInput struct {
	Start time.Time
	End   time.Time
}
