package repository

import (
	"time"

	"fintrack-api/internal/model"
	"fintrack-api/pkg/paginator"
)

// CreateOptions contains options for creating a transaction.
type CreateOptions struct {
	Transaction model.Transaction
}

// ListOptions contains options for listing transactions of one category.
type ListOptions struct {
	CategoryID    string
	Start         time.Time
	End           time.Time
	PaginateQuery paginator.PaginateQuery
}

// RangeOptions bounds an aggregate query to a date range.
type RangeOptions struct {
	Start time.Time
	End   time.Time
}
