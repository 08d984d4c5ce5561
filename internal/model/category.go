package model

import "time"

// Category is an expense category owned by a single user.
type Category struct {
	ID        string    `json:"id"`
	UserID    string    `json:"-"`
	Name      string    `json:"name"`
	Icon      string    `json:"icon"`
	CreatedAt time.Time `json:"-"`
	UpdatedAt time.Time `json:"-"`
}

// CategorySummary is a category plus its aggregates over a date range.
type CategorySummary struct {
	ID           string  `json:"id"`
	Name         string  `json:"name"`
	Icon         string  `json:"icon"`
	Amount       float64 `json:"amount"`
	Transactions int64   `json:"transactions"`
}
