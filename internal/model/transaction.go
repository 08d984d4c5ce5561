package model

import "time"

// Transaction is a single expense entry under a category.
type Transaction struct {
	ID         string    `json:"id"`
	CategoryID string    `json:"-"`
	Amount     float64   `json:"amount"`
	Note       *string   `json:"note,omitempty"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}

// DailyExpense is the summed spend for one calendar day.
type DailyExpense struct {
	Date   string  `json:"date"`
	Amount float64 `json:"amount"`
}

// ExpensesOverview aggregates a user's spending over a date range.
type ExpensesOverview struct {
	DailyExpense []DailyExpense    `json:"dailyExpense"`
	Categories   []CategorySummary `json:"categories"`
}
