package postgres

import (
	"time"

	"fintrack-api/internal/model"

	"github.com/uptrace/bun"
)

// transactionRow is the bun model for the transactions table.
type transactionRow struct {
	bun.BaseModel `bun:"table:transactions,alias:t"`

	ID         string    `bun:"id,pk,type:uuid"`
	CategoryID string    `bun:"category_id,notnull,type:uuid"`
	Amount     float64   `bun:"amount,notnull"`
	Note       *string   `bun:"note"`
	CreatedAt  time.Time `bun:"created_at,nullzero,default:current_timestamp"`
	UpdatedAt  time.Time `bun:"updated_at,nullzero,default:current_timestamp"`
}

func (r *transactionRow) toModel() model.Transaction {
	return model.Transaction{
		ID:         r.ID,
		CategoryID: r.CategoryID,
		Amount:     r.Amount,
		Note:       r.Note,
		CreatedAt:  r.CreatedAt,
		UpdatedAt:  r.UpdatedAt,
	}
}

func newTransactionRow(trx model.Transaction) *transactionRow {
	return &transactionRow{
		ID:         trx.ID,
		CategoryID: trx.CategoryID,
		Amount:     trx.Amount,
		Note:       trx.Note,
		CreatedAt:  trx.CreatedAt,
		UpdatedAt:  trx.UpdatedAt,
	}
}

// dailyExpenseRow receives the per-day aggregate query.
type dailyExpenseRow struct {
	Date   string  `bun:"date"`
	Amount float64 `bun:"amount"`
}

// categorySummaryRow receives the per-category aggregate query.
type categorySummaryRow struct {
	ID           string  `bun:"id"`
	Name         string  `bun:"name"`
	Icon         string  `bun:"icon"`
	Amount       float64 `bun:"amount"`
	Transactions int64   `bun:"transactions"`
}
