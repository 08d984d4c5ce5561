package postgres

import (
	"context"

	"fintrack-api/internal/model"
	"fintrack-api/internal/transaction/repository"
	"fintrack-api/pkg/paginator"
)

func (r *implRepository) Create(ctx context.Context, sc model.Scope, opts repository.CreateOptions) (model.Transaction, error) {
	row := newTransactionRow(opts.Transaction)
	now := r.clock()
	row.CreatedAt = now
	row.UpdatedAt = now

	if _, err := r.db.NewInsert().Model(row).Exec(ctx); err != nil {
		r.l.Errorf(ctx, "internal.transaction.repository.postgres.Create.Insert: %v", err)
		return model.Transaction{}, err
	}

	return row.toModel(), nil
}

func (r *implRepository) List(ctx context.Context, sc model.Scope, opts repository.ListOptions) ([]model.Transaction, paginator.Paginator, error) {
	opts.PaginateQuery.Adjust()

	var rows []transactionRow
	count, err := r.db.NewSelect().
		Model(&rows).
		Join("JOIN categories AS c ON c.id = t.category_id").
		Where("c.user_id = ?", sc.UserID).
		Where("t.category_id = ?", opts.CategoryID).
		Where("t.created_at >= ?", opts.Start).
		Where("t.created_at < ?", opts.End).
		Order("t.created_at DESC").
		Limit(int(opts.PaginateQuery.Limit)).
		Offset(int(opts.PaginateQuery.Offset())).
		ScanAndCount(ctx)
	if err != nil {
		r.l.Errorf(ctx, "internal.transaction.repository.postgres.List.ScanAndCount: %v", err)
		return nil, paginator.Paginator{}, err
	}

	trxs := make([]model.Transaction, len(rows))
	for i := range rows {
		trxs[i] = rows[i].toModel()
	}

	return trxs, paginator.Paginator{
		Total:       int64(count),
		Count:       int64(len(trxs)),
		PerPage:     opts.PaginateQuery.Limit,
		CurrentPage: opts.PaginateQuery.Page,
	}, nil
}

func (r *implRepository) DailyExpenses(ctx context.Context, sc model.Scope, opts repository.RangeOptions) ([]model.DailyExpense, error) {
	var rows []dailyExpenseRow
	err := r.db.NewSelect().
		Model((*transactionRow)(nil)).
		ColumnExpr("to_char(t.created_at, 'YYYY-MM-DD') AS date").
		ColumnExpr("sum(t.amount) AS amount").
		Join("JOIN categories AS c ON c.id = t.category_id").
		Where("c.user_id = ?", sc.UserID).
		Where("t.created_at >= ?", opts.Start).
		Where("t.created_at < ?", opts.End).
		GroupExpr("to_char(t.created_at, 'YYYY-MM-DD')").
		OrderExpr("date ASC").
		Scan(ctx, &rows)
	if err != nil {
		r.l.Errorf(ctx, "internal.transaction.repository.postgres.DailyExpenses.Scan: %v", err)
		return nil, err
	}

	daily := make([]model.DailyExpense, len(rows))
	for i, row := range rows {
		daily[i] = model.DailyExpense{
			Date:   row.Date,
			Amount: row.Amount,
		}
	}

	return daily, nil
}

func (r *implRepository) CategorySummaries(ctx context.Context, sc model.Scope, opts repository.RangeOptions) ([]model.CategorySummary, error) {
	var rows []categorySummaryRow
	err := r.db.NewSelect().
		TableExpr("categories AS c").
		ColumnExpr("c.id, c.name, c.icon").
		ColumnExpr("coalesce(sum(t.amount), 0) AS amount").
		ColumnExpr("count(t.id) AS transactions").
		Join("LEFT JOIN transactions AS t ON t.category_id = c.id AND t.created_at >= ? AND t.created_at < ?", opts.Start, opts.End).
		Where("c.user_id = ?", sc.UserID).
		GroupExpr("c.id, c.name, c.icon").
		OrderExpr("c.name ASC").
		Scan(ctx, &rows)
	if err != nil {
		r.l.Errorf(ctx, "internal.transaction.repository.postgres.CategorySummaries.Scan: %v", err)
		return nil, err
	}

	summaries := make([]model.CategorySummary, len(rows))
	for i, row := range rows {
		summaries[i] = model.CategorySummary{
			ID:           row.ID,
			Name:         row.Name,
			Icon:         row.Icon,
			Amount:       row.Amount,
			Transactions: row.Transactions,
		}
	}

	return summaries, nil
}
