package usecase

import (
	"context"
	"errors"

	categoryRepo "fintrack-api/internal/category/repository"
	"fintrack-api/internal/model"
	"fintrack-api/internal/transaction"
	"fintrack-api/internal/transaction/repository"

	"github.com/google/uuid"
)

func (uc *usecase) Create(ctx context.Context, sc model.Scope, ip transaction.CreateInput) (model.Transaction, error) {
	// Ownership first: writing into a foreign category must look identical
	// to writing into a nonexistent one.
	if _, err := uc.catRepo.Detail(ctx, sc, ip.CategoryID); err != nil {
		if errors.Is(err, categoryRepo.ErrNotFound) {
			return model.Transaction{}, transaction.ErrCategoryNotFound
		}
		uc.l.Errorf(ctx, "internal.transaction.usecase.Create.Detail: %v", err)
		return model.Transaction{}, err
	}

	trx, err := uc.repo.Create(ctx, sc, repository.CreateOptions{
		Transaction: model.Transaction{
			ID:         uuid.NewString(),
			CategoryID: ip.CategoryID,
			Amount:     ip.Amount,
			Note:       ip.Note,
		},
	})
	if err != nil {
		uc.l.Errorf(ctx, "internal.transaction.usecase.Create: %v", err)
		return model.Transaction{}, err
	}

	return trx, nil
}

func (uc *usecase) List(ctx context.Context, sc model.Scope, ip transaction.ListInput) (transaction.ListOutput, error) {
	if _, err := uc.catRepo.Detail(ctx, sc, ip.CategoryID); err != nil {
		if errors.Is(err, categoryRepo.ErrNotFound) {
			return transaction.ListOutput{}, transaction.ErrCategoryNotFound
		}
		uc.l.Errorf(ctx, "internal.transaction.usecase.List.Detail: %v", err)
		return transaction.ListOutput{}, err
	}

	trxs, pag, err := uc.repo.List(ctx, sc, repository.ListOptions{
		CategoryID:    ip.CategoryID,
		Start:         ip.Start,
		End:           ip.End,
		PaginateQuery: ip.PaginateQuery,
	})
	if err != nil {
		uc.l.Errorf(ctx, "internal.transaction.usecase.List: %v", err)
		return transaction.ListOutput{}, err
	}

	return transaction.ListOutput{
		Transactions: trxs,
		Paginator:    pag,
	}, nil
}

func (uc *usecase) Overview(ctx context.Context, sc model.Scope, ip transaction.OverviewInput) (model.ExpensesOverview, error) {
	opts := repository.RangeOptions{
		Start: ip.Start,
		End:   ip.End,
	}

	daily, err := uc.repo.DailyExpenses(ctx, sc, opts)
	if err != nil {
		uc.l.Errorf(ctx, "internal.transaction.usecase.Overview.DailyExpenses: %v", err)
		return model.ExpensesOverview{}, err
	}

	summaries, err := uc.repo.CategorySummaries(ctx, sc, opts)
	if err != nil {
		uc.l.Errorf(ctx, "internal.transaction.usecase.Overview.CategorySummaries: %v", err)
		return model.ExpensesOverview{}, err
	}

	return model.ExpensesOverview{
		DailyExpense: daily,
		Categories:   summaries,
	}, nil
}
