package postgres

import (
	"context"
	"database/sql"
	"errors"

	"fintrack-api/internal/category/repository"
	"fintrack-api/internal/model"

	"github.com/uptrace/bun"
)

func (r *implRepository) Create(ctx context.Context, sc model.Scope, opts repository.CreateOptions) (model.Category, error) {
	row := newCategoryRow(opts.Category)
	row.UserID = sc.UserID
	now := r.clock()
	row.CreatedAt = now
	row.UpdatedAt = now

	if _, err := r.db.NewInsert().Model(row).Exec(ctx); err != nil {
		r.l.Errorf(ctx, "internal.category.repository.postgres.Create.Insert: %v", err)
		return model.Category{}, err
	}

	return row.toModel(), nil
}

func (r *implRepository) Detail(ctx context.Context, sc model.Scope, id string) (model.Category, error) {
	row := &categoryRow{}
	err := r.db.NewSelect().
		Model(row).
		Where("c.id = ?", id).
		Where("c.user_id = ?", sc.UserID).
		Limit(1).
		Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Category{}, repository.ErrNotFound
		}
		r.l.Errorf(ctx, "internal.category.repository.postgres.Detail.Scan: %v", err)
		return model.Category{}, err
	}

	return row.toModel(), nil
}

func (r *implRepository) ExistsByName(ctx context.Context, sc model.Scope, name, excludeID string) (bool, error) {
	q := r.db.NewSelect().
		Model((*categoryRow)(nil)).
		Where("c.user_id = ?", sc.UserID).
		Where("lower(c.name) = lower(?)", name)
	if excludeID != "" {
		q = q.Where("c.id != ?", excludeID)
	}

	exists, err := q.Exists(ctx)
	if err != nil {
		r.l.Errorf(ctx, "internal.category.repository.postgres.ExistsByName: %v", err)
		return false, err
	}

	return exists, nil
}

func (r *implRepository) Update(ctx context.Context, sc model.Scope, opts repository.UpdateOptions) (model.Category, error) {
	row := newCategoryRow(opts.Category)
	row.UpdatedAt = r.clock()

	res, err := r.db.NewUpdate().
		Model(row).
		Column("name", "icon", "updated_at").
		Where("c.id = ?", row.ID).
		Where("c.user_id = ?", sc.UserID).
		Exec(ctx)
	if err != nil {
		r.l.Errorf(ctx, "internal.category.repository.postgres.Update.Exec: %v", err)
		return model.Category{}, err
	}
	if affected, err := res.RowsAffected(); err == nil && affected == 0 {
		return model.Category{}, repository.ErrNotFound
	}

	return row.toModel(), nil
}

func (r *implRepository) Delete(ctx context.Context, sc model.Scope, id string) error {
	err := r.db.RunInTx(ctx, &sql.TxOptions{}, func(ctx context.Context, tx bun.Tx) error {
		// Ownership first: a foreign category's transactions must never be
		// touched.
		owned, err := tx.NewSelect().
			Model((*categoryRow)(nil)).
			Where("c.id = ?", id).
			Where("c.user_id = ?", sc.UserID).
			Exists(ctx)
		if err != nil {
			return err
		}
		if !owned {
			return repository.ErrNotFound
		}

		if _, err := tx.NewDelete().
			Table("transactions").
			Where("category_id = ?", id).
			Exec(ctx); err != nil {
			return err
		}

		if _, err := tx.NewDelete().
			Model((*categoryRow)(nil)).
			Where("c.id = ?", id).
			Where("c.user_id = ?", sc.UserID).
			Exec(ctx); err != nil {
			return err
		}

		return nil
	})
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return repository.ErrNotFound
		}
		r.l.Errorf(ctx, "internal.category.repository.postgres.Delete: %v", err)
		return err
	}

	return nil
}
