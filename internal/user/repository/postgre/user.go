package postgres

import (
	"context"
	"database/sql"
	"errors"

	"fintrack-api/internal/model"
	"fintrack-api/internal/user/repository"

	"github.com/uptrace/bun/driver/pgdriver"
)

// pgUniqueViolation is the PostgreSQL error code for unique_violation.
const pgUniqueViolation = "23505"

func (r *implRepository) ExistsByEmailOrUsername(ctx context.Context, email, username string) (bool, bool, error) {
	emailTaken, err := r.db.NewSelect().
		Model((*userRow)(nil)).
		Where("email = ?", email).
		Exists(ctx)
	if err != nil {
		r.l.Errorf(ctx, "internal.user.repository.postgres.ExistsByEmailOrUsername.email: %v", err)
		return false, false, err
	}

	usernameTaken, err := r.db.NewSelect().
		Model((*userRow)(nil)).
		Where("username = ?", username).
		Exists(ctx)
	if err != nil {
		r.l.Errorf(ctx, "internal.user.repository.postgres.ExistsByEmailOrUsername.username: %v", err)
		return false, false, err
	}

	return emailTaken, usernameTaken, nil
}

func (r *implRepository) Create(ctx context.Context, usr model.User) (model.User, error) {
	row := newUserRow(usr)
	now := r.clock()
	row.CreatedAt = now
	row.UpdatedAt = now

	if _, err := r.db.NewInsert().Model(row).Exec(ctx); err != nil {
		if isUniqueViolation(err) {
			return model.User{}, repository.ErrDuplicate
		}
		r.l.Errorf(ctx, "internal.user.repository.postgres.Create.Insert: %v", err)
		return model.User{}, err
	}

	return row.toModel(), nil
}

func (r *implRepository) GetByUsername(ctx context.Context, username string) (model.User, error) {
	row := &userRow{}
	err := r.db.NewSelect().
		Model(row).
		Where("username = ?", username).
		Limit(1).
		Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.User{}, repository.ErrNotFound
		}
		r.l.Errorf(ctx, "internal.user.repository.postgres.GetByUsername.Scan: %v", err)
		return model.User{}, err
	}

	return row.toModel(), nil
}

func isUniqueViolation(err error) bool {
	var pgErr pgdriver.Error
	return errors.As(err, &pgErr) && pgErr.Field('C') == pgUniqueViolation
}
