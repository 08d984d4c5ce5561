package repository

import (
	"context"
	"errors"

	"fintrack-api/internal/model"
)

var (
	// ErrNotFound is returned when no user matches the query.
	ErrNotFound = errors.New("user not found")
	// ErrDuplicate is returned when an insert loses the uniqueness race.
	// The unique constraints on email and username are the source of truth
	// for concurrent sign-ups; the existence pre-check is advisory.
	ErrDuplicate = errors.New("user already exists")
)

// Repository is the user record store consumed by the credential service.
type Repository interface {
	// ExistsByEmailOrUsername checks both identifiers independently so the
	// caller can report every conflict at once.
	ExistsByEmailOrUsername(ctx context.Context, email, username string) (emailTaken, usernameTaken bool, err error)
	Create(ctx context.Context, usr model.User) (model.User, error)
	GetByUsername(ctx context.Context, username string) (model.User, error)
}
