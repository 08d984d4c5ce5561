package category

import "errors"

var (
	// ErrCategoryNotFound also covers categories owned by another user, so
	// a guessed ID looks the same as a nonexistent one.
	ErrCategoryNotFound = errors.New("category not found")
	// ErrCategoryNameExists is a duplicate name for the same user,
	// case-insensitive.
	ErrCategoryNameExists = errors.New("category name already exists")
)
