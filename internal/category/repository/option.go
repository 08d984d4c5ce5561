package repository

import "fintrack-api/internal/model"

// CreateOptions contains options for creating a category.
type CreateOptions struct {
	Category model.Category
}

// UpdateOptions contains options for updating a category.
type UpdateOptions struct {
	Category model.Category
}
