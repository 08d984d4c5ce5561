package http

import (
	"net/http"

	"fintrack-api/internal/category"
	pkgErrors "fintrack-api/pkg/errors"
	"fintrack-api/pkg/response"
)

var errBadRequest = pkgErrors.NewHTTPError(400, "Invalid request body", http.StatusBadRequest)

func (h Handler) errorMapping() response.ErrorMapping {
	return response.ErrorMapping{
		category.ErrCategoryNotFound:   pkgErrors.NewNotFoundHTTPError("Category not found"),
		category.ErrCategoryNameExists: pkgErrors.NewHTTPError(409, "Category name already exists", http.StatusConflict),
	}
}
