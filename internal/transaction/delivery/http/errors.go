package http

import (
	"net/http"

	"fintrack-api/internal/transaction"
	pkgErrors "fintrack-api/pkg/errors"
	"fintrack-api/pkg/response"
)

var errBadRequest = pkgErrors.NewHTTPError(400, "Invalid request body", http.StatusBadRequest)

func (h Handler) errorMapping() response.ErrorMapping {
	return response.ErrorMapping{
		transaction.ErrCategoryNotFound: pkgErrors.NewNotFoundHTTPError("Category not found"),
	}
}
