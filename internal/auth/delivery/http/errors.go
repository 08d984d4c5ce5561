package http

import (
	"net/http"

	"fintrack-api/internal/auth"
	pkgErrors "fintrack-api/pkg/errors"
	"fintrack-api/pkg/response"
)

var (
	errBadRequest   = pkgErrors.NewHTTPError(400, "Invalid request body", http.StatusBadRequest)
	errMissingToken = pkgErrors.NewUnauthorizedHTTPErrorWithMessage("Missing authentication token")
)

// errorMapping keeps credential failures indistinguishable from the outside:
// a missing user and a wrong password both come back as 401.
func (h Handler) errorMapping() response.ErrorMapping {
	return response.ErrorMapping{
		auth.ErrUserNotFound:       pkgErrors.NewUnauthorizedHTTPErrorWithMessage("Record not found"),
		auth.ErrIncorrectPassword:  pkgErrors.NewUnauthorizedHTTPErrorWithMessage("Incorrect password"),
		auth.ErrTokenInvalid:       pkgErrors.NewUnauthorizedHTTPErrorWithMessage("Invalid or expired token"),
		auth.ErrInvalidScope:       pkgErrors.NewUnauthorizedHTTPErrorWithMessage("InvalidScope"),
		auth.ErrHashingUnavailable: pkgErrors.NewHTTPError(503, "Service temporarily unavailable", http.StatusServiceUnavailable),
	}
}
