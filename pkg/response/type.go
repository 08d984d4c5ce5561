package response

import pkgErrors "fintrack-api/pkg/errors"

// Resp is the JSON envelope for every API response.
type Resp struct {
	ErrorCode int    `json:"error_code"`
	Message   string `json:"message"`
	Data      any    `json:"data,omitempty"`
	Errors    any    `json:"errors,omitempty"`
}

// ErrorMapping maps domain errors to HTTP errors.
type ErrorMapping map[error]*pkgErrors.HTTPError
