package errors

// ValidationError is an error with a field and messages.
type ValidationError struct {
	Code     int      `json:"code"`
	Field    string   `json:"field"`
	Messages []string `json:"messages"`
}

// ValidationErrorCollector collects multiple validation errors.
type ValidationErrorCollector struct {
	errors []*ValidationError
}

// ConflictError reports uniqueness conflicts. Fields maps each conflicting
// field name to a human-readable message so a client can show every conflict
// at once.
type ConflictError struct {
	Fields map[string]string `json:"fields"`
}

// HTTPError represents an HTTP error with status code and message.
type HTTPError struct {
	Code       int
	Message    string
	StatusCode int
}
