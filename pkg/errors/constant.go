package errors

const (
	// MessageUnauthorized is the default message for 401.
	MessageUnauthorized = "Unauthorized"
	// MessageNotFound is the default message for 404.
	MessageNotFound = "Not found"
)
