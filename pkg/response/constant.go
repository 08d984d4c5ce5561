package response

const (
	MessageSuccess      = "Success"
	DefaultErrorMessage = "Something went wrong"

	ValidationErrorCode = 400
	ValidationErrorMsg  = "Validation error"

	ConflictErrorCode = 409
	ConflictErrorMsg  = "A record with the provided details already exists"

	InternalServerErrorCode = 500
)
