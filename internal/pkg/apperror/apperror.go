package apperror

// Error codes shared across modules. Handlers translate these into the
// response envelope; the commerce client maps upstream HTTP statuses onto
// them so callers only ever deal with one taxonomy.
const (
	CodeValidation   = "VALIDATION_ERROR"
	CodeNotFound     = "NOT_FOUND"
	CodeConflict     = "CONFLICT"
	CodeTransport    = "TRANSPORT_ERROR"
	CodeUnauthorized = "UNAUTHORIZED"
	CodeForbidden    = "FORBIDDEN"
	CodeInternal     = "INTERNAL_ERROR"
)

type AppError struct {
	Code       string
	Message    string
	HTTPStatus int
}

func New(code, message string, httpStatus int) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		HTTPStatus: httpStatus,
	}
}

func (e *AppError) Error() string {
	return e.Message
}

// Is reports whether err carries the given code anywhere in its chain.
func Is(err error, code string) bool {
	appErr := From(err)
	return appErr != nil && appErr.Code == code
}
