package apperrors

import "errors"

// Common errors
var (
	// ErrResourceNotFound is also returned when an ownership or enrollment
	// check fails, so a caller cannot tell a missing course apart from
	// somebody else's course.
	ErrResourceNotFound = errors.New("resource not found")

	// Authentication errors
	ErrTokenExpired = errors.New("token expired")
	ErrTokenInvalid = errors.New("invalid token")
	ErrUnauthorized = errors.New("unauthorized")

	// Validation errors
	ErrValidationFailed = errors.New("validation failed")
	ErrBadRequest       = errors.New("bad request")
)

// Course errors
var (
	ErrCodeSpaceTooSmall = errors.New("instructor id leaves no room for random course code characters")
	ErrCodeExhausted     = errors.New("could not generate a unique course code")
)

// User directory errors
var (
	ErrUserNotFound = errors.New("user not found")
)

// CustomError represents application-specific errors with additional context
type CustomError struct {
	Err     error
	Message string
}

// Error implements error interface
func (e *CustomError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return "unknown error"
}

// Unwrap implements errors.Unwrap interface
func (e *CustomError) Unwrap() error {
	return e.Err
}

// NewCustomError creates a CustomError with underlying error
func NewCustomError(err error, message string) *CustomError {
	return &CustomError{
		Err:     err,
		Message: message,
	}
}

// NewResourceNotFoundError creates a new custom error for resource not found with a message
func NewResourceNotFoundError(message string) error {
	return &CustomError{
		Err:     ErrResourceNotFound,
		Message: message,
	}
}

// NewValidationError creates a new custom error for invalid input with a message
func NewValidationError(message string) error {
	return &CustomError{
		Err:     ErrValidationFailed,
		Message: message,
	}
}
