package apperrors

import "errors"

// Common errors
var (
	// Resource errors
	ErrResourceNotFound      = errors.New("resource not found")
	ErrResourceAlreadyExists = errors.New("resource already exists")

	// Authentication errors
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrTokenExpired       = errors.New("token expired")
	ErrTokenInvalid       = errors.New("invalid token")

	// Authorization errors
	ErrPermissionDenied = errors.New("permission denied")

	// Validation errors
	ErrValidationFailed = errors.New("validation failed")

	// Persistence errors
	ErrNotConnected = errors.New("database not connected")
)

// User errors
var (
	ErrUserNotFound         = errors.New("user not found")
	ErrEmailAlreadyExists   = errors.New("email already exists")
	ErrScholarNoExists      = errors.New("scholar number already exists")
	ErrStudentNotFound      = errors.New("student not found")
	ErrStudentAlreadyInToli = errors.New("student is already in a toli")
)

// Toli errors
var (
	ErrToliNotFound          = errors.New("toli not found")
	ErrToliFull              = errors.New("toli already has the maximum number of members")
	ErrToliTooSmall          = errors.New("a toli needs at least three members including the leader")
	ErrNotToliMember         = errors.New("student is not a member of this toli")
	ErrInvalidToliTransition = errors.New("invalid toli status transition")
	ErrToliNotActive         = errors.New("toli is not active")
)

// Program and document errors
var (
	ErrProgramNotFound  = errors.New("program not found")
	ErrDocumentNotFound = errors.New("generated document not found")
)

// CustomError represents application-specific errors with additional context
type CustomError struct {
	Err     error
	Message string
	Details map[string]interface{}
}

// Error implements the error interface
func (e *CustomError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return "unknown error"
}

// Unwrap implements errors.Unwrap
func (e *CustomError) Unwrap() error {
	return e.Err
}

// NewCustomError creates a CustomError with an underlying sentinel
func NewCustomError(err error, message string) *CustomError {
	return &CustomError{
		Err:     err,
		Message: message,
	}
}

// WithDetails adds context details to the error
func (e *CustomError) WithDetails(details map[string]interface{}) *CustomError {
	e.Details = details
	return e
}

// NewValidationError creates a validation failure with a user-facing message
func NewValidationError(message string) error {
	return &CustomError{
		Err:     ErrValidationFailed,
		Message: message,
	}
}

// NewNotFoundError creates a not-found failure with a user-facing message
func NewNotFoundError(message string) error {
	return &CustomError{
		Err:     ErrResourceNotFound,
		Message: message,
	}
}
