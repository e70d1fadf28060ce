package errors

import (
	"net/http"

	"sakny/internal/errors"
)

// AppError defines the interface for application-specific errors
type AppError interface {
	error
	HTTPCode() int     // HTTP status code
	ErrorCode() string // Business error code
	Message() string   // User-friendly error message
	Details() string   // Detailed error information (optional)
}

// BaseError is a basic error structure that implements the AppError interface
type BaseError struct {
	httpCode  int
	errorCode string
	message   string
	details   string
}

// NewBaseError creates a new base error
func NewBaseError(httpCode int, errorCode, message, details string) *BaseError {
	return &BaseError{
		httpCode:  httpCode,
		errorCode: errorCode,
		message:   message,
		details:   details,
	}
}

// Error implements the error interface
func (e *BaseError) Error() string {
	return e.message
}

// WrapMessage wraps the error with additional context message
func (e *BaseError) WrapMessage(message string) error {
	return errors.Wrap(e, message)
}

// HTTPCode returns the HTTP status code
func (e *BaseError) HTTPCode() int {
	return e.httpCode
}

// ErrorCode returns the business error code
func (e *BaseError) ErrorCode() string {
	return e.errorCode
}

// Message returns the user-friendly error message
func (e *BaseError) Message() string {
	return e.message
}

// Details returns detailed error information
func (e *BaseError) Details() string {
	return e.details
}

// WithDetails adds detailed error information
func (e *BaseError) WithDetails(details string) *BaseError {
	return &BaseError{
		httpCode:  e.httpCode,
		errorCode: e.errorCode,
		message:   e.message,
		details:   details,
	}
}

// Predefined error types
var (
	// Auth-related errors
	ErrEmailTaken = NewBaseError(
		http.StatusConflict,
		"AUTH_001",
		"Email is already registered",
		"",
	)

	ErrPhoneTaken = NewBaseError(
		http.StatusConflict,
		"AUTH_002",
		"Phone number is already registered",
		"",
	)

	ErrInvalidCredentials = NewBaseError(
		http.StatusUnauthorized,
		"AUTH_003",
		"Invalid email or password",
		"",
	)

	// Profile-related errors
	ErrProfileAlreadyExists = NewBaseError(
		http.StatusConflict,
		"PROFILE_001",
		"Profile already exists for this user",
		"",
	)

	ErrProfileNotFound = NewBaseError(
		http.StatusNotFound,
		"PROFILE_002",
		"Profile not found",
		"",
	)

	ErrInvalidBudgetRange = NewBaseError(
		http.StatusBadRequest,
		"PROFILE_003",
		"Budget min must be less than or equal to budget max",
		"",
	)

	ErrInvalidGovernorate = NewBaseError(
		http.StatusBadRequest,
		"PROFILE_004",
		"Governorate not found",
		"",
	)

	ErrInvalidCity = NewBaseError(
		http.StatusBadRequest,
		"PROFILE_005",
		"City not found or does not belong to the specified governorate",
		"",
	)

	ErrTooManyPreferredAreas = NewBaseError(
		http.StatusBadRequest,
		"PROFILE_006",
		"Maximum 5 preferred areas allowed",
		"",
	)

	ErrUserNotFound = NewBaseError(
		http.StatusNotFound,
		"PROFILE_007",
		"User not found",
		"",
	)

	// Storage-related errors
	ErrFileTooLarge = NewBaseError(
		http.StatusBadRequest,
		"STORAGE_001",
		"File size exceeds maximum limit of 5MB",
		"",
	)

	ErrInvalidFileType = NewBaseError(
		http.StatusBadRequest,
		"STORAGE_002",
		"Invalid file type. Only JPEG, PNG, and WebP images are allowed",
		"",
	)

	ErrUploadFailed = NewBaseError(
		http.StatusInternalServerError,
		"STORAGE_003",
		"Failed to upload file to storage",
		"",
	)

	ErrFileNotFound = NewBaseError(
		http.StatusNotFound,
		"STORAGE_004",
		"File not found in storage",
		"",
	)

	ErrDeleteFailed = NewBaseError(
		http.StatusInternalServerError,
		"STORAGE_005",
		"Failed to delete file from storage",
		"",
	)

	ErrEmptyFile = NewBaseError(
		http.StatusBadRequest,
		"STORAGE_006",
		"File is empty",
		"",
	)

	// Validation-related errors
	ErrValidationFailed = NewBaseError(
		http.StatusBadRequest,
		"VALIDATION_FAILED",
		"Request validation failed",
		"",
	)

	// General errors
	ErrInternalError = NewBaseError(
		http.StatusInternalServerError,
		"INTERNAL_ERROR",
		"Internal server error",
		"",
	)

	ErrUnauthorized = NewBaseError(
		http.StatusUnauthorized,
		"UNAUTHORIZED",
		"Authentication required",
		"",
	)
)

// DatabaseExecuteError represents a database execution error, implementing the AppError interface
type DatabaseExecuteError struct {
	err     error
	details string
}

// NewDatabaseExecuteError creates a database-related error
func NewDatabaseExecuteError(err error, details string) AppError {
	return &DatabaseExecuteError{
		err:     err,
		details: details,
	}
}

// Error implements the error interface
func (e *DatabaseExecuteError) Error() string {
	return errors.Wrap(e.err, "database execution failed").Error()
}

// HTTPCode returns the HTTP status code
func (e *DatabaseExecuteError) HTTPCode() int {
	return http.StatusInternalServerError
}

// ErrorCode returns the business error code
func (e *DatabaseExecuteError) ErrorCode() string {
	return "DATABASE_EXECUTE_FAILED"
}

// Message returns the user-friendly error message
func (e *DatabaseExecuteError) Message() string {
	return "Database execution failed"
}

// Details returns detailed error information
func (e *DatabaseExecuteError) Details() string {
	return e.details
}
