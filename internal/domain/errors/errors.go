// Package errors defines the application-level error taxonomy and its
// mapping to HTTP status codes.
package errors

import (
	"net/http"

	"taskhub/internal/errors"
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
	// Registration errors. Duplicates answer 400 with a message, matching
	// the public auth contract.
	ErrUsernameTaken = NewBaseError(
		http.StatusBadRequest,
		"USERNAME_TAKEN",
		"Username already taken",
		"",
	)

	ErrEmailRegistered = NewBaseError(
		http.StatusBadRequest,
		"EMAIL_REGISTERED",
		"Email already registered",
		"",
	)

	// ErrRegistrationConflict is the storage-level backstop for the
	// duplicate checks, raised when the unique constraint fires under a
	// registration race.
	ErrRegistrationConflict = NewBaseError(
		http.StatusBadRequest,
		"REGISTRATION_CONFLICT",
		"Username or email already registered",
		"",
	)

	ErrEmailInUse = NewBaseError(
		http.StatusBadRequest,
		"EMAIL_IN_USE",
		"Email already in use",
		"",
	)

	// ErrInvalidCredentials deliberately carries one generic message for
	// both an unknown username and a wrong password.
	ErrInvalidCredentials = NewBaseError(
		http.StatusUnauthorized,
		"INVALID_CREDENTIALS",
		"Invalid username or password",
		"",
	)

	ErrPasswordPolicy = NewBaseError(
		http.StatusBadRequest,
		"PASSWORD_POLICY",
		"Password does not meet the security requirements",
		"",
	)

	ErrPasswordHashFailed = NewBaseError(
		http.StatusInternalServerError,
		"PASSWORD_HASH_FAILED",
		"Password processing failed",
		"",
	)

	// Not-found errors. An entity owned by another user renders the same
	// as a missing one.
	ErrUserNotFound = NewBaseError(
		http.StatusNotFound,
		"USER_NOT_FOUND",
		"User not found",
		"",
	)

	ErrTaskNotFound = NewBaseError(
		http.StatusNotFound,
		"TASK_NOT_FOUND",
		"Task not found",
		"",
	)

	ErrTagNotFound = NewBaseError(
		http.StatusNotFound,
		"TAG_NOT_FOUND",
		"Tag not found on this task",
		"",
	)

	ErrCommentNotFound = NewBaseError(
		http.StatusNotFound,
		"COMMENT_NOT_FOUND",
		"Comment not found",
		"",
	)

	ErrValidationFailed = NewBaseError(
		http.StatusBadRequest,
		"VALIDATION_FAILED",
		"Invalid request payload",
		"",
	)
)

// DatabaseError wraps an unexpected store fault so it renders as a generic
// 500 without leaking driver details.
type DatabaseError struct {
	*BaseError
	cause error
}

// NewDatabaseError creates a DatabaseError from the underlying fault.
func NewDatabaseError(cause error, details string) *DatabaseError {
	return &DatabaseError{
		BaseError: NewBaseError(
			http.StatusInternalServerError,
			"DATABASE_ERROR",
			"Internal server error",
			details,
		),
		cause: cause,
	}
}

// Unwrap exposes the underlying fault for errors.Is/As.
func (e *DatabaseError) Unwrap() error {
	return e.cause
}
