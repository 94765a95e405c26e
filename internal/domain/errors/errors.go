// Package errors defines the application error taxonomy. Every failure the
// service reports to a caller maps to one of the predefined errors below.
package errors

import (
	"net/http"

	"board/internal/errors"
)

// AppError defines the interface for application-specific errors.
type AppError interface {
	error
	HTTPCode() int     // HTTP status code
	ErrorCode() string // Business error code
	Message() string   // User-friendly error message
	Details() string   // Detailed error information (optional)
}

// BaseError is a basic error structure that implements the AppError interface.
type BaseError struct {
	httpCode  int
	errorCode string
	message   string
	details   string
}

// NewBaseError creates a new base error.
func NewBaseError(httpCode int, errorCode, message, details string) *BaseError {
	return &BaseError{
		httpCode:  httpCode,
		errorCode: errorCode,
		message:   message,
		details:   details,
	}
}

// Error implements the error interface.
func (e *BaseError) Error() string {
	return e.message
}

// WrapMessage wraps the error with additional context message.
func (e *BaseError) WrapMessage(message string) error {
	return errors.Wrap(e, message)
}

// HTTPCode returns the HTTP status code.
func (e *BaseError) HTTPCode() int {
	return e.httpCode
}

// ErrorCode returns the business error code.
func (e *BaseError) ErrorCode() string {
	return e.errorCode
}

// Message returns the user-friendly error message.
func (e *BaseError) Message() string {
	return e.message
}

// Details returns detailed error information.
func (e *BaseError) Details() string {
	return e.details
}

// Is matches by business error code, so a detail-carrying copy produced by
// WithDetails still compares equal to its predefined sentinel.
func (e *BaseError) Is(target error) bool {
	t, ok := target.(*BaseError)
	if !ok {
		return false
	}

	return e.errorCode == t.errorCode
}

// WithDetails returns a copy of the error carrying detailed information.
// Details must never contain secret material (raw secrets, token strings).
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
	// Authentication-related errors

	// ErrAuthenticationRequired is returned when no credential is supplied at all.
	// The delivery layer advertises both accepted schemes in its response.
	ErrAuthenticationRequired = NewBaseError(
		http.StatusUnauthorized,
		"AUTHENTICATION_REQUIRED",
		"Authentication required",
		"",
	)

	// ErrUnauthorized is returned when a credential is present but invalid,
	// expired or revoked. It deliberately does not disclose which part failed.
	ErrUnauthorized = NewBaseError(
		http.StatusUnauthorized,
		"UNAUTHORIZED",
		"Invalid credentials",
		"",
	)

	ErrTokenExpired = NewBaseError(
		http.StatusUnauthorized,
		"TOKEN_EXPIRED",
		"Session token has expired",
		"",
	)

	ErrTokenRevoked = NewBaseError(
		http.StatusUnauthorized,
		"TOKEN_REVOKED",
		"Session token has been revoked",
		"",
	)

	ErrTokenInvalid = NewBaseError(
		http.StatusUnauthorized,
		"TOKEN_INVALID",
		"Invalid session token",
		"",
	)

	// Authorization-related errors

	ErrForbidden = NewBaseError(
		http.StatusForbidden,
		"FORBIDDEN",
		"Insufficient permissions",
		"",
	)

	// Identity-related errors

	ErrIdentityNotFound = NewBaseError(
		http.StatusNotFound,
		"IDENTITY_NOT_FOUND",
		"Identity not found",
		"",
	)

	ErrIdentityExists = NewBaseError(
		http.StatusConflict,
		"IDENTITY_EXISTS",
		"This email is already registered",
		"",
	)

	ErrClientIDExists = NewBaseError(
		http.StatusConflict,
		"CLIENT_ID_EXISTS",
		"This client ID is already registered",
		"",
	)

	// Economy-related errors

	// ErrRateLimited is returned when the daily question quota is reached.
	// Details always report the current count and the cap.
	ErrRateLimited = NewBaseError(
		http.StatusTooManyRequests,
		"RATE_LIMITED",
		"Daily question limit reached",
		"",
	)

	// Resource-related errors

	ErrNotFound = NewBaseError(
		http.StatusNotFound,
		"NOT_FOUND",
		"Resource not found",
		"",
	)

	ErrConflict = NewBaseError(
		http.StatusConflict,
		"CONFLICT",
		"Resource conflict",
		"",
	)

	ErrInvalidTransition = NewBaseError(
		http.StatusConflict,
		"INVALID_STATUS_TRANSITION",
		"Status transition not allowed",
		"",
	)

	// Validation-related errors

	ErrValidationFailed = NewBaseError(
		http.StatusBadRequest,
		"VALIDATION_FAILED",
		"Input validation failed",
		"",
	)

	// General errors

	// ErrUnavailable is returned after a transient persistence failure
	// survived the single retry at the ledger boundary.
	ErrUnavailable = NewBaseError(
		http.StatusServiceUnavailable,
		"UNAVAILABLE",
		"Service temporarily unavailable",
		"",
	)

	ErrInternalError = NewBaseError(
		http.StatusInternalServerError,
		"INTERNAL_ERROR",
		"Internal server error",
		"",
	)
)

// DatabaseExecuteError represents a database execution error, implementing the AppError interface.
type DatabaseExecuteError struct {
	err     error
	details string
}

// NewDatabaseExecuteError creates a database-related error.
func NewDatabaseExecuteError(err error, details string) AppError {
	return &DatabaseExecuteError{
		err:     err,
		details: details,
	}
}

// Error implements the error interface.
func (e *DatabaseExecuteError) Error() string {
	return errors.Wrap(e.err, "database execution failed").Error()
}

// HTTPCode returns the HTTP status code.
func (e *DatabaseExecuteError) HTTPCode() int {
	return http.StatusInternalServerError
}

// ErrorCode returns the business error code.
func (e *DatabaseExecuteError) ErrorCode() string {
	return "DATABASE_EXECUTE_FAILED"
}

// Message returns the user-friendly error message.
func (e *DatabaseExecuteError) Message() string {
	return "Database execution failed"
}

// Details returns detailed error information.
func (e *DatabaseExecuteError) Details() string {
	return e.details
}
