// Package errors defines the application error taxonomy. Everything here is
// a value returned to the caller; no failure in this module is fatal to the
// process.
package errors

import (
	"net/http"

	"github.com/ir-khan/inventory-management-system/internal/errors"
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

// Is matches errors by business error code, so copies produced by
// WithDetails still compare equal to their sentinel.
func (e *BaseError) Is(target error) bool {
	var base *BaseError
	if !errors.As(target, &base) {
		return false
	}
	return e.errorCode == base.errorCode
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
	// ErrValidation rejects malformed caller input before any I/O happens.
	ErrValidation = NewBaseError(
		http.StatusBadRequest,
		"VALIDATION_FAILED",
		"Input validation failed",
		"",
	)

	// ErrProfileNotFound means the user's profile document is absent both
	// locally and remotely.
	ErrProfileNotFound = NewBaseError(
		http.StatusNotFound,
		"PROFILE_NOT_FOUND",
		"User profile not found",
		"",
	)

	// ErrProductNotFound means no product exists under the given business
	// code for this owner. Sell never creates one.
	ErrProductNotFound = NewBaseError(
		http.StatusNotFound,
		"PRODUCT_NOT_FOUND",
		"Product does not exist",
		"",
	)

	// ErrEmployeeNotFound means the referenced employee record is absent.
	ErrEmployeeNotFound = NewBaseError(
		http.StatusNotFound,
		"EMPLOYEE_NOT_FOUND",
		"Employee not found",
		"",
	)

	// ErrInsufficientStock is a business-rule violation, not a system error:
	// the sell quantity exceeds the on-hand quantity. No partial sells.
	ErrInsufficientStock = NewBaseError(
		http.StatusConflict,
		"INSUFFICIENT_STOCK",
		"Insufficient product quantity",
		"",
	)

	// ErrUnauthorized means no verified session accompanied the call.
	ErrUnauthorized = NewBaseError(
		http.StatusUnauthorized,
		"UNAUTHORIZED",
		"No current user found",
		"",
	)

	// ErrInternalError is the fallback for unclassified failures.
	ErrInternalError = NewBaseError(
		http.StatusInternalServerError,
		"INTERNAL_ERROR",
		"Internal error",
		"",
	)
)

// WriteError represents a transient backend write failure (network, quota,
// permission, timeout). It is retryable in principle; whether the engine
// retries depends on the workflow (profile edits are queued, trade steps are
// surfaced). Implements the AppError interface.
type WriteError struct {
	op  string
	err error
}

// NewWriteError wraps a backend failure observed during the named operation.
func NewWriteError(op string, err error) *WriteError {
	return &WriteError{op: op, err: err}
}

// Error implements the error interface
func (e *WriteError) Error() string {
	return "write failed: " + e.op + ": " + e.err.Error()
}

// Unwrap exposes the underlying backend error.
func (e *WriteError) Unwrap() error {
	return e.err
}

// HTTPCode returns the HTTP status code
func (e *WriteError) HTTPCode() int {
	return http.StatusBadGateway
}

// ErrorCode returns the business error code
func (e *WriteError) ErrorCode() string {
	return "WRITE_FAILED"
}

// Message returns the user-friendly error message
func (e *WriteError) Message() string {
	return "Backend write failed"
}

// Details returns detailed error information
func (e *WriteError) Details() string {
	return e.op + ": " + e.err.Error()
}
