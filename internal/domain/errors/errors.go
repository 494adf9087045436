// Package errors defines the application error taxonomy: validation errors
// raised before any I/O, precondition errors discovered after loading state,
// and status conflicts from compare-and-swap transitions.
package errors

import (
	"net/http"

	"dogber/internal/errors"
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

// Business error codes shared across the layer.
const (
	CodeValidationFailed          = "VALIDATION_FAILED"
	CodeInsufficientBalance       = "INSUFFICIENT_BALANCE"
	CodeOwnerCannotAcceptOwnWalk  = "OWNER_CANNOT_ACCEPT_OWN_WALK"
	CodeOwnerCannotRejectOwnWalk  = "OWNER_CANNOT_REJECT_OWN_WALK"
	CodeSelfFeedbackNotAllowed    = "SELF_FEEDBACK_NOT_ALLOWED"
	CodeWelcomeRequiresNewAccount = "WELCOME_REQUIRES_NEW_ACCOUNT"
	CodeWalkStatusConflict        = "WALK_STATUS_CONFLICT"
	CodeProfileNotFound           = "PROFILE_NOT_FOUND"
	CodeInternalError             = "INTERNAL_ERROR"
)

// NewValidationError creates a validation error with a fixed, human-readable
// message. Validation errors are always raised before any write is attempted.
func NewValidationError(message string) *BaseError {
	return NewBaseError(http.StatusBadRequest, CodeValidationFailed, message, "")
}

// NewPreconditionError creates a precondition error for role or state
// violations discovered after loading persisted state.
func NewPreconditionError(errorCode, message string) *BaseError {
	return NewBaseError(http.StatusConflict, errorCode, message, "")
}

// Predefined precondition errors.
var (
	ErrInsufficientBalance = NewPreconditionError(
		CodeInsufficientBalance,
		"The decrease amount would put the balance below zero",
	)

	ErrOwnerCannotAcceptOwnWalk = NewPreconditionError(
		CodeOwnerCannotAcceptOwnWalk,
		"The owner of a walk cannot accept it",
	)

	ErrOwnerCannotRejectOwnWalk = NewPreconditionError(
		CodeOwnerCannotRejectOwnWalk,
		"The owner of a walk cannot reject it, cancel instead",
	)

	ErrSelfFeedbackNotAllowed = NewPreconditionError(
		CodeSelfFeedbackNotAllowed,
		"Feedback cannot be left on your own profile",
	)

	ErrWelcomeRequiresNewAccount = NewPreconditionError(
		CodeWelcomeRequiresNewAccount,
		"User must be new to have a welcome notification",
	)

	ErrWalkStatusConflict = NewPreconditionError(
		CodeWalkStatusConflict,
		"The walk is no longer in a state that allows this transition",
	)

	ErrProfileNotFound = NewBaseError(
		http.StatusNotFound,
		CodeProfileNotFound,
		"No profile exists for the given user",
		"",
	)

	ErrInternalError = NewBaseError(
		http.StatusInternalServerError,
		CodeInternalError,
		"Internal error",
		"",
	)
)

// IsValidation reports whether err carries the validation error code.
func IsValidation(err error) bool {
	return hasCode(err, CodeValidationFailed)
}

// IsPrecondition reports whether err is one of the precondition errors.
func IsPrecondition(err error) bool {
	var appErr AppError
	if !errors.As(err, &appErr) {
		return false
	}
	switch appErr.ErrorCode() {
	case CodeInsufficientBalance,
		CodeOwnerCannotAcceptOwnWalk,
		CodeOwnerCannotRejectOwnWalk,
		CodeSelfFeedbackNotAllowed,
		CodeWelcomeRequiresNewAccount,
		CodeWalkStatusConflict:
		return true
	}

	return false
}

func hasCode(err error, code string) bool {
	var appErr AppError
	if !errors.As(err, &appErr) {
		return false
	}

	return appErr.ErrorCode() == code
}
