package errors

import (
	"net/http"

	"whatwashere/internal/errors"
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
	if e.details != "" {
		return e.message + ": " + e.details
	}

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

// WithDetails returns a copy carrying detailed error information.
// The copy still matches the original through errors.Is.
func (e *BaseError) WithDetails(details string) *BaseError {
	return &BaseError{
		httpCode:  e.httpCode,
		errorCode: e.errorCode,
		message:   e.message,
		details:   details,
	}
}

// Is matches any BaseError with the same business code.
func (e *BaseError) Is(target error) bool {
	t, ok := target.(*BaseError)
	if !ok {
		return false
	}

	return t.errorCode == e.errorCode
}

// Predefined error types
var (
	ErrValidationFailed = NewBaseError(
		http.StatusBadRequest,
		"VALIDATION_FAILED",
		"Input validation failed",
		"",
	)

	// Place-related errors
	ErrPlaceNotFound = NewBaseError(
		http.StatusNotFound,
		"PLACE_NOT_FOUND",
		"Place not found",
		"",
	)

	ErrPlaceIDConflict = NewBaseError(
		http.StatusConflict,
		"PLACE_ID_CONFLICT",
		"A place with this identifier already exists",
		"",
	)

	ErrGeocodeNotFound = NewBaseError(
		http.StatusUnprocessableEntity,
		"GEOCODE_NOT_FOUND",
		"We could not find that address. Try adding a city or postal code.",
		"",
	)

	ErrGeocodeUnavailable = NewBaseError(
		http.StatusServiceUnavailable,
		"GEOCODE_UNAVAILABLE",
		"Address lookup is unavailable right now",
		"",
	)

	// Narration-related errors
	ErrNarrationUnavailable = NewBaseError(
		http.StatusServiceUnavailable,
		"NARRATION_UNAVAILABLE",
		"Narration is not configured",
		"",
	)

	// Memory document errors
	ErrMemoryDocumentInvalid = NewBaseError(
		http.StatusBadRequest,
		"MEMORY_DOCUMENT_INVALID",
		"Memories must be an object of place IDs to memory lists",
		"",
	)

	ErrMemoryDocumentWrite = NewBaseError(
		http.StatusBadRequest,
		"MEMORY_DOCUMENT_WRITE_FAILED",
		"Could not save memories",
		"",
	)

	// General errors
	ErrInternalError = NewBaseError(
		http.StatusInternalServerError,
		"INTERNAL_ERROR",
		"Internal server error",
		"",
	)
)

// NarrationFailedError reports an upstream text-to-speech failure and carries
// the upstream HTTP status so it can be relayed to the caller.
type NarrationFailedError struct {
	status  int
	details string
}

// NewNarrationFailedError creates a narration failure for the given upstream status.
// Statuses outside 4xx/5xx are reported as 502.
func NewNarrationFailedError(status int, details string) AppError {
	if status < http.StatusBadRequest || status > 599 {
		status = http.StatusBadGateway
	}

	return &NarrationFailedError{
		status:  status,
		details: details,
	}
}

// Error implements the error interface
func (e *NarrationFailedError) Error() string {
	return "narration failed: " + http.StatusText(e.status)
}

// HTTPCode returns the upstream status
func (e *NarrationFailedError) HTTPCode() int {
	return e.status
}

// ErrorCode returns the business error code
func (e *NarrationFailedError) ErrorCode() string {
	return "NARRATION_FAILED"
}

// Message returns the user-friendly error message
func (e *NarrationFailedError) Message() string {
	return "Narration failed"
}

// Details returns detailed error information
func (e *NarrationFailedError) Details() string {
	return e.details
}
