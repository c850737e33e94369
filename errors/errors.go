package errors

import (
	"fmt"
	"net/http"
)

// AppError is the unified supplier-kit error type.
type AppError struct {
	// Code is a machine-readable error code.
	Code ErrorCode `json:"code"`
	// Message is a human-readable error message.
	Message string `json:"message"`
	// Detail carries optional free-text context for the error.
	Detail string `json:"detail,omitempty"`
	// Retryable indicates if the operation can be retried.
	Retryable bool `json:"retryable"`
	// HTTPStatus is the recommended HTTP status code for this error.
	HTTPStatus int `json:"-"`
	// Cause is the underlying error that caused this error.
	Cause error `json:"-"`
}

// Error returns the string representation of the error.
func (e *AppError) Error() string {
	switch {
	case e.Detail != "" && e.Cause != nil:
		return fmt.Sprintf("%s: %s: %s (cause: %v)", e.Code, e.Message, e.Detail, e.Cause)
	case e.Detail != "":
		return fmt.Sprintf("%s: %s: %s", e.Code, e.Message, e.Detail)
	case e.Cause != nil:
		return fmt.Sprintf("%s: %s (cause: %v)", e.Code, e.Message, e.Cause)
	default:
		return fmt.Sprintf("%s: %s", e.Code, e.Message)
	}
}

// Unwrap returns the underlying cause of the error.
func (e *AppError) Unwrap() error { return e.Cause }

// WithCause sets the underlying cause of the error and returns the receiver.
func (e *AppError) WithCause(cause error) *AppError {
	e.Cause = cause
	return e
}

// WithDetail sets the free-text detail and returns the receiver.
func (e *AppError) WithDetail(detail string) *AppError {
	e.Detail = detail
	return e
}

// New creates a new AppError with automatic retryable detection.
func New(code ErrorCode, message string, httpStatus int) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		HTTPStatus: httpStatus,
		Retryable:  IsRetryableCode(code),
	}
}

// --- Taxonomy Constructors ---

// Timeout creates a new AppError for a supplier call that timed out.
func Timeout() *AppError {
	return &AppError{
		Code: ErrCodeTimeout, Message: "timeout",
		HTTPStatus: http.StatusGatewayTimeout, Retryable: true,
	}
}

// Unauthorized creates a new AppError for a rejected credential.
func Unauthorized() *AppError {
	return &AppError{
		Code: ErrCodeUnauthorized, Message: "unauthorized",
		HTTPStatus: http.StatusUnauthorized, Retryable: false,
	}
}

// NotFound creates a new AppError for a resource that was not found.
func NotFound() *AppError {
	return &AppError{
		Code: ErrCodeNotFound, Message: "not found",
		HTTPStatus: http.StatusNotFound, Retryable: false,
	}
}

// Internal creates a new AppError for an unexpected supplier failure.
func Internal(detail string) *AppError {
	return &AppError{
		Code: ErrCodeInternal, Message: "internal error", Detail: detail,
		HTTPStatus: http.StatusInternalServerError, Retryable: false,
	}
}

// Upstream creates a new AppError for a failure in the supplier's backing service.
func Upstream(detail string) *AppError {
	return &AppError{
		Code: ErrCodeUpstream, Message: "upstream error", Detail: detail,
		HTTPStatus: http.StatusBadGateway, Retryable: true,
	}
}

// InvalidInput creates a new AppError for a request the supplier rejected.
func InvalidInput(detail string) *AppError {
	return &AppError{
		Code: ErrCodeInvalidInput, Message: "invalid input", Detail: detail,
		HTTPStatus: http.StatusBadRequest, Retryable: false,
	}
}

// UnsupportedOperation creates a new AppError for an operation the supplier
// does not implement.
func UnsupportedOperation(detail string) *AppError {
	return &AppError{
		Code: ErrCodeUnsupportedOperation, Message: "unsupported operation", Detail: detail,
		HTTPStatus: http.StatusNotImplemented, Retryable: false,
	}
}
