package errors

// ErrorCode represents a machine-readable error code.
type ErrorCode string

// Availability errors (retryable)
const (
	// ErrCodeTimeout indicates the supplier did not answer in time.
	ErrCodeTimeout ErrorCode = "TIMEOUT"
	// ErrCodeUpstream indicates a failure reported by the supplier's backing service.
	ErrCodeUpstream ErrorCode = "UPSTREAM_ERROR"
)

// Resource errors
const (
	// ErrCodeNotFound indicates the requested resource or supplier was not found.
	ErrCodeNotFound ErrorCode = "NOT_FOUND"
)

// Request errors
const (
	// ErrCodeInvalidInput indicates the request was rejected by the supplier.
	ErrCodeInvalidInput ErrorCode = "INVALID_INPUT"
	// ErrCodeUnsupportedOperation indicates the supplier does not implement the operation.
	ErrCodeUnsupportedOperation ErrorCode = "UNSUPPORTED_OPERATION"
)

// Authentication errors
const (
	// ErrCodeUnauthorized indicates the supplier refused the caller's credentials.
	ErrCodeUnauthorized ErrorCode = "UNAUTHORIZED"
)

// Internal errors
const (
	// ErrCodeInternal indicates an unexpected failure inside the supplier.
	ErrCodeInternal ErrorCode = "INTERNAL_ERROR"
)

var retryableCodes = map[ErrorCode]bool{
	ErrCodeTimeout:              true,
	ErrCodeUpstream:             true,
	ErrCodeNotFound:             false,
	ErrCodeInvalidInput:         false,
	ErrCodeUnsupportedOperation: false,
	ErrCodeUnauthorized:         false,
	ErrCodeInternal:             false,
}

// IsRetryableCode returns true if the error code indicates a retryable error.
func IsRetryableCode(code ErrorCode) bool {
	return retryableCodes[code]
}
