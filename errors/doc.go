// Package errors provides the unified error taxonomy for supplier-kit.
// It implements a structured error type with machine-readable codes,
// HTTP status mapping, and retryable detection. Registry and group code
// never interprets these errors; a supplier failure is captured verbatim
// and surfaced to the caller next to the failing supplier's name.
package errors
