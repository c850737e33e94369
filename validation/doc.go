// Package validation provides struct validation for supplier-kit
// configuration using go-playground/validator struct tags. Validation
// failures are returned as errors.AppError values with per-field detail.
//
// Request and response payloads are deliberately not validated here;
// they stay schemaless and are the supplier implementer's concern.
package validation
