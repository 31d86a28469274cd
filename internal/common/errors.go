// Package common defines shared constants and sentinel errors used across
// the SalaryWatch backend. Callers should use errors.Is to match these values.
package common

import "errors"

var (
	// Repository-level errors.
	ErrorNotFound = errors.New("not found")

	// Service-level errors (generic/internal flow control).
	ErrorInternal     = errors.New("internal error")
	ErrorUnauthorized = errors.New("unauthorized")

	// Validation errors. The submission gate reports a single generic
	// failure without field-level detail.
	ErrorValidation = errors.New("missing required fields")
)
