package utils

import "errors"

// Common application errors used across services. The four families map to
// distinct handler responses: read failures degrade to empty data, write
// failures abort the action, validation failures are rejected before any
// write, and authorization failures never reach a service.
var (
	ErrStoreRead    = errors.New("STORE_READ_FAILED")
	ErrStoreWrite   = errors.New("STORE_WRITE_FAILED")
	ErrProductWrite = errors.New("PRODUCT_WRITE_FAILED")
	ErrVariantWrite = errors.New("VARIANT_WRITE_FAILED")
	ErrValidation   = errors.New("VALIDATION_FAILED")
	ErrUnauthorized = errors.New("UNAUTHORIZED")
	ErrNotFound     = errors.New("NOT_FOUND")
)
