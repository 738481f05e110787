package utils

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// ParsePrice converts a price string like "499.00" or "600" into a decimal.
// Rejects empty input, malformed numbers, negatives, and more than 2 decimal
// places. Validation happens before any write is issued.
func ParsePrice(s string) (decimal.Decimal, error) {
	if strings.TrimSpace(s) == "" {
		return decimal.Zero, fmt.Errorf("%w: price is empty", ErrValidation)
	}

	d, err := decimal.NewFromString(strings.TrimSpace(s))
	if err != nil {
		return decimal.Zero, fmt.Errorf("%w: price must be a valid number", ErrValidation)
	}
	if d.LessThan(decimal.Zero) {
		return decimal.Zero, fmt.Errorf("%w: price must not be negative", ErrValidation)
	}
	if d.Exponent() < -2 {
		return decimal.Zero, fmt.Errorf("%w: price must have at most 2 decimal places", ErrValidation)
	}
	return d, nil
}

// ParseStock converts a stock string into a non-negative integer.
func ParseStock(s string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, fmt.Errorf("%w: stock must be an integer", ErrValidation)
	}
	if n < 0 {
		return 0, fmt.Errorf("%w: stock must not be negative", ErrValidation)
	}
	return n, nil
}

// NormalizeOptional trims an optional string field and maps blank input to
// nil, so absence is stored as NULL rather than as an empty string.
func NormalizeOptional(s string) *string {
	trimmed := strings.TrimSpace(s)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}
