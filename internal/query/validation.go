package query

import (
	"errors"
	"fmt"
	"strings"
)

// Validation constants to keep a single condition argument bounded
const (
	// MaxConditionLength is the maximum allowed condition string length (64KB)
	MaxConditionLength = 64 * 1024

	// MaxColumnNameLength is the maximum length for a column name
	MaxColumnNameLength = 256
)

var (
	// ErrInvalidCondition is returned when a condition has no recognised operator
	ErrInvalidCondition = errors.New("invalid condition")

	// ErrConditionTooLong is returned when a condition exceeds MaxConditionLength
	ErrConditionTooLong = errors.New("condition too long")

	// ErrColumnNameTooLong is returned when column name is too long
	ErrColumnNameTooLong = errors.New("column name too long")

	// ErrTypeMismatch is returned when a number is ordered against a string
	ErrTypeMismatch = errors.New("type mismatch")

	// ErrOperatorMismatch is returned when an aggregate uses an operator other than "="
	ErrOperatorMismatch = errors.New(`operator must be "="`)

	// ErrUnsupportedAggregate is returned for an aggregate function outside SupportedAggregates
	ErrUnsupportedAggregate = errors.New("unsupported aggregate function")

	// ErrEmptyColumn is returned when an aggregate has no values to work on
	ErrEmptyColumn = errors.New("no values to aggregate")

	// ErrNonNumericAggregate is returned when an aggregated cell is not a number
	ErrNonNumericAggregate = errors.New("non-numeric value in aggregated column")
)

// ValidateCondition performs length validation on condition input
func ValidateCondition(raw string) error {
	if len(raw) > MaxConditionLength {
		return fmt.Errorf("%w: %d bytes (max %d)", ErrConditionTooLong, len(raw), MaxConditionLength)
	}
	return nil
}

// ValidateColumnName validates column name length
func ValidateColumnName(name string) error {
	if len(name) > MaxColumnNameLength {
		return fmt.Errorf("%w: %d chars (max %d)", ErrColumnNameTooLong, len(name), MaxColumnNameLength)
	}
	return nil
}

// supportedList renders the allowed aggregate names for error messages
func supportedList() string {
	names := make([]string, len(SupportedAggregates))
	for i, fn := range SupportedAggregates {
		names[i] = string(fn)
	}
	return strings.Join(names, ", ")
}
