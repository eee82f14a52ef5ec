package query

import (
	"fmt"
)

// ParseCondition parses a condition of the form column<OP>value.
//
// The input is split at the first occurrence of the highest-priority operator
// present, trying "<", then ">", then "=". Everything after the separator is
// the value, including further operator characters: "age>=30" yields column
// "age", operator ">" and value "=30". Column and value are not trimmed.
//
// An input without any operator character fails with ErrInvalidCondition.
func ParseCondition(raw string) (*Condition, error) {
	if err := ValidateCondition(raw); err != nil {
		return nil, err
	}

	op, pos, ok := NewLexer(raw).Scan().Separator()
	if !ok {
		return nil, fmt.Errorf("%w: %q (expected column<OP>value with OP one of <, >, =)", ErrInvalidCondition, raw)
	}

	column := raw[:pos]
	if err := ValidateColumnName(column); err != nil {
		return nil, err
	}

	return &Condition{
		Column:   column,
		Operator: op,
		Value:    raw[pos+1:],
		Raw:      raw,
	}, nil
}
