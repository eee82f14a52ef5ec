package query

import (
	"cmp"
	"fmt"
	"strings"

	"github.com/vegasq/csvtab/internal/reader"
)

// compare compares two coerced values using the given operator
func compare(left Value, operator Operator, right Value) (bool, error) {
	switch {
	case left.kind == KindInt && right.kind == KindInt:
		return compareOrdered(left.i, operator, right.i), nil
	case left.IsNumeric() && right.IsNumeric():
		l, _ := left.Float64()
		r, _ := right.Float64()
		return compareOrdered(l, operator, r), nil
	case left.kind == KindString && right.kind == KindString:
		return compareOrdered(left.s, operator, right.s), nil
	}

	// A number and a string are never equal, and have no order
	if operator == OpEqual {
		return false, nil
	}
	return false, fmt.Errorf("%w: cannot compare %s %q with %s %q",
		ErrTypeMismatch, left.kind, left.String(), right.kind, right.String())
}

// compareOrdered compares two values of the same ordered type
func compareOrdered[T cmp.Ordered](left T, operator Operator, right T) bool {
	switch operator {
	case OpEqual:
		return left == right
	case OpLess:
		return left < right
	case OpGreater:
		return left > right
	default:
		return false
	}
}

// ApplyFilter returns the rows of ds whose value for cond.Column satisfies
// the condition, in their original order.
//
// Both the cell and cond.Value are coerced before comparison. A row whose
// cell for the condition's column is missing or blank never matches, the same
// way AggregateColumn treats it as absent. The input dataset is not modified;
// the result shares its Row maps. A nil condition returns ds unchanged.
func ApplyFilter(ds *reader.Dataset, cond *Condition, coercer *Coercer) (*reader.Dataset, error) {
	if cond == nil {
		return ds, nil
	}

	target := coercer.Coerce(cond.Value)

	filtered := &reader.Dataset{
		Columns: ds.Columns,
		Rows:    make([]reader.Row, 0),
	}
	for i, row := range ds.Rows {
		raw, ok := row[cond.Column]
		if !ok || strings.TrimSpace(raw) == "" {
			continue
		}

		match, err := cond.Operator.Compare(coercer.Coerce(raw), target)
		if err != nil {
			return nil, fmt.Errorf("row %d, column %q: %w", i+1, cond.Column, err)
		}
		if match {
			filtered.Rows = append(filtered.Rows, row)
		}
	}

	return filtered, nil
}

// MissingColumn reports whether cond refers to a column that is not in the
// dataset header. Such a filter can never match.
func MissingColumn(ds *reader.Dataset, cond *Condition) bool {
	return cond != nil && !ds.HasColumn(cond.Column)
}
