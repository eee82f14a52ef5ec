package query

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/vegasq/csvtab/internal/reader"
)

// AggregateFunc names an aggregate statistic
type AggregateFunc string

const (
	AggMin AggregateFunc = "min"
	AggMax AggregateFunc = "max"
	AggAvg AggregateFunc = "avg"
)

// SupportedAggregates lists the accepted aggregate functions
var SupportedAggregates = []AggregateFunc{AggMin, AggMax, AggAvg}

// ParseAggregateFunc resolves a function name case-insensitively
func ParseAggregateFunc(name string) (AggregateFunc, error) {
	fn := AggregateFunc(strings.ToLower(name))
	for _, supported := range SupportedAggregates {
		if fn == supported {
			return fn, nil
		}
	}
	return "", fmt.Errorf("%w: %q (supported: %s)", ErrUnsupportedAggregate, name, supportedList())
}

// AggregateResult is a single statistic computed over one column
type AggregateResult struct {
	Function AggregateFunc
	Column   string
	Value    Value
}

// Row returns the result as a single-entry mapping from function name to value
func (r *AggregateResult) Row() map[string]Value {
	return map[string]Value{string(r.Function): r.Value}
}

// Dataset renders the result as a one-column, one-row dataset for output
func (r *AggregateResult) Dataset() *reader.Dataset {
	name := string(r.Function)
	return &reader.Dataset{
		Columns: []string{name},
		Rows:    []reader.Row{{name: r.Value.String()}},
	}
}

// Round returns a copy of r with a float value rounded half away from zero
// to the given number of decimal places. Integer results and negative
// places leave the value unchanged.
func (r *AggregateResult) Round(places int) *AggregateResult {
	rounded := *r
	if places < 0 || r.Value.kind != KindFloat {
		return &rounded
	}
	f, _ := decimal.NewFromFloat(r.Value.f).Round(int32(places)).Float64()
	rounded.Value = FloatValue(f)
	return &rounded
}

// Aggregate computes the statistic named by cond.Value over cond.Column.
//
// The aggregate spec is condition-shaped ("rating=avg"), so the operator must
// be "="; anything else fails with ErrOperatorMismatch.
func Aggregate(ds *reader.Dataset, cond *Condition, coercer *Coercer) (*AggregateResult, error) {
	if cond.Operator != OpEqual {
		return nil, fmt.Errorf("%w: got %q in %q", ErrOperatorMismatch, cond.Operator.Symbol(), cond.Raw)
	}

	fn, err := ParseAggregateFunc(cond.Value)
	if err != nil {
		return nil, err
	}

	return AggregateColumn(ds, cond.Column, fn, coercer)
}

// AggregateColumn computes fn over every present, non-empty cell of column.
//
// Cells are coerced first; a cell that stays a string fails with
// ErrNonNumericAggregate. A column with no usable cells fails with
// ErrEmptyColumn. min and max keep the winning value's kind, avg is always
// a float.
func AggregateColumn(ds *reader.Dataset, column string, fn AggregateFunc, coercer *Coercer) (*AggregateResult, error) {
	values := make([]Value, 0, len(ds.Rows))
	for i, row := range ds.Rows {
		raw, ok := row[column]
		if !ok || strings.TrimSpace(raw) == "" {
			continue
		}

		v := coercer.Coerce(raw)
		if !v.IsNumeric() {
			return nil, fmt.Errorf("%w: row %d, column %q: %q", ErrNonNumericAggregate, i+1, column, raw)
		}
		values = append(values, v)
	}

	if len(values) == 0 {
		return nil, fmt.Errorf("%w: column %q", ErrEmptyColumn, column)
	}

	var result Value
	switch fn {
	case AggMin:
		result = extreme(values, OpLess)
	case AggMax:
		result = extreme(values, OpGreater)
	case AggAvg:
		result = average(values)
	default:
		return nil, fmt.Errorf("%w: %q (supported: %s)", ErrUnsupportedAggregate, fn, supportedList())
	}

	return &AggregateResult{
		Function: fn,
		Column:   column,
		Value:    result,
	}, nil
}

// extreme returns the value that wins every comparison under op.
// values must be non-empty and numeric.
func extreme(values []Value, op Operator) Value {
	best := values[0]
	for _, v := range values[1:] {
		if better, _ := compare(v, op, best); better {
			best = v
		}
	}
	return best
}

// average sums in decimal so that short decimal inputs keep their exact mean
func average(values []Value) Value {
	sum := decimal.Zero
	for _, v := range values {
		sum = sum.Add(toDecimal(v))
	}
	mean, _ := sum.Div(decimal.NewFromInt(int64(len(values)))).Float64()
	return FloatValue(mean)
}

func toDecimal(v Value) decimal.Decimal {
	if v.kind == KindInt {
		return decimal.NewFromInt(v.i)
	}
	return decimal.NewFromFloat(v.f)
}
