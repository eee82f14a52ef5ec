// Package query parses single-condition expressions and evaluates them
// against a loaded dataset.
//
// A condition has the form column<OP>value where OP is one of "<", ">" or
// "=". Raw cell values are coerced to the most specific numeric type they
// represent before comparison, so "7.50" and "7.5" compare equal while
// non-numeric text falls back to lexical ordering.
//
// Example usage:
//
//	cond, err := query.ParseCondition("rating>7.5")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	filtered, err := query.ApplyFilter(ds, cond, nil)
package query

import (
	"strconv"
)

// Operator is a comparison operator recognised in a condition
type Operator int

const (
	OpEqual   Operator = iota // =
	OpLess                    // <
	OpGreater                 // >
)

// operatorPriority is the order in which operator characters are tried when
// choosing the separator of a condition.
var operatorPriority = []Operator{OpLess, OpGreater, OpEqual}

// Symbol returns the operator character as written in a condition
func (o Operator) Symbol() string {
	switch o {
	case OpEqual:
		return "="
	case OpLess:
		return "<"
	case OpGreater:
		return ">"
	default:
		return "?"
	}
}

func (o Operator) String() string {
	return o.Symbol()
}

// Compare applies the operator to two coerced values.
//
// Numbers compare numerically and strings compare lexically. A number never
// equals a string; ordering a number against a string is an error.
func (o Operator) Compare(left, right Value) (bool, error) {
	return compare(left, o, right)
}

// operatorFor maps an operator character to its Operator
func operatorFor(ch byte) (Operator, bool) {
	switch ch {
	case '=':
		return OpEqual, true
	case '<':
		return OpLess, true
	case '>':
		return OpGreater, true
	default:
		return 0, false
	}
}

// Condition is a parsed column<OP>value expression.
//
// Column and Value are kept exactly as written; surrounding whitespace is
// significant.
type Condition struct {
	Column   string
	Operator Operator
	Value    string

	// Raw is the original condition string
	Raw string
}

func (c *Condition) String() string {
	return c.Column + c.Operator.Symbol() + c.Value
}

// Kind identifies the variant held by a Value
type Kind int

const (
	KindString Kind = iota
	KindInt
	KindFloat
)

func (k Kind) String() string {
	switch k {
	case KindInt:
		return "int"
	case KindFloat:
		return "float"
	default:
		return "string"
	}
}

// Value is the result of coercing a raw cell: an integer, a float, or the
// original string.
type Value struct {
	kind Kind
	i    int64
	f    float64
	s    string
}

// IntValue returns an integer Value
func IntValue(i int64) Value {
	return Value{kind: KindInt, i: i}
}

// FloatValue returns a floating-point Value
func FloatValue(f float64) Value {
	return Value{kind: KindFloat, f: f}
}

// StringValue returns a Value holding s unchanged
func StringValue(s string) Value {
	return Value{kind: KindString, s: s}
}

// Kind returns the variant held by v
func (v Value) Kind() Kind {
	return v.kind
}

// IsNumeric reports whether v holds an integer or a float
func (v Value) IsNumeric() bool {
	return v.kind == KindInt || v.kind == KindFloat
}

// Int returns the integer held by v. The second result is false for
// non-integer values.
func (v Value) Int() (int64, bool) {
	if v.kind != KindInt {
		return 0, false
	}
	return v.i, true
}

// Float64 returns v as a float64. Integers are widened; strings report false.
func (v Value) Float64() (float64, bool) {
	switch v.kind {
	case KindInt:
		return float64(v.i), true
	case KindFloat:
		return v.f, true
	default:
		return 0, false
	}
}

// String renders v so that coercing the result yields v again
func (v Value) String() string {
	switch v.kind {
	case KindInt:
		return strconv.FormatInt(v.i, 10)
	case KindFloat:
		return strconv.FormatFloat(v.f, 'f', -1, 64)
	default:
		return v.s
	}
}

// Interface returns the underlying int64, float64 or string
func (v Value) Interface() interface{} {
	switch v.kind {
	case KindInt:
		return v.i
	case KindFloat:
		return v.f
	default:
		return v.s
	}
}
