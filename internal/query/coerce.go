package query

import (
	"log/slog"
	"math"
	"strconv"
	"strings"
)

// Coerce converts s to the most specific numeric Value it represents.
//
// Integers without a fractional part become KindInt, other numbers become
// KindFloat, and anything else (including empty, whitespace-only, NaN and
// infinite values) is returned unchanged as KindString. Surrounding
// whitespace is ignored when parsing.
func Coerce(s string) Value {
	if v, ok := parseNumber(s); ok {
		return v
	}
	return StringValue(s)
}

// parseNumber tries an exact integer parse before falling back to float
func parseNumber(s string) (Value, bool) {
	t := strings.TrimSpace(s)
	if t == "" || strings.ContainsAny(t, "xX_") {
		return Value{}, false
	}

	if i, err := strconv.ParseInt(t, 10, 64); err == nil {
		return IntValue(i), true
	}

	f, err := strconv.ParseFloat(t, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return Value{}, false
	}

	if f == math.Trunc(f) && f >= math.MinInt64 && f < math.MaxInt64 {
		return IntValue(int64(f)), true
	}
	return FloatValue(f), true
}

// Coercer coerces values and optionally reports the ones that stay strings.
//
// A nil *Coercer, or one built without a logger, behaves exactly like Coerce.
type Coercer struct {
	logger *slog.Logger
}

// NewCoercer returns a Coercer that logs a debug notice for every value that
// could not be parsed as a number. Pass nil for silent coercion.
func NewCoercer(logger *slog.Logger) *Coercer {
	return &Coercer{logger: logger}
}

// Coerce converts s like the package-level Coerce
func (c *Coercer) Coerce(s string) Value {
	v := Coerce(s)
	if v.kind == KindString && c != nil && c.logger != nil {
		c.logger.Debug("value could not be parsed as a number", "value", s)
	}
	return v
}
