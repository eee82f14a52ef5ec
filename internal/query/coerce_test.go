package query

import (
	"bytes"
	"log/slog"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCoerce(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		wantKind Kind
		want     interface{}
	}{
		{"integer", "1978", KindInt, int64(1978)},
		{"negative integer", "-42", KindInt, int64(-42)},
		{"integral float", "8.0", KindInt, int64(8)},
		{"exponent", "1e3", KindInt, int64(1000)},
		{"float", "7.5", KindFloat, 7.5},
		{"leading dot", ".25", KindFloat, 0.25},
		{"surrounding spaces", " 7.3 ", KindFloat, 7.3},
		{"text", "Drunken Master", KindString, "Drunken Master"},
		{"empty", "", KindString, ""},
		{"whitespace only", "   ", KindString, "   "},
		{"two decimal points", "1.2.3", KindString, "1.2.3"},
		{"trailing garbage", "7.5abc", KindString, "7.5abc"},
		{"nan", "NaN", KindString, "NaN"},
		{"infinity", "inf", KindString, "inf"},
		{"hex", "0x1F", KindString, "0x1F"},
		{"underscore", "1_000", KindString, "1_000"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Coerce(tt.input)
			assert.Equal(t, tt.wantKind, got.Kind())
			assert.Equal(t, tt.want, got.Interface())
		})
	}
}

func TestCoerce_IntegerRoundTrip(t *testing.T) {
	inputs := []string{"0", "7", "1983", "-15", "9007199254740993", "9223372036854775807"}

	for _, s := range inputs {
		want, err := strconv.ParseInt(s, 10, 64)
		require.NoError(t, err)

		got, ok := Coerce(s).Int()
		require.True(t, ok, "Coerce(%q) should be an integer", s)
		assert.Equal(t, want, got)
	}
}

func TestCoerce_Idempotent(t *testing.T) {
	inputs := []string{"7.5", "8.0", "1978", "-0.125", "1e-7", "1e300", "Project A", ""}

	for _, s := range inputs {
		once := Coerce(s)
		twice := Coerce(once.String())
		assert.Equal(t, once, twice, "coercing %q twice", s)
	}
}

func TestCoercer_Diagnostics(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	c := NewCoercer(logger)
	assert.Equal(t, KindInt, c.Coerce("12").Kind())
	assert.Empty(t, buf.String(), "numeric values must not produce a notice")

	assert.Equal(t, StringValue("abc"), c.Coerce("abc"))
	assert.Contains(t, buf.String(), "value could not be parsed as a number")
	assert.Contains(t, buf.String(), "value=abc")
}

func TestCoercer_Silent(t *testing.T) {
	var nilCoercer *Coercer
	assert.Equal(t, StringValue("abc"), nilCoercer.Coerce("abc"))
	assert.Equal(t, FloatValue(2.5), NewCoercer(nil).Coerce("2.5"))
}

func TestValue_Accessors(t *testing.T) {
	f, ok := IntValue(3).Float64()
	assert.True(t, ok)
	assert.Equal(t, 3.0, f)

	_, ok = StringValue("x").Float64()
	assert.False(t, ok)

	_, ok = FloatValue(1.5).Int()
	assert.False(t, ok)

	assert.Equal(t, "7.25", FloatValue(7.25).String())
	assert.Equal(t, "int", KindInt.String())
	assert.True(t, FloatValue(0).IsNumeric())
	assert.False(t, StringValue("0").IsNumeric())
}
