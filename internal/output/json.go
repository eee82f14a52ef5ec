package output

import (
	"bytes"
	"io"

	"github.com/goccy/go-json"

	"github.com/vegasq/csvtab/internal/query"
	"github.com/vegasq/csvtab/internal/reader"
)

// JSONFormatter outputs rows as JSON Lines format
type JSONFormatter struct {
	writer io.Writer
}

// NewJSONFormatter creates a new JSON Lines formatter
func NewJSONFormatter(w io.Writer) *JSONFormatter {
	return &JSONFormatter{writer: w}
}

// SetOutput sets the output writer
func (j *JSONFormatter) SetOutput(w io.Writer) {
	j.writer = w
}

// Format writes one JSON object per row with keys in header order. A cell is
// emitted as a JSON number only when its text is the canonical form of that
// number, so values like "02134" or ids wider than int64 stay strings.
// Missing cells are omitted.
func (j *JSONFormatter) Format(ds *reader.Dataset) error {
	var buf bytes.Buffer
	for _, row := range ds.Rows {
		buf.Reset()
		buf.WriteByte('{')
		seen := make(map[string]bool, len(ds.Columns))
		for _, col := range ds.Columns {
			raw, ok := row[col]
			if !ok || seen[col] {
				continue
			}
			seen[col] = true

			key, err := json.Marshal(col)
			if err != nil {
				return err
			}
			value, err := json.Marshal(cellValue(raw))
			if err != nil {
				return err
			}
			if buf.Len() > 1 {
				buf.WriteByte(',')
			}
			buf.Write(key)
			buf.WriteByte(':')
			buf.Write(value)
		}
		buf.WriteString("}\n")
		if _, err := j.writer.Write(buf.Bytes()); err != nil {
			return err
		}
	}
	return nil
}

// cellValue returns the number raw holds if it round-trips exactly, or raw.
func cellValue(raw string) interface{} {
	v := query.Coerce(raw)
	if v.IsNumeric() && v.String() == raw {
		return v.Interface()
	}
	return raw
}
