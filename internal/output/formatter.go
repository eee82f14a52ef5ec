// Package output renders datasets for the terminal or for other tools.
//
// Supported formats:
//   - table: aligned text table (default)
//   - csv: comma-separated values with header row
//   - json: JSON Lines, one object per row with numeric cells as numbers
//
// Example usage:
//
//	formatter, err := output.New("table", os.Stdout)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	if err := formatter.Format(ds); err != nil {
//	    log.Fatal(err)
//	}
package output

import (
	"fmt"
	"io"
	"strings"

	"github.com/vegasq/csvtab/internal/reader"
)

// Formatter defines the interface for output formatters.
type Formatter interface {
	// Format writes the dataset in the formatter's specific format
	Format(ds *reader.Dataset) error

	// SetOutput changes the output writer
	SetOutput(w io.Writer)
}

// Formats lists the names accepted by New
var Formats = []string{"table", "csv", "json"}

// New returns the formatter registered under name.
func New(name string, w io.Writer) (Formatter, error) {
	switch name {
	case "table":
		return NewTableFormatter(w), nil
	case "csv":
		return NewCSVFormatter(w), nil
	case "json", "jsonl":
		return NewJSONFormatter(w), nil
	default:
		return nil, fmt.Errorf("unsupported format %q (supported: %s)", name, strings.Join(Formats, ", "))
	}
}

// cells returns the row's values in column order; missing cells are empty.
func cells(columns []string, row reader.Row) []string {
	record := make([]string, len(columns))
	for i, col := range columns {
		record[i] = row[col]
	}
	return record
}
