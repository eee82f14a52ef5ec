// Package reader loads tabular files into memory.
//
// CSV is the primary input format. Files with a .parquet extension are read
// through segmentio/parquet-go and rendered to the same raw-string rows, so
// callers never need to know which format a Dataset came from.
package reader

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// ErrNotFound is returned when the source file does not exist
var ErrNotFound = errors.New("file not found")

// Row maps a column name to its raw value.
//
// A row read from a ragged file may lack keys for trailing columns; the
// Dataset's Columns slice is the authoritative column order.
type Row map[string]string

// Dataset is an ordered sequence of rows sharing one header.
type Dataset struct {
	Columns []string
	Rows    []Row
}

// Len returns the number of rows
func (d *Dataset) Len() int {
	if d == nil {
		return 0
	}
	return len(d.Rows)
}

// HasColumn reports whether name is one of the header fields
func (d *Dataset) HasColumn(name string) bool {
	for _, col := range d.Columns {
		if col == name {
			return true
		}
	}
	return false
}

// Limit returns a dataset holding at most n rows. A non-positive n returns
// the dataset unchanged.
func (d *Dataset) Limit(n int) *Dataset {
	if n <= 0 || len(d.Rows) <= n {
		return d
	}
	return &Dataset{Columns: d.Columns, Rows: d.Rows[:n]}
}

type options struct {
	delimiter rune
}

// Option configures Load.
type Option func(*options)

// WithDelimiter sets the CSV field delimiter. It has no effect on parquet input.
func WithDelimiter(r rune) Option {
	return func(o *options) {
		o.delimiter = r
	}
}

// Load reads the whole file at path into a Dataset.
//
// The format is chosen by extension: .parquet files go through the parquet
// reader, everything else is treated as delimited text with a header row.
// A missing file yields an error wrapping ErrNotFound.
//
// Example:
//
//	ds, err := reader.Load("movies.csv")
//	if errors.Is(err, reader.ErrNotFound) {
//	    ...
//	}
func Load(path string, opts ...Option) (*Dataset, error) {
	o := options{delimiter: ','}
	for _, opt := range opts {
		opt(&o)
	}

	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, path)
		}
		return nil, fmt.Errorf("failed to stat file: %w", err)
	}

	if strings.EqualFold(filepath.Ext(path), ".parquet") {
		r, err := NewParquetReader(path)
		if err != nil {
			return nil, err
		}
		defer func() { _ = r.Close() }()
		return r.ReadAll()
	}

	return loadCSV(path, o.delimiter)
}
