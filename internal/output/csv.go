package output

import (
	"encoding/csv"
	"fmt"
	"io"

	"github.com/vegasq/csvtab/internal/reader"
)

// CSVFormatter outputs rows as CSV format
type CSVFormatter struct {
	writer io.Writer
}

// NewCSVFormatter creates a new CSV formatter
func NewCSVFormatter(w io.Writer) *CSVFormatter {
	return &CSVFormatter{writer: w}
}

// SetOutput sets the output writer
func (c *CSVFormatter) SetOutput(w io.Writer) {
	c.writer = w
}

// Format writes the header and rows as CSV, keeping the dataset's column order
func (c *CSVFormatter) Format(ds *reader.Dataset) error {
	csvWriter := csv.NewWriter(c.writer)

	if len(ds.Columns) > 0 {
		if err := csvWriter.Write(ds.Columns); err != nil {
			return err
		}
	}

	for _, row := range ds.Rows {
		if err := csvWriter.Write(cells(ds.Columns, row)); err != nil {
			return err
		}
	}

	csvWriter.Flush()
	if err := csvWriter.Error(); err != nil {
		return fmt.Errorf("failed to flush CSV writer: %w", err)
	}

	return nil
}
