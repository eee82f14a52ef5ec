package output

import (
	"io"

	"github.com/olekukonko/tablewriter"

	"github.com/vegasq/csvtab/internal/reader"
)

// TableFormatter outputs rows as a bordered text table
type TableFormatter struct {
	writer io.Writer
}

// NewTableFormatter creates a new table formatter
func NewTableFormatter(w io.Writer) *TableFormatter {
	return &TableFormatter{writer: w}
}

// SetOutput sets the output writer
func (t *TableFormatter) SetOutput(w io.Writer) {
	t.writer = w
}

// Format renders the dataset with its header in column order. A dataset
// without columns renders nothing; one without rows renders just the header.
func (t *TableFormatter) Format(ds *reader.Dataset) error {
	if len(ds.Columns) == 0 {
		return nil
	}

	table := tablewriter.NewWriter(t.writer)
	table.SetHeader(ds.Columns)
	table.SetAutoFormatHeaders(false)
	table.SetAutoWrapText(false)

	for _, row := range ds.Rows {
		table.Append(cells(ds.Columns, row))
	}

	table.Render()
	return nil
}
