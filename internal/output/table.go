// Package output renders tabular data as grid-style text tables.
package output

import (
	"io"

	"github.com/olekukonko/tablewriter"
)

// GridFormatter renders rows as a bordered text table with column headers.
type GridFormatter struct {
	writer io.Writer
}

// NewGridFormatter creates a new grid formatter
func NewGridFormatter(w io.Writer) *GridFormatter {
	return &GridFormatter{writer: w}
}

// SetOutput sets the output writer
func (g *GridFormatter) SetOutput(w io.Writer) {
	g.writer = w
}

// FormatRows renders a dataset, one table column per dataset column in the
// given order.
func (g *GridFormatter) FormatRows(columns []string, rows []map[string]string) error {
	cells := make([][]string, 0, len(rows))
	for _, row := range rows {
		record := make([]string, len(columns))
		for i, col := range columns {
			record[i] = row[col]
		}
		cells = append(cells, record)
	}
	return g.FormatTable(columns, cells)
}

// FormatTable renders a prepared grid with the given headers.
func (g *GridFormatter) FormatTable(headers []string, cells [][]string) error {
	table := tablewriter.NewWriter(g.writer)
	table.SetHeader(headers)
	table.SetAutoFormatHeaders(false)
	table.SetAutoWrapText(false)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetRowLine(true)
	table.AppendBulk(cells)
	table.Render()
	return nil
}
