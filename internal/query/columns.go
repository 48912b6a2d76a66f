package query

import (
	"fmt"
	"strconv"
)

// NumericColumns returns the columns whose every cell parses as a
// floating-point number. A column with even one non-numeric cell (an empty
// string included) is excluded. The result preserves the order of the given
// columns, which callers take from the header row.
//
// An empty dataset yields no numeric columns; callers guard against empty
// datasets before aggregating.
func NumericColumns(columns []string, rows []map[string]string) []string {
	numeric := make([]string, 0, len(columns))
	if len(rows) == 0 {
		return numeric
	}

	for _, column := range columns {
		ok := true
		for _, row := range rows {
			if _, err := strconv.ParseFloat(row[column], 64); err != nil {
				ok = false
				break
			}
		}
		if ok {
			numeric = append(numeric, column)
		}
	}

	return numeric
}

// ColumnValues extracts one column from the rows as floats, in row order.
// Returns ErrMissingColumn if a row lacks the column and ErrNotNumeric if a
// cell cannot be parsed.
func ColumnValues(rows []map[string]string, column string) ([]float64, error) {
	values := make([]float64, 0, len(rows))
	for _, row := range rows {
		cell, ok := row[column]
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrMissingColumn, column)
		}
		n, err := strconv.ParseFloat(cell, 64)
		if err != nil {
			return nil, fmt.Errorf("%w: column %q has value %q", ErrNotNumeric, column, cell)
		}
		values = append(values, n)
	}
	return values, nil
}
