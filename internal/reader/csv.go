package reader

import (
	"encoding/csv"
	"fmt"
	"os"
)

// ReadCSV reads a delimited text file into memory.
//
// The first record is the header row and defines the column names; every
// following record becomes one row keyed by those names. A zero delimiter
// means comma. Returns an error if the file cannot be opened or a record has
// the wrong number of fields.
func ReadCSV(path string, delimiter rune) (*Table, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer file.Close()

	r := csv.NewReader(file)
	if delimiter != 0 {
		r.Comma = delimiter
	}

	records, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	if len(records) == 0 {
		return &Table{Rows: make([]map[string]string, 0)}, nil
	}

	columns := records[0]
	rows := make([]map[string]string, 0, len(records)-1)
	for _, record := range records[1:] {
		row := make(map[string]string, len(columns))
		for i, col := range columns {
			row[col] = record[i]
		}
		rows = append(rows, row)
	}

	return &Table{Columns: columns, Rows: rows}, nil
}
