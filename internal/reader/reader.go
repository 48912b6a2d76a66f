// Package reader provides functionality for loading tabular files into
// memory.
//
// Delimited text files are read with a header row defining the column names;
// parquet files are supported as an alternative input format. Either way the
// whole file is loaded before any processing happens and every cell is kept
// as a raw string.
package reader

import (
	"path/filepath"
	"strings"
)

// Table is a fully loaded dataset.
//
// Columns preserves the header order as read from the file; Rows preserves
// the row order. Every row shares the same key set.
type Table struct {
	Columns []string
	Rows    []map[string]string
}

// Read loads a tabular file, choosing the reader by file extension:
// ".parquet" selects the parquet reader, anything else is read as delimited
// text with the given delimiter.
func Read(path string, delimiter rune) (*Table, error) {
	if strings.EqualFold(filepath.Ext(path), ".parquet") {
		return ReadParquet(path)
	}
	return ReadCSV(path, delimiter)
}
