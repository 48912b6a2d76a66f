package reader

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/segmentio/parquet-go"
)

// ReadParquet reads all rows from a parquet file into memory.
//
// Column order follows the parquet schema. Cell values are converted to
// strings so parquet input flows through the same filter and aggregation
// pipeline as delimited text.
func ReadParquet(path string) (*Table, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer file.Close()

	stat, err := file.Stat()
	if err != nil {
		return nil, fmt.Errorf("failed to stat file: %w", err)
	}

	pqFile, err := parquet.OpenFile(file, stat.Size())
	if err != nil {
		return nil, fmt.Errorf("failed to open parquet file: %w", err)
	}

	columns := make([]string, 0)
	for _, field := range pqFile.Schema().Fields() {
		columns = append(columns, field.Name())
	}

	reader := parquet.NewReader(pqFile)
	defer reader.Close()

	rows := make([]map[string]string, 0)
	for {
		raw := make(map[string]interface{})
		err := reader.Read(&raw)
		if err != nil {
			// Use errors.Is for proper EOF detection
			if errors.Is(err, io.EOF) || err.Error() == "EOF" {
				break
			}
			return nil, fmt.Errorf("failed to read row: %w", err)
		}

		row := make(map[string]string, len(raw))
		for col, val := range raw {
			row[col] = formatValue(val)
		}
		rows = append(rows, row)
	}

	return &Table{Columns: columns, Rows: rows}, nil
}

// formatValue converts a parquet value to its string cell representation
func formatValue(v interface{}) string {
	if v == nil {
		return ""
	}

	switch val := v.(type) {
	case string:
		return val
	case int, int8, int16, int32, int64:
		return fmt.Sprintf("%d", val)
	case uint, uint8, uint16, uint32, uint64:
		return fmt.Sprintf("%d", val)
	case float32, float64:
		return fmt.Sprintf("%g", val)
	case bool:
		return fmt.Sprintf("%t", val)
	default:
		return fmt.Sprintf("%v", val)
	}
}
