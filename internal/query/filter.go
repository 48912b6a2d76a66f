package query

import (
	"fmt"
	"strconv"
)

// ApplyFilter returns the rows satisfying the condition, in their original
// order. Input rows are never mutated.
//
// If the condition value parses as a number, every cell in the condition's
// column is compared numerically; a single cell that fails to parse aborts
// the whole invocation with ErrNotNumeric (rows are never silently skipped).
// Otherwise cells are compared as strings. Note the contrast with the
// aggregate path, which catches coercion failures: filter-time failures are
// fatal by contract.
func ApplyFilter(rows []map[string]string, cond Condition) ([]map[string]string, error) {
	want, err := strconv.ParseFloat(cond.Value, 64)
	numeric := err == nil

	filtered := make([]map[string]string, 0)
	for _, row := range rows {
		cell, ok := row[cond.Column]
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrMissingColumn, cond.Column)
		}

		var match bool
		if numeric {
			n, err := strconv.ParseFloat(cell, 64)
			if err != nil {
				return nil, fmt.Errorf("%w: column %q has value %q", ErrNotNumeric, cond.Column, cell)
			}
			match = compareNumbers(n, cond.Operator, want)
		} else {
			match = compareStrings(cell, cond.Operator, cond.Value)
		}

		if match {
			filtered = append(filtered, row)
		}
	}

	return filtered, nil
}

// compareNumbers compares two numbers
func compareNumbers(left float64, op Operator, right float64) bool {
	switch op {
	case OpGreater:
		return left > right
	case OpLess:
		return left < right
	case OpEqual:
		return left == right
	default:
		return false
	}
}

// compareStrings compares two strings (case-sensitive)
func compareStrings(left string, op Operator, right string) bool {
	switch op {
	case OpGreater:
		return left > right
	case OpLess:
		return left < right
	case OpEqual:
		return left == right
	default:
		return false
	}
}
