// Package query implements the filter and aggregation engine for tabular
// string data.
//
// A filter is a single comparison condition (column, operator, value) parsed
// from a string such as "age>30". Comparison falls back from numeric to
// string semantics depending on whether the condition value parses as a
// number. Aggregation runs named reducers (average, minimum, maximum) over
// numeric columns.
//
// Example usage:
//
//	cond, err := query.ParseCondition("age>30")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	filtered, err := query.ApplyFilter(rows, cond)
package query
