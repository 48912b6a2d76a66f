package query

import "errors"

var (
	// ErrInvalidCondition is returned when a filter condition contains no
	// comparison operator
	ErrInvalidCondition = errors.New("invalid filter condition")

	// ErrMissingColumn is returned when a referenced column is absent from a row
	ErrMissingColumn = errors.New("column not found")

	// ErrNotNumeric is returned when a cell expected to be numeric cannot be
	// parsed as a number
	ErrNotNumeric = errors.New("value is not numeric")

	// ErrUnknownAggregate is returned when an aggregate function name is not
	// in the registry
	ErrUnknownAggregate = errors.New("unsupported aggregate function")
)
