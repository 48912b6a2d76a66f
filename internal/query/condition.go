package query

import (
	"fmt"
	"strings"
)

// Operator is a comparison operator in a filter condition.
type Operator int

const (
	OpGreater Operator = iota // >
	OpLess                    // <
	OpEqual                   // =
)

// String returns the operator token as it appears in a condition string.
func (o Operator) String() string {
	switch o {
	case OpGreater:
		return ">"
	case OpLess:
		return "<"
	case OpEqual:
		return "="
	default:
		return "?"
	}
}

// Condition is a parsed filter expression: column, operator, comparison value.
// The value is kept as the raw string; ApplyFilter decides between numeric
// and string comparison.
type Condition struct {
	Column   string
	Operator Operator
	Value    string
}

// conditionOperators is scanned in order when parsing a condition. The first
// token found anywhere in the input wins, so the priority is explicit here
// rather than incidental map iteration order.
var conditionOperators = []struct {
	Token string
	Op    Operator
}{
	{">", OpGreater},
	{"<", OpLess},
	{"=", OpEqual},
}

// ParseCondition parses a condition string such as "age>30" into a Condition.
//
// The input is split on the first occurrence of the first operator token
// found while scanning >, <, = in that order, and both parts are trimmed of
// surrounding whitespace. Known ambiguity: a column name or value that itself
// contains another operator character is resolved by scan priority alone,
// e.g. "a=b>c" parses as column "a=b", operator ">", value "c".
//
// The column is not checked against any dataset here; a nonexistent column
// surfaces as ErrMissingColumn from ApplyFilter.
func ParseCondition(input string) (Condition, error) {
	for _, candidate := range conditionOperators {
		idx := strings.Index(input, candidate.Token)
		if idx < 0 {
			continue
		}
		return Condition{
			Column:   strings.TrimSpace(input[:idx]),
			Operator: candidate.Op,
			Value:    strings.TrimSpace(input[idx+len(candidate.Token):]),
		}, nil
	}
	return Condition{}, fmt.Errorf("%w: %q contains none of >, <, =", ErrInvalidCondition, input)
}
