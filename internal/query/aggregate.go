package query

import "fmt"

// Reducer reduces an ordered sequence of numeric values to a single value.
type Reducer func(values []float64) float64

// reducers is the aggregate function registry. ApplyAll reports results in
// this order. Adding a function means appending an entry here; Apply and
// ApplyAll need no changes.
//
// minimum and maximum panic on empty input (index out of range); average
// guards and returns 0. Callers reject empty datasets before aggregating.
var reducers = []struct {
	Name string
	Fn   Reducer
}{
	{"average", func(values []float64) float64 {
		if len(values) == 0 {
			return 0
		}
		sum := 0.0
		for _, v := range values {
			sum += v
		}
		return sum / float64(len(values))
	}},
	{"minimum", func(values []float64) float64 {
		m := values[0]
		for _, v := range values[1:] {
			if v < m {
				m = v
			}
		}
		return m
	}},
	{"maximum", func(values []float64) float64 {
		m := values[0]
		for _, v := range values[1:] {
			if v > m {
				m = v
			}
		}
		return m
	}},
}

// AggregateResult is one reducer's formatted result from ApplyAll.
type AggregateResult struct {
	Func  string
	Value string
}

// Apply runs the named reducer over the values. Returns ErrUnknownAggregate
// when the name is not registered.
func Apply(name string, values []float64) (float64, error) {
	for _, r := range reducers {
		if r.Name == name {
			return r.Fn(values), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownAggregate, name)
}

// ApplyAll runs every registered reducer over the values and returns one
// result per reducer, in registry order, formatted to two decimal places.
func ApplyAll(values []float64) []AggregateResult {
	results := make([]AggregateResult, 0, len(reducers))
	for _, r := range reducers {
		results = append(results, AggregateResult{
			Func:  r.Name,
			Value: fmt.Sprintf("%.2f", r.Fn(values)),
		})
	}
	return results
}

// Reducers returns the registered reducer names in registry order.
func Reducers() []string {
	names := make([]string, 0, len(reducers))
	for _, r := range reducers {
		names = append(names, r.Name)
	}
	return names
}
