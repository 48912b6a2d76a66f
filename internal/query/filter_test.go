package query

import (
	"errors"
	"reflect"
	"testing"
)

func testRows() []map[string]string {
	return []map[string]string{
		{"name": "Alice", "age": "30", "city": "Berlin"},
		{"name": "Bob", "age": "25", "city": "Amsterdam"},
		{"name": "Charlie", "age": "35", "city": "Berlin"},
	}
}

func names(rows []map[string]string) []string {
	out := make([]string, 0, len(rows))
	for _, row := range rows {
		out = append(out, row["name"])
	}
	return out
}

func TestApplyFilter_Numeric(t *testing.T) {
	tests := []struct {
		name      string
		condition string
		want      []string
	}{
		{"greater", "age>26", []string{"Alice", "Charlie"}},
		{"less", "age<30", []string{"Bob"}},
		{"equal", "age=25", []string{"Bob"}},
		{"greater none", "age>100", []string{}},
		{"float comparison", "age>29.5", []string{"Alice", "Charlie"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cond, err := ParseCondition(tt.condition)
			if err != nil {
				t.Fatalf("ParseCondition(%q) error = %v", tt.condition, err)
			}
			got, err := ApplyFilter(testRows(), cond)
			if err != nil {
				t.Fatalf("ApplyFilter() error = %v", err)
			}
			if !reflect.DeepEqual(names(got), tt.want) {
				t.Errorf("ApplyFilter(%q) = %v, want %v", tt.condition, names(got), tt.want)
			}
		})
	}
}

func TestApplyFilter_StringFallback(t *testing.T) {
	tests := []struct {
		name      string
		condition string
		want      []string
	}{
		{"string equal", "name=Bob", []string{"Bob"}},
		{"string equal no match", "name=bob", []string{}},
		{"string greater", "name>Alice", []string{"Bob", "Charlie"}},
		{"string less", "city<Berlin", []string{"Bob"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cond, err := ParseCondition(tt.condition)
			if err != nil {
				t.Fatalf("ParseCondition(%q) error = %v", tt.condition, err)
			}
			got, err := ApplyFilter(testRows(), cond)
			if err != nil {
				t.Fatalf("ApplyFilter() error = %v", err)
			}
			if !reflect.DeepEqual(names(got), tt.want) {
				t.Errorf("ApplyFilter(%q) = %v, want %v", tt.condition, names(got), tt.want)
			}
		})
	}
}

func TestApplyFilter_OrderPreserved(t *testing.T) {
	rows := []map[string]string{
		{"n": "3"},
		{"n": "1"},
		{"n": "2"},
	}
	got, err := ApplyFilter(rows, Condition{Column: "n", Operator: OpGreater, Value: "0"})
	if err != nil {
		t.Fatalf("ApplyFilter() error = %v", err)
	}
	want := []string{"3", "1", "2"}
	for i, row := range got {
		if row["n"] != want[i] {
			t.Errorf("row %d = %q, want %q", i, row["n"], want[i])
		}
	}
}

func TestApplyFilter_MissingColumn(t *testing.T) {
	_, err := ApplyFilter(testRows(), Condition{Column: "salary", Operator: OpGreater, Value: "100"})
	if err == nil {
		t.Fatal("expected error for missing column, got nil")
	}
	if !errors.Is(err, ErrMissingColumn) {
		t.Errorf("error = %v, want ErrMissingColumn", err)
	}
}

func TestApplyFilter_CoercionAborts(t *testing.T) {
	// A numeric condition over a column with one bad cell must fail the whole
	// invocation, not skip the bad row.
	rows := []map[string]string{
		{"age": "30"},
		{"age": "abc"},
		{"age": "40"},
	}
	got, err := ApplyFilter(rows, Condition{Column: "age", Operator: OpGreater, Value: "20"})
	if err == nil {
		t.Fatalf("expected error for non-numeric cell, got rows %v", got)
	}
	if !errors.Is(err, ErrNotNumeric) {
		t.Errorf("error = %v, want ErrNotNumeric", err)
	}
	if got != nil {
		t.Errorf("expected nil rows on failure, got %v", got)
	}
}

func TestApplyFilter_DoesNotMutateInput(t *testing.T) {
	rows := testRows()
	if _, err := ApplyFilter(rows, Condition{Column: "age", Operator: OpGreater, Value: "26"}); err != nil {
		t.Fatalf("ApplyFilter() error = %v", err)
	}
	if !reflect.DeepEqual(rows, testRows()) {
		t.Error("input rows were mutated")
	}
}
