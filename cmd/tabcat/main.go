package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"strings"
	"unicode/utf8"

	"github.com/tabcat/tabcat/internal/output"
	"github.com/tabcat/tabcat/internal/query"
	"github.com/tabcat/tabcat/internal/reader"
)

var (
	fileFlag      = flag.String("file", "", "Path to the input file (delimited text, or .parquet)")
	whereFlag     = flag.String("where", "", "Filter condition (e.g., \"age>30\")")
	aggregateFlag = flag.String("aggregate", "", "Aggregate spec as column=func (func: "+strings.Join(query.Reducers(), ", ")+", or all)")
	delimiterFlag = flag.String("delimiter", ",", "Field delimiter for delimited text input")
)

func main() {
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s -file <path> [options]\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "A tool to display and summarize tabular data files.\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  %s -file data.csv\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  %s -file data.csv -where \"age>30\"\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  %s -file data.csv -where \"age>30\" -aggregate age=all\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  %s -file data.csv -aggregate salary=average\n", os.Args[0])
	}

	flag.Parse()

	if *fileFlag == "" {
		fmt.Fprintf(os.Stderr, "Error: missing required -file argument\n\n")
		flag.Usage()
		os.Exit(1)
	}

	delimiter, err := parseDelimiter(*delimiterFlag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	table, err := reader.Read(*fileFlag, delimiter)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			fmt.Fprintf(os.Stderr, "Error: file '%s' not found\n", *fileFlag)
			fmt.Fprintf(os.Stderr, "Please check the file path and try again.\n")
		} else {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
		os.Exit(1)
	}

	rows := table.Rows

	// Parse and apply the filter condition if specified. Parse and filter
	// failures here are fatal: a condition that cannot be applied to every
	// row must not produce a partial result.
	if *whereFlag != "" {
		cond, err := query.ParseCondition(*whereFlag)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error parsing condition: %v\n\n", err)
			fmt.Fprintf(os.Stderr, "Condition format: <column><op><value> with op one of >, <, =\n")
			fmt.Fprintf(os.Stderr, "Example: age>30\n")
			os.Exit(1)
		}

		rows, err = query.ApplyFilter(rows, cond)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error applying filter: %v\n", err)
			// List available columns to help user
			if len(table.Columns) > 0 {
				fmt.Fprintf(os.Stderr, "\nAvailable columns: %s\n", strings.Join(table.Columns, ", "))
			}
			os.Exit(1)
		}
	}

	if len(rows) == 0 {
		fmt.Println("No data matched the filter condition.")
		return
	}

	formatter := output.NewGridFormatter(os.Stdout)
	if err := formatter.FormatRows(table.Columns, rows); err != nil {
		fmt.Fprintf(os.Stderr, "Error formatting output: %v\n", err)
		os.Exit(1)
	}

	if *aggregateFlag != "" {
		runAggregate(formatter, rows, *aggregateFlag)
	} else {
		aggregateAllColumns(formatter, table.Columns, rows)
	}
}

// runAggregate handles an explicit column=func aggregate request.
//
// Unlike the filter path, a malformed spec, a missing column or a
// non-numeric column is reported as a plain message and the run ends
// cleanly. An unknown function name is fatal.
func runAggregate(formatter *output.GridFormatter, rows []map[string]string, spec string) {
	idx := strings.Index(spec, "=")
	if idx < 0 {
		fmt.Println("Invalid aggregate argument. Use column=func format.")
		return
	}
	column := strings.TrimSpace(spec[:idx])
	fn := strings.TrimSpace(spec[idx+1:])

	values, err := query.ColumnValues(rows, column)
	if err != nil {
		if errors.Is(err, query.ErrMissingColumn) {
			fmt.Printf("Column %q does not exist in the data.\n", column)
		} else {
			fmt.Println("Aggregation can only be applied to numeric columns.")
		}
		return
	}

	if fn == "all" {
		results := query.ApplyAll(values)
		cells := make([][]string, 0, len(results))
		for _, r := range results {
			cells = append(cells, []string{r.Func, column, r.Value})
		}
		if err := formatter.FormatTable([]string{"func", "column", "value"}, cells); err != nil {
			fmt.Fprintf(os.Stderr, "Error formatting output: %v\n", err)
			os.Exit(1)
		}
		return
	}

	result, err := query.Apply(fn, values)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		fmt.Fprintf(os.Stderr, "Supported functions: %s, all\n", strings.Join(query.Reducers(), ", "))
		os.Exit(1)
	}
	if err := formatter.FormatTable([]string{fn}, [][]string{{fmt.Sprintf("%.2f", result)}}); err != nil {
		fmt.Fprintf(os.Stderr, "Error formatting output: %v\n", err)
		os.Exit(1)
	}
}

// aggregateAllColumns computes every reducer for every numeric column and
// renders one combined {func, column, value} table.
func aggregateAllColumns(formatter *output.GridFormatter, columns []string, rows []map[string]string) {
	cells := make([][]string, 0)
	for _, column := range query.NumericColumns(columns, rows) {
		values, err := query.ColumnValues(rows, column)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error aggregating column %q: %v\n", column, err)
			os.Exit(1)
		}
		for _, r := range query.ApplyAll(values) {
			cells = append(cells, []string{r.Func, column, r.Value})
		}
	}
	if err := formatter.FormatTable([]string{"func", "column", "value"}, cells); err != nil {
		fmt.Fprintf(os.Stderr, "Error formatting output: %v\n", err)
		os.Exit(1)
	}
}

// parseDelimiter converts the -delimiter flag value to a rune, accepting
// "\t" as a tab.
func parseDelimiter(s string) (rune, error) {
	if s == "\\t" {
		return '\t', nil
	}
	if utf8.RuneCountInString(s) != 1 {
		return 0, fmt.Errorf("delimiter must be a single character, got %q", s)
	}
	r, _ := utf8.DecodeRuneInString(s)
	return r, nil
}
