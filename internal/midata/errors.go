package midata

import (
	"fmt"
	"strings"
)

// SchemaError reports required midata columns missing from the input.
// The whole parse is rejected; there is no partial result.
type SchemaError struct {
	Missing []string
}

func (e *SchemaError) Error() string {
	return "the following columns are missing from midata CSV: " + joinColumnNames(e.Missing)
}

// NumericParseError reports an amount or balance value that is not a
// valid number after the currency symbol is stripped.
type NumericParseError struct {
	Row    int // 1-based data row, excluding the header
	Column string
	Value  string
}

func (e *NumericParseError) Error() string {
	return fmt.Sprintf("row %d: column %q: cannot parse %q as a number", e.Row, e.Column, e.Value)
}

// DateParseError reports a date value that does not match the
// DD/MM/YYYY midata format.
type DateParseError struct {
	Row   int // 1-based data row, excluding the header
	Value string
}

func (e *DateParseError) Error() string {
	return fmt.Sprintf("row %d: cannot parse %q as a DD/MM/YYYY date", e.Row, e.Value)
}

// joinColumnNames renders column names as a quoted, comma-separated
// list with " and " before the final name: 'date', 'type' and 'balance'.
func joinColumnNames(names []string) string {
	quoted := make([]string, len(names))
	for i, n := range names {
		quoted[i] = "'" + n + "'"
	}
	if len(quoted) <= 1 {
		return strings.Join(quoted, "")
	}
	return strings.Join(quoted[:len(quoted)-1], ", ") + " and " + quoted[len(quoted)-1]
}
