// Package midata reads UK bank statement exports in the midata
// tabular format and normalizes them into canonical transactions.
package midata

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
	"strings"

	"github.com/shopspring/decimal"

	"banalysis/internal/core"
)

// Raw midata column headers, matched case- and whitespace-insensitively.
const (
	colDate        = "date"
	colType        = "type"
	colDescription = "merchant/description"
	colAmount      = "debit/credit"
	colBalance     = "balance"
)

// requiredColumns lists the midata headers every statement must carry,
// in the order missing ones are reported.
var requiredColumns = []string{colDate, colType, colDescription, colAmount, colBalance}

// arrangedPrefix marks the trailing overdraft-limit summary row some
// banks append. It is a heuristic carried over from the midata format:
// only the final row is inspected and only its type field matters.
const arrangedPrefix = "arranged"

// currencySymbol is stripped from amount and balance values before
// numeric parsing. Midata exports are assumed to be in pounds.
const currencySymbol = "£"

// Parse reads a midata CSV and returns its canonical transactions in
// input order. Any schema, numeric or date failure rejects the whole
// input: the caller never sees a partial table.
func Parse(r io.Reader) ([]core.Transaction, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1 // trailing summary rows may be ragged
	cr.TrimLeadingSpace = true

	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading midata CSV: %w", err)
	}
	if len(records) == 0 {
		return nil, &SchemaError{Missing: requiredColumns}
	}

	index, err := columnIndex(records[0])
	if err != nil {
		return nil, err
	}

	rows := records[1:]
	rows = dropArrangedRow(rows, index[colType])

	txs := make([]core.Transaction, 0, len(rows))
	for i, row := range rows {
		tx, err := parseRow(row, index, i+1)
		if err != nil {
			return nil, err
		}
		txs = append(txs, tx)
	}
	return txs, nil
}

// ParseBytes parses an in-memory midata CSV, as received from an upload.
func ParseBytes(data []byte) ([]core.Transaction, error) {
	return Parse(bytes.NewReader(data))
}

// columnIndex maps each required column to its position in the header
// row. Header names are trimmed and lowercased before matching; extra
// columns are ignored.
func columnIndex(header []string) (map[string]int, error) {
	positions := make(map[string]int, len(header))
	for i, name := range header {
		name = strings.ToLower(strings.TrimSpace(name))
		if _, seen := positions[name]; !seen {
			positions[name] = i
		}
	}

	index := make(map[string]int, len(requiredColumns))
	var missing []string
	for _, name := range requiredColumns {
		pos, ok := positions[name]
		if !ok {
			missing = append(missing, name)
			continue
		}
		index[name] = pos
	}
	if len(missing) > 0 {
		return nil, &SchemaError{Missing: missing}
	}
	return index, nil
}

// dropArrangedRow removes the final row when its type field starts
// with "arranged" (any case). That row encodes an arranged overdraft
// limit, not a transaction.
func dropArrangedRow(rows [][]string, typePos int) [][]string {
	if len(rows) == 0 {
		return rows
	}
	last := rows[len(rows)-1]
	value := strings.ToLower(strings.TrimSpace(field(last, typePos)))
	if strings.HasPrefix(value, arrangedPrefix) {
		return rows[:len(rows)-1]
	}
	return rows
}

func parseRow(row []string, index map[string]int, rowNum int) (core.Transaction, error) {
	dateValue := strings.TrimSpace(field(row, index[colDate]))
	date, err := core.ParseDate(dateValue)
	if err != nil {
		return core.Transaction{}, &DateParseError{Row: rowNum, Value: dateValue}
	}

	amount, err := parseMoney(row, index[colAmount], colAmount, rowNum)
	if err != nil {
		return core.Transaction{}, err
	}
	balance, err := parseMoney(row, index[colBalance], colBalance, rowNum)
	if err != nil {
		return core.Transaction{}, err
	}

	return core.Transaction{
		Date:        date,
		Type:        strings.TrimSpace(field(row, index[colType])),
		Description: strings.TrimSpace(field(row, index[colDescription])),
		Amount:      amount,
		Balance:     balance,
	}, nil
}

// parseMoney strips the currency symbol and parses the remainder as a
// decimal number.
func parseMoney(row []string, pos int, column string, rowNum int) (decimal.Decimal, error) {
	raw := strings.TrimSpace(field(row, pos))
	cleaned := strings.ReplaceAll(raw, currencySymbol, "")
	value, err := decimal.NewFromString(cleaned)
	if err != nil {
		return decimal.Zero, &NumericParseError{Row: rowNum, Column: column, Value: raw}
	}
	return value, nil
}

// field reads a cell by position, tolerating short rows.
func field(row []string, pos int) string {
	if pos < 0 || pos >= len(row) {
		return ""
	}
	return row[pos]
}
