package midata

import (
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"banalysis/internal/core"
)

func dec(t *testing.T, s string) decimal.Decimal {
	t.Helper()
	d, err := decimal.NewFromString(s)
	require.NoError(t, err)
	return d
}

const sampleStatement = `Date,Type,Merchant/Description,Debit/Credit,Balance
01/01/2023,Payment,Shop,-£20.00,£980.00
02/01/2023,Credit,Salary,£1500.00,£2480.00
03/01/2023,Direct Debit,Rent,-£650.00,£1830.00
`

func TestParse(t *testing.T) {
	txs, err := Parse(strings.NewReader(sampleStatement))
	require.NoError(t, err)
	require.Len(t, txs, 3)

	first := txs[0]
	assert.Equal(t, core.NewDate(2023, 1, 1), first.Date)
	assert.Equal(t, "Payment", first.Type)
	assert.Equal(t, "Shop", first.Description)
	assert.True(t, dec(t, "-20.00").Equal(first.Amount), "amount=%s", first.Amount)
	assert.True(t, dec(t, "980.00").Equal(first.Balance), "balance=%s", first.Balance)

	// Order is preserved.
	assert.Equal(t, "Salary", txs[1].Description)
	assert.Equal(t, "Rent", txs[2].Description)
}

func TestParseHeaderNormalization(t *testing.T) {
	input := "  DATE , type,MERCHANT/DESCRIPTION, Debit/Credit ,  balance , Extra\n" +
		"31/12/2023,Payment,Shop,-£5.00,£95.00,ignored\n"

	txs, err := Parse(strings.NewReader(input))
	require.NoError(t, err)
	require.Len(t, txs, 1)
	assert.Equal(t, core.NewDate(2023, 12, 31), txs[0].Date)
	assert.Equal(t, "Shop", txs[0].Description)
}

func TestParseMissingColumns(t *testing.T) {
	tests := []struct {
		name    string
		header  string
		wantMsg string
	}{
		{
			name:    "one missing",
			header:  "Date,Type,Merchant/Description,Debit/Credit",
			wantMsg: "the following columns are missing from midata CSV: 'balance'",
		},
		{
			name:    "two missing",
			header:  "Type,Merchant/Description,Debit/Credit",
			wantMsg: "the following columns are missing from midata CSV: 'date' and 'balance'",
		},
		{
			name:    "three missing",
			header:  "Merchant/Description,Debit/Credit",
			wantMsg: "the following columns are missing from midata CSV: 'date', 'type' and 'balance'",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(strings.NewReader(tt.header + "\n"))
			var schemaErr *SchemaError
			require.ErrorAs(t, err, &schemaErr)
			assert.Equal(t, tt.wantMsg, schemaErr.Error())
		})
	}
}

func TestParseEmptyInput(t *testing.T) {
	_, err := Parse(strings.NewReader(""))
	var schemaErr *SchemaError
	require.ErrorAs(t, err, &schemaErr)
	assert.Len(t, schemaErr.Missing, 5)
}

func TestParseDropsArrangedOverdraftRow(t *testing.T) {
	input := sampleStatement +
		"04/01/2023,Arranged Overdraft Limit,,,£0.00\n"

	txs, err := Parse(strings.NewReader(input))
	require.NoError(t, err)
	require.Len(t, txs, 3)
	for _, tx := range txs {
		assert.NotContains(t, strings.ToLower(tx.Type), "arranged")
	}
}

func TestParseArrangedPrefixCaseInsensitive(t *testing.T) {
	input := sampleStatement +
		"04/01/2023,ARRANGED overdraft,,,£0.00\n"

	txs, err := Parse(strings.NewReader(input))
	require.NoError(t, err)
	assert.Len(t, txs, 3)
}

func TestParseKeepsNonArrangedLastRow(t *testing.T) {
	txs, err := Parse(strings.NewReader(sampleStatement))
	require.NoError(t, err)
	assert.Len(t, txs, 3)
}

func TestParseArrangedOnlyChecksLastRow(t *testing.T) {
	input := "Date,Type,Merchant/Description,Debit/Credit,Balance\n" +
		"01/01/2023,Arranged Overdraft Limit,,£0.00,£0.00\n" +
		"02/01/2023,Payment,Shop,-£20.00,£980.00\n"

	txs, err := Parse(strings.NewReader(input))
	require.NoError(t, err)
	// Only a trailing arranged row is treated as a summary line.
	require.Len(t, txs, 2)
}

func TestParseMoneyValues(t *testing.T) {
	tests := []struct {
		raw  string
		want string
	}{
		{"£123.45", "123.45"},
		{"-£50.00", "-50.00"},
		{"£0.00", "0.00"},
		{"980.00", "980.00"},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			input := "Date,Type,Merchant/Description,Debit/Credit,Balance\n" +
				"01/01/2023,Payment,Shop," + tt.raw + ",£1.00\n"
			txs, err := Parse(strings.NewReader(input))
			require.NoError(t, err)
			require.Len(t, txs, 1)
			assert.True(t, dec(t, tt.want).Equal(txs[0].Amount), "amount=%s", txs[0].Amount)
		})
	}
}

func TestParseRejectsNonNumericAmount(t *testing.T) {
	input := "Date,Type,Merchant/Description,Debit/Credit,Balance\n" +
		"01/01/2023,Payment,Shop,not-money,£1.00\n"

	_, err := Parse(strings.NewReader(input))
	var numErr *NumericParseError
	require.ErrorAs(t, err, &numErr)
	assert.Equal(t, 1, numErr.Row)
	assert.Equal(t, "debit/credit", numErr.Column)
	assert.Equal(t, "not-money", numErr.Value)
}

func TestParseRejectsNonNumericBalance(t *testing.T) {
	input := "Date,Type,Merchant/Description,Debit/Credit,Balance\n" +
		"01/01/2023,Payment,Shop,-£20.00,n/a\n"

	_, err := Parse(strings.NewReader(input))
	var numErr *NumericParseError
	require.ErrorAs(t, err, &numErr)
	assert.Equal(t, "balance", numErr.Column)
}

func TestParseRejectsWrongDateFormat(t *testing.T) {
	input := "Date,Type,Merchant/Description,Debit/Credit,Balance\n" +
		"2023-12-31,Payment,Shop,-£20.00,£980.00\n"

	_, err := Parse(strings.NewReader(input))
	var dateErr *DateParseError
	require.ErrorAs(t, err, &dateErr)
	assert.Equal(t, 1, dateErr.Row)
	assert.Equal(t, "2023-12-31", dateErr.Value)
}

func TestParseAllOrNothing(t *testing.T) {
	// A bad value anywhere rejects every row, including valid ones.
	input := sampleStatement +
		"04/01/2023,Payment,Shop,bad,£1.00\n"

	txs, err := Parse(strings.NewReader(input))
	require.Error(t, err)
	assert.Nil(t, txs)
}

func TestParseHeadersOnly(t *testing.T) {
	txs, err := Parse(strings.NewReader("Date,Type,Merchant/Description,Debit/Credit,Balance\n"))
	require.NoError(t, err)
	assert.Empty(t, txs)
}

func TestParseEndToEnd(t *testing.T) {
	input := "Date,Type,Merchant/Description,Debit/Credit,Balance\n" +
		"01/01/2023,Payment,Shop,-£20.00,£980.00\n" +
		"02/01/2023,Arranged Overdraft Limit,,,£0.00\n"

	txs, err := ParseBytes([]byte(input))
	require.NoError(t, err)
	require.Len(t, txs, 1)

	tx := txs[0]
	assert.Equal(t, core.NewDate(2023, 1, 1), tx.Date)
	assert.Equal(t, "Payment", tx.Type)
	assert.Equal(t, "Shop", tx.Description)
	assert.True(t, dec(t, "-20.00").Equal(tx.Amount))
	assert.True(t, dec(t, "980.00").Equal(tx.Balance))
}

func TestJoinColumnNames(t *testing.T) {
	assert.Equal(t, "'date'", joinColumnNames([]string{"date"}))
	assert.Equal(t, "'date' and 'type'", joinColumnNames([]string{"date", "type"}))
	assert.Equal(t, "'date', 'type' and 'balance'", joinColumnNames([]string{"date", "type", "balance"}))
}
