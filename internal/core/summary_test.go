package core

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func tx(date Date, amount, balance string) Transaction {
	return Transaction{
		Date:    date,
		Amount:  decimal.RequireFromString(amount),
		Balance: decimal.RequireFromString(balance),
	}
}

func TestSummarizeEmpty(t *testing.T) {
	s := Summarize(nil)
	assert.Zero(t, s.Transactions)
	assert.Zero(t, s.ValueCeiling)
	assert.True(t, s.MinDate.IsZero())
}

func TestSummarize(t *testing.T) {
	txs := []Transaction{
		tx(NewDate(2023, 1, 5), "-20.00", "980.00"),
		tx(NewDate(2023, 1, 1), "1500.00", "2480.00"),
		tx(NewDate(2023, 1, 9), "-650.00", "1830.00"),
	}

	s := Summarize(txs)
	assert.Equal(t, 3, s.Transactions)
	assert.Equal(t, NewDate(2023, 1, 1), s.MinDate)
	assert.Equal(t, NewDate(2023, 1, 9), s.MaxDate)
	assert.True(t, decimal.RequireFromString("1830.00").Equal(s.EndBalance))
	// Peak value is the 2480.00 balance, rounded up to the next 1000.
	assert.Equal(t, int64(3000), s.ValueCeiling)
}

func TestSummarizeCeilingFromAbsAmount(t *testing.T) {
	// A large debit dominates the ceiling even though balances stay low.
	txs := []Transaction{
		tx(NewDate(2023, 2, 1), "-4200.00", "300.00"),
	}

	s := Summarize(txs)
	assert.Equal(t, int64(5000), s.ValueCeiling)
}

func TestSummarizeCeilingExactThousand(t *testing.T) {
	txs := []Transaction{
		tx(NewDate(2023, 2, 1), "-10.00", "2000.00"),
	}

	s := Summarize(txs)
	assert.Equal(t, int64(2000), s.ValueCeiling)
}

func TestSummarizeAllNegativeBalances(t *testing.T) {
	// Overdrawn throughout: the ceiling comes from the absolute amounts.
	txs := []Transaction{
		tx(NewDate(2023, 3, 1), "-120.00", "-500.00"),
	}

	s := Summarize(txs)
	assert.Equal(t, int64(1000), s.ValueCeiling)
}
