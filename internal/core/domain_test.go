package core

import (
	"encoding/json"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDate(t *testing.T) {
	d, err := ParseDate("31/12/2023")
	require.NoError(t, err)
	assert.Equal(t, NewDate(2023, 12, 31), d)

	_, err = ParseDate("2023-12-31")
	assert.Error(t, err)

	_, err = ParseDate("")
	assert.Error(t, err)
}

func TestDateJSON(t *testing.T) {
	b, err := json.Marshal(NewDate(2023, 1, 2))
	require.NoError(t, err)
	assert.Equal(t, `"2023-01-02"`, string(b))
}

func TestDateDisplay(t *testing.T) {
	d := NewDate(2023, 1, 2)
	assert.Equal(t, "02/01/2023", d.Display())
	assert.Equal(t, "2023-01-02", d.ISO())
}

func TestTransactionColour(t *testing.T) {
	tests := []struct {
		amount string
		want   string
	}{
		{"-20.00", ColourNegative},
		{"15.50", ColourPositive},
		{"0.00", ColourZero},
	}

	for _, tt := range tests {
		t.Run(tt.amount, func(t *testing.T) {
			amount, err := decimal.NewFromString(tt.amount)
			require.NoError(t, err)
			tx := Transaction{Amount: amount}
			assert.Equal(t, tt.want, tx.Colour())
		})
	}
}

func TestTransactionAbsAmount(t *testing.T) {
	amount, err := decimal.NewFromString("-42.50")
	require.NoError(t, err)
	tx := Transaction{Amount: amount}
	assert.True(t, decimal.RequireFromString("42.50").Equal(tx.AbsAmount()))
}
