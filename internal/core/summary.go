package core

import "github.com/shopspring/decimal"

var thousand = decimal.NewFromInt(1000)

// Summary is a compact overview of a loaded statement, including the
// axis bounds the dashboard needs to frame its chart.
type Summary struct {
	Transactions int
	MinDate      Date
	MaxDate      Date
	EndBalance   decimal.Decimal

	// ValueCeiling is the largest of all balances and absolute
	// amounts, rounded up to the nearest 1000. The chart value axis
	// runs from zero to this ceiling.
	ValueCeiling int64
}

// Summarize computes the Summary for an ordered transaction list.
// An empty list yields a zero Summary.
func Summarize(txs []Transaction) Summary {
	if len(txs) == 0 {
		return Summary{}
	}

	s := Summary{
		Transactions: len(txs),
		MinDate:      txs[0].Date,
		MaxDate:      txs[0].Date,
		EndBalance:   txs[len(txs)-1].Balance,
	}

	peak := decimal.Zero
	for _, tx := range txs {
		if tx.Date.Before(s.MinDate) {
			s.MinDate = tx.Date
		}
		if tx.Date.After(s.MaxDate) {
			s.MaxDate = tx.Date
		}
		if tx.Balance.GreaterThan(peak) {
			peak = tx.Balance
		}
		if abs := tx.AbsAmount(); abs.GreaterThan(peak) {
			peak = abs
		}
	}

	if peak.IsPositive() {
		s.ValueCeiling = peak.Div(thousand).Ceil().Mul(thousand).IntPart()
	}
	return s
}
