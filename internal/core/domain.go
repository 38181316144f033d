package core

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"
)

// DateFormat is the day-first layout used by midata statement exports.
const DateFormat = "02/01/2006"

// Colour names for rendering signed amounts, keyed on sign.
const (
	ColourNegative = "red"
	ColourPositive = "green"
	ColourZero     = "gray"
)

type (
	// Date is a calendar date (midnight UTC), without time-of-day semantics.
	Date struct {
		time.Time
	}

	// Transaction is one canonical midata statement row.
	Transaction struct {
		Date        Date
		Type        string
		Description string
		Amount      decimal.Decimal
		Balance     decimal.Decimal
	}
)

var ErrInvalidDate = errors.New("invalid date")

// NewDate creates a Date from year, month, day.
func NewDate(year, month, day int) Date {
	return Date{Time: time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)}
}

// ParseDate parses a midata-formatted date string (DD/MM/YYYY).
func ParseDate(value string) (Date, error) {
	t, err := time.Parse(DateFormat, value)
	if err != nil {
		return Date{}, err
	}
	return Date{Time: t}, nil
}

// Validate checks the date is set.
func (d Date) Validate() error {
	if d.IsZero() {
		return ErrInvalidDate
	}
	return nil
}

// ISO returns the date formatted as YYYY-MM-DD, used for chart payloads.
func (d Date) ISO() string {
	return d.Format("2006-01-02")
}

// Display returns the date in the midata format it was read from.
func (d Date) Display() string {
	return d.Format(DateFormat)
}

// MarshalJSON encodes the date as an ISO date string.
func (d Date) MarshalJSON() ([]byte, error) {
	return []byte(`"` + d.ISO() + `"`), nil
}

// Before reports whether d falls before other.
func (d Date) Before(other Date) bool {
	return d.Time.Before(other.Time)
}

// After reports whether d falls after other.
func (d Date) After(other Date) bool {
	return d.Time.After(other.Time)
}

// AbsAmount returns the absolute value of the transaction amount.
// Display-only: used for plotting transaction markers, not part of
// the canonical record.
func (t Transaction) AbsAmount() decimal.Decimal {
	return t.Amount.Abs()
}

// Colour returns the categorical colour for the transaction amount:
// red for debits, green for credits, gray for zero.
func (t Transaction) Colour() string {
	switch t.Amount.Sign() {
	case -1:
		return ColourNegative
	case 1:
		return ColourPositive
	default:
		return ColourZero
	}
}
