package decimal

import (
	"github.com/shopspring/decimal"
)

// Money is a euro amount with financial precision.
type Money struct {
	decimal.Decimal
}

// New creates a Money from a float64.
func New(value float64) Money {
	return Money{decimal.NewFromFloat(value)}
}

// FromDecimal wraps an existing decimal.
func FromDecimal(d decimal.Decimal) Money {
	return Money{d}
}

// FromString parses a Money amount.
func FromString(value string) (Money, error) {
	d, err := decimal.NewFromString(value)
	if err != nil {
		return Money{}, err
	}
	return Money{d}, nil
}

// Round rounds to cents using banker's rounding.
func (m Money) Round() Money {
	return Money{m.Decimal.Round(2)}
}

// Annual converts a monthly amount to a yearly one.
func (m Money) Annual() Money {
	return Money{m.Decimal.Mul(decimal.NewFromInt(12))}
}

// Monthly converts a yearly amount to a monthly one.
func (m Money) Monthly() Money {
	return Money{m.Decimal.Div(decimal.NewFromInt(12))}
}

// Add adds another amount.
func (m Money) Add(other Money) Money {
	return Money{m.Decimal.Add(other.Decimal)}
}

// Sub subtracts another amount.
func (m Money) Sub(other Money) Money {
	return Money{m.Decimal.Sub(other.Decimal)}
}

// Mul multiplies by a factor.
func (m Money) Mul(factor decimal.Decimal) Money {
	return Money{m.Decimal.Mul(factor)}
}

// Div divides by a factor.
func (m Money) Div(factor decimal.Decimal) Money {
	return Money{m.Decimal.Div(factor)}
}

// GreaterThan reports whether this amount exceeds another.
func (m Money) GreaterThan(other Money) bool {
	return m.Decimal.GreaterThan(other.Decimal)
}

// LessThan reports whether this amount is below another.
func (m Money) LessThan(other Money) bool {
	return m.Decimal.LessThan(other.Decimal)
}

// Equal reports whether the amounts match.
func (m Money) Equal(other Money) bool {
	return m.Decimal.Equal(other.Decimal)
}

// Min returns the smaller of two amounts.
func Min(a, b Money) Money {
	if a.LessThan(b) {
		return a
	}
	return b
}

// Max returns the larger of two amounts.
func Max(a, b Money) Money {
	if a.GreaterThan(b) {
		return a
	}
	return b
}

// Zero returns a zero amount.
func Zero() Money {
	return Money{decimal.Zero}
}

// String renders the amount with two decimals.
func (m Money) String() string {
	return m.Decimal.StringFixed(2)
}

// Format renders the amount as euro currency.
func (m Money) Format() string {
	return m.String() + " €"
}
