// Package money wraps shopspring/decimal for whole-unit currency amounts.
package money

import (
	"github.com/shopspring/decimal"
)

var half = decimal.NewFromFloat(0.5)

// Money represents a monetary amount in a currency without minor units
type Money struct {
	decimal.Decimal
}

// NewMoneyFromDecimal creates a new Money instance from a decimal.Decimal
func NewMoneyFromDecimal(d decimal.Decimal) Money {
	return Money{d}
}

// Round rounds to the nearest whole unit, with halves going toward positive
// infinity (-2.5 rounds to -2).
func (m Money) Round() Money {
	return Money{RoundUnit(m.Decimal)}
}

// RoundUnit is Round for a bare decimal.
func RoundUnit(d decimal.Decimal) decimal.Decimal {
	return d.Add(half).Floor()
}

// Add adds another Money amount
func (m Money) Add(other Money) Money {
	return Money{m.Decimal.Add(other.Decimal)}
}

// Sub subtracts another Money amount
func (m Money) Sub(other Money) Money {
	return Money{m.Decimal.Sub(other.Decimal)}
}

// Mul multiplies by a decimal factor
func (m Money) Mul(factor decimal.Decimal) Money {
	return Money{m.Decimal.Mul(factor)}
}

// Grow compounds the amount at rate for the given number of years.
func (m Money) Grow(rate decimal.Decimal, years int) Money {
	return m.Mul(GrowthFactor(rate, years))
}

// GrowthFactor returns (1 + rate)^years.
func GrowthFactor(rate decimal.Decimal, years int) decimal.Decimal {
	return decimal.NewFromInt(1).Add(rate).Pow(decimal.NewFromInt(int64(years)))
}

// Sum adds up any number of amounts.
func Sum(amounts ...Money) Money {
	total := Zero()
	for _, a := range amounts {
		total = total.Add(a)
	}
	return total
}

// Zero returns a zero Money amount
func Zero() Money {
	return Money{decimal.Zero}
}

// String returns the amount rounded to a whole unit.
func (m Money) String() string {
	return m.Round().Decimal.StringFixed(0)
}
