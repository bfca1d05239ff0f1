package domain

import (
	"fmt"

	"github.com/shopspring/decimal"
	"golang.org/x/text/currency"
)

type Money struct {
	Amount   decimal.Decimal
	Currency currency.Unit
}

func NewMoney(amount decimal.Decimal, unit currency.Unit) Money {
	return Money{Amount: amount, Currency: unit}
}

func ZeroMoney(unit currency.Unit) Money {
	return Money{Amount: decimal.Zero, Currency: unit}
}

// Add keeps the receiver's currency; callers check currencies before mixing amounts.
func (m Money) Add(other Money) Money {
	return Money{Amount: m.Amount.Add(other.Amount), Currency: m.Currency}
}

func (m Money) Sub(other Money) Money {
	return Money{Amount: m.Amount.Sub(other.Amount), Currency: m.Currency}
}

func (m Money) Mul(factor decimal.Decimal) Money {
	return Money{Amount: m.Amount.Mul(factor), Currency: m.Currency}
}

func (m Money) MulInt(n int) Money {
	return m.Mul(decimal.NewFromInt(int64(n)))
}

// FloorZero clamps negative amounts to zero.
func (m Money) FloorZero() Money {
	if m.Amount.IsNegative() {
		return ZeroMoney(m.Currency)
	}
	return m
}

func (m Money) SameCurrency(other Money) bool {
	return m.Currency.String() == other.Currency.String()
}

func (m Money) Equal(other Money) bool {
	return m.SameCurrency(other) && m.Amount.Equal(other.Amount)
}

// String formats the amount with exactly two decimal places, e.g. "Rs 53100.00".
func (m Money) String() string {
	return fmt.Sprintf("%s %s", Symbol(m.Currency), m.Amount.StringFixed(2))
}

// Symbol returns the display prefix for a currency unit.
func Symbol(unit currency.Unit) string {
	if unit == currency.INR {
		return "Rs"
	}
	return unit.String()
}
