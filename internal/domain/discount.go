package domain

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Discount is the order-level policy chosen once per checkout, before pricing.
type Discount int

const (
	DiscountNone Discount = iota
	DiscountFestival
	DiscountClearance
)

var (
	festivalFactor  = decimal.RequireFromString("0.90")
	clearanceFactor = decimal.RequireFromString("0.75")
)

func (d Discount) Valid() bool {
	return d >= DiscountNone && d <= DiscountClearance
}

func (d Discount) Name() string {
	switch d {
	case DiscountNone:
		return "No Discount"
	case DiscountFestival:
		return "Festival Discount (10%)"
	case DiscountClearance:
		return "Clearance Sale (25%)"
	default:
		return fmt.Sprintf("Discount(%d)", int(d))
	}
}

func (d Discount) String() string {
	return d.Name()
}

func (d Discount) Apply(amount Money) Money {
	switch d {
	case DiscountFestival:
		return amount.Mul(festivalFactor)
	case DiscountClearance:
		return amount.Mul(clearanceFactor)
	default:
		return amount
	}
}
