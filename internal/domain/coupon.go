package domain

import (
	"strings"

	"github.com/shopspring/decimal"
)

// Coupon is a payment-stage code applied after the order discount.
// Unrecognised codes resolve to CouponNone and leave the amount untouched.
type Coupon int

const (
	CouponNone Coupon = iota
	CouponSave10
	CouponFlat200
)

var (
	save10Factor  = decimal.RequireFromString("0.90")
	flat200Amount = decimal.NewFromInt(200)
)

func ParseCoupon(code string) Coupon {
	switch strings.ToUpper(strings.TrimSpace(code)) {
	case "SAVE10":
		return CouponSave10
	case "FLAT200":
		return CouponFlat200
	default:
		return CouponNone
	}
}

func (c Coupon) String() string {
	switch c {
	case CouponSave10:
		return "SAVE10"
	case CouponFlat200:
		return "FLAT200"
	default:
		return "NONE"
	}
}

// Apply never returns a negative amount.
func (c Coupon) Apply(amount Money) Money {
	switch c {
	case CouponSave10:
		return amount.Mul(save10Factor)
	case CouponFlat200:
		return amount.Sub(NewMoney(flat200Amount, amount.Currency)).FloorZero()
	default:
		return amount
	}
}
