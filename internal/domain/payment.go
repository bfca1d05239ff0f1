package domain

import (
	"fmt"
	"strings"
)

type PaymentMethod int

const (
	PaymentUPI PaymentMethod = iota + 1
	PaymentCard
	PaymentNetBanking
)

func (p PaymentMethod) Valid() bool {
	return p >= PaymentUPI && p <= PaymentNetBanking
}

func (p PaymentMethod) Label() string {
	switch p {
	case PaymentUPI:
		return "UPI"
	case PaymentCard:
		return "Card"
	case PaymentNetBanking:
		return "NetBanking"
	default:
		return fmt.Sprintf("PaymentMethod(%d)", int(p))
	}
}

func (p PaymentMethod) String() string {
	return p.Label()
}

// Pay charges the amount as given. The simulation has no failure path.
func (p PaymentMethod) Pay(amount Money) Receipt {
	return Receipt{Method: p, Amount: amount}
}

// PayWithCoupon applies the coupon before charging. A blank code is the same
// as calling Pay: the receipt carries no coupon.
func (p PaymentMethod) PayWithCoupon(amount Money, code string) Receipt {
	code = strings.TrimSpace(code)
	if code == "" {
		return p.Pay(amount)
	}

	return Receipt{
		Method: p,
		Coupon: code,
		Amount: ParseCoupon(code).Apply(amount),
	}
}

// Receipt confirms a simulated payment.
type Receipt struct {
	Method PaymentMethod
	Coupon string
	Amount Money
}

func (r Receipt) String() string {
	if r.Coupon == "" {
		return fmt.Sprintf("%s payment successful. Paid: %s", r.Method.Label(), r.Amount)
	}
	return fmt.Sprintf("%s payment successful with coupon '%s'. Paid: %s", r.Method.Label(), r.Coupon, r.Amount)
}
