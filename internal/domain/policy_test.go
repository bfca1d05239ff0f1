package domain_test

import (
	"testing"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/nikolayk812/checkout-demo/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"golang.org/x/text/currency"
)

func TestDiscountApply(t *testing.T) {
	tests := []struct {
		discount domain.Discount
		name     string
		want     string
	}{
		{discount: domain.DiscountNone, name: "No Discount", want: "53100.00"},
		{discount: domain.DiscountFestival, name: "Festival Discount (10%)", want: "47790.00"},
		{discount: domain.DiscountClearance, name: "Clearance Sale (25%)", want: "39825.00"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.True(t, tt.discount.Valid())
			assert.Equal(t, tt.name, tt.discount.Name())
			assert.Equal(t, tt.want, tt.discount.Apply(inr("53100")).Amount.StringFixed(2))
		})
	}

	assert.False(t, domain.Discount(7).Valid())
}

func TestParseCoupon(t *testing.T) {
	tests := []struct {
		code string
		want domain.Coupon
	}{
		{code: "SAVE10", want: domain.CouponSave10},
		{code: "save10", want: domain.CouponSave10},
		{code: " Flat200 ", want: domain.CouponFlat200},
		{code: "", want: domain.CouponNone},
		{code: "BOGUS", want: domain.CouponNone},
	}

	for _, tt := range tests {
		t.Run(tt.code, func(t *testing.T) {
			assert.Equal(t, tt.want, domain.ParseCoupon(tt.code))
		})
	}
}

func TestCouponApply(t *testing.T) {
	tests := []struct {
		name   string
		coupon domain.Coupon
		amount string
		want   string
	}{
		{name: "save10", coupon: domain.CouponSave10, amount: "47790", want: "43011.00"},
		{name: "flat200", coupon: domain.CouponFlat200, amount: "1890", want: "1690.00"},
		{name: "flat200 floors at zero", coupon: domain.CouponFlat200, amount: "150.50", want: "0.00"},
		{name: "flat200 exact", coupon: domain.CouponFlat200, amount: "200", want: "0.00"},
		{name: "none is identity", coupon: domain.CouponNone, amount: "123.456", want: "123.46"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.coupon.Apply(inr(tt.amount))
			assert.Equal(t, tt.want, got.Amount.StringFixed(2))
			assert.Equal(t, currency.INR, got.Currency)
		})
	}
}

func TestCouponNeverNegative(t *testing.T) {
	for range 200 {
		amount := inr(decimal.NewFromFloat(gofakeit.Price(0, 1000)).String())
		for _, c := range []domain.Coupon{domain.CouponNone, domain.CouponSave10, domain.CouponFlat200} {
			assert.False(t, c.Apply(amount).Amount.IsNegative())
		}
	}
}

func TestPaymentPay(t *testing.T) {
	tests := []struct {
		method domain.PaymentMethod
		want   string
	}{
		{method: domain.PaymentUPI, want: "UPI payment successful. Paid: Rs 53100.00"},
		{method: domain.PaymentCard, want: "Card payment successful. Paid: Rs 53100.00"},
		{method: domain.PaymentNetBanking, want: "NetBanking payment successful. Paid: Rs 53100.00"},
	}

	for _, tt := range tests {
		t.Run(tt.method.Label(), func(t *testing.T) {
			receipt := tt.method.Pay(inr("53100"))

			assert.Equal(t, tt.method, receipt.Method)
			assert.Empty(t, receipt.Coupon)
			assert.Equal(t, tt.want, receipt.String())
		})
	}
}

func TestPaymentPayWithCoupon(t *testing.T) {
	receipt := domain.PaymentCard.PayWithCoupon(inr("47790"), "save10")

	assert.Equal(t, "save10", receipt.Coupon)
	assert.Equal(t, "43011.00", receipt.Amount.Amount.StringFixed(2))
	assert.Equal(t, "Card payment successful with coupon 'save10'. Paid: Rs 43011.00", receipt.String())
}

func TestPaymentBlankCouponMatchesPay(t *testing.T) {
	for _, method := range []domain.PaymentMethod{domain.PaymentUPI, domain.PaymentCard, domain.PaymentNetBanking} {
		amount := inr("999.99")
		for _, code := range []string{"", "   "} {
			assert.Equal(t, method.Pay(amount), method.PayWithCoupon(amount, code))
		}
	}
}

func TestPaymentUnknownCouponIsIdentity(t *testing.T) {
	receipt := domain.PaymentUPI.PayWithCoupon(inr("500"), "WELCOME")

	assert.Equal(t, "WELCOME", receipt.Coupon)
	assert.Equal(t, "500.00", receipt.Amount.Amount.StringFixed(2))
}

func TestDeliveryDescription(t *testing.T) {
	assert.Equal(t, "Fast Delivery (arrives within 1 day)", domain.DeliveryFast.Description())
	assert.Equal(t, "Normal Delivery (3–4 days)", domain.DeliveryNormal.Description())
	assert.Equal(t, "Store Pickup - collect from nearest store", domain.DeliveryStorePickup.Description())
	assert.False(t, domain.Delivery(0).Valid())
}

func TestMoneyString(t *testing.T) {
	assert.Equal(t, "Rs 43011.00", inr("43011").String())
	assert.Equal(t, "Rs 0.01", inr("0.005").String())
	assert.Equal(t, "USD 1.50", domain.NewMoney(decimal.RequireFromString("1.5"), currency.USD).String())
}
