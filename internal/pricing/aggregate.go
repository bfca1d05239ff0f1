package pricing

import (
	"fmt"
	"strings"

	"github.com/nikolayk812/checkout-demo/internal/domain"
)

// Selection carries the per-order policy choices made at checkout.
type Selection struct {
	Discount domain.Discount
	Delivery domain.Delivery
	Payment  domain.PaymentMethod
	Coupon   string
}

func (s Selection) Validate() error {
	if !s.Discount.Valid() {
		return fmt.Errorf("discount[%d]: %w", int(s.Discount), domain.ErrInvalidSelection)
	}
	if !s.Delivery.Valid() {
		return fmt.Errorf("delivery[%d]: %w", int(s.Delivery), domain.ErrInvalidSelection)
	}
	if !s.Payment.Valid() {
		return fmt.Errorf("payment[%d]: %w", int(s.Payment), domain.ErrInvalidSelection)
	}
	return nil
}

// Aggregate prices the cart lines and produces an invoice. Lines are folded in
// the given order; the coupon is applied by the payment method after the
// discount. An order id is drawn from ids only once every check has passed,
// so a rejected call never advances the sequence.
func Aggregate(ids OrderIDs, items []domain.CartItem, sel Selection) (domain.Invoice, error) {
	if len(items) == 0 {
		return domain.Invoice{}, domain.ErrEmptyCart
	}

	if err := sel.Validate(); err != nil {
		return domain.Invoice{}, fmt.Errorf("sel.Validate: %w", err)
	}

	unit := items[0].Product.Price.Currency
	subtotal := domain.ZeroMoney(unit)
	totalTax := domain.ZeroMoney(unit)
	lines := make([]domain.InvoiceLine, 0, len(items))

	for _, item := range items {
		if !item.Product.Price.SameCurrency(subtotal) {
			return domain.Invoice{}, fmt.Errorf("product[%s] currency[%s] does not match order currency[%s]",
				item.Product.Name, item.Product.Price.Currency, unit)
		}

		line := domain.InvoiceLine{
			Product:   item.Product,
			Quantity:  item.Quantity,
			UnitPrice: item.Product.Price,
			Subtotal:  item.Subtotal(),
			Tax:       item.Tax(),
		}

		subtotal = subtotal.Add(line.Subtotal)
		totalTax = totalTax.Add(line.Tax)
		lines = append(lines, line)
	}

	preDiscount := subtotal.Add(totalTax)
	postDiscount := sel.Discount.Apply(preDiscount)

	coupon := strings.TrimSpace(sel.Coupon)
	receipt := sel.Payment.PayWithCoupon(postDiscount, coupon)

	return domain.Invoice{
		OrderID:           ids.Next(),
		Lines:             lines,
		Subtotal:          subtotal,
		TotalTax:          totalTax,
		PreDiscountTotal:  preDiscount,
		Discount:          sel.Discount,
		PostDiscountTotal: postDiscount,
		CouponCode:        coupon,
		FinalAmountPaid:   receipt.Amount,
		Payment:           sel.Payment,
		Delivery:          sel.Delivery,
		Receipt:           receipt,
	}, nil
}
