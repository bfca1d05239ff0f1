package domain

// InvoiceLine is a snapshot of one cart line taken at checkout.
type InvoiceLine struct {
	Product   Product
	Quantity  int
	UnitPrice Money
	Subtotal  Money
	Tax       Money
}

// Invoice is the immutable result of one checkout.
// FinalAmountPaid = coupon(discount(Subtotal + TotalTax)).
type Invoice struct {
	OrderID int64
	Lines   []InvoiceLine

	Subtotal          Money
	TotalTax          Money
	PreDiscountTotal  Money
	Discount          Discount
	PostDiscountTotal Money
	CouponCode        string
	FinalAmountPaid   Money

	Payment  PaymentMethod
	Delivery Delivery
	Receipt  Receipt
}

// HasCoupon reports whether a non-blank coupon code was supplied, recognised or not.
func (inv Invoice) HasCoupon() bool {
	return inv.CouponCode != ""
}

// HistoryEntry is the summary kept for the order history listing.
type HistoryEntry struct {
	OrderID int64
	Total   Money
}
