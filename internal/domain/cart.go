package domain

import (
	"time"

	"golang.org/x/text/currency"
)

type Cart struct {
	OwnerID string
	Items   []CartItem
}

func (c Cart) IsEmpty() bool {
	return len(c.Items) == 0
}

// Subtotal sums line subtotals in insertion order.
func (c Cart) Subtotal(unit currency.Unit) Money {
	total := ZeroMoney(unit)
	for _, item := range c.Items {
		total = total.Add(item.Subtotal())
	}
	return total
}

func (c Cart) Tax(unit currency.Unit) Money {
	total := ZeroMoney(unit)
	for _, item := range c.Items {
		total = total.Add(item.Tax())
	}
	return total
}

// Total is the cart value including tax and before any discount.
func (c Cart) Total(unit currency.Unit) Money {
	return c.Subtotal(unit).Add(c.Tax(unit))
}

type CartItem struct {
	Product  Product
	Quantity int

	AddedAt time.Time
}

// NewCartItem clamps the quantity to at least 1.
func NewCartItem(product Product, quantity int, addedAt time.Time) CartItem {
	item := CartItem{Product: product, AddedAt: addedAt}
	item.SetQuantity(quantity)
	return item
}

func (ci *CartItem) SetQuantity(quantity int) {
	ci.Quantity = max(1, quantity)
}

func (ci CartItem) Subtotal() Money {
	return ci.Product.Price.MulInt(ci.Quantity)
}

func (ci CartItem) Tax() Money {
	return Tax(ci.Product, ci.Quantity)
}
