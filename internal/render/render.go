// Package render formats shop state as the text shown in the console session.
// Money is always printed with two decimal places.
package render

import (
	"io"

	"github.com/nikolayk812/checkout-demo/internal/domain"
)

const (
	invoiceBanner  = "================= INVOICE ================="
	closingBanner  = "==========================================="
	lineSeparator  = "--------------------------------------"
	entrySeparator = "--------------------------------"
)

func Invoice(w io.Writer, inv domain.Invoice) error {
	p := &printer{w: w}

	p.println("")
	p.println(invoiceBanner)
	p.printf("Order ID: %d\n", inv.OrderID)

	p.println("")
	p.println("Items:")
	for _, line := range inv.Lines {
		p.printf("- %s x%d   @ %s each   Subtotal: %s   GST: %s\n",
			line.Product.Name, line.Quantity, line.UnitPrice, line.Subtotal, line.Tax)
		details(p, line.Product.Details)
		p.println(lineSeparator)
	}

	p.printf("Subtotal: %s\n", inv.Subtotal)
	p.printf("Total GST: %s\n", inv.TotalTax)
	p.printf("Total before discount: %s\n", inv.PreDiscountTotal)
	if inv.Discount != domain.DiscountNone {
		p.printf("Discount applied: %s\n", inv.Discount.Name())
	}
	p.printf("Final amount to pay: %s\n", inv.FinalAmountPaid)

	p.println(inv.Receipt.String())
	p.printf("Delivery: %s\n", inv.Delivery.Description())

	p.println("Order placed successfully. Thank you!")
	p.println(closingBanner)
	p.println("")

	return p.err
}

func Catalog(w io.Writer, products []domain.Product) error {
	p := &printer{w: w}

	p.println("")
	p.println("--- CATALOG ---")
	for i, product := range products {
		p.printf("%d) %s - %s\n", i+1, product.Name, product.Price)
		details(p, product.Details)
		p.println(entrySeparator)
	}

	return p.err
}

func Cart(w io.Writer, cart domain.Cart) error {
	p := &printer{w: w}

	if cart.IsEmpty() {
		p.println("Your cart is empty.")
		return p.err
	}

	p.println("")
	p.println("--- CART ---")
	for i, item := range cart.Items {
		p.printf("%d) %s x%d  @ %s each  Subtotal: %s  GST: %s\n",
			i+1, item.Product.Name, item.Quantity, item.Product.Price, item.Subtotal(), item.Tax())
	}

	unit := cart.Items[0].Product.Price.Currency
	p.printf("Cart total (without discount): %s (GST: %s)\n", cart.Total(unit), cart.Tax(unit))

	return p.err
}

func History(w io.Writer, entries []domain.HistoryEntry) error {
	p := &printer{w: w}

	if len(entries) == 0 {
		p.println("No orders placed yet.")
		return p.err
	}

	p.println("")
	p.println("--- Order History ---")
	for _, entry := range entries {
		p.printf("Order ID %d - %s\n", entry.OrderID, entry.Total)
	}

	return p.err
}

// details prints the category attributes with labels padded to a common width.
func details(p *printer, d domain.Details) {
	if d == nil {
		return
	}

	attrs := d.Attributes()

	width := 0
	for _, a := range attrs {
		width = max(width, len(a.Label))
	}

	for _, a := range attrs {
		p.printf("%-*s: %s\n", width+1, a.Label, a.Value)
	}
}
