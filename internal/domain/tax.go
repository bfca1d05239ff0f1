package domain

import "github.com/shopspring/decimal"

var (
	electronicsRate = decimal.RequireFromString("0.18")
	clothingRate    = decimal.RequireFromString("0.12")
	groceryRate     = decimal.RequireFromString("0.05")
)

// TaxRate is the GST rate for a category. Unknown categories carry no tax.
func TaxRate(c Category) decimal.Decimal {
	switch c {
	case CategoryElectronics:
		return electronicsRate
	case CategoryClothing:
		return clothingRate
	case CategoryGrocery:
		return groceryRate
	default:
		return decimal.Zero
	}
}

// Tax computes unitPrice × quantity × rate for the product's category.
func Tax(p Product, quantity int) Money {
	return p.Price.MulInt(quantity).Mul(TaxRate(p.Category()))
}
