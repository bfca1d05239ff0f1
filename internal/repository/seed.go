package repository

import (
	"fmt"

	"github.com/nikolayk812/checkout-demo/internal/domain"
	"github.com/shopspring/decimal"
	"golang.org/x/text/currency"
)

type seedProduct struct {
	name    string
	price   int64
	details domain.Details
}

var seedProducts = []seedProduct{
	{"Laptop", 45000, domain.ElectronicsDetails{Brand: "Lenovo", WarrantyYears: 2}},
	{"Smartphone", 22000, domain.ElectronicsDetails{Brand: "Samsung", WarrantyYears: 1}},
	{"T-Shirt", 799, domain.ClothingDetails{Fabric: "Cotton", Size: 40}},
	{"Jeans", 1499, domain.ClothingDetails{Fabric: "Denim", Size: 32}},
	{"Rice", 1200, domain.GroceryDetails{ExpiryYear: 2026, WeightGrams: decimal.NewFromInt(5000)}},
	{"Face Wash", 250, domain.GroceryDetails{ExpiryYear: 2025, WeightGrams: decimal.NewFromInt(100)}},
}

// SeedProducts returns the default catalog priced in the given currency.
func SeedProducts(unit currency.Unit) ([]domain.Product, error) {
	products := make([]domain.Product, 0, len(seedProducts))

	for _, sp := range seedProducts {
		p, err := domain.NewProduct(sp.name, domain.NewMoney(decimal.NewFromInt(sp.price), unit), sp.details)
		if err != nil {
			return nil, fmt.Errorf("domain.NewProduct[%s]: %w", sp.name, err)
		}

		products = append(products, p)
	}

	return products, nil
}
