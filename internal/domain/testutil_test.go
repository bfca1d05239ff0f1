package domain_test

import (
	"fmt"
	"testing"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/nikolayk812/checkout-demo/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/currency"
)

func inr(amount string) domain.Money {
	return domain.NewMoney(decimal.RequireFromString(amount), currency.INR)
}

func randomDetails() domain.Details {
	switch gofakeit.IntRange(1, 3) {
	case 1:
		return domain.ElectronicsDetails{Brand: gofakeit.Company(), WarrantyYears: gofakeit.IntRange(0, 5)}
	case 2:
		return domain.ClothingDetails{Fabric: gofakeit.Word(), Size: gofakeit.IntRange(28, 48)}
	default:
		return domain.GroceryDetails{
			ExpiryYear:  gofakeit.IntRange(2025, 2030),
			WeightGrams: decimal.NewFromInt(int64(gofakeit.IntRange(50, 10000))),
		}
	}
}

func randomProduct(t *testing.T) domain.Product {
	t.Helper()

	p, err := domain.NewProduct(
		fmt.Sprintf("%s %s", gofakeit.ProductName(), gofakeit.UUID()),
		domain.NewMoney(decimal.NewFromFloat(gofakeit.Price(1, 50000)), currency.INR),
		randomDetails(),
	)
	require.NoError(t, err)

	return p
}

func mustProduct(t *testing.T, name, price string, details domain.Details) domain.Product {
	t.Helper()

	p, err := domain.NewProduct(name, inr(price), details)
	require.NoError(t, err)

	return p
}
