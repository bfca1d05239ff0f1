package domain

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type Category int

const (
	CategoryElectronics Category = iota + 1
	CategoryClothing
	CategoryGrocery
)

func (c Category) String() string {
	switch c {
	case CategoryElectronics:
		return "Electronics"
	case CategoryClothing:
		return "Clothing"
	case CategoryGrocery:
		return "Grocery"
	default:
		return fmt.Sprintf("Category(%d)", int(c))
	}
}

// productNamespace seeds name-derived product IDs so that the same catalog
// always yields the same identifiers.
var productNamespace = uuid.MustParse("6f1c2a7e-3d4b-4e0a-9b8c-5a1d2e3f4c5b")

type Product struct {
	ID      uuid.UUID
	Name    string
	Price   Money
	Details Details
}

func NewProduct(name string, price Money, details Details) (Product, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return Product{}, fmt.Errorf("name is empty")
	}
	if price.Amount.IsNegative() {
		return Product{}, fmt.Errorf("price[%s] is negative", price.Amount)
	}
	if details == nil {
		return Product{}, fmt.Errorf("details are missing for %s", name)
	}

	return Product{
		ID:      uuid.NewSHA1(productNamespace, []byte(name)),
		Name:    name,
		Price:   price,
		Details: details,
	}, nil
}

func (p Product) Category() Category {
	if p.Details == nil {
		return 0
	}
	return p.Details.Category()
}

// Attribute is one labelled line of the category-specific detail dump.
type Attribute struct {
	Label string
	Value string
}

// Details is implemented only by the three category variants below.
type Details interface {
	Category() Category
	Attributes() []Attribute
	isDetails()
}

type ElectronicsDetails struct {
	Brand         string
	WarrantyYears int
}

func (ElectronicsDetails) Category() Category { return CategoryElectronics }

func (d ElectronicsDetails) Attributes() []Attribute {
	return []Attribute{
		{Label: "Type", Value: CategoryElectronics.String()},
		{Label: "Brand", Value: d.Brand},
		{Label: "Warranty", Value: fmt.Sprintf("%d year(s)", d.WarrantyYears)},
	}
}

func (ElectronicsDetails) isDetails() {}

type ClothingDetails struct {
	Fabric string
	Size   int
}

func (ClothingDetails) Category() Category { return CategoryClothing }

func (d ClothingDetails) Attributes() []Attribute {
	return []Attribute{
		{Label: "Type", Value: CategoryClothing.String()},
		{Label: "Cloth", Value: d.Fabric},
		{Label: "Size", Value: fmt.Sprintf("%d", d.Size)},
	}
}

func (ClothingDetails) isDetails() {}

type GroceryDetails struct {
	ExpiryYear  int
	WeightGrams decimal.Decimal
}

func (GroceryDetails) Category() Category { return CategoryGrocery }

func (d GroceryDetails) Attributes() []Attribute {
	return []Attribute{
		{Label: "Type", Value: CategoryGrocery.String()},
		{Label: "Expiry Year", Value: fmt.Sprintf("%d", d.ExpiryYear)},
		{Label: "Weight", Value: d.WeightGrams.StringFixed(1) + " g"},
	}
}

func (GroceryDetails) isDetails() {}
