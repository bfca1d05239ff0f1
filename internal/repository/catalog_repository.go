package repository

import (
	"context"
	"slices"

	"github.com/nikolayk812/checkout-demo/internal/domain"
	"github.com/nikolayk812/checkout-demo/internal/port"
)

// catalogRepository is read-only after construction.
type catalogRepository struct {
	products []domain.Product
}

func NewCatalog(products []domain.Product) port.CatalogRepository {
	return &catalogRepository{
		products: slices.Clone(products),
	}
}

func (r *catalogRepository) ListProducts(_ context.Context) ([]domain.Product, error) {
	return slices.Clone(r.products), nil
}

func (r *catalogRepository) GetProduct(_ context.Context, position int) (domain.Product, bool, error) {
	if position < 1 || position > len(r.products) {
		return domain.Product{}, false, nil
	}

	return r.products[position-1], true, nil
}
