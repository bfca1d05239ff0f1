package port

import (
	"context"

	"github.com/nikolayk812/checkout-demo/internal/domain"
)

type CatalogRepository interface {
	ListProducts(ctx context.Context) ([]domain.Product, error)
	GetProduct(ctx context.Context, position int) (domain.Product, bool, error)
}
