package port

import (
	"context"

	"github.com/nikolayk812/checkout-demo/internal/domain"
)

type OrderHistory interface {
	Append(ctx context.Context, entry domain.HistoryEntry) error
	List(ctx context.Context) ([]domain.HistoryEntry, error)
}
