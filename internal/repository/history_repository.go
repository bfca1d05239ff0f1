package repository

import (
	"context"
	"fmt"
	"slices"
	"sync"

	"github.com/nikolayk812/checkout-demo/internal/domain"
	"github.com/nikolayk812/checkout-demo/internal/port"
)

type historyRepository struct {
	mu      sync.RWMutex
	entries []domain.HistoryEntry
}

func NewHistory() port.OrderHistory {
	return &historyRepository{}
}

func (r *historyRepository) Append(_ context.Context, entry domain.HistoryEntry) error {
	if entry.OrderID <= 0 {
		return fmt.Errorf("orderID[%d] is not positive", entry.OrderID)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	r.entries = append(r.entries, entry)

	return nil
}

func (r *historyRepository) List(_ context.Context) ([]domain.HistoryEntry, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return slices.Clone(r.entries), nil
}
