package repository

import (
	"context"
	"fmt"
	"slices"
	"sync"

	"github.com/nikolayk812/checkout-demo/internal/domain"
	"github.com/nikolayk812/checkout-demo/internal/port"
)

type cartRepository struct {
	mu    sync.RWMutex
	carts map[string][]domain.CartItem
}

func NewCart() port.CartRepository {
	return &cartRepository{
		carts: make(map[string][]domain.CartItem),
	}
}

func (r *cartRepository) GetCart(_ context.Context, ownerID string) (domain.Cart, error) {
	if ownerID == "" {
		return domain.Cart{}, fmt.Errorf("ownerID is empty")
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	return domain.Cart{
		OwnerID: ownerID,
		Items:   slices.Clone(r.carts[ownerID]),
	}, nil
}

func (r *cartRepository) AddItem(_ context.Context, ownerID string, item domain.CartItem) error {
	if ownerID == "" {
		return fmt.Errorf("ownerID is empty")
	}
	if item.Product.Name == "" {
		return fmt.Errorf("product name is empty")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	items := r.carts[ownerID]

	idx := slices.IndexFunc(items, func(existing domain.CartItem) bool {
		return existing.Product.Name == item.Product.Name
	})
	if idx >= 0 {
		items[idx].SetQuantity(items[idx].Quantity + item.Quantity)
		return nil
	}

	item.SetQuantity(item.Quantity)
	r.carts[ownerID] = append(items, item)

	return nil
}

func (r *cartRepository) DeleteItem(_ context.Context, ownerID string, position int) (domain.CartItem, bool, error) {
	if ownerID == "" {
		return domain.CartItem{}, false, fmt.Errorf("ownerID is empty")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	items := r.carts[ownerID]
	if position < 1 || position > len(items) {
		return domain.CartItem{}, false, nil
	}

	removed := items[position-1]
	r.carts[ownerID] = slices.Delete(items, position-1, position)

	return removed, true, nil
}

func (r *cartRepository) ClearCart(_ context.Context, ownerID string) error {
	if ownerID == "" {
		return fmt.Errorf("ownerID is empty")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.carts, ownerID)

	return nil
}
