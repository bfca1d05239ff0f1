package port

import (
	"context"

	"github.com/nikolayk812/checkout-demo/internal/domain"
)

type CartRepository interface {
	GetCart(ctx context.Context, ownerID string) (domain.Cart, error)
	// AddItem merges the item into an existing line for the same product name.
	AddItem(ctx context.Context, ownerID string, item domain.CartItem) error
	// DeleteItem removes the line at the 1-based position. The bool is false and
	// the cart untouched when the position is out of range.
	DeleteItem(ctx context.Context, ownerID string, position int) (domain.CartItem, bool, error)
	ClearCart(ctx context.Context, ownerID string) error
}
