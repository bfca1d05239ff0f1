package shop

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/nikolayk812/checkout-demo/internal/domain"
	"github.com/nikolayk812/checkout-demo/internal/metrics"
	"github.com/nikolayk812/checkout-demo/internal/port"
	"github.com/nikolayk812/checkout-demo/internal/pricing"
	"github.com/nikolayk812/checkout-demo/internal/repository"
)

// Service runs the shop operations of one process: catalog browsing, cart
// edits, checkout and order history. Rejected operations never change state.
type Service struct {
	catalog port.CatalogRepository
	carts   port.CartRepository
	history port.OrderHistory
	ids     pricing.OrderIDs
	metrics *metrics.Checkout
	logger  zerolog.Logger
	now     func() time.Time
}

func New(
	catalog port.CatalogRepository,
	carts port.CartRepository,
	history port.OrderHistory,
	ids pricing.OrderIDs,
	m *metrics.Checkout,
	logger zerolog.Logger,
) *Service {
	if m == nil {
		m = metrics.NewCheckout(nil)
	}

	return &Service{
		catalog: catalog,
		carts:   carts,
		history: history,
		ids:     ids,
		metrics: m,
		logger:  logger,
		now:     time.Now,
	}
}

func (s *Service) Catalog(ctx context.Context) ([]domain.Product, error) {
	products, err := s.catalog.ListProducts(ctx)
	if err != nil {
		return nil, fmt.Errorf("catalog.ListProducts: %w", err)
	}
	return products, nil
}

// Product looks up a catalog entry by its 1-based listing number.
func (s *Service) Product(ctx context.Context, number int) (domain.Product, error) {
	product, found, err := s.catalog.GetProduct(ctx, number)
	if err != nil {
		return domain.Product{}, fmt.Errorf("catalog.GetProduct: %w", err)
	}
	if !found {
		return domain.Product{}, fmt.Errorf("product number[%d]: %w", number, domain.ErrInvalidSelection)
	}
	return product, nil
}

// AddToCart adds quantity units of the numbered catalog product. A product
// already in the cart has its quantity increased instead of gaining a new line.
func (s *Service) AddToCart(ctx context.Context, ownerID string, number, quantity int) (domain.CartItem, error) {
	product, err := s.Product(ctx, number)
	if err != nil {
		s.reject("add", err)
		return domain.CartItem{}, err
	}

	if quantity <= 0 {
		err := fmt.Errorf("quantity[%d]: %w", quantity, domain.ErrInvalidQuantity)
		s.reject("add", err)
		return domain.CartItem{}, err
	}

	item := domain.NewCartItem(product, quantity, s.now())
	if err := s.carts.AddItem(ctx, ownerID, item); err != nil {
		return domain.CartItem{}, fmt.Errorf("carts.AddItem: %w", err)
	}

	s.metrics.CartMutations.WithLabelValues("add").Inc()
	s.logger.Debug().
		Str("owner_id", ownerID).
		Str("product", product.Name).
		Int("quantity", quantity).
		Msg("cart item added")

	return item, nil
}

// RemoveFromCart removes the line at the 1-based cart position.
func (s *Service) RemoveFromCart(ctx context.Context, ownerID string, position int) (domain.CartItem, error) {
	cart, err := s.Cart(ctx, ownerID)
	if err != nil {
		return domain.CartItem{}, err
	}
	if cart.IsEmpty() {
		s.reject("remove", domain.ErrEmptyCart)
		return domain.CartItem{}, domain.ErrEmptyCart
	}

	removed, deleted, err := s.carts.DeleteItem(ctx, ownerID, position)
	if err != nil {
		return domain.CartItem{}, fmt.Errorf("carts.DeleteItem: %w", err)
	}
	if !deleted {
		err := fmt.Errorf("cart position[%d]: %w", position, domain.ErrInvalidSelection)
		s.reject("remove", err)
		return domain.CartItem{}, err
	}

	s.metrics.CartMutations.WithLabelValues("remove").Inc()
	s.logger.Debug().
		Str("owner_id", ownerID).
		Str("product", removed.Product.Name).
		Msg("cart item removed")

	return removed, nil
}

func (s *Service) Cart(ctx context.Context, ownerID string) (domain.Cart, error) {
	cart, err := s.carts.GetCart(ctx, ownerID)
	if err != nil {
		return domain.Cart{}, fmt.Errorf("carts.GetCart: %w", err)
	}
	return cart, nil
}

// Checkout prices the owner's cart, records the order in history and clears
// the cart. The order id, the history entry and the cleared cart form one unit
// of work: when any step fails the others are reverted.
func (s *Service) Checkout(ctx context.Context, ownerID string, sel pricing.Selection) (domain.Invoice, error) {
	cart, err := s.Cart(ctx, ownerID)
	if err != nil {
		return domain.Invoice{}, err
	}
	if cart.IsEmpty() {
		s.reject("checkout", domain.ErrEmptyCart)
		return domain.Invoice{}, domain.ErrEmptyCart
	}

	invoice, err := repository.WithTx(ctx, func(tx *repository.Tx) (domain.Invoice, error) {
		invoice, err := pricing.Aggregate(s.ids, cart.Items, sel)
		if err != nil {
			s.reject("checkout", err)
			return domain.Invoice{}, fmt.Errorf("pricing.Aggregate: %w", err)
		}
		tx.OnRollback(func(context.Context) error {
			if !s.ids.Release(invoice.OrderID) {
				return fmt.Errorf("orderID[%d] was not released", invoice.OrderID)
			}
			return nil
		})

		if err := s.carts.ClearCart(ctx, ownerID); err != nil {
			return domain.Invoice{}, fmt.Errorf("carts.ClearCart: %w", err)
		}
		tx.OnRollback(func(ctx context.Context) error {
			return s.restoreCart(ctx, ownerID, cart.Items)
		})

		err = s.history.Append(ctx, domain.HistoryEntry{
			OrderID: invoice.OrderID,
			Total:   invoice.FinalAmountPaid,
		})
		if err != nil {
			return domain.Invoice{}, fmt.Errorf("history.Append: %w", err)
		}

		return invoice, nil
	})
	if err != nil {
		return domain.Invoice{}, err
	}

	s.observe(invoice)
	s.logger.Info().
		Int64("order_id", invoice.OrderID).
		Str("owner_id", ownerID).
		Int("lines", len(invoice.Lines)).
		Str("final_amount", invoice.FinalAmountPaid.Amount.StringFixed(2)).
		Str("payment", invoice.Payment.Label()).
		Str("delivery", invoice.Delivery.String()).
		Str("discount", invoice.Discount.Name()).
		Bool("coupon", invoice.HasCoupon()).
		Msg("order placed")

	return invoice, nil
}

func (s *Service) restoreCart(ctx context.Context, ownerID string, items []domain.CartItem) error {
	for _, item := range items {
		if err := s.carts.AddItem(ctx, ownerID, item); err != nil {
			return fmt.Errorf("carts.AddItem: %w", err)
		}
	}
	return nil
}

func (s *Service) History(ctx context.Context) ([]domain.HistoryEntry, error) {
	entries, err := s.history.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("history.List: %w", err)
	}
	return entries, nil
}

func (s *Service) observe(invoice domain.Invoice) {
	s.metrics.OrdersPlaced.
		WithLabelValues(invoice.Payment.Label(), invoice.Delivery.String(), invoice.Discount.Name()).
		Inc()
	s.metrics.OrderAmount.Observe(invoice.FinalAmountPaid.Amount.InexactFloat64())

	if invoice.HasCoupon() {
		s.metrics.CouponRedemptions.WithLabelValues(domain.ParseCoupon(invoice.CouponCode).String()).Inc()
	}
}

func (s *Service) reject(operation string, err error) {
	reason := "other"
	switch {
	case errors.Is(err, domain.ErrInvalidSelection):
		reason = "invalid_selection"
	case errors.Is(err, domain.ErrInvalidQuantity):
		reason = "invalid_quantity"
	case errors.Is(err, domain.ErrEmptyCart):
		reason = "empty_cart"
	}

	s.metrics.Rejections.WithLabelValues(operation, reason).Inc()
	s.logger.Warn().Err(err).Str("operation", operation).Msg("operation rejected")
}
