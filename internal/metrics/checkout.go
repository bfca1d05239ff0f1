package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Checkout groups the collectors updated by the shop service.
type Checkout struct {
	OrdersPlaced      *prometheus.CounterVec
	OrderAmount       prometheus.Histogram
	CouponRedemptions *prometheus.CounterVec
	Rejections        *prometheus.CounterVec
	CartMutations     *prometheus.CounterVec
}

// NewCheckout creates the checkout collectors and registers them with reg.
// A nil registerer leaves them unregistered.
func NewCheckout(reg prometheus.Registerer) *Checkout {
	m := &Checkout{
		OrdersPlaced: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "shop",
			Name:      "orders_placed_total",
			Help:      "Completed checkouts by payment method, delivery method and discount.",
		}, []string{"payment", "delivery", "discount"}),
		OrderAmount: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "shop",
			Name:      "order_amount",
			Help:      "Final amount paid per order, in major currency units.",
			Buckets:   []float64{100, 500, 1000, 5000, 10000, 25000, 50000, 100000},
		}),
		CouponRedemptions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "shop",
			Name:      "coupon_redemptions_total",
			Help:      "Coupon codes supplied at payment, by resolved coupon.",
		}, []string{"coupon"}),
		Rejections: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "shop",
			Name:      "rejections_total",
			Help:      "Rejected shop operations by reason.",
		}, []string{"operation", "reason"}),
		CartMutations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "shop",
			Name:      "cart_mutations_total",
			Help:      "Cart add and remove operations.",
		}, []string{"operation"}),
	}

	if reg != nil {
		reg.MustRegister(m.OrdersPlaced, m.OrderAmount, m.CouponRedemptions, m.Rejections, m.CartMutations)
	}

	return m
}
