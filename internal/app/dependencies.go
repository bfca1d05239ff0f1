package app

import (
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"

	"github.com/nikolayk812/checkout-demo/internal/config"
	"github.com/nikolayk812/checkout-demo/internal/metrics"
	"github.com/nikolayk812/checkout-demo/internal/pricing"
	"github.com/nikolayk812/checkout-demo/internal/repository"
	"github.com/nikolayk812/checkout-demo/internal/shop"
)

// Dependencies bundles the wired shop and the collaborators a caller may want to inspect.
type Dependencies struct {
	Shop     *shop.Service
	Sequence *pricing.Sequence
	Metrics  *metrics.Checkout
	Registry *prometheus.Registry
}

// Build seeds the catalog in the configured currency and wires the in-memory
// stores, order sequence and metrics into a shop service.
func Build(cfg *config.Config, logger zerolog.Logger) (*Dependencies, error) {
	products, err := repository.SeedProducts(cfg.CurrencyUnit())
	if err != nil {
		return nil, fmt.Errorf("repository.SeedProducts: %w", err)
	}

	registry := prometheus.NewRegistry()
	checkoutMetrics := metrics.NewCheckout(registry)
	sequence := pricing.NewSequence(0)

	svc := shop.New(
		repository.NewCatalog(products),
		repository.NewCart(),
		repository.NewHistory(),
		sequence,
		checkoutMetrics,
		logger.With().Str("component", "shop").Logger(),
	)

	return &Dependencies{
		Shop:     svc,
		Sequence: sequence,
		Metrics:  checkoutMetrics,
		Registry: registry,
	}, nil
}

// WriteMetrics gathers the registry and writes it to path in the Prometheus
// text exposition format, for pickup by a node_exporter textfile collector.
func (d *Dependencies) WriteMetrics(path string) error {
	if err := prometheus.WriteToTextfile(path, d.Registry); err != nil {
		return fmt.Errorf("prometheus.WriteToTextfile: %w", err)
	}
	return nil
}
