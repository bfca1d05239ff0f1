package config

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/v2"
	"golang.org/x/text/currency"
)

// Config holds application configuration loaded from the environment.
type Config struct {
	AppEnv    string `validate:"required"`
	LogLevel  string `validate:"oneof=trace debug info warn error"`
	LogFormat string `validate:"oneof=console text json"`
	Currency  string `validate:"len=3"`
	OwnerID   string `validate:"required"`

	// MetricsFile is where the metrics registry is written on exit. Empty disables it.
	MetricsFile string
}

var validate = validator.New()

// Load reads configuration from environment variables and an optional .env file.
func Load() (*Config, error) {
	_ = godotenv.Load()

	k := koanf.New(".")
	if err := k.Load(env.Provider("", ".", func(s string) string { return s }), nil); err != nil {
		return nil, fmt.Errorf("load env: %w", err)
	}

	cfg := &Config{
		AppEnv:    valueOrDefault(k.String("APP_ENV"), "development"),
		LogLevel:  strings.ToLower(valueOrDefault(k.String("LOG_LEVEL"), "info")),
		LogFormat: strings.ToLower(valueOrDefault(k.String("LOG_FORMAT"), "console")),
		Currency:  strings.ToUpper(valueOrDefault(k.String("SHOP_CURRENCY"), "INR")),
		OwnerID:   valueOrDefault(k.String("SHOP_OWNER"), "guest"),

		MetricsFile: strings.TrimSpace(k.String("SHOP_METRICS_FILE")),
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks field constraints and that Currency is a known ISO 4217 code.
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("validate config: %w", err)
	}
	if _, err := currency.ParseISO(c.Currency); err != nil {
		return fmt.Errorf("currency[%s] is not valid: %w", c.Currency, err)
	}
	return nil
}

// CurrencyUnit returns the parsed shop currency. It falls back to INR when Currency
// has not been validated.
func (c *Config) CurrencyUnit() currency.Unit {
	unit, err := currency.ParseISO(c.Currency)
	if err != nil {
		return currency.INR
	}
	return unit
}

func valueOrDefault(value, fallback string) string {
	if strings.TrimSpace(value) != "" {
		return strings.TrimSpace(value)
	}
	return fallback
}
