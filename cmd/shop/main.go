package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/urfave/cli/v3"

	"github.com/nikolayk812/checkout-demo/internal/app"
	"github.com/nikolayk812/checkout-demo/internal/config"
	"github.com/nikolayk812/checkout-demo/internal/console"
	"github.com/nikolayk812/checkout-demo/internal/logging"
)

func main() {
	cmd := &cli.Command{
		Name:  "shop",
		Usage: "console checkout simulator",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "log-level",
				Usage: "trace, debug, info, warn or error (overrides LOG_LEVEL)",
			},
			&cli.StringFlag{
				Name:  "log-format",
				Usage: "console, text or json (overrides LOG_FORMAT)",
			},
			&cli.StringFlag{
				Name:  "currency",
				Usage: "ISO 4217 catalog currency (overrides SHOP_CURRENCY)",
			},
			&cli.StringFlag{
				Name:  "owner",
				Usage: "cart owner id for this session (overrides SHOP_OWNER)",
			},
			&cli.StringFlag{
				Name:  "metrics-file",
				Usage: "write Prometheus metrics to this file on exit (overrides SHOP_METRICS_FILE)",
			},
		},
		Action: run,
	}

	if err := cmd.Run(context.Background(), os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(ctx context.Context, cmd *cli.Command) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("config.Load: %w", err)
	}

	if cmd.IsSet("log-level") {
		cfg.LogLevel = strings.ToLower(cmd.String("log-level"))
	}
	if cmd.IsSet("log-format") {
		cfg.LogFormat = strings.ToLower(cmd.String("log-format"))
	}
	if cmd.IsSet("currency") {
		cfg.Currency = strings.ToUpper(cmd.String("currency"))
	}
	if cmd.IsSet("owner") {
		cfg.OwnerID = cmd.String("owner")
	}
	if cmd.IsSet("metrics-file") {
		cfg.MetricsFile = strings.TrimSpace(cmd.String("metrics-file"))
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	logger := logging.New(os.Stderr, cfg.LogFormat, cfg.LogLevel)
	logger.Debug().
		Str("app_env", cfg.AppEnv).
		Str("currency", cfg.Currency).
		Str("owner_id", cfg.OwnerID).
		Msg("starting shop")

	deps, err := app.Build(cfg, logger)
	if err != nil {
		return fmt.Errorf("app.Build: %w", err)
	}

	session := console.NewSession(deps.Shop, cfg.OwnerID, os.Stdin, os.Stdout, logger)
	runErr := session.Run(ctx)
	if runErr != nil {
		runErr = fmt.Errorf("session.Run: %w", runErr)
	}

	if cfg.MetricsFile != "" {
		if err := deps.WriteMetrics(cfg.MetricsFile); err != nil {
			return errors.Join(runErr, err)
		}
		logger.Debug().Str("path", cfg.MetricsFile).Msg("metrics written")
	}

	logger.Debug().Int64("orders", deps.Sequence.Last()).Msg("shop closed")

	return runErr
}
