package main

import (
	"context"
	"registrar/internal/config"
	"registrar/internal/pricing"
	"registrar/pkg/logger"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// seedPricingCommand writes the configured pricing policy. Snapshots already
// frozen on registrations are not touched.
func seedPricingCommand(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "seed-pricing",
		Short: "Creates or replaces the active pricing policy from config",
		Run: func(cmd *cobra.Command, args []string) {
			ctx := context.Background()

			strg, closeStrg := getPostgres(ctx, cfg)
			defer closeStrg()

			policy, err := pricing.SeedPolicy(cfg)
			if err != nil {
				logger.Fatal(ctx, "invalid pricing seed", zap.Error(err))
			}

			options, err := pricing.NewOptions(cfg)
			if err != nil {
				logger.Fatal(ctx, "could not configure pricing", zap.Error(err))
			}

			stored, err := pricing.New(strg, options).Seed(ctx, policy)
			if err != nil {
				logger.Fatal(ctx, "could not seed pricing policy", zap.Error(err))
			}

			logger.Info(ctx, "pricing policy seeded",
				zap.String("key", stored.Key),
				zap.String("currency", stored.Currency),
				zap.Time("event_start_date", stored.EventStartDate))
		},
	}

	return cmd
}
