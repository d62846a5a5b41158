package main

import (
	"context"
	"fmt"

	"donoru/internal/seed"
	"donoru/internal/store"

	"github.com/urfave/cli/v2"
)

var seedCommand = &cli.Command{
	Name:  "seed",
	Usage: "Seed the database with sample applications",
	Action: func(c *cli.Context) error {
		cfg, err := loadConfig()
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		logger := newLogger(cfg)
		ctx := context.Background()

		handle, err := connectRequired(ctx, cfg, logger)
		if err != nil {
			return err
		}
		defer handle.Close(ctx)

		logger.Info("Connected to database")

		applicationRepo := store.NewApplicationRepository(store.NewDocumentStore(handle))

		logger.Info("Seeding applications...")
		inserted, err := seed.SeedApplications(ctx, applicationRepo)
		if err != nil {
			return fmt.Errorf("failed to seed applications: %w", err)
		}

		logger.WithField("inserted", inserted).Info("Applications seeded successfully")

		return nil
	},
}
