package main

import (
	"context"
	"fmt"

	"donoru/internal/store"

	"github.com/k0kubun/pp/v3"
	"github.com/urfave/cli/v2"
)

var applicationsCommand = &cli.Command{
	Name:  "applications",
	Usage: "Print stored applications",
	Flags: []cli.Flag{
		&cli.Int64Flag{
			Name:    "limit",
			Aliases: []string{"l"},
			Usage:   "Maximum number of applications to print, 0 for all",
			Value:   100,
		},
	},
	Action: func(c *cli.Context) error {
		limit := c.Int64("limit")
		if limit < 0 {
			return fmt.Errorf("limit must be >= 0")
		}

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

		applicationRepo := store.NewApplicationRepository(store.NewDocumentStore(handle))

		apps, err := applicationRepo.Applications(ctx, limit)
		if err != nil {
			return err
		}

		for _, app := range apps {
			pp.Println(app)
		}
		fmt.Printf("%d applications\n", len(apps))

		return nil
	},
}
