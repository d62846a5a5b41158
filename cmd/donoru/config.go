package main

import (
	"context"
	"fmt"

	"donoru/internal/db"
	"donoru/pkg/types"

	"github.com/kelseyhightower/envconfig"
	"github.com/sirupsen/logrus"
)

func loadConfig() (*types.Config, error) {
	c := new(types.Config)
	if err := envconfig.Process("", c); err != nil {
		return nil, fmt.Errorf("process environment config: %w", err)
	}

	if c.ServerPort == 0 {
		c.ServerPort = 8000
	}

	if c.ReadTimeoutSec == 0 {
		c.ReadTimeoutSec = 10
	}

	if c.WriteTimeoutSec == 0 {
		c.WriteTimeoutSec = 15
	}

	if c.DatabaseTimeoutSec == 0 {
		c.DatabaseTimeoutSec = 5
	}

	return c, nil
}

func newLogger(config *types.Config) *logrus.Logger {
	logger := logrus.New()
	if config.IsDevelopment() {
		logger.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
		logger.SetLevel(logrus.DebugLevel)
		return logger
	}

	logger.SetFormatter(&logrus.JSONFormatter{})
	return logger
}

// connectRequired connects for commands that cannot do anything without a
// database, unlike serve which keeps running with an absent handle.
func connectRequired(ctx context.Context, config *types.Config, logger *logrus.Logger) (*db.Handle, error) {
	handle := db.Connect(ctx, config, logger)
	if _, err := handle.Database(); err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	return handle, nil
}
