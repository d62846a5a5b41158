package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"donoru/internal/db"
	"donoru/internal/server"
	"donoru/internal/store"

	"github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"
)

var serveCommand = &cli.Command{
	Name:   "serve",
	Usage:  "Start the HTTP server",
	Action: serve,
}

func serve(cCtx *cli.Context) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	config, err := loadConfig()
	if err != nil {
		return err
	}

	logger := newLogger(config)

	handle := db.Connect(ctx, config, logger)
	defer func() {
		closeCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := handle.Close(closeCtx); err != nil {
			logger.WithError(err).Error("failed to close database")
		}
	}()

	documents := store.NewDocumentStore(handle)
	applicationRepo := store.NewApplicationRepository(documents)

	srv, err := server.New(
		config,
		logger,
		applicationRepo,
		applicationRepo,
	)
	if err != nil {
		return err
	}

	go func() {
		logger.WithFields(logrus.Fields{
			"port":      config.ServerPort,
			"connected": handle.Present(),
		}).Infof("server starting http://localhost:%d", config.ServerPort)
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.WithError(err).Fatal("server failed")
		}
	}()

	<-ctx.Done()
	logger.Info("shutdown signal received")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	return srv.Stop(shutdownCtx)
}
