package db

import (
	"context"
	"fmt"
	"time"

	"donoru/pkg/types"

	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

// Handle is the process-wide database handle. It is built once at startup
// and never mutated afterwards. When configuration is missing or the client
// cannot be constructed the handle is absent and Database reports
// types.ErrNotConnected.
type Handle struct {
	client   *mongo.Client
	database *mongo.Database

	urlConfigured  bool
	nameConfigured bool

	// why the handle is absent, nil when connected
	cause error
}

// Connect builds the handle from config. It never fails: problems are
// recorded on the returned handle and logged. A failed ping only logs a
// warning since the driver reconnects lazily once the server is reachable.
func Connect(ctx context.Context, config *types.Config, logger *logrus.Logger) *Handle {
	h := &Handle{
		urlConfigured:  config.DatabaseURL != "",
		nameConfigured: config.DatabaseName != "",
	}

	if !h.urlConfigured || !h.nameConfigured {
		h.cause = fmt.Errorf("set DATABASE_URL and DATABASE_NAME")
		logger.WithError(h.cause).Warn("database configuration absent, storage is disabled")
		return h
	}

	timeout := time.Duration(config.DatabaseTimeoutSec) * time.Second
	clientOpts := options.Client().
		ApplyURI(config.DatabaseURL).
		SetConnectTimeout(timeout).
		SetServerSelectionTimeout(timeout)

	client, err := mongo.Connect(ctx, clientOpts)
	if err != nil {
		h.cause = fmt.Errorf("create client: %w", err)
		logger.WithError(h.cause).Warn("failed to initialize database client, storage is disabled")
		return h
	}

	h.client = client
	h.database = client.Database(config.DatabaseName)

	pingCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()
	if err := client.Ping(pingCtx, readpref.Primary()); err != nil {
		logger.WithError(err).Warn("database ping failed, continuing")
	}

	return h
}

// Wrap builds a connected handle around an existing database.
func Wrap(database *mongo.Database, urlConfigured, nameConfigured bool) *Handle {
	return &Handle{
		client:         database.Client(),
		database:       database,
		urlConfigured:  urlConfigured,
		nameConfigured: nameConfigured,
	}
}

// Absent builds a handle with no database behind it.
func Absent(urlConfigured, nameConfigured bool) *Handle {
	return &Handle{
		urlConfigured:  urlConfigured,
		nameConfigured: nameConfigured,
		cause:          fmt.Errorf("database handle not initialized"),
	}
}

func (h *Handle) Database() (*mongo.Database, error) {
	if h == nil || h.database == nil {
		if h != nil && h.cause != nil {
			return nil, fmt.Errorf("%w: %v", types.ErrNotConnected, h.cause)
		}
		return nil, types.ErrNotConnected
	}

	return h.database, nil
}

func (h *Handle) Present() bool {
	return h != nil && h.database != nil
}

func (h *Handle) URLConfigured() bool {
	return h != nil && h.urlConfigured
}

func (h *Handle) NameConfigured() bool {
	return h != nil && h.nameConfigured
}

func (h *Handle) Close(ctx context.Context) error {
	if h == nil || h.client == nil {
		return nil
	}

	if err := h.client.Disconnect(ctx); err != nil {
		return fmt.Errorf("disconnect database: %w", err)
	}

	return nil
}
