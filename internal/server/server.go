package server

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"donoru/pkg/types"

	"github.com/alexedwards/flow"
	"github.com/sirupsen/logrus"
)

// maxBodyBytes caps request bodies.
const maxBodyBytes = 1 << 20

// ApplicationStore persists and lists landing page applications.
type ApplicationStore interface {
	CreateApplication(ctx context.Context, app *types.Application) (string, error)
	Applications(ctx context.Context, limit int64) ([]*types.ApplicationRecord, error)
}

// ConnectionDescriber reports database health for the diagnostics endpoint.
type ConnectionDescriber interface {
	DescribeConnection(ctx context.Context) types.ConnectionReport
}

type Service struct {
	logger *logrus.Logger
	config *types.Config

	applications ApplicationStore
	diagnostics  ConnectionDescriber

	server *http.Server
}

func New(
	config *types.Config,
	logger *logrus.Logger,
	applications ApplicationStore,
	diagnostics ConnectionDescriber,
) (*Service, error) {
	if applications == nil || diagnostics == nil {
		return nil, fmt.Errorf("application store and connection describer are required")
	}

	mux := flow.New()

	s := &Service{
		logger:       logger,
		config:       config,
		applications: applications,
		diagnostics:  diagnostics,
	}

	s.buildRouter(mux)

	s.server = &http.Server{
		Addr:              fmt.Sprintf(":%d", config.ServerPort),
		Handler:           s.wrap(mux),
		ReadTimeout:       time.Duration(config.ReadTimeoutSec) * time.Second,
		ReadHeaderTimeout: time.Duration(config.ReadTimeoutSec) * time.Second,
		WriteTimeout:      time.Duration(config.WriteTimeoutSec) * time.Second,
		MaxHeaderBytes:    1 << 20,
	}

	return s, nil
}

func (s *Service) Start() error {
	return s.server.ListenAndServe()
}

func (s *Service) Stop(ctx context.Context) error {
	return s.server.Shutdown(ctx)
}

// Handler returns the fully wrapped handler the server listens with.
func (s *Service) Handler() http.Handler {
	return s.server.Handler
}

func (s *Service) buildRouter(r *flow.Mux) {
	r.HandleFunc("/", s.handleRoot, http.MethodGet)
	r.HandleFunc("/test", s.handleTestDatabase, http.MethodGet)

	r.HandleFunc("/api/applications", s.handleCreateApplication, http.MethodPost)
	r.HandleFunc("/api/applications", s.handleListApplications, http.MethodGet)
}

// wrap applies the middleware that must also see unmatched routes. The last
// one applied runs first.
func (s *Service) wrap(h http.Handler) http.Handler {
	h = s.StripTrailingSlash(h)
	h = s.CORS(h)
	h = s.LoggingMiddleware(h)
	h = s.RequestID(h)
	return h
}
