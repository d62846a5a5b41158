package server

import (
	"context"
	"net/http"
	"strings"
	"time"

	"donoru/internal/utils"

	"github.com/rs/cors"
	"github.com/sirupsen/logrus"
)

// Context key types to avoid collisions
type contextKey string

const contextKeyRequestID contextKey = "request_id"

const headerRequestID = "X-Request-Id"

type responseWriter struct {
	http.ResponseWriter
	statusCode int
}

func (rw *responseWriter) WriteHeader(code int) {
	rw.statusCode = code
	rw.ResponseWriter.WriteHeader(code)
}

// RequestID tags each request with an id, reusing the caller's when present.
func (s *Service) RequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := strings.TrimSpace(r.Header.Get(headerRequestID))
		if id == "" || len(id) > 64 {
			id = utils.RequestID()
		}

		w.Header().Set(headerRequestID, id)

		ctx := context.WithValue(r.Context(), contextKeyRequestID, id)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func (s *Service) LoggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		started := time.Now()
		rw := &responseWriter{ResponseWriter: w, statusCode: http.StatusOK}

		next.ServeHTTP(rw, r)

		s.requestLogger(r).WithFields(logrus.Fields{
			"method":      r.Method,
			"path":        r.URL.Path,
			"status":      rw.statusCode,
			"duration_ms": time.Since(started).Milliseconds(),
		}).Info("http request")
	})
}

// CORS lets any origin call the API with credentials. The allow func makes
// rs/cors echo the caller's origin, since browsers reject "*" alongside
// credentials.
func (s *Service) CORS(next http.Handler) http.Handler {
	return cors.New(cors.Options{
		AllowOriginFunc: func(string) bool { return true },
		AllowedMethods: []string{
			http.MethodGet,
			http.MethodHead,
			http.MethodPost,
			http.MethodPut,
			http.MethodPatch,
			http.MethodDelete,
			http.MethodOptions,
		},
		AllowedHeaders:   []string{"*"},
		AllowCredentials: true,
	}).Handler(next)
}

func (s *Service) StripTrailingSlash(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		path := r.URL.Path

		// Only strip if path is not root and has trailing slash
		if path != "/" && strings.HasSuffix(path, "/") {
			newURL := *r.URL
			newURL.Path = strings.TrimRight(path, "/")
			newURL.RawPath = ""
			if newURL.Path == "" {
				newURL.Path = "/"
			}

			// 308 keeps the method and body of a POST
			http.Redirect(w, r, newURL.String(), http.StatusPermanentRedirect)
			return
		}

		next.ServeHTTP(w, r)
	})
}

func (s *Service) requestLogger(r *http.Request) *logrus.Entry {
	entry := logrus.NewEntry(s.logger)
	if id, ok := r.Context().Value(contextKeyRequestID).(string); ok {
		entry = entry.WithField("request_id", id)
	}
	return entry
}
