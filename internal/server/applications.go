package server

import (
	"errors"
	"net/http"
	"time"

	"donoru/internal/validation"
	"donoru/pkg/types"
)

const defaultListLimit = 100

type createApplicationResponse struct {
	ID string `json:"id"`
}

type listApplicationsQuery struct {
	Limit *int64 `form:"limit" validate:"omitempty,min=0"`
}

// applicationResponse is the wire form of a stored application.
type applicationResponse struct {
	ID string `json:"id"`
	types.Application
	CreatedAt *string `json:"created_at,omitempty"`
	UpdatedAt *string `json:"updated_at,omitempty"`
}

func (s *Service) handleCreateApplication(w http.ResponseWriter, r *http.Request) {
	var ctx = r.Context()

	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)

	var app = new(types.Application)
	err := validation.DecodeJSON(r.Body, app)
	if err != nil {
		var verrs validation.Errors
		if errors.As(err, &verrs) {
			s.validationFailed(w, r, verrs)
			return
		}
		s.requestLogger(r).WithError(err).Error("failed to validate application")
		s.internalServerError(w, r, err)
		return
	}

	id, err := s.applications.CreateApplication(ctx, app)
	if err != nil {
		s.requestLogger(r).WithError(err).Error("failed to create application in datastore")
		s.internalServerError(w, r, err)
		return
	}

	s.requestLogger(r).WithField("application_id", id).Info("application submitted")

	s.writeJSON(w, r, http.StatusOK, createApplicationResponse{ID: id})
}

func (s *Service) handleListApplications(w http.ResponseWriter, r *http.Request) {
	var ctx = r.Context()

	var query = new(listApplicationsQuery)
	err := validation.DecodeQuery(r.URL.Query(), query)
	if err != nil {
		var verrs validation.Errors
		if errors.As(err, &verrs) {
			s.validationFailed(w, r, verrs)
			return
		}
		s.requestLogger(r).WithError(err).Error("failed to decode list query")
		s.internalServerError(w, r, err)
		return
	}

	limit := int64(defaultListLimit)
	if query.Limit != nil {
		limit = *query.Limit
	}

	apps, err := s.applications.Applications(ctx, limit)
	if err != nil {
		s.requestLogger(r).WithError(err).Error("failed to fetch applications from datastore")
		s.internalServerError(w, r, err)
		return
	}

	out := make([]applicationResponse, 0, len(apps))
	for _, app := range apps {
		out = append(out, newApplicationResponse(app))
	}

	s.writeJSON(w, r, http.StatusOK, out)
}

func newApplicationResponse(record *types.ApplicationRecord) applicationResponse {
	return applicationResponse{
		ID:          record.ID.Hex(),
		Application: record.Application,
		CreatedAt:   formatTime(record.CreatedAt),
		UpdatedAt:   formatTime(record.UpdatedAt),
	}
}

// formatTime renders t as RFC 3339 text, nil when the document had no value.
func formatTime(t time.Time) *string {
	if t.IsZero() {
		return nil
	}

	out := t.UTC().Format(time.RFC3339Nano)
	return &out
}
