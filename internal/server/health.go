package server

import (
	"net/http"

	"donoru/internal/utils"
)

const livenessMessage = "Donor U Backend Running"

// maxStatusErrorLength bounds error text embedded in diagnostic strings.
const maxStatusErrorLength = 80

const (
	statusBackendRunning      = "✅ Running"
	statusDatabaseWorking     = "✅ Connected & Working"
	statusDatabaseNotInit     = "⚠️  Available but not initialized"
	statusDatabaseErrorPrefix = "⚠️  Connected but Error: "
	statusSet                 = "✅ Set"
	statusNotSet              = "❌ Not Set"
	connectionConnected       = "Connected"
	connectionNotConnected    = "Not Connected"
)

type rootResponse struct {
	Message string `json:"message"`
}

type diagnosticsResponse struct {
	Backend          string   `json:"backend"`
	Database         string   `json:"database"`
	DatabaseURL      string   `json:"database_url"`
	DatabaseName     string   `json:"database_name"`
	ConnectionStatus string   `json:"connection_status"`
	Collections      []string `json:"collections"`
}

func (s *Service) handleRoot(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, r, http.StatusOK, rootResponse{Message: livenessMessage})
}

// handleTestDatabase always answers 200; database problems are described in
// the body.
func (s *Service) handleTestDatabase(w http.ResponseWriter, r *http.Request) {
	report := s.diagnostics.DescribeConnection(r.Context())

	resp := diagnosticsResponse{
		Backend:          statusBackendRunning,
		Database:         statusDatabaseNotInit,
		DatabaseURL:      setStatus(report.URLConfigured),
		DatabaseName:     setStatus(report.NameConfigured),
		ConnectionStatus: connectionNotConnected,
		Collections:      []string{},
	}

	if report.HandlePresent {
		if report.Probe.OK() {
			resp.Database = statusDatabaseWorking
			resp.ConnectionStatus = connectionConnected
			if report.Probe.Names != nil {
				resp.Collections = report.Probe.Names
			}
		} else {
			resp.Database = statusDatabaseErrorPrefix + utils.ErrorString(report.Probe.Err, maxStatusErrorLength)
			s.requestLogger(r).WithError(report.Probe.Err).Warn("database probe failed")
		}
	}

	s.writeJSON(w, r, http.StatusOK, resp)
}

func setStatus(ok bool) string {
	if ok {
		return statusSet
	}
	return statusNotSet
}
