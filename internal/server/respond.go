package server

import (
	"encoding/json"
	"net/http"

	"donoru/internal/utils"
	"donoru/internal/validation"
)

// maxDetailLength bounds error messages echoed back to callers.
const maxDetailLength = 200

type errorResponse struct {
	Detail string `json:"detail"`
}

type validationResponse struct {
	Detail validation.Errors `json:"detail"`
}

func (s *Service) writeJSON(w http.ResponseWriter, r *http.Request, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(body); err != nil {
		s.requestLogger(r).WithError(err).Error("failed to encode response")
	}
}

func (s *Service) validationFailed(w http.ResponseWriter, r *http.Request, verrs validation.Errors) {
	s.requestLogger(r).WithField("fields", verrs.Fields()).Debug("request failed validation")
	s.writeJSON(w, r, http.StatusUnprocessableEntity, validationResponse{Detail: verrs})
}

// internalServerError reports err to the caller with a truncated message.
func (s *Service) internalServerError(w http.ResponseWriter, r *http.Request, err error) {
	detail := utils.ErrorString(err, maxDetailLength)
	if detail == "" {
		detail = "internal server error"
	}

	s.writeJSON(w, r, http.StatusInternalServerError, errorResponse{Detail: detail})
}
