package http

import (
	"encoding/json"
	"net/http"

	"github.com/eddieoz/openxrypt/internal/logger"
	"github.com/eddieoz/openxrypt/models"
)

func writeJSON(w http.ResponseWriter, r *http.Request, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		logger.FromRequest(r).Err(err).Msg("failed to encode response")
	}
}

func writeError(w http.ResponseWriter, r *http.Request, status int, message string) {
	writeJSON(w, r, status, models.ControlResponse{
		Status:  models.StatusError,
		Message: message,
	})
}

func successEnvelope(message string) models.ControlResponse {
	return models.ControlResponse{
		Status:  models.StatusSuccess,
		Message: message,
	}
}
