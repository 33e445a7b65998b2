package http

import (
	"encoding/json"
	"net/http"

	"github.com/eddieoz/openxrypt/internal/logger"
	"github.com/eddieoz/openxrypt/models"
)

func (h *Handler) scan(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req models.ScanRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("invalid JSON was passed")
		writeError(w, r, http.StatusBadRequest, "invalid JSON was passed")
		return
	}

	if err := h.validator.Validate(ctx, req); err != nil {
		log.Err(err).Msg("rejecting malformed scan request")
		writeError(w, r, http.StatusBadRequest, err.Error())
		return
	}

	patched, stats := h.services.ScanService.Scan(ctx, req.Snapshot)

	writeJSON(w, r, http.StatusOK, models.ScanResponse{
		ControlResponse: successEnvelope("scan complete"),
		Snapshot:        patched,
		Replaced:        stats.Replaced,
	})
}
