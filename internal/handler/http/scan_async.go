package http

import (
	"encoding/json"
	"net/http"

	"github.com/eddieoz/openxrypt/internal/logger"
	"github.com/eddieoz/openxrypt/models"
)

// notify accepts a mutation notification: the snapshot is queued for a
// background scan and the request returns immediately. The caller polls
// latestScan for the patched snapshot.
func (h *Handler) notify(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	if h.queue == nil {
		writeError(w, r, http.StatusServiceUnavailable, "background scanning is disabled")
		return
	}

	var req models.ScanRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("invalid JSON was passed")
		writeError(w, r, http.StatusBadRequest, "invalid JSON was passed")
		return
	}

	if err := h.validator.Validate(r.Context(), req); err != nil {
		log.Err(err).Msg("rejecting malformed notify request")
		writeError(w, r, http.StatusBadRequest, err.Error())
		return
	}

	if !h.queue.Submit(req.Snapshot) {
		log.Warn().Str("host", req.Snapshot.Host).Msg("scan queue rejected snapshot")
		writeError(w, r, http.StatusServiceUnavailable, "scan queue is full")
		return
	}

	writeJSON(w, r, http.StatusAccepted, successEnvelope("snapshot queued"))
}

// latestScan returns the newest background scan result for ?host=.
func (h *Handler) latestScan(w http.ResponseWriter, r *http.Request) {
	if h.results == nil {
		writeError(w, r, http.StatusServiceUnavailable, "background scanning is disabled")
		return
	}

	host := r.URL.Query().Get("host")
	if host == "" {
		writeError(w, r, http.StatusBadRequest, "host query parameter is required")
		return
	}

	result, ok := h.results.Latest(host)
	if !ok {
		writeError(w, r, http.StatusNotFound, "no scan result for host")
		return
	}

	writeJSON(w, r, http.StatusOK, models.ScanResponse{
		ControlResponse: successEnvelope("scan complete"),
		Snapshot:        result.Snapshot,
		Replaced:        result.Stats.Replaced,
	})
}
