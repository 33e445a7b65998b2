package http

import (
	"encoding/json"
	"net/http"

	"github.com/eddieoz/openxrypt/internal/logger"
	"github.com/eddieoz/openxrypt/models"
)

func (h *Handler) setPassphrase(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var req models.PassphraseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("invalid JSON was passed")
		writeError(w, r, http.StatusBadRequest, "invalid JSON was passed")
		return
	}
	if req.Passphrase == "" {
		writeError(w, r, http.StatusBadRequest, "empty passphrase")
		return
	}

	h.services.Guard.Set(req.Passphrase)
	log.Info().Msg("session passphrase set")

	writeJSON(w, r, http.StatusOK, successEnvelope("passphrase set"))
}

func (h *Handler) resetPassphrase(w http.ResponseWriter, r *http.Request) {
	h.services.Guard.Reset()
	logger.FromRequest(r).Info().Msg("session passphrase reset")

	writeJSON(w, r, http.StatusOK, successEnvelope("passphrase reset"))
}

func (h *Handler) checkPassphrase(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, r, http.StatusOK, models.PassphraseStatus{
		HasPassphrase: h.services.Guard.IsUnlocked(),
	})
}
