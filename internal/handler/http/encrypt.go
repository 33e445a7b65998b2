// SPDX-License-Identifier: Apache-2.0

package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/eddieoz/openxrypt/internal/crypto"
	"github.com/eddieoz/openxrypt/internal/logger"
	"github.com/eddieoz/openxrypt/internal/service"
	"github.com/eddieoz/openxrypt/internal/store"
	"github.com/eddieoz/openxrypt/models"
)

func (h *Handler) encryptText(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req models.EncryptRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("invalid JSON was passed")
		writeError(w, r, http.StatusBadRequest, "invalid JSON was passed")
		return
	}

	if err := h.validator.Validate(ctx, req); err != nil {
		log.Err(err).Msg("rejecting malformed encrypt request")
		writeError(w, r, http.StatusBadRequest, err.Error())
		return
	}

	var (
		patched models.PageSnapshot
		err     error
	)
	switch req.Mode {
	case models.ModeDM:
		patched, err = h.services.EncryptService.EncryptForSend(ctx, req.Snapshot)
	case models.ModePost:
		patched, err = h.services.EncryptService.EncryptForConstrainedPost(ctx, req.Snapshot)
	default:
		writeError(w, r, http.StatusBadRequest, "unknown encryption mode")
		return
	}

	if err != nil {
		status, message := mapEncryptError(err)
		log.Err(err).Str("mode", req.Mode).Msg("encryption request failed")
		writeError(w, r, status, message)
		return
	}

	writeJSON(w, r, http.StatusOK, models.EncryptResponse{
		ControlResponse: successEnvelope("composer text encrypted"),
		Snapshot:        patched,
	})
}

func mapEncryptError(err error) (int, string) {
	switch {
	case errors.Is(err, service.ErrNoComposer),
		errors.Is(err, service.ErrEmptyMessage),
		errors.Is(err, service.ErrUnsupportedHost):
		return http.StatusBadRequest, err.Error()
	case errors.Is(err, service.ErrDisallowedContent),
		errors.Is(err, service.ErrIdentityUnresolved):
		return http.StatusUnprocessableEntity, err.Error()
	case errors.Is(err, store.ErrKeyNotFound):
		return http.StatusNotFound, "no key stored for recipient"
	case errors.Is(err, crypto.ErrEncryptionFailed):
		return http.StatusUnprocessableEntity, "encryption failed"
	default:
		return http.StatusInternalServerError, http.StatusText(http.StatusInternalServerError)
	}
}
