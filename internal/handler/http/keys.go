// SPDX-License-Identifier: Apache-2.0

package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/eddieoz/openxrypt/internal/logger"
	"github.com/eddieoz/openxrypt/internal/service"
	"github.com/eddieoz/openxrypt/internal/store"
	"github.com/eddieoz/openxrypt/internal/validators"
	"github.com/eddieoz/openxrypt/models"
)

// Keyring namespaces addressed in the URL, matching the two logical maps
// of the store.
const (
	namespacePublic  = "public"
	namespacePrivate = "private"
)

func (h *Handler) listKeys(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var entries []models.KeyListEntry

	switch chi.URLParam(r, "namespace") {
	case namespacePublic:
		records, err := h.services.KeyringService.ListPublicKeys(ctx)
		if err != nil {
			log.Err(err).Msg("listing public keys failed")
			writeError(w, r, http.StatusInternalServerError, "listing keys failed")
			return
		}
		for _, record := range records {
			entries = append(entries, models.KeyListEntry{
				Handle:      models.Identity(record.Handle),
				Fingerprint: record.Fingerprint,
			})
		}
	case namespacePrivate:
		records, err := h.services.KeyringService.ListPrivateKeys(ctx)
		if err != nil {
			log.Err(err).Msg("listing private keys failed")
			writeError(w, r, http.StatusInternalServerError, "listing keys failed")
			return
		}
		for _, record := range records {
			entries = append(entries, models.KeyListEntry{
				Handle:      models.Identity(record.Handle),
				Fingerprint: record.Fingerprint,
			})
		}
	default:
		writeError(w, r, http.StatusNotFound, "unknown keyring namespace")
		return
	}

	writeJSON(w, r, http.StatusOK, models.KeyListResponse{
		ControlResponse: successEnvelope("keys listed"),
		Keys:            entries,
	})
}

func (h *Handler) putKey(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req models.PutKeyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("invalid JSON was passed")
		writeError(w, r, http.StatusBadRequest, "invalid JSON was passed")
		return
	}
	namespace := chi.URLParam(r, "namespace")
	blockField := validators.FieldPublicKeyBlock
	if namespace == namespacePrivate {
		blockField = validators.FieldPrivateKeyBlock
	}
	if err := h.validator.Validate(ctx, req, validators.FieldHandle, validators.FieldArmoredKey, blockField); err != nil {
		log.Err(err).Msg("rejecting malformed put-key request")
		writeError(w, r, http.StatusBadRequest, err.Error())
		return
	}

	var (
		fingerprint string
		err         error
	)
	switch namespace {
	case namespacePublic:
		var record models.PublicKeyRecord
		record, err = h.services.KeyringService.AddPublicKey(ctx, req.Handle.String(), req.ArmoredKey)
		fingerprint = record.Fingerprint
	case namespacePrivate:
		var record models.PrivateKeyRecord
		record, err = h.services.KeyringService.AddPrivateKey(ctx, req.Handle.String(), req.ArmoredKey)
		fingerprint = record.Fingerprint
	default:
		writeError(w, r, http.StatusNotFound, "unknown keyring namespace")
		return
	}

	if err != nil {
		if errors.Is(err, service.ErrInvalidKeyProvided) {
			log.Err(err).Str("handle", req.Handle.String()).Msg("rejecting invalid key")
			writeError(w, r, http.StatusBadRequest, "invalid key provided")
			return
		}
		log.Err(err).Str("handle", req.Handle.String()).Msg("storing key failed")
		writeError(w, r, http.StatusInternalServerError, "storing key failed")
		return
	}

	writeJSON(w, r, http.StatusOK, models.KeyResponse{
		ControlResponse: successEnvelope("key stored"),
		Handle:          req.Handle,
		Fingerprint:     fingerprint,
	})
}

func (h *Handler) getKey(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	handle := chi.URLParam(r, "handle")

	var resp models.KeyResponse
	var err error

	switch chi.URLParam(r, "namespace") {
	case namespacePublic:
		var record models.PublicKeyRecord
		record, err = h.services.KeyringService.GetPublicKey(ctx, handle)
		resp = models.KeyResponse{
			Handle:      models.Identity(record.Handle),
			ArmoredKey:  record.ArmoredKey,
			Fingerprint: record.Fingerprint,
		}
	case namespacePrivate:
		var record models.PrivateKeyRecord
		record, err = h.services.KeyringService.GetPrivateKey(ctx, handle)
		resp = models.KeyResponse{
			Handle:      models.Identity(record.Handle),
			ArmoredKey:  record.ArmoredKey,
			Fingerprint: record.Fingerprint,
		}
	default:
		writeError(w, r, http.StatusNotFound, "unknown keyring namespace")
		return
	}

	if err != nil {
		if errors.Is(err, store.ErrKeyNotFound) {
			writeError(w, r, http.StatusNotFound, "key not found")
			return
		}
		log.Err(err).Str("handle", handle).Msg("fetching key failed")
		writeError(w, r, http.StatusInternalServerError, "fetching key failed")
		return
	}

	resp.ControlResponse = successEnvelope("key found")
	writeJSON(w, r, http.StatusOK, resp)
}

func (h *Handler) deleteKey(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	handle := chi.URLParam(r, "handle")

	var err error
	switch chi.URLParam(r, "namespace") {
	case namespacePublic:
		err = h.services.KeyringService.DeletePublicKey(ctx, handle)
	case namespacePrivate:
		err = h.services.KeyringService.DeletePrivateKey(ctx, handle)
	default:
		writeError(w, r, http.StatusNotFound, "unknown keyring namespace")
		return
	}

	if err != nil {
		if errors.Is(err, store.ErrKeyNotFound) {
			writeError(w, r, http.StatusNotFound, "key not found")
			return
		}
		log.Err(err).Str("handle", handle).Msg("deleting key failed")
		writeError(w, r, http.StatusInternalServerError, "deleting key failed")
		return
	}

	writeJSON(w, r, http.StatusOK, successEnvelope("key deleted"))
}
