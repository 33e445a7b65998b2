// SPDX-License-Identifier: Apache-2.0

package adapter

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/eddieoz/openxrypt/internal/config"
	"github.com/eddieoz/openxrypt/internal/logger"
	"github.com/eddieoz/openxrypt/internal/utils"
	"github.com/eddieoz/openxrypt/models"
)

type httpControlClient struct {
	client *utils.HTTPClient

	logger *logger.Logger
}

// NewHTTPControlClient constructs an HTTP implementation of [ControlClient].
// It normalises and validates the base URL from popupCfg.BaseURL and
// configures the underlying HTTP client with the resolved base URL and
// request timeout.
//
// Returns an error if popupCfg.BaseURL is empty or cannot be parsed as a
// valid URL.
func NewHTTPControlClient(popupCfg config.Popup, logger *logger.Logger) (ControlClient, error) {
	client := utils.NewHTTPClient()
	baseURL, err := normalizeBaseURL(popupCfg.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid control-channel address: %w", err)
	}

	client.
		SetBaseURL(baseURL).
		SetTimeout(popupCfg.RequestTimeout)

	return &httpControlClient{client: client, logger: logger}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// EncryptText implements [ControlClient]. It POSTs the snapshot to
// POST /api/text/encrypt and returns the patched snapshot whose composer
// carries the ciphertext. On any error the input snapshot is returned
// unchanged so the caller can keep the composer as the user typed it.
func (h *httpControlClient) EncryptText(ctx context.Context, mode string, snap models.PageSnapshot) (models.PageSnapshot, error) {
	var result models.EncryptResponse

	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(models.EncryptRequest{Mode: mode, Snapshot: snap}).
		SetResult(&result).
		Post("/api/text/encrypt")
	if err != nil {
		return snap, fmt.Errorf("encrypt request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return snap, err
	}

	return result.Snapshot, nil
}

// Scan implements [ControlClient]. It POSTs the snapshot to POST /api/scan
// and returns the patched snapshot plus the number of replaced ciphertext
// blocks. On error the input snapshot is returned unchanged.
func (h *httpControlClient) Scan(ctx context.Context, snap models.PageSnapshot) (models.PageSnapshot, int, error) {
	var result models.ScanResponse

	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(models.ScanRequest{Snapshot: snap}).
		SetResult(&result).
		Post("/api/scan")
	if err != nil {
		return snap, 0, fmt.Errorf("scan request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return snap, 0, err
	}

	return result.Snapshot, result.Replaced, nil
}

// SetPassphrase implements [ControlClient]. It POSTs the passphrase to
// POST /api/passphrase, arming the daemon's in-memory guard for the session.
func (h *httpControlClient) SetPassphrase(ctx context.Context, passphrase string) error {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(models.PassphraseRequest{Passphrase: passphrase}).
		Post("/api/passphrase")
	if err != nil {
		return fmt.Errorf("set passphrase request: %w", err)
	}

	return mapHTTPError(resp)
}

// ResetPassphrase implements [ControlClient]. It sends DELETE /api/passphrase,
// wiping the daemon's session passphrase.
func (h *httpControlClient) ResetPassphrase(ctx context.Context) error {
	resp, err := h.client.R().
		SetContext(ctx).
		Delete("/api/passphrase")
	if err != nil {
		return fmt.Errorf("reset passphrase request: %w", err)
	}

	return mapHTTPError(resp)
}

// CheckPassphrase implements [ControlClient]. It GETs /api/passphrase and
// reports whether the daemon currently holds a session passphrase.
func (h *httpControlClient) CheckPassphrase(ctx context.Context) (bool, error) {
	var status models.PassphraseStatus

	resp, err := h.client.R().
		SetContext(ctx).
		SetResult(&status).
		Get("/api/passphrase")
	if err != nil {
		return false, fmt.Errorf("check passphrase request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return false, err
	}

	return status.HasPassphrase, nil
}

// PutKey implements [ControlClient]. It POSTs one armored key to
// POST /api/keys/{namespace} and returns the stored record including its
// display fingerprint.
func (h *httpControlClient) PutKey(ctx context.Context, namespace string, handle models.Identity, armoredKey string) (models.KeyResponse, error) {
	var result models.KeyResponse

	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(models.PutKeyRequest{Handle: handle, ArmoredKey: armoredKey}).
		SetResult(&result).
		Post(keysPath(namespace, ""))
	if err != nil {
		return models.KeyResponse{}, fmt.Errorf("put key request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.KeyResponse{}, err
	}

	return result, nil
}

// GetKey implements [ControlClient]. It GETs /api/keys/{namespace}/{handle}
// and returns the stored key record. Returns [ErrNotFound] (wrapped) when no
// key is stored for the handle.
func (h *httpControlClient) GetKey(ctx context.Context, namespace string, handle models.Identity) (models.KeyResponse, error) {
	var result models.KeyResponse

	resp, err := h.client.R().
		SetContext(ctx).
		SetResult(&result).
		Get(keysPath(namespace, handle))
	if err != nil {
		return models.KeyResponse{}, fmt.Errorf("get key request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.KeyResponse{}, err
	}

	return result, nil
}

// ListKeys implements [ControlClient]. It GETs /api/keys/{namespace} and
// returns the handle/fingerprint listing of that namespace.
func (h *httpControlClient) ListKeys(ctx context.Context, namespace string) ([]models.KeyListEntry, error) {
	var result models.KeyListResponse

	resp, err := h.client.R().
		SetContext(ctx).
		SetResult(&result).
		Get(keysPath(namespace, ""))
	if err != nil {
		return nil, fmt.Errorf("list keys request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	return result.Keys, nil
}

// DeleteKey implements [ControlClient]. It sends
// DELETE /api/keys/{namespace}/{handle}. Returns [ErrNotFound] (wrapped)
// when no key is stored for the handle.
func (h *httpControlClient) DeleteKey(ctx context.Context, namespace string, handle models.Identity) error {
	resp, err := h.client.R().
		SetContext(ctx).
		Delete(keysPath(namespace, handle))
	if err != nil {
		return fmt.Errorf("delete key request: %w", err)
	}

	return mapHTTPError(resp)
}

// Version implements [ControlClient]. It GETs /api/version and returns the
// daemon's build version string.
func (h *httpControlClient) Version(ctx context.Context) (string, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		Get("/api/version")
	if err != nil {
		return "", fmt.Errorf("version request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", err
	}

	return strings.TrimSpace(string(resp.Body())), nil
}

func keysPath(namespace string, handle models.Identity) string {
	path := "/api/keys/" + url.PathEscape(namespace)
	if handle != "" {
		path += "/" + url.PathEscape(string(handle))
	}
	return path
}
