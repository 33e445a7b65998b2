// SPDX-License-Identifier: Apache-2.0

// Package http exposes the core over the localhost control channel: the
// browser surface and the popup client speak to the daemon through these
// routes.
package http

import (
	"github.com/eddieoz/openxrypt/internal/logger"
	"github.com/eddieoz/openxrypt/internal/service"
	"github.com/eddieoz/openxrypt/internal/validators"
	"github.com/eddieoz/openxrypt/internal/workers"
	"github.com/eddieoz/openxrypt/models"
)

// SnapshotQueue accepts page snapshots for background scanning.
type SnapshotQueue interface {
	Submit(snap models.PageSnapshot) bool
}

type Handler struct {
	services  *service.Services
	queue     SnapshotQueue
	results   *workers.Results
	validator validators.Validator
	version   string

	logger *logger.Logger
}

// NewHandler builds the control-channel handler. queue and results may be
// nil, which disables the asynchronous notify/latest verbs.
func NewHandler(services *service.Services, queue SnapshotQueue, results *workers.Results, version string, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services:  services,
		queue:     queue,
		results:   results,
		validator: validators.NewControlRequestValidator(),
		version:   version,
		logger:    logger,
	}
}
