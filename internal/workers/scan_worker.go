// SPDX-License-Identifier: Apache-2.0

package workers

import (
	"context"

	"github.com/eddieoz/openxrypt/internal/logger"
	"github.com/eddieoz/openxrypt/internal/scanner"
	"github.com/eddieoz/openxrypt/internal/service"
	"github.com/eddieoz/openxrypt/models"
)

// Sink receives every patched snapshot a ScanWorker produces.
type Sink func(snap models.PageSnapshot, stats scanner.Stats)

// ScanWorker decrypts page snapshots in the background, one at a time.
// Snapshots are submitted from the control channel as the page mutates;
// the worker serialises them so at most one scan runs at any moment and
// a burst of mutations never piles up unbounded: when the queue is full
// the oldest pending snapshot is discarded, since a newer capture of the
// same page supersedes it.
type ScanWorker struct {
	ctx  context.Context
	scan service.ScanService
	sink Sink
	jobs chan models.PageSnapshot

	logger *logger.Logger
}

// NewScanWorker creates a ScanWorker holding at most buffer pending
// snapshots. A buffer below one is raised to one.
func NewScanWorker(ctx context.Context, scan service.ScanService, sink Sink, buffer int, logger *logger.Logger) *ScanWorker {
	if buffer < 1 {
		buffer = 1
	}

	return &ScanWorker{
		ctx:    ctx,
		scan:   scan,
		sink:   sink,
		jobs:   make(chan models.PageSnapshot, buffer),
		logger: logger,
	}
}

// Submit queues a snapshot for scanning without blocking. When the queue
// is full the oldest pending snapshot is dropped to make room. Returns
// false only if the snapshot could not be queued at all.
func (w *ScanWorker) Submit(snap models.PageSnapshot) bool {
	select {
	case w.jobs <- snap:
		return true
	default:
	}

	// Queue full: discard the stalest entry and try once more. Another
	// submitter may win the freed slot, in which case the snapshot is lost
	// and the caller may retry with a fresher capture.
	select {
	case dropped := <-w.jobs:
		w.logger.Debug().
			Str("func", "Submit").
			Str("host", dropped.Host).
			Msg("scan queue full, dropped stale snapshot")
	default:
	}

	select {
	case w.jobs <- snap:
		return true
	default:
		return false
	}
}

// Run implements [Worker]. It starts the scan loop in its own goroutine
// and returns immediately. The loop exits when the worker's context is
// cancelled.
func (w *ScanWorker) Run() {
	go w.loop()
}

func (w *ScanWorker) loop() {
	for {
		select {
		case <-w.ctx.Done():
			w.logger.Info().Str("func", "loop").Msg("scan worker stopped")
			return
		case snap := <-w.jobs:
			patched, stats := w.scan.Scan(w.ctx, snap)

			w.logger.Debug().
				Str("func", "loop").
				Str("host", snap.Host).
				Int("nodes", stats.Nodes).
				Int("replaced", stats.Replaced).
				Int("failed", stats.Failed).
				Msg("snapshot scanned")

			if w.sink != nil {
				w.sink(patched, stats)
			}
		}
	}
}
