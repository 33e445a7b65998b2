package workers

import (
	"sync"

	"github.com/eddieoz/openxrypt/internal/scanner"
	"github.com/eddieoz/openxrypt/models"
)

// Result is the outcome of one background scan.
type Result struct {
	Snapshot models.PageSnapshot
	Stats    scanner.Stats
}

// Results keeps the latest background scan outcome per host. The browser
// surface polls it after submitting a mutation notification; only the
// newest capture of a page matters, so older results are overwritten.
type Results struct {
	mu     sync.RWMutex
	byHost map[string]Result
}

func NewResults() *Results {
	return &Results{byHost: make(map[string]Result)}
}

// Sink returns a sink that stores every patched snapshot by host.
func (r *Results) Sink() Sink {
	return func(snap models.PageSnapshot, stats scanner.Stats) {
		r.mu.Lock()
		r.byHost[snap.Host] = Result{Snapshot: snap, Stats: stats}
		r.mu.Unlock()
	}
}

// Latest returns the most recent scan result for host.
func (r *Results) Latest(host string) (Result, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result, ok := r.byHost[host]
	return result, ok
}
