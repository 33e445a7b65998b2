// SPDX-License-Identifier: Apache-2.0

// Package guard holds the ephemeral session passphrase that unlocks the
// local private key.
//
// The guard is pure in-memory state with a two-state lifecycle:
// Locked (no secret) and Unlocked (secret held). It never persists the
// secret, and it never caches an unlocked private key — every decryption
// attempt reads the secret fresh, so a Reset immediately stops further
// decryption even when a decrypt with the same key succeeded a moment
// earlier.
package guard

import (
	"errors"
	"sync"

	"github.com/awnumar/memguard"
)

// ErrPassphraseMissing is returned by [Guard.Secret] while the guard is
// Locked. Scanner callers map it to the no-passphrase sentinel string
// instead of aborting the page scan.
var ErrPassphraseMissing = errors.New("no session passphrase is set")

// Guard owns the session passphrase. Safe for concurrent use; the daemon
// holds exactly one instance.
//
// The secret lives in a memguard enclave: mlocked, canary-guarded memory
// that is wiped when replaced. It still exists in process memory while
// Unlocked — the guard narrows the window, it does not eliminate it.
type Guard struct {
	mu      sync.RWMutex
	enclave *memguard.Enclave
}

// New returns a Guard in the Locked state.
func New() *Guard {
	return &Guard{}
}

// Set stores secret, moving the guard to Unlocked. Setting while already
// Unlocked overwrites the previous secret; exactly one value is active at a
// time. Idempotent in the sense that repeated Sets simply replace.
func (g *Guard) Set(secret string) {
	g.mu.Lock()
	defer g.mu.Unlock()

	// NewEnclave wipes its input buffer, so the plaintext copy made here
	// does not outlive the call.
	g.enclave = memguard.NewEnclave([]byte(secret))
}

// Reset discards the secret, moving the guard to Locked from any state.
// Idempotent.
func (g *Guard) Reset() {
	g.mu.Lock()
	defer g.mu.Unlock()

	g.enclave = nil
}

// IsUnlocked reports whether a secret is currently held.
func (g *Guard) IsUnlocked() bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.enclave != nil
}

// Secret returns a copy of the passphrase, or [ErrPassphraseMissing] while
// Locked. Each call opens the enclave anew; callers must use the returned
// bytes for a single unlock attempt and not retain them.
func (g *Guard) Secret() ([]byte, error) {
	g.mu.RLock()
	enclave := g.enclave
	g.mu.RUnlock()

	if enclave == nil {
		return nil, ErrPassphraseMissing
	}

	buf, err := enclave.Open()
	if err != nil {
		return nil, err
	}
	defer buf.Destroy()

	secret := make([]byte, len(buf.Bytes()))
	copy(secret, buf.Bytes())
	return secret, nil
}
