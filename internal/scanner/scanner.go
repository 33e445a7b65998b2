// SPDX-License-Identifier: Apache-2.0

// Package scanner finds ciphertext blocks embedded in page snapshots and
// replaces them with decrypted text. A scan is a pure reconciliation step:
// snapshot in, patched snapshot out, so re-running it over its own output
// changes nothing.
package scanner

import (
	"context"
	"errors"
	"regexp"
	"strings"

	"github.com/eddieoz/openxrypt/internal/crypto"
	"github.com/eddieoz/openxrypt/internal/envelope"
	"github.com/eddieoz/openxrypt/internal/guard"
	"github.com/eddieoz/openxrypt/internal/logger"
	"github.com/eddieoz/openxrypt/internal/platform"
	"github.com/eddieoz/openxrypt/internal/store"
	"github.com/eddieoz/openxrypt/models"
)

// ProvenanceTag marks armored blocks produced by this system, so foreign
// PGP traffic using the same armor format can be told apart.
const ProvenanceTag = "[ Encrypted with OpenXrypt ]"

// SymmetricDelimiter wraps constrained-post payloads on both sides.
const SymmetricDelimiter = "XRPT"

// User-visible substitution strings. Wrong passphrase, wrong key, and
// corrupt blocks all collapse into the same failure string on the page.
const (
	SentinelDecryptionFailed = "[Decryption Failed]"
	SentinelNoPassphrase     = "[Decryption Failed - No Passphrase]"
	SentinelUnsupported      = "[Unsupported Message Format]"
)

var (
	taggedArmorRe = regexp.MustCompile(`(?s)-----BEGIN PGP MESSAGE-----.*?-----END PGP MESSAGE-----\s*\[ Encrypted with OpenXrypt \]`)
	bareArmorRe   = regexp.MustCompile(`(?s)-----BEGIN PGP MESSAGE-----.*?-----END PGP MESSAGE-----`)
	symmetricRe   = regexp.MustCompile(`(?s)XRPT\s*(.*?)\s*XRPT`)
)

// notificationsPath is excluded from symmetric decryption: symmetric
// blocks surfacing in a notifications feed are out of conversational
// context.
const notificationsPath = "/notifications"

// Stats summarizes one scan pass.
type Stats struct {
	Nodes    int
	Replaced int
	Failed   int
}

// Scanner decrypts ciphertext blocks found in page snapshots.
type Scanner struct {
	engine crypto.Engine
	keys   store.KeyStore
	guard  *guard.Guard
	logger *logger.Logger
}

func New(engine crypto.Engine, keys store.KeyStore, g *guard.Guard, log *logger.Logger) *Scanner {
	return &Scanner{engine: engine, keys: keys, guard: g, logger: log}
}

// Scan walks the snapshot's candidate nodes, decrypts every recognized
// block, and returns a patched copy. Per-block failures substitute the
// failure string and the scan continues; the input snapshot is never
// mutated. Blocks are processed one at a time, in order.
func (s *Scanner) Scan(ctx context.Context, snap models.PageSnapshot) (models.PageSnapshot, Stats) {
	log := logger.FromContext(ctx)

	patched := snap.Clone()
	stats := Stats{}

	adapter, ok := platform.Resolve(snap.Host)
	if !ok {
		return patched, stats
	}

	local := adapter.LocalIdentity(snap)
	skipSymmetric := strings.HasPrefix(snap.Path, notificationsPath)

	candidates := adapter.MessageCandidates(snap)
	stats.Nodes = len(candidates)

	for i, node := range candidates {
		text := node.Text

		text = s.replaceAll(ctx, text, taggedArmorRe, func(block string) string {
			return s.decryptArmoredBlock(ctx, local, strings.TrimSuffix(strings.TrimSpace(block), ProvenanceTag), &stats)
		})
		text = s.replaceAll(ctx, text, bareArmorRe, func(block string) string {
			return s.decryptArmoredBlock(ctx, local, block, &stats)
		})
		if !skipSymmetric {
			text = s.replaceAll(ctx, text, symmetricRe, func(block string) string {
				return s.decryptSymmetricBlock(ctx, local, node.Author, block, &stats)
			})
		}

		if text != node.Text {
			patched.Nodes[i].Text = text
		}
	}

	if stats.Replaced > 0 || stats.Failed > 0 {
		log.Debug().
			Str("func", "Scanner.Scan").
			Str("host", snap.Host).
			Int("nodes", stats.Nodes).
			Int("replaced", stats.Replaced).
			Int("failed", stats.Failed).
			Msg("scan pass complete")
	}

	return patched, stats
}

// replaceAll substitutes every match of re in text, honoring context
// cancellation between blocks.
func (s *Scanner) replaceAll(ctx context.Context, text string, re *regexp.Regexp, decrypt func(string) string) string {
	return re.ReplaceAllStringFunc(text, func(block string) string {
		select {
		case <-ctx.Done():
			return block
		default:
		}
		return decrypt(block)
	})
}

// decryptArmoredBlock resolves the local private key and session
// passphrase and decrypts one armored block to its display text.
func (s *Scanner) decryptArmoredBlock(ctx context.Context, local models.Identity, armored string, stats *Stats) string {
	record, err := s.keys.GetPrivateKey(ctx, local.String())
	if err != nil {
		stats.Failed++
		return SentinelDecryptionFailed
	}

	passphrase, err := s.guard.Secret()
	if err != nil {
		stats.Failed++
		return SentinelNoPassphrase
	}

	plaintext, err := s.engine.DecryptArmored(armored, record.ArmoredKey, passphrase)
	if err != nil {
		stats.Failed++
		return SentinelDecryptionFailed
	}

	text, err := envelope.Unwrap(plaintext)
	if err != nil {
		stats.Failed++
		if errors.Is(err, envelope.ErrUnknownEvent) {
			return SentinelUnsupported
		}
		return SentinelDecryptionFailed
	}

	stats.Replaced++
	return text
}

// decryptSymmetricBlock derives the block key from the author's stored
// fingerprint, falling back to the local identity's own key fingerprint
// when the author is unknown.
func (s *Scanner) decryptSymmetricBlock(ctx context.Context, local models.Identity, author string, block string, stats *Stats) string {
	fingerprint, ok := s.resolveFingerprint(ctx, local, author)
	if !ok {
		stats.Failed++
		return SentinelDecryptionFailed
	}

	m := symmetricRe.FindStringSubmatch(block)
	if m == nil {
		stats.Failed++
		return SentinelDecryptionFailed
	}

	key := s.engine.DeriveSymmetricKey(fingerprint)
	text, err := s.engine.DecryptSymmetric(m[1], key)
	if err != nil {
		stats.Failed++
		return SentinelDecryptionFailed
	}

	stats.Replaced++
	return text
}

func (s *Scanner) resolveFingerprint(ctx context.Context, local models.Identity, author string) (string, bool) {
	if author != "" {
		if record, err := s.keys.GetPublicKey(ctx, author); err == nil {
			return record.Fingerprint, true
		}
	}

	record, err := s.keys.GetPrivateKey(ctx, local.String())
	if err != nil {
		return "", false
	}
	return record.Fingerprint, true
}
