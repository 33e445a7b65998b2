// SPDX-License-Identifier: Apache-2.0

package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/eddieoz/openxrypt/internal/crypto"
	"github.com/eddieoz/openxrypt/internal/envelope"
	"github.com/eddieoz/openxrypt/internal/logger"
	"github.com/eddieoz/openxrypt/internal/platform"
	"github.com/eddieoz/openxrypt/internal/scanner"
	"github.com/eddieoz/openxrypt/models"
)

const zeroWidthJoiner = '‍'

// disallowedRuneFloor is the first codepoint of the emoji/symbol region
// the host's selection handling corrupts. Everything at or above it, plus
// the zero-width joiner, is rejected before a DM encrypt.
const disallowedRuneFloor = '⌚'

type encryptService struct {
	engine  crypto.Engine
	keyring KeyringService

	logger *logger.Logger
}

func NewEncryptService(engine crypto.Engine, keyring KeyringService, logger *logger.Logger) EncryptService {
	return &encryptService{
		engine:  engine,
		keyring: keyring,
		logger:  logger,
	}
}

func (e *encryptService) EncryptForSend(ctx context.Context, snap models.PageSnapshot) (models.PageSnapshot, error) {
	log := logger.FromContext(ctx)

	adapter, text, err := composerText(snap)
	if err != nil {
		return snap, err
	}
	if containsDisallowedRunes(text) {
		return snap, ErrDisallowedContent
	}

	local := adapter.LocalIdentity(snap)
	peer := adapter.PeerIdentity(snap)
	members := adapter.GroupMemberIdentities(snap)

	if local.IsUnknown() {
		return snap, fmt.Errorf("%w: local identity", ErrIdentityUnresolved)
	}
	if peer.IsUnknown() && len(members) == 0 {
		return snap, fmt.Errorf("%w: peer identity", ErrIdentityUnresolved)
	}

	recipients, err := e.keyring.RecipientKeys(ctx, local, peer, members)
	if err != nil {
		return snap, err
	}

	payload, err := envelope.Wrap(text)
	if err != nil {
		return snap, err
	}

	armored, err := e.engine.EncryptArmored(payload, recipients)
	if err != nil {
		log.Err(err).Str("func", "encryptService.EncryptForSend").Msg("encryption failed, composer left untouched")
		return snap, err
	}

	log.Info().
		Str("func", "encryptService.EncryptForSend").
		Str("peer", peer.String()).
		Int("recipients", len(recipients)).
		Msg("composer text encrypted")

	return writeComposer(snap, armored+"\n"+scanner.ProvenanceTag), nil
}

func (e *encryptService) EncryptForConstrainedPost(ctx context.Context, snap models.PageSnapshot) (models.PageSnapshot, error) {
	log := logger.FromContext(ctx)

	adapter, text, err := composerText(snap)
	if err != nil {
		return snap, err
	}
	if containsDisallowedRunes(text) {
		return snap, ErrDisallowedContent
	}

	local := adapter.LocalIdentity(snap)
	if local.IsUnknown() {
		return snap, fmt.Errorf("%w: local identity", ErrIdentityUnresolved)
	}

	record, err := e.keyring.GetPrivateKey(ctx, local.String())
	if err != nil {
		return snap, err
	}

	key := e.engine.DeriveSymmetricKey(record.Fingerprint)
	payload, err := e.engine.EncryptSymmetric(text, key)
	if err != nil {
		log.Err(err).Str("func", "encryptService.EncryptForConstrainedPost").Msg("encryption failed, composer left untouched")
		return snap, err
	}

	block := scanner.SymmetricDelimiter + "\n" + payload + "\n" + scanner.SymmetricDelimiter + "\n"
	return writeComposer(snap, block), nil
}

// composerText resolves the adapter and the composer's current text.
func composerText(snap models.PageSnapshot) (platform.Adapter, string, error) {
	adapter, ok := platform.Resolve(snap.Host)
	if !ok {
		return nil, "", fmt.Errorf("%w: %s", ErrUnsupportedHost, snap.Host)
	}

	composer := adapter.Composer(snap)
	if composer == nil {
		return nil, "", ErrNoComposer
	}

	text := composer.Text
	if strings.TrimSpace(text) == "" {
		return nil, "", ErrEmptyMessage
	}

	return adapter, text, nil
}

// writeComposer returns a copy of snap with the composer text replaced.
func writeComposer(snap models.PageSnapshot, text string) models.PageSnapshot {
	patched := snap.Clone()
	patched.Composer.Text = text
	return patched
}

func containsDisallowedRunes(text string) bool {
	for _, r := range text {
		if r == zeroWidthJoiner || r >= disallowedRuneFloor {
			return true
		}
	}
	return false
}
