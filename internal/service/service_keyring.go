// SPDX-License-Identifier: Apache-2.0

package service

import (
	"context"
	"fmt"

	"github.com/eddieoz/openxrypt/internal/crypto"
	"github.com/eddieoz/openxrypt/internal/logger"
	"github.com/eddieoz/openxrypt/internal/store"
	"github.com/eddieoz/openxrypt/models"
)

type keyringService struct {
	keys   store.KeyStore
	engine crypto.Engine

	logger *logger.Logger
}

func NewKeyringService(keys store.KeyStore, engine crypto.Engine, logger *logger.Logger) KeyringService {
	return &keyringService{
		keys:   keys,
		engine: engine,
		logger: logger,
	}
}

func (k *keyringService) AddPublicKey(ctx context.Context, handle string, armoredKey string) (models.PublicKeyRecord, error) {
	log := logger.FromContext(ctx)

	fingerprint, err := k.engine.Fingerprint(armoredKey)
	if err != nil {
		log.Err(err).Str("func", "keyringService.AddPublicKey").Str("handle", handle).Msg("rejecting unparseable public key")
		return models.PublicKeyRecord{}, fmt.Errorf("%w: %v", ErrInvalidKeyProvided, err)
	}

	record := models.PublicKeyRecord{
		Handle:      models.Identity(handle),
		ArmoredKey:  armoredKey,
		Fingerprint: fingerprint,
	}
	if err = k.keys.PutPublicKey(ctx, record); err != nil {
		return models.PublicKeyRecord{}, err
	}

	return record, nil
}

func (k *keyringService) AddPrivateKey(ctx context.Context, handle string, armoredKey string) (models.PrivateKeyRecord, error) {
	log := logger.FromContext(ctx)

	publicKey, err := k.engine.DerivePublicKey(armoredKey)
	if err != nil {
		log.Err(err).Str("func", "keyringService.AddPrivateKey").Str("handle", handle).Msg("rejecting unparseable private key")
		return models.PrivateKeyRecord{}, fmt.Errorf("%w: %v", ErrInvalidKeyProvided, err)
	}

	fingerprint, err := k.engine.Fingerprint(publicKey)
	if err != nil {
		return models.PrivateKeyRecord{}, fmt.Errorf("%w: %v", ErrInvalidKeyProvided, err)
	}

	record := models.PrivateKeyRecord{
		Handle:      models.Identity(handle),
		ArmoredKey:  armoredKey,
		PublicKey:   publicKey,
		Fingerprint: fingerprint,
	}
	if err = k.keys.PutPrivateKey(ctx, record); err != nil {
		return models.PrivateKeyRecord{}, err
	}

	return record, nil
}

func (k *keyringService) GetPublicKey(ctx context.Context, handle string) (models.PublicKeyRecord, error) {
	return k.keys.GetPublicKey(ctx, handle)
}

func (k *keyringService) GetPrivateKey(ctx context.Context, handle string) (models.PrivateKeyRecord, error) {
	return k.keys.GetPrivateKey(ctx, handle)
}

func (k *keyringService) ListPublicKeys(ctx context.Context) ([]models.PublicKeyRecord, error) {
	return k.keys.ListPublicKeys(ctx)
}

func (k *keyringService) ListPrivateKeys(ctx context.Context) ([]models.PrivateKeyRecord, error) {
	return k.keys.ListPrivateKeys(ctx)
}

func (k *keyringService) DeletePublicKey(ctx context.Context, handle string) error {
	return k.keys.DeletePublicKey(ctx, handle)
}

func (k *keyringService) DeletePrivateKey(ctx context.Context, handle string) error {
	return k.keys.DeletePrivateKey(ctx, handle)
}

// RecipientKeys aborts when any recipient has no stored key: the peer in a
// one-to-one conversation, or any group member. A group message encrypted
// without one member's key would reach that member unreadable, so the user
// must import every missing key before sending.
func (k *keyringService) RecipientKeys(ctx context.Context, local models.Identity, peer models.Identity, members []models.Identity) ([]string, error) {
	log := logger.FromContext(ctx)

	var recipients []string

	if len(members) == 0 {
		peerRecord, err := k.keys.GetPublicKey(ctx, peer.String())
		if err != nil {
			return nil, err
		}
		recipients = append(recipients, peerRecord.ArmoredKey)
	} else {
		for _, member := range members {
			if member == local {
				continue
			}
			record, err := k.keys.GetPublicKey(ctx, member.String())
			if err != nil {
				log.Err(err).Str("func", "keyringService.RecipientKeys").Str("member", member.String()).Msg("group member has no stored key, aborting")
				return nil, fmt.Errorf("%w: group member %s", store.ErrKeyNotFound, member)
			}
			recipients = append(recipients, record.ArmoredKey)
		}
		if len(recipients) == 0 {
			return nil, fmt.Errorf("%w: no group member keys", store.ErrKeyNotFound)
		}
	}

	selfRecord, err := k.keys.GetPrivateKey(ctx, local.String())
	if err != nil {
		return nil, err
	}
	recipients = append(recipients, selfRecord.PublicKey)

	return recipients, nil
}
