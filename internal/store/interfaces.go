// SPDX-License-Identifier: Apache-2.0

// Package store persists the local keyring: contact public keys and the
// user's own private keys, both indexed by platform handle.
package store

import (
	"context"

	"github.com/eddieoz/openxrypt/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/mock_store.go -package=mock

// KeyStore is the persistence boundary for the keyring.
//
// Handles are stored verbatim, so "@alice" and "alice" are distinct
// entries. Put replaces an existing record for the same handle.
type KeyStore interface {
	PutPublicKey(ctx context.Context, record models.PublicKeyRecord) error
	GetPublicKey(ctx context.Context, handle string) (models.PublicKeyRecord, error)
	ListPublicKeys(ctx context.Context) ([]models.PublicKeyRecord, error)
	DeletePublicKey(ctx context.Context, handle string) error

	PutPrivateKey(ctx context.Context, record models.PrivateKeyRecord) error
	GetPrivateKey(ctx context.Context, handle string) (models.PrivateKeyRecord, error)
	ListPrivateKeys(ctx context.Context) ([]models.PrivateKeyRecord, error)
	DeletePrivateKey(ctx context.Context, handle string) error

	Close() error
}
