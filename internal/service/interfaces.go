package service

import (
	"context"

	"github.com/eddieoz/openxrypt/internal/scanner"
	"github.com/eddieoz/openxrypt/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/mock_service.go -package=mock

// KeyringService manages stored key material and resolves the key sets
// encryption needs.
type KeyringService interface {
	// AddPublicKey validates and stores a correspondent's armored public
	// key under handle.
	AddPublicKey(ctx context.Context, handle string, armoredKey string) (models.PublicKeyRecord, error)

	// AddPrivateKey validates and stores the local identity's armored
	// private key, caching its derived public key and fingerprint.
	AddPrivateKey(ctx context.Context, handle string, armoredKey string) (models.PrivateKeyRecord, error)

	GetPublicKey(ctx context.Context, handle string) (models.PublicKeyRecord, error)
	GetPrivateKey(ctx context.Context, handle string) (models.PrivateKeyRecord, error)
	ListPublicKeys(ctx context.Context) ([]models.PublicKeyRecord, error)
	ListPrivateKeys(ctx context.Context) ([]models.PrivateKeyRecord, error)
	DeletePublicKey(ctx context.Context, handle string) error
	DeletePrivateKey(ctx context.Context, handle string) error

	// RecipientKeys collects the armored public keys a DM send encrypts
	// to: the peer, every group member with a stored key, and the local
	// identity's own derived public key so the sender can read the sent
	// message back.
	RecipientKeys(ctx context.Context, local models.Identity, peer models.Identity, members []models.Identity) ([]string, error)
}

// EncryptService turns composer plaintext into ciphertext written back
// into the snapshot.
type EncryptService interface {
	// EncryptForSend encrypts the composer text to the conversation's
	// recipient set as an armored block. On any failure the returned
	// snapshot is the input unchanged.
	EncryptForSend(ctx context.Context, snap models.PageSnapshot) (models.PageSnapshot, error)

	// EncryptForConstrainedPost encrypts the composer text symmetrically
	// under the local identity's own key fingerprint, for hosts that
	// bound message length.
	EncryptForConstrainedPost(ctx context.Context, snap models.PageSnapshot) (models.PageSnapshot, error)
}

// ScanService runs decryption passes for the control channel and the
// scan worker.
type ScanService interface {
	Scan(ctx context.Context, snap models.PageSnapshot) (models.PageSnapshot, scanner.Stats)
}
