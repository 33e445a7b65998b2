// Package adapter is the client side of the control channel: the popup
// client calls the daemon's HTTP API through a ControlClient.
package adapter

import (
	"context"

	"github.com/eddieoz/openxrypt/models"
)

// Keyring namespaces addressed by the key operations.
const (
	NamespacePublic  = "public"
	NamespacePrivate = "private"
)

// ControlClient talks to the daemon's control channel.
type ControlClient interface {
	EncryptText(ctx context.Context, mode string, snap models.PageSnapshot) (models.PageSnapshot, error)
	Scan(ctx context.Context, snap models.PageSnapshot) (models.PageSnapshot, int, error)

	SetPassphrase(ctx context.Context, passphrase string) error
	ResetPassphrase(ctx context.Context) error
	CheckPassphrase(ctx context.Context) (bool, error)

	PutKey(ctx context.Context, namespace string, handle models.Identity, armoredKey string) (models.KeyResponse, error)
	GetKey(ctx context.Context, namespace string, handle models.Identity) (models.KeyResponse, error)
	ListKeys(ctx context.Context, namespace string) ([]models.KeyListEntry, error)
	DeleteKey(ctx context.Context, namespace string, handle models.Identity) error

	Version(ctx context.Context) (string, error)
}
