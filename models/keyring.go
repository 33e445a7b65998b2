// SPDX-License-Identifier: Apache-2.0

package models

import "time"

// PublicKeyRecord is a stored correspondent key: armored public key text
// keyed by the correspondent's platform identity. One record per known
// correspondent; created and deleted only by explicit user action, no expiry.
type PublicKeyRecord struct {
	// Handle is the correspondent's platform identity.
	Handle Identity `json:"handle"`

	// ArmoredKey is the ASCII-armored public key text.
	ArmoredKey string `json:"armored_key"`

	// Fingerprint is the display fingerprint of the key, formatted as
	// space-separated 4-character groups. Recomputable from ArmoredKey;
	// cached for list views.
	Fingerprint string `json:"fingerprint,omitempty"`

	// CreatedAt is when the record was first stored.
	CreatedAt time.Time `json:"created_at,omitzero"`
}

// PrivateKeyRecord is the local identity's own key pair: armored private key
// text keyed by the local identity. The store supports several records but
// only one is "self" at a time. The key material is protected at rest by its
// passphrase, not by the store.
type PrivateKeyRecord struct {
	// Handle is the local platform identity the key belongs to.
	Handle Identity `json:"handle"`

	// ArmoredKey is the ASCII-armored, passphrase-locked private key text.
	ArmoredKey string `json:"armored_key"`

	// PublicKey is the armored public key derived from ArmoredKey.
	// Recomputable; cached so fingerprint display needs no unlock.
	PublicKey string `json:"public_key,omitempty"`

	// Fingerprint is the display fingerprint of the derived public key.
	Fingerprint string `json:"fingerprint,omitempty"`

	// CreatedAt is when the record was first stored.
	CreatedAt time.Time `json:"created_at,omitzero"`
}

// TableName returns the keyring table holding public key records.
func (r PublicKeyRecord) TableName() string {
	return "public_keys"
}

// TableName returns the keyring table holding private key records.
func (r PrivateKeyRecord) TableName() string {
	return "private_keys"
}
