// SPDX-License-Identifier: Apache-2.0

package models

// Control-channel status values, mirrored by every response envelope.
const (
	StatusSuccess = "success"
	StatusError   = "error"
)

// Encryption modes accepted by the encrypt verb.
const (
	// ModeDM asymmetrically encrypts for a DM conversation: unbounded-length
	// armored block, peer + group members + self as recipients.
	ModeDM = "dm"

	// ModePost symmetrically encrypts for a length-constrained public post:
	// fixed-width XRPT-delimited block keyed off the own fingerprint.
	ModePost = "post"
)

// ControlResponse is the uniform status envelope of the control channel,
// the same {status, message} shape the UI surface branches on.
type ControlResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

// EncryptRequest asks the core to encrypt the composer content of the given
// snapshot in place.
type EncryptRequest struct {
	// Mode selects the transport constraint: [ModeDM] or [ModePost].
	Mode string `json:"mode"`

	// Snapshot is the current page capture; its composer carries the
	// plaintext to encrypt.
	Snapshot PageSnapshot `json:"snapshot"`
}

// EncryptResponse returns the patched snapshot whose composer now holds the
// ciphertext. On error the snapshot is the input, untouched.
type EncryptResponse struct {
	ControlResponse
	Snapshot PageSnapshot `json:"snapshot"`
}

// ScanRequest asks the core to decrypt every recognized ciphertext block in
// the snapshot's candidate nodes.
type ScanRequest struct {
	Snapshot PageSnapshot `json:"snapshot"`
}

// ScanResponse carries the patched snapshot and how many blocks changed.
// Replaced is zero when a re-scan finds nothing left to do.
type ScanResponse struct {
	ControlResponse
	Snapshot PageSnapshot `json:"snapshot"`
	Replaced int          `json:"replaced"`
}

// PassphraseRequest sets the session passphrase on the guard.
type PassphraseRequest struct {
	Passphrase string `json:"passphrase"`
}

// PassphraseStatus reports whether the guard currently holds a secret.
type PassphraseStatus struct {
	HasPassphrase bool `json:"has_passphrase"`
}

// PutKeyRequest stores one armored key for a handle.
type PutKeyRequest struct {
	Handle     Identity `json:"handle"`
	ArmoredKey string   `json:"armored_key"`
}

// KeyListEntry is one row of a keyring listing: handle plus display
// fingerprint, never the key material itself.
type KeyListEntry struct {
	Handle      Identity `json:"handle"`
	Fingerprint string   `json:"fingerprint"`
}

// KeyListResponse lists keyring entries of one namespace.
type KeyListResponse struct {
	ControlResponse
	Keys []KeyListEntry `json:"keys"`
}

// KeyResponse returns a single stored armored key (the "show key" action).
type KeyResponse struct {
	ControlResponse
	Handle      Identity `json:"handle"`
	ArmoredKey  string   `json:"armored_key"`
	Fingerprint string   `json:"fingerprint"`
}
