// SPDX-License-Identifier: Apache-2.0

package crypto

//go:generate mockgen -source=interfaces.go -destination=../mock/engine_mock.go -package=mock

// Engine performs all cryptographic operations of the core: the asymmetric
// (OpenPGP, multi-recipient) path used for DM blocks and the fixed-width
// symmetric (AES-256-GCM) path used for length-constrained posts.
//
// The engine is stateless. In particular it never caches an unlocked
// private key: every [Engine.DecryptArmored] call unlocks the key with the
// passphrase it was handed, so revoking the session passphrase immediately
// stops further decryption.
type Engine interface {
	// EncryptArmored encrypts one plaintext to every recipient key and
	// returns an ASCII-armored PGP MESSAGE block. A single malformed
	// recipient key fails the whole call with [ErrEncryptionFailed] —
	// the caller aborts the send rather than silently dropping a
	// recipient.
	EncryptArmored(plaintext []byte, recipientKeys []string) (string, error)

	// DecryptArmored unlocks armoredPrivateKey with passphrase and
	// decrypts the armored block. Wrong passphrase, corrupt block, and
	// key mismatch all surface as [ErrDecryptionFailed]; the error is a
	// value to branch on, never a reason to abort a page scan.
	DecryptArmored(armored string, armoredPrivateKey string, passphrase []byte) ([]byte, error)

	// DerivePublicKey extracts the armored public key from an armored
	// private key. Pure function, no storage access, no unlock needed.
	DerivePublicKey(armoredPrivateKey string) (string, error)

	// Fingerprint returns the key's canonical fingerprint formatted for
	// display and key derivation: hex, space-separated 4-character groups.
	Fingerprint(armoredKey string) (string, error)

	// EncryptSymmetric encrypts text under keyMaterial with AES-256-GCM.
	// Shorter plaintexts are padded with spaces to a fixed width of 270
	// characters before encryption so post lengths do not leak; input at
	// or above the width is encrypted unpadded (never truncated). Output
	// is base64(nonce || ciphertext) with a fresh 12-byte nonce per call.
	EncryptSymmetric(text string, keyMaterial []byte) (string, error)

	// DecryptSymmetric reverses EncryptSymmetric and strips the trailing
	// padding. Malformed input and tag mismatches surface as
	// [ErrDecryptionFailed].
	DecryptSymmetric(encoded string, keyMaterial []byte) (string, error)

	// DeriveSymmetricKey deterministically derives AES key material from
	// a display fingerprint (SHA-256 over the UTF-8 string). Both parties
	// derive the same key from the same public fingerprint without a key
	// exchange; this trades confidentiality for obfuscation and is a
	// deliberately weaker guarantee than the asymmetric path.
	DeriveSymmetricKey(fingerprint string) []byte
}
