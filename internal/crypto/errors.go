package crypto

import "errors"

// Sentinel errors returned by [Engine] operations. Callers match with
// [errors.Is]; none of them is ever fatal to the process.
var (
	// ErrEncryptionFailed is returned when a recipient key is malformed or
	// the cipher operation fails. The send operation is aborted and the
	// composer content left untouched.
	ErrEncryptionFailed = errors.New("encryption failed")

	// ErrDecryptionFailed is returned for a wrong passphrase, a corrupt
	// block, or a key mismatch. Deliberately indistinct: the scanner
	// substitutes one sentinel string and moves to the next block.
	ErrDecryptionFailed = errors.New("decryption failed")

	// ErrInvalidKey is returned when armored key text cannot be parsed as
	// an OpenPGP key at all.
	ErrInvalidKey = errors.New("invalid key")
)
