// SPDX-License-Identifier: Apache-2.0

package crypto

import (
	"fmt"
	"strings"

	"github.com/ProtonMail/gopenpgp/v3/crypto"
)

// pgpEngine is the gopenpgp-backed implementation of [Engine].
type pgpEngine struct {
	pgp *crypto.PGPHandle
}

// NewEngine constructs the production [Engine].
func NewEngine() Engine {
	return &pgpEngine{pgp: crypto.PGP()}
}

// EncryptArmored implements [Engine]. Every recipient key must parse; the
// message is encrypted once to the whole recipient set (peer, group
// members, and the sender's own key so the sender can read the sent
// message back later).
func (e *pgpEngine) EncryptArmored(plaintext []byte, recipientKeys []string) (string, error) {
	if len(recipientKeys) == 0 {
		return "", fmt.Errorf("%w: no recipient keys", ErrEncryptionFailed)
	}

	recipients, err := crypto.NewKeyRing(nil)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrEncryptionFailed, err)
	}
	for _, armored := range recipientKeys {
		key, err := crypto.NewKeyFromArmored(armored)
		if err != nil {
			return "", fmt.Errorf("%w: bad recipient key: %v", ErrEncryptionFailed, err)
		}
		if err := recipients.AddKey(key); err != nil {
			return "", fmt.Errorf("%w: %v", ErrEncryptionFailed, err)
		}
	}

	handle, err := e.pgp.Encryption().Recipients(recipients).New()
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrEncryptionFailed, err)
	}

	message, err := handle.Encrypt(plaintext)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrEncryptionFailed, err)
	}

	armored, err := message.Armor()
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrEncryptionFailed, err)
	}

	return armored, nil
}

// DecryptArmored implements [Engine]. The private key is parsed and
// unlocked here, inside the single call, and discarded on return.
func (e *pgpEngine) DecryptArmored(armored string, armoredPrivateKey string, passphrase []byte) ([]byte, error) {
	key, err := crypto.NewKeyFromArmored(armoredPrivateKey)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDecryptionFailed, err)
	}

	locked, err := key.IsLocked()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDecryptionFailed, err)
	}
	if locked {
		key, err = key.Unlock(passphrase)
		if err != nil {
			// Wrong passphrase lands here; same sentinel as a corrupt
			// block so the failure mode is not distinguishable from the
			// page.
			return nil, fmt.Errorf("%w: %v", ErrDecryptionFailed, err)
		}
	}
	defer key.ClearPrivateParams()

	keyring, err := crypto.NewKeyRing(key)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDecryptionFailed, err)
	}

	handle, err := e.pgp.Decryption().DecryptionKeys(keyring).New()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDecryptionFailed, err)
	}
	defer handle.ClearPrivateParams()

	result, err := handle.Decrypt([]byte(armored), crypto.Armor)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDecryptionFailed, err)
	}

	return result.Bytes(), nil
}

// DerivePublicKey implements [Engine].
func (e *pgpEngine) DerivePublicKey(armoredPrivateKey string) (string, error) {
	key, err := crypto.NewKeyFromArmored(armoredPrivateKey)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrInvalidKey, err)
	}
	if !key.IsPrivate() {
		return "", fmt.Errorf("%w: not a private key", ErrInvalidKey)
	}

	public, err := key.ToPublic()
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrInvalidKey, err)
	}

	armoredPublic, err := public.GetArmoredPublicKey()
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrInvalidKey, err)
	}

	return armoredPublic, nil
}

// Fingerprint implements [Engine]. The grouped form ("89ab cdef ...") is
// both the display format and the exact input of DeriveSymmetricKey, so the
// grouping is part of the wire contract.
func (e *pgpEngine) Fingerprint(armoredKey string) (string, error) {
	key, err := crypto.NewKeyFromArmored(armoredKey)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrInvalidKey, err)
	}

	return groupFingerprint(key.GetFingerprint()), nil
}

// groupFingerprint splits a hex fingerprint into space-separated 4-char
// groups.
func groupFingerprint(fingerprint string) string {
	var groups []string
	for len(fingerprint) > 4 {
		groups = append(groups, fingerprint[:4])
		fingerprint = fingerprint[4:]
	}
	if fingerprint != "" {
		groups = append(groups, fingerprint)
	}
	return strings.Join(groups, " ")
}
