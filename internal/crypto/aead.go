// SPDX-License-Identifier: Apache-2.0

package crypto

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"fmt"
	"strings"
)

const (
	// padWidth is the fixed rune count short plaintexts are padded to
	// before symmetric encryption, hiding the true message length.
	padWidth = 270
	padChar  = ' '

	nonceSize = 12
)

// DeriveSymmetricKey implements [Engine]. The key is the SHA-256 digest of
// the grouped fingerprint string, so both directions of a conversation
// derive the same key from the author's public key alone.
func (e *pgpEngine) DeriveSymmetricKey(fingerprint string) []byte {
	sum := sha256.Sum256([]byte(fingerprint))
	return sum[:]
}

// EncryptSymmetric implements [Engine]. Output is base64(nonce || ciphertext)
// with a fresh random nonce per call.
func (e *pgpEngine) EncryptSymmetric(text string, keyMaterial []byte) (string, error) {
	padded := padText(text)

	block, err := aes.NewCipher(keyMaterial)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrEncryptionFailed, err)
	}
	aead, err := cipher.NewGCM(block)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrEncryptionFailed, err)
	}

	nonce := make([]byte, nonceSize)
	if _, err := rand.Read(nonce); err != nil {
		return "", fmt.Errorf("%w: %v", ErrEncryptionFailed, err)
	}

	sealed := aead.Seal(nonce, nonce, []byte(padded), nil)
	return base64.StdEncoding.EncodeToString(sealed), nil
}

// DecryptSymmetric implements [Engine]. Trailing pad spaces are stripped,
// which also drops any trailing spaces the author typed; the padding scheme
// cannot tell them apart.
func (e *pgpEngine) DecryptSymmetric(encoded string, keyMaterial []byte) (string, error) {
	raw, err := base64.StdEncoding.DecodeString(strings.TrimSpace(encoded))
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrDecryptionFailed, err)
	}
	if len(raw) < nonceSize {
		return "", fmt.Errorf("%w: payload too short", ErrDecryptionFailed)
	}

	block, err := aes.NewCipher(keyMaterial)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrDecryptionFailed, err)
	}
	aead, err := cipher.NewGCM(block)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrDecryptionFailed, err)
	}

	plaintext, err := aead.Open(nil, raw[:nonceSize], raw[nonceSize:], nil)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrDecryptionFailed, err)
	}

	return strings.TrimRight(string(plaintext), string(padChar)), nil
}

// padText right-pads text with spaces up to padWidth runes. Text at or
// beyond padWidth passes through unchanged.
func padText(text string) string {
	n := len([]rune(text))
	if n >= padWidth {
		return text
	}
	return text + strings.Repeat(string(padChar), padWidth-n)
}
