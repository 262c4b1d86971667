package crypto

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"fmt"

	"golang.org/x/crypto/chacha20poly1305"

	"envseal/internal/domain"
)

const (
	// KeyBytes is the AEAD key size. Both supported ciphers take 256 bits.
	KeyBytes = 32

	// NonceBytes is the nonce size. AES-GCM's standard nonce and
	// ChaCha20-Poly1305's are both 96 bits.
	NonceBytes = chacha20poly1305.NonceSize
)

// NewAEAD constructs the suite's AEAD over a KeyBytes-sized key.
func (s Suite) NewAEAD(key []byte) (cipher.AEAD, error) {
	switch s.aeadName {
	case domain.AEADAESGCM:
		block, err := aes.NewCipher(key)
		if err != nil {
			return nil, fmt.Errorf("creating AES cipher: %w", err)
		}
		return cipher.NewGCM(block)
	case domain.AEADChaCha20Poly1305:
		return chacha20poly1305.New(key)
	}
	return nil, fmt.Errorf("%w: unknown cipher %q", domain.ErrEnvironmentUnsupported, s.aeadName)
}

// Seal encrypts plaintext under a fresh random nonce and returns
// nonce || ciphertext+tag as one blob.
func Seal(aead cipher.AEAD, plaintext []byte) ([]byte, error) {
	nonce := make([]byte, aead.NonceSize())
	if _, err := rand.Read(nonce); err != nil {
		return nil, fmt.Errorf("generating nonce: %w", err)
	}
	return aead.Seal(nonce, nonce, plaintext, nil), nil
}
