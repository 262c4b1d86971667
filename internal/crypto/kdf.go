package crypto

import (
	"crypto/sha256"
	"fmt"
	"io"

	"golang.org/x/crypto/hkdf"
)

// KeyExchangeInfo is the HKDF info string binding derived keys to this
// protocol. Changing it breaks interoperability with the server.
const KeyExchangeInfo = "envseal key exchange v1"

// DeriveKey expands a raw ECDH shared secret into a 32-byte AEAD key using
// HKDF-SHA256 with an empty salt and the fixed protocol info string.
func DeriveKey(secret []byte) ([]byte, error) {
	key := make([]byte, KeyBytes)
	r := hkdf.New(sha256.New, secret, nil, []byte(KeyExchangeInfo))
	if _, err := io.ReadFull(r, key); err != nil {
		return nil, fmt.Errorf("deriving key: %w", err)
	}
	return key, nil
}
