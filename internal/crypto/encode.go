package crypto

import (
	"crypto/sha256"
	"encoding/base64"
	"encoding/hex"

	"envseal/internal/domain"
)

// B64 returns standard base64 encoding without newlines.
func B64(b []byte) string { return base64.StdEncoding.EncodeToString(b) }

// Fingerprint returns a short fingerprint of SPKI-encoded key bytes.
func Fingerprint(der []byte) domain.Fingerprint {
	sum := sha256.Sum256(der)
	return domain.Fingerprint(hex.EncodeToString(sum[:10]))
}
