package types

// SessionID identifies a negotiated channel session on both ends.
type SessionID string

// String returns the string form of the session identifier.
func (id SessionID) String() string { return string(id) }

// Fingerprint is a short identifier for public keys presented to users.
type Fingerprint string

// String returns the string form of the fingerprint.
func (f Fingerprint) String() string { return string(f) }

// CurveName selects the key-agreement curve. Both ends must agree on the
// curve out of band; there is no negotiation on the wire.
type CurveName string

const (
	CurveP256   CurveName = "P-256"
	CurveP384   CurveName = "P-384"
	CurveX25519 CurveName = "X25519"
)

// String returns the string form of the curve name.
func (c CurveName) String() string { return string(c) }

// AEADName selects the authenticated cipher used to seal payloads.
type AEADName string

const (
	AEADAESGCM           AEADName = "aes-256-gcm"
	AEADChaCha20Poly1305 AEADName = "chacha20-poly1305"
)

// String returns the string form of the cipher name.
func (a AEADName) String() string { return string(a) }
