package types

import "crypto/ecdh"

// ExchangeResult is the server's half of the key exchange, normalized from
// the wire response. BackendPublicKey holds raw SPKI DER bytes, already
// base64-decoded. ExpiresIn, Algorithm, Curve and KeySize are advisory
// hints some servers include; they are surfaced but not enforced.
type ExchangeResult struct {
	BackendPublicKey []byte
	SessionID        SessionID
	ExpiresIn        int64
	Algorithm        string
	Curve            string
	KeySize          int
}

// Session pairs a local ephemeral key pair with the exchange result it was
// negotiated under. A session is either fully populated or absent; the
// private key never leaves the process.
type Session struct {
	LocalPrivate *ecdh.PrivateKey
	LocalPublic  *ecdh.PublicKey
	Exchange     ExchangeResult
	CreatedUTC   int64
}
