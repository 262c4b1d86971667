// Package channel establishes the secure channel and seals payloads under it.
//
// # Overview
//
// The service negotiates an ephemeral shared secret with the server's
// key-exchange endpoint and caches the resulting session process-wide.
// Sealing a payload derives a fresh AEAD key from the cached material
// (ECDH, then HKDF-SHA256 with a fixed protocol info string), encrypts the
// JSON-serialized payload under a random 96-bit nonce, and hands back
// base64(nonce || ciphertext+tag) plus the session identifier.
//
// # Caching and concurrency
//
// The cached session is the only shared mutable state. It is written once
// per exchange under a mutex, fully populated or not at all; concurrent
// initializations are collapsed into a single in-flight exchange, so racing
// callers observe session material from the same negotiation. The cache
// never expires on its own; Clear forces renegotiation.
//
// # Errors
//
// Exchange transport and status failures propagate as-is and leave the
// cache untouched. Malformed exchange responses surface
// domain.ErrMalformedExchangeResponse. Primitive failures while sealing
// wrap domain.ErrEncryptionFailed; callers should Clear and retry from
// scratch, since a mismatched cached session is a plausible cause. No
// operation ever falls back to returning a payload unencrypted.
package channel
