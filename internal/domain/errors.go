package domain

import "errors"

var (
	// ErrEnvironmentUnsupported means the configured cipher suite names a
	// curve or AEAD this build cannot provide. Fatal; retrying cannot help.
	ErrEnvironmentUnsupported = errors.New("required cryptographic primitives unavailable")

	// ErrMalformedExchangeResponse means the exchange response parsed but is
	// missing backend_public_key or session_id after normalization. The
	// attempt failed; the cache is left untouched.
	ErrMalformedExchangeResponse = errors.New("key exchange response missing required fields")

	// ErrEncryptionFailed wraps any primitive failure while sealing a
	// payload. Callers should Clear the channel before retrying, since a
	// stale cached session is a plausible cause.
	ErrEncryptionFailed = errors.New("payload encryption failed")
)
