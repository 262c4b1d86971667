// Package crypto exposes the minimal primitives used by envseal.
//
// Contents
//
//   - Cipher suites binding a key-agreement curve to an AEAD construction
//     (NewSuite, Suite.GenerateKeyPair, Suite.SharedSecret, Suite.NewAEAD)
//   - SPKI DER export/import of public keys for interoperable transport
//     (Suite.MarshalPublicKey, Suite.ParsePublicKey)
//   - HKDF-SHA256 expansion of a raw shared secret into an AEAD key bound
//     to this protocol (DeriveKey)
//   - Single-shot sealing with a fresh random nonce (Seal)
//   - Base64 and short public-key fingerprints for display/logging
//     (B64, Fingerprint)
//
// # Notes
//
// The suite is fixed by configuration; nothing is negotiated on the wire.
// Derived keys are encryption-only: this side never decrypts with them.
// Callers should treat shared secrets and derived keys as sensitive and
// wipe them after use.
package crypto
