package crypto

import (
	"crypto/ecdh"
	"crypto/ecdsa"
	"crypto/rand"
	"crypto/x509"
	"fmt"

	"envseal/internal/domain"
)

// Suite binds a named curve to an AEAD construction. Both ends must agree
// on the suite out of band; an unknown name fails construction rather than
// a later operation.
type Suite struct {
	curve     ecdh.Curve
	curveName domain.CurveName
	aeadName  domain.AEADName
}

// NewSuite resolves curve and cipher names into a usable suite. Unknown
// names fail with domain.ErrEnvironmentUnsupported.
func NewSuite(curve domain.CurveName, aead domain.AEADName) (Suite, error) {
	s := Suite{curveName: curve, aeadName: aead}
	switch curve {
	case domain.CurveP256:
		s.curve = ecdh.P256()
	case domain.CurveP384:
		s.curve = ecdh.P384()
	case domain.CurveX25519:
		s.curve = ecdh.X25519()
	default:
		return Suite{}, fmt.Errorf("%w: unknown curve %q", domain.ErrEnvironmentUnsupported, curve)
	}
	switch aead {
	case domain.AEADAESGCM, domain.AEADChaCha20Poly1305:
	default:
		return Suite{}, fmt.Errorf("%w: unknown cipher %q", domain.ErrEnvironmentUnsupported, aead)
	}
	return s, nil
}

// CurveName returns the configured curve name.
func (s Suite) CurveName() domain.CurveName { return s.curveName }

// AEADName returns the configured cipher name.
func (s Suite) AEADName() domain.AEADName { return s.aeadName }

// GenerateKeyPair returns a fresh ephemeral key pair on the suite's curve.
func (s Suite) GenerateKeyPair() (*ecdh.PrivateKey, *ecdh.PublicKey, error) {
	priv, err := s.curve.GenerateKey(rand.Reader)
	if err != nil {
		return nil, nil, fmt.Errorf("generating %s key pair: %w", s.curveName, err)
	}
	return priv, priv.PublicKey(), nil
}

// MarshalPublicKey exports pub as SPKI DER.
func (s Suite) MarshalPublicKey(pub *ecdh.PublicKey) ([]byte, error) {
	der, err := x509.MarshalPKIXPublicKey(pub)
	if err != nil {
		return nil, fmt.Errorf("encoding public key: %w", err)
	}
	return der, nil
}

// ParsePublicKey imports an SPKI DER public key and checks it lies on the
// suite's curve. NIST keys arrive as ECDSA keys and are converted; X25519
// keys parse directly.
func (s Suite) ParsePublicKey(der []byte) (*ecdh.PublicKey, error) {
	parsed, err := x509.ParsePKIXPublicKey(der)
	if err != nil {
		return nil, fmt.Errorf("decoding public key: %w", err)
	}
	var pub *ecdh.PublicKey
	switch k := parsed.(type) {
	case *ecdsa.PublicKey:
		pub, err = k.ECDH()
		if err != nil {
			return nil, fmt.Errorf("converting public key: %w", err)
		}
	case *ecdh.PublicKey:
		pub = k
	default:
		return nil, fmt.Errorf("public key is %T, not a key-agreement key", parsed)
	}
	if pub.Curve() != s.curve {
		return nil, fmt.Errorf("public key is not on curve %s", s.curveName)
	}
	return pub, nil
}

// SharedSecret computes the ECDH shared secret between priv and pub.
func (s Suite) SharedSecret(priv *ecdh.PrivateKey, pub *ecdh.PublicKey) ([]byte, error) {
	secret, err := priv.ECDH(pub)
	if err != nil {
		return nil, fmt.Errorf("computing shared secret: %w", err)
	}
	return secret, nil
}
