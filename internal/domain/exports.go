package domain

import (
	interfaces "envseal/internal/domain/interfaces"
	types "envseal/internal/domain/types"
)

// Type aliases expose domain types from the types subpackage for compact imports.
type (
	SessionID      = types.SessionID
	Fingerprint    = types.Fingerprint
	CurveName      = types.CurveName
	AEADName       = types.AEADName
	ExchangeResult = types.ExchangeResult
	Session        = types.Session
	Envelope       = types.Envelope
)

// Curve and cipher name constants re-exported for compact imports.
const (
	CurveP256   = types.CurveP256
	CurveP384   = types.CurveP384
	CurveX25519 = types.CurveX25519

	AEADAESGCM           = types.AEADAESGCM
	AEADChaCha20Poly1305 = types.AEADChaCha20Poly1305
)

// Interface aliases expose domain interfaces from the interfaces subpackage.
type (
	ExchangeClient = interfaces.ExchangeClient
	ChannelService = interfaces.ChannelService
)
