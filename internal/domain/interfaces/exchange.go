package interfaces

import (
	"context"

	domaintypes "envseal/internal/domain/types"
)

// ExchangeClient is how we talk to the server's key-exchange endpoint.
// frontendPublicKey is the local public key as SPKI DER; the client encodes
// it for transport. Implementations must not retry internally.
type ExchangeClient interface {
	ExchangeKeys(
		ctx context.Context,
		frontendPublicKey []byte,
	) (domaintypes.ExchangeResult, error)
}
