package interfaces

import (
	"context"

	domaintypes "envseal/internal/domain/types"
)

// ChannelService establishes the secure channel and seals payloads under it.
type ChannelService interface {
	// Init ensures a negotiated session is cached, performing at most one
	// network exchange across concurrent callers. Idempotent.
	Init(ctx context.Context) error

	// EncryptPayload seals a JSON-serializable payload under the cached
	// session, initializing the channel first if needed.
	EncryptPayload(ctx context.Context, payload any) (domaintypes.Envelope, error)

	// Clear drops the cached session so the next call renegotiates.
	Clear()

	// Session returns a copy of the cached session, if one exists.
	Session() (domaintypes.Session, bool)
}
