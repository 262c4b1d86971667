package exchange

import "envseal/internal/domain"

// exchangeFields are the fields the endpoint returns, wherever it puts them.
// expires_in, algorithm, curve and key_size are optional hints.
type exchangeFields struct {
	BackendPublicKey string `json:"backend_public_key"`
	SessionID        string `json:"session_id"`
	ExpiresIn        int64  `json:"expires_in"`
	Algorithm        string `json:"algorithm"`
	Curve            string `json:"curve"`
	KeySize          int    `json:"key_size"`
}

// wireExchangeResponse accepts both response shapes: fields at the top
// level, or nested under "data" (older deployments).
type wireExchangeResponse struct {
	exchangeFields
	Data *exchangeFields `json:"data"`
}

// normalize picks whichever shape was sent and enforces the required
// fields. A response missing backend_public_key or session_id fails the
// whole attempt; there is no partial result.
func (w wireExchangeResponse) normalize() (exchangeFields, error) {
	fields := w.exchangeFields
	if w.Data != nil {
		fields = *w.Data
	}
	if fields.BackendPublicKey == "" || fields.SessionID == "" {
		return exchangeFields{}, domain.ErrMalformedExchangeResponse
	}
	return fields, nil
}
