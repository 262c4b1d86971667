package exchange

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"envseal/internal/crypto"
	"envseal/internal/domain"
)

// Client talks JSON over HTTP to a key-exchange endpoint. Endpoint is the
// full resolved URL; deployment-mode concerns (direct vs proxied) belong to
// whoever builds the Client, not here.
type Client struct {
	Endpoint string
	HTTP     *http.Client
}

// NewClient returns a Client for the given endpoint URL. A nil httpClient
// falls back to http.DefaultClient.
func NewClient(endpoint string, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &Client{Endpoint: endpoint, HTTP: httpClient}
}

type exchangeRequest struct {
	FrontendPublicKey string `json:"frontend_public_key"`
}

// ExchangeKeys submits the local public key (SPKI DER) and returns the
// normalized exchange result. The backend public key comes back as raw DER,
// already base64-decoded.
func (c *Client) ExchangeKeys(ctx context.Context, frontendPublicKey []byte) (domain.ExchangeResult, error) {
	buf := new(bytes.Buffer)
	if err := json.NewEncoder(buf).Encode(exchangeRequest{
		FrontendPublicKey: crypto.B64(frontendPublicKey),
	}); err != nil {
		return domain.ExchangeResult{}, err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.Endpoint, buf)
	if err != nil {
		return domain.ExchangeResult{}, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.HTTP.Do(req)
	if err != nil {
		return domain.ExchangeResult{}, fmt.Errorf("key exchange post %s: %w", c.Endpoint, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode/100 != 2 {
		body, _ := io.ReadAll(resp.Body)
		return domain.ExchangeResult{}, &StatusError{Status: resp.StatusCode, Body: string(body)}
	}

	var wire wireExchangeResponse
	if err := json.NewDecoder(resp.Body).Decode(&wire); err != nil {
		return domain.ExchangeResult{}, fmt.Errorf("decoding key exchange response: %w", err)
	}
	fields, err := wire.normalize()
	if err != nil {
		return domain.ExchangeResult{}, err
	}

	backendDER, err := base64.StdEncoding.DecodeString(fields.BackendPublicKey)
	if err != nil {
		return domain.ExchangeResult{}, fmt.Errorf("%w: backend_public_key is not base64", domain.ErrMalformedExchangeResponse)
	}

	return domain.ExchangeResult{
		BackendPublicKey: backendDER,
		SessionID:        domain.SessionID(fields.SessionID),
		ExpiresIn:        fields.ExpiresIn,
		Algorithm:        fields.Algorithm,
		Curve:            fields.Curve,
		KeySize:          fields.KeySize,
	}, nil
}

// Compile-time assertion that Client implements domain.ExchangeClient.
var _ domain.ExchangeClient = (*Client)(nil)
