package exchange_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"github.com/jarcoal/httpmock"

	"envseal/internal/crypto"
	"envseal/internal/domain"
	"envseal/internal/exchange"
)

const endpoint = "https://console.example.com/api/security/key-exchange"

// backendKeyB64 is what a server would send: base64 of SPKI DER. The client
// only decodes the base64 here; parsing the DER is the suite's job.
const backendKeyB64 = "c3BraS1kZXItYnl0ZXM="

func newMockedClient(t *testing.T) *exchange.Client {
	t.Helper()
	httpClient := &http.Client{}
	httpmock.ActivateNonDefault(httpClient)
	t.Cleanup(httpmock.DeactivateAndReset)
	return exchange.NewClient(endpoint, httpClient)
}

func TestExchangeKeysFlatResponse(t *testing.T) {
	c := newMockedClient(t)
	httpmock.RegisterResponder(http.MethodPost, endpoint,
		httpmock.NewJsonResponderOrPanic(http.StatusOK, map[string]any{
			"backend_public_key": backendKeyB64,
			"session_id":         "sess-1",
			"expires_in":         3600,
			"algorithm":          "aes-256-gcm",
			"curve":              "P-256",
			"key_size":           256,
		}))

	result, err := c.ExchangeKeys(context.Background(), []byte("frontend-der"))
	if err != nil {
		t.Fatalf("ExchangeKeys: %v", err)
	}
	if result.SessionID != "sess-1" {
		t.Fatalf("want session sess-1, got %q", result.SessionID)
	}
	if string(result.BackendPublicKey) != "spki-der-bytes" {
		t.Fatalf("backend key not decoded: %q", result.BackendPublicKey)
	}
	if result.ExpiresIn != 3600 || result.Algorithm != "aes-256-gcm" || result.Curve != "P-256" || result.KeySize != 256 {
		t.Fatalf("hints not carried through: %+v", result)
	}
}

func TestExchangeKeysNestedResponse(t *testing.T) {
	c := newMockedClient(t)
	httpmock.RegisterResponder(http.MethodPost, endpoint,
		httpmock.NewJsonResponderOrPanic(http.StatusOK, map[string]any{
			"data": map[string]any{
				"backend_public_key": backendKeyB64,
				"session_id":         "sess-nested",
			},
		}))

	result, err := c.ExchangeKeys(context.Background(), []byte("frontend-der"))
	if err != nil {
		t.Fatalf("ExchangeKeys: %v", err)
	}
	if result.SessionID != "sess-nested" {
		t.Fatalf("want session sess-nested, got %q", result.SessionID)
	}
}

func TestExchangeKeysSendsEncodedKey(t *testing.T) {
	c := newMockedClient(t)
	httpmock.RegisterResponder(http.MethodPost, endpoint,
		func(r *http.Request) (*http.Response, error) {
			if ct := r.Header.Get("Content-Type"); ct != "application/json" {
				t.Fatalf("want application/json, got %q", ct)
			}
			var body struct {
				FrontendPublicKey string `json:"frontend_public_key"`
			}
			if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
				t.Fatalf("reading request body: %v", err)
			}
			if body.FrontendPublicKey != crypto.B64([]byte("frontend-der")) {
				t.Fatalf("frontend key not base64-encoded: %q", body.FrontendPublicKey)
			}
			return httpmock.NewJsonResponse(http.StatusOK, map[string]any{
				"backend_public_key": backendKeyB64,
				"session_id":         "sess-1",
			})
		})

	if _, err := c.ExchangeKeys(context.Background(), []byte("frontend-der")); err != nil {
		t.Fatalf("ExchangeKeys: %v", err)
	}
}

func TestExchangeKeysMalformed(t *testing.T) {
	cases := map[string]map[string]any{
		"missing session_id":         {"backend_public_key": backendKeyB64},
		"missing backend key":        {"session_id": "sess-1"},
		"empty nested":               {"data": map[string]any{}},
		"backend key not base64":     {"backend_public_key": "%%%", "session_id": "sess-1"},
		"nested missing session_id":  {"data": map[string]any{"backend_public_key": backendKeyB64}},
	}
	for name, body := range cases {
		t.Run(name, func(t *testing.T) {
			c := newMockedClient(t)
			httpmock.RegisterResponder(http.MethodPost, endpoint,
				httpmock.NewJsonResponderOrPanic(http.StatusOK, body))

			_, err := c.ExchangeKeys(context.Background(), []byte("frontend-der"))
			if !errors.Is(err, domain.ErrMalformedExchangeResponse) {
				t.Fatalf("want ErrMalformedExchangeResponse, got %v", err)
			}
		})
	}
}

func TestExchangeKeysStatusError(t *testing.T) {
	c := newMockedClient(t)
	httpmock.RegisterResponder(http.MethodPost, endpoint,
		httpmock.NewStringResponder(http.StatusServiceUnavailable, "maintenance window"))

	_, err := c.ExchangeKeys(context.Background(), []byte("frontend-der"))
	var se *exchange.StatusError
	if !errors.As(err, &se) {
		t.Fatalf("want *StatusError, got %v", err)
	}
	if se.Status != http.StatusServiceUnavailable || se.Body != "maintenance window" {
		t.Fatalf("status/body not carried: %+v", se)
	}
}

func TestIsRetryable(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want bool
	}{
		{"nil", nil, false},
		{"500", &exchange.StatusError{Status: 500}, true},
		{"503", &exchange.StatusError{Status: 503}, true},
		{"429", &exchange.StatusError{Status: 429}, true},
		{"408", &exchange.StatusError{Status: 408}, true},
		{"400", &exchange.StatusError{Status: 400}, false},
		{"401", &exchange.StatusError{Status: 401}, false},
		{"malformed", domain.ErrMalformedExchangeResponse, false},
	}
	for _, tc := range cases {
		if got := exchange.IsRetryable(tc.err); got != tc.want {
			t.Fatalf("%s: IsRetryable=%v, want %v", tc.name, got, tc.want)
		}
	}
}

func TestTransportErrorRetryable(t *testing.T) {
	// No mock transport: dial a port nothing listens on.
	c := exchange.NewClient("http://127.0.0.1:1/exchange", &http.Client{})
	_, err := c.ExchangeKeys(context.Background(), []byte("frontend-der"))
	if err == nil {
		t.Fatal("want transport error")
	}
	if !exchange.IsRetryable(err) {
		t.Fatalf("transport error should be retryable: %v", err)
	}
}
