// Package exchangetest provides an in-process key-exchange backend for
// tests. It completes the server half of the handshake and can open sealed
// envelopes, enabling true round-trip assertions without a real backend.
package exchangetest

import (
	"crypto/ecdh"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"envseal/internal/crypto"
	"envseal/internal/domain"
)

type serverSession struct {
	priv      *ecdh.PrivateKey
	clientPub *ecdh.PublicKey
}

// Server is a fake key-exchange backend. Knobs may be flipped between
// requests to exercise client failure paths.
type Server struct {
	*httptest.Server

	suite crypto.Suite

	// Nested makes responses use the data-wrapped shape.
	Nested bool
	// DropSessionID omits session_id from responses, making them malformed.
	DropSessionID bool
	// ExpiresIn, when non-zero, is included as the advisory expiry hint.
	ExpiresIn int64

	mu       sync.Mutex
	calls    int
	sessions map[domain.SessionID]serverSession
}

// New starts a fake backend speaking the given suite. It is closed via
// t.Cleanup.
func New(t *testing.T, suite crypto.Suite) *Server {
	t.Helper()
	s := &Server{
		suite:    suite,
		sessions: make(map[domain.SessionID]serverSession),
	}
	s.Server = httptest.NewServer(http.HandlerFunc(s.handle))
	t.Cleanup(s.Close)
	return s
}

// Calls returns how many exchange requests the server has handled.
func (s *Server) Calls() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.calls
}

func (s *Server) handle(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	s.calls++
	n := s.calls
	nested, drop, expires := s.Nested, s.DropSessionID, s.ExpiresIn
	s.mu.Unlock()

	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	var req struct {
		FrontendPublicKey string `json:"frontend_public_key"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "bad request body", http.StatusBadRequest)
		return
	}
	clientDER, err := base64.StdEncoding.DecodeString(req.FrontendPublicKey)
	if err != nil {
		http.Error(w, "frontend_public_key is not base64", http.StatusBadRequest)
		return
	}
	clientPub, err := s.suite.ParsePublicKey(clientDER)
	if err != nil {
		http.Error(w, "bad frontend public key", http.StatusBadRequest)
		return
	}

	priv, pub, err := s.suite.GenerateKeyPair()
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	serverDER, err := s.suite.MarshalPublicKey(pub)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	id := domain.SessionID(fmt.Sprintf("sess-%d", n))
	s.mu.Lock()
	s.sessions[id] = serverSession{priv: priv, clientPub: clientPub}
	s.mu.Unlock()

	fields := map[string]any{
		"backend_public_key": crypto.B64(serverDER),
		"session_id":         string(id),
	}
	if expires > 0 {
		fields["expires_in"] = expires
	}
	if drop {
		delete(fields, "session_id")
	}
	body := fields
	if nested {
		body = map[string]any{"data": fields}
	}
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(body)
}

// Open decrypts an envelope the way the real backend would: look up the
// session, recompute the shared secret, derive the key, split the nonce,
// and open the AEAD blob. It returns the plaintext payload bytes.
func (s *Server) Open(t *testing.T, env domain.Envelope) []byte {
	t.Helper()
	s.mu.Lock()
	sess, ok := s.sessions[env.SessionID]
	s.mu.Unlock()
	if !ok {
		t.Fatalf("unknown session %q", env.SessionID)
	}

	secret, err := s.suite.SharedSecret(sess.priv, sess.clientPub)
	if err != nil {
		t.Fatalf("SharedSecret: %v", err)
	}
	key, err := crypto.DeriveKey(secret)
	if err != nil {
		t.Fatalf("DeriveKey: %v", err)
	}
	aead, err := s.suite.NewAEAD(key)
	if err != nil {
		t.Fatalf("NewAEAD: %v", err)
	}

	blob, err := base64.StdEncoding.DecodeString(env.EncryptedData)
	if err != nil {
		t.Fatalf("encrypted_data is not base64: %v", err)
	}
	if len(blob) <= aead.NonceSize() {
		t.Fatalf("envelope too short: %d bytes", len(blob))
	}
	plaintext, err := aead.Open(nil, blob[:aead.NonceSize()], blob[aead.NonceSize():], nil)
	if err != nil {
		t.Fatalf("opening envelope: %v", err)
	}
	return plaintext
}
