package channel

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/singleflight"

	"envseal/internal/crypto"
	"envseal/internal/domain"
	"envseal/internal/util/memzero"
)

// Service negotiates and caches the secure channel and seals payloads.
//
// This service handles:
//   - Generating a fresh ephemeral key pair per negotiation attempt.
//   - Submitting the public key to the exchange endpoint and caching the
//     result together with the key pair, atomically.
//   - Deriving a per-call AEAD key and sealing caller payloads.
type Service struct {
	suite    crypto.Suite
	exchange domain.ExchangeClient
	log      logrus.FieldLogger

	group singleflight.Group

	mu      sync.Mutex
	session *domain.Session
}

// New constructs a channel Service from a validated suite and an exchange
// client. A nil logger falls back to the logrus standard logger.
func New(suite crypto.Suite, exchange domain.ExchangeClient, log logrus.FieldLogger) *Service {
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &Service{suite: suite, exchange: exchange, log: log}
}

// Init ensures a negotiated session is cached. Idempotent: with a cached
// session it returns immediately without touching the network. Concurrent
// callers share a single in-flight exchange, so the cache is only ever
// written with a key pair and exchange result from the same attempt.
func (s *Service) Init(ctx context.Context) error {
	if _, ok := s.Session(); ok {
		return nil
	}
	_, err, _ := s.group.Do("exchange", func() (any, error) {
		// A racing caller may have finished while we waited on the group.
		if sess, ok := s.Session(); ok {
			return sess, nil
		}
		sess, err := s.establish(ctx)
		if err != nil {
			return nil, err
		}
		s.mu.Lock()
		s.session = &sess
		s.mu.Unlock()
		return sess, nil
	})
	return err
}

// establish runs one full negotiation: fresh key pair, exchange round trip,
// session assembly. It does not touch the cache; failures leave no trace.
func (s *Service) establish(ctx context.Context) (domain.Session, error) {
	priv, pub, err := s.suite.GenerateKeyPair()
	if err != nil {
		return domain.Session{}, err
	}
	der, err := s.suite.MarshalPublicKey(pub)
	if err != nil {
		return domain.Session{}, err
	}
	result, err := s.exchange.ExchangeKeys(ctx, der)
	if err != nil {
		return domain.Session{}, err
	}
	s.log.WithFields(logrus.Fields{
		"session_id":  result.SessionID,
		"backend_key": crypto.Fingerprint(result.BackendPublicKey),
		"curve":       s.suite.CurveName(),
	}).Debug("secure channel established")

	return domain.Session{
		LocalPrivate: priv,
		LocalPublic:  pub,
		Exchange:     result,
		CreatedUTC:   time.Now().Unix(),
	}, nil
}

// EncryptPayload seals a JSON-serializable payload under the cached
// session, negotiating one first if needed. It returns either a complete
// envelope or an error, never partial output.
func (s *Service) EncryptPayload(ctx context.Context, payload any) (domain.Envelope, error) {
	if err := s.Init(ctx); err != nil {
		return domain.Envelope{}, err
	}
	sess, ok := s.Session()
	if !ok {
		// Only possible if Clear raced us between Init and here.
		return domain.Envelope{}, fmt.Errorf("%w: channel cleared during call", domain.ErrEncryptionFailed)
	}

	backendPub, err := s.suite.ParsePublicKey(sess.Exchange.BackendPublicKey)
	if err != nil {
		return domain.Envelope{}, fmt.Errorf("%w: %w", domain.ErrEncryptionFailed, err)
	}
	secret, err := s.suite.SharedSecret(sess.LocalPrivate, backendPub)
	if err != nil {
		return domain.Envelope{}, fmt.Errorf("%w: %w", domain.ErrEncryptionFailed, err)
	}
	defer memzero.Zero(secret)

	key, err := crypto.DeriveKey(secret)
	if err != nil {
		return domain.Envelope{}, fmt.Errorf("%w: %w", domain.ErrEncryptionFailed, err)
	}
	defer memzero.Zero(key)

	aead, err := s.suite.NewAEAD(key)
	if err != nil {
		return domain.Envelope{}, fmt.Errorf("%w: %w", domain.ErrEncryptionFailed, err)
	}
	plaintext, err := json.Marshal(payload)
	if err != nil {
		return domain.Envelope{}, fmt.Errorf("%w: serializing payload: %w", domain.ErrEncryptionFailed, err)
	}
	blob, err := crypto.Seal(aead, plaintext)
	memzero.Zero(plaintext)
	if err != nil {
		return domain.Envelope{}, fmt.Errorf("%w: %w", domain.ErrEncryptionFailed, err)
	}

	return domain.Envelope{
		EncryptedData: crypto.B64(blob),
		SessionID:     sess.Exchange.SessionID,
	}, nil
}

// Clear drops the cached session unconditionally. The next call
// renegotiates from scratch.
func (s *Service) Clear() {
	s.mu.Lock()
	s.session = nil
	s.mu.Unlock()
	s.log.Debug("secure channel cleared")
}

// Session returns a copy of the cached session, if one exists.
func (s *Service) Session() (domain.Session, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.session == nil {
		return domain.Session{}, false
	}
	return *s.session, true
}

// Compile-time assertion that Service implements domain.ChannelService.
var _ domain.ChannelService = (*Service)(nil)
