package app

import (
	"net/http"

	"github.com/sirupsen/logrus"

	"envseal/internal/crypto"
	"envseal/internal/domain"
	"envseal/internal/exchange"
	channelsvc "envseal/internal/services/channel"
)

// Wire bundles the suite, client, and service for the CLI and for embedding.
type Wire struct {
	Suite    crypto.Suite
	Exchange domain.ExchangeClient
	Channel  domain.ChannelService
	HTTP     *http.Client
}

// NewWire constructs the dependency graph from cfg. An unsupported curve or
// cipher name surfaces domain.ErrEnvironmentUnsupported here, before any
// network traffic.
func NewWire(cfg Config) (*Wire, error) {
	curve := cfg.Curve
	if curve == "" {
		curve = domain.CurveP256
	}
	aead := cfg.AEAD
	if aead == "" {
		aead = domain.AEADAESGCM
	}
	suite, err := crypto.NewSuite(curve, aead)
	if err != nil {
		return nil, err
	}

	httpClient := cfg.HTTP
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	logger := cfg.Logger
	if logger == nil {
		logger = logrus.StandardLogger()
	}

	ec := exchange.NewClient(cfg.ExchangeURL, httpClient)
	ch := channelsvc.New(suite, ec, logger)

	return &Wire{
		Suite:    suite,
		Exchange: ec,
		Channel:  ch,
		HTTP:     httpClient,
	}, nil
}
