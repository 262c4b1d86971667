package app

import (
	"net/http"

	"github.com/sirupsen/logrus"

	"envseal/internal/domain"
)

// Config holds runtime wiring options for building the client. ExchangeURL
// is the fully resolved key-exchange endpoint; whether it points at the
// server directly or through a same-origin proxy is the deployer's concern,
// decided before anything here runs.
type Config struct {
	ExchangeURL string            // key-exchange endpoint, e.g. https://console.example.com/api/security/key-exchange
	Curve       domain.CurveName  // defaults to P-256
	AEAD        domain.AEADName   // defaults to aes-256-gcm
	HTTP        *http.Client      // optional; defaults to http.DefaultClient
	Logger      *logrus.Logger    // optional; defaults to the standard logger
}
