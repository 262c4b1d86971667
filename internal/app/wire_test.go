package app_test

import (
	"errors"
	"testing"

	"envseal/internal/app"
	"envseal/internal/domain"
)

func TestNewWireDefaults(t *testing.T) {
	w, err := app.NewWire(app.Config{ExchangeURL: "https://example.com/exchange"})
	if err != nil {
		t.Fatalf("NewWire: %v", err)
	}
	if w.Suite.CurveName() != domain.CurveP256 {
		t.Fatalf("want default curve P-256, got %s", w.Suite.CurveName())
	}
	if w.Suite.AEADName() != domain.AEADAESGCM {
		t.Fatalf("want default cipher aes-256-gcm, got %s", w.Suite.AEADName())
	}
	if w.Channel == nil || w.Exchange == nil || w.HTTP == nil {
		t.Fatal("wire left dependencies nil")
	}
}

func TestNewWireUnsupportedSuite(t *testing.T) {
	_, err := app.NewWire(app.Config{ExchangeURL: "https://example.com/exchange", Curve: "brainpoolP512t1"})
	if !errors.Is(err, domain.ErrEnvironmentUnsupported) {
		t.Fatalf("want ErrEnvironmentUnsupported, got %v", err)
	}
}
