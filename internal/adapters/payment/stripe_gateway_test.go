package payment

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stripe/stripe-go/v79"
)

func newTestBackend(t *testing.T, handler http.HandlerFunc) stripe.Backend {
	t.Helper()

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	return stripe.GetBackendWithConfig(stripe.APIBackend, &stripe.BackendConfig{
		URL:               stripe.String(srv.URL),
		MaxNetworkRetries: stripe.Int64(0),
		LeveledLogger:     &stripe.LeveledLogger{Level: stripe.LevelError},
	})
}

func TestStripeGatewayCreatePaymentIntent(t *testing.T) {
	var gotPath string

	backend := newTestBackend(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path

		if err := r.ParseForm(); err != nil {
			t.Fatalf("parse form: %v", err)
		}
		if got := r.PostForm.Get("amount"); got != "500" {
			t.Errorf("amount = %q, want 500", got)
		}
		if got := r.PostForm.Get("currency"); got != "usd" {
			t.Errorf("currency = %q, want usd", got)
		}

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id":"pi_123","client_secret":"pi_123_secret_abc","status":"requires_payment_method"}`))
	})

	g := NewStripeGatewayWithBackend("sk_test_123", backend)

	secret, err := g.CreatePaymentIntent(context.Background(), 500, "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if secret != "pi_123_secret_abc" {
		t.Fatalf("client secret = %q, want pi_123_secret_abc", secret)
	}
	if gotPath != "/v1/payment_intents" {
		t.Fatalf("path = %q, want /v1/payment_intents", gotPath)
	}
}

func TestStripeGatewayProcessorError(t *testing.T) {
	backend := newTestBackend(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusPaymentRequired)
		_, _ = w.Write([]byte(`{"error":{"type":"card_error","message":"Your card was declined."}}`))
	})

	g := NewStripeGatewayWithBackend("sk_test_123", backend)

	_, err := g.CreatePaymentIntent(context.Background(), 500, "usd")
	if err == nil {
		t.Fatal("expected an error from the processor")
	}

	var stripeErr *stripe.Error
	if !errors.As(err, &stripeErr) {
		t.Fatalf("error %v is not a *stripe.Error", err)
	}
}

func TestNewStripeGatewayRequiresKey(t *testing.T) {
	if _, err := NewStripeGateway(""); err == nil {
		t.Fatal("expected an error for an empty secret key")
	}
}
