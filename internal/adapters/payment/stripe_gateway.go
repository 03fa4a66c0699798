package payment

import (
	"context"
	"errors"
	"fmt"

	"parcel-delivery-service/internal/platform/obs"

	"github.com/stripe/stripe-go/v79"
	"github.com/stripe/stripe-go/v79/paymentintent"
)

// StripeGateway implements PaymentGateway against the Stripe API.
//
// Intents are created without an idempotency key, so a retried client call
// creates a fresh intent each time. The SDK's own transport retries are the
// only retries in play.
type StripeGateway struct {
	client *paymentintent.Client
}

func NewStripeGateway(secretKey string) (*StripeGateway, error) {
	if secretKey == "" {
		return nil, errors.New("stripe secret key is empty")
	}

	return NewStripeGatewayWithBackend(secretKey, stripe.GetBackend(stripe.APIBackend)), nil
}

// NewStripeGatewayWithBackend lets callers substitute the API backend;
// tests point it at a local httptest server.
func NewStripeGatewayWithBackend(secretKey string, backend stripe.Backend) *StripeGateway {
	return &StripeGateway{
		client: &paymentintent.Client{B: backend, Key: secretKey},
	}
}

// CreatePaymentIntent creates a card payment intent for amount in the
// smallest currency unit and returns its client secret.
func (g *StripeGateway) CreatePaymentIntent(ctx context.Context, amount int64, currency string) (_ string, err error) {
	defer obs.Time(ctx, "stripe.createPaymentIntent")(&err)

	if currency == "" {
		currency = "usd"
	}

	params := &stripe.PaymentIntentParams{
		Amount:             stripe.Int64(amount),
		Currency:           stripe.String(currency),
		PaymentMethodTypes: stripe.StringSlice([]string{"card"}),
	}
	params.Context = ctx

	pi, err := g.client.New(params)
	if err != nil {
		return "", fmt.Errorf("create payment intent: %w", err)
	}

	return pi.ClientSecret, nil
}
