package ports

import "context"

// Contract for brokering payment-intent creation with the external
// payment processor.
type PaymentGateway interface {
	// Create a payment intent for amount (smallest currency unit) and
	// return the processor's client secret. An empty currency means USD.
	CreatePaymentIntent(ctx context.Context, amount int64, currency string) (string, error)
}
