package payment

import "context"

// MockGateway returns a canned client secret (or error) and records the
// last requested amount and currency.
type MockGateway struct {
	Secret string
	Err    error

	LastAmount   int64
	LastCurrency string
}

func (m *MockGateway) CreatePaymentIntent(ctx context.Context, amount int64, currency string) (string, error) {
	m.LastAmount = amount
	m.LastCurrency = currency

	if m.Err != nil {
		return "", m.Err
	}
	return m.Secret, nil
}
