package billing

import "context"

// MockProvider is a test implementation of Provider.
type MockProvider struct {
	CreatePaymentIntentFunc    func(ctx context.Context, params CreatePaymentIntentParams) (*PaymentIntent, error)
	GetPaymentIntentFunc       func(ctx context.Context, paymentIntentID string) (*PaymentIntent, error)
	VerifyWebhookSignatureFunc func(payload []byte, signature string, secret string) error
}

// CreatePaymentIntent delegates to the configured function.
func (m *MockProvider) CreatePaymentIntent(ctx context.Context, params CreatePaymentIntentParams) (*PaymentIntent, error) {
	if m.CreatePaymentIntentFunc != nil {
		return m.CreatePaymentIntentFunc(ctx, params)
	}
	return &PaymentIntent{
		ID:           "pi_mock",
		ClientSecret: "pi_mock_secret",
		AmountCents:  params.AmountCents,
		Currency:     params.Currency,
		Status:       "requires_payment_method",
		Metadata:     params.Metadata,
	}, nil
}

// GetPaymentIntent delegates to the configured function.
func (m *MockProvider) GetPaymentIntent(ctx context.Context, paymentIntentID string) (*PaymentIntent, error) {
	if m.GetPaymentIntentFunc != nil {
		return m.GetPaymentIntentFunc(ctx, paymentIntentID)
	}
	return nil, ErrPaymentIntentNotFound
}

// VerifyWebhookSignature delegates to the configured function.
func (m *MockProvider) VerifyWebhookSignature(payload []byte, signature string, secret string) error {
	if m.VerifyWebhookSignatureFunc != nil {
		return m.VerifyWebhookSignatureFunc(payload, signature, secret)
	}
	return nil
}
