package billing

import (
	"context"
	"errors"
	"strings"

	"github.com/stripe/stripe-go/v83"
	"github.com/stripe/stripe-go/v83/paymentintent"
	"github.com/stripe/stripe-go/v83/webhook"
)

// Stripe's minimum charge for most currencies.
const minimumAmountCents = 50

// StripeProvider implements Provider using the Stripe API.
type StripeProvider struct {
	config StripeConfig
}

// StripeConfig contains configuration for the Stripe provider.
type StripeConfig struct {
	// APIKey is the Stripe secret key (sk_test_... or sk_live_...)
	APIKey string

	// WebhookSecret is the webhook signing secret (whsec_...)
	WebhookSecret string
}

// Validate checks that required configuration is present.
func (c *StripeConfig) Validate() error {
	if c.APIKey == "" {
		return ErrInvalidAPIKey
	}
	if c.WebhookSecret == "" {
		return errors.New("stripe: webhook secret is required")
	}
	return nil
}

// IsTestMode returns true if using test mode API keys.
func (c *StripeConfig) IsTestMode() bool {
	return strings.HasPrefix(c.APIKey, "sk_test_")
}

// NewStripeProvider creates a new Stripe billing provider.
func NewStripeProvider(config StripeConfig) (*StripeProvider, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}

	stripe.Key = config.APIKey

	return &StripeProvider{config: config}, nil
}

// CreatePaymentIntent creates a payment intent with automatic payment
// methods enabled, so the hosted widget can offer whatever methods the
// account supports.
func (s *StripeProvider) CreatePaymentIntent(ctx context.Context, params CreatePaymentIntentParams) (*PaymentIntent, error) {
	if params.AmountCents < minimumAmountCents {
		return nil, ErrAmountTooSmall
	}

	currency := strings.ToLower(params.Currency)
	if currency == "" {
		currency = "gbp"
	}

	intentParams := &stripe.PaymentIntentParams{
		Amount:   stripe.Int64(params.AmountCents),
		Currency: stripe.String(currency),
		AutomaticPaymentMethods: &stripe.PaymentIntentAutomaticPaymentMethodsParams{
			Enabled: stripe.Bool(true),
		},
	}
	intentParams.Context = ctx
	for key, value := range params.Metadata {
		intentParams.AddMetadata(key, value)
	}

	intent, err := paymentintent.New(intentParams)
	if err != nil {
		return nil, err
	}

	return fromStripeIntent(intent), nil
}

// GetPaymentIntent retrieves an existing payment intent.
func (s *StripeProvider) GetPaymentIntent(ctx context.Context, paymentIntentID string) (*PaymentIntent, error) {
	params := &stripe.PaymentIntentParams{}
	params.Context = ctx

	intent, err := paymentintent.Get(paymentIntentID, params)
	if err != nil {
		var stripeErr *stripe.Error
		if errors.As(err, &stripeErr) && stripeErr.HTTPStatusCode == 404 {
			return nil, ErrPaymentIntentNotFound
		}
		return nil, err
	}

	return fromStripeIntent(intent), nil
}

// VerifyWebhookSignature verifies a Stripe webhook signature.
func (s *StripeProvider) VerifyWebhookSignature(payload []byte, signature string, secret string) error {
	if _, err := webhook.ConstructEvent(payload, signature, secret); err != nil {
		return ErrInvalidWebhookSignature
	}
	return nil
}

func fromStripeIntent(intent *stripe.PaymentIntent) *PaymentIntent {
	pi := &PaymentIntent{
		ID:           intent.ID,
		ClientSecret: intent.ClientSecret,
		AmountCents:  intent.Amount,
		Currency:     string(intent.Currency),
		Status:       string(intent.Status),
		ReceiptEmail: intent.ReceiptEmail,
		Metadata:     intent.Metadata,
	}

	if intent.Shipping != nil {
		shipping := &ShippingDetails{
			Name:  intent.Shipping.Name,
			Phone: intent.Shipping.Phone,
		}
		if intent.Shipping.Address != nil {
			shipping.Line1 = intent.Shipping.Address.Line1
			shipping.Line2 = intent.Shipping.Address.Line2
			shipping.City = intent.Shipping.Address.City
			shipping.State = intent.Shipping.Address.State
			shipping.PostalCode = intent.Shipping.Address.PostalCode
			shipping.Country = intent.Shipping.Address.Country
		}
		pi.Shipping = shipping
	}

	return pi
}
