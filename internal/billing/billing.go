package billing

import "context"

// Provider defines the interface for payment processing.
// The storefront only needs the hosted-widget flow: create an intent for the
// cart, retrieve it when the webhook fires, and verify webhook signatures.
type Provider interface {
	// CreatePaymentIntent creates a payment intent for a one-time charge.
	// Returns the intent with a client secret for frontend confirmation.
	CreatePaymentIntent(ctx context.Context, params CreatePaymentIntentParams) (*PaymentIntent, error)

	// GetPaymentIntent retrieves an existing payment intent, including its
	// shipping details for fulfillment order creation.
	GetPaymentIntent(ctx context.Context, paymentIntentID string) (*PaymentIntent, error)

	// VerifyWebhookSignature verifies that a webhook request is authentic.
	VerifyWebhookSignature(payload []byte, signature string, secret string) error
}

// CreatePaymentIntentParams contains parameters for creating a payment intent.
type CreatePaymentIntentParams struct {
	// AmountCents is the amount in smallest currency unit.
	AmountCents int64

	// Currency code (ISO 4217), lower case - e.g. "gbp", "usd".
	Currency string

	// Metadata rides along to the webhook. Checkout stores the cart lines
	// and the provider-items flag here.
	Metadata map[string]string
}

// PaymentIntent represents a payment intent.
type PaymentIntent struct {
	// ID is the provider's payment intent id (pi_...).
	ID string

	// ClientSecret is used by the hosted widget to confirm payment.
	ClientSecret string

	// AmountCents is the amount in smallest currency unit.
	AmountCents int64

	// Currency code.
	Currency string

	// Status: requires_payment_method, succeeded, etc.
	Status string

	// ReceiptEmail is the customer's email, when known.
	ReceiptEmail string

	// Metadata echoed back from creation.
	Metadata map[string]string

	// Shipping is the address collected by the payment widget, if any.
	Shipping *ShippingDetails
}

// ShippingDetails is the shipping block attached to a payment intent.
type ShippingDetails struct {
	Name       string
	Phone      string
	Line1      string
	Line2      string
	City       string
	State      string
	PostalCode string
	Country    string
}
