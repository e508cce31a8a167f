package webhook

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tessvale/embla/internal/billing"
	"github.com/tessvale/embla/internal/printful"
)

type mockFulfillment struct {
	createOrderFunc func(ctx context.Context, intent *billing.PaymentIntent) (*printful.Order, error)
}

func (m *mockFulfillment) CreateOrderFromPayment(ctx context.Context, intent *billing.PaymentIntent) (*printful.Order, error) {
	if m.createOrderFunc != nil {
		return m.createOrderFunc(ctx, intent)
	}
	return nil, nil
}

func postWebhook(h *StripeHandler, body, signature string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/webhooks/stripe", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	if signature != "" {
		req.Header.Set("Stripe-Signature", signature)
	}
	rec := httptest.NewRecorder()
	h.HandleWebhook(rec, req)
	return rec
}

func succeededEvent(intentID string) string {
	return `{
		"id": "evt_1",
		"type": "payment_intent.succeeded",
		"data": {"object": {"id": "` + intentID + `", "status": "succeeded"}}
	}`
}

func TestWebhookMissingSignature(t *testing.T) {
	h := NewStripeHandler(&billing.MockProvider{}, &mockFulfillment{}, StripeWebhookConfig{WebhookSecret: "whsec_test"})

	rec := postWebhook(h, succeededEvent("pi_1"), "")

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestWebhookInvalidSignature(t *testing.T) {
	provider := &billing.MockProvider{
		VerifyWebhookSignatureFunc: func(payload []byte, signature, secret string) error {
			return errors.New("signature mismatch")
		},
	}
	h := NewStripeHandler(provider, &mockFulfillment{}, StripeWebhookConfig{WebhookSecret: "whsec_test"})

	rec := postWebhook(h, succeededEvent("pi_1"), "bad-sig")

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestWebhookPaymentSucceeded(t *testing.T) {
	var fetchedID string
	var fulfilledID string

	provider := &billing.MockProvider{
		GetPaymentIntentFunc: func(ctx context.Context, paymentIntentID string) (*billing.PaymentIntent, error) {
			fetchedID = paymentIntentID
			return &billing.PaymentIntent{ID: paymentIntentID, Status: "succeeded"}, nil
		},
	}
	fulfillment := &mockFulfillment{
		createOrderFunc: func(ctx context.Context, intent *billing.PaymentIntent) (*printful.Order, error) {
			fulfilledID = intent.ID
			return &printful.Order{ID: 42}, nil
		},
	}
	h := NewStripeHandler(provider, fulfillment, StripeWebhookConfig{WebhookSecret: "whsec_test"})

	rec := postWebhook(h, succeededEvent("pi_42"), "valid-sig")

	assert.Equal(t, http.StatusOK, rec.Code)
	// The intent is re-fetched before fulfillment: the event payload does
	// not carry shipping details.
	assert.Equal(t, "pi_42", fetchedID)
	assert.Equal(t, "pi_42", fulfilledID)

	var resp map[string]bool
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.True(t, resp["received"])
}

func TestWebhookAcknowledgesDownstreamFailures(t *testing.T) {
	tests := []struct {
		name        string
		provider    *billing.MockProvider
		fulfillment *mockFulfillment
	}{
		{
			name: "intent fetch fails",
			provider: &billing.MockProvider{
				GetPaymentIntentFunc: func(ctx context.Context, paymentIntentID string) (*billing.PaymentIntent, error) {
					return nil, errors.New("stripe api down")
				},
			},
			fulfillment: &mockFulfillment{},
		},
		{
			name: "fulfillment fails",
			provider: &billing.MockProvider{
				GetPaymentIntentFunc: func(ctx context.Context, paymentIntentID string) (*billing.PaymentIntent, error) {
					return &billing.PaymentIntent{ID: paymentIntentID}, nil
				},
			},
			fulfillment: &mockFulfillment{
				createOrderFunc: func(ctx context.Context, intent *billing.PaymentIntent) (*printful.Order, error) {
					return nil, errors.New("printful rejected order")
				},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := NewStripeHandler(tt.provider, tt.fulfillment, StripeWebhookConfig{WebhookSecret: "whsec_test"})

			rec := postWebhook(h, succeededEvent("pi_1"), "valid-sig")

			// Stripe retries on non-2xx and a retry of the same payload
			// cannot fix these failures, so the event is acknowledged.
			assert.Equal(t, http.StatusOK, rec.Code)
		})
	}
}

func TestWebhookPaymentFailed(t *testing.T) {
	h := NewStripeHandler(&billing.MockProvider{}, &mockFulfillment{}, StripeWebhookConfig{WebhookSecret: "whsec_test"})

	body := `{
		"id": "evt_2",
		"type": "payment_intent.payment_failed",
		"data": {"object": {"id": "pi_9", "last_payment_error": {"code": "card_declined"}}}
	}`
	rec := postWebhook(h, body, "valid-sig")

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestWebhookUnhandledEventType(t *testing.T) {
	fulfillment := &mockFulfillment{
		createOrderFunc: func(ctx context.Context, intent *billing.PaymentIntent) (*printful.Order, error) {
			t.Fatal("fulfillment should not run for unhandled event types")
			return nil, nil
		},
	}
	h := NewStripeHandler(&billing.MockProvider{}, fulfillment, StripeWebhookConfig{WebhookSecret: "whsec_test"})

	rec := postWebhook(h, `{"id":"evt_3","type":"charge.refunded","data":{"object":{}}}`, "valid-sig")

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestWebhookInvalidJSON(t *testing.T) {
	h := NewStripeHandler(&billing.MockProvider{}, &mockFulfillment{}, StripeWebhookConfig{WebhookSecret: "whsec_test"})

	rec := postWebhook(h, `{not json`, "valid-sig")

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
