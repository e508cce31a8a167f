package storefront

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tessvale/embla/internal/billing"
	"github.com/tessvale/embla/internal/domain"
	"github.com/tessvale/embla/internal/service"
)

func TestCreatePaymentIntent(t *testing.T) {
	var gotParams service.CreateIntentParams
	checkout := &mockCheckoutService{
		createPaymentIntentFunc: func(ctx context.Context, params service.CreateIntentParams) (*billing.PaymentIntent, error) {
			gotParams = params
			return &billing.PaymentIntent{ID: "pi_123", ClientSecret: "pi_123_secret"}, nil
		},
	}
	h := NewCheckoutHandler(checkout)

	body := `{"amount":49.98,"currency":"gbp","cartItems":[{"product":{"id":"printful-101"},"quantity":2}]}`
	rec := postJSON(h.CreatePaymentIntent, "/api/checkout/payment-intent", body)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.InDelta(t, 49.98, gotParams.Amount, 0.001)
	assert.Equal(t, "gbp", gotParams.Currency)
	require.Len(t, gotParams.Items, 1)

	var resp map[string]string
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.Equal(t, "pi_123_secret", resp["clientSecret"])
	assert.Equal(t, "pi_123", resp["paymentIntentId"])
}

func TestCreatePaymentIntentInvalidBody(t *testing.T) {
	h := NewCheckoutHandler(&mockCheckoutService{})

	rec := postJSON(h.CreatePaymentIntent, "/api/checkout/payment-intent", `{bad`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCreatePaymentIntentServiceError(t *testing.T) {
	checkout := &mockCheckoutService{
		createPaymentIntentFunc: func(ctx context.Context, params service.CreateIntentParams) (*billing.PaymentIntent, error) {
			return nil, domain.Invalid("checkout.intent", "Amount must be greater than zero")
		},
	}
	h := NewCheckoutHandler(checkout)

	rec := postJSON(h.CreatePaymentIntent, "/api/checkout/payment-intent", `{"amount":0}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)

	var resp struct {
		Error struct {
			Code    string `json:"code"`
			Message string `json:"message"`
		} `json:"error"`
	}
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.Equal(t, domain.EINVALID, resp.Error.Code)
	assert.Equal(t, "Amount must be greater than zero", resp.Error.Message)
}
