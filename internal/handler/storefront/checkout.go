package storefront

import (
	"encoding/json"
	"net/http"

	"github.com/tessvale/embla/internal/domain"
	"github.com/tessvale/embla/internal/handler"
	"github.com/tessvale/embla/internal/service"
)

// CheckoutHandler creates payment intents for the payment widget
type CheckoutHandler struct {
	checkout service.CheckoutService
}

// NewCheckoutHandler creates a new checkout handler
func NewCheckoutHandler(checkout service.CheckoutService) *CheckoutHandler {
	return &CheckoutHandler{checkout: checkout}
}

type paymentIntentRequest struct {
	Amount    float64           `json:"amount"`
	Currency  string            `json:"currency"`
	CartItems []domain.CartItem `json:"cartItems"`
}

// CreatePaymentIntent handles POST /api/checkout/payment-intent
func (h *CheckoutHandler) CreatePaymentIntent(w http.ResponseWriter, r *http.Request) {
	var req paymentIntentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		handler.ErrorResponse(w, r, domain.Invalid("checkout.intent", "Invalid request body"))
		return
	}

	intent, err := h.checkout.CreatePaymentIntent(r.Context(), service.CreateIntentParams{
		Amount:   req.Amount,
		Currency: req.Currency,
		Items:    req.CartItems,
	})
	if err != nil {
		handler.ErrorResponse(w, r, err)
		return
	}

	handler.JSONResponse(w, http.StatusOK, map[string]interface{}{
		"clientSecret":    intent.ClientSecret,
		"paymentIntentId": intent.ID,
	})
}
