package webhook

import (
	"encoding/json"
	"io"
	"net/http"
	"time"

	"github.com/stripe/stripe-go/v83"
	"github.com/tessvale/embla/internal/billing"
	"github.com/tessvale/embla/internal/domain"
	"github.com/tessvale/embla/internal/handler"
	"github.com/tessvale/embla/internal/middleware"
	"github.com/tessvale/embla/internal/service"
	"github.com/tessvale/embla/internal/telemetry"
)

// StripeHandler handles Stripe webhook events.
// On payment_intent.succeeded it re-fetches the full intent (the event
// payload omits shipping details) and relays it to the fulfillment service.
type StripeHandler struct {
	provider    billing.Provider
	fulfillment service.FulfillmentService
	config      StripeWebhookConfig
}

// StripeWebhookConfig contains configuration for Stripe webhook handling
type StripeWebhookConfig struct {
	// WebhookSecret is the webhook signing secret from the Stripe dashboard
	WebhookSecret string
}

// NewStripeHandler creates a new Stripe webhook handler
func NewStripeHandler(provider billing.Provider, fulfillment service.FulfillmentService, config StripeWebhookConfig) *StripeHandler {
	return &StripeHandler{
		provider:    provider,
		fulfillment: fulfillment,
		config:      config,
	}
}

// HandleWebhook processes incoming Stripe webhook events.
//
// Stripe CLI testing:
//
//	stripe listen --forward-to localhost:8080/webhooks/stripe
//	stripe trigger payment_intent.succeeded
func (h *StripeHandler) HandleWebhook(w http.ResponseWriter, r *http.Request) {
	startTime := time.Now()
	logger := middleware.GetLogger(r.Context())

	payload, err := io.ReadAll(r.Body)
	if err != nil {
		logger.Error("failed to read webhook payload", "error", err)
		handler.ErrorResponse(w, r, domain.Invalid("webhook.stripe", "Error reading request body"))
		return
	}

	signature := r.Header.Get("Stripe-Signature")
	if signature == "" {
		logger.Info("webhook rejected: missing signature header")
		handler.ErrorResponse(w, r, domain.Invalid("webhook.stripe", "Missing signature"))
		return
	}

	if err := h.provider.VerifyWebhookSignature(payload, signature, h.config.WebhookSecret); err != nil {
		logger.Info("webhook signature verification failed", "error", err)
		handler.ErrorResponse(w, r, domain.Unauthorized("webhook.stripe", "Invalid signature"))
		return
	}

	var event stripe.Event
	if err := json.Unmarshal(payload, &event); err != nil {
		logger.Error("failed to parse webhook event", "error", err)
		handler.ErrorResponse(w, r, domain.Invalid("webhook.stripe", "Invalid JSON"))
		return
	}

	logger.Info("stripe webhook received", "event_type", event.Type, "event_id", event.ID)

	if telemetry.Business != nil {
		telemetry.Business.WebhookReceived.WithLabelValues(string(event.Type)).Inc()
	}
	defer func() {
		if telemetry.Business != nil {
			duration := time.Since(startTime).Seconds()
			telemetry.Business.WebhookLatency.WithLabelValues(string(event.Type)).Observe(duration)
		}
	}()

	switch event.Type {
	case "payment_intent.succeeded":
		h.handlePaymentIntentSucceeded(r, event)

	case "payment_intent.payment_failed":
		h.handlePaymentIntentFailed(r, event)

	default:
		logger.Info("unhandled webhook event type", "event_type", event.Type)
	}

	// Always acknowledge: Stripe retries on non-2xx, and our downstream
	// failures are not fixed by a retry of the same payload.
	handler.JSONResponse(w, http.StatusOK, map[string]bool{"received": true})
}

func (h *StripeHandler) handlePaymentIntentSucceeded(r *http.Request, event stripe.Event) {
	logger := middleware.GetLogger(r.Context())

	var eventIntent stripe.PaymentIntent
	if err := json.Unmarshal(event.Data.Raw, &eventIntent); err != nil {
		logger.Error("failed to parse payment intent from event", "error", err, "event_id", event.ID)
		h.countFailure(event, "parse_error")
		return
	}

	if telemetry.Business != nil {
		telemetry.Business.PaymentSucceeded.Inc()
	}

	// The event payload does not reliably include shipping; fetch the
	// full intent before building the fulfillment order.
	intent, err := h.provider.GetPaymentIntent(r.Context(), eventIntent.ID)
	if err != nil {
		logger.Error("failed to retrieve payment intent",
			"error", err,
			"payment_intent_id", eventIntent.ID,
		)
		h.countFailure(event, "intent_fetch_error")
		return
	}

	order, err := h.fulfillment.CreateOrderFromPayment(r.Context(), intent)
	if err != nil {
		// Log and acknowledge; the payment already succeeded, so the
		// operator resolves fulfillment failures manually.
		logger.Error("failed to create fulfillment order",
			"error", err,
			"payment_intent_id", intent.ID,
		)
		h.countFailure(event, "fulfillment_error")
		return
	}

	if order != nil {
		logger.Info("fulfillment order created from webhook",
			"order_id", order.ID,
			"payment_intent_id", intent.ID,
		)
	}
}

func (h *StripeHandler) handlePaymentIntentFailed(r *http.Request, event stripe.Event) {
	logger := middleware.GetLogger(r.Context())

	var intent stripe.PaymentIntent
	if err := json.Unmarshal(event.Data.Raw, &intent); err != nil {
		logger.Error("failed to parse payment intent from event", "error", err, "event_id", event.ID)
		h.countFailure(event, "parse_error")
		return
	}

	reason := "unknown"
	if intent.LastPaymentError != nil && intent.LastPaymentError.Code != "" {
		reason = string(intent.LastPaymentError.Code)
	}

	if telemetry.Business != nil {
		telemetry.Business.PaymentFailed.WithLabelValues(reason).Inc()
	}

	logger.Info("payment failed",
		"payment_intent_id", intent.ID,
		"reason", reason,
	)
}

func (h *StripeHandler) countFailure(event stripe.Event, reason string) {
	if telemetry.Business != nil {
		telemetry.Business.WebhookFailed.WithLabelValues(string(event.Type), reason).Inc()
	}
}
