package service

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"strconv"

	"github.com/shopspring/decimal"
	"github.com/tessvale/embla/internal/billing"
	"github.com/tessvale/embla/internal/domain"
	"github.com/tessvale/embla/internal/telemetry"
)

// Stripe limits metadata values to 500 characters, so only the first few
// cart lines ride along for the webhook.
const maxMetadataCartItems = 10

// CheckoutService creates payment intents for the hosted payment widget.
type CheckoutService interface {
	// CreatePaymentIntent validates the amount and creates an intent whose
	// metadata carries the cart lines the webhook needs to build a
	// fulfillment order.
	CreatePaymentIntent(ctx context.Context, params CreateIntentParams) (*billing.PaymentIntent, error)
}

// CreateIntentParams contains the checkout request.
type CreateIntentParams struct {
	// Amount in major currency units, as submitted by the storefront.
	Amount float64

	// Currency code; defaults to gbp.
	Currency string

	// Items are the cart lines at the moment of checkout.
	Items []domain.CartItem
}

type checkoutService struct {
	billing billing.Provider
	logger  *slog.Logger
}

// NewCheckoutService creates a new CheckoutService.
func NewCheckoutService(provider billing.Provider, logger *slog.Logger) CheckoutService {
	if logger == nil {
		logger = slog.Default()
	}
	return &checkoutService{
		billing: provider,
		logger:  logger,
	}
}

func (s *checkoutService) CreatePaymentIntent(ctx context.Context, params CreateIntentParams) (*billing.PaymentIntent, error) {
	if params.Amount <= 0 {
		return nil, domain.Invalid("checkout.intent", "Invalid amount")
	}

	currency := params.Currency
	if currency == "" {
		currency = "gbp"
	}

	amountCents := decimal.NewFromFloat(params.Amount).
		Mul(decimal.NewFromInt(100)).
		Round(0).
		IntPart()

	cart := domain.Cart{Items: params.Items}
	metadata := map[string]string{}
	if providerItems := cart.ProviderItems(); len(providerItems) > 0 {
		metadata["hasPrintfulItems"] = "true"
		metadata["printfulItemsCount"] = strconv.Itoa(len(providerItems))

		capped := params.Items
		if len(capped) > maxMetadataCartItems {
			capped = capped[:maxMetadataCartItems]
		}
		encoded, err := json.Marshal(capped)
		if err != nil {
			return nil, domain.Internal(err, "checkout.intent", "failed to encode cart metadata")
		}
		metadata["cartItems"] = string(encoded)
	}

	intent, err := s.billing.CreatePaymentIntent(ctx, billing.CreatePaymentIntentParams{
		AmountCents: amountCents,
		Currency:    currency,
		Metadata:    metadata,
	})
	if err != nil {
		if errors.Is(err, billing.ErrAmountTooSmall) {
			return nil, domain.Invalid("checkout.intent", "Invalid amount")
		}
		return nil, domain.Internal(err, "checkout.intent", "failed to create payment intent")
	}

	if telemetry.Business != nil {
		telemetry.Business.PaymentIntentsCreated.Inc()
	}

	s.logger.Info("payment intent created",
		"payment_intent_id", intent.ID,
		"amount_cents", amountCents,
		"currency", currency,
		"has_provider_items", metadata["hasPrintfulItems"] == "true",
	)

	return intent, nil
}
