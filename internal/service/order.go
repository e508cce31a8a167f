package service

import (
	"context"
	"encoding/json"
	"log/slog"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/tessvale/embla/internal/billing"
	"github.com/tessvale/embla/internal/domain"
	"github.com/tessvale/embla/internal/printful"
	"github.com/tessvale/embla/internal/telemetry"
)

// FulfillmentService relays paid orders to the fulfillment provider.
type FulfillmentService interface {
	// CreateOrderFromPayment builds and submits a fulfillment order from a
	// succeeded payment intent's cart metadata and shipping details.
	// Returns (nil, nil) when the cart holds no provider items.
	CreateOrderFromPayment(ctx context.Context, intent *billing.PaymentIntent) (*printful.Order, error)
}

type fulfillmentService struct {
	provider printful.API
	logger   *slog.Logger
}

// NewFulfillmentService creates a new FulfillmentService.
func NewFulfillmentService(provider printful.API, logger *slog.Logger) FulfillmentService {
	if logger == nil {
		logger = slog.Default()
	}
	return &fulfillmentService{
		provider: provider,
		logger:   logger,
	}
}

func (s *fulfillmentService) CreateOrderFromPayment(ctx context.Context, intent *billing.PaymentIntent) (*printful.Order, error) {
	if s.provider == nil {
		return nil, domain.Errorf(domain.EINTERNAL, "fulfillment.order", "fulfillment provider not configured")
	}

	items, err := providerOrderItems(intent.Metadata["cartItems"])
	if err != nil {
		return nil, err
	}
	if len(items) == 0 {
		s.logger.Info("no provider items in cart, skipping fulfillment order",
			"payment_intent_id", intent.ID)
		return nil, nil
	}

	recipient, err := recipientFromIntent(intent)
	if err != nil {
		return nil, err
	}

	subtotal := decimal.NewFromInt(intent.AmountCents).
		Div(decimal.NewFromInt(100)).
		StringFixed(2)

	params := printful.OrderParams{
		Recipient:  recipient,
		Items:      items,
		ExternalID: intent.ID,
		RetailCosts: &printful.RetailCosts{
			Currency: strings.ToUpper(intent.Currency),
			Subtotal: subtotal,
		},
	}

	order, err := s.provider.CreateOrder(ctx, params)
	if err != nil {
		if telemetry.Business != nil {
			telemetry.Business.FulfillmentOrdersFailed.Inc()
		}
		return nil, domain.WrapError(err, domain.EUNAVAILABLE, "fulfillment.order", "failed to create fulfillment order")
	}

	if telemetry.Business != nil {
		telemetry.Business.FulfillmentOrdersCreated.Inc()
	}
	s.logger.Info("fulfillment order created",
		"order_id", order.ID,
		"payment_intent_id", intent.ID,
		"item_count", len(items),
	)

	return order, nil
}

// providerOrderItems decodes the cart metadata and maps provider-sourced
// lines to fulfillment order items. Lines without a selected variant are a
// hard error: the order can't be placed correctly without the variant id.
func providerOrderItems(cartJSON string) ([]printful.OrderItem, error) {
	if cartJSON == "" {
		return nil, nil
	}

	var cartItems []domain.CartItem
	if err := json.Unmarshal([]byte(cartJSON), &cartItems); err != nil {
		return nil, domain.WrapError(err, domain.EINVALID, "fulfillment.order", "malformed cart metadata")
	}

	var items []printful.OrderItem
	for _, line := range cartItems {
		if !line.Product.IsProviderSourced() {
			continue
		}
		if line.Product.Variant == nil || line.Product.Variant.VariantID == 0 {
			productID := strings.TrimPrefix(line.Product.ID, domain.ProviderIDPrefix)
			return nil, domain.Errorf(domain.EINVALID, "fulfillment.order",
				"missing variant information for product %s", productID)
		}
		quantity := line.Quantity
		if quantity <= 0 {
			quantity = 1
		}
		items = append(items, printful.OrderItem{
			SyncVariantID: line.Product.Variant.VariantID,
			Quantity:      quantity,
		})
	}

	return items, nil
}

// recipientFromIntent builds the shipping recipient from the payment's
// shipping block. Address line 1, city and country are required; country
// defaults to GB when the widget omitted it.
func recipientFromIntent(intent *billing.PaymentIntent) (printful.Recipient, error) {
	shipping := intent.Shipping
	if shipping == nil {
		return printful.Recipient{}, domain.Errorf(domain.EINVALID, "fulfillment.order",
			"payment %s has no shipping details", intent.ID)
	}

	name := shipping.Name
	if name == "" {
		name = "Customer"
	}
	country := shipping.Country
	if country == "" {
		country = "GB"
	}

	recipient := printful.Recipient{
		Name:        name,
		Address1:    shipping.Line1,
		Address2:    shipping.Line2,
		City:        shipping.City,
		StateCode:   shipping.State,
		CountryCode: country,
		Zip:         shipping.PostalCode,
		Phone:       shipping.Phone,
		Email:       intent.ReceiptEmail,
	}

	if recipient.Address1 == "" || recipient.City == "" {
		return printful.Recipient{}, domain.Errorf(domain.EINVALID, "fulfillment.order",
			"missing required shipping information: address or city")
	}

	return recipient, nil
}
