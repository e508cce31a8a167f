package routes

import (
	"net/http"

	"github.com/tessvale/embla/internal/handler/storefront"
	"github.com/tessvale/embla/internal/handler/webhook"
)

// StorefrontDeps contains dependencies for the storefront API routes
type StorefrontDeps struct {
	// Catalog (merged local + provider products, variant detail)
	CatalogHandler *storefront.CatalogHandler

	// Cart
	CartHandler *storefront.CartHandler

	// Checkout
	CheckoutHandler *storefront.CheckoutHandler

	// Forms (contact, newsletter)
	FormsHandler *storefront.FormsHandler

	// RateLimit guards every storefront endpoint; nil disables limiting.
	// Webhook routes are registered outside it on purpose: Stripe retries
	// from a small set of egress IPs and must not be throttled per-IP.
	RateLimit func(http.Handler) http.Handler

	// FormRateLimit adds a stricter limit on the form endpoints; nil
	// disables it.
	FormRateLimit func(http.Handler) http.Handler
}

// WebhookDeps contains dependencies for webhook routes
type WebhookDeps struct {
	StripeHandler *webhook.StripeHandler
}

// OpsDeps contains dependencies for operational routes
type OpsDeps struct {
	// MetricsHandler serves the Prometheus scrape endpoint
	MetricsHandler http.Handler
}
