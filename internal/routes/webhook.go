package routes

import (
	"github.com/tessvale/embla/internal/router"
)

// RegisterWebhookRoutes registers all webhook routes.
//
// Note: webhook routes carry no session or rate-limit middleware. The
// handler verifies the request signature (Stripe signature verification)
// itself.
func RegisterWebhookRoutes(r *router.Router, deps WebhookDeps) {
	r.Post("/webhooks/stripe", deps.StripeHandler.HandleWebhook)
}
