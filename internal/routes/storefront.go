package routes

import (
	"github.com/tessvale/embla/internal/router"
)

// RegisterStorefrontRoutes registers all customer-facing API routes.
// The storefront frontend is a separate app; this surface is JSON only.
func RegisterStorefrontRoutes(r *router.Router, deps StorefrontDeps) {
	api := r
	if deps.RateLimit != nil {
		api = r.Group(router.Middleware(deps.RateLimit))
	}

	// Catalog
	api.Get("/api/products", deps.CatalogHandler.List)
	api.Get("/api/products/{id}/variants", deps.CatalogHandler.Variants)

	// Shopping cart
	api.Get("/api/cart", deps.CartHandler.View)
	api.Post("/api/cart/add", deps.CartHandler.Add)
	api.Post("/api/cart/update", deps.CartHandler.Update)
	api.Post("/api/cart/remove", deps.CartHandler.Remove)
	api.Post("/api/cart/clear", deps.CartHandler.Clear)

	// Checkout
	api.Post("/api/checkout/payment-intent", deps.CheckoutHandler.CreatePaymentIntent)

	// Forms, with an extra stricter limit when configured
	forms := api
	if deps.FormRateLimit != nil {
		forms = api.Group(router.Middleware(deps.FormRateLimit))
	}
	forms.Post("/api/contact", deps.FormsHandler.Contact)
	forms.Post("/api/newsletter", deps.FormsHandler.Newsletter)
}
