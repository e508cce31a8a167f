package main

import (
	"fmt"
	"log"
	"net/http"
	"os"
	"time"

	"github.com/tessvale/embla/internal"
	"github.com/tessvale/embla/internal/billing"
	"github.com/tessvale/embla/internal/catalog"
	"github.com/tessvale/embla/internal/email"
	"github.com/tessvale/embla/internal/handler/storefront"
	"github.com/tessvale/embla/internal/handler/webhook"
	"github.com/tessvale/embla/internal/middleware"
	"github.com/tessvale/embla/internal/printful"
	"github.com/tessvale/embla/internal/router"
	"github.com/tessvale/embla/internal/routes"
	"github.com/tessvale/embla/internal/service"
	"github.com/tessvale/embla/internal/session"
	"github.com/tessvale/embla/internal/telemetry"
)

func run() error {
	// Load configuration
	cfg, err := internal.NewConfig()
	if err != nil {
		return fmt.Errorf("config initialization failed: %w", err)
	}

	// Configure logger
	logger := internal.NewLogger(os.Stdout, cfg.Env, cfg.LogLevel)

	// Initialize business metrics
	telemetry.InitBusinessMetrics("embla")

	// Initialize Printful fulfillment provider.
	// In dev the key may be absent; the catalog then serves local products only.
	var fulfillmentProvider printful.API
	if cfg.Printful.APIKey != "" {
		client, err := printful.NewClient(printful.Config{
			APIKey:  cfg.Printful.APIKey,
			BaseURL: cfg.Printful.BaseURL,
			Logger:  logger,
		})
		if err != nil {
			return fmt.Errorf("failed to initialize Printful client: %w", err)
		}
		fulfillmentProvider = client
		logger.Info("Printful client initialized")
	} else {
		logger.Warn("PRINTFUL_API_KEY not set; serving local catalog only")
	}

	// Initialize Stripe billing provider
	stripeConfig := billing.StripeConfig{
		APIKey:        cfg.Stripe.SecretKey,
		WebhookSecret: cfg.Stripe.WebhookSecret,
	}
	billingProvider, err := billing.NewStripeProvider(stripeConfig)
	if err != nil {
		return fmt.Errorf("failed to initialize Stripe provider: %w", err)
	}
	logger.Info("Stripe billing provider initialized", "test_mode", stripeConfig.IsTestMode())

	// Initialize email
	mailer := email.NewSMTPSender(&email.SMTPConfig{
		Host:     cfg.Email.Host,
		Port:     int(cfg.Email.Port),
		Username: cfg.Email.Username,
		Password: cfg.Email.Password,
		From:     cfg.Email.From,
		FromName: cfg.Email.FromName,
	}, logger)
	subscriber := &email.LogSubscriber{Logger: logger}

	// Initialize services
	catalogService := service.NewCatalogService(fulfillmentProvider, catalog.LocalProducts(), logger)
	checkoutService := service.NewCheckoutService(billingProvider, logger)
	fulfillmentService := service.NewFulfillmentService(fulfillmentProvider, logger)

	// Session-scoped carts
	cartStore := session.NewCartStore(cfg.Env == "prod")

	// ==========================================================================
	// Build route dependencies
	// ==========================================================================

	storefrontDeps := routes.StorefrontDeps{
		CatalogHandler:  storefront.NewCatalogHandler(catalogService),
		CartHandler:     storefront.NewCartHandler(cartStore, catalogService),
		CheckoutHandler: storefront.NewCheckoutHandler(checkoutService),
		FormsHandler: storefront.NewFormsHandler(
			mailer,
			subscriber,
			cfg.Email.From,
			cfg.Email.ContactRecipient,
		),
		RateLimit:     middleware.RateLimit(middleware.DefaultRateLimiterConfig()),
		FormRateLimit: middleware.RateLimit(middleware.StrictRateLimiterConfig()),
	}

	webhookDeps := routes.WebhookDeps{
		StripeHandler: webhook.NewStripeHandler(billingProvider, fulfillmentService, webhook.StripeWebhookConfig{
			WebhookSecret: cfg.Stripe.WebhookSecret,
		}),
	}

	// ==========================================================================
	// Initialize middleware and routes
	// ==========================================================================

	metrics := middleware.NewMetrics("embla")

	r := router.New(
		router.Recovery(logger),
		middleware.RequestID,
		metrics.Middleware,
		middleware.MaxBodySize(),
		router.CORS(cfg.CORSOrigins),
		router.Logger(logger),
		middleware.WithRequestLogger(logger),
	)

	// Product placeholder images and other assets
	r.Static("/images/", "./web/images")

	routes.RegisterStorefrontRoutes(r, storefrontDeps)
	routes.RegisterWebhookRoutes(r, webhookDeps)
	routes.RegisterOpsRoutes(r, routes.OpsDeps{
		MetricsHandler: metrics.Handler(),
	})

	// ==========================================================================
	// Start server
	// ==========================================================================

	addr := fmt.Sprintf(":%d", cfg.Port)
	server := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	logger.Info("Starting storefront API server", "address", addr, "env", cfg.Env)
	if err := server.ListenAndServe(); err != nil {
		return fmt.Errorf("server failed: %w", err)
	}

	return nil
}

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}
