package internal

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	Env      string
	LogLevel string
	Port     uint16

	// CORSOrigins lists allowed frontend origins. The storefront frontend
	// is a separate app, so cross-origin requests are the normal case.
	CORSOrigins []string

	Printful PrintfulConfig
	Stripe   StripeConfig
	Email    EmailConfig
}

// PrintfulConfig holds credentials and endpoint settings for the
// print-on-demand fulfillment provider.
type PrintfulConfig struct {
	APIKey  string
	BaseURL string
}

type StripeConfig struct {
	SecretKey     string
	WebhookSecret string
}

type EmailConfig struct {
	Host             string
	Port             uint16
	Username         string
	Password         string
	From             string
	FromName         string
	ContactRecipient string
}

func NewConfig() (*Config, error) {
	// Try to load .env from current directory, then walk up to find it (max 2 levels)
	err := godotenv.Load()
	if err != nil {
		dir, _ := os.Getwd()
		found := false
		for i := 0; i < 2; i++ {
			dir = filepath.Join(dir, "..")
			if err := godotenv.Load(filepath.Join(dir, ".env")); err == nil {
				found = true
				break
			}
		}
		if !found {
			slog.Default().Warn("Warning: .env file not found, using environment variables and defaults")
		}
	}

	cfg := &Config{
		Env:      getEnv("ENV", "dev"),
		LogLevel: getEnv("LOG_LEVEL", "info"),
		Port:     getEnvInt("PORT", 3000),
		CORSOrigins: strings.Split(getEnv("CORS_ORIGINS", "*"), ","),
		Printful: PrintfulConfig{
			APIKey:  getEnv("PRINTFUL_API_KEY", ""),
			BaseURL: getEnv("PRINTFUL_BASE_URL", "https://api.printful.com"),
		},
		Stripe: StripeConfig{
			SecretKey:     getEnv("STRIPE_SECRET_KEY", "sk_test_your_key_here"),
			WebhookSecret: getEnv("STRIPE_WEBHOOK_SECRET", "whsec_your_webhook_secret_here"),
		},
		Email: EmailConfig{
			Host:             getEnv("SMTP_HOST", "localhost"),
			Port:             getEnvInt("SMTP_PORT", 1025),
			Username:         getEnv("SMTP_USERNAME", ""),
			Password:         getEnv("SMTP_PASSWORD", ""),
			From:             getEnv("SMTP_FROM", "noreply@embla.local"),
			FromName:         getEnv("EMAIL_FROM_NAME", "Embla"),
			ContactRecipient: getEnv("CONTACT_RECIPIENT", "hello@embla.local"),
		},
	}

	// Validate env
	validEnv := cfg.Env == "dev" || cfg.Env == "prod"
	if !validEnv {
		slog.Default().Warn("Invalid environment. Using default: prod", slog.String("env", cfg.Env))
		cfg.Env = "prod"
	}

	// Validate log level
	validLevel := cfg.LogLevel == "info" || cfg.LogLevel == "debug" || cfg.LogLevel == "warn" || cfg.LogLevel == "error"
	if !validLevel {
		slog.Default().Warn("Invalid log level. Using default: info", slog.String("value", cfg.LogLevel))
		cfg.LogLevel = "info"
	}

	// The catalog degrades gracefully without a Printful key in dev,
	// but production must not start half-configured.
	if cfg.Env == "prod" {
		if cfg.Printful.APIKey == "" {
			return nil, fmt.Errorf("PRINTFUL_API_KEY must be set in production environment")
		}
		if cfg.Stripe.SecretKey == "sk_test_your_key_here" {
			return nil, fmt.Errorf("STRIPE_SECRET_KEY must be set in production environment")
		}
		if cfg.Stripe.WebhookSecret == "whsec_your_webhook_secret_here" {
			return nil, fmt.Errorf("STRIPE_WEBHOOK_SECRET must be set in production environment")
		}
	}

	return cfg, nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue uint16) uint16 {
	if value := os.Getenv(key); value != "" {
		var intValue uint16
		if _, err := fmt.Sscanf(value, "%d", &intValue); err == nil {
			return intValue
		}
	}
	return defaultValue
}
