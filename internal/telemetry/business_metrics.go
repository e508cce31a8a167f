package telemetry

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// BusinessMetrics holds Prometheus metrics for business-level observability.
type BusinessMetrics struct {
	// Provider catalog health
	ProviderFetches      *prometheus.CounterVec // labels: endpoint, outcome
	ProviderFetchLatency *prometheus.HistogramVec

	// Checkout funnel
	PaymentIntentsCreated prometheus.Counter
	PaymentSucceeded      prometheus.Counter
	PaymentFailed         *prometheus.CounterVec // labels: reason

	// Fulfillment orders
	FulfillmentOrdersCreated prometheus.Counter
	FulfillmentOrdersFailed  prometheus.Counter

	// Webhooks
	WebhookReceived *prometheus.CounterVec // labels: event_type
	WebhookFailed   *prometheus.CounterVec // labels: event_type, reason
	WebhookLatency  *prometheus.HistogramVec

	// Forms
	ContactMessages   prometheus.Counter
	NewsletterSignups prometheus.Counter
}

// Business is the process-wide metrics instance, set by InitBusinessMetrics.
// Callers nil-check before use so tests don't need a registry.
var Business *BusinessMetrics

// InitBusinessMetrics registers business metrics with the default registry.
func InitBusinessMetrics(namespace string) *BusinessMetrics {
	if namespace == "" {
		namespace = "embla"
	}

	Business = &BusinessMetrics{
		ProviderFetches: promauto.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "provider_fetches_total",
			Help:      "Fulfillment provider API calls by endpoint and outcome",
		}, []string{"endpoint", "outcome"}),
		ProviderFetchLatency: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "provider_fetch_duration_seconds",
			Help:      "Fulfillment provider API call duration",
			Buckets:   []float64{.05, .1, .25, .5, 1, 2.5, 5, 10},
		}, []string{"endpoint"}),
		PaymentIntentsCreated: promauto.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "payment_intents_created_total",
			Help:      "Payment intents created at checkout",
		}),
		PaymentSucceeded: promauto.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "payments_succeeded_total",
			Help:      "Successful payments observed via webhook",
		}),
		PaymentFailed: promauto.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "payments_failed_total",
			Help:      "Failed payments observed via webhook",
		}, []string{"reason"}),
		FulfillmentOrdersCreated: promauto.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "fulfillment_orders_created_total",
			Help:      "Orders relayed to the fulfillment provider",
		}),
		FulfillmentOrdersFailed: promauto.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "fulfillment_orders_failed_total",
			Help:      "Fulfillment order relays that failed",
		}),
		WebhookReceived: promauto.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "webhook_received_total",
			Help:      "Payment processor webhook events received",
		}, []string{"event_type"}),
		WebhookFailed: promauto.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "webhook_failed_total",
			Help:      "Webhook events whose processing failed",
		}, []string{"event_type", "reason"}),
		WebhookLatency: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "webhook_duration_seconds",
			Help:      "Webhook processing duration",
			Buckets:   []float64{.01, .05, .1, .25, .5, 1, 2.5, 5},
		}, []string{"event_type"}),
		ContactMessages: promauto.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "contact_messages_total",
			Help:      "Contact form submissions relayed",
		}),
		NewsletterSignups: promauto.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "newsletter_signups_total",
			Help:      "Newsletter signups recorded",
		}),
	}

	return Business
}
