package billing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStripeConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		config  StripeConfig
		wantErr bool
	}{
		{
			name:    "valid config",
			config:  StripeConfig{APIKey: "sk_test_abc", WebhookSecret: "whsec_abc"},
			wantErr: false,
		},
		{
			name:    "missing API key",
			config:  StripeConfig{WebhookSecret: "whsec_abc"},
			wantErr: true,
		},
		{
			name:    "missing webhook secret",
			config:  StripeConfig{APIKey: "sk_test_abc"},
			wantErr: true,
		},
		{
			name:    "empty config",
			config:  StripeConfig{},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.config.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestStripeConfigIsTestMode(t *testing.T) {
	tests := []struct {
		name   string
		apiKey string
		want   bool
	}{
		{"test key", "sk_test_abc123", true},
		{"live key", "sk_live_abc123", false},
		{"empty key", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := StripeConfig{APIKey: tt.apiKey}
			assert.Equal(t, tt.want, c.IsTestMode())
		})
	}
}

func TestNewStripeProviderRequiresConfig(t *testing.T) {
	_, err := NewStripeProvider(StripeConfig{})
	assert.ErrorIs(t, err, ErrInvalidAPIKey)

	p, err := NewStripeProvider(StripeConfig{APIKey: "sk_test_abc", WebhookSecret: "whsec_abc"})
	require.NoError(t, err)
	assert.NotNil(t, p)
}
