package config

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	t.Setenv("KEY", "secret")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "localhost:8084", cfg.RunAddress)
	assert.True(t, cfg.FeeRate.Equal(decimal.RequireFromString("0.05")))
	assert.True(t, cfg.CoinPrice.Equal(decimal.NewFromInt(1)))
	assert.Equal(t, "admin", cfg.AdminLogin)
}

func TestLoadConfig_FromEnv(t *testing.T) {
	t.Setenv("KEY", "secret")
	t.Setenv("RUN_ADDRESS", ":9090")
	t.Setenv("FEE_RATE", "0.1")
	t.Setenv("PAYMENT_POLL_INTERVAL", "30s")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, ":9090", cfg.RunAddress)
	assert.True(t, cfg.FeeRate.Equal(decimal.RequireFromString("0.1")))
	assert.Equal(t, "30s", cfg.PaymentPollInterval.String())
}

func TestLoadConfig_WithoutSecretKey(t *testing.T) {
	t.Setenv("KEY", "")

	_, err := LoadConfig()
	assert.ErrorIs(t, err, ErrMissingSecretKey)
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name      string
		secretKey string
		feeRate   string
		coinPrice string
		wantErr   error
	}{
		{"ok", "secret", "0.05", "1", nil},
		{"zero fee", "secret", "0", "1", nil},
		{"negative fee", "secret", "-0.01", "1", ErrInvalidFeeRate},
		{"fee of one", "secret", "1", "1", ErrInvalidFeeRate},
		{"zero price", "secret", "0.05", "0", ErrInvalidCoinPrice},
		{"empty secret key", "", "0.05", "1", ErrMissingSecretKey},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &Config{
				SecretKey: tt.secretKey,
				FeeRate:   decimal.RequireFromString(tt.feeRate),
				CoinPrice: decimal.RequireFromString(tt.coinPrice),
			}
			assert.ErrorIs(t, cfg.Validate(), tt.wantErr)
		})
	}
}
