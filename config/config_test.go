package config

import (
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("FMP_API_KEY", "test-key")

	cfg, err := load(viper.New())
	require.NoError(t, err)

	assert.Equal(t, "8000", cfg.Server.Port)
	assert.Equal(t, "http://localhost:3000", cfg.Server.AllowedOrigin)
	assert.Equal(t, "https://financialmodelingprep.com/api/v3", cfg.Upstream.BaseURL)
	assert.Equal(t, "test-key", cfg.Upstream.APIKey)
	assert.Equal(t, "AAPL", cfg.Upstream.Ticker)
	assert.Equal(t, "annual", cfg.Upstream.Period)
	assert.Equal(t, 10*time.Second, cfg.Upstream.Timeout)
	assert.Equal(t, 5, cfg.Upstream.RateLimit)
	assert.Equal(t, time.Minute, cfg.RateLimit.Expiration)
	assert.False(t, cfg.Database.Enabled())
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("FMP_API_KEY", "k")
	t.Setenv("PORT", "9090")
	t.Setenv("ALLOWED_ORIGIN", "https://app.example.com")
	t.Setenv("FMP_BASE_URL", "http://upstream.local/api/")
	t.Setenv("FMP_TIMEOUT", "3s")
	t.Setenv("DATABASE_URL", "postgres://u:p@localhost:5432/db")
	t.Setenv("LOG_FORMAT", "json")

	cfg, err := load(viper.New())
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.Server.Port)
	assert.Equal(t, "https://app.example.com", cfg.Server.AllowedOrigin)
	assert.Equal(t, "http://upstream.local/api", cfg.Upstream.BaseURL)
	assert.Equal(t, 3*time.Second, cfg.Upstream.Timeout)
	assert.True(t, cfg.Database.Enabled())
	assert.Equal(t, "json", cfg.Logging.Format)
}

func TestLoad_MissingAPIKey(t *testing.T) {
	t.Setenv("FMP_API_KEY", "")

	_, err := load(viper.New())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "FMP_API_KEY")
}

func TestLoad_InvalidTimeout(t *testing.T) {
	t.Setenv("FMP_API_KEY", "k")
	t.Setenv("FMP_TIMEOUT", "0s")

	_, err := load(viper.New())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "FMP_TIMEOUT")
}
