package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoad(t *testing.T) {
	t.Run("loads default values", func(t *testing.T) {
		os.Clearenv()

		cfg := Load()

		assert.Equal(t, "8080", cfg.Server.Port)
		assert.Equal(t, 100, cfg.Server.RateLimit)
		assert.Equal(t, time.Minute, cfg.Server.RateWindow)
		assert.Equal(t, 30*time.Second, cfg.Server.RequestTimeout)
		assert.Equal(t, 10000, cfg.Session.Capacity)
		assert.Equal(t, 2*time.Hour, cfg.Session.TTL)
		assert.Equal(t, "USD", cfg.Session.Currency)
		assert.Equal(t, 24*time.Hour, cfg.Session.TokenTTL)
		assert.Equal(t, 30*time.Second, cfg.Menu.CacheTTL)
		assert.Empty(t, cfg.Checkout.OrderAPIURL)
		assert.Equal(t, 10*time.Second, cfg.Checkout.Timeout)
		assert.False(t, cfg.Database.Enabled)
	})

	t.Run("loads values from environment", func(t *testing.T) {
		os.Clearenv()
		_ = os.Setenv("PORT", "9090")
		_ = os.Setenv("RATE_LIMIT", "50")
		_ = os.Setenv("RATE_WINDOW", "30s")
		_ = os.Setenv("REQUEST_TIMEOUT", "15s")
		_ = os.Setenv("SESSION_CAPACITY", "500")
		_ = os.Setenv("SESSION_TTL", "45m")
		_ = os.Setenv("CART_CURRENCY", "EUR")
		_ = os.Setenv("MENU_CACHE_TTL", "1m")
		_ = os.Setenv("ORDER_API_URL", "http://orders.internal:9000")
		_ = os.Setenv("ORDER_API_TIMEOUT", "5s")
		_ = os.Setenv("MONGODB_ENABLED", "true")
		defer os.Clearenv()

		cfg := Load()

		assert.Equal(t, "9090", cfg.Server.Port)
		assert.Equal(t, 50, cfg.Server.RateLimit)
		assert.Equal(t, 30*time.Second, cfg.Server.RateWindow)
		assert.Equal(t, 15*time.Second, cfg.Server.RequestTimeout)
		assert.Equal(t, 500, cfg.Session.Capacity)
		assert.Equal(t, 45*time.Minute, cfg.Session.TTL)
		assert.Equal(t, "EUR", cfg.Session.Currency)
		assert.Equal(t, time.Minute, cfg.Menu.CacheTTL)
		assert.Equal(t, "http://orders.internal:9000", cfg.Checkout.OrderAPIURL)
		assert.Equal(t, 5*time.Second, cfg.Checkout.Timeout)
		assert.True(t, cfg.Database.Enabled)
	})

	t.Run("handles invalid values gracefully", func(t *testing.T) {
		os.Clearenv()
		_ = os.Setenv("RATE_LIMIT", "invalid")
		_ = os.Setenv("MONGODB_ENABLED", "invalid")
		_ = os.Setenv("RATE_WINDOW", "invalid")
		_ = os.Setenv("SESSION_CAPACITY", "invalid")
		defer os.Clearenv()

		cfg := Load()

		assert.Equal(t, 100, cfg.Server.RateLimit)
		assert.False(t, cfg.Database.Enabled)
		assert.Equal(t, time.Minute, cfg.Server.RateWindow)
		assert.Equal(t, 10000, cfg.Session.Capacity)
	})

	t.Run("parses CORS origins with whitespace", func(t *testing.T) {
		os.Clearenv()
		_ = os.Setenv("CORS_ORIGINS", " https://app.example.com , https://admin.example.com ")
		defer os.Clearenv()

		cfg := Load()

		assert.Contains(t, cfg.Server.CORSOrigins, "https://app.example.com")
		assert.Contains(t, cfg.Server.CORSOrigins, "https://admin.example.com")
		assert.Contains(t, cfg.Server.CORSOrigins, "http://localhost:3000")
	})

	t.Run("keeps local development origins by default", func(t *testing.T) {
		os.Clearenv()

		cfg := Load()

		assert.Equal(t, []string{"http://localhost:3000", "http://127.0.0.1:3000"}, cfg.Server.CORSOrigins)
	})

	t.Run("circuit breaker settings per backend", func(t *testing.T) {
		os.Clearenv()
		_ = os.Setenv("ORDER_CIRCUIT_BREAKER_FAILURE_THRESHOLD", "3")
		_ = os.Setenv("CIRCUIT_BREAKER_FAILURE_THRESHOLD", "7")
		defer os.Clearenv()

		cfg := Load()

		assert.Equal(t, 3, cfg.Checkout.CircuitBreakerFailureThreshold)
		assert.Equal(t, 7, cfg.Database.CircuitBreakerFailureThreshold)
	})
}
