// Package config provides configuration management for the cart service.
package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// Config holds the complete application configuration.
type Config struct {
	Server   ServerConfig
	Session  SessionConfig
	Menu     MenuConfig
	Checkout CheckoutConfig
	Database DatabaseConfig
}

// ServerConfig holds HTTP server configuration.
type ServerConfig struct {
	Port           string
	RateLimit      int
	RateWindow     time.Duration
	RequestTimeout time.Duration
	CORSOrigins    []string
	SwaggerUser    string
	SwaggerPass    string
}

// SessionConfig holds cart session configuration.
type SessionConfig struct {
	// Capacity bounds the number of concurrently held carts.
	Capacity int
	// TTL is how long an idle cart survives before eviction.
	TTL time.Duration
	// Currency is the ISO 4217 code all carts price in.
	Currency string
	// TokenSecret signs session tokens.
	TokenSecret string
	// TokenTTL bounds session token validity.
	TokenTTL time.Duration
	// SecureCookie marks the session cookie Secure.
	SecureCookie bool
}

// MenuConfig holds menu catalog configuration.
type MenuConfig struct {
	CacheTTL time.Duration
}

// CheckoutConfig holds order backend configuration.
type CheckoutConfig struct {
	OrderAPIURL string
	Timeout     time.Duration
	// CircuitBreaker configuration
	CircuitBreakerFailureThreshold int
	CircuitBreakerSuccessThreshold int
	CircuitBreakerTimeout          time.Duration
}

// DatabaseConfig holds MongoDB configuration.
type DatabaseConfig struct {
	URI          string
	DatabaseName string
	LogsTTL      time.Duration
	Enabled      bool
	// CircuitBreaker configuration
	CircuitBreakerFailureThreshold int
	CircuitBreakerSuccessThreshold int
	CircuitBreakerTimeout          time.Duration
}

// Load creates a Config from environment variables.
func Load() Config {
	return Config{
		Server: ServerConfig{
			Port:           getEnv("PORT", "8080"),
			RateLimit:      getEnvInt("RATE_LIMIT", 100),
			RateWindow:     getEnvDuration("RATE_WINDOW", time.Minute),
			RequestTimeout: getEnvDuration("REQUEST_TIMEOUT", 30*time.Second),
			CORSOrigins:    parseCORSOrigins(os.Getenv("CORS_ORIGINS")),
			SwaggerUser:    getEnv("SWAGGER_USER", ""),
			SwaggerPass:    getEnv("SWAGGER_PASS", ""),
		},
		Session: SessionConfig{
			Capacity:     getEnvInt("SESSION_CAPACITY", 10000),
			TTL:          getEnvDuration("SESSION_TTL", 2*time.Hour),
			Currency:     getEnv("CART_CURRENCY", "USD"),
			TokenSecret:  getEnv("SESSION_TOKEN_SECRET", "dev-session-secret-change-in-production"),
			TokenTTL:     getEnvDuration("SESSION_TOKEN_TTL", 24*time.Hour),
			SecureCookie: getEnvBool("SESSION_SECURE_COOKIE", false),
		},
		Menu: MenuConfig{
			CacheTTL: getEnvDuration("MENU_CACHE_TTL", 30*time.Second),
		},
		Checkout: CheckoutConfig{
			OrderAPIURL:                    getEnv("ORDER_API_URL", ""),
			Timeout:                        getEnvDuration("ORDER_API_TIMEOUT", 10*time.Second),
			CircuitBreakerFailureThreshold: getEnvInt("ORDER_CIRCUIT_BREAKER_FAILURE_THRESHOLD", 5),
			CircuitBreakerSuccessThreshold: getEnvInt("ORDER_CIRCUIT_BREAKER_SUCCESS_THRESHOLD", 2),
			CircuitBreakerTimeout:          getEnvDuration("ORDER_CIRCUIT_BREAKER_TIMEOUT", 30*time.Second),
		},
		Database: DatabaseConfig{
			URI:                            getEnv("MONGODB_URI", "mongodb://localhost:27017"),
			DatabaseName:                   getEnv("MONGODB_DATABASE", "cart_service"),
			LogsTTL:                        getEnvDuration("MONGODB_LOGS_TTL", 30*24*time.Hour),
			Enabled:                        getEnvBool("MONGODB_ENABLED", false),
			CircuitBreakerFailureThreshold: getEnvInt("CIRCUIT_BREAKER_FAILURE_THRESHOLD", 5),
			CircuitBreakerSuccessThreshold: getEnvInt("CIRCUIT_BREAKER_SUCCESS_THRESHOLD", 2),
			CircuitBreakerTimeout:          getEnvDuration("CIRCUIT_BREAKER_TIMEOUT", 30*time.Second),
		},
	}
}

func getEnv(key, defaultValue string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if v := os.Getenv(key); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	if v := os.Getenv(key); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return defaultValue
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return defaultValue
}

func parseCORSOrigins(s string) []string {
	// Default origins for local development
	defaults := []string{
		"http://localhost:3000",
		"http://127.0.0.1:3000",
	}
	if s == "" {
		return defaults
	}
	parts := strings.Split(s, ",")
	result := make([]string, 0, len(parts)+len(defaults))
	result = append(result, defaults...)
	for _, p := range parts {
		if origin := strings.TrimSpace(p); origin != "" {
			result = append(result, origin)
		}
	}
	return result
}
