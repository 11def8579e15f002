// Package metrics provides Prometheus metrics collection for the cart service.
package metrics

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// HTTPRequestDuration tracks HTTP request duration by method, path, and status code.
	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path", "status_code"},
	)

	// HTTPRequestTotal tracks total HTTP requests by method, path, and status code.
	HTTPRequestTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status_code"},
	)

	// CartOperationsTotal tracks cart mutations and reads by operation and outcome.
	CartOperationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "cart_operations_total",
			Help: "Total number of cart operations",
		},
		[]string{"operation", "status"},
	)

	// CartSessionsActive tracks the number of live cart sessions.
	CartSessionsActive = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "cart_sessions_active",
			Help: "Number of active cart sessions",
		},
	)

	// CartSessionEvictionsTotal tracks sessions evicted for capacity.
	CartSessionEvictionsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "cart_session_evictions_total",
			Help: "Total number of cart sessions evicted for capacity",
		},
	)

	// CheckoutsTotal tracks checkout attempts by outcome.
	CheckoutsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "checkouts_total",
			Help: "Total number of checkout attempts",
		},
		[]string{"status"},
	)

	// CheckoutDuration tracks end-to-end checkout duration including the
	// round trip to the order backend.
	CheckoutDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "checkout_duration_seconds",
			Help:    "Checkout duration in seconds",
			Buckets: []float64{0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1.0, 2.5, 5.0},
		},
	)

	// MenuCacheOperationsTotal tracks menu cache operations.
	MenuCacheOperationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "menu_cache_operations_total",
			Help: "Total number of menu cache operations",
		},
		[]string{"operation", "result"},
	)
)

// PrometheusMiddleware returns a Gin middleware that collects HTTP metrics.
func PrometheusMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.FullPath()
		if path == "" {
			path = c.Request.URL.Path
		}

		c.Next()

		duration := time.Since(start).Seconds()
		statusCode := strconv.Itoa(c.Writer.Status())
		method := c.Request.Method

		HTTPRequestDuration.WithLabelValues(method, path, statusCode).Observe(duration)
		HTTPRequestTotal.WithLabelValues(method, path, statusCode).Inc()
	}
}

// RecordCartOperation records one cart operation with its outcome.
func RecordCartOperation(operation, status string) {
	CartOperationsTotal.WithLabelValues(operation, status).Inc()
}

// RecordCheckout records a checkout attempt and its duration.
func RecordCheckout(status string, duration time.Duration) {
	CheckoutDuration.Observe(duration.Seconds())
	CheckoutsTotal.WithLabelValues(status).Inc()
}

// RecordMenuCacheOperation records a menu cache operation.
func RecordMenuCacheOperation(operation, result string) {
	MenuCacheOperationsTotal.WithLabelValues(operation, result).Inc()
}

// UpdateActiveSessions publishes the current live session count.
func UpdateActiveSessions(n int) {
	CartSessionsActive.Set(float64(n))
}

// RecordSessionEviction records one capacity eviction.
func RecordSessionEviction() {
	CartSessionEvictionsTotal.Inc()
}
