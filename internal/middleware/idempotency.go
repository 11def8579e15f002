package middleware

import (
	"bytes"
	"crypto/sha256"
	"io"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

const (
	// IdempotencyKeyHeader carries the client-chosen retry key.
	IdempotencyKeyHeader = "Idempotency-Key"
	// IdempotencyKeyTTL bounds how long a replayed response stays valid.
	IdempotencyKeyTTL = 5 * time.Minute
)

// cachedResponse is a captured response held for replay.
type cachedResponse struct {
	StatusCode int
	Headers    map[string]string
	Body       []byte
	Timestamp  time.Time
}

// IdempotencyConfig controls the idempotency middleware.
type IdempotencyConfig struct {
	Cache   *idempotencyCache
	TTL     time.Duration
	Enabled bool
}

// DefaultIdempotencyConfig enables replay with a five minute window.
func DefaultIdempotencyConfig() IdempotencyConfig {
	return IdempotencyConfig{
		Cache:   newIdempotencyCache(IdempotencyKeyTTL),
		TTL:     IdempotencyKeyTTL,
		Enabled: true,
	}
}

func isMutation(method string) bool {
	switch method {
	case http.MethodPost, http.MethodPut, http.MethodPatch:
		return true
	}
	return false
}

// Idempotency replays cached responses for retried mutations. A client
// that resends POST /api/cart/items with the same Idempotency-Key after
// a dropped connection gets the original response back instead of
// adding the item a second time. Reads pass through untouched.
func Idempotency(cfg IdempotencyConfig) gin.HandlerFunc {
	if !cfg.Enabled || cfg.Cache == nil {
		return func(c *gin.Context) {
			c.Next()
		}
	}

	return func(c *gin.Context) {
		if !isMutation(c.Request.Method) {
			c.Next()
			return
		}

		key := c.GetHeader(IdempotencyKeyHeader)
		if key == "" {
			c.Next()
			return
		}

		cacheKey := cacheKeyFor(key, c.Request)

		if resp, ok := cfg.Cache.Get(cacheKey); ok {
			replayCached(c, resp)
			return
		}

		capture := &captureWriter{
			ResponseWriter: c.Writer,
			body:           &bytes.Buffer{},
			statusCode:     http.StatusOK,
			headers:        make(map[string]string),
		}
		c.Writer = capture

		c.Next()

		// Only successful responses are worth replaying. A failed
		// mutation should be retried for real.
		if capture.statusCode >= 200 && capture.statusCode < 300 {
			cfg.Cache.Set(cacheKey, &cachedResponse{
				StatusCode: capture.statusCode,
				Headers:    capture.headers,
				Body:       capture.body.Bytes(),
				Timestamp:  time.Now(),
			})
		}
	}
}

func replayCached(c *gin.Context, resp *cachedResponse) {
	for k, v := range resp.Headers {
		c.Header(k, v)
	}
	c.Header("X-Idempotency-Replayed", "true")
	c.Data(resp.StatusCode, "application/json", resp.Body)
	c.Abort()
}

// cacheKeyFor hashes the idempotency key together with method, path and
// body, so the same key sent with a different payload is not replayed.
func cacheKeyFor(idempotencyKey string, req *http.Request) int {
	hasher := sha256.New()
	hasher.Write([]byte(idempotencyKey))
	hasher.Write([]byte(req.Method))
	hasher.Write([]byte(req.URL.Path))

	if req.Body != nil {
		bodyBytes, _ := io.ReadAll(req.Body)
		req.Body = io.NopCloser(bytes.NewBuffer(bodyBytes))
		hasher.Write(bodyBytes)
	}

	hash := hasher.Sum(nil)
	var key int
	for i := 0; i < 8; i++ {
		key = key<<8 | int(hash[i])
	}
	if key < 0 {
		key = -key
	}
	return key
}

// captureWriter tees the response into a buffer for later replay.
type captureWriter struct {
	gin.ResponseWriter
	body       *bytes.Buffer
	statusCode int
	headers    map[string]string
}

func (w *captureWriter) Write(b []byte) (int, error) {
	w.body.Write(b)
	return w.ResponseWriter.Write(b)
}

func (w *captureWriter) WriteHeader(statusCode int) {
	w.statusCode = statusCode
	w.ResponseWriter.WriteHeader(statusCode)
}

func (w *captureWriter) Header() http.Header {
	headers := w.ResponseWriter.Header()
	for k, v := range headers {
		if len(v) > 0 {
			w.headers[k] = v[0]
		}
	}
	return headers
}
