package middleware

import (
	"context"
	"net/http"
	"sync"
	"time"

	"github.com/forkful/cart-service/internal/domain/dto"
	"github.com/forkful/cart-service/internal/i18n"
	"github.com/gin-gonic/gin"
)

// TimeoutConfig holds configuration for the timeout middleware.
type TimeoutConfig struct {
	// Timeout bounds request processing end to end.
	Timeout time.Duration
	// ErrorMessage is the fallback message when no translator is available.
	ErrorMessage string
}

// DefaultTimeoutConfig returns defaults for the timeout middleware.
func DefaultTimeoutConfig() TimeoutConfig {
	return TimeoutConfig{
		Timeout:      30 * time.Second,
		ErrorMessage: "Request timeout",
	}
}

// Timeout enforces a deadline on the whole request. Handlers see the
// deadline through the request context, so downstream calls (MongoDB, the
// order backend) get cancelled along with it.
func Timeout(cfg TimeoutConfig) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), cfg.Timeout)
		defer cancel()

		c.Request = c.Request.WithContext(ctx)

		// The handler runs in its own goroutine; the mutex orders its
		// completion against the timeout path below.
		var mu sync.Mutex
		var finished bool

		done := make(chan struct{})

		go func() {
			defer func() {
				recover() //nolint:errcheck
				close(done)
			}()
			c.Next()
			mu.Lock()
			finished = true
			mu.Unlock()
		}()

		select {
		case <-done:
			return
		case <-ctx.Done():
			mu.Lock()
			defer mu.Unlock()
			if finished {
				return
			}
			if !c.Writer.Written() {
				message := cfg.ErrorMessage
				if translator := i18n.GetTranslator(); translator != nil {
					message = translator.Translate(i18n.ErrKeyTimeout, i18n.GetLocale(c))
				}

				errorResp := dto.NewError(dto.ErrCodeTimeout, message).
					WithRequestID(GetRequestID(c))
				c.AbortWithStatusJSON(http.StatusGatewayTimeout, errorResp)
			}
		}
	}
}

// TimeoutWithDuration creates timeout middleware with the given deadline
// and default messaging.
func TimeoutWithDuration(timeout time.Duration) gin.HandlerFunc {
	cfg := DefaultTimeoutConfig()
	cfg.Timeout = timeout
	return Timeout(cfg)
}
