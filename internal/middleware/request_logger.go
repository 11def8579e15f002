package middleware

import (
	"context"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/forkful/cart-service/internal/domain/model"
	"github.com/forkful/cart-service/internal/logger"
	"github.com/forkful/cart-service/internal/service"
)

// RequestLogger emits one structured log line per request and, when a
// logging service is wired, persists the entry for the audit trail.
// Persistence goes through the async writer so Mongo latency never
// shows up in response times.
func RequestLogger(loggingService service.LoggingService) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		entry := &model.LogEntry{
			Timestamp:  time.Now(),
			Level:      getLogLevel(c.Writer.Status()),
			Message:    "HTTP request",
			RequestID:  GetRequestID(c),
			SessionID:  GetSessionID(c),
			Method:     c.Request.Method,
			Path:       c.Request.URL.Path,
			StatusCode: c.Writer.Status(),
			Duration:   time.Since(start).Milliseconds(),
			IP:         c.ClientIP(),
			UserAgent:  c.Request.UserAgent(),
		}

		logLine(entry)

		if loggingService != nil {
			persistEntry(loggingService, entry)
		}
	}
}

func logLine(entry *model.LogEntry) {
	log := logger.Logger().With().
		Str("request_id", entry.RequestID).
		Str("session_id", entry.SessionID).
		Str("method", entry.Method).
		Str("path", entry.Path).
		Int("status_code", entry.StatusCode).
		Int64("duration_ms", entry.Duration).
		Str("ip", entry.IP).
		Str("user_agent", entry.UserAgent).
		Logger()

	switch entry.Level {
	case "error":
		log.Error().Msg(entry.Message)
	case "warn":
		log.Warn().Msg(entry.Message)
	default:
		log.Info().Msg(entry.Message)
	}
}

func persistEntry(loggingService service.LoggingService, entry *model.LogEntry) {
	if asyncLogger := GetAsyncLogger(); asyncLogger != nil {
		asyncLogger.Log(entry)
		return
	}
	// No async writer configured, fall back to one goroutine per entry.
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = loggingService.CreateLog(ctx, entry)
	}()
}

func getLogLevel(statusCode int) string {
	switch {
	case statusCode >= 500:
		return "error"
	case statusCode >= 400:
		return "warn"
	default:
		return "info"
	}
}
