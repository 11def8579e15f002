// Package middleware holds the HTTP middleware chain for the cart API.
package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// RequestIDHeader is where clients and upstream proxies pass a request ID.
const RequestIDHeader = "X-Request-ID"

// ContextKey avoids collisions with other packages' context values.
type ContextKey string

// RequestIDKey is the gin context key the request ID is stored under.
const RequestIDKey ContextKey = "request_id"

// RequestID tags every request with an ID for log correlation. An ID
// supplied via X-Request-ID is kept so traces span service boundaries,
// otherwise a fresh UUID is issued. The ID is echoed in the response.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := c.GetHeader(RequestIDHeader)
		if requestID == "" {
			requestID = uuid.New().String()
		}

		c.Set(string(RequestIDKey), requestID)
		c.Header(RequestIDHeader, requestID)
		c.Next()
	}
}

// GetRequestID returns the request ID set by RequestID, or "" when the
// middleware did not run.
func GetRequestID(c *gin.Context) string {
	id, ok := c.Get(string(RequestIDKey))
	if !ok {
		return ""
	}
	requestID, _ := id.(string)
	return requestID
}
