package dto

import (
	"net/http"
	"time"
)

// Error codes returned in the "error" field of ErrorResponse. Clients
// branch on these, the human-readable message is localized separately.
const (
	ErrCodeInvalidRequest = "invalid_request"
	ErrCodeInternal       = "internal_error"
	ErrCodeUnauthorized   = "unauthorized"
	ErrCodeForbidden      = "forbidden"
	ErrCodeNotFound       = "not_found"
	ErrCodeRateLimit      = "rate_limit_exceeded"
	ErrCodeConflict       = "conflict"
	ErrCodeTimeout        = "timeout"

	// ErrCodeBackendUnavailable means the order backend is unreachable
	// or its circuit is open.
	ErrCodeBackendUnavailable = "backend_unavailable"
	// ErrCodeOrderRejected means the order backend refused the order.
	ErrCodeOrderRejected = "order_rejected"
	// ErrCodeEmptyCart means checkout was attempted on an empty cart.
	ErrCodeEmptyCart = "empty_cart"
)

// SuccessResponse is the envelope for every successful API response.
// @Description Successful API response wrapper
type SuccessResponse struct {
	// Data carries the endpoint payload (a CartSnapshot for cart endpoints)
	// Example: {"lines": [{"offering_id": "dish-madras-curry", "quantity": 2}], "total_items": 2}
	Data interface{} `json:"data" swaggertype:"object"`
	// RequestID correlates the response with server-side logs
	RequestID string `json:"request_id,omitempty" example:"550e8400-e29b-41d4-a716-446655440000"`
	// Timestamp is when the response was generated
	Timestamp time.Time `json:"timestamp" example:"2025-01-28T10:00:00Z"`
} // @name SuccessResponse

// ErrorResponse is the envelope for every failed API response.
// @Description Standardized error response
type ErrorResponse struct {
	Error   string `json:"error" example:"invalid_request"`
	Message string `json:"message,omitempty" example:"quantity: must be greater than zero"`
	// Details maps field names to validation messages (optional)
	Details   map[string]string `json:"details,omitempty"`
	RequestID string            `json:"request_id,omitempty" example:"550e8400-e29b-41d4-a716-446655440000"`
	Timestamp time.Time         `json:"timestamp" example:"2025-01-28T10:00:00Z"`
	TraceID   string            `json:"trace_id,omitempty" example:"trace-123"`
} // @name ErrorResponse

// NewError builds an ErrorResponse stamped with the current time.
func NewError(code, message string) ErrorResponse {
	return ErrorResponse{
		Error:     code,
		Message:   message,
		Timestamp: time.Now(),
	}
}

// WithRequestID returns a copy carrying the given request ID.
func (e ErrorResponse) WithRequestID(requestID string) ErrorResponse {
	e.RequestID = requestID
	return e
}

// ErrCodeFromStatus maps an HTTP status to its canonical error code.
func ErrCodeFromStatus(status int) string {
	switch status {
	case http.StatusBadRequest:
		return ErrCodeInvalidRequest
	case http.StatusUnauthorized:
		return ErrCodeUnauthorized
	case http.StatusForbidden:
		return ErrCodeForbidden
	case http.StatusNotFound:
		return ErrCodeNotFound
	case http.StatusConflict:
		return ErrCodeConflict
	case http.StatusTooManyRequests:
		return ErrCodeRateLimit
	case http.StatusRequestTimeout, http.StatusGatewayTimeout:
		return ErrCodeTimeout
	case http.StatusBadGateway, http.StatusServiceUnavailable:
		return ErrCodeBackendUnavailable
	default:
		return ErrCodeInternal
	}
}
