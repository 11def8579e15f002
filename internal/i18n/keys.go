// Package i18n provides internationalization support for the cart service.
package i18n

// Error message translation keys.
const (
	// ErrKeyInvalidRequest indicates an invalid request.
	ErrKeyInvalidRequest = "error.invalid_request"
	// ErrKeyInvalidRequestBody indicates an invalid request body.
	ErrKeyInvalidRequestBody = "error.invalid_request_body"
	// ErrKeyInternalError indicates an internal server error.
	ErrKeyInternalError = "error.internal_error"
	// ErrKeyNotFound indicates a resource was not found.
	ErrKeyNotFound = "error.not_found"
	// ErrKeyRateLimitExceeded indicates rate limit exceeded.
	ErrKeyRateLimitExceeded = "error.rate_limit_exceeded"
	// ErrKeyConflict indicates a conflict with current state.
	ErrKeyConflict = "error.conflict"
	// ErrKeyTimeout indicates a request timeout.
	ErrKeyTimeout = "error.timeout"
	// ErrKeyValidationQuantity indicates an invalid quantity value.
	ErrKeyValidationQuantity = "error.validation.quantity"
	// ErrKeyOfferingNotFound indicates an unknown offering ID.
	ErrKeyOfferingNotFound = "error.offering_not_found"
	// ErrKeyLineNotFound indicates an unknown cart line identity key.
	ErrKeyLineNotFound = "error.line_not_found"
	// ErrKeyEmptyCart indicates checkout attempted on an empty cart.
	ErrKeyEmptyCart = "error.empty_cart"
	// ErrKeyCheckoutFailed indicates the order backend refused the order.
	ErrKeyCheckoutFailed = "error.checkout_failed"
	// ErrKeyOrderBackendUnavailable indicates the order backend is unreachable.
	ErrKeyOrderBackendUnavailable = "error.order_backend_unavailable"
)

// Success message translation keys.
const (
	// SuccessKeyItemAdded indicates an offering was added to the cart.
	SuccessKeyItemAdded = "success.item_added"
	// SuccessKeyOrderPlaced indicates a successful checkout.
	SuccessKeyOrderPlaced = "success.order_placed"
)
