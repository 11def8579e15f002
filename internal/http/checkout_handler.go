package http

import (
	"errors"
	"net/http"

	"github.com/forkful/cart-service/internal/i18n"
	"github.com/forkful/cart-service/internal/middleware"
	"github.com/forkful/cart-service/internal/service"
	"github.com/gin-gonic/gin"
)

// CheckoutHandler provides the HTTP handler for checkout.
type CheckoutHandler struct {
	checkout service.CheckoutService
}

// NewCheckoutHandler creates a new CheckoutHandler instance.
func NewCheckoutHandler(checkout service.CheckoutService) *CheckoutHandler {
	return &CheckoutHandler{checkout: checkout}
}

// Checkout handles POST /api/checkout requests.
//
// @Summary      Place the cart as an order
// @Description  Submits the session's cart to the order backend. The cart is cleared only after the backend accepts, so a failed checkout leaves it intact for retry. Supports idempotency via Idempotency-Key header.
// @Tags         Checkout
// @Produce      json
// @Param        Idempotency-Key header string false "Idempotency key for request deduplication"
// @Success      200 {object} dto.SuccessResponse "Order confirmation"
// @Failure      400 {object} dto.ErrorResponse "Bad request - cart is empty"
// @Failure      502 {object} dto.ErrorResponse "Bad gateway - order rejected by backend"
// @Failure      503 {object} dto.ErrorResponse "Service unavailable - order backend unreachable"
// @Router       /api/checkout [post]
func (h *CheckoutHandler) Checkout(c *gin.Context) {
	builder := NewResponseBuilder(c)

	confirmation, err := h.checkout.Checkout(c.Request.Context(), middleware.GetSessionID(c))
	if err != nil {
		switch {
		case errors.Is(err, service.ErrEmptyCart):
			builder.Error(http.StatusBadRequest, i18n.ErrKeyEmptyCart, err)
		case errors.Is(err, service.ErrOrderBackendUnavailable):
			builder.Error(http.StatusServiceUnavailable, i18n.ErrKeyOrderBackendUnavailable, err)
		case errors.Is(err, service.ErrOrderRejected):
			builder.Error(http.StatusBadGateway, i18n.ErrKeyCheckoutFailed, err)
		default:
			builder.Error(http.StatusInternalServerError, i18n.ErrKeyInternalError, err)
		}
		return
	}

	builder.SuccessOK(confirmation)
}
