package http

import (
	"errors"
	"net/http"

	"github.com/forkful/cart-service/internal/domain/dto"
	"github.com/forkful/cart-service/internal/domain/model"
	"github.com/forkful/cart-service/internal/i18n"
	"github.com/forkful/cart-service/internal/metrics"
	"github.com/forkful/cart-service/internal/middleware"
	"github.com/forkful/cart-service/internal/service"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

// CartHandler provides HTTP handlers for cart routes. Each request operates
// on the cart owned by the caller's session.
type CartHandler struct {
	sessions *service.SessionStore
	menu     service.MenuService
	logging  service.LoggingService
}

// NewCartHandler creates a new CartHandler instance.
func NewCartHandler(sessions *service.SessionStore, menu service.MenuService, logging service.LoggingService) *CartHandler {
	return &CartHandler{
		sessions: sessions,
		menu:     menu,
		logging:  logging,
	}
}

// addItemResult pairs the affected line with the resulting cart state.
//
// @Description Result of adding an offering to the cart
type addItemResult struct {
	// Line is the cart line the add landed on, after merging.
	Line model.CartLine `json:"line"`
	// Cart is the full cart state after the add.
	Cart model.CartSnapshot `json:"cart"`
} // @name AddItemResult

// AddItem handles POST /api/cart/items requests.
//
// @Summary      Add an offering to the cart
// @Description  Adds the given quantity of an offering to the session's cart. Adds that carry the same offering and the same customization identity (size, spice level, special instructions) merge into one line; differently customized adds stay separate. Supports idempotency via Idempotency-Key header.
// @Tags         Cart
// @Accept       json
// @Produce      json
// @Param        Idempotency-Key header string false "Idempotency key for request deduplication"
// @Param        request body dto.AddItemRequest true "Offering and quantity to add"
// @Success      201 {object} dto.SuccessResponse "Line after the add plus the updated cart"
// @Failure      400 {object} dto.ErrorResponse "Bad request - invalid input"
// @Failure      404 {object} dto.ErrorResponse "Not found - unknown offering"
// @Failure      429 {object} dto.ErrorResponse "Too many requests - rate limit exceeded"
// @Failure      500 {object} dto.ErrorResponse "Internal server error"
// @Router       /api/cart/items [post]
func (h *CartHandler) AddItem(c *gin.Context) {
	builder := NewResponseBuilder(c)

	req, err := BuildRequestAndValidate[dto.AddItemRequest](c)
	if err != nil {
		var validationErr *dto.ValidationError
		if errors.As(err, &validationErr) {
			metrics.RecordCartOperation("add_item", "validation_error")
			builder.ErrorWithMessage(http.StatusBadRequest, validationErr.Error(), err)
		} else {
			builder.Error(http.StatusBadRequest, i18n.ErrKeyInvalidRequestBody, err)
		}
		return
	}

	offering, err := h.menu.GetOffering(c.Request.Context(), req.OfferingID)
	if err != nil {
		metrics.RecordCartOperation("add_item", "error")
		builder.Error(http.StatusInternalServerError, i18n.ErrKeyInternalError, err)
		return
	}
	if offering == nil {
		metrics.RecordCartOperation("add_item", "not_found")
		builder.Error(http.StatusNotFound, i18n.ErrKeyOfferingNotFound, nil)
		return
	}

	customization, err := h.mapCustomization(req.Customization)
	if err != nil {
		metrics.RecordCartOperation("add_item", "validation_error")
		builder.Error(http.StatusBadRequest, i18n.ErrKeyInvalidRequestBody, err)
		return
	}

	cart := h.sessions.GetOrCreate(middleware.GetSessionID(c))
	line, err := cart.AddItem(*offering, req.Quantity, customization)
	if err != nil {
		metrics.RecordCartOperation("add_item", "error")
		switch {
		case errors.Is(err, service.ErrInvalidQuantity):
			builder.Error(http.StatusBadRequest, i18n.ErrKeyValidationQuantity, err)
		default:
			builder.Error(http.StatusBadRequest, i18n.ErrKeyInvalidRequestBody, err)
		}
		return
	}

	metrics.RecordCartOperation("add_item", "success")
	middleware.AuditLog(h.logging, c, model.ActionAddItem, "Item added to cart", map[string]interface{}{
		"offering_id":  req.OfferingID,
		"identity_key": line.IdentityKey,
		"quantity":     req.Quantity,
	})

	builder.SuccessCreated(addItemResult{Line: line, Cart: cart.Snapshot()})
}

// GetCart handles GET /api/cart requests.
//
// @Summary      Get the cart
// @Description  Returns the session's cart: lines in the order they were first added, plus total item count and total amount. A session without a cart gets an empty cart.
// @Tags         Cart
// @Produce      json
// @Success      200 {object} dto.SuccessResponse "Current cart state"
// @Router       /api/cart [get]
func (h *CartHandler) GetCart(c *gin.Context) {
	builder := NewResponseBuilder(c)

	cart, ok := h.sessions.Get(middleware.GetSessionID(c))
	if !ok {
		builder.SuccessOK(h.emptySnapshot())
		return
	}
	builder.SuccessOK(cart.Snapshot())
}

// SetQuantity handles PUT /api/cart/items/:key requests.
//
// @Summary      Set a cart line's quantity
// @Description  Replaces the quantity of the line addressed by the identity key. A quantity of zero removes the line. The line's unit price is never recomputed.
// @Tags         Cart
// @Accept       json
// @Produce      json
// @Param        key path string true "Identity key of the cart line"
// @Param        request body dto.SetQuantityRequest true "New quantity"
// @Success      200 {object} dto.SuccessResponse "Updated cart state"
// @Failure      400 {object} dto.ErrorResponse "Bad request - negative quantity"
// @Failure      404 {object} dto.ErrorResponse "Not found - no line with that key"
// @Router       /api/cart/items/{key} [put]
func (h *CartHandler) SetQuantity(c *gin.Context) {
	builder := NewResponseBuilder(c)
	identityKey := c.Param("key")

	req, err := BuildRequestAndValidate[dto.SetQuantityRequest](c)
	if err != nil {
		var validationErr *dto.ValidationError
		if errors.As(err, &validationErr) {
			metrics.RecordCartOperation("set_quantity", "validation_error")
			builder.ErrorWithMessage(http.StatusBadRequest, validationErr.Error(), err)
		} else {
			builder.Error(http.StatusBadRequest, i18n.ErrKeyInvalidRequestBody, err)
		}
		return
	}

	cart, ok := h.sessions.Get(middleware.GetSessionID(c))
	if !ok {
		metrics.RecordCartOperation("set_quantity", "not_found")
		builder.Error(http.StatusNotFound, i18n.ErrKeyLineNotFound, nil)
		return
	}

	if !cart.SetQuantity(identityKey, req.Quantity) {
		metrics.RecordCartOperation("set_quantity", "not_found")
		builder.Error(http.StatusNotFound, i18n.ErrKeyLineNotFound, nil)
		return
	}

	metrics.RecordCartOperation("set_quantity", "success")
	middleware.AuditLog(h.logging, c, model.ActionSetQuantity, "Cart line quantity set", map[string]interface{}{
		"identity_key": identityKey,
		"quantity":     req.Quantity,
	})

	builder.SuccessOK(cart.Snapshot())
}

// RemoveLine handles DELETE /api/cart/items/:key requests.
//
// @Summary      Remove a cart line
// @Description  Removes the line addressed by the identity key. Removing an absent line is a no-op; the response is the cart state either way.
// @Tags         Cart
// @Produce      json
// @Param        key path string true "Identity key of the cart line"
// @Success      200 {object} dto.SuccessResponse "Updated cart state"
// @Router       /api/cart/items/{key} [delete]
func (h *CartHandler) RemoveLine(c *gin.Context) {
	builder := NewResponseBuilder(c)
	identityKey := c.Param("key")

	cart, ok := h.sessions.Get(middleware.GetSessionID(c))
	if !ok {
		builder.SuccessOK(h.emptySnapshot())
		return
	}

	removed := cart.RemoveLine(identityKey)
	if removed {
		metrics.RecordCartOperation("remove_line", "success")
		middleware.AuditLog(h.logging, c, model.ActionRemoveLine, "Cart line removed", map[string]interface{}{
			"identity_key": identityKey,
		})
	} else {
		metrics.RecordCartOperation("remove_line", "not_found")
	}

	builder.SuccessOK(cart.Snapshot())
}

// ClearCart handles DELETE /api/cart requests.
//
// @Summary      Clear the cart
// @Description  Removes every line and resets the totals. Unconditional; any confirmation step belongs to the client.
// @Tags         Cart
// @Produce      json
// @Success      200 {object} dto.SuccessResponse "Empty cart state"
// @Router       /api/cart [delete]
func (h *CartHandler) ClearCart(c *gin.Context) {
	builder := NewResponseBuilder(c)

	sessionID := middleware.GetSessionID(c)
	if cart, ok := h.sessions.Get(sessionID); ok {
		cart.Clear()
		snapshot := cart.Snapshot()
		// An emptied cart has nothing left worth keeping in the store;
		// the next mutation recreates it under the same session.
		h.sessions.Drop(sessionID)
		metrics.RecordCartOperation("clear", "success")
		middleware.AuditLog(h.logging, c, model.ActionClear, "Cart cleared", nil)
		builder.SuccessOK(snapshot)
		return
	}

	builder.SuccessOK(h.emptySnapshot())
}

// quantityResult reports the in-cart quantity for one offering variant.
//
// @Description In-cart quantity for one offering variant
type quantityResult struct {
	OfferingID  string `json:"offering_id" example:"dish-madras-curry"`
	IdentityKey string `json:"identity_key" example:"plain:dish-madras-curry"`
	Quantity    int    `json:"quantity" example:"2"`
} // @name QuantityResult

// GetQuantity handles GET /api/cart/quantity requests.
//
// @Summary      Get the in-cart quantity of an offering variant
// @Description  Returns the quantity of the cart line matching the given offering and customization identity (size, spice level, special instructions), zero when absent. Menu surfaces use this to render per-variant badges.
// @Tags         Cart
// @Produce      json
// @Param        offering_id query string true "Offering to look up"
// @Param        size query string false "Customization size"
// @Param        spice_level query string false "Customization spice level"
// @Param        special_instructions query string false "Customization special instructions"
// @Success      200 {object} dto.SuccessResponse "Quantity for the variant"
// @Failure      400 {object} dto.ErrorResponse "Bad request - missing offering_id"
// @Router       /api/cart/quantity [get]
func (h *CartHandler) GetQuantity(c *gin.Context) {
	builder := NewResponseBuilder(c)

	offeringID := c.Query("offering_id")
	if offeringID == "" {
		builder.Error(http.StatusBadRequest, i18n.ErrKeyInvalidRequest, nil)
		return
	}

	var customization *model.Customization
	size := c.Query("size")
	spiceLevel := c.Query("spice_level")
	instructions := c.Query("special_instructions")
	if size != "" || spiceLevel != "" || instructions != "" {
		customization = &model.Customization{
			Size:                size,
			SpiceLevel:          spiceLevel,
			SpecialInstructions: instructions,
		}
	}

	identityKey := service.DeriveIdentityKey(offeringID, customization)

	quantity := 0
	if cart, ok := h.sessions.Get(middleware.GetSessionID(c)); ok {
		quantity = cart.QuantityForIdentity(identityKey)
	}

	builder.SuccessOK(quantityResult{
		OfferingID:  offeringID,
		IdentityKey: identityKey,
		Quantity:    quantity,
	})
}

// mapCustomization converts the request customization into the domain type,
// parsing the computed total in the store currency.
func (h *CartHandler) mapCustomization(in *dto.CustomizationDTO) (*model.Customization, error) {
	if in == nil {
		return nil, nil
	}

	customization := &model.Customization{
		Size:                in.Size,
		SpiceLevel:          in.SpiceLevel,
		SpecialInstructions: in.SpecialInstructions,
		ConfiguredQuantity:  in.ConfiguredQuantity,
	}

	if in.ComputedTotal != "" {
		amount, err := decimal.NewFromString(in.ComputedTotal)
		if err != nil {
			return nil, err
		}
		customization.ComputedTotal = model.NewMoney(amount, h.sessions.Currency())
	}

	return customization, nil
}

// emptySnapshot is the cart state of a session with no cart.
func (h *CartHandler) emptySnapshot() model.CartSnapshot {
	return model.CartSnapshot{
		Lines:       []model.CartLine{},
		TotalAmount: model.ZeroMoney(h.sessions.Currency()),
	}
}
