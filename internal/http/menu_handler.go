package http

import (
	"net/http"

	"github.com/forkful/cart-service/internal/i18n"
	"github.com/forkful/cart-service/internal/service"
	"github.com/gin-gonic/gin"
)

// MenuHandler provides HTTP handlers for menu catalog routes.
type MenuHandler struct {
	menu service.MenuService
}

// NewMenuHandler creates a new MenuHandler instance.
func NewMenuHandler(menu service.MenuService) *MenuHandler {
	return &MenuHandler{menu: menu}
}

// ListOfferings handles GET /api/menu requests.
//
// @Summary      List menu offerings
// @Description  Returns the browsable menu catalog. Served from a short-lived cache; falls back to the built-in catalog when the database is unavailable.
// @Tags         Menu
// @Produce      json
// @Success      200 {object} dto.SuccessResponse "Menu offerings"
// @Failure      500 {object} dto.ErrorResponse "Internal server error"
// @Router       /api/menu [get]
func (h *MenuHandler) ListOfferings(c *gin.Context) {
	builder := NewResponseBuilder(c)

	offerings, err := h.menu.ListOfferings(c.Request.Context())
	if err != nil {
		builder.Error(http.StatusInternalServerError, i18n.ErrKeyInternalError, err)
		return
	}

	builder.SuccessOK(offerings)
}

// GetOffering handles GET /api/menu/:id requests.
//
// @Summary      Get one menu offering
// @Description  Returns a single offering by its catalog ID.
// @Tags         Menu
// @Produce      json
// @Param        id path string true "Offering ID"
// @Success      200 {object} dto.SuccessResponse "The offering"
// @Failure      404 {object} dto.ErrorResponse "Not found - unknown offering"
// @Failure      500 {object} dto.ErrorResponse "Internal server error"
// @Router       /api/menu/{id} [get]
func (h *MenuHandler) GetOffering(c *gin.Context) {
	builder := NewResponseBuilder(c)

	offering, err := h.menu.GetOffering(c.Request.Context(), c.Param("id"))
	if err != nil {
		builder.Error(http.StatusInternalServerError, i18n.ErrKeyInternalError, err)
		return
	}
	if offering == nil {
		builder.Error(http.StatusNotFound, i18n.ErrKeyOfferingNotFound, nil)
		return
	}

	builder.SuccessOK(offering)
}
