package http

import (
	"github.com/forkful/cart-service/internal/service"
	"github.com/gin-gonic/gin"
)

// CartRoutes handles cart, menu, and checkout route registration.
type CartRoutes struct {
	cartHandler     *CartHandler
	menuHandler     *MenuHandler
	checkoutHandler *CheckoutHandler
}

// NewCartRoutes creates a new CartRoutes instance.
func NewCartRoutes(sessions *service.SessionStore, menu service.MenuService, checkout service.CheckoutService, logging service.LoggingService) *CartRoutes {
	r := &CartRoutes{
		cartHandler: NewCartHandler(sessions, menu, logging),
		menuHandler: NewMenuHandler(menu),
	}
	if checkout != nil {
		r.checkoutHandler = NewCheckoutHandler(checkout)
	}
	return r
}

// RegisterRoutes registers all cart service routes on the API group.
func (r *CartRoutes) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/menu", r.menuHandler.ListOfferings)
	rg.GET("/menu/:id", r.menuHandler.GetOffering)

	rg.GET("/cart", r.cartHandler.GetCart)
	rg.DELETE("/cart", r.cartHandler.ClearCart)
	rg.GET("/cart/quantity", r.cartHandler.GetQuantity)
	rg.POST("/cart/items", r.cartHandler.AddItem)
	rg.PUT("/cart/items/:key", r.cartHandler.SetQuantity)
	rg.DELETE("/cart/items/:key", r.cartHandler.RemoveLine)

	if r.checkoutHandler != nil {
		rg.POST("/checkout", r.checkoutHandler.Checkout)
	}
}

// GetCartHandler returns the underlying cart handler.
func (r *CartRoutes) GetCartHandler() *CartHandler {
	return r.cartHandler
}
