// Package app provides router configuration.
package app

import (
	"github.com/forkful/cart-service/config"
	"github.com/forkful/cart-service/internal/http"
	"github.com/forkful/cart-service/internal/middleware"
	"github.com/forkful/cart-service/internal/service"
)

// RouterComponents holds router-related components.
type RouterComponents struct {
	HealthHandler *http.HealthHandler
	Config        http.RouterConfig
}

// InitializeRouter initializes HTTP handlers and router configuration.
func InitializeRouter(
	services *ServiceComponents,
	dbComponents *DatabaseComponents,
	cfg config.Config,
) *RouterComponents {
	var loggingService service.LoggingService
	if dbComponents != nil {
		loggingService = dbComponents.LoggingService
	}

	healthHandler := http.NewHealthHandler()

	// Register circuit breakers for health monitoring
	if dbComponents != nil {
		if dbComponents.MenuCircuitBreaker != nil {
			healthHandler.RegisterCircuitBreaker("mongodb_menu", dbComponents.MenuCircuitBreaker)
		}
		if dbComponents.LogsCircuitBreaker != nil {
			healthHandler.RegisterCircuitBreaker("mongodb_logs", dbComponents.LogsCircuitBreaker)
		}
	}
	if services.OrderClient != nil {
		healthHandler.RegisterCircuitBreaker("order_backend", services.OrderClient.Breaker())
	}

	routerCfg := http.RouterConfig{
		RateLimit:         cfg.Server.RateLimit,
		RateWindow:        cfg.Server.RateWindow,
		RequestTimeout:    cfg.Server.RequestTimeout,
		EnableIdempotency: true,
		CORSOrigins:       cfg.Server.CORSOrigins,
		SwaggerUser:       cfg.Server.SwaggerUser,
		SwaggerPass:       cfg.Server.SwaggerPass,
		Session: middleware.SessionConfig{
			Secret:       []byte(cfg.Session.TokenSecret),
			TokenTTL:     cfg.Session.TokenTTL,
			SecureCookie: cfg.Session.SecureCookie,
		},
		LoggingService:  loggingService,
		MenuService:     services.Menu,
		CheckoutService: services.Checkout,
		Sessions:        services.Sessions,
	}

	return &RouterComponents{
		HealthHandler: healthHandler,
		Config:        routerCfg,
	}
}
