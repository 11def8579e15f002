// Package app provides service initialization.
package app

import (
	"github.com/forkful/cart-service/config"
	"github.com/forkful/cart-service/internal/circuitbreaker"
	"github.com/forkful/cart-service/internal/repository"
	"github.com/forkful/cart-service/internal/service"
	"github.com/rs/zerolog/log"
	"golang.org/x/text/currency"
)

// ServiceComponents holds service-related components.
type ServiceComponents struct {
	Sessions    *service.SessionStore
	Menu        service.MenuService
	OrderClient *service.HTTPOrderClient
	Checkout    service.CheckoutService
}

// InitializeServices initializes business logic services.
func InitializeServices(cfg config.Config, dbComponents *DatabaseComponents) *ServiceComponents {
	unit, err := currency.ParseISO(cfg.Session.Currency)
	if err != nil {
		log.Warn().Str("currency", cfg.Session.Currency).Msg("Unknown currency code, falling back to USD")
		unit = currency.USD
	}

	sessions := service.NewSessionStore(cfg.Session.Capacity, cfg.Session.TTL, unit)

	var menuRepo repository.MenuRepositoryInterface
	var loggingService service.LoggingService
	if dbComponents != nil {
		menuRepo = dbComponents.MenuRepo
		loggingService = dbComponents.LoggingService
	}

	menu := service.NewMenuService(menuRepo, service.WithMenuCacheTTL(cfg.Menu.CacheTTL))

	components := &ServiceComponents{
		Sessions: sessions,
		Menu:     menu,
	}

	// The order backend is optional; without it checkout is not exposed.
	if cfg.Checkout.OrderAPIURL != "" {
		orderCB := circuitbreaker.New(circuitbreaker.Config{
			FailureThreshold: cfg.Checkout.CircuitBreakerFailureThreshold,
			SuccessThreshold: cfg.Checkout.CircuitBreakerSuccessThreshold,
			Timeout:          cfg.Checkout.CircuitBreakerTimeout,
			Name:             "order-backend",
		})
		orderClient := service.NewHTTPOrderClient(
			cfg.Checkout.OrderAPIURL,
			service.WithOrderTimeout(cfg.Checkout.Timeout),
			service.WithOrderCircuitBreaker(orderCB),
		)
		components.OrderClient = orderClient
		components.Checkout = service.NewCheckoutService(sessions, orderClient, loggingService)
	} else {
		log.Info().Msg("ORDER_API_URL not set, checkout endpoint disabled")
	}

	return components
}
