// Package app provides database initialization and setup.
package app

import (
	"context"
	"time"

	"github.com/forkful/cart-service/config"
	"github.com/forkful/cart-service/internal/circuitbreaker"
	"github.com/forkful/cart-service/internal/middleware"
	"github.com/forkful/cart-service/internal/repository"
	"github.com/forkful/cart-service/internal/service"
	"github.com/rs/zerolog/log"
)

// DatabaseComponents holds database-related components.
type DatabaseComponents struct {
	MenuRepo           repository.MenuRepositoryInterface
	LoggingService     service.LoggingService
	MenuCircuitBreaker *circuitbreaker.CircuitBreaker
	LogsCircuitBreaker *circuitbreaker.CircuitBreaker
}

// InitializeDatabase initializes MongoDB connection and creates required repositories and services.
// Returns nil if database is disabled or connection fails.
func InitializeDatabase(cfg config.DatabaseConfig) *DatabaseComponents {
	if !cfg.Enabled {
		return nil
	}

	db, err := repository.NewMongoDB(cfg.URI, cfg.DatabaseName)
	if err != nil {
		log.Error().Err(err).Msg("Failed to connect to MongoDB - continuing without database")
		return nil
	}

	log.Info().Msg("Connected to MongoDB")

	// Set TTL for logs
	ttlDays := int(cfg.LogsTTL.Hours() / 24)
	if err := db.SetLogsTTL(context.Background(), ttlDays); err != nil {
		log.Warn().Err(err).Msg("Failed to set logs TTL index (may already exist)")
	}

	// Initialize circuit breakers
	menuCB := circuitbreaker.New(circuitbreaker.Config{
		FailureThreshold: cfg.CircuitBreakerFailureThreshold,
		SuccessThreshold: cfg.CircuitBreakerSuccessThreshold,
		Timeout:          cfg.CircuitBreakerTimeout,
		Name:             "mongodb-menu",
	})

	logsCB := circuitbreaker.New(circuitbreaker.Config{
		FailureThreshold: cfg.CircuitBreakerFailureThreshold,
		SuccessThreshold: cfg.CircuitBreakerSuccessThreshold,
		Timeout:          cfg.CircuitBreakerTimeout,
		Name:             "mongodb-logs",
	})

	// Initialize repositories
	logsRepo := repository.NewLogsRepository(db)
	logsRepoWithCB := repository.NewLogsRepositoryWithCircuitBreaker(logsRepo, logsCB)
	loggingService := service.NewLoggingService(logsRepoWithCB)

	// Request logs flow through the buffered async writer so slow Mongo
	// writes never sit on the request path.
	middleware.InitAsyncLogger(loggingService, middleware.DefaultAsyncLoggerConfig())

	menuRepo := repository.NewMenuRepository(db)
	menuRepoWithCB := repository.NewMenuRepositoryWithCircuitBreaker(menuRepo, menuCB)

	// Seed the catalog if it is empty
	if err := initializeDefaultOfferings(menuRepoWithCB); err != nil {
		log.Warn().Err(err).Msg("Failed to seed default menu offerings")
	}

	return &DatabaseComponents{
		MenuRepo:           menuRepoWithCB,
		LoggingService:     loggingService,
		MenuCircuitBreaker: menuCB,
		LogsCircuitBreaker: logsCB,
	}
}

// initializeDefaultOfferings seeds the built-in catalog when the menu
// collection is empty.
func initializeDefaultOfferings(repo repository.MenuRepositoryInterface) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	existing, err := repo.List(ctx)
	if err != nil {
		return err
	}
	if len(existing) > 0 {
		return nil
	}

	for _, offering := range service.DefaultOfferings {
		if err := repo.Upsert(ctx, offering); err != nil {
			return err
		}
	}
	log.Info().Int("count", len(service.DefaultOfferings)).Msg("Seeded default menu offerings")
	return nil
}
