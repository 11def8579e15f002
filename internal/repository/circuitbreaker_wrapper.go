// Package repository provides circuit breaker wrappers for MongoDB operations.
package repository

import (
	"context"

	"github.com/forkful/cart-service/internal/circuitbreaker"
	"github.com/forkful/cart-service/internal/domain/model"
)

// MenuRepositoryWithCircuitBreaker wraps MenuRepository with circuit breaker protection.
type MenuRepositoryWithCircuitBreaker struct {
	repo           *MenuRepository
	circuitBreaker *circuitbreaker.CircuitBreaker
}

// NewMenuRepositoryWithCircuitBreaker creates a new repository wrapper with circuit breaker.
func NewMenuRepositoryWithCircuitBreaker(repo *MenuRepository, cb *circuitbreaker.CircuitBreaker) *MenuRepositoryWithCircuitBreaker {
	return &MenuRepositoryWithCircuitBreaker{
		repo:           repo,
		circuitBreaker: cb,
	}
}

// GetByID returns one offering with circuit breaker protection.
// When the circuit is open the caller falls back to the seeded catalog.
func (r *MenuRepositoryWithCircuitBreaker) GetByID(ctx context.Context, id string) (*model.MenuOffering, error) {
	var result *model.MenuOffering
	err := r.circuitBreaker.Execute(ctx, func() error {
		var cbErr error
		result, cbErr = r.repo.GetByID(ctx, id)
		return cbErr
	})
	if err == circuitbreaker.ErrCircuitOpen {
		return nil, nil
	}
	return result, err
}

// List returns the catalog with circuit breaker protection.
func (r *MenuRepositoryWithCircuitBreaker) List(ctx context.Context) ([]model.MenuOffering, error) {
	var result []model.MenuOffering
	err := r.circuitBreaker.Execute(ctx, func() error {
		var cbErr error
		result, cbErr = r.repo.List(ctx)
		return cbErr
	})
	if err == circuitbreaker.ErrCircuitOpen {
		return nil, nil
	}
	return result, err
}

// Upsert writes an offering with circuit breaker protection.
func (r *MenuRepositoryWithCircuitBreaker) Upsert(ctx context.Context, offering model.MenuOffering) error {
	return r.circuitBreaker.Execute(ctx, func() error {
		return r.repo.Upsert(ctx, offering)
	})
}

// LogsRepositoryWithCircuitBreaker wraps LogsRepository with circuit breaker protection.
type LogsRepositoryWithCircuitBreaker struct {
	repo           *LogsRepository
	circuitBreaker *circuitbreaker.CircuitBreaker
}

// NewLogsRepositoryWithCircuitBreaker creates a new logs repository wrapper with circuit breaker.
func NewLogsRepositoryWithCircuitBreaker(repo *LogsRepository, cb *circuitbreaker.CircuitBreaker) *LogsRepositoryWithCircuitBreaker {
	return &LogsRepositoryWithCircuitBreaker{
		repo:           repo,
		circuitBreaker: cb,
	}
}

// Create writes one log entry with circuit breaker protection.
func (r *LogsRepositoryWithCircuitBreaker) Create(ctx context.Context, entry *LogEntryDocument) error {
	return r.circuitBreaker.Execute(ctx, func() error {
		return r.repo.Create(ctx, entry)
	})
}

// CreateMany writes log entries in bulk with circuit breaker protection.
func (r *LogsRepositoryWithCircuitBreaker) CreateMany(ctx context.Context, entries []*LogEntryDocument) error {
	return r.circuitBreaker.Execute(ctx, func() error {
		return r.repo.CreateMany(ctx, entries)
	})
}

// Query reads log entries with circuit breaker protection.
func (r *LogsRepositoryWithCircuitBreaker) Query(ctx context.Context, opts LogQueryOptions) ([]*LogEntryDocument, error) {
	var result []*LogEntryDocument
	err := r.circuitBreaker.Execute(ctx, func() error {
		var cbErr error
		result, cbErr = r.repo.Query(ctx, opts)
		return cbErr
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

// Count counts log entries with circuit breaker protection.
func (r *LogsRepositoryWithCircuitBreaker) Count(ctx context.Context, opts LogQueryOptions) (int64, error) {
	var result int64
	err := r.circuitBreaker.Execute(ctx, func() error {
		var cbErr error
		result, cbErr = r.repo.Count(ctx, opts)
		return cbErr
	})
	if err != nil {
		return 0, err
	}
	return result, nil
}
