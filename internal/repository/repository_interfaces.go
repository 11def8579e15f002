// Package repository provides interfaces for repository operations.
package repository

import (
	"context"

	"github.com/forkful/cart-service/internal/domain/model"
)

// MenuRepositoryInterface defines the interface for menu catalog operations.
type MenuRepositoryInterface interface {
	GetByID(ctx context.Context, id string) (*model.MenuOffering, error)
	List(ctx context.Context) ([]model.MenuOffering, error)
	Upsert(ctx context.Context, offering model.MenuOffering) error
}

// LogsRepositoryInterface defines the interface for logs repository operations.
type LogsRepositoryInterface interface {
	Create(ctx context.Context, entry *LogEntryDocument) error
	CreateMany(ctx context.Context, entries []*LogEntryDocument) error
	Query(ctx context.Context, opts LogQueryOptions) ([]*LogEntryDocument, error)
	Count(ctx context.Context, opts LogQueryOptions) (int64, error)
}
