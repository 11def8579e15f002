package service

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/forkful/cart-service/internal/domain/model"
	"github.com/forkful/cart-service/internal/metrics"
	"github.com/forkful/cart-service/internal/repository"
	"golang.org/x/text/currency"
)

// DefaultOfferings is the built-in catalog used when no MongoDB catalog is
// configured, so the service runs standalone in development. Prices are
// minor units (cents).
var DefaultOfferings = []model.MenuOffering{
	{ID: "dish-madras-curry", Name: "Madras Curry", BasePrice: model.MoneyFromMinorUnits(1250, currency.USD), Category: "mains", DietaryTag: "veg"},
	{ID: "dish-tandoori-chicken", Name: "Tandoori Chicken", BasePrice: model.MoneyFromMinorUnits(1575, currency.USD), Category: "mains"},
	{ID: "dish-garlic-naan", Name: "Garlic Naan", BasePrice: model.MoneyFromMinorUnits(350, currency.USD), Category: "sides", DietaryTag: "veg"},
	{ID: "dish-samosa", Name: "Vegetable Samosa", BasePrice: model.MoneyFromMinorUnits(475, currency.USD), Category: "starters", DietaryTag: "vegan"},
	{ID: "drink-mango-lassi", Name: "Mango Lassi", BasePrice: model.MoneyFromMinorUnits(425, currency.USD), Category: "drinks", DietaryTag: "veg"},
}

// MenuService defines read access to the menu catalog for the cart and menu
// surfaces.
type MenuService interface {
	// GetOffering returns one offering, or nil when unknown.
	GetOffering(ctx context.Context, id string) (*model.MenuOffering, error)
	// ListOfferings returns the browsable catalog.
	ListOfferings(ctx context.Context) ([]model.MenuOffering, error)
	// InvalidateCache clears the catalog cache (useful after catalog updates).
	InvalidateCache()
}

// MenuOption configures a MenuServiceImpl.
type MenuOption func(*MenuServiceImpl)

// WithMenuCacheTTL sets how long catalog reads are served from cache.
func WithMenuCacheTTL(ttl time.Duration) MenuOption {
	return func(s *MenuServiceImpl) {
		s.cacheTTL = ttl
	}
}

// WithDefaultOfferings overrides the built-in fallback catalog.
func WithDefaultOfferings(offerings []model.MenuOffering) MenuOption {
	return func(s *MenuServiceImpl) {
		s.defaults = make([]model.MenuOffering, len(offerings))
		copy(s.defaults, offerings)
	}
}

// MenuServiceImpl implements MenuService over an optional MongoDB-backed
// repository with a TTL cache. With a nil repository it serves the default
// catalog only.
type MenuServiceImpl struct {
	repo     repository.MenuRepositoryInterface
	defaults []model.MenuOffering
	cacheTTL time.Duration

	mu        sync.Mutex
	cached    []model.MenuOffering
	byID      map[string]model.MenuOffering
	expiresAt time.Time
}

// NewMenuService creates a menu service with the given options.
func NewMenuService(repo repository.MenuRepositoryInterface, opts ...MenuOption) *MenuServiceImpl {
	s := &MenuServiceImpl{
		repo:     repo,
		cacheTTL: 30 * time.Second,
		defaults: DefaultOfferings,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// GetOffering returns one offering by id, from cache when fresh.
func (s *MenuServiceImpl) GetOffering(ctx context.Context, id string) (*model.MenuOffering, error) {
	_, byID, err := s.catalog(ctx)
	if err != nil {
		return nil, err
	}

	if offering, ok := byID[id]; ok {
		return &offering, nil
	}
	return nil, nil
}

// ListOfferings returns the browsable catalog, from cache when fresh.
func (s *MenuServiceImpl) ListOfferings(ctx context.Context) ([]model.MenuOffering, error) {
	offerings, _, err := s.catalog(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]model.MenuOffering, len(offerings))
	copy(out, offerings)
	return out, nil
}

// InvalidateCache clears the catalog cache.
func (s *MenuServiceImpl) InvalidateCache() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.expiresAt = time.Time{}
	metrics.RecordMenuCacheOperation("invalidate", "success")
}

// catalog returns the cached catalog, refreshing it from the repository
// when stale. Falls back to the default catalog when the repository is
// unavailable or empty.
func (s *MenuServiceImpl) catalog(ctx context.Context) ([]model.MenuOffering, map[string]model.MenuOffering, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if time.Now().Before(s.expiresAt) {
		metrics.RecordMenuCacheOperation("get", "hit")
		return s.cached, s.byID, nil
	}
	metrics.RecordMenuCacheOperation("get", "miss")

	offerings, err := s.load(ctx)
	if err != nil {
		return nil, nil, fmt.Errorf("load catalog: %w", err)
	}

	byID := make(map[string]model.MenuOffering, len(offerings))
	for _, offering := range offerings {
		byID[offering.ID] = offering
	}

	s.cached = offerings
	s.byID = byID
	s.expiresAt = time.Now().Add(s.cacheTTL)
	return s.cached, s.byID, nil
}

// load fetches the catalog from the repository, or the defaults when the
// repository is nil or has nothing to offer. Caller holds s.mu.
func (s *MenuServiceImpl) load(ctx context.Context) ([]model.MenuOffering, error) {
	if s.repo == nil {
		return s.defaults, nil
	}

	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()

	offerings, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	if len(offerings) == 0 {
		// Empty or circuit-broken catalog: keep the menu browsable.
		return s.defaults, nil
	}
	return offerings, nil
}
