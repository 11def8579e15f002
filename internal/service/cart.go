// Package service contains the business logic for the cart service.
package service

import (
	"errors"
	"sync"

	"github.com/forkful/cart-service/internal/domain/model"
	"github.com/rs/zerolog/log"
	"golang.org/x/text/currency"
)

var (
	// ErrInvalidQuantity is returned when an add-to-cart quantity is not positive.
	ErrInvalidQuantity = errors.New("quantity must be a positive integer")
	// ErrMissingOfferingID is returned when an offering carries no identifier.
	ErrMissingOfferingID = errors.New("offering has no identifier")
	// ErrCurrencyMismatch is returned when a line's currency differs from the cart's.
	ErrCurrencyMismatch = errors.New("offering currency does not match cart currency")
)

// Cart is the authoritative in-memory state of one shopping session: the set
// of distinct purchasable lines plus the two derived aggregates. Every
// mutation is atomic under the cart's lock, so no reader ever observes a
// partially updated state and the aggregates always match the lines.
//
// Lines keep their first-insertion order across quantity edits; only removal
// takes a line out of the sequence.
type Cart struct {
	mu          sync.Mutex
	currency    currency.Unit
	lines       map[string]*model.CartLine
	order       []string
	totalItems  int
	totalAmount model.Money
}

// NewCart creates an empty cart priced in the given currency.
func NewCart(unit currency.Unit) *Cart {
	return &Cart{
		currency:    unit,
		lines:       make(map[string]*model.CartLine),
		totalAmount: model.ZeroMoney(unit),
	}
}

// AddItem adds quantity units of the offering, merged with any existing line
// that shares the same identity key. When a line already exists its recorded
// unit price wins: identical identity implies identical configuration, so a
// diverging price indicates a caller bug and is logged, not applied.
//
// Returns the resulting line (a copy) for the caller to render.
func (c *Cart) AddItem(offering model.MenuOffering, quantity int, customization *model.Customization) (model.CartLine, error) {
	if quantity <= 0 {
		return model.CartLine{}, ErrInvalidQuantity
	}
	if offering.ID == "" {
		return model.CartLine{}, ErrMissingOfferingID
	}

	unitPrice, err := ResolveUnitPrice(offering, customization)
	if err != nil {
		return model.CartLine{}, err
	}
	if unitPrice.Currency != c.currency {
		return model.CartLine{}, ErrCurrencyMismatch
	}

	key := DeriveIdentityKey(offering.ID, customization)

	c.mu.Lock()
	defer c.mu.Unlock()

	line, exists := c.lines[key]
	if !exists {
		line = &model.CartLine{
			OfferingID:  offering.ID,
			IdentityKey: key,
			Name:        offering.Name,
			UnitPrice:   unitPrice,
			Quantity:    0,
		}
		if customization != nil {
			captured := *customization
			line.Customization = &captured
		}
		c.lines[key] = line
		c.order = append(c.order, key)
	} else if !line.UnitPrice.Equal(unitPrice) {
		// Identity fields are equal but the computed price diverged.
		// Unreachable when the customization flow is consistent; keep the
		// first recorded price and flag the inconsistency.
		log.Warn().
			Str("identity_key", key).
			Str("existing_price", line.UnitPrice.String()).
			Str("incoming_price", unitPrice.String()).
			Msg("Price diverged for identical cart identity, keeping original")
	}

	line.Quantity += quantity
	c.applyDelta(quantity, line.UnitPrice)

	return *line, nil
}

// RemoveLine deletes the line addressed by the identity key and subtracts
// its contribution from the aggregates. Removing an absent key is a no-op;
// the return value reports whether a line was removed.
func (c *Cart) RemoveLine(identityKey string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.removeLocked(identityKey)
}

// SetQuantity replaces the quantity of the line addressed by the identity
// key. A new quantity of zero or less removes the line. The line's unit
// price never changes here: quantity edits never re-price.
// Returns false when no line with the key exists.
func (c *Cart) SetQuantity(identityKey string, newQuantity int) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	line, exists := c.lines[identityKey]
	if !exists {
		return false
	}

	if newQuantity <= 0 {
		return c.removeLocked(identityKey)
	}

	delta := newQuantity - line.Quantity
	line.Quantity = newQuantity
	c.applyDelta(delta, line.UnitPrice)
	return true
}

// Clear resets the cart to empty. Unconditional; confirmation UX belongs to
// the caller.
func (c *Cart) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.lines = make(map[string]*model.CartLine)
	c.order = nil
	c.totalItems = 0
	c.totalAmount = model.ZeroMoney(c.currency)
}

// QuantityForIdentity returns the quantity of the line addressed by the
// identity key, or 0 when absent.
func (c *Cart) QuantityForIdentity(identityKey string) int {
	c.mu.Lock()
	defer c.mu.Unlock()

	if line, ok := c.lines[identityKey]; ok {
		return line.Quantity
	}
	return 0
}

// QuantityForOffering derives the identity key for the (offering,
// customization) pair and returns that line's quantity. Menu surfaces use
// this to render "N in cart" badges per displayed variant.
func (c *Cart) QuantityForOffering(offeringID string, customization *model.Customization) int {
	return c.QuantityForIdentity(DeriveIdentityKey(offeringID, customization))
}

// Snapshot returns a read-only copy of the cart: lines in insertion order
// plus both aggregates. Mutating the returned value has no effect on the cart.
func (c *Cart) Snapshot() model.CartSnapshot {
	c.mu.Lock()
	defer c.mu.Unlock()

	lines := make([]model.CartLine, 0, len(c.order))
	for _, key := range c.order {
		lines = append(lines, *c.lines[key])
	}

	return model.CartSnapshot{
		Lines:       lines,
		TotalItems:  c.totalItems,
		TotalAmount: c.totalAmount,
	}
}

// Currency returns the currency this cart is priced in.
func (c *Cart) Currency() currency.Unit {
	return c.currency
}

// removeLocked deletes a line and adjusts the aggregates. Caller holds c.mu.
func (c *Cart) removeLocked(identityKey string) bool {
	line, exists := c.lines[identityKey]
	if !exists {
		return false
	}

	c.applyDelta(-line.Quantity, line.UnitPrice)
	delete(c.lines, identityKey)

	for i, key := range c.order {
		if key == identityKey {
			c.order = append(c.order[:i], c.order[i+1:]...)
			break
		}
	}
	return true
}

// applyDelta adjusts both aggregates by delta units at the given unit price.
// Caller holds c.mu. The unit price currency is validated on entry to
// AddItem, so the addition cannot fail here.
func (c *Cart) applyDelta(delta int, unitPrice model.Money) {
	c.totalItems += delta
	amount, err := c.totalAmount.Add(unitPrice.MulInt(int64(delta)))
	if err != nil {
		// Unreachable: all lines share the cart currency.
		log.Error().Err(err).Msg("Cart aggregate currency mismatch")
		return
	}
	c.totalAmount = amount
}
