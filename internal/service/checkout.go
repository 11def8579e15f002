package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/forkful/cart-service/internal/domain/model"
	"github.com/forkful/cart-service/internal/metrics"
	"github.com/rs/zerolog/log"
)

// ErrEmptyCart is returned when checkout is attempted on an empty cart.
var ErrEmptyCart = errors.New("cart is empty")

// CheckoutService finalizes carts: it freezes the cart contents into an
// order, submits it to the order backend, and clears the cart only after
// the backend accepts.
type CheckoutService interface {
	// Checkout places the session's cart as an order.
	Checkout(ctx context.Context, sessionID string) (*model.OrderConfirmation, error)
}

// CheckoutServiceImpl implements CheckoutService over a SessionStore and an
// OrderClient.
type CheckoutServiceImpl struct {
	sessions *SessionStore
	orders   OrderClient
	logging  LoggingService
}

// NewCheckoutService creates a checkout service. The logging service is
// optional; with nil no audit entries are written.
func NewCheckoutService(sessions *SessionStore, orders OrderClient, logging LoggingService) *CheckoutServiceImpl {
	return &CheckoutServiceImpl{
		sessions: sessions,
		orders:   orders,
		logging:  logging,
	}
}

// Checkout submits the session's cart to the order backend. The cart is
// cleared only on an accepted order, so a failed checkout leaves the cart
// intact for retry.
func (s *CheckoutServiceImpl) Checkout(ctx context.Context, sessionID string) (*model.OrderConfirmation, error) {
	start := time.Now()

	cart, ok := s.sessions.Get(sessionID)
	if !ok {
		metrics.RecordCheckout("empty", time.Since(start))
		return nil, ErrEmptyCart
	}

	snapshot := cart.Snapshot()
	if len(snapshot.Lines) == 0 {
		metrics.RecordCheckout("empty", time.Since(start))
		return nil, ErrEmptyCart
	}

	order := buildOrderRequest(sessionID, cart, snapshot)

	confirmation, err := s.orders.Place(ctx, order)
	if err != nil {
		metrics.RecordCheckout("error", time.Since(start))
		return nil, fmt.Errorf("place order: %w", err)
	}

	cart.Clear()
	metrics.RecordCheckout("success", time.Since(start))

	log.Info().
		Str("session_id", sessionID).
		Str("order_id", confirmation.OrderID).
		Int("total_items", order.TotalItems).
		Str("total_amount", order.TotalAmount).
		Msg("Checkout completed")

	s.audit(ctx, sessionID, confirmation, order)

	return confirmation, nil
}

// audit writes a checkout audit entry, best effort.
func (s *CheckoutServiceImpl) audit(ctx context.Context, sessionID string, confirmation *model.OrderConfirmation, order model.OrderRequest) {
	if s.logging == nil {
		return
	}

	entry := model.NewLogEntry(model.ActionCheckout, "Order placed").
		WithSessionID(sessionID).
		WithField("order_id", confirmation.OrderID).
		WithField("status", confirmation.Status).
		WithField("total_items", order.TotalItems).
		WithField("total_amount", order.TotalAmount)

	if err := s.logging.CreateLog(ctx, entry); err != nil {
		log.Warn().Err(err).Str("session_id", sessionID).Msg("Failed to write checkout audit entry")
	}
}

// buildOrderRequest converts a cart snapshot into the backend order payload.
func buildOrderRequest(sessionID string, cart *Cart, snapshot model.CartSnapshot) model.OrderRequest {
	lines := make([]model.OrderLine, 0, len(snapshot.Lines))
	for _, line := range snapshot.Lines {
		orderLine := model.OrderLine{
			OfferingID: line.OfferingID,
			Name:       line.Name,
			UnitPrice:  line.UnitPrice.Amount.String(),
			Quantity:   line.Quantity,
			LineTotal:  line.LineTotal().Amount.String(),
		}
		if line.Customization != nil {
			orderLine.Size = line.Customization.Size
			orderLine.SpiceLevel = line.Customization.SpiceLevel
			orderLine.SpecialInstructions = line.Customization.SpecialInstructions
		}
		lines = append(lines, orderLine)
	}

	return model.OrderRequest{
		SessionID:   sessionID,
		Lines:       lines,
		TotalItems:  snapshot.TotalItems,
		TotalAmount: snapshot.TotalAmount.Amount.String(),
		Currency:    cart.Currency().String(),
		PlacedAt:    time.Now().UTC(),
	}
}
