package service

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/forkful/cart-service/internal/circuitbreaker"
	"github.com/forkful/cart-service/internal/domain/model"
	"github.com/rs/zerolog/log"
)

var (
	// ErrOrderBackendUnavailable indicates the order backend could not be
	// reached or the circuit breaker is open.
	ErrOrderBackendUnavailable = errors.New("order backend unavailable")

	// ErrOrderRejected indicates the order backend refused the order.
	ErrOrderRejected = errors.New("order rejected by backend")
)

// OrderClient submits finalized orders to the order backend.
type OrderClient interface {
	// Place submits an order and returns the backend's confirmation.
	Place(ctx context.Context, order model.OrderRequest) (*model.OrderConfirmation, error)
}

// HTTPOrderClient is an OrderClient over the order backend's REST API,
// protected by a circuit breaker.
type HTTPOrderClient struct {
	baseURL string
	client  *http.Client
	breaker *circuitbreaker.CircuitBreaker
}

// HTTPOrderClientOption configures an HTTPOrderClient.
type HTTPOrderClientOption func(*HTTPOrderClient)

// WithOrderTimeout sets the per-request timeout.
func WithOrderTimeout(timeout time.Duration) HTTPOrderClientOption {
	return func(c *HTTPOrderClient) {
		c.client.Timeout = timeout
	}
}

// WithOrderCircuitBreaker replaces the default circuit breaker.
func WithOrderCircuitBreaker(cb *circuitbreaker.CircuitBreaker) HTTPOrderClientOption {
	return func(c *HTTPOrderClient) {
		c.breaker = cb
	}
}

// NewHTTPOrderClient creates a client for the order backend at baseURL.
func NewHTTPOrderClient(baseURL string, opts ...HTTPOrderClientOption) *HTTPOrderClient {
	c := &HTTPOrderClient{
		baseURL: baseURL,
		client:  &http.Client{Timeout: 10 * time.Second},
		breaker: circuitbreaker.New(circuitbreaker.Config{
			FailureThreshold: 5,
			SuccessThreshold: 2,
			Timeout:          30 * time.Second,
			Name:             "order-backend",
		}),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Breaker exposes the client's circuit breaker for health reporting.
func (c *HTTPOrderClient) Breaker() *circuitbreaker.CircuitBreaker {
	return c.breaker
}

// Place submits the order via POST /orders.
func (c *HTTPOrderClient) Place(ctx context.Context, order model.OrderRequest) (*model.OrderConfirmation, error) {
	var confirmation *model.OrderConfirmation

	err := c.breaker.Execute(ctx, func() error {
		var execErr error
		confirmation, execErr = c.place(ctx, order)
		return execErr
	})
	if err != nil {
		if errors.Is(err, circuitbreaker.ErrCircuitOpen) {
			log.Warn().Str("session_id", order.SessionID).Msg("Order backend circuit open, rejecting checkout")
			return nil, ErrOrderBackendUnavailable
		}
		return nil, err
	}
	return confirmation, nil
}

func (c *HTTPOrderClient) place(ctx context.Context, order model.OrderRequest) (*model.OrderConfirmation, error) {
	body, err := json.Marshal(order)
	if err != nil {
		return nil, fmt.Errorf("marshal order: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/orders", bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("build order request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrOrderBackendUnavailable, err)
	}
	defer func() {
		_, _ = io.Copy(io.Discard, resp.Body)
		_ = resp.Body.Close()
	}()

	switch {
	case resp.StatusCode >= 200 && resp.StatusCode < 300:
		var confirmation model.OrderConfirmation
		if err := json.NewDecoder(resp.Body).Decode(&confirmation); err != nil {
			return nil, fmt.Errorf("decode order confirmation: %w", err)
		}
		return &confirmation, nil
	case resp.StatusCode >= 500:
		return nil, fmt.Errorf("%w: status %d", ErrOrderBackendUnavailable, resp.StatusCode)
	default:
		return nil, fmt.Errorf("%w: status %d", ErrOrderRejected, resp.StatusCode)
	}
}
