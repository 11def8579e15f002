package model

import "time"

// OrderLine is the server-facing description of one cart line, sent to the
// order backend at checkout.
type OrderLine struct {
	OfferingID          string `json:"offering_id"`
	Name                string `json:"name"`
	UnitPrice           string `json:"unit_price"`
	Quantity            int    `json:"quantity"`
	LineTotal           string `json:"line_total"`
	Size                string `json:"size,omitempty"`
	SpiceLevel          string `json:"spice_level,omitempty"`
	SpecialInstructions string `json:"special_instructions,omitempty"`
}

// OrderRequest is the payload posted to the order backend. Amounts travel
// as decimal strings; the backend re-validates price and availability and
// is the authority on the final charge.
type OrderRequest struct {
	SessionID   string      `json:"session_id"`
	Lines       []OrderLine `json:"lines"`
	TotalItems  int         `json:"total_items"`
	TotalAmount string      `json:"total_amount"`
	Currency    string      `json:"currency"`
	PlacedAt    time.Time   `json:"placed_at"`
}

// OrderConfirmation is the order backend's acknowledgement of a placed order.
//
// @Description Confirmation returned by the order backend after checkout
type OrderConfirmation struct {
	// OrderID is the backend-assigned order identifier.
	OrderID string `json:"order_id" example:"ord-7f3a2c"`
	// Status is the backend-reported order status.
	Status string `json:"status" example:"accepted"`
} // @name OrderConfirmation
