package model

// CartLine is one addressable row in a cart. Two add-to-cart actions that
// derive the same identity key land on the same line; lines with different
// keys stay separate even when they share an offering.
//
// @Description One row in the shopping cart
type CartLine struct {
	// OfferingID is the catalog offering this line originates from.
	OfferingID string `json:"offering_id" example:"dish-madras-curry"`
	// IdentityKey addresses this line for quantity edits and removal.
	IdentityKey string `json:"identity_key" example:"plain:dish-madras-curry"`
	// Name is the display name captured when the line was created.
	Name string `json:"name" example:"Madras Curry"`
	// UnitPrice is the resolved price charged per unit of this line.
	// It is fixed when the line is created and never changes on quantity edits.
	UnitPrice Money `json:"unit_price"`
	// Quantity is always positive; a line that would drop to zero is removed.
	Quantity int `json:"quantity" example:"2"`
	// Customization holds the configuration captured when the line was
	// created, nil for plain offerings.
	Customization *Customization `json:"customization,omitempty"`
} // @name CartLine

// LineTotal returns UnitPrice scaled by Quantity.
func (l CartLine) LineTotal() Money {
	return l.UnitPrice.MulInt(int64(l.Quantity))
}

// CartSnapshot is a read-only view of a cart: the lines in insertion order
// plus the two derived aggregates. Callers must not treat it as live state;
// it is a copy taken under the cart's lock.
//
// @Description Read-only view of the current cart contents and totals
type CartSnapshot struct {
	// Lines lists the cart rows in the order they were first added.
	Lines []CartLine `json:"lines"`
	// TotalItems equals the sum of Quantity over all lines.
	TotalItems int `json:"total_items" example:"3"`
	// TotalAmount equals the sum of UnitPrice times Quantity over all lines.
	TotalAmount Money `json:"total_amount"`
} // @name CartSnapshot
