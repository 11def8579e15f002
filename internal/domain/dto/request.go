// Package dto defines Data Transfer Objects for HTTP request and response handling.
//
// DTOs are used to decouple the HTTP layer from the domain model,
// providing validation and serialization for API communication.
package dto

// CustomizationDTO carries the configuration of a customized offering.
// The three identity fields (size, spice level, special instructions)
// decide which cart line an add lands on; configured_quantity and
// computed_total carry the configurator's pricing.
//
// @Description Customization applied to an offering before adding it to the cart
type CustomizationDTO struct {
	// Size is the selected portion size, e.g. "regular" or "large".
	Size string `json:"size,omitempty" example:"large"`
	// SpiceLevel is the selected heat, e.g. "mild", "medium", "hot".
	SpiceLevel string `json:"spice_level,omitempty" example:"hot"`
	// SpecialInstructions is free-text preparation notes.
	SpecialInstructions string `json:"special_instructions,omitempty" example:"no cilantro"`
	// ConfiguredQuantity is the quantity the configurator priced. Must be
	// positive when computed_total is set.
	ConfiguredQuantity int `json:"configured_quantity,omitempty" example:"2" minimum:"1"`
	// ComputedTotal is the configurator's total for ConfiguredQuantity
	// units, as a decimal string in minor currency units.
	ComputedTotal string `json:"computed_total,omitempty" example:"2750"`
} // @name Customization

// AddItemRequest represents the JSON request body for adding an offering
// to the cart.
//
// @Description Request to add an offering (optionally customized) to the cart
// @Example {"offering_id": "dish-madras-curry", "quantity": 2}
type AddItemRequest struct {
	// OfferingID identifies the catalog offering to add.
	OfferingID string `json:"offering_id" binding:"required" example:"dish-madras-curry"`
	// Quantity is the number of units to add. Must be greater than 0.
	Quantity int `json:"quantity" binding:"required,gt=0" example:"2" minimum:"1"`
	// Customization is optional; when absent the plain offering is added.
	Customization *CustomizationDTO `json:"customization,omitempty"`
} // @name AddItemRequest

// SetQuantityRequest represents the JSON request body for replacing a cart
// line's quantity. Zero removes the line.
//
// @Description Request to set the quantity of an existing cart line
type SetQuantityRequest struct {
	// Quantity is the new quantity. Zero removes the line.
	Quantity int `json:"quantity" example:"3" minimum:"0"`
} // @name SetQuantityRequest

// ValidationError represents a field validation error.
type ValidationError struct {
	Field   string
	Message string
}

var (
	// ErrMissingOfferingID is returned when offering_id is absent.
	ErrMissingOfferingID = &ValidationError{
		Field:   "offering_id",
		Message: "is required",
	}
	// ErrInvalidQuantity is returned when quantity is not a positive integer.
	ErrInvalidQuantity = &ValidationError{
		Field:   "quantity",
		Message: "must be a positive integer",
	}
	// ErrNegativeQuantity is returned when a set-quantity value is negative.
	ErrNegativeQuantity = &ValidationError{
		Field:   "quantity",
		Message: "must be zero or a positive integer",
	}
	// ErrInvalidConfiguredQuantity is returned when a customization carries
	// a computed total without a positive configured quantity.
	ErrInvalidConfiguredQuantity = &ValidationError{
		Field:   "customization.configured_quantity",
		Message: "must be a positive integer when computed_total is set",
	}
)

// Validate performs custom validation on the request.
// Returns an error if validation fails, nil otherwise.
func (r *AddItemRequest) Validate() error {
	if r.OfferingID == "" {
		return ErrMissingOfferingID
	}
	if r.Quantity <= 0 {
		return ErrInvalidQuantity
	}
	if c := r.Customization; c != nil && c.ComputedTotal != "" && c.ConfiguredQuantity <= 0 {
		return ErrInvalidConfiguredQuantity
	}
	return nil
}

// Validate performs custom validation on the request.
func (r *SetQuantityRequest) Validate() error {
	if r.Quantity < 0 {
		return ErrNegativeQuantity
	}
	return nil
}

// Error returns the error message for ValidationError.
func (e *ValidationError) Error() string {
	return e.Field + ": " + e.Message
}
