// Package model defines the core domain entities for the cart service.
package model

import "golang.org/x/text/currency"

// MenuOffering is a catalog entry a customer can order: a dish with a
// display name, a base price, and catalog metadata. Offerings are read-only
// inputs to the cart; the catalog itself is owned by the menu repository.
//
// @Description A purchasable dish listed on the restaurant menu
type MenuOffering struct {
	// ID uniquely identifies the offering in the catalog.
	ID string `json:"id" example:"dish-madras-curry"`
	// Name is the display name of the dish.
	Name string `json:"name" example:"Madras Curry"`
	// BasePrice is the uncustomized price per unit in minor currency units.
	BasePrice Money `json:"base_price"`
	// Category groups offerings on the menu (starters, mains, drinks).
	Category string `json:"category,omitempty" example:"mains"`
	// DietaryTag marks dietary properties (veg, vegan, halal).
	DietaryTag string `json:"dietary_tag,omitempty" example:"veg"`
	// Description is free-text menu copy, not used by the cart.
	Description string `json:"description,omitempty"`
} // @name MenuOffering

// Customization describes a specific variant of an offering chosen at
// add-to-cart time. Size, SpiceLevel and SpecialInstructions are the
// identity-bearing fields; ComputedTotal and ConfiguredQuantity come from
// the customization flow and carry pricing, never identity.
//
// @Description A customer-chosen variant configuration for an offering
type Customization struct {
	// Size is the chosen size variant (e.g. "small", "large").
	Size string `json:"size,omitempty" example:"large"`
	// SpiceLevel is the chosen spice variant (e.g. "mild", "hot").
	SpiceLevel string `json:"spice_level,omitempty" example:"hot"`
	// SpecialInstructions is free-text prepared-by-kitchen instructions.
	SpecialInstructions string `json:"special_instructions,omitempty" example:"no cilantro"`
	// ConfiguredQuantity is the quantity chosen during customization.
	// The customization flow computes ComputedTotal for this many units.
	ConfiguredQuantity int `json:"configured_quantity" example:"2"`
	// ComputedTotal is the all-inclusive price for ConfiguredQuantity units.
	ComputedTotal Money `json:"computed_total"`
} // @name Customization

// HasPricing reports whether the customization flow priced this variant.
// A priced variant carries a computed total, possibly a zero amount for a
// free variant; an unpriced one only restates variant fields and the line
// is charged the catalog base price. The total's currency distinguishes a
// supplied zero total from an absent one.
func (c Customization) HasPricing() bool {
	return !c.ComputedTotal.IsZero() || c.ComputedTotal.Currency != (currency.Unit{})
}

// Equivalent reports whether two customizations describe the same variant.
// Only the three identity-bearing fields participate; the computed price is
// a function of those fields and the catalog price, not an identity input.
func (c Customization) Equivalent(other Customization) bool {
	return c.Size == other.Size &&
		c.SpiceLevel == other.SpiceLevel &&
		c.SpecialInstructions == other.SpecialInstructions
}
