package service

import (
	"crypto/sha256"
	"encoding/binary"
	"encoding/hex"
	"errors"
	"fmt"

	"github.com/forkful/cart-service/internal/domain/model"
)

const (
	// plainKeyPrefix marks identity keys of uncustomized lines.
	plainKeyPrefix = "plain:"
	// customKeyPrefix marks identity keys of customized lines.
	customKeyPrefix = "custom:"
)

// ErrInvalidConfiguredQuantity is returned when a customization carries a
// zero or negative configured quantity, which would make the per-unit price
// undefined.
var ErrInvalidConfiguredQuantity = errors.New("customization configured quantity must be positive")

// DeriveIdentityKey computes the key that decides whether two add-to-cart
// actions land on the same cart line. The key depends on the offering and the
// three identity-bearing customization fields only, never on quantity or
// computed price, so the function is pure: same inputs, same key.
//
// Uncustomized adds share one key per offering; customized adds are keyed by
// a content hash of the variant fields, so "large" and "small" of the same
// dish stay separate lines.
func DeriveIdentityKey(offeringID string, customization *model.Customization) string {
	if customization == nil {
		return plainKeyPrefix + offeringID
	}
	return customKeyPrefix + offeringID + ":" + fingerprint(*customization)
}

// fingerprint hashes the identity-bearing customization fields in a fixed
// order. Each field is length-prefixed before hashing so free-text special
// instructions cannot collide across field boundaries the way naive string
// concatenation would ("a"+"bc" vs "ab"+"c").
func fingerprint(c model.Customization) string {
	h := sha256.New()
	for _, field := range []string{c.Size, c.SpiceLevel, c.SpecialInstructions} {
		var prefix [8]byte
		binary.BigEndian.PutUint64(prefix[:], uint64(len(field)))
		h.Write(prefix[:])
		h.Write([]byte(field))
	}
	return hex.EncodeToString(h.Sum(nil))
}

// ResolveUnitPrice determines the price to charge per unit of a cart line.
//
// Lines whose customization carries no pricing charge the catalog base
// price; a priced customization with a zero total is a legitimately free
// variant, not a fallback. Customized lines priced by the customization
// flow charge the per-unit price implied by that flow's total: the flow
// computes an all-inclusive amount for its configured quantity, and the
// cart normalizes it back to one unit so later quantity edits scale
// correctly.
func ResolveUnitPrice(offering model.MenuOffering, customization *model.Customization) (model.Money, error) {
	if customization == nil || !customization.HasPricing() {
		return offering.BasePrice, nil
	}

	if customization.ConfiguredQuantity <= 0 {
		return model.Money{}, ErrInvalidConfiguredQuantity
	}

	unit, err := customization.ComputedTotal.DivInt(int64(customization.ConfiguredQuantity))
	if err != nil {
		return model.Money{}, fmt.Errorf("ComputedTotal.DivInt: %w", err)
	}
	return unit, nil
}
