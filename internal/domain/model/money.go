package model

import (
	"encoding/json"
	"fmt"

	"github.com/shopspring/decimal"
	"golang.org/x/text/currency"
)

// Money represents a monetary amount in the smallest unit of its currency
// (cents, centavos, and so on). Formatting for display is a presentation
// concern and lives outside this package.
type Money struct {
	Amount   decimal.Decimal
	Currency currency.Unit
}

// NewMoney creates a Money value from an amount and a currency unit.
func NewMoney(amount decimal.Decimal, unit currency.Unit) Money {
	return Money{Amount: amount, Currency: unit}
}

// MoneyFromMinorUnits creates a Money value from an integer amount of minor units.
func MoneyFromMinorUnits(amount int64, unit currency.Unit) Money {
	return Money{Amount: decimal.NewFromInt(amount), Currency: unit}
}

// ZeroMoney returns a zero amount in the given currency.
func ZeroMoney(unit currency.Unit) Money {
	return Money{Amount: decimal.Zero, Currency: unit}
}

// Add returns the sum of two amounts. Both must share a currency.
func (m Money) Add(other Money) (Money, error) {
	if m.Currency != other.Currency {
		return Money{}, fmt.Errorf("currency mismatch: %s vs %s", m.Currency, other.Currency)
	}
	return Money{Amount: m.Amount.Add(other.Amount), Currency: m.Currency}, nil
}

// Sub returns the difference of two amounts. Both must share a currency.
func (m Money) Sub(other Money) (Money, error) {
	if m.Currency != other.Currency {
		return Money{}, fmt.Errorf("currency mismatch: %s vs %s", m.Currency, other.Currency)
	}
	return Money{Amount: m.Amount.Sub(other.Amount), Currency: m.Currency}, nil
}

// MulInt scales the amount by an integer factor.
func (m Money) MulInt(n int64) Money {
	return Money{Amount: m.Amount.Mul(decimal.NewFromInt(n)), Currency: m.Currency}
}

// DivInt divides the amount by a positive integer divisor.
func (m Money) DivInt(n int64) (Money, error) {
	if n <= 0 {
		return Money{}, fmt.Errorf("divisor must be positive, got %d", n)
	}
	return Money{Amount: m.Amount.Div(decimal.NewFromInt(n)), Currency: m.Currency}, nil
}

// Equal reports whether two amounts are numerically equal in the same currency.
func (m Money) Equal(other Money) bool {
	return m.Currency == other.Currency && m.Amount.Equal(other.Amount)
}

// IsZero reports whether the amount is zero.
func (m Money) IsZero() bool {
	return m.Amount.IsZero()
}

// String returns the amount followed by its ISO currency code, e.g. "1250 USD".
func (m Money) String() string {
	return m.Amount.String() + " " + m.Currency.String()
}

// moneyJSON is the wire representation of Money.
type moneyJSON struct {
	Amount   string `json:"amount" example:"1250"`
	Currency string `json:"currency" example:"USD"`
}

// MarshalJSON implements json.Marshaler.
// currency.Unit has no JSON encoding of its own, so Money encodes as
// {"amount": "...", "currency": "ISO-4217"}.
func (m Money) MarshalJSON() ([]byte, error) {
	return json.Marshal(moneyJSON{
		Amount:   m.Amount.String(),
		Currency: m.Currency.String(),
	})
}

// UnmarshalJSON implements json.Unmarshaler.
func (m *Money) UnmarshalJSON(data []byte) error {
	var raw moneyJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	amount, err := decimal.NewFromString(raw.Amount)
	if err != nil {
		return fmt.Errorf("amount[%s] is not a valid decimal: %w", raw.Amount, err)
	}

	unit, err := currency.ParseISO(raw.Currency)
	if err != nil {
		return fmt.Errorf("currency[%s] is not valid: %w", raw.Currency, err)
	}

	m.Amount = amount
	m.Currency = unit
	return nil
}
