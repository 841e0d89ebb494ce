package models

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Price is an exact decimal currency amount. It travels as a JSON number and is
// stored as numeric(10,2); no binary floating point is involved in either direction.
type Price struct {
	decimal.Decimal
}

// NewPrice parses a decimal string such as "19.99".
func NewPrice(s string) (Price, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return Price{}, fmt.Errorf("invalid price %q: %w", s, err)
	}
	return Price{d}, nil
}

// MustPrice is NewPrice for constants.
func MustPrice(s string) Price {
	p, err := NewPrice(s)
	if err != nil {
		panic(err)
	}
	return p
}

// PriceFromCents builds a price from minor units.
func PriceFromCents(cents int64) Price {
	return Price{decimal.New(cents, -2)}
}

// MarshalJSON writes the price as a bare JSON number.
func (p Price) MarshalJSON() ([]byte, error) {
	return []byte(p.Decimal.String()), nil
}

// UnmarshalJSON accepts a JSON number. The literal is parsed as a decimal, never as a float.
func (p *Price) UnmarshalJSON(data []byte) error {
	if len(data) > 0 && data[0] == '"' {
		return fmt.Errorf("price must be a number, got %s", data)
	}
	return p.Decimal.UnmarshalJSON(data)
}

// HasCents reports whether the price fits two fractional digits without rounding.
func (p Price) HasCents() bool {
	return p.Decimal.Equal(p.Decimal.Round(2))
}

// Float64 is used by the validator for numeric comparisons only.
func (p Price) Float64() float64 {
	return p.Decimal.InexactFloat64()
}
