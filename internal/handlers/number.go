package handlers

import (
	"encoding/json"
	"fmt"

	"github.com/danielgtaylor/huma/v2"
	"github.com/shopspring/decimal"
)

// Number is an exact decimal written as a bare JSON number, so amounts leave
// the API in the same shape they arrive in without passing through float64.
type Number json.Number

// NewNumber formats d without rounding.
func NewNumber(d decimal.Decimal) Number {
	return Number(d.String())
}

// MarshalJSON writes the digits unquoted.
func (n Number) MarshalJSON() ([]byte, error) {
	if _, err := decimal.NewFromString(string(n)); err != nil {
		return nil, fmt.Errorf("invalid number %q: %w", string(n), err)
	}
	return []byte(n), nil
}

// UnmarshalJSON keeps the literal digits of a JSON number.
func (n *Number) UnmarshalJSON(b []byte) error {
	return json.Unmarshal(b, (*json.Number)(n))
}

// Schema reports the field as a number in the OpenAPI document.
func (Number) Schema(huma.Registry) *huma.Schema {
	return &huma.Schema{Type: huma.TypeNumber}
}
