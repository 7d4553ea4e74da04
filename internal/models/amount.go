package models

import (
	"bytes"
	"strings"

	"github.com/shopspring/decimal"
)

// Amount is a monetary value decoded defensively from backend JSON.
//
// The backend is inconsistent about amount encoding: depending on the
// database driver it may serialize amounts as JSON numbers or as numeric
// strings. Amount accepts both. Anything else (null, objects, non-numeric
// strings) decodes to a zero value with Valid=false so a single bad record
// never aborts a whole collection decode; consumers count the anomaly and
// move on.
type Amount struct {
	decimal.Decimal
	Valid bool
}

// NewAmount builds a valid Amount from a decimal value.
func NewAmount(d decimal.Decimal) Amount {
	return Amount{Decimal: d, Valid: true}
}

// AmountFromFloat builds a valid Amount from a float, for tests and fixtures.
func AmountFromFloat(f float64) Amount {
	return NewAmount(decimal.NewFromFloat(f))
}

func (a *Amount) UnmarshalJSON(data []byte) error {
	s := string(bytes.TrimSpace(data))
	if s == "" || s == "null" {
		*a = Amount{}
		return nil
	}

	// Strip quotes for the numeric-string encoding.
	s = strings.Trim(s, `"`)
	s = strings.TrimSpace(s)

	d, err := decimal.NewFromString(s)
	if err != nil {
		*a = Amount{}
		return nil
	}

	a.Decimal = d
	a.Valid = true
	return nil
}

func (a Amount) MarshalJSON() ([]byte, error) {
	return a.Decimal.MarshalJSON()
}
