// Package numeric coerces form text into numbers. Parse is total: any input
// produces either a valid decimal or an invalid Number that fails every
// positivity and equality check.
package numeric

import (
	"strings"

	"github.com/shopspring/decimal"
)

// Limits on accepted literals. Comparing or rounding decimals rescales them
// to a common exponent, so an unbounded exponent would cost time
// proportional to its magnitude.
const (
	MaxExponent = 30
	MaxDigits   = 40
)

// Number is the result of coercing text.
type Number struct {
	Value decimal.Decimal
	Valid bool
}

// Invalid is the sentinel for text that is not a number.
var Invalid = Number{}

// Parse trims text and reads it as a decimal literal. Literals outside
// the exponent or digit limits are invalid.
func Parse(text string) Number {
	text = strings.TrimSpace(text)
	if text == "" {
		return Invalid
	}
	d, err := decimal.NewFromString(text)
	if err != nil || !InRange(d) {
		return Invalid
	}
	return Number{Value: d, Valid: true}
}

// InRange reports whether d has an exponent within ±MaxExponent and at
// most MaxDigits significant digits.
func InRange(d decimal.Decimal) bool {
	exp := d.Exponent()
	if exp < -MaxExponent || exp > MaxExponent {
		return false
	}
	return d.NumDigits() <= MaxDigits
}

// IsPositive reports whether n is a valid number greater than zero.
func (n Number) IsPositive() bool {
	return n.Valid && n.Value.IsPositive()
}

// EqualInt reports whether n is a valid number equal to v.
func (n Number) EqualInt(v int) bool {
	return n.Valid && n.Value.Equal(decimal.NewFromInt(int64(v)))
}
