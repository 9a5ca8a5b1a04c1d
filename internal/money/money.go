// Package money holds monetary amounts as integer cents so that summing
// many small values never accumulates binary floating point drift.
package money

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

var ErrInvalidAmount = errors.New("invalid amount")

// Amount is a monetary value in cents.
type Amount int64

var hundred = decimal.NewFromInt(100)

// Parse converts a decimal string ("12.34") into cents.
// At most two fraction digits are accepted; anything else is rejected
// rather than rounded, since wire amounts are defined to be cent-exact.
func Parse(s string) (Amount, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidAmount, s)
	}

	if d.Exponent() < -2 {
		return 0, fmt.Errorf("%w: %q has more than two decimal places", ErrInvalidAmount, s)
	}

	cents := d.Mul(hundred)
	if !cents.IsInteger() {
		return 0, fmt.Errorf("%w: %q has more than two decimal places", ErrInvalidAmount, s)
	}

	return Amount(cents.IntPart()), nil
}

// ParsePositive is Parse restricted to amounts strictly greater than zero.
func ParsePositive(s string) (Amount, error) {
	a, err := Parse(s)
	if err != nil {
		return 0, err
	}

	if a <= 0 {
		return 0, fmt.Errorf("%w: %q must be greater than zero", ErrInvalidAmount, s)
	}

	return a, nil
}

// ParseNonNegative is Parse restricted to amounts of zero or more.
func ParseNonNegative(s string) (Amount, error) {
	a, err := Parse(s)
	if err != nil {
		return 0, err
	}

	if a < 0 {
		return 0, fmt.Errorf("%w: %q must not be negative", ErrInvalidAmount, s)
	}

	return a, nil
}

// String renders the amount as a decimal string with two fraction digits,
// the only representation that crosses the wire.
func (a Amount) String() string {
	return decimal.New(int64(a), -2).StringFixed(2)
}

// MarshalJSON encodes the amount as a decimal string, never a raw float.
func (a Amount) MarshalJSON() ([]byte, error) {
	return []byte(`"` + a.String() + `"`), nil
}
