// File: decimal.go
// Title: Arbitrary-Precision Decimal Representation
// Description: Arithmetic over shopspring/decimal. Addition, subtraction and
//              multiplication are exact; division rounds to the configured
//              number of fractional digits.
// Author: msto63
// Version: v0.1.1
// Created: 2026-10-18
// Modified: 2026-10-18
//
// Change History:
// - 2026-10-18 v0.1.0: Initial implementation
// - 2026-10-18 v0.1.1: Settle for running products

package numeric

import (
	"strings"

	"github.com/shopspring/decimal"

	mdwerrors "github.com/msto63/finkit/foundation/core/errors"
)

// DefaultPlaces is the working precision of Decimal in fractional digits
const DefaultPlaces int32 = 32

// guardDigits are carried beyond Places inside Pow, Ln and exp
const guardDigits int32 = 16

var (
	decOne = decimal.New(1, 0)
	decTwo = decimal.New(2, 0)
)

// Decimal implements Arithmetic[decimal.Decimal]. Places is the number of
// fractional digits kept by Quo; zero selects DefaultPlaces.
type Decimal struct {
	Places int32
}

var _ Arithmetic[decimal.Decimal] = Decimal{}

// NewDecimal returns a Decimal working with places fractional digits
func NewDecimal(places int32) Decimal {
	return Decimal{Places: places}
}

func (d Decimal) places() int32 {
	if d.Places <= 0 {
		return DefaultPlaces
	}
	return d.Places
}

func (d Decimal) workPlaces() int32 {
	return d.places() + guardDigits
}

func (Decimal) Name() string                                     { return "decimal" }
func (Decimal) FromFloat(f float64) decimal.Decimal              { return decimal.NewFromFloat(f) }
func (Decimal) FromInt(i int64) decimal.Decimal                  { return decimal.NewFromInt(i) }
func (Decimal) Add(a, b decimal.Decimal) decimal.Decimal         { return a.Add(b) }
func (Decimal) Sub(a, b decimal.Decimal) decimal.Decimal         { return a.Sub(b) }
func (Decimal) Mul(a, b decimal.Decimal) decimal.Decimal         { return a.Mul(b) }
func (Decimal) Neg(a decimal.Decimal) decimal.Decimal            { return a.Neg() }
func (Decimal) Abs(a decimal.Decimal) decimal.Decimal            { return a.Abs() }
func (Decimal) Cmp(a, b decimal.Decimal) int                     { return a.Cmp(b) }
func (Decimal) Sign(a decimal.Decimal) int                       { return a.Sign() }
func (Decimal) IsInteger(a decimal.Decimal) bool                 { return a.IsInteger() }
func (Decimal) Float64(a decimal.Decimal) float64                { return a.InexactFloat64() }
func (Decimal) Round(a decimal.Decimal, p int32) decimal.Decimal { return a.Round(p) }
func (Decimal) Format(a decimal.Decimal, p int32) string         { return a.StringFixed(p) }
func (Decimal) String(a decimal.Decimal) string                  { return a.String() }

// Settle rounds a to the working precision counted in significant digits,
// so repeated products keep a bounded coefficient
func (d Decimal) Settle(a decimal.Decimal) decimal.Decimal {
	if a.IsZero() {
		return a
	}
	integerDigits := int32(a.NumDigits()) + a.Exponent()
	return a.Round(d.workPlaces() - integerDigits)
}

// Quo divides a by b rounding to Places fractional digits
func (d Decimal) Quo(a, b decimal.Decimal) decimal.Decimal {
	return a.DivRound(b, d.places())
}

// Parse reads a decimal literal
func (Decimal) Parse(s string) (decimal.Decimal, error) {
	v, err := decimal.NewFromString(strings.TrimSpace(s))
	if err != nil {
		return decimal.Zero, mdwerrors.MalformedInput(mdwerrors.ModuleNumeric, "Parse", "input", s,
			"not a decimal number: "+s)
	}
	return v, nil
}
