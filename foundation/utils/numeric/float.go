// File: float.go
// Title: Binary Floating-Point Representation
// Description: Arithmetic over float64 using the math package.
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
	"math"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	mdwerrors "github.com/msto63/finkit/foundation/core/errors"
)

// Float implements Arithmetic[float64]
type Float struct{}

var _ Arithmetic[float64] = Float{}

func (Float) Name() string                { return "float" }
func (Float) FromFloat(f float64) float64 { return f }
func (Float) FromInt(i int64) float64     { return float64(i) }
func (Float) Add(a, b float64) float64    { return a + b }
func (Float) Sub(a, b float64) float64    { return a - b }
func (Float) Mul(a, b float64) float64    { return a * b }
func (Float) Settle(a float64) float64    { return a }
func (Float) Quo(a, b float64) float64    { return a / b }
func (Float) Neg(a float64) float64       { return -a }
func (Float) Abs(a float64) float64       { return math.Abs(a) }
func (Float) Float64(a float64) float64   { return a }
func (Float) IsInteger(a float64) bool    { return a == math.Trunc(a) && !math.IsInf(a, 0) }
func (Float) String(a float64) string     { return strconv.FormatFloat(a, 'f', -1, 64) }

// Parse reads a float literal
func (Float) Parse(s string) (float64, error) {
	f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, mdwerrors.MalformedInput(mdwerrors.ModuleNumeric, "Parse", "input", s, "not a finite number: "+s)
	}
	return f, nil
}

// Cmp compares a and b
func (Float) Cmp(a, b float64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

// Sign returns -1, 0 or 1
func (Float) Sign(a float64) int {
	switch {
	case a < 0:
		return -1
	case a > 0:
		return 1
	default:
		return 0
	}
}

// Pow raises base to exp. A negative base with a fractional exponent has no
// real result; an infinite result is an overflow.
func (Float) Pow(base, exp float64) (float64, error) {
	if base == 0 && exp < 0 {
		return 0, mdwerrors.DivisionByZero(mdwerrors.ModuleNumeric, "Pow", "base")
	}
	r := math.Pow(base, exp)
	switch {
	case math.IsNaN(r):
		return 0, mdwerrors.InvalidArgument(mdwerrors.ModuleNumeric, "Pow", "base", base,
			"negative base requires an integer exponent")
	case math.IsInf(r, 0):
		return 0, mdwerrors.Overflow(mdwerrors.ModuleNumeric, "Pow", exp)
	}
	return r, nil
}

// Ln returns the natural logarithm of a positive x
func (Float) Ln(x float64) (float64, error) {
	if !(x > 0) {
		return 0, mdwerrors.InvalidArgument(mdwerrors.ModuleNumeric, "Ln", "x", x,
			"logarithm requires a positive argument")
	}
	return math.Log(x), nil
}

// Round rounds half away from zero on the shortest decimal representation
// of a, so 1.005 rounds to 1.01 as written.
func (Float) Round(a float64, places int32) float64 {
	if math.IsNaN(a) || math.IsInf(a, 0) {
		return a
	}
	return decimal.NewFromFloat(a).Round(places).InexactFloat64()
}

// Format renders a with exactly places fractional digits
func (Float) Format(a float64, places int32) string {
	if math.IsNaN(a) || math.IsInf(a, 0) {
		return strconv.FormatFloat(a, 'f', -1, 64)
	}
	return decimal.NewFromFloat(a).StringFixed(places)
}
