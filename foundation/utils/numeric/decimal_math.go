// File: decimal_math.go
// Title: Decimal Transcendental Functions
// Description: Natural logarithm, exponential and real powers for
//              shopspring decimals. exp uses argument halving around the
//              library Taylor series; ln refines a float64 seed with Halley
//              steps on e^y - x; integer powers use binary exponentiation.
// Author: msto63
// Version: v0.1.1
// Created: 2026-10-18
// Modified: 2026-10-18
//
// Change History:
// - 2026-10-18 v0.1.0: Initial implementation
// - 2026-10-18 v0.1.1: Unit bases and exponents beyond int64

package numeric

import (
	"math"
	"sync"

	"github.com/shopspring/decimal"

	mdwerrors "github.com/msto63/finkit/foundation/core/errors"
)

const maxLnIterations = 20

// maxIntExponent is the largest exponent powInt accepts
var maxIntExponent = decimal.NewFromInt(math.MaxInt64)

// ln10Cache holds ln(10) per working precision
var ln10Cache sync.Map

// Pow raises base to exp. Integer exponents are computed by repeated
// squaring; other exponents as e^(exp*ln(base)), which requires base > 0.
func (d Decimal) Pow(base, exp decimal.Decimal) (decimal.Decimal, error) {
	prec := d.workPlaces()

	if exp.IsZero() {
		return decOne, nil
	}
	if base.IsZero() {
		if exp.Sign() < 0 {
			return decimal.Zero, mdwerrors.DivisionByZero(mdwerrors.ModuleNumeric, "Pow", "base")
		}
		return decimal.Zero, nil
	}

	if exp.IsInteger() {
		odd := !exp.Mod(decTwo).IsZero()
		if base.Abs().Equal(decOne) {
			if base.Sign() < 0 && odd {
				return decOne.Neg(), nil
			}
			return decOne, nil
		}
		logMag := exp.InexactFloat64() * math.Log(math.Abs(base.InexactFloat64()))
		if logMag > maxExponent {
			return decimal.Zero, mdwerrors.Overflow(mdwerrors.ModuleNumeric, "Pow", exp.String())
		}
		if logMag < -maxExponent {
			return decimal.Zero, nil
		}
		if exp.Abs().Cmp(maxIntExponent) <= 0 {
			return d.powInt(base, exp.IntPart(), prec)
		}
		// exponents beyond int64 only reach here for bases within
		// rounding distance of one
		r, err := d.realPow(base.Abs(), exp, prec)
		if err != nil || base.Sign() > 0 || !odd {
			return r, err
		}
		return r.Neg(), nil
	}

	if base.Sign() < 0 {
		return decimal.Zero, mdwerrors.InvalidArgument(mdwerrors.ModuleNumeric, "Pow", "base", base.String(),
			"negative base requires an integer exponent")
	}
	return d.realPow(base, exp, prec)
}

// realPow computes e^(exp*ln(base)) for a positive base
func (d Decimal) realPow(base, exp decimal.Decimal, prec int32) (decimal.Decimal, error) {
	lnBase, err := d.ln(base, prec)
	if err != nil {
		return decimal.Zero, err
	}
	return d.exp(exp.Mul(lnBase).Round(prec), prec)
}

func (d Decimal) powInt(base decimal.Decimal, n int64, prec int32) (decimal.Decimal, error) {
	negative := n < 0
	if negative {
		n = -n
	}

	result := decOne
	square := base
	for n > 0 {
		if n&1 == 1 {
			result = result.Mul(square).Round(prec)
		}
		n >>= 1
		if n > 0 {
			square = square.Mul(square).Round(prec)
		}
	}

	if negative {
		if result.IsZero() {
			return decimal.Zero, mdwerrors.Overflow(mdwerrors.ModuleNumeric, "Pow", "reciprocal")
		}
		result = decOne.DivRound(result, prec)
	}
	return result, nil
}

// Ln returns the natural logarithm of a positive x
func (d Decimal) Ln(x decimal.Decimal) (decimal.Decimal, error) {
	prec := d.workPlaces()
	y, err := d.ln(x, prec)
	if err != nil {
		return decimal.Zero, err
	}
	return y.Round(d.places()), nil
}

// Exp returns e^x
func (d Decimal) Exp(x decimal.Decimal) (decimal.Decimal, error) {
	y, err := d.exp(x, d.workPlaces())
	if err != nil {
		return decimal.Zero, err
	}
	return y.Round(d.places()), nil
}

// ln splits x into m * 10^k with m in [0.1, 1) and returns ln(m) + k*ln(10)
func (d Decimal) ln(x decimal.Decimal, prec int32) (decimal.Decimal, error) {
	if x.Sign() <= 0 {
		return decimal.Zero, mdwerrors.InvalidArgument(mdwerrors.ModuleNumeric, "Ln", "x", x.String(),
			"logarithm requires a positive argument")
	}

	k := int32(x.NumDigits()) + x.Exponent()
	m := x.Shift(-k)

	result, err := halleyLn(m, prec)
	if err != nil {
		return decimal.Zero, err
	}
	if k != 0 {
		l10, err := ln10(prec)
		if err != nil {
			return decimal.Zero, err
		}
		result = result.Add(l10.Mul(decimal.New(int64(k), 0)))
	}
	return result.Round(prec), nil
}

func ln10(prec int32) (decimal.Decimal, error) {
	if v, ok := ln10Cache.Load(prec); ok {
		return v.(decimal.Decimal), nil
	}
	v, err := halleyLn(decimal.New(10, 0), prec)
	if err != nil {
		return decimal.Zero, err
	}
	ln10Cache.Store(prec, v)
	return v, nil
}

// halleyLn solves e^y = m for moderate m. Each step
// y += 2(m - e^y)/(m + e^y) triples the number of correct digits.
func halleyLn(m decimal.Decimal, prec int32) (decimal.Decimal, error) {
	inner := prec + 2
	eps := decimal.New(1, -prec)

	y := decimal.NewFromFloat(math.Log(m.InexactFloat64()))
	for i := 0; i < maxLnIterations; i++ {
		ey, err := y.ExpTaylor(inner)
		if err != nil {
			return decimal.Zero, err
		}
		step := decTwo.Mul(m.Sub(ey)).DivRound(m.Add(ey), inner)
		y = y.Add(step)
		if step.Abs().Cmp(eps) <= 0 {
			return y.Round(prec), nil
		}
	}
	return decimal.Zero, mdwerrors.NonConvergence(mdwerrors.ModuleNumeric, "Ln",
		"logarithm did not converge", maxLnIterations, y.String())
}

// exp halves x until |x| <= 1, sums the Taylor series and squares back
func (d Decimal) exp(x decimal.Decimal, prec int32) (decimal.Decimal, error) {
	if f := x.InexactFloat64(); f > maxExponent {
		return decimal.Zero, mdwerrors.Overflow(mdwerrors.ModuleNumeric, "Exp", x.String())
	} else if f < -maxExponent {
		return decimal.Zero, nil
	}

	half := decimal.New(5, -1)
	halvings := 0
	for x.Abs().Cmp(decOne) > 0 {
		x = x.Mul(half)
		halvings++
	}

	inner := prec + int32(halvings) + 2
	result, err := x.ExpTaylor(inner)
	if err != nil {
		return decimal.Zero, err
	}
	for i := 0; i < halvings; i++ {
		result = result.Mul(result).Round(inner)
	}
	return result.Round(prec), nil
}
