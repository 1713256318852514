// Package numeric abstracts the number representation used by the financial
// engine.
//
// Package: numeric
// Title: Numeric Representations
// Description: Defines the Arithmetic strategy interface and its two
//              instantiations: Float over float64 and Decimal over
//              shopspring/decimal. Formulas written once against
//              Arithmetic[T] run unchanged under either representation.
//              Decimal adds natural logarithm and real powers, which the
//              decimal library does not provide directly.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-18
// Modified: 2026-10-18
//
// Change History:
// - 2026-10-18 v0.1.0: Initial implementation replacing the big.Rat based
//                      mathx decimal
//
// Usage:
//
//	func compound[T any](num numeric.Arithmetic[T], rate T, n int64) (T, error) {
//		return num.Pow(num.Add(num.FromInt(1), rate), num.FromInt(n))
//	}
//
//	f, _ := compound[float64](numeric.Float{}, 0.05, 10)
//	d, _ := compound[decimal.Decimal](numeric.NewDecimal(32), decimal.RequireFromString("0.05"), 10)
package numeric
