// File: arithmetic.go
// Title: Arithmetic Strategy Interface
// Description: The operations the financial formulas need from a number
//              representation, plus small generic helpers built on them.
// Author: msto63
// Version: v0.1.1
// Created: 2026-10-18
// Modified: 2026-10-18
//
// Change History:
// - 2026-10-18 v0.1.0: Initial implementation
// - 2026-10-18 v0.1.1: Settle for running products

package numeric

// Arithmetic is the set of operations formulas may use on values of T.
// Implementations are stateless values.
type Arithmetic[T any] interface {
	// Name identifies the representation ("float" or "decimal")
	Name() string

	FromFloat(f float64) T
	FromInt(i int64) T
	// Parse reads a decimal literal such as "-1000.50"
	Parse(s string) (T, error)

	Add(a, b T) T
	Sub(a, b T) T
	Mul(a, b T) T
	// Settle bounds the size of a running product without changing its
	// value beyond the working precision
	Settle(a T) T
	// Quo divides a by b. b must be non-zero; callers guard divisors.
	Quo(a, b T) T
	Neg(a T) T
	Abs(a T) T

	// Pow raises base to a real exponent
	Pow(base, exp T) (T, error)
	// Ln is the natural logarithm of a positive value
	Ln(x T) (T, error)

	Cmp(a, b T) int
	Sign(a T) int
	IsInteger(a T) bool

	Float64(a T) float64
	// Round rounds half away from zero to the given fractional digits
	Round(a T, places int32) T
	// Format renders a with exactly places fractional digits
	Format(a T, places int32) string
	String(a T) string
}

// IsZero reports whether a equals zero
func IsZero[T any](num Arithmetic[T], a T) bool {
	return num.Sign(a) == 0
}

// Equal reports whether a and b compare equal
func Equal[T any](num Arithmetic[T], a, b T) bool {
	return num.Cmp(a, b) == 0
}

// Max returns the larger of a and b
func Max[T any](num Arithmetic[T], a, b T) T {
	if num.Cmp(a, b) >= 0 {
		return a
	}
	return b
}

// Min returns the smaller of a and b
func Min[T any](num Arithmetic[T], a, b T) T {
	if num.Cmp(a, b) <= 0 {
		return a
	}
	return b
}

// MaxAbs returns the largest absolute value in values, or zero when empty
func MaxAbs[T any](num Arithmetic[T], values []T) T {
	result := num.FromInt(0)
	for _, v := range values {
		result = Max(num, result, num.Abs(v))
	}
	return result
}

// maxExponent bounds |y| in e^y before a result is reported as overflow.
// It matches the range of float64 so both representations fail alike.
const maxExponent = 700.0
