// File: irr.go
// Title: Internal Rate of Return
// Description: IRR of a periodic cash-flow sequence by secant iteration on
//              its net present value.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-18
// Modified: 2026-10-18
//
// Change History:
// - 2026-10-18 v0.1.0: Initial implementation

package financial

import (
	mdwerrors "github.com/msto63/finkit/foundation/core/errors"
	"github.com/msto63/finkit/foundation/utils/numeric"
)

// IRR returns the internal rate of return starting from Settings.Guess
func (c *Calculator[T]) IRR(flows []T) (T, error) {
	return c.IRRGuess(flows, c.DefaultGuess())
}

// IRRGuess returns the rate at which the net present value of flows is zero,
// starting the search at guess.
func (c *Calculator[T]) IRRGuess(flows []T, guess T) (T, error) {
	const op = "IRR"
	n := c.num
	if len(flows) < 2 {
		return c.zero, mdwerrors.MalformedInput(mdwerrors.ModuleSolver, op, "flows", len(flows), "at least two cash flows are required")
	}
	if n.Cmp(guess, n.Neg(c.one)) <= 0 {
		return c.zero, c.invalid(mdwerrors.ModuleSolver, op, "guess", guess, "guess must be greater than -1")
	}

	tolerance := n.Mul(numeric.MaxAbs(n, flows), n.FromFloat(c.settings.Epsilon*0.01))
	residual := func(rate T) (T, error) {
		return c.presentValue(op, rate, flows)
	}

	f0, err := residual(guess)
	if err != nil {
		return c.zero, err
	}
	r1 := n.Sub(guess, c.step)
	if n.Sign(f0) > 0 {
		r1 = n.Add(guess, c.step)
	}
	if n.Cmp(r1, n.Neg(c.one)) <= 0 {
		return c.zero, c.invalid(mdwerrors.ModuleSolver, op, "guess", guess, "guess must be greater than -1")
	}
	f1, err := residual(r1)
	if err != nil {
		return c.zero, err
	}

	s := &secant[T]{
		calc:      c,
		operation: op,
		residual:  residual,
		converged: func(prev, next point[T]) bool {
			return n.Cmp(n.Abs(next.residual), tolerance) < 0 &&
				n.Cmp(n.Abs(n.Sub(next.rate, prev.rate)), c.epsilon) < 0
		},
	}
	out, err := s.run(point[T]{guess, f0}, point[T]{r1, f1})
	if err != nil {
		return c.zero, err
	}
	return c.resolve(op, out, "cannot calculate internal rate of return")
}

// presentValue evaluates the net present value of flows at rate, ignoring
// leading zero flows, by Horner's scheme from the last flow backwards
func (c *Calculator[T]) presentValue(op string, rate T, flows []T) (T, error) {
	n := c.num
	start := 0
	for start < len(flows) && n.Sign(flows[start]) == 0 {
		start++
	}
	if start == len(flows) {
		return c.zero, nil
	}

	growth := n.Add(c.one, rate)
	if n.Sign(growth) == 0 {
		return c.zero, mdwerrors.DivisionByZero(mdwerrors.ModuleSolver, op, "1+rate")
	}
	total := flows[len(flows)-1]
	for i := len(flows) - 2; i >= start; i-- {
		total = n.Add(n.Quo(total, growth), flows[i])
	}
	return total, nil
}

// resolve maps a secant outcome to a result or an error
func (c *Calculator[T]) resolve(op string, out outcome[T], exhausted string) (T, error) {
	switch {
	case out.state == stateConverged:
		return out.value, nil
	case out.degenerate:
		return c.zero, mdwerrors.DegenerateIteration(mdwerrors.ModuleSolver, op, "division by zero",
			out.iterations, c.num.String(out.value))
	default:
		return c.zero, mdwerrors.NonConvergence(mdwerrors.ModuleSolver, op, exhausted,
			out.iterations, c.num.String(out.value))
	}
}
