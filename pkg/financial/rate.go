// File: rate.go
// Title: Rate
// Description: Interest rate per period of an annuity by secant iteration
//              on the annuity equation.
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
)

// Rate returns the interest rate per period starting from Settings.Guess
func (c *Calculator[T]) Rate(nper, pmt, pv, fv T, due Due) (T, error) {
	return c.RateGuess(nper, pmt, pv, fv, due, c.DefaultGuess())
}

// RateGuess returns the rate at which nper payments of pmt move pv to fv,
// starting the search at guess.
func (c *Calculator[T]) RateGuess(nper, pmt, pv, fv T, due Due, guess T) (T, error) {
	const op = "Rate"
	n := c.num
	if n.Sign(nper) <= 0 {
		return c.zero, c.invalid(mdwerrors.ModuleSolver, op, "nper", nper, "number of periods must be positive")
	}
	if n.Cmp(guess, n.Neg(c.one)) <= 0 {
		return c.zero, c.invalid(mdwerrors.ModuleSolver, op, "guess", guess, "guess must be greater than -1")
	}

	residual := func(rate T) (T, error) {
		return c.annuityResidual(op, rate, nper, pmt, pv, fv, due)
	}

	f0, err := residual(guess)
	if err != nil {
		return c.zero, err
	}
	r1 := n.Mul(guess, c.two)
	if n.Sign(f0) > 0 {
		r1 = n.Quo(guess, c.two)
	}
	f1, err := residual(r1)
	if err != nil {
		return c.zero, err
	}

	s := &secant[T]{
		calc:      c,
		operation: op,
		residual:  residual,
		converged: func(_, next point[T]) bool {
			return n.Cmp(n.Abs(next.residual), c.epsilon) < 0
		},
	}
	out, err := s.run(point[T]{guess, f0}, point[T]{r1, f1})
	if err != nil {
		return c.zero, err
	}
	return c.resolve(op, out, "cannot calculate rate")
}

// annuityResidual is zero when rate balances the annuity equation
func (c *Calculator[T]) annuityResidual(op string, rate, nper, pmt, pv, fv T, due Due) (T, error) {
	n := c.num
	if n.Sign(rate) == 0 {
		return n.Add(n.Add(pv, n.Mul(pmt, nper)), fv), nil
	}
	g, err := c.growth(mdwerrors.ModuleSolver, op, rate, nper)
	if err != nil {
		return c.zero, err
	}
	annuity := n.Quo(n.Mul(n.Mul(pmt, c.factor(rate, due)), n.Sub(g, c.one)), rate)
	return n.Add(n.Add(n.Mul(pv, g), annuity), fv), nil
}
