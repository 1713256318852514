// File: annuity.go
// Title: Annuity Algebra
// Description: Closed-form payment, interest and principal portions,
//              present value, future value and number of periods of a
//              level-payment annuity.
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

// Pmt returns the level payment per period that amortizes pv to fv over
// nper periods at rate.
func (c *Calculator[T]) Pmt(rate, nper, pv, fv T, due Due) (T, error) {
	const op = "Pmt"
	n := c.num
	if n.Sign(nper) == 0 {
		return c.zero, c.invalid(mdwerrors.ModuleAnnuity, op, "nper", nper, "number of periods must not be zero")
	}
	if n.Sign(rate) == 0 {
		return n.Quo(n.Neg(n.Add(fv, pv)), nper), nil
	}

	g, err := c.growth(mdwerrors.ModuleAnnuity, op, rate, nper)
	if err != nil {
		return c.zero, err
	}
	numerator := n.Mul(n.Sub(n.Neg(fv), n.Mul(pv, g)), rate)
	denominator := n.Mul(c.factor(rate, due), n.Sub(g, c.one))
	return c.quo(mdwerrors.ModuleAnnuity, op, "(1+rate)^nper-1", numerator, denominator)
}

// IPmt returns the interest portion of the payment in period per
func (c *Calculator[T]) IPmt(rate, per, nper, pv, fv T, due Due) (T, error) {
	const op = "IPmt"
	if err := c.checkPeriod(op, per, nper); err != nil {
		return c.zero, err
	}
	return c.ipmt(op, rate, per, nper, pv, fv, due)
}

func (c *Calculator[T]) ipmt(op string, rate, per, nper, pv, fv T, due Due) (T, error) {
	n := c.num
	if due == BeginningOfPeriod && n.Cmp(per, c.one) == 0 {
		return c.zero, nil
	}

	pmt, err := c.Pmt(rate, nper, pv, fv, due)
	if err != nil {
		return c.zero, err
	}
	if due == BeginningOfPeriod {
		pv = n.Add(pv, pmt)
	}
	balance, err := c.FV(rate, n.Sub(per, c.offset(due)), pmt, pv, EndOfPeriod)
	if err != nil {
		return c.zero, err
	}
	return n.Mul(balance, rate), nil
}

// PPmt returns the principal portion of the payment in period per
func (c *Calculator[T]) PPmt(rate, per, nper, pv, fv T, due Due) (T, error) {
	const op = "PPmt"
	if err := c.checkPeriod(op, per, nper); err != nil {
		return c.zero, err
	}
	pmt, err := c.Pmt(rate, nper, pv, fv, due)
	if err != nil {
		return c.zero, err
	}
	interest, err := c.ipmt(op, rate, per, nper, pv, fv, due)
	if err != nil {
		return c.zero, err
	}
	return c.num.Sub(pmt, interest), nil
}

// checkPeriod requires 0 < per < nper+1
func (c *Calculator[T]) checkPeriod(op string, per, nper T) error {
	n := c.num
	if n.Sign(per) <= 0 || n.Cmp(per, n.Add(nper, c.one)) >= 0 {
		return c.invalid(mdwerrors.ModuleAnnuity, op, "per", per, "period must be greater than 0 and less than nper+1")
	}
	return nil
}

// PV returns the present value of nper payments of pmt followed by fv
func (c *Calculator[T]) PV(rate, nper, pmt, fv T, due Due) (T, error) {
	const op = "PV"
	n := c.num
	if n.Sign(rate) == 0 {
		return n.Sub(n.Neg(fv), n.Mul(pmt, nper)), nil
	}

	g, err := c.growth(mdwerrors.ModuleAnnuity, op, rate, nper)
	if err != nil {
		return c.zero, err
	}
	annuity := n.Quo(n.Mul(n.Mul(pmt, c.factor(rate, due)), n.Sub(g, c.one)), rate)
	return c.quo(mdwerrors.ModuleAnnuity, op, "(1+rate)^nper", n.Neg(n.Add(fv, annuity)), g)
}

// FV returns the value after nper payments of pmt on a starting balance pv
func (c *Calculator[T]) FV(rate, nper, pmt, pv T, due Due) (T, error) {
	const op = "FV"
	n := c.num
	if n.Sign(rate) == 0 {
		return n.Sub(n.Neg(pv), n.Mul(pmt, nper)), nil
	}

	g, err := c.growth(mdwerrors.ModuleAnnuity, op, rate, nper)
	if err != nil {
		return c.zero, err
	}
	annuity := n.Mul(n.Mul(n.Quo(pmt, rate), c.factor(rate, due)), n.Sub(g, c.one))
	return n.Sub(n.Neg(n.Mul(pv, g)), annuity), nil
}

// NPer returns the number of periods needed to move pv to fv with payments
// of pmt.
func (c *Calculator[T]) NPer(rate, pmt, pv, fv T, due Due) (T, error) {
	const op = "NPer"
	n := c.num
	if n.Cmp(rate, n.Neg(c.one)) <= 0 {
		return c.zero, c.invalid(mdwerrors.ModuleAnnuity, op, "rate", rate, "rate must be greater than -1")
	}
	if n.Sign(rate) == 0 {
		if n.Sign(pmt) == 0 {
			return c.zero, c.invalid(mdwerrors.ModuleAnnuity, op, "pmt", pmt, "payment must not be zero when rate is zero")
		}
		return n.Quo(n.Neg(n.Add(pv, fv)), pmt), nil
	}

	annuity := n.Quo(n.Mul(pmt, c.factor(rate, due)), rate)
	d1 := n.Add(n.Neg(fv), annuity)
	d2 := n.Add(pv, annuity)
	if n.Sign(d1) < 0 && n.Sign(d2) < 0 {
		d1, d2 = n.Neg(d1), n.Neg(d2)
	}
	if n.Sign(d1) <= 0 || n.Sign(d2) <= 0 {
		return c.zero, c.invalid(mdwerrors.ModuleAnnuity, op, "pmt", pmt, "cannot calculate number of periods")
	}

	ln1, err := n.Ln(d1)
	if err != nil {
		return c.zero, wrap(mdwerrors.ModuleAnnuity, op, err)
	}
	ln2, err := n.Ln(d2)
	if err != nil {
		return c.zero, wrap(mdwerrors.ModuleAnnuity, op, err)
	}
	lnGrowth, err := n.Ln(n.Add(c.one, rate))
	if err != nil {
		return c.zero, wrap(mdwerrors.ModuleAnnuity, op, err)
	}
	return c.quo(mdwerrors.ModuleAnnuity, op, "ln(1+rate)", n.Sub(ln1, ln2), lnGrowth)
}
