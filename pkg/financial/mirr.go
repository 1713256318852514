// File: mirr.go
// Title: Modified Internal Rate of Return
// Description: MIRR of a cash-flow sequence given separate finance and
//              reinvestment rates.
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

// MIRR returns the modified internal rate of return. Outflows are
// discounted at financeRate, inflows compounded at reinvestRate.
func (c *Calculator[T]) MIRR(flows []T, financeRate, reinvestRate T) (T, error) {
	const op = "MIRR"
	n := c.num
	if len(flows) < 2 {
		return c.zero, mdwerrors.MalformedInput(mdwerrors.ModuleCashFlow, op, "flows", len(flows), "at least two cash flows are required")
	}
	minusOne := n.Neg(c.one)
	if n.Cmp(financeRate, minusOne) == 0 {
		return c.zero, c.invalid(mdwerrors.ModuleCashFlow, op, "financeRate", financeRate, "rate must not be -1")
	}
	if n.Cmp(reinvestRate, minusOne) == 0 {
		return c.zero, c.invalid(mdwerrors.ModuleCashFlow, op, "reinvestRate", reinvestRate, "rate must not be -1")
	}

	outflows, err := c.discountedSum(op, financeRate, flows, negativeFlows)
	if err != nil {
		return c.zero, err
	}
	inflows, err := c.discountedSum(op, reinvestRate, flows, positiveFlows)
	if err != nil {
		return c.zero, err
	}

	periods := n.FromInt(int64(len(flows) - 1))
	terminal, err := c.growth(mdwerrors.ModuleCashFlow, op, reinvestRate, periods)
	if err != nil {
		return c.zero, err
	}
	ratio, err := c.quo(mdwerrors.ModuleCashFlow, op, "discounted outflows", n.Neg(n.Mul(inflows, terminal)), outflows)
	if err != nil {
		return c.zero, err
	}
	if n.Sign(ratio) < 0 {
		return c.zero, c.invalid(mdwerrors.ModuleCashFlow, op, "flows", ratio, "cash flows must contain both inflows and outflows")
	}

	root, err := n.Pow(ratio, n.Quo(c.one, periods))
	if err != nil {
		return c.zero, wrap(mdwerrors.ModuleCashFlow, op, err)
	}
	return n.Sub(root, c.one), nil
}
