// File: npv.go
// Title: Net Present Value
// Description: Discounted sums of cash-flow sequences, in full and restricted
//              to the positive or negative flows.
// Author: msto63
// Version: v0.1.1
// Created: 2026-10-18
// Modified: 2026-10-18
//
// Change History:
// - 2026-10-18 v0.1.0: Initial implementation
// - 2026-10-18 v0.1.1: Bounded running discount factor

package financial

import (
	mdwerrors "github.com/msto63/finkit/foundation/core/errors"
)

// flowFilter selects the cash flows a discounted sum includes
type flowFilter int

const (
	allFlows flowFilter = iota
	positiveFlows
	negativeFlows
)

func (f flowFilter) accepts(sign int) bool {
	switch f {
	case positiveFlows:
		return sign > 0
	case negativeFlows:
		return sign < 0
	default:
		return true
	}
}

// NPV returns the sum of flows[i] / (1+rate)^i. The first flow is not
// discounted.
func (c *Calculator[T]) NPV(rate T, flows []T) (T, error) {
	const op = "NPV"
	if len(flows) == 0 {
		return c.zero, mdwerrors.MalformedInput(mdwerrors.ModuleCashFlow, op, "flows", 0, "at least one cash flow is required")
	}
	if c.num.Cmp(rate, c.num.Neg(c.one)) == 0 {
		return c.zero, c.invalid(mdwerrors.ModuleCashFlow, op, "rate", rate, "rate must not be -1")
	}
	return c.discountedSum(op, rate, flows, allFlows)
}

// discountedSum discounts the flows accepted by filter with one running
// discount factor
func (c *Calculator[T]) discountedSum(op string, rate T, flows []T, filter flowFilter) (T, error) {
	n := c.num
	growth := n.Add(c.one, rate)
	discount := c.one
	total := c.zero
	for _, flow := range flows {
		if filter.accepts(n.Sign(flow)) {
			term, err := c.quo(mdwerrors.ModuleCashFlow, op, "(1+rate)^i", flow, discount)
			if err != nil {
				return c.zero, err
			}
			total = n.Add(total, term)
		}
		discount = n.Settle(n.Mul(discount, growth))
	}
	return total, nil
}
