// File: depreciation.go
// Title: Depreciation
// Description: Straight-line, sum-of-years'-digits and declining-balance
//              depreciation of an asset.
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

// SLN returns the straight-line depreciation per period
func (c *Calculator[T]) SLN(cost, salvage, life T) (T, error) {
	if c.num.Sign(life) == 0 {
		return c.zero, c.invalid(mdwerrors.ModuleDepreciation, "SLN", "life", life, "life must not be zero")
	}
	return c.num.Quo(c.num.Sub(cost, salvage), life), nil
}

// SYD returns the sum-of-years'-digits depreciation for period
func (c *Calculator[T]) SYD(cost, salvage, life, period T) (T, error) {
	const op = "SYD"
	n := c.num
	if n.Sign(salvage) < 0 {
		return c.zero, c.invalid(mdwerrors.ModuleDepreciation, op, "salvage", salvage, "salvage must not be negative")
	}
	if err := c.checkLifePeriod(op, life, period); err != nil {
		return c.zero, err
	}

	digits := n.Mul(life, n.Add(life, c.one))
	perDigit := n.Quo(n.Sub(cost, salvage), digits)
	remaining := n.Sub(n.Add(life, c.one), period)
	return n.Mul(n.Mul(perDigit, remaining), c.two), nil
}

// DDB returns double-declining-balance depreciation for period
func (c *Calculator[T]) DDB(cost, salvage, life, period T) (T, error) {
	return c.DDBWithFactor(cost, salvage, life, period, c.two)
}

// DDBWithFactor returns declining-balance depreciation for period at the
// given rate factor. The depreciation never takes the book value below
// salvage.
func (c *Calculator[T]) DDBWithFactor(cost, salvage, life, period, factor T) (T, error) {
	const op = "DDB"
	n := c.num
	if n.Sign(factor) <= 0 {
		return c.zero, c.invalid(mdwerrors.ModuleDepreciation, op, "factor", factor, "factor must be positive")
	}
	if n.Sign(salvage) < 0 {
		return c.zero, c.invalid(mdwerrors.ModuleDepreciation, op, "salvage", salvage, "salvage must not be negative")
	}
	if err := c.checkLifePeriod(op, life, period); err != nil {
		return c.zero, err
	}

	if n.Sign(cost) <= 0 {
		return c.zero, nil
	}
	if n.Cmp(life, c.two) < 0 {
		return n.Sub(cost, salvage), nil
	}
	if n.Cmp(life, c.two) == 0 {
		if n.Cmp(period, c.one) > 0 {
			return c.zero, nil
		}
		return n.Sub(cost, salvage), nil
	}
	if n.Cmp(period, c.one) <= 0 {
		first := n.Quo(n.Mul(cost, factor), life)
		return numeric.Min(n, first, n.Sub(cost, salvage)), nil
	}

	remaining := n.Quo(n.Sub(life, factor), life)
	before, err := n.Pow(remaining, n.Sub(period, c.one))
	if err != nil {
		return c.zero, wrap(mdwerrors.ModuleDepreciation, op, err)
	}
	after, err := n.Pow(remaining, period)
	if err != nil {
		return c.zero, wrap(mdwerrors.ModuleDepreciation, op, err)
	}

	dep := n.Mul(n.Quo(n.Mul(factor, cost), life), before)
	excess := n.Add(n.Sub(n.Mul(cost, n.Sub(c.one, after)), cost), salvage)
	if n.Sign(excess) > 0 {
		dep = n.Sub(dep, excess)
	}
	return numeric.Max(n, dep, c.zero), nil
}

// checkLifePeriod requires 0 < period <= life
func (c *Calculator[T]) checkLifePeriod(op string, life, period T) error {
	if c.num.Sign(period) <= 0 || c.num.Cmp(period, life) > 0 {
		return c.invalid(mdwerrors.ModuleDepreciation, op, "period", period, "period must be greater than 0 and at most life")
	}
	return nil
}
