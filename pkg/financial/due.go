// File: due.go
// Title: Payment Timing
// Description: The two payment timing conventions and the factors the
//              annuity formulas derive from them.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-18
// Modified: 2026-10-18
//
// Change History:
// - 2026-10-18 v0.1.0: Initial implementation

package financial

import (
	"strings"

	mdwerrors "github.com/msto63/finkit/foundation/core/errors"
)

// Due selects whether payments fall at the end or the beginning of a period
type Due int

const (
	// EndOfPeriod places payments at the end of each period (ordinary annuity)
	EndOfPeriod Due = iota
	// BeginningOfPeriod places payments at the start of each period (annuity due)
	BeginningOfPeriod
)

// String returns "end" or "begin"
func (d Due) String() string {
	if d == BeginningOfPeriod {
		return "begin"
	}
	return "end"
}

// ParseDue reads "end"/"0" or "begin"/"beginning"/"1", case-insensitively
func ParseDue(s string) (Due, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "end", "0":
		return EndOfPeriod, nil
	case "begin", "beginning", "start", "1":
		return BeginningOfPeriod, nil
	}
	return EndOfPeriod, mdwerrors.InvalidArgument(mdwerrors.ModuleAnnuity, "ParseDue", "due", s,
		"due must be 'end' or 'begin'")
}

// factor returns 1 for EndOfPeriod and 1+rate for BeginningOfPeriod
func (c *Calculator[T]) factor(rate T, due Due) T {
	if due == BeginningOfPeriod {
		return c.num.Add(c.one, rate)
	}
	return c.one
}

// offset returns the period offset IPmt applies before compounding
func (c *Calculator[T]) offset(due Due) T {
	if due == BeginningOfPeriod {
		return c.two
	}
	return c.one
}
