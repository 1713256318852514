// File: schedule.go
// Title: Amortization Schedule
// Description: Period-by-period breakdown of a level-payment annuity into
//              interest, principal and remaining balance.
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

// maxSchedulePeriods bounds the length of a schedule
const maxSchedulePeriods = 10000

// Installment is one row of an amortization schedule
type Installment[T any] struct {
	Period    int `json:"period"`
	Payment   T   `json:"payment"`
	Interest  T   `json:"interest"`
	Principal T   `json:"principal"`
	// Balance is the outstanding balance after the payment, in the sign of
	// pv. With EndOfPeriod it ends at -fv.
	Balance T `json:"balance"`
}

// Schedule returns one installment per period. nper must be a positive
// integer.
func (c *Calculator[T]) Schedule(rate, nper, pv, fv T, due Due) ([]Installment[T], error) {
	const op = "Schedule"
	n := c.num
	if n.Sign(nper) <= 0 || !n.IsInteger(nper) || n.Float64(nper) > maxSchedulePeriods {
		return nil, c.invalid(mdwerrors.ModuleSchedule, op, "nper", nper,
			"number of periods must be a positive integer of at most 10000")
	}

	pmt, err := c.Pmt(rate, nper, pv, fv, due)
	if err != nil {
		return nil, err
	}

	periods := int(n.Float64(nper))
	rows := make([]Installment[T], 0, periods)
	balance := pv
	for i := 1; i <= periods; i++ {
		per := n.FromInt(int64(i))
		interest, err := c.IPmt(rate, per, nper, pv, fv, due)
		if err != nil {
			return nil, err
		}
		principal, err := c.PPmt(rate, per, nper, pv, fv, due)
		if err != nil {
			return nil, err
		}
		balance = n.Add(balance, principal)
		rows = append(rows, Installment[T]{
			Period:    i,
			Payment:   pmt,
			Interest:  interest,
			Principal: principal,
			Balance:   balance,
		})
	}
	return rows, nil
}
