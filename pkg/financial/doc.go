// File: doc.go
// Title: Financial Engine Package Documentation
// Description: Package documentation for the annuity, depreciation and
//              rate-of-return functions of the legacy Financial API.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-18
// Modified: 2026-10-18
//
// Change History:
// - 2026-10-18 v0.1.0: Initial implementation

// Package financial implements the functions of the legacy runtime
// "Financial" API: payment, present and future value, number of periods,
// net present value, straight-line, sum-of-years and declining-balance
// depreciation, the modified internal rate of return, amortization
// schedules, and the two iterative solvers IRR and Rate.
//
// Every formula is written once against numeric.Arithmetic and is available
// for float64 and for arbitrary-precision decimals:
//
//	pmt, err := financial.Float.Pmt(0.025/12, 10, -1000, 0, financial.EndOfPeriod)
//
//	dec := financial.Decimal
//	rate := decimal.NewFromFloat(0.025).Div(decimal.NewFromInt(12))
//	pmt, err := dec.Pmt(rate, decimal.NewFromInt(10), decimal.NewFromInt(-1000), decimal.Zero, financial.EndOfPeriod)
//
// Signs follow the cash-flow convention: money paid out is negative, money
// received is positive. A loan of 1000 (pv = -1000 from the lender's view)
// yields a positive periodic payment.
//
// All functions are pure. Errors are *error.Error values from
// foundation/core/error and can be classified with errors.Is against the
// sentinels ErrInvalidArgument, ErrMalformedInput, ErrDivisionByZero,
// ErrOverflow, ErrNonConvergence and ErrDegenerateIteration.
package financial
