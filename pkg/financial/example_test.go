// File: example_test.go
// Title: Financial Engine Examples
// Description: Example usage of the float64 and decimal calculators.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-18
// Modified: 2026-10-18
//
// Change History:
// - 2026-10-18 v0.1.0: Initial implementation

package financial_test

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/msto63/finkit/pkg/financial"
)

func ExampleCalculator_Pmt() {
	pmt, err := financial.Float.Pmt(0.025/12, 10, -1000, 0, financial.EndOfPeriod)
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Printf("%.2f\n", pmt)
	// Output: 101.15
}

func ExampleCalculator_Pmt_decimal() {
	dec := financial.Decimal
	rate := decimal.RequireFromString("0.025").Div(decimal.NewFromInt(12))

	pmt, err := dec.Pmt(rate, decimal.NewFromInt(10), decimal.NewFromInt(-1000), decimal.Zero, financial.EndOfPeriod)
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(pmt.StringFixed(2))
	// Output: 101.15
}

func ExampleCalculator_IRRGuess() {
	flows := []float64{-91045.53, 3692.25, 52110, 2287.5, 49822.5}
	r, err := financial.Float.IRRGuess(flows, 0.001)
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Printf("semi-annual %.4f, annualized %.2f%%\n", r, ((1+r)*(1+r)-1)*100)
	// Output: semi-annual 0.0608, annualized 12.53%
}

func ExampleCalculator_SLN() {
	dep, _ := financial.Float.SLN(10000, 1000, 5)
	fmt.Printf("%.2f\n", dep)
	// Output: 1800.00
}

func ExampleCalculator_Schedule() {
	rows, err := financial.Float.Schedule(0.1, 2, -1000, 0, financial.EndOfPeriod)
	if err != nil {
		fmt.Println(err)
		return
	}
	num := financial.Float.Arithmetic()
	for _, r := range rows {
		fmt.Println(r.Period, num.Format(r.Interest, 2), num.Format(r.Principal, 2), num.Format(r.Balance, 2))
	}
	// Output:
	// 1 100.00 476.19 -523.81
	// 2 52.38 523.81 0.00
}

func ExampleCalculator_Rate() {
	_, err := financial.Float.Rate(10, 0, 0, 0, financial.EndOfPeriod)
	fmt.Println(errors.Is(err, financial.ErrDegenerateIteration))
	// Output: true
}
