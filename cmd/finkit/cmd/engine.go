package cmd

import (
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	mdwerrors "github.com/msto63/finkit/foundation/core/errors"
	"github.com/msto63/finkit/foundation/utils/numeric"
	"github.com/msto63/finkit/pkg/financial"
)

// engine evaluates one command against a calculator. The first malformed
// argument is kept in err and later arguments are skipped.
type engine[T any] struct {
	calc    *financial.Calculator[T]
	num     numeric.Arithmetic[T]
	command string
	zero    T
	err     error
}

func newEngine[T any](cmd *cobra.Command, calc *financial.Calculator[T]) *engine[T] {
	num := calc.Arithmetic()
	return &engine[T]{calc: calc, num: num, command: cmd.Name(), zero: num.FromInt(0)}
}

// value parses the argument given for flag
func (e *engine[T]) value(flag, s string) T {
	if e.err != nil {
		return e.zero
	}
	v, err := e.num.Parse(s)
	if err != nil {
		e.err = mdwerrors.MalformedInput(mdwerrors.ModuleCLI, e.command, flag, s,
			fmt.Sprintf("%s: %q is not a number", flag, s))
		return e.zero
	}
	return v
}

// values parses a list of positional cash flows
func (e *engine[T]) values(ss []string) []T {
	result := make([]T, len(ss))
	for i, s := range ss {
		result[i] = e.value(fmt.Sprintf("flow[%d]", i), s)
	}
	return result
}

// guess parses an optional solver guess; empty selects the configured one
func (e *engine[T]) guess(s string) T {
	if s == "" {
		return e.calc.DefaultGuess()
	}
	return e.value("guess", s)
}

func (e *engine[T]) due(s string) financial.Due {
	if e.err != nil {
		return financial.EndOfPeriod
	}
	due, err := financial.ParseDue(s)
	if err != nil {
		e.err = err
	}
	return due
}

// scalarFunc computes a single result
type scalarFunc[T any] func(e *engine[T]) (T, error)

// runScalar evaluates the instantiation selected by --decimal and prints the
// result rounded to --places
func (o *RootOptions) runScalar(cmd *cobra.Command, f scalarFunc[float64], d scalarFunc[decimal.Decimal]) error {
	return o.timed(cmd, func() error {
		if o.Decimal {
			return printScalar(cmd, o.Places, newEngine(cmd, financial.NewDecimal(o.calculatorOptions()...)), d)
		}
		return printScalar(cmd, o.Places, newEngine(cmd, financial.NewFloat(o.calculatorOptions()...)), f)
	})
}

func printScalar[T any](cmd *cobra.Command, places int32, e *engine[T], fn scalarFunc[T]) error {
	v, err := fn(e)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(cmd.OutOrStdout(), e.num.Format(v, places))
	return err
}
