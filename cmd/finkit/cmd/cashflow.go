package cmd

import (
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
)

// cashFlowInputs holds the raw values of the cash-flow commands. Flows are
// positional arguments.
type cashFlowInputs struct {
	rate, guess, financeRate, reinvestRate string
	flows                                  []string
}

func npvOp[T any](in *cashFlowInputs) scalarFunc[T] {
	return func(e *engine[T]) (T, error) {
		rate, flows := e.value("rate", in.rate), e.values(in.flows)
		if e.err != nil {
			return e.zero, e.err
		}
		return e.calc.NPV(rate, flows)
	}
}

func irrOp[T any](in *cashFlowInputs) scalarFunc[T] {
	return func(e *engine[T]) (T, error) {
		flows, guess := e.values(in.flows), e.guess(in.guess)
		if e.err != nil {
			return e.zero, e.err
		}
		return e.calc.IRRGuess(flows, guess)
	}
}

func mirrOp[T any](in *cashFlowInputs) scalarFunc[T] {
	return func(e *engine[T]) (T, error) {
		flows := e.values(in.flows)
		finance, reinvest := e.value("finance-rate", in.financeRate), e.value("reinvest-rate", in.reinvestRate)
		if e.err != nil {
			return e.zero, e.err
		}
		return e.calc.MIRR(flows, finance, reinvest)
	}
}

func newNPVCommand(opts *RootOptions) *cobra.Command {
	in := &cashFlowInputs{}
	cmd := &cobra.Command{
		Use:     "npv --rate r -- flow...",
		Short:   "Net present value of periodic cash flows; the first flow is not discounted",
		Example: "  finkit npv --rate 0.1 -- -10000 3000 4200 6800",
		Args:    cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			in.flows = args
			return opts.runScalar(cmd, npvOp[float64](in), npvOp[decimal.Decimal](in))
		},
	}
	cmd.Flags().StringVar(&in.rate, "rate", "", "discount rate per period")
	_ = cmd.MarkFlagRequired("rate")
	return cmd
}

func newIRRCommand(opts *RootOptions) *cobra.Command {
	in := &cashFlowInputs{}
	cmd := &cobra.Command{
		Use:     "irr [--guess g] -- flow...",
		Short:   "Internal rate of return of periodic cash flows",
		Example: "  finkit irr --guess 0.001 -- -91045.53 3692.25 52110 2287.5 49822.5",
		Args:    cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			in.flows = args
			return opts.runScalar(cmd, irrOp[float64](in), irrOp[decimal.Decimal](in))
		},
	}
	cmd.Flags().StringVar(&in.guess, "guess", "", "starting rate of the search (default from solver.guess)")
	return cmd
}

func newMIRRCommand(opts *RootOptions) *cobra.Command {
	in := &cashFlowInputs{}
	cmd := &cobra.Command{
		Use:     "mirr --finance-rate f --reinvest-rate r -- flow...",
		Short:   "Modified internal rate of return of periodic cash flows",
		Example: "  finkit mirr --finance-rate 0.1 --reinvest-rate 0.12 -- -120000 39000 30000 21000 37000 46000",
		Args:    cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			in.flows = args
			return opts.runScalar(cmd, mirrOp[float64](in), mirrOp[decimal.Decimal](in))
		},
	}
	cmd.Flags().StringVar(&in.financeRate, "finance-rate", "", "rate paid on outflows")
	cmd.Flags().StringVar(&in.reinvestRate, "reinvest-rate", "", "rate earned on reinvested inflows")
	_ = cmd.MarkFlagRequired("finance-rate")
	_ = cmd.MarkFlagRequired("reinvest-rate")
	return cmd
}
