package cmd

import (
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
)

// annuityInputs holds the raw flag values of the annuity commands
type annuityInputs struct {
	rate, per, nper, pmt, pv, fv, due, guess string
}

var annuityFlagUsage = map[string]string{
	"rate":  "interest rate per period",
	"per":   "period of interest, 1..nper",
	"nper":  "number of periods",
	"pmt":   "payment per period",
	"pv":    "present value",
	"fv":    "future value",
	"due":   "payment timing (end|begin)",
	"guess": "starting rate of the search (default from solver.guess)",
}

// bind registers the named flags on cmd. rate, per and nper are required.
func (in *annuityInputs) bind(cmd *cobra.Command, names ...string) {
	targets := map[string]*string{
		"rate": &in.rate, "per": &in.per, "nper": &in.nper, "pmt": &in.pmt,
		"pv": &in.pv, "fv": &in.fv, "due": &in.due, "guess": &in.guess,
	}
	defaults := map[string]string{"pmt": "0", "pv": "0", "fv": "0", "due": "end"}

	for _, name := range names {
		cmd.Flags().StringVar(targets[name], name, defaults[name], annuityFlagUsage[name])
		switch name {
		case "rate", "per", "nper":
			_ = cmd.MarkFlagRequired(name)
		}
	}
}

func pmtOp[T any](in *annuityInputs) scalarFunc[T] {
	return func(e *engine[T]) (T, error) {
		rate, nper, pv, fv, due := e.value("rate", in.rate), e.value("nper", in.nper), e.value("pv", in.pv), e.value("fv", in.fv), e.due(in.due)
		if e.err != nil {
			return e.zero, e.err
		}
		return e.calc.Pmt(rate, nper, pv, fv, due)
	}
}

func ipmtOp[T any](in *annuityInputs) scalarFunc[T] {
	return func(e *engine[T]) (T, error) {
		rate, per, nper, pv, fv, due := e.value("rate", in.rate), e.value("per", in.per), e.value("nper", in.nper), e.value("pv", in.pv), e.value("fv", in.fv), e.due(in.due)
		if e.err != nil {
			return e.zero, e.err
		}
		return e.calc.IPmt(rate, per, nper, pv, fv, due)
	}
}

func ppmtOp[T any](in *annuityInputs) scalarFunc[T] {
	return func(e *engine[T]) (T, error) {
		rate, per, nper, pv, fv, due := e.value("rate", in.rate), e.value("per", in.per), e.value("nper", in.nper), e.value("pv", in.pv), e.value("fv", in.fv), e.due(in.due)
		if e.err != nil {
			return e.zero, e.err
		}
		return e.calc.PPmt(rate, per, nper, pv, fv, due)
	}
}

func pvOp[T any](in *annuityInputs) scalarFunc[T] {
	return func(e *engine[T]) (T, error) {
		rate, nper, pmt, fv, due := e.value("rate", in.rate), e.value("nper", in.nper), e.value("pmt", in.pmt), e.value("fv", in.fv), e.due(in.due)
		if e.err != nil {
			return e.zero, e.err
		}
		return e.calc.PV(rate, nper, pmt, fv, due)
	}
}

func fvOp[T any](in *annuityInputs) scalarFunc[T] {
	return func(e *engine[T]) (T, error) {
		rate, nper, pmt, pv, due := e.value("rate", in.rate), e.value("nper", in.nper), e.value("pmt", in.pmt), e.value("pv", in.pv), e.due(in.due)
		if e.err != nil {
			return e.zero, e.err
		}
		return e.calc.FV(rate, nper, pmt, pv, due)
	}
}

func nperOp[T any](in *annuityInputs) scalarFunc[T] {
	return func(e *engine[T]) (T, error) {
		rate, pmt, pv, fv, due := e.value("rate", in.rate), e.value("pmt", in.pmt), e.value("pv", in.pv), e.value("fv", in.fv), e.due(in.due)
		if e.err != nil {
			return e.zero, e.err
		}
		return e.calc.NPer(rate, pmt, pv, fv, due)
	}
}

func rateOp[T any](in *annuityInputs) scalarFunc[T] {
	return func(e *engine[T]) (T, error) {
		nper, pmt, pv, fv, due, guess := e.value("nper", in.nper), e.value("pmt", in.pmt), e.value("pv", in.pv), e.value("fv", in.fv), e.due(in.due), e.guess(in.guess)
		if e.err != nil {
			return e.zero, e.err
		}
		return e.calc.RateGuess(nper, pmt, pv, fv, due, guess)
	}
}

func newPmtCommand(opts *RootOptions) *cobra.Command {
	in := &annuityInputs{}
	cmd := &cobra.Command{
		Use:     "pmt",
		Short:   "Payment per period of an annuity",
		Example: "  finkit pmt --rate 0.0020833 --nper 10 --pv -1000",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return opts.runScalar(cmd, pmtOp[float64](in), pmtOp[decimal.Decimal](in))
		},
	}
	in.bind(cmd, "rate", "nper", "pv", "fv", "due")
	return cmd
}

func newIPmtCommand(opts *RootOptions) *cobra.Command {
	in := &annuityInputs{}
	cmd := &cobra.Command{
		Use:   "ipmt",
		Short: "Interest portion of the payment in one period",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return opts.runScalar(cmd, ipmtOp[float64](in), ipmtOp[decimal.Decimal](in))
		},
	}
	in.bind(cmd, "rate", "per", "nper", "pv", "fv", "due")
	return cmd
}

func newPPmtCommand(opts *RootOptions) *cobra.Command {
	in := &annuityInputs{}
	cmd := &cobra.Command{
		Use:   "ppmt",
		Short: "Principal portion of the payment in one period",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return opts.runScalar(cmd, ppmtOp[float64](in), ppmtOp[decimal.Decimal](in))
		},
	}
	in.bind(cmd, "rate", "per", "nper", "pv", "fv", "due")
	return cmd
}

func newPVCommand(opts *RootOptions) *cobra.Command {
	in := &annuityInputs{}
	cmd := &cobra.Command{
		Use:   "pv",
		Short: "Present value of an annuity",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return opts.runScalar(cmd, pvOp[float64](in), pvOp[decimal.Decimal](in))
		},
	}
	in.bind(cmd, "rate", "nper", "pmt", "fv", "due")
	return cmd
}

func newFVCommand(opts *RootOptions) *cobra.Command {
	in := &annuityInputs{}
	cmd := &cobra.Command{
		Use:   "fv",
		Short: "Future value of an annuity",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return opts.runScalar(cmd, fvOp[float64](in), fvOp[decimal.Decimal](in))
		},
	}
	in.bind(cmd, "rate", "nper", "pmt", "pv", "due")
	return cmd
}

func newNPerCommand(opts *RootOptions) *cobra.Command {
	in := &annuityInputs{}
	cmd := &cobra.Command{
		Use:   "nper",
		Short: "Number of periods of an annuity",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return opts.runScalar(cmd, nperOp[float64](in), nperOp[decimal.Decimal](in))
		},
	}
	in.bind(cmd, "rate", "pmt", "pv", "fv", "due")
	return cmd
}

func newRateCommand(opts *RootOptions) *cobra.Command {
	in := &annuityInputs{}
	cmd := &cobra.Command{
		Use:   "rate",
		Short: "Interest rate per period of an annuity",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return opts.runScalar(cmd, rateOp[float64](in), rateOp[decimal.Decimal](in))
		},
	}
	in.bind(cmd, "nper", "pmt", "pv", "fv", "due", "guess")
	return cmd
}
