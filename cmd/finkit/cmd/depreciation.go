package cmd

import (
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
)

type depreciationInputs struct {
	cost, salvage, life, period, factor string
}

func (in *depreciationInputs) bind(cmd *cobra.Command, withPeriod bool) {
	cmd.Flags().StringVar(&in.cost, "cost", "", "initial cost of the asset")
	cmd.Flags().StringVar(&in.salvage, "salvage", "0", "value at the end of its life")
	cmd.Flags().StringVar(&in.life, "life", "", "number of periods of depreciation")
	_ = cmd.MarkFlagRequired("cost")
	_ = cmd.MarkFlagRequired("life")
	if withPeriod {
		cmd.Flags().StringVar(&in.period, "period", "", "period to depreciate, 1..life")
		_ = cmd.MarkFlagRequired("period")
	}
}

func slnOp[T any](in *depreciationInputs) scalarFunc[T] {
	return func(e *engine[T]) (T, error) {
		cost, salvage, life := e.value("cost", in.cost), e.value("salvage", in.salvage), e.value("life", in.life)
		if e.err != nil {
			return e.zero, e.err
		}
		return e.calc.SLN(cost, salvage, life)
	}
}

func sydOp[T any](in *depreciationInputs) scalarFunc[T] {
	return func(e *engine[T]) (T, error) {
		cost, salvage, life, period := e.value("cost", in.cost), e.value("salvage", in.salvage), e.value("life", in.life), e.value("period", in.period)
		if e.err != nil {
			return e.zero, e.err
		}
		return e.calc.SYD(cost, salvage, life, period)
	}
}

func ddbOp[T any](in *depreciationInputs) scalarFunc[T] {
	return func(e *engine[T]) (T, error) {
		cost, salvage, life, period := e.value("cost", in.cost), e.value("salvage", in.salvage), e.value("life", in.life), e.value("period", in.period)
		factor := e.value("factor", in.factor)
		if e.err != nil {
			return e.zero, e.err
		}
		return e.calc.DDBWithFactor(cost, salvage, life, period, factor)
	}
}

func newSLNCommand(opts *RootOptions) *cobra.Command {
	in := &depreciationInputs{}
	cmd := &cobra.Command{
		Use:   "sln",
		Short: "Straight-line depreciation per period",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return opts.runScalar(cmd, slnOp[float64](in), slnOp[decimal.Decimal](in))
		},
	}
	in.bind(cmd, false)
	return cmd
}

func newSYDCommand(opts *RootOptions) *cobra.Command {
	in := &depreciationInputs{}
	cmd := &cobra.Command{
		Use:   "syd",
		Short: "Sum-of-years'-digits depreciation for one period",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return opts.runScalar(cmd, sydOp[float64](in), sydOp[decimal.Decimal](in))
		},
	}
	in.bind(cmd, true)
	return cmd
}

func newDDBCommand(opts *RootOptions) *cobra.Command {
	in := &depreciationInputs{}
	cmd := &cobra.Command{
		Use:   "ddb",
		Short: "Declining-balance depreciation for one period",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return opts.runScalar(cmd, ddbOp[float64](in), ddbOp[decimal.Decimal](in))
		},
	}
	in.bind(cmd, true)
	cmd.Flags().StringVar(&in.factor, "factor", "2", "rate at which the balance declines")
	return cmd
}
