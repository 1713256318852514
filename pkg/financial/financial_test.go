// File: financial_test.go
// Title: Financial Function Tests
// Description: Scenario and error tables run against both the float64 and
//              the decimal calculator.
// Author: msto63
// Version: v0.1.1
// Created: 2026-10-18
// Modified: 2026-10-18
//
// Change History:
// - 2026-10-18 v0.1.0: Initial implementation
// - 2026-10-18 v0.1.1: Long cash-flow sequences

package financial

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	mdwerror "github.com/msto63/finkit/foundation/core/error"
	mdwerrors "github.com/msto63/finkit/foundation/core/errors"
)

// value parses a literal or a quotient such as "0.025/12"
func value[T any](t *testing.T, c *Calculator[T], s string) T {
	t.Helper()
	if num, den, ok := strings.Cut(s, "/"); ok {
		return c.num.Quo(value(t, c, num), value(t, c, den))
	}
	v, err := c.num.Parse(s)
	require.NoError(t, err)
	return v
}

func values[T any](t *testing.T, c *Calculator[T], ss []string) []T {
	t.Helper()
	result := make([]T, len(ss))
	for i, s := range ss {
		result[i] = value(t, c, s)
	}
	return result
}

// call names an operation and its arguments as literals
type call struct {
	op    string
	args  []string
	flows []string
	due   Due
}

func evaluate[T any](t *testing.T, c *Calculator[T], cl call) (T, error) {
	t.Helper()
	a := values(t, c, cl.args)
	f := values(t, c, cl.flows)
	switch cl.op {
	case "Pmt":
		return c.Pmt(a[0], a[1], a[2], a[3], cl.due)
	case "IPmt":
		return c.IPmt(a[0], a[1], a[2], a[3], a[4], cl.due)
	case "PPmt":
		return c.PPmt(a[0], a[1], a[2], a[3], a[4], cl.due)
	case "PV":
		return c.PV(a[0], a[1], a[2], a[3], cl.due)
	case "FV":
		return c.FV(a[0], a[1], a[2], a[3], cl.due)
	case "NPer":
		return c.NPer(a[0], a[1], a[2], a[3], cl.due)
	case "NPV":
		return c.NPV(a[0], f)
	case "IRR":
		if len(a) > 0 {
			return c.IRRGuess(f, a[0])
		}
		return c.IRR(f)
	case "MIRR":
		return c.MIRR(f, a[0], a[1])
	case "Rate":
		if len(a) > 4 {
			return c.RateGuess(a[0], a[1], a[2], a[3], cl.due, a[4])
		}
		return c.Rate(a[0], a[1], a[2], a[3], cl.due)
	case "SLN":
		return c.SLN(a[0], a[1], a[2])
	case "SYD":
		return c.SYD(a[0], a[1], a[2], a[3])
	case "DDB":
		if len(a) > 4 {
			return c.DDBWithFactor(a[0], a[1], a[2], a[3], a[4])
		}
		return c.DDB(a[0], a[1], a[2], a[3])
	}
	t.Fatalf("unknown operation %q", cl.op)
	return c.zero, nil
}

var scenarios = []struct {
	name string
	call call
	want string
}{
	{"Pmt monthly loan", call{op: "Pmt", args: []string{"0.025/12", "10", "-1000", "0"}}, "101.15"},
	{"Pmt annuity due", call{op: "Pmt", args: []string{"0.025/12", "10", "-1000", "0"}, due: BeginningOfPeriod}, "100.94"},
	{"Pmt zero rate", call{op: "Pmt", args: []string{"0", "4", "-1000", "200"}}, "200.00"},
	{"IPmt first period", call{op: "IPmt", args: []string{"0.025/12", "1", "24", "-10000", "0"}}, "20.83"},
	{"IPmt second of two", call{op: "IPmt", args: []string{"0.1", "2", "2", "-1000", "0"}}, "52.38"},
	{"IPmt fractional period", call{op: "IPmt", args: []string{"0.1", "1.5", "2", "-1000", "0"}}, "76.76"},
	{"PPmt fractional period", call{op: "PPmt", args: []string{"0.1", "1.5", "2", "-1000", "0"}}, "499.43"},
	{"IPmt due first period", call{op: "IPmt", args: []string{"0.1", "1", "2", "-1000", "0"}, due: BeginningOfPeriod}, "0.00"},
	{"PPmt first period", call{op: "PPmt", args: []string{"0.025/12", "1", "24", "-1000", "0"}}, "40.68"},
	{"PV retirement annuity", call{op: "PV", args: []string{"0.08/12", "240", "500", "0"}}, "-59777.15"},
	{"PV zero rate", call{op: "PV", args: []string{"0", "10", "100", "50"}}, "-1050.00"},
	{"FV savings due", call{op: "FV", args: []string{"0.06/12", "10", "-200", "-500"}, due: BeginningOfPeriod}, "2581.40"},
	{"FV zero rate", call{op: "FV", args: []string{"0", "12", "-100", "-1000"}}, "2200.00"},
	{"NPer savings goal", call{op: "NPer", args: []string{"0.12/12", "-100", "-1000", "10000"}, due: BeginningOfPeriod}, "59.67"},
	{"NPer zero rate", call{op: "NPer", args: []string{"0", "-100", "1000", "0"}}, "10.00"},
	{"NPV undiscounted first flow", call{op: "NPV", args: []string{"0.1"}, flows: []string{"-10000", "3000", "4200", "6800"}}, "1307.29"},
	{"NPV single flow", call{op: "NPV", args: []string{"0.1"}, flows: []string{"-500"}}, "-500.00"},
	{"IRR bond", call{op: "IRR", args: []string{"0.001"}, flows: []string{"-91045.53", "3692.25", "52110", "2287.5", "49822.5"}}, "0.06"},
	{"IRR project", call{op: "IRR", flows: []string{"-70000", "12000", "15000", "18000", "21000", "26000"}}, "0.09"},
	{"MIRR project", call{op: "MIRR", args: []string{"0.1", "0.12"}, flows: []string{"-120000", "39000", "30000", "21000", "37000", "46000"}}, "0.13"},
	{"MIRR outflows only", call{op: "MIRR", args: []string{"0.1", "0.1"}, flows: []string{"-100", "-50"}}, "-1.00"},
	{"Rate car loan", call{op: "Rate", args: []string{"48", "-200", "8000", "0"}}, "0.01"},
	{"SLN", call{op: "SLN", args: []string{"10000", "1000", "5"}}, "1800.00"},
	{"SYD first year", call{op: "SYD", args: []string{"30000", "7500", "10", "1"}}, "4090.91"},
	{"SYD last year", call{op: "SYD", args: []string{"30000", "7500", "10", "10"}}, "409.09"},
	{"DDB first year", call{op: "DDB", args: []string{"2400", "300", "10", "1"}}, "480.00"},
	{"DDB second year", call{op: "DDB", args: []string{"2400", "300", "10", "2"}}, "384.00"},
	{"DDB tenth year", call{op: "DDB", args: []string{"2400", "300", "10", "10"}}, "22.12"},
	{"DDB factor 1.5", call{op: "DDB", args: []string{"2400", "300", "10", "2", "1.5"}}, "306.00"},
	{"DDB two-year life first", call{op: "DDB", args: []string{"1000", "100", "2", "1"}}, "900.00"},
	{"DDB two-year life second", call{op: "DDB", args: []string{"1000", "100", "2", "2"}}, "0.00"},
	{"DDB short life", call{op: "DDB", args: []string{"1000", "100", "1.5", "1"}}, "900.00"},
	{"DDB no cost", call{op: "DDB", args: []string{"0", "0", "5", "1"}}, "0.00"},
}

func runScenarios[T any](t *testing.T, c *Calculator[T]) {
	for _, tt := range scenarios {
		t.Run(tt.name, func(t *testing.T) {
			got, err := evaluate(t, c, tt.call)
			require.NoError(t, err)
			assert.Equal(t, tt.want, c.num.Format(got, 2))
		})
	}
}

func TestScenarios(t *testing.T) {
	t.Run("float", func(t *testing.T) { runScenarios(t, Float) })
	t.Run("decimal", func(t *testing.T) { runScenarios(t, Decimal) })
}

var failures = []struct {
	name string
	call call
	want []error
}{
	{"Pmt zero periods", call{op: "Pmt", args: []string{"0.1", "0", "-1000", "0"}}, []error{ErrInvalidArgument}},
	{"IPmt period zero", call{op: "IPmt", args: []string{"0.1", "0", "10", "-1000", "0"}}, []error{ErrInvalidArgument}},
	{"IPmt period past end", call{op: "IPmt", args: []string{"0.1", "11", "10", "-1000", "0"}}, []error{ErrInvalidArgument}},
	{"PPmt period past end", call{op: "PPmt", args: []string{"0.1", "12", "10", "-1000", "0"}}, []error{ErrInvalidArgument}},
	{"NPer rate -1", call{op: "NPer", args: []string{"-1", "-100", "1000", "0"}}, []error{ErrInvalidArgument}},
	{"NPer no payment", call{op: "NPer", args: []string{"0", "0", "1000", "0"}}, []error{ErrInvalidArgument}},
	{"NPer unreachable", call{op: "NPer", args: []string{"0.1", "-100", "2000", "0"}}, []error{ErrInvalidArgument}},
	{"NPV no flows", call{op: "NPV", args: []string{"0.1"}}, []error{ErrMalformedInput}},
	{"NPV rate -1", call{op: "NPV", args: []string{"-1"}, flows: []string{"100"}}, []error{ErrInvalidArgument}},
	{"IRR single flow", call{op: "IRR", flows: []string{"-100"}}, []error{ErrMalformedInput}},
	{"IRR guess -1", call{op: "IRR", args: []string{"-1"}, flows: []string{"-100", "110"}}, []error{ErrInvalidArgument}},
	{"IRR zero flows", call{op: "IRR", flows: []string{"0", "0", "0"}}, []error{ErrDegenerateIteration}},
	{"IRR no sign change", call{op: "IRR", flows: []string{"100", "200", "300"}}, []error{ErrNonConvergence, ErrDegenerateIteration}},
	{"MIRR single flow", call{op: "MIRR", args: []string{"0.1", "0.1"}, flows: []string{"-100"}}, []error{ErrMalformedInput}},
	{"MIRR finance rate -1", call{op: "MIRR", args: []string{"-1", "0.1"}, flows: []string{"-100", "110"}}, []error{ErrInvalidArgument}},
	{"MIRR inflows only", call{op: "MIRR", args: []string{"0.1", "0.1"}, flows: []string{"100", "110"}}, []error{ErrDivisionByZero}},
	{"Rate zero periods", call{op: "Rate", args: []string{"0", "-100", "1000", "0"}}, []error{ErrInvalidArgument}},
	{"Rate guess -1", call{op: "Rate", args: []string{"10", "-100", "1000", "0", "-1"}}, []error{ErrInvalidArgument}},
	{"Rate flat residual", call{op: "Rate", args: []string{"10", "0", "0", "0"}}, []error{ErrDegenerateIteration}},
	{"SLN zero life", call{op: "SLN", args: []string{"1000", "100", "0"}}, []error{ErrInvalidArgument}},
	{"SYD negative salvage", call{op: "SYD", args: []string{"1000", "-1", "5", "1"}}, []error{ErrInvalidArgument}},
	{"SYD period zero", call{op: "SYD", args: []string{"1000", "100", "5", "0"}}, []error{ErrInvalidArgument}},
	{"SYD period past life", call{op: "SYD", args: []string{"1000", "100", "5", "6"}}, []error{ErrInvalidArgument}},
	{"DDB zero factor", call{op: "DDB", args: []string{"1000", "100", "5", "1", "0"}}, []error{ErrInvalidArgument}},
	{"DDB negative salvage", call{op: "DDB", args: []string{"1000", "-100", "5", "1"}}, []error{ErrInvalidArgument}},
	{"DDB period past life", call{op: "DDB", args: []string{"1000", "100", "5", "5.5"}}, []error{ErrInvalidArgument}},
}

func runFailures[T any](t *testing.T, c *Calculator[T]) {
	for _, tt := range failures {
		t.Run(tt.name, func(t *testing.T) {
			_, err := evaluate(t, c, tt.call)
			require.Error(t, err)

			matched := false
			for _, want := range tt.want {
				matched = matched || errors.Is(err, want)
			}
			assert.True(t, matched, "unexpected error class %s: %v", mdwerror.GetCode(err), err)

			var mdwErr *mdwerror.Error
			require.True(t, errors.As(err, &mdwErr))
			assert.Equal(t, tt.call.op, mdwerrors.ExtractOperation(err))
		})
	}
}

func TestFailures(t *testing.T) {
	t.Run("float", func(t *testing.T) { runFailures(t, Float) })
	t.Run("decimal", func(t *testing.T) { runFailures(t, Decimal) })
}

func TestIPmtBeginningFirstPeriodIsExactlyZero(t *testing.T) {
	got, err := Float.IPmt(0.07, 1, 30, -250000, 0, BeginningOfPeriod)
	require.NoError(t, err)
	assert.Zero(t, got)

	dec, err := Decimal.IPmt(decimal.RequireFromString("0.07"), decimal.NewFromInt(1), decimal.NewFromInt(30),
		decimal.NewFromInt(-250000), decimal.Zero, BeginningOfPeriod)
	require.NoError(t, err)
	assert.True(t, dec.IsZero())
}

func TestIRRAnnualized(t *testing.T) {
	flows := []float64{-91045.53, 3692.25, 52110, 2287.5, 49822.5}
	r, err := Float.IRRGuess(flows, 0.001)
	require.NoError(t, err)

	annual := ((1+r)*(1+r) - 1) * 100
	assert.Equal(t, "12.53", Float.num.Format(annual, 2))
}

func TestRateRecoversPayment(t *testing.T) {
	pmt, err := Float.Pmt(0.05, 10, -1000, 0, EndOfPeriod)
	require.NoError(t, err)

	r, err := Float.Rate(10, pmt, -1000, 0, EndOfPeriod)
	require.NoError(t, err)
	assert.InDelta(t, 0.05, r, 1e-9)
}

func TestRateErrorMessages(t *testing.T) {
	_, err := Float.Rate(10, 0, 0, 0, EndOfPeriod)
	require.Error(t, err)
	var mdwErr *mdwerror.Error
	require.True(t, errors.As(err, &mdwErr))
	assert.Equal(t, "division by zero", mdwErr.Message())
	assert.Equal(t, mdwerrors.ModuleSolver, mdwerrors.ExtractModule(err))

	tight := NewFloat(WithSettings(Settings{MaxIterations: 1}))
	_, err = tight.Rate(48, -200, 8000, 0, EndOfPeriod)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrNonConvergence))
	require.True(t, errors.As(err, &mdwErr))
	assert.Equal(t, "cannot calculate rate", mdwErr.Message())
	iterations, ok := mdwErr.Detail("iterations")
	require.True(t, ok)
	assert.Equal(t, 1, iterations)
}

func TestNumericErrorsCarryOperation(t *testing.T) {
	_, err := Float.FV(-2, 0.5, 0, -100, EndOfPeriod)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvalidArgument))
	assert.Equal(t, "FV", mdwerrors.ExtractOperation(err))
	assert.Equal(t, mdwerrors.ModuleAnnuity, mdwerrors.ExtractModule(err))
}

func TestDecimalPrecisionSetting(t *testing.T) {
	coarse := NewDecimal(WithSettings(Settings{DecimalPlaces: 4}))
	third, err := coarse.SLN(decimal.NewFromInt(1), decimal.Zero, decimal.NewFromInt(3))
	require.NoError(t, err)
	assert.Equal(t, "0.3333", third.String())

	fine, err := Decimal.SLN(decimal.NewFromInt(1), decimal.Zero, decimal.NewFromInt(3))
	require.NoError(t, err)
	assert.Equal(t, int32(-32), fine.Exponent())
}

// longFlows is a 30-year monthly outlay followed by level returns
func longFlows[T any](t *testing.T, c *Calculator[T], count int) []T {
	t.Helper()
	flows := make([]T, count)
	flows[0] = value(t, c, "-100000")
	for i := 1; i < count; i++ {
		flows[i] = value(t, c, "500")
	}
	return flows
}

func TestLongCashFlowSequences(t *testing.T) {
	const count = 4000
	c := Decimal
	rate := value(t, c, "0.025/12")
	flows := longFlows(t, c, count)

	start := time.Now()
	npv, err := c.NPV(rate, flows)
	require.NoError(t, err)
	assert.Equal(t, "139941.6878", c.num.Format(npv, 4))

	horner, err := c.presentValue("NPV", rate, flows)
	require.NoError(t, err)
	assert.True(t, npv.Sub(horner).Abs().LessThan(decimal.New(1, -20)), "NPV %s, Horner %s", npv, horner)

	mirr, err := c.MIRR(flows, rate, rate)
	require.NoError(t, err)
	assert.Less(t, time.Since(start), 2*time.Second, "discounting %d decimal flows", count)

	floatMIRR, err := Float.MIRR(longFlows(t, Float, count), 0.025/12, 0.025/12)
	require.NoError(t, err)
	assert.InDelta(t, floatMIRR, mirr.InexactFloat64(), 1e-9)
}
