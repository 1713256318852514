// File: schedule_test.go
// Title: Amortization Schedule Tests
// Description: Tests of schedule rows, balances and argument checks.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-18
// Modified: 2026-10-18
//
// Change History:
// - 2026-10-18 v0.1.0: Initial implementation

package financial

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type row struct {
	payment, interest, principal, balance string
}

func formatRows[T any](c *Calculator[T], rows []Installment[T]) []row {
	result := make([]row, len(rows))
	for i, r := range rows {
		result[i] = row{
			payment:   c.num.Format(r.Payment, 2),
			interest:  c.num.Format(r.Interest, 2),
			principal: c.num.Format(r.Principal, 2),
			balance:   c.num.Format(r.Balance, 2),
		}
	}
	return result
}

func TestScheduleTwoPeriodLoan(t *testing.T) {
	want := []row{
		{"576.19", "100.00", "476.19", "-523.81"},
		{"576.19", "52.38", "523.81", "0.00"},
	}

	rows, err := Float.Schedule(0.1, 2, -1000, 0, EndOfPeriod)
	require.NoError(t, err)
	assert.Equal(t, want, formatRows(Float, rows))
	assert.Equal(t, 1, rows[0].Period)
	assert.Equal(t, 2, rows[1].Period)

	drows, err := Decimal.Schedule(decimal.RequireFromString("0.1"), decimal.NewFromInt(2),
		decimal.NewFromInt(-1000), decimal.Zero, EndOfPeriod)
	require.NoError(t, err)
	assert.Equal(t, want, formatRows(Decimal, drows))
}

func TestScheduleBalloonAndTiming(t *testing.T) {
	tests := []struct {
		name string
		due  Due
		want []row
	}{
		{
			name: "end of period",
			due:  EndOfPeriod,
			want: []row{
				{"987.06", "30.00", "957.06", "-2042.94"},
				{"987.06", "20.43", "966.63", "-1076.30"},
				{"987.06", "10.76", "976.30", "-100.00"},
			},
		},
		{
			name: "beginning of period",
			due:  BeginningOfPeriod,
			want: []row{
				{"977.29", "0.00", "977.29", "-2022.71"},
				{"977.29", "20.23", "957.06", "-1065.64"},
				{"977.29", "10.66", "966.63", "-99.01"},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rows, err := Float.Schedule(0.01, 3, -3000, 100, tt.due)
			require.NoError(t, err)
			assert.Equal(t, tt.want, formatRows(Float, rows))
		})
	}
}

func TestScheduleRejectsBadPeriods(t *testing.T) {
	for _, nper := range []float64{0, -3, 2.5, 20000} {
		_, err := Float.Schedule(0.1, nper, -1000, 0, EndOfPeriod)
		require.Error(t, err, "nper %g", nper)
		assert.True(t, errors.Is(err, ErrInvalidArgument))
	}
}

func TestScheduleZeroRate(t *testing.T) {
	rows, err := Float.Schedule(0, 4, -1000, 0, EndOfPeriod)
	require.NoError(t, err)
	require.Len(t, rows, 4)
	for _, r := range rows {
		assert.Equal(t, 250.0, r.Payment)
		assert.Zero(t, r.Interest)
		assert.Equal(t, 250.0, r.Principal)
	}
	assert.Zero(t, rows[3].Balance)
}
