package cycle_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/toluwaf/PayrollManagement-sub000/internal/cycle"
	cycleerrors "github.com/toluwaf/PayrollManagement-sub000/internal/cycle/errors"
)

func TestResolve_Multipliers(t *testing.T) {
	tests := []struct {
		name      string
		cycleType cycle.Type
		period    string
		want      decimal.Decimal
	}{
		{"monthly", cycle.TypeMonthly, "2026-02", decimal.NewFromInt(1)},
		{"weekly", cycle.TypeWeekly, "2026-W07", decimal.NewFromInt(1).Div(decimal.NewFromInt(52))},
		{"bi-weekly", cycle.TypeBiWeekly, "2026-BW04", decimal.NewFromInt(1).Div(decimal.NewFromInt(26))},
		{"semi-monthly", cycle.TypeSemiMonthly, "2026-SM03", decimal.NewFromInt(1).Div(decimal.NewFromInt(24))},
		{"annually", cycle.TypeAnnually, "2026", decimal.NewFromInt(12)},
		{"ad-hoc", cycle.TypeAdHoc, "13th-month-2026", decimal.NewFromInt(1)},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			resolved, err := cycle.Resolve(tc.cycleType, tc.period)

			assert.NoError(t, err)
			assert.True(t, tc.want.Equal(resolved.Multiplier), "multiplier %s", resolved.Multiplier)
			assert.Equal(t, tc.period, resolved.Period)
		})
	}
}

func TestResolve_UnknownCycleType(t *testing.T) {
	_, err := cycle.Resolve("quarterly", "2026-Q1")

	assert.ErrorIs(t, err, cycleerrors.ErrInvalidCycleType)
}

func TestResolve_MalformedPeriods(t *testing.T) {
	tests := []struct {
		name      string
		cycleType cycle.Type
		period    string
	}{
		{"monthly wrong shape", cycle.TypeMonthly, "02-2026"},
		{"monthly month 13", cycle.TypeMonthly, "2026-13"},
		{"monthly month 00", cycle.TypeMonthly, "2026-00"},
		{"weekly missing W", cycle.TypeWeekly, "2026-07"},
		{"weekly week 54", cycle.TypeWeekly, "2026-W54"},
		{"bi-weekly ordinal 28", cycle.TypeBiWeekly, "2026-BW28"},
		{"semi-monthly ordinal 25", cycle.TypeSemiMonthly, "2026-SM25"},
		{"annual with month", cycle.TypeAnnually, "2026-02"},
		{"empty ad-hoc", cycle.TypeAdHoc, ""},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := cycle.Resolve(tc.cycleType, tc.period)

			assert.ErrorIs(t, err, cycleerrors.ErrInvalidPeriod)
		})
	}
}
