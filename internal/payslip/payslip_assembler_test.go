package payslip_test

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/toluwaf/PayrollManagement-sub000/internal/adjustment"
	"github.com/toluwaf/PayrollManagement-sub000/internal/cycle"
	cycleerrors "github.com/toluwaf/PayrollManagement-sub000/internal/cycle/errors"
	"github.com/toluwaf/PayrollManagement-sub000/internal/payslip"
	"github.com/toluwaf/PayrollManagement-sub000/internal/tax"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func monthlyRun(employeeCount int) payslip.RunContext {
	return payslip.RunContext{
		CycleType:     cycle.TypeMonthly,
		Period:        "2025-06",
		EmployeeCount: employeeCount,
		AsOf:          time.Date(2025, 6, 30, 0, 0, 0, 0, time.UTC),
	}
}

// standardEmployee: basic 500,000 + housing 200,000 + transport 80,000,
// a monthly gross emolument of 780,000.
func standardEmployee() payslip.EmployeeSnapshot {
	return payslip.EmployeeSnapshot{
		EmployeeID: "EMP-001",
		FullName:   "Adaeze Okoro",
		Salary: payslip.SalaryComponents{
			Basic:     dec("500000"),
			Housing:   dec("200000"),
			Transport: dec("80000"),
		},
	}
}

func TestAssembler_MonthlyPayslip(t *testing.T) {
	a, err := payslip.NewAssembler(tax.DefaultSettings(), monthlyRun(10))
	require.NoError(t, err)

	result, err := a.Compute(standardEmployee(), adjustment.Spec{})
	require.NoError(t, err)

	assert.Equal(t, "EMP-001", result.EmployeeID)
	assert.Equal(t, "2025-06", result.Period)
	assert.Equal(t, cycle.TypeMonthly, result.CycleType)

	assert.True(t, dec("780000").Equal(result.GrossEmolument), "gross emolument %s", result.GrossEmolument)
	assert.True(t, dec("500000").Equal(result.BasicSalary))
	assert.True(t, dec("280000").Equal(result.Allowances))
	assert.True(t, dec("780000").Equal(result.GrossSalary))

	// Pension 62,400 + NHF 12,500.
	assert.True(t, dec("74900").Equal(result.StatutoryDeductions), "statutory %s", result.StatutoryDeductions)
	// Annual taxable 8,461,200 across the 15% and 18% bands.
	assert.True(t, dec("109418").Equal(result.TaxDeduction), "tax %s", result.TaxDeduction)
	assert.True(t, result.OtherDeductions.IsZero())
	assert.True(t, dec("184318").Equal(result.TotalDeductions))
	assert.True(t, dec("595682").Equal(result.NetSalary), "net %s", result.NetSalary)

	// Employer pension 78,000 + NSITF 7,800 + ITF 7,800.
	assert.True(t, dec("93600").Equal(result.EmployerContributions))
}

func TestAssembler_NetIdentity(t *testing.T) {
	a, err := payslip.NewAssembler(tax.DefaultSettings(), monthlyRun(10))
	require.NoError(t, err)

	spec := adjustment.Spec{
		Bonus:       dec("100000"),
		UnionDues:   dec("5000"),
		Cooperative: dec("12000"),
	}
	result, err := a.Compute(standardEmployee(), spec)
	require.NoError(t, err)

	assert.True(t, result.NetSalary.Equal(result.GrossSalary.Sub(result.TotalDeductions)),
		"net %s != gross %s - deductions %s", result.NetSalary, result.GrossSalary, result.TotalDeductions)
	assert.False(t, result.NetSalary.IsNegative())
	assert.True(t, dec("880000").Equal(result.GrossSalary))
}

func TestAssembler_DeductionsClampedToGross(t *testing.T) {
	a, err := payslip.NewAssembler(tax.DefaultSettings(), monthlyRun(10))
	require.NoError(t, err)

	emp := standardEmployee()
	emp.Salary = payslip.SalaryComponents{Basic: dec("50000")}

	result, err := a.Compute(emp, adjustment.Spec{
		Cooperative: dec("2000000"),
	})
	require.NoError(t, err)

	assert.True(t, result.NetSalary.IsZero(), "net %s", result.NetSalary)
	assert.True(t, result.TotalDeductions.Equal(result.GrossSalary))
}

func TestAssembler_ComputeIsDeterministic(t *testing.T) {
	a, err := payslip.NewAssembler(tax.DefaultSettings(), monthlyRun(10))
	require.NoError(t, err)

	spec := adjustment.Spec{
		Bonus: dec("50000"),
		Loans: []adjustment.Loan{{Type: adjustment.LoanFixed, Amount: dec("30000")}},
	}

	first, err := a.Compute(standardEmployee(), spec)
	require.NoError(t, err)
	second, err := a.Compute(standardEmployee(), spec)
	require.NoError(t, err)

	firstJSON, err := json.Marshal(first)
	require.NoError(t, err)
	secondJSON, err := json.Marshal(second)
	require.NoError(t, err)
	assert.Equal(t, string(firstJSON), string(secondJSON))
}

func TestAssembler_BiWeeklyProration(t *testing.T) {
	a, err := payslip.NewAssembler(tax.DefaultSettings(), payslip.RunContext{
		CycleType:     cycle.TypeBiWeekly,
		Period:        "2025-BW13",
		EmployeeCount: 10,
		AsOf:          time.Date(2025, 6, 30, 0, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)

	result, err := a.Compute(standardEmployee(), adjustment.Spec{})
	require.NoError(t, err)

	// 780,000 / 26.
	assert.True(t, dec("30000").Equal(result.GrossEmolument), "gross %s", result.GrossEmolument)
	assert.True(t, dec("2880.77").Equal(result.StatutoryDeductions), "statutory %s", result.StatutoryDeductions)
	assert.True(t, dec("4208.38").Equal(result.TaxDeduction), "tax %s", result.TaxDeduction)
}

func TestAssembler_EstimatedNetSeedsLoanCap(t *testing.T) {
	a, err := payslip.NewAssembler(tax.DefaultSettings(), monthlyRun(10))
	require.NoError(t, err)

	emp := standardEmployee()
	estimated := dec("300000")
	emp.EstimatedNetSalary = &estimated

	result, err := a.Compute(emp, adjustment.Spec{
		Loans: []adjustment.Loan{{Type: adjustment.LoanFixed, Amount: dec("150000")}},
	})
	require.NoError(t, err)

	// Capped at 33% of the estimated net, not of gross.
	assert.True(t, dec("99000").Equal(result.Adjustments.Loans.Total), "loans %s", result.Adjustments.Loans.Total)
	assert.True(t, result.Adjustments.Loans.CapReached)
}

func TestAssembler_Trace(t *testing.T) {
	a, err := payslip.NewAssembler(tax.DefaultSettings(), monthlyRun(10))
	require.NoError(t, err)

	_, trace, err := a.ComputeWithTrace(standardEmployee(), adjustment.Spec{})
	require.NoError(t, err)
	require.NotNil(t, trace)

	assert.Equal(t, "EMP-001", trace.EmployeeID)
	assert.Equal(t, "2025-06", trace.Period)

	stages := make([]string, 0, len(trace.Steps))
	for _, step := range trace.Steps {
		stages = append(stages, step.Stage)
	}
	assert.Equal(t, []string{"gross", "adjustments", "statutory", "tax", "net"}, stages)
}

func TestAssembler_TraceFlagsMissingSalary(t *testing.T) {
	a, err := payslip.NewAssembler(tax.DefaultSettings(), monthlyRun(10))
	require.NoError(t, err)

	emp := payslip.EmployeeSnapshot{EmployeeID: "EMP-002"}
	result, trace, err := a.ComputeWithTrace(emp, adjustment.Spec{})
	require.NoError(t, err)

	assert.True(t, result.NetSalary.IsZero())
	require.NotEmpty(t, trace.Steps)
	assert.Contains(t, trace.Steps[0].Detail, "no salary components")
}

func TestAssembler_Errors(t *testing.T) {
	t.Run("empty employee id", func(t *testing.T) {
		a, err := payslip.NewAssembler(tax.DefaultSettings(), monthlyRun(10))
		require.NoError(t, err)

		_, err = a.Compute(payslip.EmployeeSnapshot{}, adjustment.Spec{})
		assert.ErrorIs(t, err, payslip.ErrMissingEmployeeID)
	})

	t.Run("invalid period rejected at construction", func(t *testing.T) {
		_, err := payslip.NewAssembler(tax.DefaultSettings(), payslip.RunContext{
			CycleType: cycle.TypeMonthly,
			Period:    "2025-13",
		})
		assert.ErrorIs(t, err, cycleerrors.ErrInvalidPeriod)
	})

	t.Run("invalid settings rejected at construction", func(t *testing.T) {
		settings := tax.DefaultSettings()
		settings.Brackets = nil

		_, err := payslip.NewAssembler(settings, monthlyRun(10))
		assert.Error(t, err)
	})
}
