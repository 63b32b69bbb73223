package payslip

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/toluwaf/PayrollManagement-sub000/internal/adjustment"
	"github.com/toluwaf/PayrollManagement-sub000/internal/cycle"
	"github.com/toluwaf/PayrollManagement-sub000/internal/eligibility"
	"github.com/toluwaf/PayrollManagement-sub000/internal/shared/apperror"
	"github.com/toluwaf/PayrollManagement-sub000/internal/statutory"
	"github.com/toluwaf/PayrollManagement-sub000/internal/tax"
)

var twelve = decimal.NewFromInt(12)

// ErrMissingEmployeeID rejects snapshots the result could not be
// attributed to. Everything else about a snapshot is treated
// permissively.
var ErrMissingEmployeeID = apperror.New(
	apperror.CodeInvalidInput,
	"employee snapshot has no employee id",
)

// RunContext fixes the run-wide inputs: one cycle/period, one company
// headcount, and one calculation date shared by every employee in the
// run.
type RunContext struct {
	CycleType     cycle.Type
	Period        string
	EmployeeCount int
	AsOf          time.Time
}

// Assembler computes one payslip result per employee against a single
// settings snapshot. It holds no per-employee state; computations are
// independent and safe to run concurrently.
type Assembler struct {
	settings tax.Settings
	runCtx   RunContext
	resolved cycle.Resolved
}

// NewAssembler validates the settings snapshot and the run's
// cycle/period up front, before any monetary computation happens.
func NewAssembler(settings tax.Settings, runCtx RunContext) (*Assembler, error) {
	if err := settings.Validate(); err != nil {
		return nil, err
	}
	resolved, err := cycle.Resolve(runCtx.CycleType, runCtx.Period)
	if err != nil {
		return nil, err
	}
	return &Assembler{
		settings: settings,
		runCtx:   runCtx,
		resolved: resolved,
	}, nil
}

// Compute produces the payroll computation result for one employee.
func (a *Assembler) Compute(emp EmployeeSnapshot, adj adjustment.Spec) (Result, error) {
	result, _, err := a.compute(emp, adj, false)
	return result, err
}

// ComputeWithTrace is Compute plus the structured calculation trace.
func (a *Assembler) ComputeWithTrace(emp EmployeeSnapshot, adj adjustment.Spec) (Result, *Trace, error) {
	return a.compute(emp, adj, true)
}

func (a *Assembler) compute(emp EmployeeSnapshot, adj adjustment.Spec, traced bool) (Result, *Trace, error) {
	if emp.EmployeeID == "" {
		return Result{}, nil, ErrMissingEmployeeID
	}

	var trace *Trace
	if traced {
		trace = &Trace{EmployeeID: emp.EmployeeID, Period: a.resolved.Period}
	}

	multiplier := a.resolved.Multiplier

	// Gross pay assembly.
	components := emp.Salary
	grossMonthly := components.GrossEmolument()
	pensionableMonthly := components.PensionableEmolument()
	basicMonthly := nonNegative(components.Basic)
	if grossMonthly.IsZero() {
		trace.add("gross", "no salary components, defaulting to zero", decimal.Zero)
	} else {
		trace.add("gross", "monthly gross emolument", grossMonthly)
	}

	profile := eligibility.Enhance(eligibility.Facts{
		DateOfBirth:          emp.DateOfBirth,
		HousingSituation:     emp.HousingSituation,
		AnnualRent:           emp.AnnualRent,
		ExemptFromNHF:        emp.ExemptFromNHF,
		NHFExemptionReason:   emp.NHFExemptionReason,
		HasDisability:        emp.HasDisability,
		AdditionalPension:    emp.AdditionalPension,
		HasLifeAssurance:     emp.HasLifeAssurance,
		LifeAssurancePremium: emp.LifeAssurancePremium,
	}, a.runCtx.AsOf)

	estimatedNet := grossMonthly.Mul(multiplier)
	if emp.EstimatedNetSalary != nil && emp.EstimatedNetSalary.IsPositive() {
		estimatedNet = *emp.EstimatedNetSalary
	}

	adjustments := adjustment.Process(adj, adjustment.ProcessContext{
		AnnualBasicSalary:  basicMonthly.Mul(twelve),
		MinimumWageMonthly: a.settings.MinimumWageMonthly,
		EstimatedNetSalary: estimatedNet,
		CycleMultiplier:    multiplier,
	})
	trace.add("adjustments", "net adjustment", adjustments.NetAdjustment)

	deductions := statutory.Calculate(statutory.Input{
		BasicSalary:          basicMonthly,
		GrossEmolument:       grossMonthly,
		PensionableEmolument: pensionableMonthly,
		HealthInsurance:      emp.HealthInsurance,
		Gratuities:           emp.Gratuities,
		EmployeeCount:        a.runCtx.EmployeeCount,
	}, profile, a.settings.StatutoryRates, a.settings.Reliefs)
	trace.add("statutory", "employee-side statutory deductions", deductions.TotalEmployee)

	taxComp := tax.Compute(tax.Input{
		MonthlyGrossEmolument:  grossMonthly,
		MonthlyEmployeePension: deductions.EmployeePension.Add(deductions.VoluntaryPension),
		MonthlyHousingFund:     deductions.HousingFund,
		MonthlyHealthInsurance: deductions.HealthInsurance,
		AnnualRent:             profile.AnnualRent,
		EligibleForRentRelief:  profile.EligibleForRentRelief,
	}, a.settings)
	trace.add("tax", "monthly PAYE", taxComp.MonthlyTax)

	// Final assembly. Intermediate negatives are allowed upstream;
	// every figure surfaced from here on is clamped non-negative.
	grossForPeriod := grossMonthly.Mul(multiplier).Round(2)
	grossSalary := grossForPeriod.Add(adjustments.TotalAdditions)

	statutoryForPeriod := nonNegative(deductions.TotalEmployee).Mul(multiplier).Round(2)
	taxForPeriod := nonNegative(taxComp.MonthlyTax).Mul(multiplier).Round(2)
	otherDeductions := nonNegative(adjustments.TotalDeductions)
	totalDeductions := statutoryForPeriod.Add(taxForPeriod).Add(otherDeductions)

	netSalary := grossSalary.Sub(totalDeductions)
	if netSalary.IsNegative() {
		netSalary = decimal.Zero
		totalDeductions = grossSalary
	}
	trace.add("net", "net salary for period", netSalary)

	result := Result{
		EmployeeID:      emp.EmployeeID,
		Period:          a.resolved.Period,
		CycleType:       a.resolved.Type,
		CycleMultiplier: multiplier,

		GrossEmolument: grossForPeriod,
		BasicSalary:    basicMonthly.Mul(multiplier).Round(2),
		Allowances:     grossMonthly.Sub(basicMonthly).Mul(multiplier).Round(2),
		GrossSalary:    grossSalary,

		Statutory:   deductions,
		Tax:         taxComp,
		Adjustments: adjustments,
		Eligibility: profile,

		StatutoryDeductions: statutoryForPeriod,
		TaxDeduction:        taxForPeriod,
		OtherDeductions:     otherDeductions,
		TotalDeductions:     totalDeductions,
		NetSalary:           netSalary,

		EmployerContributions: nonNegative(deductions.TotalEmployer).Mul(multiplier).Round(2),
	}
	return result, trace, nil
}
