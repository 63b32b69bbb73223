package payslip

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/toluwaf/PayrollManagement-sub000/internal/adjustment"
	"github.com/toluwaf/PayrollManagement-sub000/internal/cycle"
	"github.com/toluwaf/PayrollManagement-sub000/internal/eligibility"
	"github.com/toluwaf/PayrollManagement-sub000/internal/statutory"
	"github.com/toluwaf/PayrollManagement-sub000/internal/tax"
)

// SalaryComponents is the monthly salary structure. All amounts are
// non-negative; negatives are normalized to zero on read.
type SalaryComponents struct {
	Basic          decimal.Decimal `json:"basic"`
	Housing        decimal.Decimal `json:"housing"`
	Transport      decimal.Decimal `json:"transport"`
	Entertainment  decimal.Decimal `json:"entertainment"`
	MealSubsidy    decimal.Decimal `json:"mealSubsidy"`
	Medical        decimal.Decimal `json:"medical"`
	BenefitsInKind decimal.Decimal `json:"benefitsInKind"`
}

func (c SalaryComponents) normalized() SalaryComponents {
	return SalaryComponents{
		Basic:          nonNegative(c.Basic),
		Housing:        nonNegative(c.Housing),
		Transport:      nonNegative(c.Transport),
		Entertainment:  nonNegative(c.Entertainment),
		MealSubsidy:    nonNegative(c.MealSubsidy),
		Medical:        nonNegative(c.Medical),
		BenefitsInKind: nonNegative(c.BenefitsInKind),
	}
}

// GrossEmolument is the sum of all cash components.
func (c SalaryComponents) GrossEmolument() decimal.Decimal {
	n := c.normalized()
	return n.Basic.
		Add(n.Housing).
		Add(n.Transport).
		Add(n.Entertainment).
		Add(n.MealSubsidy).
		Add(n.Medical).
		Add(n.BenefitsInKind)
}

// PensionableEmolument is the pension contribution base:
// basic + housing + transport only.
func (c SalaryComponents) PensionableEmolument() decimal.Decimal {
	n := c.normalized()
	return n.Basic.Add(n.Housing).Add(n.Transport)
}

// EmployeeSnapshot is the read-only employee view the engine computes
// from. It is assembled by the caller (employee store) per period.
type EmployeeSnapshot struct {
	EmployeeID  string           `json:"employeeId"`
	FullName    string           `json:"fullName,omitempty"`
	DateOfBirth *time.Time       `json:"dateOfBirth,omitempty"`
	Salary      SalaryComponents `json:"salary"`

	HousingSituation     eligibility.HousingSituation `json:"housingSituation,omitempty"`
	AnnualRent           decimal.Decimal              `json:"annualRent"`
	ExemptFromNHF        bool                         `json:"exemptFromNHF"`
	NHFExemptionReason   string                       `json:"nhfExemptionReason,omitempty"`
	HasDisability        bool                         `json:"hasDisability"`
	AdditionalPension    decimal.Decimal              `json:"additionalPension"`
	HasLifeAssurance     bool                         `json:"hasLifeAssurance"`
	LifeAssurancePremium decimal.Decimal              `json:"lifeAssurancePremium"`

	HealthInsurance decimal.Decimal `json:"healthInsurance"`
	Gratuities      decimal.Decimal `json:"gratuities"`

	// EstimatedNetSalary seeds the loan deduction cap. When absent the
	// prorated gross emolument stands in for it.
	EstimatedNetSalary *decimal.Decimal `json:"estimatedNetSalary,omitempty"`
}

// Result is the engine's sole output for one employee and period. It is
// immutable once produced; the caller persists it.
type Result struct {
	EmployeeID      string          `json:"employeeId"`
	Period          string          `json:"period"`
	CycleType       cycle.Type      `json:"cycleType"`
	CycleMultiplier decimal.Decimal `json:"cycleMultiplier"`

	GrossEmolument decimal.Decimal `json:"grossEmolument"`
	BasicSalary    decimal.Decimal `json:"basicSalary"`
	Allowances     decimal.Decimal `json:"allowances"`
	GrossSalary    decimal.Decimal `json:"grossSalary"`

	Statutory   statutory.Deductions `json:"statutoryDeductions"`
	Tax         tax.Computation      `json:"taxCalculation"`
	Adjustments adjustment.Result    `json:"adjustments"`
	Eligibility eligibility.Profile  `json:"eligibilityBreakdown"`

	StatutoryDeductions decimal.Decimal `json:"statutoryDeductionsTotal"`
	TaxDeduction        decimal.Decimal `json:"taxDeduction"`
	OtherDeductions     decimal.Decimal `json:"otherDeductions"`
	TotalDeductions     decimal.Decimal `json:"totalDeductions"`
	NetSalary           decimal.Decimal `json:"netSalary"`

	EmployerContributions decimal.Decimal `json:"employerContributions"`
}

func nonNegative(d decimal.Decimal) decimal.Decimal {
	if d.IsNegative() {
		return decimal.Zero
	}
	return d
}
