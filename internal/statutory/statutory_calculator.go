package statutory

import (
	"github.com/shopspring/decimal"

	"github.com/toluwaf/PayrollManagement-sub000/internal/eligibility"
	"github.com/toluwaf/PayrollManagement-sub000/internal/tax"
)

// MinEmployeesForITF is the company-size threshold below which the
// industrial training levy does not apply.
const MinEmployeesForITF = 5

// Input is the monthly salary view one statutory computation works on.
// HealthInsurance and Gratuities are caller-supplied amounts passed
// through unchanged.
type Input struct {
	BasicSalary          decimal.Decimal
	GrossEmolument       decimal.Decimal
	PensionableEmolument decimal.Decimal
	HealthInsurance      decimal.Decimal
	Gratuities           decimal.Decimal
	EmployeeCount        int
}

// Deductions is the monthly statutory breakdown. Employee-side figures
// are deductions from pay; employer-side figures are contributions on
// top of pay. TotalEmployee may go negative after relief adjustment;
// clipping is deferred to final payslip assembly.
type Deductions struct {
	EmployeePension   decimal.Decimal `json:"employeePension"`
	VoluntaryPension  decimal.Decimal `json:"voluntaryPension"`
	EmployerPension   decimal.Decimal `json:"employerPension"`
	HousingFund       decimal.Decimal `json:"housingFund"`
	HousingFundWaived bool            `json:"housingFundWaived,omitempty"`
	HealthInsurance   decimal.Decimal `json:"healthInsurance"`
	LifeAssurance     decimal.Decimal `json:"lifeAssurance"`
	Gratuities        decimal.Decimal `json:"gratuities"`
	DisabilityRelief  decimal.Decimal `json:"disabilityRelief"`
	TrainingFund      decimal.Decimal `json:"trainingFund"`
	TrainingLevy      decimal.Decimal `json:"trainingLevy"`
	TotalEmployee     decimal.Decimal `json:"totalEmployee"`
	TotalEmployer     decimal.Decimal `json:"totalEmployer"`
}

// Calculate computes pension, housing fund, training levies, and the
// pass-through deductions for one employee, applying the eligibility
// profile's exemptions and reliefs.
func Calculate(in Input, profile eligibility.Profile, rates tax.StatutoryRates, reliefs tax.Reliefs) Deductions {
	pensionable := nonNegative(in.PensionableEmolument)
	gross := nonNegative(in.GrossEmolument)
	basic := nonNegative(in.BasicSalary)

	d := Deductions{
		EmployeePension:  pensionable.Mul(rates.EmployeePension).Round(2),
		VoluntaryPension: profile.AdditionalPension,
		EmployerPension:  pensionable.Mul(rates.EmployerPension).Round(2),
		HealthInsurance:  nonNegative(in.HealthInsurance),
		Gratuities:       nonNegative(in.Gratuities),
		TrainingFund:     gross.Mul(rates.NSITF).Round(2),
	}

	if profile.ExemptFromNHF {
		d.HousingFundWaived = true
	} else {
		d.HousingFund = basic.Mul(rates.NHF).Round(2)
	}

	if profile.HasLifeAssurance {
		d.LifeAssurance = profile.LifeAssurancePremium
	}

	if profile.HasDisability {
		d.DisabilityRelief = reliefs.DisabilityRelief
	}

	// The levy is employer-borne and only due from units with at least
	// five employees in the run.
	if in.EmployeeCount >= MinEmployeesForITF {
		d.TrainingLevy = gross.Mul(rates.ITF).Round(2)
	}

	d.TotalEmployee = d.EmployeePension.
		Add(d.VoluntaryPension).
		Add(d.HousingFund).
		Add(d.HealthInsurance).
		Add(d.LifeAssurance).
		Add(d.Gratuities).
		Sub(d.DisabilityRelief)
	d.TotalEmployer = d.EmployerPension.
		Add(d.TrainingFund).
		Add(d.TrainingLevy)

	return d
}

func nonNegative(d decimal.Decimal) decimal.Decimal {
	if d.IsNegative() {
		return decimal.Zero
	}
	return d
}
