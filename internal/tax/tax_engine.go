package tax

import (
	"github.com/shopspring/decimal"
)

var twelve = decimal.NewFromInt(12)

// Input is the monthly view of one employee the engine annualizes.
// MonthlyEmployeePension includes any voluntary top-up.
type Input struct {
	MonthlyGrossEmolument  decimal.Decimal
	MonthlyEmployeePension decimal.Decimal
	MonthlyHousingFund     decimal.Decimal
	MonthlyHealthInsurance decimal.Decimal
	AnnualRent             decimal.Decimal
	EligibleForRentRelief  bool
}

// AnnualDeductions is the allowable-deduction breakdown subtracted from
// annual gross before bracket evaluation.
type AnnualDeductions struct {
	RentRelief      decimal.Decimal `json:"rentRelief"`
	Pension         decimal.Decimal `json:"pension"`
	HousingFund     decimal.Decimal `json:"housingFund"`
	HealthInsurance decimal.Decimal `json:"healthInsurance"`
	Total           decimal.Decimal `json:"total"`
}

// BracketTax is the slice of taxable income that fell into one band.
type BracketTax struct {
	Min           decimal.Decimal  `json:"min"`
	Max           *decimal.Decimal `json:"max,omitempty"`
	Rate          decimal.Decimal  `json:"rate"`
	TaxableAmount decimal.Decimal  `json:"taxableAmount"`
	Tax           decimal.Decimal  `json:"tax"`
}

// Computation is the full PAYE result for one employee.
type Computation struct {
	AnnualGrossEmolument decimal.Decimal  `json:"annualGrossEmolument"`
	Deductions           AnnualDeductions `json:"deductions"`
	AnnualTaxableIncome  decimal.Decimal  `json:"annualTaxableIncome"`
	Brackets             []BracketTax     `json:"brackets,omitempty"`
	AnnualTax            decimal.Decimal  `json:"annualTax"`
	MonthlyTax           decimal.Decimal  `json:"monthlyTax"`
	EffectiveRate        decimal.Decimal  `json:"effectiveRate"`
}

// Compute annualizes gross pay, subtracts allowable deductions, and
// walks the bracket table. The table is assumed valid (see
// Settings.Validate); the engine does not re-check it at calculation
// time.
func Compute(in Input, settings Settings) Computation {
	annualGross := in.MonthlyGrossEmolument.Mul(twelve)

	deductions := annualDeductions(in, settings.Reliefs)

	taxable := annualGross.Sub(deductions.Total)
	if taxable.IsNegative() {
		taxable = decimal.Zero
	}

	brackets, annualTax := walkBrackets(taxable, settings.Brackets)

	comp := Computation{
		AnnualGrossEmolument: annualGross,
		Deductions:           deductions,
		AnnualTaxableIncome:  taxable,
		Brackets:             brackets,
		AnnualTax:            annualTax,
		MonthlyTax:           annualTax.Div(twelve).Round(2),
	}
	if annualGross.IsPositive() {
		comp.EffectiveRate = annualTax.Div(annualGross).Round(4)
	}
	return comp
}

func annualDeductions(in Input, reliefs Reliefs) AnnualDeductions {
	d := AnnualDeductions{
		Pension:         nonNegative(in.MonthlyEmployeePension).Mul(twelve),
		HousingFund:     nonNegative(in.MonthlyHousingFund).Mul(twelve),
		HealthInsurance: nonNegative(in.MonthlyHealthInsurance).Mul(twelve),
	}

	if in.EligibleForRentRelief {
		relief := nonNegative(in.AnnualRent).Mul(reliefs.RentReliefRate)
		if relief.GreaterThan(reliefs.RentReliefCap) {
			relief = reliefs.RentReliefCap
		}
		d.RentRelief = relief
	}

	d.Total = d.RentRelief.Add(d.Pension).Add(d.HousingFund).Add(d.HealthInsurance)
	return d
}

// walkBrackets consumes taxable income band by band. Band boundaries
// follow the published tables (min = previous max + 1), so the amount
// inside a band is measured against the previous upper bound, which is
// what makes 1,000,000 under [0-800,000][800,001-3,000,000] yield
// exactly 200,000 in the second band.
func walkBrackets(taxable decimal.Decimal, table []Bracket) ([]BracketTax, decimal.Decimal) {
	if !taxable.IsPositive() {
		return nil, decimal.Zero
	}

	var brackets []BracketTax
	total := decimal.Zero
	lower := decimal.Zero

	for _, b := range table {
		upper := taxable
		if !b.Unbounded() && b.Max.LessThan(taxable) {
			upper = *b.Max
		}

		amount := upper.Sub(lower)
		if !amount.IsPositive() {
			break
		}

		levy := amount.Mul(b.Rate)
		total = total.Add(levy)
		brackets = append(brackets, BracketTax{
			Min:           b.Min,
			Max:           b.Max,
			Rate:          b.Rate,
			TaxableAmount: amount,
			Tax:           levy,
		})

		if b.Unbounded() || !b.Max.LessThan(taxable) {
			break
		}
		lower = *b.Max
	}

	return brackets, total
}

func nonNegative(d decimal.Decimal) decimal.Decimal {
	if d.IsNegative() {
		return decimal.Zero
	}
	return d
}
