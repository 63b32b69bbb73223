package tax

import (
	"github.com/shopspring/decimal"
)

// Bracket is one progressive tax band. A nil Max marks the final
// unbounded band; no numeric infinity sentinel is used so the value
// serializes without ambiguity.
type Bracket struct {
	Min  decimal.Decimal  `json:"min"`
	Max  *decimal.Decimal `json:"max,omitempty"`
	Rate decimal.Decimal  `json:"rate"`
}

// Unbounded reports whether the bracket has no upper bound.
func (b Bracket) Unbounded() bool {
	return b.Max == nil
}

// StatutoryRates are the jurisdiction's contribution rates, each a
// fraction in [0, 1].
type StatutoryRates struct {
	EmployeePension decimal.Decimal `json:"employeePension"`
	EmployerPension decimal.Decimal `json:"employerPension"`
	NHF             decimal.Decimal `json:"nhf"`
	NHIS            decimal.Decimal `json:"nhis"`
	NSITF           decimal.Decimal `json:"nsitf"`
	ITF             decimal.Decimal `json:"itf"`
}

// Reliefs are the relief parameters applied before and during tax
// bracket evaluation. DisabilityRelief is a flat monthly amount, not a
// rate; it defaults to zero and stays inactive until configured.
type Reliefs struct {
	RentReliefRate   decimal.Decimal `json:"rentReliefRate"`
	RentReliefCap    decimal.Decimal `json:"rentReliefCap"`
	DisabilityRelief decimal.Decimal `json:"disabilityRelief"`
}

// Settings is one tax-year configuration snapshot. A payroll run
// fetches it once and threads the same value through every employee
// computation; there is deliberately no package-level default that
// could drift mid-run.
type Settings struct {
	TaxYear            int             `json:"taxYear" validate:"required,gte=2000,lte=2100"`
	Currency           string          `json:"currency" validate:"required,len=3,uppercase"`
	Brackets           []Bracket       `json:"brackets" validate:"required,min=1"`
	StatutoryRates     StatutoryRates  `json:"statutoryRates"`
	Reliefs            Reliefs         `json:"reliefs"`
	MinimumWageMonthly decimal.Decimal `json:"minimumWageMonthly"`
}
