package adjustment

import (
	"github.com/shopspring/decimal"
)

// Standard annual working hours used to derive an hourly rate from an
// annual salary.
const HoursPerYear = 2080

// LoanType tags how a loan's cycle deduction is derived.
type LoanType string

const (
	LoanFixed        LoanType = "fixed"
	LoanPercentage   LoanType = "percentage"
	LoanAmortizing   LoanType = "amortizing"
	LoanInterestOnly LoanType = "interest_only"
)

// Loan is one loan repayment specification. Only the fields relevant to
// its Type are read:
//
//	fixed:         Amount (or Installment when Amount is zero)
//	percentage:    Amount, as a percentage of estimated net salary
//	amortizing:    OutstandingBalance, AnnualInterestRate, TenureMonths
//	interest_only: OutstandingBalance, AnnualInterestRate
type Loan struct {
	Reference          string          `json:"reference,omitempty"`
	Type               LoanType        `json:"deductionType"`
	Amount             decimal.Decimal `json:"amount"`
	Installment        decimal.Decimal `json:"installment"`
	OutstandingBalance decimal.Decimal `json:"outstandingBalance"`
	AnnualInterestRate decimal.Decimal `json:"interestRate"`
	TenureMonths       int             `json:"tenureMonths"`
}

// OvertimeMultipliers are the premium factors per hour bucket. Zero
// values fall back to the statutory defaults (1.5 / 2.0 / 2.5).
type OvertimeMultipliers struct {
	Weekday decimal.Decimal `json:"weekday"`
	Weekend decimal.Decimal `json:"weekend"`
	Holiday decimal.Decimal `json:"publicHoliday"`
}

// Overtime is the canonical overtime input. Legacy flat-hour submissions
// normalize into WeekdayHours (see adjustment_dto.go).
type Overtime struct {
	WeekdayHours decimal.Decimal     `json:"weekdayHours"`
	WeekendHours decimal.Decimal     `json:"weekendHours"`
	HolidayHours decimal.Decimal     `json:"publicHolidayHours"`
	HourlyRate   *decimal.Decimal    `json:"hourlyRate,omitempty"`
	Multipliers  OvertimeMultipliers `json:"rateMultipliers"`
}

// Spec is the full set of ad-hoc adjustments for one employee in one
// pay period. Every field is optional; absent fields contribute zero.
type Spec struct {
	Bonus              decimal.Decimal `json:"bonus"`
	Commission         decimal.Decimal `json:"commission"`
	SpecialAllowance   decimal.Decimal `json:"specialAllowance"`
	HazardAllowance    decimal.Decimal `json:"hazardAllowance"`
	FurnitureAllowance decimal.Decimal `json:"furnitureAllowance"`
	UtilityAllowance   decimal.Decimal `json:"utilityAllowance"`
	MealAllowance      decimal.Decimal `json:"mealAllowance"`

	Overtime *Overtime `json:"overtime,omitempty"`
	Loans    []Loan    `json:"loans,omitempty"`

	Cooperative decimal.Decimal `json:"cooperative"`
	UnionDues   decimal.Decimal `json:"unionDues"`
	Investment  decimal.Decimal `json:"investment"`
	Charity     decimal.Decimal `json:"charity"`
}

func nonNegative(d decimal.Decimal) decimal.Decimal {
	if d.IsNegative() {
		return decimal.Zero
	}
	return d
}
