package adjustment

import (
	"github.com/shopspring/decimal"
)

// AdditionItems are the flat-rate additions after cycle proration.
type AdditionItems struct {
	Bonus              decimal.Decimal `json:"bonus"`
	Commission         decimal.Decimal `json:"commission"`
	SpecialAllowance   decimal.Decimal `json:"specialAllowance"`
	HazardAllowance    decimal.Decimal `json:"hazardAllowance"`
	FurnitureAllowance decimal.Decimal `json:"furnitureAllowance"`
	UtilityAllowance   decimal.Decimal `json:"utilityAllowance"`
	MealAllowance      decimal.Decimal `json:"mealAllowance"`
	Overtime           decimal.Decimal `json:"overtime"`
}

// DeductionItems are the flat deduction categories after cycle
// proration, plus the capped loan total.
type DeductionItems struct {
	Loans       decimal.Decimal `json:"loans"`
	Cooperative decimal.Decimal `json:"cooperative"`
	UnionDues   decimal.Decimal `json:"unionDues"`
	Investment  decimal.Decimal `json:"investment"`
	Charity     decimal.Decimal `json:"charity"`
}

// Result is the processed adjustment set for one employee and period,
// with the structured breakdown payslips display.
type Result struct {
	Additions       AdditionItems   `json:"additions"`
	Deductions      DeductionItems  `json:"deductions"`
	Overtime        OvertimeResult  `json:"overtime"`
	Loans           LoanResult      `json:"loanDetails"`
	TotalAdditions  decimal.Decimal `json:"totalAdditions"`
	TotalDeductions decimal.Decimal `json:"totalDeductions"`
	NetAdjustment   decimal.Decimal `json:"netAdjustment"`
}

// ProcessContext carries the per-employee figures the evaluators need.
type ProcessContext struct {
	AnnualBasicSalary  decimal.Decimal
	MinimumWageMonthly decimal.Decimal
	EstimatedNetSalary decimal.Decimal
	CycleMultiplier    decimal.Decimal
}

// Process composes overtime, loans, and the flat adjustment categories
// into one net adjustment. It is purely additive arithmetic over
// optional fields: unknown or absent values contribute zero and input
// is never rejected.
func Process(spec Spec, pctx ProcessContext) Result {
	overtime := EvaluateOvertime(spec.Overtime, OvertimeContext{
		AnnualBasicSalary:  pctx.AnnualBasicSalary,
		MinimumWageMonthly: pctx.MinimumWageMonthly,
		CycleMultiplier:    pctx.CycleMultiplier,
	})
	loans := EvaluateLoans(spec.Loans, pctx.EstimatedNetSalary)

	prorate := func(d decimal.Decimal) decimal.Decimal {
		return nonNegative(d).Mul(pctx.CycleMultiplier).Round(2)
	}

	additions := AdditionItems{
		Bonus:              prorate(spec.Bonus),
		Commission:         prorate(spec.Commission),
		SpecialAllowance:   prorate(spec.SpecialAllowance),
		HazardAllowance:    prorate(spec.HazardAllowance),
		FurnitureAllowance: prorate(spec.FurnitureAllowance),
		UtilityAllowance:   prorate(spec.UtilityAllowance),
		MealAllowance:      prorate(spec.MealAllowance),
		Overtime:           overtime.Total,
	}
	deductions := DeductionItems{
		Loans:       loans.Total,
		Cooperative: prorate(spec.Cooperative),
		UnionDues:   prorate(spec.UnionDues),
		Investment:  prorate(spec.Investment),
		Charity:     prorate(spec.Charity),
	}

	totalAdditions := additions.Bonus.
		Add(additions.Commission).
		Add(additions.SpecialAllowance).
		Add(additions.HazardAllowance).
		Add(additions.FurnitureAllowance).
		Add(additions.UtilityAllowance).
		Add(additions.MealAllowance).
		Add(additions.Overtime)
	totalDeductions := deductions.Loans.
		Add(deductions.Cooperative).
		Add(deductions.UnionDues).
		Add(deductions.Investment).
		Add(deductions.Charity)

	return Result{
		Additions:       additions,
		Deductions:      deductions,
		Overtime:        overtime,
		Loans:           loans,
		TotalAdditions:  totalAdditions,
		TotalDeductions: totalDeductions,
		NetAdjustment:   totalAdditions.Sub(totalDeductions),
	}
}
