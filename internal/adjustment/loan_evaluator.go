package adjustment

import (
	"math"

	"github.com/shopspring/decimal"
)

// MaxLoanDeductionRate is the regulatory ceiling on cumulative loan
// repayment per period: 33% of estimated net salary.
var MaxLoanDeductionRate = decimal.NewFromFloat(0.33)

var hundred = decimal.NewFromInt(100)

// LoanDeduction is the outcome for one loan: the deduction its terms
// ask for and the amount actually applied after the regulatory cap.
type LoanDeduction struct {
	Reference string          `json:"reference,omitempty"`
	Type      LoanType        `json:"deductionType"`
	Requested decimal.Decimal `json:"requested"`
	Applied   decimal.Decimal `json:"applied"`
	Capped    bool            `json:"capped"`
}

// LoanResult aggregates all loan deductions for one employee.
type LoanResult struct {
	Items      []LoanDeduction `json:"items,omitempty"`
	Cap        decimal.Decimal `json:"cap"`
	CapReached bool            `json:"capReached"`
	Total      decimal.Decimal `json:"total"`
}

// EvaluateLoans converts loan specifications into a capped total
// deduction. Loans are processed in array order, so earlier loans get
// priority on the available headroom; once the cumulative total hits
// 33% of estimated net salary the remainder is clipped. Loans with an
// unrecognized type are skipped with zero contribution rather than
// failing the whole computation.
func EvaluateLoans(loans []Loan, estimatedNetSalary decimal.Decimal) LoanResult {
	cap := nonNegative(estimatedNetSalary).Mul(MaxLoanDeductionRate).Round(2)
	result := LoanResult{Cap: cap}

	for _, loan := range loans {
		requested, ok := loanDeduction(loan, estimatedNetSalary)
		if !ok {
			continue
		}
		requested = nonNegative(requested)

		headroom := cap.Sub(result.Total)
		if headroom.IsNegative() {
			headroom = decimal.Zero
		}

		applied := requested
		capped := false
		if applied.GreaterThan(headroom) {
			applied = headroom
			capped = true
			result.CapReached = true
		}

		result.Total = result.Total.Add(applied)
		result.Items = append(result.Items, LoanDeduction{
			Reference: loan.Reference,
			Type:      loan.Type,
			Requested: requested,
			Applied:   applied,
			Capped:    capped,
		})
	}

	return result
}

func loanDeduction(loan Loan, estimatedNetSalary decimal.Decimal) (decimal.Decimal, bool) {
	switch loan.Type {
	case LoanFixed:
		if loan.Amount.IsPositive() {
			return loan.Amount, true
		}
		return loan.Installment, true
	case LoanPercentage:
		return nonNegative(estimatedNetSalary).Mul(loan.Amount.Div(hundred)).Round(2), true
	case LoanAmortizing:
		return amortizedInstallment(loan.OutstandingBalance, loan.AnnualInterestRate, loan.TenureMonths), true
	case LoanInterestOnly:
		return loan.OutstandingBalance.Mul(monthlyRate(loan.AnnualInterestRate)).Round(2), true
	}
	return decimal.Zero, false
}

// amortizedInstallment is the equated monthly installment
// P*r*(1+r)^n / ((1+r)^n - 1). The power term runs through float64,
// monetary arithmetic stays decimal.
func amortizedInstallment(balance, annualRate decimal.Decimal, tenureMonths int) decimal.Decimal {
	if tenureMonths <= 0 || !balance.IsPositive() {
		return decimal.Zero
	}

	rate := monthlyRate(annualRate)
	if rate.IsZero() {
		// Zero-interest: even split.
		return balance.Div(decimal.NewFromInt(int64(tenureMonths))).Round(2)
	}

	r, _ := rate.Float64()
	factor := math.Pow(1+r, float64(tenureMonths))
	payment := balance.InexactFloat64() * r * factor / (factor - 1)
	return decimal.NewFromFloat(payment).Round(2)
}

func monthlyRate(annualRate decimal.Decimal) decimal.Decimal {
	return nonNegative(annualRate).Div(twelve)
}
