package adjustment_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/toluwaf/PayrollManagement-sub000/internal/adjustment"
)

func TestEvaluateLoans_FixedCappedAtThirtyThreePercent(t *testing.T) {
	// 33% of 300,000 = 99,000; a 150,000 request is clipped to it.
	result := adjustment.EvaluateLoans([]adjustment.Loan{
		{Type: adjustment.LoanFixed, Amount: dec("150000")},
	}, dec("300000"))

	assert.True(t, dec("99000").Equal(result.Cap), "cap %s", result.Cap)
	assert.True(t, dec("99000").Equal(result.Total), "total %s", result.Total)
	assert.True(t, result.CapReached)
	if assert.Len(t, result.Items, 1) {
		assert.True(t, dec("150000").Equal(result.Items[0].Requested))
		assert.True(t, dec("99000").Equal(result.Items[0].Applied))
		assert.True(t, result.Items[0].Capped)
	}
}

func TestEvaluateLoans_ArrayOrderPriority(t *testing.T) {
	result := adjustment.EvaluateLoans([]adjustment.Loan{
		{Reference: "car", Type: adjustment.LoanFixed, Amount: dec("80000")},
		{Reference: "housing", Type: adjustment.LoanFixed, Amount: dec("30000")},
		{Reference: "personal", Type: adjustment.LoanFixed, Amount: dec("10000")},
	}, dec("300000"))

	if assert.Len(t, result.Items, 3) {
		assert.True(t, dec("80000").Equal(result.Items[0].Applied))
		assert.False(t, result.Items[0].Capped)
		assert.True(t, dec("19000").Equal(result.Items[1].Applied), "second loan gets remaining headroom")
		assert.True(t, result.Items[1].Capped)
		assert.True(t, result.Items[2].Applied.IsZero(), "no headroom left for the third loan")
	}
	assert.True(t, dec("99000").Equal(result.Total))
}

func TestEvaluateLoans_DeductionTypes(t *testing.T) {
	t.Run("fixed falls back to installment", func(t *testing.T) {
		result := adjustment.EvaluateLoans([]adjustment.Loan{
			{Type: adjustment.LoanFixed, Installment: dec("25000")},
		}, dec("500000"))

		assert.True(t, dec("25000").Equal(result.Total))
	})

	t.Run("percentage of estimated net", func(t *testing.T) {
		result := adjustment.EvaluateLoans([]adjustment.Loan{
			{Type: adjustment.LoanPercentage, Amount: dec("10")},
		}, dec("300000"))

		assert.True(t, dec("30000").Equal(result.Total))
	})

	t.Run("interest only", func(t *testing.T) {
		// 1,000,000 * (0.12/12) = 10,000 per month.
		result := adjustment.EvaluateLoans([]adjustment.Loan{
			{Type: adjustment.LoanInterestOnly, OutstandingBalance: dec("1000000"), AnnualInterestRate: dec("0.12")},
		}, dec("500000"))

		assert.True(t, dec("10000").Equal(result.Total), "total %s", result.Total)
	})

	t.Run("amortizing equated installment", func(t *testing.T) {
		result := adjustment.EvaluateLoans([]adjustment.Loan{
			{Type: adjustment.LoanAmortizing, OutstandingBalance: dec("1200000"), AnnualInterestRate: dec("0.12"), TenureMonths: 12},
		}, dec("1000000"))

		factor := math.Pow(1.01, 12)
		want := 1200000 * 0.01 * factor / (factor - 1)
		got, _ := result.Total.Float64()
		assert.InDelta(t, want, got, 0.01)
		assert.True(t, result.Total.GreaterThan(dec("100000")), "installment exceeds the zero-interest split")
	})

	t.Run("amortizing with zero rate splits evenly", func(t *testing.T) {
		result := adjustment.EvaluateLoans([]adjustment.Loan{
			{Type: adjustment.LoanAmortizing, OutstandingBalance: dec("1200000"), TenureMonths: 12},
		}, dec("1000000"))

		assert.True(t, dec("100000").Equal(result.Total), "total %s", result.Total)
	})

	t.Run("unknown type is skipped", func(t *testing.T) {
		result := adjustment.EvaluateLoans([]adjustment.Loan{
			{Type: "balloon", Amount: dec("50000")},
			{Type: adjustment.LoanFixed, Amount: dec("20000")},
		}, dec("300000"))

		assert.Len(t, result.Items, 1)
		assert.True(t, dec("20000").Equal(result.Total))
	})
}

func TestEvaluateLoans_CapProperty(t *testing.T) {
	nets := []string{"0", "1", "150000", "300000", "987654.32"}
	loans := []adjustment.Loan{
		{Type: adjustment.LoanFixed, Amount: dec("120000")},
		{Type: adjustment.LoanPercentage, Amount: dec("25")},
		{Type: adjustment.LoanInterestOnly, OutstandingBalance: dec("2000000"), AnnualInterestRate: dec("0.18")},
	}

	for _, net := range nets {
		estimated := dec(net)
		result := adjustment.EvaluateLoans(loans, estimated)

		limit := estimated.Mul(dec("0.33")).Round(2)
		assert.True(t, result.Total.LessThanOrEqual(limit),
			"net %s: total %s exceeds %s", net, result.Total, limit)
	}
}
