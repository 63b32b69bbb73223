package tax

import (
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"

	taxerrors "github.com/toluwaf/PayrollManagement-sub000/internal/tax/errors"
)

var validate = validator.New()

var one = decimal.NewFromInt(1)

// Validate enforces the structural invariants of a settings snapshot.
// This is the settings-write boundary: the calculation engine assumes a
// valid table and produces wrong numbers, not errors, if an invalid one
// slips past this check.
func (s Settings) Validate() error {
	if err := validate.Struct(s); err != nil {
		return fmt.Errorf("%w: %v", taxerrors.ErrInvalidSettings, err)
	}
	if err := validateBrackets(s.Brackets); err != nil {
		return err
	}
	if err := validateRates(s.StatutoryRates); err != nil {
		return err
	}
	if err := validateReliefs(s.Reliefs); err != nil {
		return err
	}
	if s.MinimumWageMonthly.IsNegative() {
		return fmt.Errorf("%w: minimum wage cannot be negative", taxerrors.ErrInvalidSettings)
	}
	return nil
}

// validateBrackets checks that the bands are ordered, contiguous
// (each band starts where the previous one ended, integer boundaries
// expressed as max+1 are accepted), start at zero, and end unbounded.
func validateBrackets(brackets []Bracket) error {
	for i, b := range brackets {
		if b.Rate.IsNegative() || b.Rate.GreaterThan(one) {
			return fmt.Errorf("%w: bracket %d rate %s", taxerrors.ErrInvalidRate, i, b.Rate)
		}

		if i == 0 {
			if !b.Min.IsZero() {
				return fmt.Errorf("%w: first bracket must start at 0, got %s", taxerrors.ErrInvalidBracketTable, b.Min)
			}
		} else {
			prevMax := brackets[i-1].Max
			if !b.Min.Equal(*prevMax) && !b.Min.Equal(prevMax.Add(one)) {
				return fmt.Errorf("%w: bracket %d starts at %s after a bound of %s",
					taxerrors.ErrInvalidBracketTable, i, b.Min, *prevMax)
			}
		}

		last := i == len(brackets)-1
		if last {
			if !b.Unbounded() {
				return fmt.Errorf("%w: last bracket must have no upper bound", taxerrors.ErrInvalidBracketTable)
			}
			continue
		}
		if b.Unbounded() {
			return fmt.Errorf("%w: only the last bracket may be unbounded", taxerrors.ErrInvalidBracketTable)
		}
		if !b.Max.GreaterThan(b.Min) {
			return fmt.Errorf("%w: bracket %d bound %s is not above %s",
				taxerrors.ErrInvalidBracketTable, i, *b.Max, b.Min)
		}
	}
	return nil
}

func validateRates(rates StatutoryRates) error {
	checks := []struct {
		name string
		rate decimal.Decimal
	}{
		{"employeePension", rates.EmployeePension},
		{"employerPension", rates.EmployerPension},
		{"nhf", rates.NHF},
		{"nhis", rates.NHIS},
		{"nsitf", rates.NSITF},
		{"itf", rates.ITF},
	}
	for _, c := range checks {
		if c.rate.IsNegative() || c.rate.GreaterThan(one) {
			return fmt.Errorf("%w: %s is %s", taxerrors.ErrInvalidRate, c.name, c.rate)
		}
	}
	return nil
}

func validateReliefs(reliefs Reliefs) error {
	if reliefs.RentReliefRate.IsNegative() || reliefs.RentReliefRate.GreaterThan(one) {
		return fmt.Errorf("%w: rentReliefRate is %s", taxerrors.ErrInvalidRelief, reliefs.RentReliefRate)
	}
	if reliefs.RentReliefCap.IsNegative() {
		return fmt.Errorf("%w: rentReliefCap is %s", taxerrors.ErrInvalidRelief, reliefs.RentReliefCap)
	}
	if reliefs.DisabilityRelief.IsNegative() {
		return fmt.Errorf("%w: disabilityRelief is %s", taxerrors.ErrInvalidRelief, reliefs.DisabilityRelief)
	}
	return nil
}

func bound(v int64) *decimal.Decimal {
	d := decimal.NewFromInt(v)
	return &d
}

// DefaultSettings returns the 2025 reform configuration. Callers get a
// fresh value each time and must thread it explicitly through a run.
func DefaultSettings() Settings {
	return Settings{
		TaxYear:  2025,
		Currency: "NGN",
		Brackets: []Bracket{
			{Min: decimal.Zero, Max: bound(800_000), Rate: decimal.Zero},
			{Min: decimal.NewFromInt(800_001), Max: bound(3_000_000), Rate: decimal.NewFromFloat(0.15)},
			{Min: decimal.NewFromInt(3_000_001), Max: bound(12_000_000), Rate: decimal.NewFromFloat(0.18)},
			{Min: decimal.NewFromInt(12_000_001), Max: bound(25_000_000), Rate: decimal.NewFromFloat(0.21)},
			{Min: decimal.NewFromInt(25_000_001), Max: bound(50_000_000), Rate: decimal.NewFromFloat(0.23)},
			{Min: decimal.NewFromInt(50_000_001), Max: nil, Rate: decimal.NewFromFloat(0.25)},
		},
		StatutoryRates: StatutoryRates{
			EmployeePension: decimal.NewFromFloat(0.08),
			EmployerPension: decimal.NewFromFloat(0.10),
			NHF:             decimal.NewFromFloat(0.025),
			NHIS:            decimal.NewFromFloat(0.05),
			NSITF:           decimal.NewFromFloat(0.01),
			ITF:             decimal.NewFromFloat(0.01),
		},
		Reliefs: Reliefs{
			RentReliefRate: decimal.NewFromFloat(0.20),
			RentReliefCap:  decimal.NewFromInt(500_000),
		},
		MinimumWageMonthly: decimal.NewFromInt(70_000),
	}
}
