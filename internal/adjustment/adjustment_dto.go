package adjustment

import (
	"bytes"
	"encoding/json"

	"github.com/shopspring/decimal"
)

// SpecDTO decodes the adjustment payload as older clients submit it:
// "loans" may be a bare number, a single object, or an array, and
// "overtime" may be a flat hour count instead of a structured
// breakdown. Decoding normalizes everything into the canonical Spec;
// entries that cannot be understood are dropped rather than failing
// the payload.
type SpecDTO struct {
	Bonus              decimal.Decimal `json:"bonus"`
	Commission         decimal.Decimal `json:"commission"`
	SpecialAllowance   decimal.Decimal `json:"specialAllowance"`
	HazardAllowance    decimal.Decimal `json:"hazardAllowance"`
	FurnitureAllowance decimal.Decimal `json:"furnitureAllowance"`
	UtilityAllowance   decimal.Decimal `json:"utilityAllowance"`
	MealAllowance      decimal.Decimal `json:"mealAllowance"`

	Overtime *OvertimeInput `json:"overtime,omitempty"`
	Loans    LoanInput      `json:"loans,omitempty"`

	Cooperative decimal.Decimal `json:"cooperative"`
	UnionDues   decimal.Decimal `json:"unionDues"`
	Investment  decimal.Decimal `json:"investment"`
	Charity     decimal.Decimal `json:"charity"`
}

// ToSpec converts the decoded payload into the canonical Spec.
func (d SpecDTO) ToSpec() Spec {
	spec := Spec{
		Bonus:              d.Bonus,
		Commission:         d.Commission,
		SpecialAllowance:   d.SpecialAllowance,
		HazardAllowance:    d.HazardAllowance,
		FurnitureAllowance: d.FurnitureAllowance,
		UtilityAllowance:   d.UtilityAllowance,
		MealAllowance:      d.MealAllowance,
		Loans:              []Loan(d.Loans),
		Cooperative:        d.Cooperative,
		UnionDues:          d.UnionDues,
		Investment:         d.Investment,
		Charity:            d.Charity,
	}
	if d.Overtime != nil {
		ot := Overtime(*d.Overtime)
		spec.Overtime = &ot
	}
	return spec
}

// OvertimeInput accepts either a flat hour count (treated as weekday
// hours) or the structured weekday/weekend/holiday breakdown.
type OvertimeInput Overtime

func (o *OvertimeInput) UnmarshalJSON(b []byte) error {
	var hours decimal.Decimal
	if err := json.Unmarshal(b, &hours); err == nil {
		*o = OvertimeInput{WeekdayHours: hours}
		return nil
	}

	var structured Overtime
	if err := json.Unmarshal(b, &structured); err != nil {
		return err
	}
	*o = OvertimeInput(structured)
	return nil
}

// LoanInput accepts a bare number (flat fixed deduction), a single loan
// object, or an array of loan objects. Array entries that are not
// objects are skipped with zero contribution.
type LoanInput []Loan

func (l *LoanInput) UnmarshalJSON(b []byte) error {
	trimmed := bytes.TrimSpace(b)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		*l = nil
		return nil
	}

	switch trimmed[0] {
	case '[':
		var raws []json.RawMessage
		if err := json.Unmarshal(trimmed, &raws); err != nil {
			return err
		}
		loans := make([]Loan, 0, len(raws))
		for _, raw := range raws {
			if loan, ok := decodeLoanObject(raw); ok {
				loans = append(loans, loan)
			}
		}
		*l = loans
		return nil
	case '{':
		if loan, ok := decodeLoanObject(trimmed); ok {
			*l = []Loan{loan}
		}
		return nil
	}

	var amount decimal.Decimal
	if err := json.Unmarshal(trimmed, &amount); err != nil {
		return err
	}
	*l = []Loan{{Type: LoanFixed, Amount: amount}}
	return nil
}

func decodeLoanObject(raw json.RawMessage) (Loan, bool) {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || trimmed[0] != '{' {
		return Loan{}, false
	}

	var loan Loan
	if err := json.Unmarshal(trimmed, &loan); err != nil {
		return Loan{}, false
	}
	if loan.Type == "" {
		// Legacy objects carried no deductionType; they were flat amounts.
		loan.Type = LoanFixed
	}
	return loan, true
}
