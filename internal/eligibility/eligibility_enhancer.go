package eligibility

import (
	"time"

	"github.com/shopspring/decimal"
)

// HousingSituation describes how an employee is housed. It drives rent
// relief eligibility and the legacy homeowner flags downstream.
type HousingSituation string

const (
	HousingRenting         HousingSituation = "renting"
	HousingOwner           HousingSituation = "owner"
	HousingCompanyProvided HousingSituation = "company-provided"
)

// Facts are the raw employee fields relevant to relief and exemption
// handling, exactly as the employee record stores them.
type Facts struct {
	DateOfBirth          *time.Time
	HousingSituation     HousingSituation
	AnnualRent           decimal.Decimal
	ExemptFromNHF        bool
	NHFExemptionReason   string
	HasDisability        bool
	AdditionalPension    decimal.Decimal
	HasLifeAssurance     bool
	LifeAssurancePremium decimal.Decimal
}

// Profile is the canonical eligibility profile derived from Facts. It is
// recomputed on every payslip computation and never persisted on its own.
type Profile struct {
	HousingSituation      HousingSituation `json:"housingSituation"`
	AnnualRent            decimal.Decimal  `json:"annualRent"`
	EligibleForRentRelief bool             `json:"eligibleForRentRelief"`
	TreatAsHomeowner      bool             `json:"treatAsHomeowner"`
	CompanyHoused         bool             `json:"companyHoused"`
	ExemptFromNHF         bool             `json:"exemptFromNHF"`
	NHFExemptionReason    string           `json:"nhfExemptionReason,omitempty"`
	HasDisability         bool             `json:"hasDisability"`
	AdditionalPension     decimal.Decimal  `json:"additionalPension"`
	HasLifeAssurance      bool             `json:"hasLifeAssurance"`
	LifeAssurancePremium  decimal.Decimal  `json:"lifeAssurancePremium"`
	Age                   int              `json:"age"`
	IsAboveSixty          bool             `json:"isAboveSixty"`
	IsAboveSixtyFive      bool             `json:"isAboveSixtyFive"`
}

// Enhance normalizes raw employee fields into a Profile as of the given
// calculation date. It is pure derivation: no monetary total changes
// here, only flags consumed by the statutory and tax stages.
func Enhance(facts Facts, asOf time.Time) Profile {
	profile := Profile{
		HousingSituation:     facts.HousingSituation,
		AnnualRent:           nonNegative(facts.AnnualRent),
		ExemptFromNHF:        facts.ExemptFromNHF,
		NHFExemptionReason:   facts.NHFExemptionReason,
		HasDisability:        facts.HasDisability,
		AdditionalPension:    nonNegative(facts.AdditionalPension),
		HasLifeAssurance:     facts.HasLifeAssurance,
		LifeAssurancePremium: nonNegative(facts.LifeAssurancePremium),
	}

	switch facts.HousingSituation {
	case HousingRenting:
		profile.EligibleForRentRelief = profile.AnnualRent.IsPositive()
	case HousingOwner:
		profile.TreatAsHomeowner = true
	case HousingCompanyProvided:
		profile.CompanyHoused = true
	}

	if !facts.HasLifeAssurance {
		profile.LifeAssurancePremium = decimal.Zero
	}

	if facts.DateOfBirth != nil {
		profile.Age = ageAt(*facts.DateOfBirth, asOf)
		profile.IsAboveSixty = profile.Age >= 60
		profile.IsAboveSixtyFive = profile.Age >= 65
	}

	return profile
}

// ageAt computes completed years between dob and asOf.
func ageAt(dob, asOf time.Time) int {
	age := asOf.Year() - dob.Year()
	anniversary := time.Date(asOf.Year(), dob.Month(), dob.Day(), 0, 0, 0, 0, time.UTC)
	if anniversary.After(time.Date(asOf.Year(), asOf.Month(), asOf.Day(), 0, 0, 0, 0, time.UTC)) {
		age--
	}
	if age < 0 {
		age = 0
	}
	return age
}

func nonNegative(d decimal.Decimal) decimal.Decimal {
	if d.IsNegative() {
		return decimal.Zero
	}
	return d
}
