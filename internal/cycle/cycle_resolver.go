package cycle

import (
	"fmt"
	"regexp"
	"strconv"

	"github.com/shopspring/decimal"

	cycleerrors "github.com/toluwaf/PayrollManagement-sub000/internal/cycle/errors"
)

// Type identifies how often a pay run recurs. The multiplier attached to
// each type prorates monthly salary figures to the amount due for one
// occurrence of the cycle.
type Type string

const (
	TypeMonthly     Type = "monthly"
	TypeWeekly      Type = "weekly"
	TypeBiWeekly    Type = "bi-weekly"
	TypeSemiMonthly Type = "semi-monthly"
	TypeAnnually    Type = "annually"
	TypeAdHoc       Type = "ad-hoc"
)

var one = decimal.NewFromInt(1)

// Cycle multipliers. Weekly and bi-weekly are fractions of the annual
// figure (52 weeks, 26 fortnights); monthly stays at 1 and annually
// expands a monthly figure to a full year.
var multipliers = map[Type]decimal.Decimal{
	TypeMonthly:     one,
	TypeWeekly:      one.Div(decimal.NewFromInt(52)),
	TypeBiWeekly:    one.Div(decimal.NewFromInt(26)),
	TypeSemiMonthly: one.Div(decimal.NewFromInt(24)),
	TypeAnnually:    decimal.NewFromInt(12),
	TypeAdHoc:       one,
}

var (
	monthlyPeriodRe     = regexp.MustCompile(`^\d{4}-(\d{2})$`)
	weeklyPeriodRe      = regexp.MustCompile(`^\d{4}-W(\d{2})$`)
	biWeeklyPeriodRe    = regexp.MustCompile(`^\d{4}-BW(\d{2})$`)
	semiMonthlyPeriodRe = regexp.MustCompile(`^\d{4}-SM(\d{2})$`)
	annualPeriodRe      = regexp.MustCompile(`^\d{4}$`)
)

// Resolved is a validated (cycle, period) pair with its proration
// multiplier.
type Resolved struct {
	Type       Type
	Period     string
	Multiplier decimal.Decimal
}

// Resolve validates period against cycleType and returns the proration
// multiplier. It must be called before any monetary computation so a
// bad period never silently prorates with a wrong multiplier.
func Resolve(cycleType Type, period string) (Resolved, error) {
	multiplier, ok := multipliers[cycleType]
	if !ok {
		return Resolved{}, fmt.Errorf("%w: %q", cycleerrors.ErrInvalidCycleType, cycleType)
	}

	if err := validatePeriod(cycleType, period); err != nil {
		return Resolved{}, err
	}

	return Resolved{
		Type:       cycleType,
		Period:     period,
		Multiplier: multiplier,
	}, nil
}

func validatePeriod(cycleType Type, period string) error {
	switch cycleType {
	case TypeMonthly:
		return matchOrdinal(monthlyPeriodRe, period, 1, 12, "YYYY-MM")
	case TypeWeekly:
		return matchOrdinal(weeklyPeriodRe, period, 1, 53, "YYYY-Www")
	case TypeBiWeekly:
		return matchOrdinal(biWeeklyPeriodRe, period, 1, 27, "YYYY-BWbb")
	case TypeSemiMonthly:
		return matchOrdinal(semiMonthlyPeriodRe, period, 1, 24, "YYYY-SMnn")
	case TypeAnnually:
		if !annualPeriodRe.MatchString(period) {
			return fmt.Errorf("%w: %q is not YYYY", cycleerrors.ErrInvalidPeriod, period)
		}
		return nil
	case TypeAdHoc:
		// Ad-hoc periods are free-form labels; only emptiness is rejected.
		if period == "" {
			return fmt.Errorf("%w: ad-hoc period must not be empty", cycleerrors.ErrInvalidPeriod)
		}
		return nil
	}
	return fmt.Errorf("%w: %q", cycleerrors.ErrInvalidCycleType, cycleType)
}

func matchOrdinal(re *regexp.Regexp, period string, min, max int, format string) error {
	m := re.FindStringSubmatch(period)
	if m == nil {
		return fmt.Errorf("%w: %q is not %s", cycleerrors.ErrInvalidPeriod, period, format)
	}
	n, err := strconv.Atoi(m[1])
	if err != nil || n < min || n > max {
		return fmt.Errorf("%w: %q is out of range for %s", cycleerrors.ErrInvalidPeriod, period, format)
	}
	return nil
}
