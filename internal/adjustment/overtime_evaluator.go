package adjustment

import (
	"github.com/shopspring/decimal"
)

var (
	defaultWeekdayMultiplier = decimal.NewFromFloat(1.5)
	defaultWeekendMultiplier = decimal.NewFromFloat(2.0)
	defaultHolidayMultiplier = decimal.NewFromFloat(2.5)

	hoursPerYear = decimal.NewFromInt(HoursPerYear)
	twelve       = decimal.NewFromInt(12)
)

// OvertimeResult is the priced overtime for one pay period, already
// prorated by the cycle multiplier.
type OvertimeResult struct {
	HourlyRate decimal.Decimal `json:"hourlyRate"`
	WeekdayPay decimal.Decimal `json:"weekdayPay"`
	WeekendPay decimal.Decimal `json:"weekendPay"`
	HolidayPay decimal.Decimal `json:"publicHolidayPay"`
	Total      decimal.Decimal `json:"total"`
}

// OvertimeContext carries the salary data the evaluator derives an
// hourly rate from when the request does not supply one.
type OvertimeContext struct {
	AnnualBasicSalary  decimal.Decimal
	MinimumWageMonthly decimal.Decimal
	CycleMultiplier    decimal.Decimal
}

// EvaluateOvertime prices an overtime submission. Each hour bucket is
// paid at its own premium multiplier. A nil or empty submission yields a
// zero result with no breakdown amounts.
func EvaluateOvertime(ot *Overtime, octx OvertimeContext) OvertimeResult {
	if ot == nil {
		return OvertimeResult{}
	}

	weekday := nonNegative(ot.WeekdayHours)
	weekend := nonNegative(ot.WeekendHours)
	holiday := nonNegative(ot.HolidayHours)
	if weekday.IsZero() && weekend.IsZero() && holiday.IsZero() {
		return OvertimeResult{}
	}

	rate := hourlyRate(ot, octx)

	weekdayPay := weekday.Mul(rate).Mul(multiplierOrDefault(ot.Multipliers.Weekday, defaultWeekdayMultiplier))
	weekendPay := weekend.Mul(rate).Mul(multiplierOrDefault(ot.Multipliers.Weekend, defaultWeekendMultiplier))
	holidayPay := holiday.Mul(rate).Mul(multiplierOrDefault(ot.Multipliers.Holiday, defaultHolidayMultiplier))

	weekdayPay = weekdayPay.Mul(octx.CycleMultiplier).Round(2)
	weekendPay = weekendPay.Mul(octx.CycleMultiplier).Round(2)
	holidayPay = holidayPay.Mul(octx.CycleMultiplier).Round(2)

	return OvertimeResult{
		HourlyRate: rate,
		WeekdayPay: weekdayPay,
		WeekendPay: weekendPay,
		HolidayPay: holidayPay,
		Total:      weekdayPay.Add(weekendPay).Add(holidayPay),
	}
}

// hourlyRate prefers the submitted rate, then annual salary over 2080
// standard hours, then a minimum-wage-derived floor.
func hourlyRate(ot *Overtime, octx OvertimeContext) decimal.Decimal {
	if ot.HourlyRate != nil && ot.HourlyRate.IsPositive() {
		return *ot.HourlyRate
	}
	if octx.AnnualBasicSalary.IsPositive() {
		return octx.AnnualBasicSalary.Div(hoursPerYear).Round(2)
	}
	return octx.MinimumWageMonthly.Mul(twelve).Div(hoursPerYear).Round(2)
}

func multiplierOrDefault(m, fallback decimal.Decimal) decimal.Decimal {
	if m.IsPositive() {
		return m
	}
	return fallback
}
