// Package mathutil provides common mathematical utility functions.
package mathutil

import (
	"github.com/iwvelando/finance-tracker/pkg/constants"
	"github.com/shopspring/decimal"
)

// Tolerance is one minor currency unit.
var Tolerance = decimal.RequireFromString(constants.CurrencyTolerance)

// Round rounds a value to two decimals, i.e. to represent real currency.
// Halves round away from zero, which is half-up for the non-negative amounts
// money usually carries.
func Round(val decimal.Decimal) decimal.Decimal {
	return val.Round(constants.CurrencyPlaces)
}

// FloorCents truncates a value down to whole cents.
func FloorCents(val decimal.Decimal) decimal.Decimal {
	return val.RoundFloor(constants.CurrencyPlaces)
}

// Exact bounds the digits of an unrounded amount so that long schedules do not
// grow without limit.
func Exact(val decimal.Decimal) decimal.Decimal {
	return val.Round(constants.ExactPlaces)
}

// WithinTolerance checks if two values are within a specified tolerance
func WithinTolerance(val1, val2, tolerance decimal.Decimal) bool {
	return val1.Sub(val2).Abs().LessThanOrEqual(tolerance)
}

// WithinCent checks if two values differ by at most one cent.
func WithinCent(val1, val2 decimal.Decimal) bool {
	return WithinTolerance(val1, val2, Tolerance)
}

// ClampZero returns val, or zero when val is negative.
func ClampZero(val decimal.Decimal) decimal.Decimal {
	if val.IsNegative() {
		return decimal.Zero
	}
	return val
}

// PercentToPeriodicRate converts an annual percentage (e.g. 12 for 12%) into a
// monthly fractional rate (0.01).
func PercentToPeriodicRate(annualPercent decimal.Decimal) decimal.Decimal {
	return annualPercent.
		Div(decimal.NewFromFloat(constants.PercentageMultiplier)).
		Div(decimal.NewFromInt(constants.MonthsPerYear))
}

// CalculatePercentage calculates what percentage value is of total
func CalculatePercentage(value, total decimal.Decimal) decimal.Decimal {
	if total.IsZero() {
		return decimal.Zero
	}
	return value.Div(total).Mul(decimal.NewFromFloat(constants.PercentageMultiplier))
}
