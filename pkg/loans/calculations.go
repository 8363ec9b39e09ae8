package loans

import (
	"github.com/iwvelando/finance-tracker/pkg/mathutil"
	"github.com/shopspring/decimal"
)

// CalculateSACPayment returns the first, and largest, installment of a
// constant-amortization loan: principal/term plus one period of interest on the
// full principal.
func CalculateSACPayment(principal, periodicRate decimal.Decimal, termPeriods int) (decimal.Decimal, error) {
	if err := validateAmounts(principal, periodicRate, termPeriods); err != nil {
		return decimal.Zero, err
	}
	return mathutil.Round(sacAmortization(principal, termPeriods).Add(principal.Mul(periodicRate))), nil
}

// CalculatePricePayment returns the constant installment of a French
// (Price) loan using the annuity formula P*r*(1+r)^n / ((1+r)^n - 1).
func CalculatePricePayment(principal, periodicRate decimal.Decimal, termPeriods int) (decimal.Decimal, error) {
	if err := validateAmounts(principal, periodicRate, termPeriods); err != nil {
		return decimal.Zero, err
	}
	return mathutil.Round(annuity(principal, periodicRate, termPeriods)), nil
}

// CalculatePayment dispatches to the calculator for the given method. For SAC
// the first installment is returned.
func CalculatePayment(principal, periodicRate decimal.Decimal, termPeriods int, method Method) (decimal.Decimal, error) {
	switch method {
	case SAC:
		return CalculateSACPayment(principal, periodicRate, termPeriods)
	case Price:
		return CalculatePricePayment(principal, periodicRate, termPeriods)
	default:
		return decimal.Zero, invalidTerms("method", string(method), "is not sac or price")
	}
}

// CalculateInterestPayment calculates the interest charged on a balance for one
// period.
func CalculateInterestPayment(remainingBalance, periodicRate decimal.Decimal) decimal.Decimal {
	return mathutil.Round(remainingBalance.Mul(periodicRate))
}

func sacAmortization(principal decimal.Decimal, termPeriods int) decimal.Decimal {
	return principal.Div(decimal.NewFromInt(int64(termPeriods)))
}

func annuity(principal, periodicRate decimal.Decimal, termPeriods int) decimal.Decimal {
	if periodicRate.IsZero() {
		// No interest: the principal is simply split across the term.
		return principal.Div(decimal.NewFromInt(int64(termPeriods)))
	}
	growth := one.Add(periodicRate).Pow(decimal.NewFromInt(int64(termPeriods)))
	return principal.Mul(periodicRate).Mul(growth).Div(growth.Sub(one))
}
