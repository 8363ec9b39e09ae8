package loans

import (
	"sort"

	"github.com/shopspring/decimal"
)

// SimulateEarlyPayment previews an extra payment of paymentAmount against a
// loan with currentBalance left over remainingPeriods.
//
// With ShortenTerm the installment stays at what currentBalance currently
// costs per period and the term shrinks to the shortest one whose installment
// is no larger than that. Any other preference keeps the term and
// recomputes the installment for the reduced principal. InterestSaved compares
// the unrounded interest of both schedules, so it is positive for any positive
// payment on a loan that charges interest.
//
// paymentAmount and preference are not validated: a zero, negative or
// oversized payment still yields a result, possibly with a negative
// NewPrincipal. When NewPrincipal is not positive the loan counts as settled
// with no further payments. Only currentBalance, periodicRate,
// remainingPeriods and method are checked, as the original schedule is built
// from them.
func SimulateEarlyPayment(currentBalance, periodicRate decimal.Decimal, remainingPeriods int, method Method,
	paymentAmount decimal.Decimal, preference Preference) (EarlyPaymentResult, error) {
	originalPayment, err := CalculatePayment(currentBalance, periodicRate, remainingPeriods, method)
	if err != nil {
		return EarlyPaymentResult{}, err
	}
	originalInterest, err := totalInterest(currentBalance, periodicRate, remainingPeriods, method)
	if err != nil {
		return EarlyPaymentResult{}, err
	}

	result := EarlyPaymentResult{
		Preference:         preference,
		OriginalPrincipal:  currentBalance,
		OriginalPayment:    originalPayment,
		OriginalTerm:       remainingPeriods,
		EarlyPaymentAmount: paymentAmount,
		NewPrincipal:       currentBalance.Sub(paymentAmount),
		NewPayment:         decimal.Zero,
	}

	if !result.NewPrincipal.IsPositive() {
		result.InterestSaved = originalInterest
		return result, nil
	}

	switch preference {
	case ShortenTerm:
		result.NewPayment = originalPayment
		result.NewTerm = shortestTerm(result.NewPrincipal, periodicRate, remainingPeriods, method, originalPayment)
	default:
		result.NewTerm = remainingPeriods
		result.NewPayment, err = CalculatePayment(result.NewPrincipal, periodicRate, remainingPeriods, method)
		if err != nil {
			return EarlyPaymentResult{}, err
		}
	}

	newInterest, err := totalInterest(result.NewPrincipal, periodicRate, result.NewTerm, method)
	if err != nil {
		return EarlyPaymentResult{}, err
	}
	result.InterestSaved = originalInterest.Sub(newInterest)
	return result, nil
}

// shortestTerm finds the smallest term in 1..maxTerm whose regular installment
// for principal does not exceed installment. The final-period rounding
// correction is not part of the comparison. The installment falls as the term
// grows, so the predicate is monotonic and binary search applies. When no term
// fits, maxTerm is returned.
func shortestTerm(principal, periodicRate decimal.Decimal, maxTerm int, method Method, installment decimal.Decimal) int {
	n := sort.Search(maxTerm, func(i int) bool {
		payment, err := CalculatePayment(principal, periodicRate, i+1, method)
		return err == nil && payment.LessThanOrEqual(installment)
	})
	if n == maxTerm {
		return maxTerm
	}
	return n + 1
}
