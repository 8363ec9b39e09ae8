package loans

import (
	"time"

	"github.com/iwvelando/finance-tracker/pkg/mathutil"
	"github.com/shopspring/decimal"
)

// CalculateUpdatedBalance derives the current state of a loan from the payments
// recorded against it. Payments may be partial, skipped or out of order; they
// are folded without assuming they line up with the theoretical installments.
//
// A record carrying a principal/interest split is used as-is. A record with
// only a payment amount is split against the theoretical row of its
// installment: interest first, up to that row's interest, and the rest to
// principal. Negative components are ignored so the balance never rises, and
// the balance is clamped at zero.
func CalculateUpdatedBalance(principal, periodicRate decimal.Decimal, termPeriods int, method Method,
	startDate time.Time, payments []PaymentRecord) (BalanceProjection, error) {
	table, err := GenerateAmortizationTable(principal, periodicRate, termPeriods, method, startDate)
	if err != nil {
		return BalanceProjection{}, err
	}

	projection := BalanceProjection{TotalPaid: decimal.Zero, TotalInterestPaid: decimal.Zero}
	principalPaid := decimal.Zero
	touched := make(map[int]struct{}, len(payments))

	for _, payment := range payments {
		paidPrincipal, paidInterest := splitPayment(table, payment)
		principalPaid = principalPaid.Add(mathutil.ClampZero(paidPrincipal))
		projection.TotalInterestPaid = projection.TotalInterestPaid.Add(mathutil.ClampZero(paidInterest))

		amount := payment.PaymentAmount
		if !amount.IsPositive() {
			amount = paidPrincipal.Add(paidInterest)
		}
		projection.TotalPaid = projection.TotalPaid.Add(mathutil.ClampZero(amount))

		touched[payment.InstallmentNumber] = struct{}{}
	}

	projection.CurrentBalance = mathutil.ClampZero(principal.Sub(principalPaid))
	projection.PaidInstallments = len(touched)
	return projection, nil
}

// CalculateUpdatedBalanceFromTerms reconciles payments against the loan
// described by terms.
func CalculateUpdatedBalanceFromTerms(terms LoanTerms, payments []PaymentRecord) (BalanceProjection, error) {
	return CalculateUpdatedBalance(terms.Principal, terms.PeriodicRate, terms.TermPeriods, terms.Method,
		terms.StartDate, payments)
}

func splitPayment(table AmortizationTable, payment PaymentRecord) (decimal.Decimal, decimal.Decimal) {
	if !payment.PrincipalAmount.IsZero() || !payment.InterestAmount.IsZero() {
		return payment.PrincipalAmount, payment.InterestAmount
	}
	row, ok := table.Row(payment.InstallmentNumber)
	if !ok {
		return payment.PaymentAmount, decimal.Zero
	}
	interest := decimal.Min(payment.PaymentAmount, row.InterestAmount)
	return payment.PaymentAmount.Sub(interest), interest
}
