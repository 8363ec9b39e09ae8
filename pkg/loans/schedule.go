package loans

import (
	"time"

	"github.com/iwvelando/finance-tracker/pkg/datetime"
	"github.com/iwvelando/finance-tracker/pkg/mathutil"
	"github.com/shopspring/decimal"
)

// GenerateAmortizationTable creates the complete schedule of a loan.
//
// Balances and interest are carried unrounded and only the values written to
// each row are rounded to the cent. SAC amortizes principal/term truncated to
// the cent and charges interest on the row balance. Price pays the rounded
// annuity installment; its interest column is the running total of the
// unrounded interest rounded once per row, so the columns never drift apart.
// The last period takes whatever balance remains, so the principal column
// always adds up to the original principal and the table closes at exactly
// zero.
func GenerateAmortizationTable(principal, periodicRate decimal.Decimal, termPeriods int, method Method,
	startDate time.Time) (AmortizationTable, error) {
	table, _, err := amortize(principal, periodicRate, termPeriods, method, startDate)
	return table, err
}

// amortize builds the schedule along with the unrounded interest it charges.
func amortize(principal, periodicRate decimal.Decimal, termPeriods int, method Method,
	startDate time.Time) (AmortizationTable, decimal.Decimal, error) {
	terms := LoanTerms{
		Principal:    principal,
		PeriodicRate: periodicRate,
		TermPeriods:  termPeriods,
		Method:       method,
		StartDate:    startDate,
	}
	if err := terms.Validate(); err != nil {
		return AmortizationTable{}, decimal.Zero, err
	}

	var step decimal.Decimal
	switch method {
	case SAC:
		step = sacAmortization(principal, termPeriods)
	case Price:
		step = annuity(principal, periodicRate, termPeriods)
	}
	installment := mathutil.Round(step)
	fixedPrincipal := mathutil.FloorCents(step)

	table := AmortizationTable{Rows: make([]AmortizationRow, 0, termPeriods)}
	exactBalance := principal
	exactInterest := decimal.Zero
	balance := principal
	for i := 1; i <= termPeriods; i++ {
		interest := mathutil.Exact(exactBalance.Mul(periodicRate))
		charged := mathutil.Round(exactInterest)
		exactInterest = exactInterest.Add(interest)

		var row AmortizationRow
		if method == SAC {
			exactBalance = exactBalance.Sub(step)
			row.InterestAmount = CalculateInterestPayment(balance, periodicRate)
			row.PrincipalAmount = fixedPrincipal
		} else {
			exactBalance = exactBalance.Add(interest).Sub(step)
			row.InterestAmount = mathutil.Round(exactInterest).Sub(charged)
			row.PrincipalAmount = mathutil.ClampZero(installment.Sub(row.InterestAmount))
		}
		if i == termPeriods || row.PrincipalAmount.GreaterThan(balance) {
			// Close whatever the rounded rows left behind.
			row.PrincipalAmount = balance
		}
		balance = balance.Sub(row.PrincipalAmount)

		row.InstallmentNumber = i
		row.DueDate = datetime.AddMonths(startDate, i)
		row.PaymentAmount = row.PrincipalAmount.Add(row.InterestAmount)
		row.RemainingBalance = balance
		table.Rows = append(table.Rows, row)

		table.Summary.TotalPayments = table.Summary.TotalPayments.Add(row.PaymentAmount)
		table.Summary.TotalInterest = table.Summary.TotalInterest.Add(row.InterestAmount)
		table.Summary.TotalPrincipal = table.Summary.TotalPrincipal.Add(row.PrincipalAmount)
	}

	return table, exactInterest, nil
}

// GenerateFromTerms creates the schedule described by terms.
func GenerateFromTerms(terms LoanTerms) (AmortizationTable, error) {
	return GenerateAmortizationTable(terms.Principal, terms.PeriodicRate, terms.TermPeriods, terms.Method, terms.StartDate)
}

// totalInterest returns the unrounded interest a schedule charges. Savings are
// compared on it so that an early payment below a cent still shows.
func totalInterest(principal, periodicRate decimal.Decimal, termPeriods int, method Method) (decimal.Decimal, error) {
	_, interest, err := amortize(principal, periodicRate, termPeriods, method, time.Time{})
	return interest, err
}
