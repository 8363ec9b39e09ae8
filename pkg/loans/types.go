// Package loans implements the financing amortization engine: SAC and Price
// payment calculators, amortization tables, balance reconciliation against a
// payment history and early-payment simulation.
//
// Every function is pure. Money is a decimal rounded to cents per period and
// rates are per-period fractions applied as-is (0.01 is 1% per period).
package loans

import (
	"fmt"
	"strconv"
	"time"

	"github.com/iwvelando/finance-tracker/pkg/constants"
	"github.com/shopspring/decimal"
)

// Method selects the amortization convention.
type Method string

const (
	// SAC amortizes a constant principal share every period.
	SAC Method = constants.AmortizationSAC
	// Price pays a constant installment every period.
	Price Method = constants.AmortizationPrice
)

// Valid reports whether m is a known amortization method.
func (m Method) Valid() bool {
	return m == SAC || m == Price
}

// Preference selects how an early payment is absorbed.
type Preference string

const (
	// ShortenTerm keeps the installment and reduces the number of periods.
	ShortenTerm Preference = constants.PreferenceShortenTerm
	// ReducePayment keeps the number of periods and lowers the installment.
	ReducePayment Preference = constants.PreferenceReducePayment
)

// LoanTerms holds the inputs of an amortization table.
type LoanTerms struct {
	Principal    decimal.Decimal `json:"principal" yaml:"principal"`
	PeriodicRate decimal.Decimal `json:"periodicRate" yaml:"periodicRate"`
	TermPeriods  int             `json:"termPeriods" yaml:"termPeriods"`
	Method       Method          `json:"method" yaml:"method"`
	StartDate    time.Time       `json:"startDate" yaml:"startDate"`
}

// Validate checks the terms can be amortized.
func (t LoanTerms) Validate() error {
	if err := validateAmounts(t.Principal, t.PeriodicRate, t.TermPeriods); err != nil {
		return err
	}
	if !t.Method.Valid() {
		return invalidTerms("method", strconv.Quote(string(t.Method)), "is not sac or price")
	}
	return nil
}

// AmortizationRow is one installment of an amortization table.
type AmortizationRow struct {
	InstallmentNumber int             `json:"installmentNumber" yaml:"installmentNumber"`
	DueDate           time.Time       `json:"dueDate" yaml:"dueDate"`
	PaymentAmount     decimal.Decimal `json:"paymentAmount" yaml:"paymentAmount"`
	PrincipalAmount   decimal.Decimal `json:"principalAmount" yaml:"principalAmount"`
	InterestAmount    decimal.Decimal `json:"interestAmount" yaml:"interestAmount"`
	RemainingBalance  decimal.Decimal `json:"remainingBalance" yaml:"remainingBalance"`
}

// AmortizationSummary totals an amortization table.
type AmortizationSummary struct {
	TotalPayments  decimal.Decimal `json:"totalPayments" yaml:"totalPayments"`
	TotalInterest  decimal.Decimal `json:"totalInterest" yaml:"totalInterest"`
	TotalPrincipal decimal.Decimal `json:"totalPrincipal" yaml:"totalPrincipal"`
}

// AmortizationTable is a full period-by-period schedule and its totals.
type AmortizationTable struct {
	Rows    []AmortizationRow   `json:"rows" yaml:"rows"`
	Summary AmortizationSummary `json:"summary" yaml:"summary"`
}

// Last returns the final row of the table.
func (t AmortizationTable) Last() AmortizationRow {
	if len(t.Rows) == 0 {
		return AmortizationRow{}
	}
	return t.Rows[len(t.Rows)-1]
}

// Row returns the row for a 1-based installment number.
func (t AmortizationTable) Row(installment int) (AmortizationRow, bool) {
	if installment < 1 || installment > len(t.Rows) {
		return AmortizationRow{}, false
	}
	return t.Rows[installment-1], true
}

// PaymentRecord is a payment already made against an installment. It may be
// partial, and its principal/interest split may be left empty.
type PaymentRecord struct {
	InstallmentNumber int             `json:"installmentNumber" yaml:"installmentNumber"`
	PaymentAmount     decimal.Decimal `json:"paymentAmount" yaml:"paymentAmount"`
	PrincipalAmount   decimal.Decimal `json:"principalAmount" yaml:"principalAmount"`
	InterestAmount    decimal.Decimal `json:"interestAmount" yaml:"interestAmount"`
}

// BalanceProjection is the state of a loan derived from its payment history.
type BalanceProjection struct {
	CurrentBalance    decimal.Decimal `json:"currentBalance" yaml:"currentBalance"`
	PaidInstallments  int             `json:"paidInstallments" yaml:"paidInstallments"`
	TotalPaid         decimal.Decimal `json:"totalPaid" yaml:"totalPaid"`
	TotalInterestPaid decimal.Decimal `json:"totalInterestPaid" yaml:"totalInterestPaid"`
}

// EarlyPaymentResult previews the effect of an extra payment. InterestSaved is
// not rounded to the cent, so savings below a cent are kept.
type EarlyPaymentResult struct {
	Preference         Preference      `json:"preference" yaml:"preference"`
	OriginalPrincipal  decimal.Decimal `json:"originalPrincipal" yaml:"originalPrincipal"`
	OriginalPayment    decimal.Decimal `json:"originalPayment" yaml:"originalPayment"`
	OriginalTerm       int             `json:"originalTerm" yaml:"originalTerm"`
	EarlyPaymentAmount decimal.Decimal `json:"earlyPaymentAmount" yaml:"earlyPaymentAmount"`
	NewPrincipal       decimal.Decimal `json:"newPrincipal" yaml:"newPrincipal"`
	InterestSaved      decimal.Decimal `json:"interestSaved" yaml:"interestSaved"`
	NewPayment         decimal.Decimal `json:"newPayment" yaml:"newPayment"`
	NewTerm            int             `json:"newTerm" yaml:"newTerm"`
}

var one = decimal.NewFromInt(1)

func validateAmounts(principal, periodicRate decimal.Decimal, termPeriods int) error {
	if !principal.IsPositive() {
		return invalidTerms("principal", principal.String(), "must be positive")
	}
	if termPeriods <= 0 {
		return invalidTerms("term", fmt.Sprintf("%d", termPeriods), "must be at least one period")
	}
	if periodicRate.IsNegative() || periodicRate.GreaterThanOrEqual(one) {
		return invalidTerms("rate", periodicRate.String(), "must be in [0, 1)")
	}
	return nil
}
