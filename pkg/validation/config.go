// Package validation provides configuration validation utilities.
package validation

import (
	"fmt"

	"github.com/iwvelando/finance-tracker/pkg/constants"
	"github.com/iwvelando/finance-tracker/pkg/datetime"
	"github.com/shopspring/decimal"
)

var one = decimal.NewFromInt(1)

// ValidateLoanTerms checks the business rules a caller applies before handing
// a loan to the engine and returns one warning per violation.
func ValidateLoanTerms(loan LoanConfig) []string {
	var warnings []string

	if loan.Method != constants.AmortizationSAC && loan.Method != constants.AmortizationPrice {
		warnings = append(warnings, fmt.Sprintf("Loan '%s' has unknown amortization type %q (expected %s or %s)",
			loan.Name, loan.Method, constants.AmortizationSAC, constants.AmortizationPrice))
	}
	if !loan.Principal.IsPositive() {
		warnings = append(warnings, fmt.Sprintf("Loan '%s' principal must be positive, got %s",
			loan.Name, loan.Principal))
	}
	if loan.Term <= 0 {
		warnings = append(warnings, fmt.Sprintf("Loan '%s' term must be at least one period, got %d",
			loan.Name, loan.Term))
	}
	if loan.Rate.IsNegative() || loan.Rate.GreaterThanOrEqual(one) {
		warnings = append(warnings, fmt.Sprintf("Loan '%s' periodic rate must be in [0, 1), got %s",
			loan.Name, loan.Rate))
	}
	if _, err := datetime.ParseDate(loan.StartDate); err != nil {
		warnings = append(warnings, fmt.Sprintf("Loan '%s' start date %q is not in %s format",
			loan.Name, loan.StartDate, constants.DateLayout))
	}

	for _, installment := range loan.Installments {
		if installment < 1 || installment > loan.Term {
			warnings = append(warnings, fmt.Sprintf("Loan '%s' payment references installment %d outside 1..%d",
				loan.Name, installment, loan.Term))
		}
	}

	return warnings
}

// ValidateEarlyPayment checks an early payment against the balance it will be
// applied to. The simulator itself accepts any amount and preference.
func ValidateEarlyPayment(loanName string, payment EarlyPaymentConfig, balance decimal.Decimal) []string {
	var warnings []string

	if !payment.Amount.IsPositive() {
		warnings = append(warnings, fmt.Sprintf("Loan '%s' early payment '%s' amount must be positive, got %s",
			loanName, payment.Name, payment.Amount))
	} else if payment.Amount.GreaterThan(balance) {
		warnings = append(warnings, fmt.Sprintf("Loan '%s' early payment '%s' of %s exceeds the balance of %s",
			loanName, payment.Name, payment.Amount.StringFixed(constants.CurrencyPlaces), balance.StringFixed(constants.CurrencyPlaces)))
	}
	if payment.Preference != constants.PreferenceShortenTerm && payment.Preference != constants.PreferenceReducePayment {
		warnings = append(warnings, fmt.Sprintf("Loan '%s' early payment '%s' has unknown preference %q, %s will be used",
			loanName, payment.Name, payment.Preference, constants.PreferenceReducePayment))
	}
	if payment.RemainingTerm < 0 {
		warnings = append(warnings, fmt.Sprintf("Loan '%s' early payment '%s' remaining term must not be negative, got %d",
			loanName, payment.Name, payment.RemainingTerm))
	}

	return warnings
}

// ConfigValidator performs comprehensive configuration validation
type ConfigValidator struct {
	Loans []LoanConfig
}

// LoanConfig is the part of a configured loan the validator inspects. Rate is
// the per-period fraction after any annual percentage conversion.
type LoanConfig struct {
	Name          string
	Method        string
	Principal     decimal.Decimal
	Rate          decimal.Decimal
	Term          int
	StartDate     string
	Balance       decimal.Decimal
	Installments  []int
	EarlyPayments []EarlyPaymentConfig
}

// EarlyPaymentConfig is a configured early payment.
type EarlyPaymentConfig struct {
	Name          string
	Amount        decimal.Decimal
	Preference    string
	RemainingTerm int
}

// ValidateAll validates the entire configuration and returns warnings
func (cv *ConfigValidator) ValidateAll() []string {
	var warnings []string

	seen := make(map[string]bool)
	for _, loan := range cv.Loans {
		if seen[loan.Name] {
			warnings = append(warnings, fmt.Sprintf("Loan name '%s' is used more than once", loan.Name))
		}
		seen[loan.Name] = true

		warnings = append(warnings, ValidateLoanTerms(loan)...)
		for _, payment := range loan.EarlyPayments {
			warnings = append(warnings, ValidateEarlyPayment(loan.Name, payment, loan.Balance)...)
		}
	}

	return warnings
}
