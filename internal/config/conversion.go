package config

import (
	"fmt"

	"github.com/iwvelando/finance-tracker/pkg/datetime"
	"github.com/iwvelando/finance-tracker/pkg/loans"
	"github.com/iwvelando/finance-tracker/pkg/mathutil"
	"github.com/iwvelando/finance-tracker/pkg/validation"
	"github.com/shopspring/decimal"
)

// PeriodicRate returns the per-period rate of the loan. AnnualRatePercent,
// when set, takes precedence over InterestRate.
func (loan *Loan) PeriodicRate() decimal.Decimal {
	if loan.AnnualRatePercent != 0 {
		return mathutil.PercentToPeriodicRate(decimal.NewFromFloat(loan.AnnualRatePercent))
	}
	return decimal.NewFromFloat(loan.InterestRate)
}

// ToLoanTerms converts the configured loan into engine terms. The terms are
// not validated here; the engine rejects what it cannot amortize.
func (loan *Loan) ToLoanTerms() (loans.LoanTerms, error) {
	start, err := datetime.ParseDate(loan.StartDate)
	if err != nil {
		return loans.LoanTerms{}, fmt.Errorf("loan %s has an invalid start date %q: %w", loan.Name, loan.StartDate, err)
	}

	return loans.LoanTerms{
		Principal:    decimal.NewFromFloat(loan.Principal),
		PeriodicRate: loan.PeriodicRate(),
		TermPeriods:  loan.Term,
		Method:       loans.Method(loan.AmortizationType),
		StartDate:    start,
	}, nil
}

// PaymentRecords converts the payment history into engine payment records.
func (loan *Loan) PaymentRecords() []loans.PaymentRecord {
	if len(loan.Payments) == 0 {
		return nil
	}

	records := make([]loans.PaymentRecord, 0, len(loan.Payments))
	for _, payment := range loan.Payments {
		records = append(records, loans.PaymentRecord{
			InstallmentNumber: payment.Installment,
			PaymentAmount:     decimal.NewFromFloat(payment.Amount),
			PrincipalAmount:   decimal.NewFromFloat(payment.Principal),
			InterestAmount:    decimal.NewFromFloat(payment.Interest),
		})
	}
	return records
}

// Balance returns the configured current balance, or false when it is unset.
// A configured zero is a settled loan, not a missing value.
func (loan *Loan) Balance() (decimal.Decimal, bool) {
	if loan.CurrentBalance == nil {
		return decimal.Zero, false
	}
	return decimal.NewFromFloat(*loan.CurrentBalance), true
}

func (loan *Loan) validationConfig() validation.LoanConfig {
	balance, ok := loan.Balance()
	if !ok {
		balance = decimal.NewFromFloat(loan.Principal)
	}

	conf := validation.LoanConfig{
		Name:      loan.Name,
		Method:    loan.AmortizationType,
		Principal: decimal.NewFromFloat(loan.Principal),
		Rate:      loan.PeriodicRate(),
		Term:      loan.Term,
		StartDate: loan.StartDate,
		Balance:   balance,
	}
	for _, payment := range loan.Payments {
		conf.Installments = append(conf.Installments, payment.Installment)
	}
	for _, early := range loan.EarlyPayments {
		conf.EarlyPayments = append(conf.EarlyPayments, validation.EarlyPaymentConfig{
			Name:          early.Name,
			Amount:        decimal.NewFromFloat(early.Amount),
			Preference:    early.Preference,
			RemainingTerm: early.RemainingTerm,
		})
	}
	return conf
}
