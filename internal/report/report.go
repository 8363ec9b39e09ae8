// Package report runs the amortization engine for every configured loan and
// collects the results.
package report

import (
	"fmt"
	"time"

	"github.com/iwvelando/finance-tracker/internal/config"
	"github.com/iwvelando/finance-tracker/pkg/loans"
	"github.com/iwvelando/finance-tracker/pkg/mathutil"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// LoanReport holds everything computed for one configured loan.
type LoanReport struct {
	Name         string                   `json:"name" yaml:"name"`
	Terms        loans.LoanTerms          `json:"terms" yaml:"terms"`
	Payment      decimal.Decimal          `json:"payment" yaml:"payment"`
	MaturityDate time.Time                `json:"maturityDate" yaml:"maturityDate"`
	Table        loans.AmortizationTable  `json:"table" yaml:"table"`
	Projection   loans.BalanceProjection  `json:"projection" yaml:"projection"`
	Simulations  []EarlyPaymentSimulation `json:"simulations,omitempty" yaml:"simulations,omitempty"`
	Notes        []string                 `json:"notes,omitempty" yaml:"notes,omitempty"`
}

// EarlyPaymentSimulation is the preview of one configured early payment.
type EarlyPaymentSimulation struct {
	Name   string                   `json:"name" yaml:"name"`
	Result loans.EarlyPaymentResult `json:"result" yaml:"result"`
}

// GetReports computes a LoanReport for every configured loan, in
// configuration order.
func GetReports(logger *zap.Logger, conf config.Configuration) ([]LoanReport, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	results := make([]LoanReport, 0, len(conf.Loans))
	for i := range conf.Loans {
		result, err := GetReport(logger, &conf.Loans[i])
		if err != nil {
			return results, err
		}
		results = append(results, result)
	}

	logger.Debug(fmt.Sprintf("computed %d loan reports", len(results)),
		zap.String("op", "report.GetReports"),
	)
	return results, nil
}

// GetReport computes the report of a single loan: its amortization table, the
// balance reconciled against its payment history and a preview of each early
// payment.
func GetReport(logger *zap.Logger, loan *config.Loan) (LoanReport, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	terms, err := loan.ToLoanTerms()
	if err != nil {
		return LoanReport{}, err
	}

	result := LoanReport{Name: loan.Name, Terms: terms}

	result.Table, err = loans.GenerateFromTerms(terms)
	if err != nil {
		return LoanReport{}, fmt.Errorf("failed to generate amortization table for loan %s: %w", loan.Name, err)
	}
	result.Payment = result.Table.Rows[0].PaymentAmount
	result.MaturityDate = result.Table.Last().DueDate

	logger.Debug(fmt.Sprintf("generated %d installments for loan %s", len(result.Table.Rows), loan.Name),
		zap.String("op", "report.GetReport"),
		zap.String("method", string(terms.Method)),
		zap.String("payment", result.Payment.StringFixed(2)),
		zap.String("totalInterest", result.Table.Summary.TotalInterest.StringFixed(2)),
	)

	result.Projection, err = loans.CalculateUpdatedBalanceFromTerms(terms, loan.PaymentRecords())
	if err != nil {
		return LoanReport{}, fmt.Errorf("failed to reconcile payments for loan %s: %w", loan.Name, err)
	}

	balance := result.Projection.CurrentBalance
	if configured, ok := loan.Balance(); ok {
		if !mathutil.WithinCent(configured, balance) {
			result.Notes = append(result.Notes, fmt.Sprintf("configured balance %s differs from the reconciled balance %s",
				configured.StringFixed(2), balance.StringFixed(2)))
		}
		balance = configured
	}

	for _, early := range loan.EarlyPayments {
		remaining := early.RemainingTerm
		if remaining == 0 {
			remaining = terms.TermPeriods - result.Projection.PaidInstallments
		}

		if !balance.IsPositive() || remaining <= 0 {
			note := fmt.Sprintf("early payment %s skipped because the loan is already paid off", early.Name)
			logger.Warn(note,
				zap.String("op", "report.GetReport"),
				zap.String("loan", loan.Name),
			)
			result.Notes = append(result.Notes, note)
			continue
		}

		simulation, err := loans.SimulateEarlyPayment(balance, terms.PeriodicRate, remaining, terms.Method,
			decimal.NewFromFloat(early.Amount), loans.Preference(early.Preference))
		if err != nil {
			return LoanReport{}, fmt.Errorf("failed to simulate early payment %s for loan %s: %w", early.Name, loan.Name, err)
		}

		logger.Debug(fmt.Sprintf("simulated early payment %s for loan %s", early.Name, loan.Name),
			zap.String("op", "report.GetReport"),
			zap.String("preference", early.Preference),
			zap.Int("newTerm", simulation.NewTerm),
			zap.String("interestSaved", simulation.InterestSaved.StringFixed(2)),
		)
		result.Simulations = append(result.Simulations, EarlyPaymentSimulation{Name: early.Name, Result: simulation})
	}

	return result, nil
}

// Find returns the report with the given loan name.
func Find(reports []LoanReport, name string) (LoanReport, bool) {
	for _, r := range reports {
		if r.Name == name {
			return r, true
		}
	}
	return LoanReport{}, false
}
