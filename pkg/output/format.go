// Package output provides utilities for formatting and displaying loan reports.
package output

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/iwvelando/finance-tracker/internal/report"
	"github.com/iwvelando/finance-tracker/pkg/constants"
	"github.com/iwvelando/finance-tracker/pkg/format"
	"github.com/iwvelando/finance-tracker/pkg/mathutil"
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"gopkg.in/yaml.v3"
)

// Write renders results to w in the given output format.
func Write(w io.Writer, outputFormat string, results []report.LoanReport) error {
	switch outputFormat {
	case constants.OutputFormatPretty:
		PrettyFormat(w, results)
		return nil
	case constants.OutputFormatJSON:
		return JSONFormat(w, results)
	case constants.OutputFormatYAML:
		return YAMLFormat(w, results)
	default:
		return fmt.Errorf("unsupported output format %s", outputFormat)
	}
}

// PrettyFormat outputs a human-readable rather than machine-readable table.
func PrettyFormat(w io.Writer, results []report.LoanReport) {
	p := message.NewPrinter(language.English)
	for i, result := range results {
		terms := result.Terms
		_, _ = fmt.Fprintf(w, "--- Results for loan %s ---\n", result.Name)
		_, _ = fmt.Fprintf(w, "Method: %s | Principal: %s | Rate: %s per period | Term: %d\n",
			terms.Method, format.Currency(terms.Principal), format.Rate(terms.PeriodicRate), terms.TermPeriods)
		_, _ = fmt.Fprintf(w, "Installment: %s | Maturity: %s\n",
			format.Currency(result.Payment), result.MaturityDate.Format(constants.DateLayout))
		_, _ = fmt.Fprintf(w, "#   | Due date   | Payment | Principal | Interest | Balance\n")
		_, _ = fmt.Fprintf(w, "___ | __________ | _______ | _________ | ________ | _______\n")
		for _, row := range result.Table.Rows {
			_, _ = fmt.Fprintf(w, "%3d | %s | ", row.InstallmentNumber, row.DueDate.Format(constants.DateLayout))
			_, _ = p.Fprintf(w, "$%.2f | $%.2f | $%.2f | $%.2f\n",
				money(row.PaymentAmount), money(row.PrincipalAmount), money(row.InterestAmount), money(row.RemainingBalance))
		}

		summary := result.Table.Summary
		_, _ = p.Fprintf(w, "Totals: payments $%.2f | interest $%.2f | principal $%.2f\n",
			money(summary.TotalPayments), money(summary.TotalInterest), money(summary.TotalPrincipal))
		_, _ = p.Fprintf(w, "Interest share: %.2f%% of payments\n",
			money(mathutil.CalculatePercentage(summary.TotalInterest, summary.TotalPayments).Round(2)))

		projection := result.Projection
		_, _ = p.Fprintf(w, "Balance: $%.2f after %d paid installments (paid $%.2f, interest $%.2f)\n",
			money(projection.CurrentBalance), projection.PaidInstallments,
			money(projection.TotalPaid), money(projection.TotalInterestPaid))

		for _, simulation := range result.Simulations {
			sim := simulation.Result
			_, _ = fmt.Fprintf(w, "Early payment %s (%s): %s -> principal %s, installment %s (was %s), term %d (was %d), interest saved %s\n",
				simulation.Name, sim.Preference, format.Currency(sim.EarlyPaymentAmount), format.Currency(sim.NewPrincipal),
				format.Currency(sim.NewPayment), format.Currency(sim.OriginalPayment), sim.NewTerm, sim.OriginalTerm,
				format.Currency(sim.InterestSaved))
		}
		for _, note := range result.Notes {
			_, _ = fmt.Fprintf(w, "Note: %s\n", note)
		}

		if i < len(results)-1 {
			_, _ = fmt.Fprintf(w, "\n")
		}
	}
}

// JSONFormat outputs the reports as an indented JSON array. Amounts are
// encoded as decimal strings.
func JSONFormat(w io.Writer, results []report.LoanReport) error {
	if results == nil {
		results = []report.LoanReport{}
	}
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(results); err != nil {
		return fmt.Errorf("failed to encode reports as json: %w", err)
	}
	return nil
}

// YAMLFormat outputs the reports as a YAML sequence.
func YAMLFormat(w io.Writer, results []report.LoanReport) error {
	if results == nil {
		results = []report.LoanReport{}
	}
	encoder := yaml.NewEncoder(w)
	encoder.SetIndent(2)
	if err := encoder.Encode(results); err != nil {
		return fmt.Errorf("failed to encode reports as yaml: %w", err)
	}
	return encoder.Close()
}

// money converts a cent-rounded amount for the printer. Two-decimal values of
// realistic magnitude survive the conversion exactly.
func money(amount decimal.Decimal) float64 {
	return amount.InexactFloat64()
}
