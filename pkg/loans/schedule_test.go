package loans

import (
	"testing"
	"time"

	"github.com/iwvelando/finance-tracker/pkg/datetime"
	"github.com/iwvelando/finance-tracker/pkg/testutil"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var scheduleStart = datetime.MustParseTime(datetime.DateLayout, "2025-01-15")

func TestGenerateAmortizationTableSAC(t *testing.T) {
	table, err := GenerateAmortizationTable(testutil.Dec("100000"), testutil.Dec("0.01"), 12, SAC, scheduleStart)
	require.NoError(t, err)
	require.Len(t, table.Rows, 12)

	first := table.Rows[0]
	assert.Equal(t, 1, first.InstallmentNumber)
	testutil.AssertCents(t, "9333.33", first.PaymentAmount, "first payment")
	testutil.AssertCents(t, "8333.33", first.PrincipalAmount, "first principal")
	testutil.AssertCents(t, "1000.00", first.InterestAmount, "first interest")
	testutil.AssertCents(t, "91666.67", first.RemainingBalance, "first balance")

	second := table.Rows[1]
	testutil.AssertCents(t, "916.67", second.InterestAmount, "second interest")
	testutil.AssertCents(t, "9250.00", second.PaymentAmount, "second payment")

	last := table.Last()
	assert.Equal(t, 12, last.InstallmentNumber)
	testutil.AssertCents(t, "8333.37", last.PrincipalAmount, "final principal absorbs rounding")
	testutil.AssertCents(t, "83.33", last.InterestAmount, "final interest")
	testutil.AssertCents(t, "8416.70", last.PaymentAmount, "final payment")
	testutil.AssertCents(t, "0", last.RemainingBalance, "final balance")

	testutil.AssertCents(t, "6500.00", table.Summary.TotalInterest, "total interest")
	testutil.AssertCents(t, "106500.00", table.Summary.TotalPayments, "total payments")
	testutil.AssertCents(t, "100000.00", table.Summary.TotalPrincipal, "total principal")
}

func TestGenerateAmortizationTablePrice(t *testing.T) {
	table, err := GenerateAmortizationTable(testutil.Dec("100000"), testutil.Dec("0.01"), 12, Price, scheduleStart)
	require.NoError(t, err)
	require.Len(t, table.Rows, 12)

	for _, row := range table.Rows[:11] {
		testutil.AssertCents(t, "8884.88", row.PaymentAmount, "regular installment")
	}

	last := table.Last()
	testutil.AssertWithinCent(t, testutil.Dec("8884.88"), last.PaymentAmount, "final installment")
	testutil.AssertCents(t, "8884.87", last.PaymentAmount, "final installment")
	testutil.AssertCents(t, "8796.90", last.PrincipalAmount, "final principal")
	testutil.AssertCents(t, "87.97", last.InterestAmount, "final interest")
	testutil.AssertCents(t, "0", last.RemainingBalance, "final balance")

	testutil.AssertCents(t, "7884.88", table.Rows[0].PrincipalAmount, "first principal")
	testutil.AssertCents(t, "1000.00", table.Rows[0].InterestAmount, "first interest")
	testutil.AssertCents(t, "921.15", table.Rows[1].InterestAmount, "second interest")
	testutil.AssertCents(t, "84151.39", table.Rows[1].RemainingBalance, "second balance")
	testutil.AssertCents(t, "6618.55", table.Summary.TotalInterest, "total interest")
	testutil.AssertCents(t, "106618.55", table.Summary.TotalPayments, "total payments")
	testutil.AssertCents(t, "100000.00", table.Summary.TotalPrincipal, "total principal")
}

func TestPriceInstallmentsStayWithinACent(t *testing.T) {
	tests := []struct {
		name         string
		principal    string
		periodicRate string
		termPeriods  int
	}{
		{"Short loan", "100000", "0.01", 12},
		{"Small loan", "1000", "0.01", 12},
		{"Single period", "1000", "0.02", 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			principal := testutil.Dec(tt.principal)
			rate := testutil.Dec(tt.periodicRate)
			installment, err := CalculatePricePayment(principal, rate, tt.termPeriods)
			require.NoError(t, err)

			table, err := GenerateAmortizationTable(principal, rate, tt.termPeriods, Price, scheduleStart)
			require.NoError(t, err)
			for _, row := range table.Rows {
				testutil.AssertWithinCent(t, installment, row.PaymentAmount, "installment")
			}
		})
	}
}

func TestSACSubCentShare(t *testing.T) {
	table, err := GenerateAmortizationTable(testutil.Dec("0.15"), decimal.Zero, 10, SAC, scheduleStart)
	require.NoError(t, err)
	require.Len(t, table.Rows, 10)

	for _, row := range table.Rows[:9] {
		testutil.AssertCents(t, "0.01", row.PrincipalAmount, "regular principal")
		assert.False(t, row.RemainingBalance.IsNegative(), "installment %d balance %s", row.InstallmentNumber, row.RemainingBalance)
	}
	testutil.AssertCents(t, "0.06", table.Last().PrincipalAmount, "final principal")
	testutil.AssertCents(t, "0", table.Last().RemainingBalance, "final balance")
	testutil.AssertCents(t, "0.15", table.Summary.TotalPrincipal, "total principal")
}

func TestAmortizationTableProperties(t *testing.T) {
	tests := []struct {
		name         string
		principal    string
		periodicRate string
		termPeriods  int
	}{
		{"Short loan", "100000", "0.01", 12},
		{"Car loan", "25000", "0.004", 60},
		{"Odd principal", "12345.67", "0.0123", 37},
		{"Mortgage", "300000", "0.005", 360},
		{"Single period", "1000", "0.02", 1},
		{"Zero interest", "1000", "0", 7},
		{"Sub-cent share", "0.07", "0.001", 9},
	}

	for _, tt := range tests {
		for _, method := range []Method{SAC, Price} {
			t.Run(tt.name+"/"+string(method), func(t *testing.T) {
				principal := testutil.Dec(tt.principal)
				table, err := GenerateAmortizationTable(principal, testutil.Dec(tt.periodicRate), tt.termPeriods, method, scheduleStart)
				require.NoError(t, err)
				require.Len(t, table.Rows, tt.termPeriods)

				assert.True(t, table.Last().RemainingBalance.IsZero(), "final balance should be zero, got %s", table.Last().RemainingBalance)
				assert.True(t, table.Summary.TotalPrincipal.Equal(principal),
					"principal column should add up to %s, got %s", principal, table.Summary.TotalPrincipal)

				totalPayments := decimal.Zero
				for i, row := range table.Rows {
					assert.False(t, row.PrincipalAmount.IsNegative(), "installment %d principal %s", row.InstallmentNumber, row.PrincipalAmount)
					assert.Equal(t, i+1, row.InstallmentNumber)
					assert.True(t, row.PaymentAmount.Equal(row.PrincipalAmount.Add(row.InterestAmount)),
						"installment %d: payment %s != principal %s + interest %s",
						row.InstallmentNumber, row.PaymentAmount, row.PrincipalAmount, row.InterestAmount)
					totalPayments = totalPayments.Add(row.PaymentAmount)

					if i == 0 || i == len(table.Rows)-1 {
						continue
					}
					previous := table.Rows[i-1]
					switch method {
					case SAC:
						assert.True(t, row.PrincipalAmount.Equal(previous.PrincipalAmount),
							"installment %d: SAC principal should be constant", row.InstallmentNumber)
						assert.True(t, row.InterestAmount.LessThanOrEqual(previous.InterestAmount),
							"installment %d: SAC interest should not increase", row.InstallmentNumber)
					case Price:
						testutil.AssertWithinCent(t, previous.PaymentAmount, row.PaymentAmount, "Price installment")
					}
				}
				assert.True(t, totalPayments.Equal(table.Summary.TotalPayments))
			})
		}
	}
}

func TestPricePrincipalStrictlyIncreases(t *testing.T) {
	table, err := GenerateAmortizationTable(testutil.Dec("175000"), testutil.Dec("0.00375"), 360, Price, scheduleStart)
	require.NoError(t, err)

	for i := 1; i < len(table.Rows); i++ {
		assert.True(t, table.Rows[i].PrincipalAmount.GreaterThan(table.Rows[i-1].PrincipalAmount),
			"installment %d principal %s should exceed installment %d principal %s",
			i+1, table.Rows[i].PrincipalAmount, i, table.Rows[i-1].PrincipalAmount)
	}
}

func TestAmortizationTableDueDates(t *testing.T) {
	tests := []struct {
		name      string
		startDate string
		expected  []string
	}{
		{
			name:      "Mid-month start keeps its day",
			startDate: "2025-01-15",
			expected:  []string{"2025-02-15", "2025-03-15", "2025-04-15", "2025-05-15"},
		},
		{
			name:      "Month-end start clamps to shorter months",
			startDate: "2025-01-31",
			expected:  []string{"2025-02-28", "2025-03-31", "2025-04-30", "2025-05-31"},
		},
		{
			name:      "Leap year February",
			startDate: "2023-12-30",
			expected:  []string{"2024-01-30", "2024-02-29", "2024-03-30", "2024-04-30"},
		},
		{
			name:      "Crossing the year",
			startDate: "2025-11-05",
			expected:  []string{"2025-12-05", "2026-01-05", "2026-02-05", "2026-03-05"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			start := datetime.MustParseTime(datetime.DateLayout, tt.startDate)
			table, err := GenerateAmortizationTable(testutil.Dec("4000"), testutil.Dec("0.01"), len(tt.expected), SAC, start)
			require.NoError(t, err)

			for i, row := range table.Rows {
				assert.Equal(t, tt.expected[i], row.DueDate.Format(datetime.DateLayout), "installment %d", row.InstallmentNumber)
			}
		})
	}
}

func TestGenerateAmortizationTableInvalidTerms(t *testing.T) {
	tests := []struct {
		name  string
		terms LoanTerms
		field string
	}{
		{"Zero principal", LoanTerms{Principal: decimal.Zero, PeriodicRate: testutil.Dec("0.01"), TermPeriods: 12, Method: SAC}, "principal"},
		{"Zero term", LoanTerms{Principal: testutil.Dec("1000"), PeriodicRate: testutil.Dec("0.01"), TermPeriods: 0, Method: Price}, "term"},
		{"Rate too high", LoanTerms{Principal: testutil.Dec("1000"), PeriodicRate: testutil.Dec("1.5"), TermPeriods: 12, Method: Price}, "rate"},
		{"Unknown method", LoanTerms{Principal: testutil.Dec("1000"), PeriodicRate: testutil.Dec("0.01"), TermPeriods: 12, Method: "bullet"}, "method"},
		{"Empty method", LoanTerms{Principal: testutil.Dec("1000"), PeriodicRate: testutil.Dec("0.01"), TermPeriods: 12}, "method"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			table, err := GenerateFromTerms(tt.terms)
			var termsErr *InvalidLoanTermsError
			require.ErrorAs(t, err, &termsErr)
			assert.Equal(t, tt.field, termsErr.Field)
			assert.Empty(t, table.Rows)
		})
	}
}

func TestGenerateFromTermsMatchesPositionalCall(t *testing.T) {
	terms := LoanTerms{
		Principal:    testutil.Dec("25000"),
		PeriodicRate: testutil.Dec("0.004"),
		TermPeriods:  60,
		Method:       Price,
		StartDate:    time.Date(2025, time.March, 1, 0, 0, 0, 0, time.UTC),
	}

	fromTerms, err := GenerateFromTerms(terms)
	require.NoError(t, err)
	positional, err := GenerateAmortizationTable(terms.Principal, terms.PeriodicRate, terms.TermPeriods, terms.Method, terms.StartDate)
	require.NoError(t, err)

	assert.Equal(t, positional, fromTerms)
}

func TestAmortizationTableRow(t *testing.T) {
	table, err := GenerateAmortizationTable(testutil.Dec("1200"), testutil.Dec("0.01"), 3, SAC, scheduleStart)
	require.NoError(t, err)

	row, ok := table.Row(2)
	require.True(t, ok)
	assert.Equal(t, 2, row.InstallmentNumber)

	_, ok = table.Row(0)
	assert.False(t, ok)
	_, ok = table.Row(4)
	assert.False(t, ok)

	assert.Equal(t, AmortizationRow{}, AmortizationTable{}.Last())
}
