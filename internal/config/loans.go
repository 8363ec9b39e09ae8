package config

// Loan indicates a loan, its payment history and the early payments to preview.
type Loan struct {
	Name              string
	Principal         float64
	InterestRate      float64 // per-period fraction, e.g. 0.01 for 1% a month
	AnnualRatePercent float64 // e.g. 12 for 12% a year; converted to a monthly rate
	Term              int     // periods
	AmortizationType  string  // sac, price
	StartDate         string
	CurrentBalance    *float64 // optional; nil derives it from Payments, 0 means settled
	Payments          []Payment
	EarlyPayments     []EarlyPayment
}

// Payment holds a payment already made against an installment. Principal and
// Interest may be left unset, in which case the split is derived from the
// theoretical schedule.
type Payment struct {
	Installment int
	Amount      float64
	Principal   float64
	Interest    float64
}

// EarlyPayment is an extra payment whose effect should be previewed.
type EarlyPayment struct {
	Name          string
	Amount        float64
	Preference    string // shorten_term, reduce_payment
	RemainingTerm int    // optional; derived from the paid installments when unset
}
