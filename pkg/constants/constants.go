// Package constants provides shared constants for the finance-tracker application.
package constants

// DateLayout is the format expected for dates in config files and is also the
// output date format.
const DateLayout = "2006-01-02"

// Financial constants
const (
	// MonthsPerYear is the number of months in a year
	MonthsPerYear = 12

	// CurrencyPlaces is the number of decimal places money is rounded to
	CurrencyPlaces = 2

	// ExactPlaces is the number of decimal places unrounded amounts keep
	ExactPlaces = 16

	// PercentageMultiplier is used for percentage conversions
	PercentageMultiplier = 100.0
)

// CurrencyTolerance is the tolerance for currency comparisons (1 cent).
const CurrencyTolerance = "0.01"

// Amortization method identifiers as they appear in configuration.
const (
	// AmortizationSAC is the constant-principal system
	AmortizationSAC = "sac"

	// AmortizationPrice is the constant-installment (French) system
	AmortizationPrice = "price"
)

// Early payment preferences as they appear in configuration.
const (
	// PreferenceShortenTerm keeps the installment and shortens the term
	PreferenceShortenTerm = "shorten_term"

	// PreferenceReducePayment keeps the term and lowers the installment
	PreferenceReducePayment = "reduce_payment"
)

// Output format constants
const (
	// OutputFormatPretty is the human-readable output format
	OutputFormatPretty = "pretty"

	// OutputFormatJSON is the JSON output format
	OutputFormatJSON = "json"

	// OutputFormatYAML is the YAML output format
	OutputFormatYAML = "yaml"
)

// Configuration file constants
const (
	// DefaultConfigFile is the default configuration file name
	DefaultConfigFile = "config.yaml"

	// ExampleConfigFile is the example configuration shipped at the repository root
	ExampleConfigFile = "config.yaml.example"

	// DefaultEnvFile is the optional dotenv file loaded before the configuration
	DefaultEnvFile = ".env"

	// EnvPrefix is the prefix for environment variable overrides
	EnvPrefix = "FINANCE_TRACKER"
)
