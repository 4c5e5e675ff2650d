// Package constants provides shared constants for the FINE3300 assignment tools.
package constants

// Payment frequency periods per year.
const (
	// MonthsPerYear is the number of monthly payments in a year
	MonthsPerYear = 12

	// SemiMonthlyPerYear is the number of semi-monthly payments in a year
	SemiMonthlyPerYear = 24

	// BiWeeklyPerYear is the number of bi-weekly payments in a year
	BiWeeklyPerYear = 26

	// WeeklyPerYear is the number of weekly payments in a year
	WeeklyPerYear = 52
)

// Financial constants
const (
	// DecimalPrecision is the precision for currency rounding (2 decimal places)
	DecimalPrecision = 100

	// CurrencyTolerance is the tolerance for currency comparisons (1 cent)
	CurrencyTolerance = 0.01

	// BalanceEpsilon is the threshold below which an outstanding balance is
	// considered fully amortized during schedule generation.
	BalanceEpsilon = 1e-6

	// PercentageMultiplier is used for percentage conversions
	PercentageMultiplier = 100.0

	// SemiAnnualCompounding is the compounding frequency of Canadian quoted
	// mortgage rates.
	SemiAnnualCompounding = 2
)

// Output format constants
const (
	// OutputFormatPretty is the human-readable output format
	OutputFormatPretty = "pretty"

	// OutputFormatCSV is the CSV output format
	OutputFormatCSV = "csv"
)

// Configuration file constants
const (
	// DefaultConfigFile is the default configuration file name
	DefaultConfigFile = "config.yaml"

	// ExampleConfigFile is the example configuration file name
	ExampleConfigFile = "config.yaml.example"
)

// CPI data constants
const (
	// MinimumWagesFile is the wage file excluded from CPI index loading
	MinimumWagesFile = "MinimumWages.csv"

	// CPIItemColumn is the header of the item column in the CPI CSV files
	CPIItemColumn = "Item"

	// AllItems is the headline CPI category used for salary and wage adjustment
	AllItems = "All-items"

	// ServicesItem is the category used for the annual inflation question
	ServicesItem = "Services"

	// DefaultBaseJurisdiction anchors the equivalent-salary comparison
	DefaultBaseJurisdiction = "Ontario"

	// DefaultBaseSalary is the salary being converted across jurisdictions
	DefaultBaseSalary = 100000.0

	// PreviewRows is the number of combined rows echoed after loading
	PreviewRows = 12
)
