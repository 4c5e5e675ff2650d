// Package config defines the data structures related to configuration and
// includes functions for loading and validating the config.
package config

import (
	"fmt"
	"os"

	"github.com/spf13/viper"

	"github.com/jimmydeci/FINE3300-2025-A2/pkg/constants"
)

// Configuration holds all configuration for both assignment tools.
type Configuration struct {
	Mortgage MortgageConfig `yaml:"mortgage,omitempty"`
	CPI      CPIConfig      `yaml:"cpi,omitempty"`
	Logging  LoggingConfig  `yaml:"logging,omitempty"`
	Output   OutputConfig   `yaml:"output,omitempty"`
}

// MortgageConfig holds the loan inputs for the payment calculator.
type MortgageConfig struct {
	Principal         float64 `yaml:"principal"`
	QuotedRate        float64 `yaml:"quotedRate"`        // annual nominal %, semi-annual compounding
	AmortizationYears int     `yaml:"amortizationYears"` // amortization period
	TermYears         int     `yaml:"termYears,omitempty"`
	WorkbookPath      string  `yaml:"workbookPath,omitempty"` // xlsx output, empty disables
}

// CPIConfig holds the inputs for the CPI analysis.
type CPIConfig struct {
	DataDir          string  `yaml:"dataDir"`
	WorkbookPath     string  `yaml:"workbookPath,omitempty"`
	BaseJurisdiction string  `yaml:"baseJurisdiction,omitempty"`
	BaseSalary       float64 `yaml:"baseSalary,omitempty"`
}

// LoggingConfig holds logging configuration options
type LoggingConfig struct {
	Level      string `yaml:"level,omitempty"`      // debug, info, warn, error
	Format     string `yaml:"format,omitempty"`     // json, console
	OutputFile string `yaml:"outputFile,omitempty"` // optional file output
}

// OutputConfig holds output format configuration options
type OutputConfig struct {
	Format string `yaml:"format,omitempty"` // pretty, csv
}

// LoadConfiguration takes a file path as input and loads the YAML-formatted
// configuration there.
func LoadConfiguration(configPath string) (*Configuration, error) {
	viper.SetConfigFile(configPath)
	viper.AutomaticEnv()

	viper.SetConfigType("yml")

	if err := viper.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("error reading config file, %s", err)
	}

	var configuration Configuration
	err := viper.Unmarshal(&configuration)
	if err != nil {
		return nil, fmt.Errorf("unable to decode into struct, %s", err)
	}

	configuration.applyDefaults()
	return &configuration, nil
}

// applyDefaults fills in the assignment's standard values where the config
// leaves them unset.
func (conf *Configuration) applyDefaults() {
	if conf.CPI.BaseJurisdiction == "" {
		conf.CPI.BaseJurisdiction = constants.DefaultBaseJurisdiction
	}
	if conf.CPI.BaseSalary == 0 {
		conf.CPI.BaseSalary = constants.DefaultBaseSalary
	}
}

// ValidateConfiguration checks for configurations that are suspicious but
// not fatal and returns human-readable warnings.
func (conf *Configuration) ValidateConfiguration() []string {
	var warnings []string

	if conf.Mortgage.TermYears > conf.Mortgage.AmortizationYears {
		warnings = append(warnings, fmt.Sprintf(
			"mortgage term (%d years) exceeds the amortization period (%d years)",
			conf.Mortgage.TermYears, conf.Mortgage.AmortizationYears))
	}
	if conf.Mortgage.QuotedRate > 25 {
		warnings = append(warnings, fmt.Sprintf(
			"quoted rate %.2f%% is unusually high; rates are expected in percent, not as a fraction",
			conf.Mortgage.QuotedRate))
	}
	if conf.CPI.DataDir != "" {
		if info, err := os.Stat(conf.CPI.DataDir); err != nil || !info.IsDir() {
			warnings = append(warnings, fmt.Sprintf(
				"CPI data directory %s does not exist or is not a directory", conf.CPI.DataDir))
		}
	}
	if conf.CPI.BaseSalary < 0 {
		warnings = append(warnings, fmt.Sprintf(
			"CPI base salary %.2f is negative", conf.CPI.BaseSalary))
	}

	return warnings
}
