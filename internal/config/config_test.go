package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("writing config: %v", err)
	}
	return path
}

func TestLoadConfiguration(t *testing.T) {
	path := writeConfig(t, `
mortgage:
  principal: 300000
  quotedRate: 5.0
  amortizationYears: 25
  termYears: 5
  workbookPath: Loan_Payment_Schedules.xlsx
cpi:
  dataDir: ./data
logging:
  level: debug
  format: console
output:
  format: pretty
`)

	conf, err := LoadConfiguration(path)
	if err != nil {
		t.Fatalf("LoadConfiguration() error = %v", err)
	}

	if conf.Mortgage.Principal != 300000 {
		t.Errorf("Principal = %v, expected 300000", conf.Mortgage.Principal)
	}
	if conf.Mortgage.QuotedRate != 5.0 {
		t.Errorf("QuotedRate = %v, expected 5.0", conf.Mortgage.QuotedRate)
	}
	if conf.Mortgage.AmortizationYears != 25 || conf.Mortgage.TermYears != 5 {
		t.Errorf("years = %d/%d, expected 25/5", conf.Mortgage.AmortizationYears, conf.Mortgage.TermYears)
	}
	if conf.Logging.Level != "debug" || conf.Logging.Format != "console" {
		t.Errorf("logging = %+v, expected debug/console", conf.Logging)
	}
	if conf.Output.Format != "pretty" {
		t.Errorf("output format = %q, expected pretty", conf.Output.Format)
	}

	// Assignment defaults.
	if conf.CPI.BaseJurisdiction != "Ontario" {
		t.Errorf("BaseJurisdiction = %q, expected Ontario default", conf.CPI.BaseJurisdiction)
	}
	if conf.CPI.BaseSalary != 100000 {
		t.Errorf("BaseSalary = %v, expected 100000 default", conf.CPI.BaseSalary)
	}
}

func TestLoadConfigurationMissingFile(t *testing.T) {
	if _, err := LoadConfiguration(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Error("LoadConfiguration() with missing file succeeded, expected error")
	}
}

func TestValidateConfiguration(t *testing.T) {
	conf := &Configuration{
		Mortgage: MortgageConfig{
			Principal:         300000,
			QuotedRate:        5.0,
			AmortizationYears: 25,
			TermYears:         30,
		},
		CPI: CPIConfig{DataDir: "/definitely/not/a/real/dir"},
	}

	warnings := conf.ValidateConfiguration()
	if len(warnings) != 2 {
		t.Fatalf("ValidateConfiguration() returned %d warnings, expected 2: %v", len(warnings), warnings)
	}
	if !strings.Contains(warnings[0], "exceeds the amortization period") {
		t.Errorf("first warning = %q", warnings[0])
	}
	if !strings.Contains(warnings[1], "does not exist") {
		t.Errorf("second warning = %q", warnings[1])
	}
}

func TestValidateConfigurationClean(t *testing.T) {
	conf := &Configuration{
		Mortgage: MortgageConfig{Principal: 300000, QuotedRate: 5.0, AmortizationYears: 25, TermYears: 5},
	}
	if warnings := conf.ValidateConfiguration(); len(warnings) != 0 {
		t.Errorf("ValidateConfiguration() = %v, expected no warnings", warnings)
	}
}
