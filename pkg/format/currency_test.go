package format

import "testing"

func TestCurrency(t *testing.T) {
	tests := []struct {
		name     string
		amount   float64
		expected string
	}{
		{"Simple amount", 1234.56, "$1,234.56"},
		{"Negative amount", -1234.56, "-$1,234.56"},
		{"No separator needed", 999.99, "$999.99"},
		{"Millions", 1234567.89, "$1,234,567.89"},
		{"Zero", 0, "$0.00"},
		{"Rounds to cents", 1744.805, "$1,744.81"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Currency(tt.amount); got != tt.expected {
				t.Errorf("Currency(%v) = %q, expected %q", tt.amount, got, tt.expected)
			}
		})
	}
}

func TestPercent(t *testing.T) {
	tests := []struct {
		name     string
		value    float64
		expected string
	}{
		{"One decimal", 2.5, "2.5%"},
		{"Rounds", 2.54, "2.5%"},
		{"Negative", -0.4, "-0.4%"},
		{"Zero", 0, "0.0%"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Percent(tt.value); got != tt.expected {
				t.Errorf("Percent(%v) = %q, expected %q", tt.value, got, tt.expected)
			}
		})
	}
}
