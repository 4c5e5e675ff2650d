// Package output provides utilities for formatting and displaying results.
package output

import (
	"fmt"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/jimmydeci/FINE3300-2025-A2/internal/mortgage"
	"github.com/jimmydeci/FINE3300-2025-A2/pkg/constants"
)

// ValidateFormat checks if the output format is one of the supported formats.
func ValidateFormat(format string) error {
	if format != constants.OutputFormatPretty && format != constants.OutputFormatCSV {
		return fmt.Errorf("expected output format of %s or %s, got %s",
			constants.OutputFormatPretty, constants.OutputFormatCSV, format)
	}
	return nil
}

// PrettyFormat outputs a human-readable summary of the payment quotes and
// each frequency's schedule. When termYears is positive and a monthly
// schedule is present, the balance outstanding at the end of the term is
// reported as well.
func PrettyFormat(payments mortgage.PaymentSet, schedules []*mortgage.Schedule, termYears int) {
	p := message.NewPrinter(language.English)

	fmt.Printf("--- Mortgage Payments ---\n")
	fmt.Printf("Frequency             | Payment     | Periods | Total Interest\n")
	fmt.Printf("_____________________ | ___________ | _______ | ______________\n")
	for _, schedule := range schedules {
		_, _ = p.Printf("%-21s | $%.2f | %7d | $%.2f\n",
			schedule.Frequency.String(),
			payments.ForFrequency(schedule.Frequency),
			len(schedule.Periods),
			schedule.TotalInterest(),
		)
	}

	if termYears > 0 {
		for _, schedule := range schedules {
			if schedule.Frequency == mortgage.Monthly {
				_, _ = p.Printf("\nOutstanding balance after %d-year term (monthly schedule): $%.2f\n",
					termYears, schedule.OutstandingAfterYears(termYears))
				break
			}
		}
	}
}

// CsvFormat outputs every schedule in comma-separated value format.
func CsvFormat(schedules []*mortgage.Schedule) {
	fmt.Printf("\"frequency\",\"period\",\"starting balance\",\"interest\",\"payment\",\"ending balance\"\n")
	for _, schedule := range schedules {
		for _, p := range schedule.Periods {
			fmt.Printf("\"%s\",\"%d\",\"%.2f\",\"%.2f\",\"%.2f\",\"%.2f\"\n",
				schedule.Frequency, p.Period, p.StartingBalance, p.Interest, p.Payment, p.EndingBalance)
		}
	}
}
