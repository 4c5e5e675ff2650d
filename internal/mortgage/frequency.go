package mortgage

import (
	"fmt"
	"strings"

	"github.com/jimmydeci/FINE3300-2025-A2/pkg/constants"
)

// Frequency enumerates the six payment cadences offered to the borrower.
type Frequency int

const (
	Monthly Frequency = iota
	SemiMonthly
	BiWeekly
	Weekly
	AcceleratedBiWeekly
	AcceleratedWeekly
)

// frequencyInfo drives dispatch through a lookup table. MonthlyDivisor is
// zero for the base cadences; for accelerated cadences the scheduled payment
// is the monthly payment divided by it.
type frequencyInfo struct {
	name           string
	periodsPerYear int
	monthlyDivisor float64
}

var frequencyTable = [...]frequencyInfo{
	Monthly:             {"Monthly", constants.MonthsPerYear, 0},
	SemiMonthly:         {"Semi-monthly", constants.SemiMonthlyPerYear, 0},
	BiWeekly:            {"Bi-weekly", constants.BiWeeklyPerYear, 0},
	Weekly:              {"Weekly", constants.WeeklyPerYear, 0},
	AcceleratedBiWeekly: {"Accelerated bi-weekly", constants.BiWeeklyPerYear, 2},
	AcceleratedWeekly:   {"Accelerated weekly", constants.WeeklyPerYear, 4},
}

// Frequencies returns all payment frequencies in presentation order.
func Frequencies() []Frequency {
	return []Frequency{Monthly, SemiMonthly, BiWeekly, Weekly, AcceleratedBiWeekly, AcceleratedWeekly}
}

// String returns the human-readable name of the frequency.
func (f Frequency) String() string {
	if f < Monthly || int(f) >= len(frequencyTable) {
		return fmt.Sprintf("Frequency(%d)", int(f))
	}
	return frequencyTable[f].name
}

// PeriodsPerYear returns the number of payments made per year.
func (f Frequency) PeriodsPerYear() int {
	return frequencyTable[f].periodsPerYear
}

// Accelerated reports whether the payment is derived from the monthly
// payment rather than its own annuity.
func (f Frequency) Accelerated() bool {
	return frequencyTable[f].monthlyDivisor > 0
}

// ParseFrequency converts a name such as "bi-weekly" or "accelerated weekly"
// into a Frequency.
func ParseFrequency(s string) (Frequency, error) {
	normalized := strings.ToLower(strings.TrimSpace(s))
	for _, f := range Frequencies() {
		if strings.ToLower(f.String()) == normalized {
			return f, nil
		}
	}
	return Monthly, fmt.Errorf("unknown payment frequency %q", s)
}
