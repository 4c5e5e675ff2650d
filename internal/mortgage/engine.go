// Package mortgage implements Canadian mortgage payment quotes and
// amortization schedules for the six standard payment frequencies. Quoted
// rates are annual nominal rates compounded semi-annually, per Canadian
// mortgage convention.
package mortgage

import (
	"fmt"
	"math"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/jimmydeci/FINE3300-2025-A2/pkg/constants"
	"github.com/jimmydeci/FINE3300-2025-A2/pkg/mathutil"
)

// LoanParameters holds the loan inputs. Immutable once supplied.
type LoanParameters struct {
	Principal         float64 // amount borrowed, in dollars
	QuotedRate        float64 // annual nominal rate in percent, compounded semi-annually
	AmortizationYears int
}

// Validate checks the parameters and returns an *InvalidParameterError for
// the first one that is out of range.
func (p LoanParameters) Validate() error {
	if p.Principal <= 0 {
		return &InvalidParameterError{Param: "principal", Value: p.Principal}
	}
	if p.QuotedRate < 0 {
		return &InvalidParameterError{Param: "quotedRate", Value: p.QuotedRate}
	}
	if p.AmortizationYears <= 0 {
		return &InvalidParameterError{Param: "amortizationYears", Value: float64(p.AmortizationYears)}
	}
	return nil
}

// PaymentSet holds the six quoted payments, rounded to the cent.
type PaymentSet struct {
	Monthly             float64
	SemiMonthly         float64
	BiWeekly            float64
	Weekly              float64
	AcceleratedBiWeekly float64
	AcceleratedWeekly   float64
}

// ForFrequency returns the quoted payment for the given frequency.
func (ps PaymentSet) ForFrequency(f Frequency) float64 {
	switch f {
	case Monthly:
		return ps.Monthly
	case SemiMonthly:
		return ps.SemiMonthly
	case BiWeekly:
		return ps.BiWeekly
	case Weekly:
		return ps.Weekly
	case AcceleratedBiWeekly:
		return ps.AcceleratedBiWeekly
	case AcceleratedWeekly:
		return ps.AcceleratedWeekly
	}
	return 0
}

// PeriodRecord holds the values for a single payment period.
type PeriodRecord struct {
	Period          int
	StartingBalance float64
	Interest        float64
	Principal       float64
	Payment         float64
	EndingBalance   float64
}

// Schedule is the ordered amortization schedule for one payment frequency.
// Values are kept at full precision; rounding happens at output.
type Schedule struct {
	Frequency Frequency
	Payment   float64 // scheduled constant payment; the final period may pay less
	Periods   []PeriodRecord
}

// TotalInterest returns the interest paid across the whole schedule.
func (s *Schedule) TotalInterest() float64 {
	total := 0.0
	for _, p := range s.Periods {
		total += p.Interest
	}
	return total
}

// TotalPrincipal returns the principal repaid across the whole schedule.
func (s *Schedule) TotalPrincipal() float64 {
	total := 0.0
	for _, p := range s.Periods {
		total += p.Principal
	}
	return total
}

// OutstandingAfterYears returns the balance remaining after the given number
// of whole years of payments, e.g. at the end of a 5-year term on a 25-year
// amortization.
func (s *Schedule) OutstandingAfterYears(years int) float64 {
	periods := years * s.Frequency.PeriodsPerYear()
	if periods <= 0 {
		return s.Periods[0].StartingBalance
	}
	if periods >= len(s.Periods) {
		return 0
	}
	return s.Periods[periods-1].EndingBalance
}

// EffectiveAnnualRate converts a quoted semi-annually compounded rate (in
// percent) to the effective annual rate (as a decimal fraction).
func EffectiveAnnualRate(quotedRate float64) float64 {
	j := quotedRate / constants.PercentageMultiplier
	return math.Pow(1+j/constants.SemiAnnualCompounding, constants.SemiAnnualCompounding) - 1
}

// PeriodicRate converts a quoted rate to the equivalent rate for one payment
// period at the given payment frequency.
func PeriodicRate(quotedRate float64, periodsPerYear int) float64 {
	ear := EffectiveAnnualRate(quotedRate)
	return math.Pow(1+ear, 1/float64(periodsPerYear)) - 1
}

// AnnuityPayment returns the level payment that amortizes principal over
// periods payments at the given periodic rate.
func AnnuityPayment(principal, periodicRate float64, periods int) float64 {
	if periodicRate == 0 {
		return principal / float64(periods)
	}
	return principal * periodicRate / (1 - math.Pow(1+periodicRate, -float64(periods)))
}

// roundCents snaps a dollar value to the cent for quoting.
func roundCents(v float64) float64 {
	f, _ := decimal.NewFromFloat(v).Round(2).Float64()
	return f
}

// Engine computes payment quotes and amortization schedules.
type Engine struct {
	logger *zap.Logger
}

// NewEngine creates an Engine. A nil logger is replaced with a no-op logger.
func NewEngine(logger *zap.Logger) *Engine {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Engine{logger: logger}
}

// Payments computes the six quoted payments for the loan. The accelerated
// bi-weekly and weekly payments are half and a quarter of the monthly
// payment respectively.
func (e *Engine) Payments(params LoanParameters) (PaymentSet, error) {
	if err := params.Validate(); err != nil {
		return PaymentSet{}, err
	}

	monthly := e.basePayment(params, Monthly)
	set := PaymentSet{
		Monthly:             roundCents(monthly),
		SemiMonthly:         roundCents(e.basePayment(params, SemiMonthly)),
		BiWeekly:            roundCents(e.basePayment(params, BiWeekly)),
		Weekly:              roundCents(e.basePayment(params, Weekly)),
		AcceleratedBiWeekly: roundCents(monthly / frequencyTable[AcceleratedBiWeekly].monthlyDivisor),
		AcceleratedWeekly:   roundCents(monthly / frequencyTable[AcceleratedWeekly].monthlyDivisor),
	}

	e.logger.Debug("computed payment quotes",
		zap.String("op", "mortgage.Payments"),
		zap.Float64("principal", params.Principal),
		zap.Float64("quotedRate", params.QuotedRate),
		zap.Int("amortizationYears", params.AmortizationYears),
		zap.Float64("monthly", set.Monthly),
	)
	return set, nil
}

// basePayment computes the unrounded annuity payment for a base frequency.
func (e *Engine) basePayment(params LoanParameters, freq Frequency) float64 {
	p := freq.PeriodsPerYear()
	r := PeriodicRate(params.QuotedRate, p)
	n := params.AmortizationYears * p
	return AnnuityPayment(params.Principal, r, n)
}

// scheduledPayment returns the cent-rounded payment actually charged each
// period under the given frequency.
func (e *Engine) scheduledPayment(params LoanParameters, freq Frequency) float64 {
	if freq.Accelerated() {
		return roundCents(e.basePayment(params, Monthly) / frequencyTable[freq].monthlyDivisor)
	}
	return roundCents(e.basePayment(params, freq))
}

// GenerateSchedule builds the full amortization schedule for one frequency.
func (e *Engine) GenerateSchedule(params LoanParameters, freq Frequency) (*Schedule, error) {
	if err := params.Validate(); err != nil {
		return nil, err
	}

	periodsPerYear := freq.PeriodsPerYear()
	periodicRate := PeriodicRate(params.QuotedRate, periodsPerYear)
	payment := e.scheduledPayment(params, freq)

	// Matches the assignment's loop bound of the nominal period count plus
	// slack for rounding on the final payment.
	maxPeriods := params.AmortizationYears*periodsPerYear + 2

	schedule, err := e.amortize(freq, params.Principal, periodicRate, payment, maxPeriods)
	if err != nil {
		return nil, err
	}

	e.logger.Debug("generated amortization schedule",
		zap.String("op", "mortgage.GenerateSchedule"),
		zap.String("frequency", freq.String()),
		zap.Float64("payment", payment),
		zap.Int("periods", len(schedule.Periods)),
	)
	return schedule, nil
}

// amortize runs the balance recurrence until the loan is repaid.
func (e *Engine) amortize(freq Frequency, principal, periodicRate, payment float64, maxPeriods int) (*Schedule, error) {
	if periodicRate > 0 && payment <= principal*periodicRate {
		return nil, &NonAmortizingScheduleError{
			Frequency: freq,
			Payment:   payment,
			Interest:  principal * periodicRate,
		}
	}

	schedule := &Schedule{Frequency: freq, Payment: payment}
	balance := principal
	for period := 1; balance > constants.BalanceEpsilon; period++ {
		if period > maxPeriods {
			return nil, &NonAmortizingScheduleError{
				Frequency: freq,
				Payment:   payment,
				Interest:  balance * periodicRate,
			}
		}

		interest := balance * periodicRate
		principalPortion := payment - interest
		effectivePayment := payment
		// Clip the final period so the balance lands exactly on zero rather
		// than overshooting or leaving a sub-cent residue.
		if principalPortion >= balance || mathutil.Round(balance-principalPortion) == 0 {
			principalPortion = balance
			effectivePayment = interest + principalPortion
		}

		schedule.Periods = append(schedule.Periods, PeriodRecord{
			Period:          period,
			StartingBalance: balance,
			Interest:        interest,
			Principal:       principalPortion,
			Payment:         effectivePayment,
			EndingBalance:   balance - principalPortion,
		})
		balance -= principalPortion
	}
	return schedule, nil
}

// GenerateAll builds schedules for all six frequencies in presentation
// order. A non-amortizing frequency is logged and skipped so the remaining
// frequencies still produce schedules; invalid parameters fail outright.
func (e *Engine) GenerateAll(params LoanParameters) ([]*Schedule, error) {
	if err := params.Validate(); err != nil {
		return nil, err
	}

	schedules := make([]*Schedule, 0, len(Frequencies()))
	for _, freq := range Frequencies() {
		schedule, err := e.GenerateSchedule(params, freq)
		if err != nil {
			if _, ok := err.(*NonAmortizingScheduleError); ok {
				e.logger.Warn("skipping non-amortizing schedule",
					zap.String("op", "mortgage.GenerateAll"),
					zap.String("frequency", freq.String()),
					zap.Error(err),
				)
				continue
			}
			return nil, fmt.Errorf("generating %s schedule: %w", freq, err)
		}
		schedules = append(schedules, schedule)
	}
	return schedules, nil
}
