package mortgage

import "fmt"

// InvalidParameterError reports a loan parameter that fails validation.
// These are caller mistakes and are never retried.
type InvalidParameterError struct {
	Param string
	Value float64
}

func (e *InvalidParameterError) Error() string {
	return fmt.Sprintf("invalid loan parameter %s: %g", e.Param, e.Value)
}

// NonAmortizingScheduleError reports a schedule whose payment never covers
// the interest accruing each period, so the balance cannot reach zero. It is
// fatal to that frequency only; the remaining frequencies stay computable.
type NonAmortizingScheduleError struct {
	Frequency Frequency
	Payment   float64
	Interest  float64
}

func (e *NonAmortizingScheduleError) Error() string {
	return fmt.Sprintf("%s schedule does not amortize: payment %.2f does not exceed periodic interest %.2f",
		e.Frequency, e.Payment, e.Interest)
}
