package cpi

import (
	"fmt"
	"sort"

	"github.com/shopspring/decimal"

	"github.com/jimmydeci/FINE3300-2025-A2/pkg/constants"
	"github.com/jimmydeci/FINE3300-2025-A2/pkg/mathutil"
)

// TargetItems are the categories the average-change question asks about.
var TargetItems = []string{
	"Food",
	"Shelter",
	"All-items excluding food and energy",
}

// AverageChange is one jurisdiction and category's average month-over-month
// percentage change.
type AverageChange struct {
	Jurisdiction string
	Item         string
	Change       float64 // percent, one decimal
}

// OverallChange is a jurisdiction's mean across the target categories.
type OverallChange struct {
	Jurisdiction string
	Average      float64
}

// EquivalentSalary is the salary a jurisdiction requires to match the base
// salary's purchasing power.
type EquivalentSalary struct {
	Jurisdiction string
	Salary       float64
}

// RealWage is a jurisdiction's minimum wage adjusted by its headline CPI.
type RealWage struct {
	Jurisdiction string
	Wage         float64
	CPI          float64
	Real         float64
}

// ServicesChange is a jurisdiction's annual change in the Services index.
type ServicesChange struct {
	Jurisdiction string
	Change       float64 // percent, one decimal
}

// AverageMonthOverMonth returns the mean of successive percentage changes in
// the series, rounded to one decimal. Series shorter than two observations
// have no changes to average.
func AverageMonthOverMonth(values []float64) float64 {
	if len(values) < 2 {
		return 0
	}
	sum := 0.0
	for i := 1; i < len(values); i++ {
		sum += mathutil.PercentChange(values[i-1], values[i])
	}
	return mathutil.RoundTenth(sum / float64(len(values)-1))
}

// AverageChangeTable computes the average month-over-month change for every
// jurisdiction and target category present in the table.
func AverageChangeTable(t *Table) []AverageChange {
	var out []AverageChange
	for _, jurisdiction := range t.Jurisdictions() {
		for _, item := range TargetItems {
			series := t.Series(jurisdiction, item)
			if len(series) < 2 {
				continue
			}
			out = append(out, AverageChange{
				Jurisdiction: jurisdiction,
				Item:         item,
				Change:       AverageMonthOverMonth(series),
			})
		}
	}
	return out
}

// OverallAverages reduces an average-change table to one mean per
// jurisdiction.
func OverallAverages(changes []AverageChange) []OverallChange {
	sums := make(map[string]float64)
	counts := make(map[string]int)
	for _, c := range changes {
		sums[c.Jurisdiction] += c.Change
		counts[c.Jurisdiction]++
	}

	var out []OverallChange
	for jurisdiction, sum := range sums {
		out = append(out, OverallChange{
			Jurisdiction: jurisdiction,
			Average:      sum / float64(counts[jurisdiction]),
		})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Jurisdiction < out[j].Jurisdiction })
	return out
}

// HighestAverageChange returns the province (Canada excluded) with the
// highest overall average change across the target categories.
func HighestAverageChange(changes []AverageChange) (OverallChange, bool) {
	var best OverallChange
	found := false
	for _, overall := range OverallAverages(changes) {
		if overall.Jurisdiction == "Canada" {
			continue
		}
		if !found || overall.Average > best.Average {
			best = overall
			found = true
		}
	}
	return best, found
}

// EquivalentSalaries scales baseSalary by each jurisdiction's December
// All-items CPI relative to the base jurisdiction's.
func EquivalentSalaries(t *Table, baseJurisdiction string, baseSalary float64) ([]EquivalentSalary, error) {
	baseCPI, ok := t.Value(baseJurisdiction, constants.AllItems, monthLabels[len(monthLabels)-1])
	if !ok {
		return nil, fmt.Errorf("no December %s CPI for base jurisdiction %s", constants.AllItems, baseJurisdiction)
	}

	var out []EquivalentSalary
	for _, jurisdiction := range t.Jurisdictions() {
		cpi, ok := t.Value(jurisdiction, constants.AllItems, monthLabels[len(monthLabels)-1])
		if !ok {
			continue
		}
		salary, _ := decimal.NewFromFloat(cpi / baseCPI * baseSalary).Round(2).Float64()
		out = append(out, EquivalentSalary{Jurisdiction: jurisdiction, Salary: salary})
	}
	return out, nil
}

// NominalWageExtremes returns the highest and lowest nominal minimum wages.
func NominalWageExtremes(wages []Wage) (highest, lowest Wage) {
	for i, w := range wages {
		if i == 0 || w.Wage > highest.Wage {
			highest = w
		}
		if i == 0 || w.Wage < lowest.Wage {
			lowest = w
		}
	}
	return highest, lowest
}

// RealWageRanking divides each nominal wage by its jurisdiction's December
// All-items CPI and ranks the result in descending order.
func RealWageRanking(wages []Wage, t *Table) ([]RealWage, error) {
	december := monthLabels[len(monthLabels)-1]
	out := make([]RealWage, 0, len(wages))
	for _, w := range wages {
		cpi, ok := t.Value(w.Jurisdiction, constants.AllItems, december)
		if !ok {
			return nil, fmt.Errorf("no December %s CPI for %s", constants.AllItems, w.Jurisdiction)
		}
		out = append(out, RealWage{
			Jurisdiction: w.Jurisdiction,
			Wage:         w.Wage,
			CPI:          cpi,
			Real:         w.Wage / cpi,
		})
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Real > out[j].Real })
	return out, nil
}

// ServicesAnnualChange computes (December - January) / January as a
// percentage of the Services index for every jurisdiction carrying it.
func ServicesAnnualChange(t *Table) []ServicesChange {
	january := monthLabels[0]
	december := monthLabels[len(monthLabels)-1]

	var out []ServicesChange
	for _, jurisdiction := range t.Jurisdictions() {
		jan, okJan := t.Value(jurisdiction, constants.ServicesItem, january)
		dec, okDec := t.Value(jurisdiction, constants.ServicesItem, december)
		if !okJan || !okDec || jan == 0 {
			continue
		}
		out = append(out, ServicesChange{
			Jurisdiction: jurisdiction,
			Change:       mathutil.RoundTenth(mathutil.PercentChange(jan, dec)),
		})
	}
	return out
}

// HighestServicesInflation returns the jurisdiction with the largest annual
// Services change.
func HighestServicesInflation(changes []ServicesChange) (ServicesChange, bool) {
	var best ServicesChange
	found := false
	for _, c := range changes {
		if !found || c.Change > best.Change {
			best = c
			found = true
		}
	}
	return best, found
}
