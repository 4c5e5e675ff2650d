// Package report writes the assignment's xlsx deliverables using excelize.
package report

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/jimmydeci/FINE3300-2025-A2/internal/cpi"
	"github.com/jimmydeci/FINE3300-2025-A2/internal/mortgage"
	"github.com/jimmydeci/FINE3300-2025-A2/pkg/mathutil"
)

// Sheet names for the Part A workbook.
const (
	paymentsSheet = "Payments"
	chartSheet    = "Balance Chart"
)

// WriteScheduleWorkbook writes one workbook holding the quoted payments, one
// amortization sheet per frequency, and a line chart overlaying the six
// ending-balance series.
func WriteScheduleWorkbook(path string, payments mortgage.PaymentSet, schedules []*mortgage.Schedule) error {
	f := excelize.NewFile()
	defer func() {
		_ = f.Close()
	}()

	if err := f.SetSheetName("Sheet1", paymentsSheet); err != nil {
		return fmt.Errorf("renaming summary sheet: %w", err)
	}
	if err := f.SetSheetRow(paymentsSheet, "A1", &[]interface{}{"Frequency", "Payment"}); err != nil {
		return fmt.Errorf("writing summary header: %w", err)
	}
	for i, freq := range mortgage.Frequencies() {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		row := []interface{}{freq.String(), payments.ForFrequency(freq)}
		if err := f.SetSheetRow(paymentsSheet, cell, &row); err != nil {
			return fmt.Errorf("writing summary row for %s: %w", freq, err)
		}
	}

	var series []excelize.ChartSeries
	for _, schedule := range schedules {
		sheet := schedule.Frequency.String()
		if _, err := f.NewSheet(sheet); err != nil {
			return fmt.Errorf("creating sheet %s: %w", sheet, err)
		}

		header := []interface{}{"Period", "Starting Balance", "Interest", "Payment", "Ending Balance"}
		if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
			return fmt.Errorf("writing header for %s: %w", sheet, err)
		}
		for i, p := range schedule.Periods {
			cell, err := excelize.CoordinatesToCellName(1, i+2)
			if err != nil {
				return err
			}
			row := []interface{}{
				p.Period,
				mathutil.Round(p.StartingBalance),
				mathutil.Round(p.Interest),
				mathutil.Round(p.Payment),
				mathutil.Round(p.EndingBalance),
			}
			if err := f.SetSheetRow(sheet, cell, &row); err != nil {
				return fmt.Errorf("writing period %d for %s: %w", p.Period, sheet, err)
			}
		}

		// The chart legend references this cell for the series name.
		if err := f.SetCellValue(sheet, "G1", sheet); err != nil {
			return fmt.Errorf("writing series name for %s: %w", sheet, err)
		}

		lastRow := len(schedule.Periods) + 1
		series = append(series, excelize.ChartSeries{
			Name:       fmt.Sprintf("'%s'!$G$1", sheet),
			Categories: fmt.Sprintf("'%s'!$A$2:$A$%d", sheet, lastRow),
			Values:     fmt.Sprintf("'%s'!$E$2:$E$%d", sheet, lastRow),
		})
	}

	if _, err := f.NewSheet(chartSheet); err != nil {
		return fmt.Errorf("creating chart sheet: %w", err)
	}
	chart := &excelize.Chart{
		Type:   excelize.Line,
		Series: series,
		Title:  []excelize.RichTextRun{{Text: "Loan Balance Decline (Six Payment Options)"}},
		Legend: excelize.ChartLegend{Position: "right"},
		XAxis:  excelize.ChartAxis{Title: []excelize.RichTextRun{{Text: "Period"}}},
		YAxis:  excelize.ChartAxis{Title: []excelize.RichTextRun{{Text: "Ending Balance ($)"}}},
	}
	if err := f.AddChart(chartSheet, "A1", chart); err != nil {
		return fmt.Errorf("adding balance chart: %w", err)
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("saving workbook %s: %w", path, err)
	}
	return nil
}

// WriteCPIWorkbook writes the combined CPI table and every derived analysis
// to one workbook, one sheet per table.
func WriteCPIWorkbook(path string, table *cpi.Table, preview []cpi.Row,
	changes []cpi.AverageChange, overall []cpi.OverallChange,
	salaries []cpi.EquivalentSalary, ranking []cpi.RealWage,
	services []cpi.ServicesChange) error {

	f := excelize.NewFile()
	defer func() {
		_ = f.Close()
	}()

	if err := f.SetSheetName("Sheet1", "Combined"); err != nil {
		return fmt.Errorf("renaming combined sheet: %w", err)
	}
	if err := writeRowsSheet(f, "Combined", table.Rows); err != nil {
		return err
	}

	if _, err := f.NewSheet("Preview"); err != nil {
		return err
	}
	if err := writeRowsSheet(f, "Preview", preview); err != nil {
		return err
	}

	if err := writeSheet(f, "Average Change", []interface{}{"Jurisdiction", "Item", "Avg Change (%)"},
		len(changes), func(i int) []interface{} {
			return []interface{}{changes[i].Jurisdiction, changes[i].Item, changes[i].Change}
		}); err != nil {
		return err
	}

	if err := writeSheet(f, "Overall Average", []interface{}{"Jurisdiction", "Overall Avg Change (%)"},
		len(overall), func(i int) []interface{} {
			return []interface{}{overall[i].Jurisdiction, mathutil.RoundTenth(overall[i].Average)}
		}); err != nil {
		return err
	}

	if err := writeSheet(f, "Equivalent Salary", []interface{}{"Jurisdiction", "Equivalent Salary"},
		len(salaries), func(i int) []interface{} {
			return []interface{}{salaries[i].Jurisdiction, salaries[i].Salary}
		}); err != nil {
		return err
	}

	if err := writeSheet(f, "Minimum Wages", []interface{}{"Jurisdiction", "Nominal Wage", "Dec All-items CPI", "Real Wage Index"},
		len(ranking), func(i int) []interface{} {
			return []interface{}{ranking[i].Jurisdiction, ranking[i].Wage, ranking[i].CPI, ranking[i].Real}
		}); err != nil {
		return err
	}

	if err := writeSheet(f, "Services Change", []interface{}{"Jurisdiction", "Annual Change (%)"},
		len(services), func(i int) []interface{} {
			return []interface{}{services[i].Jurisdiction, services[i].Change}
		}); err != nil {
		return err
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("saving workbook %s: %w", path, err)
	}
	return nil
}

// writeRowsSheet lays out long-form CPI rows on an existing sheet.
func writeRowsSheet(f *excelize.File, sheet string, rows []cpi.Row) error {
	if err := f.SetSheetRow(sheet, "A1", &[]interface{}{"Item", "Month", "Jurisdiction", "CPI"}); err != nil {
		return fmt.Errorf("writing header for %s: %w", sheet, err)
	}
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		values := []interface{}{row.Item, row.Month, row.Jurisdiction, row.Value}
		if err := f.SetSheetRow(sheet, cell, &values); err != nil {
			return fmt.Errorf("writing row %d for %s: %w", i+1, sheet, err)
		}
	}
	return nil
}

// writeSheet creates a sheet and fills it row by row.
func writeSheet(f *excelize.File, sheet string, header []interface{}, n int, rowAt func(int) []interface{}) error {
	if _, err := f.NewSheet(sheet); err != nil {
		return fmt.Errorf("creating sheet %s: %w", sheet, err)
	}
	if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
		return fmt.Errorf("writing header for %s: %w", sheet, err)
	}
	for i := 0; i < n; i++ {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		row := rowAt(i)
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return fmt.Errorf("writing row %d for %s: %w", i+1, sheet, err)
		}
	}
	return nil
}
