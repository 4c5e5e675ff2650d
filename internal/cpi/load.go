// Package cpi loads the provincial consumer price index tables published for
// the assignment and computes its comparative statistics. Input files are
// wide-form CSVs, one per jurisdiction, with an Item column followed by
// twelve month columns in either "Jan-24" or "24-Jan" style.
package cpi

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/jimmydeci/FINE3300-2025-A2/pkg/constants"
)

// Row is one long-form observation of a category's index value.
type Row struct {
	Item         string
	Month        string // normalized "Mon-YY" label
	Jurisdiction string
	Value        float64
}

// Wage is one jurisdiction's nominal minimum wage.
type Wage struct {
	Jurisdiction string
	Wage         float64
}

// Table holds the combined long-form CPI data for all jurisdictions.
type Table struct {
	Rows []Row
}

// monthLabels lists the survey months in calendar order.
var monthLabels = []string{
	"Jan-24", "Feb-24", "Mar-24", "Apr-24", "May-24", "Jun-24",
	"Jul-24", "Aug-24", "Sep-24", "Oct-24", "Nov-24", "Dec-24",
}

var monthOrder = func() map[string]int {
	order := make(map[string]int, len(monthLabels))
	for i, label := range monthLabels {
		order[label] = i
	}
	return order
}()

// provinceNames maps the filename codes to jurisdiction names.
var provinceNames = map[string]string{
	"AB":     "Alberta",
	"BC":     "British Columbia",
	"MB":     "Manitoba",
	"NB":     "New Brunswick",
	"NL":     "Newfoundland and Labrador",
	"NS":     "Nova Scotia",
	"ON":     "Ontario",
	"PEI":    "Prince Edward Island",
	"QC":     "Quebec",
	"SK":     "Saskatchewan",
	"Canada": "Canada",
}

// monthColumnPattern accepts both "Jan-24" and "24-Jan" column headers.
var monthColumnPattern = regexp.MustCompile(
	`^(?:(?:Jan|Feb|Mar|Apr|May|Jun|Jul|Aug|Sep|Oct|Nov|Dec)-\d{2}|\d{2}-(?:Jan|Feb|Mar|Apr|May|Jun|Jul|Aug|Sep|Oct|Nov|Dec))$`)

// normalizeMonthLabel returns "Mon-YY" regardless of input style.
func normalizeMonthLabel(col string) string {
	parts := strings.SplitN(col, "-", 2)
	if len(parts) != 2 {
		return col
	}
	if _, ok := monthOrder[parts[0]+"-"+parts[1]]; ok {
		return col
	}
	return parts[1] + "-" + parts[0]
}

// JurisdictionFromFilename maps a file such as "AB.CPI.1810000401.csv" to its
// jurisdiction name. Unknown codes pass through unchanged.
func JurisdictionFromFilename(name string) string {
	code := strings.SplitN(filepath.Base(name), ".", 2)[0]
	if full, ok := provinceNames[code]; ok {
		return full
	}
	return code
}

// Loader reads the assignment's CSV inputs.
type Loader struct {
	logger *zap.Logger
}

// NewLoader creates a Loader. A nil logger is replaced with a no-op logger.
func NewLoader(logger *zap.Logger) *Loader {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Loader{logger: logger}
}

// LoadAll reads every CPI CSV in dir (the minimum-wage file excluded) and
// combines them into one long-form table sorted by jurisdiction, item, and
// calendar month.
func (l *Loader) LoadAll(dir string) (*Table, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("reading CPI data directory %s: %w", dir, err)
	}

	table := &Table{}
	files := 0
	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || !strings.EqualFold(filepath.Ext(name), ".csv") {
			continue
		}
		if strings.Contains(name, "MinimumWages") {
			continue
		}

		jurisdiction := JurisdictionFromFilename(name)
		rows, err := l.readFile(filepath.Join(dir, name), jurisdiction)
		if err != nil {
			return nil, err
		}
		table.Rows = append(table.Rows, rows...)
		files++

		l.logger.Debug("loaded CPI file",
			zap.String("op", "cpi.LoadAll"),
			zap.String("file", name),
			zap.String("jurisdiction", jurisdiction),
			zap.Int("rows", len(rows)),
		)
	}
	if files == 0 {
		return nil, fmt.Errorf("no CPI CSV files found in %s", dir)
	}

	sort.SliceStable(table.Rows, func(i, j int) bool {
		a, b := table.Rows[i], table.Rows[j]
		if a.Jurisdiction != b.Jurisdiction {
			return a.Jurisdiction < b.Jurisdiction
		}
		if a.Item != b.Item {
			return a.Item < b.Item
		}
		return monthOrder[a.Month] < monthOrder[b.Month]
	})
	return table, nil
}

// readFile melts one wide-form CSV into long-form rows.
func (l *Loader) readFile(path, jurisdiction string) ([]Row, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.TrimLeadingSpace = true
	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	if len(records) < 2 {
		return nil, fmt.Errorf("%s: expected a header row and at least one data row", path)
	}

	header := records[0]
	itemIndex := -1
	monthIndex := make(map[int]string) // column index -> normalized label
	for i, col := range header {
		col = strings.TrimSpace(col)
		switch {
		case col == constants.CPIItemColumn:
			itemIndex = i
		case monthColumnPattern.MatchString(col):
			monthIndex[i] = normalizeMonthLabel(col)
		}
	}
	if itemIndex < 0 {
		return nil, fmt.Errorf("%s: no %q column found", path, constants.CPIItemColumn)
	}
	if len(monthIndex) == 0 {
		return nil, fmt.Errorf("%s: no month columns recognized", path)
	}

	var rows []Row
	for _, record := range records[1:] {
		if itemIndex >= len(record) {
			continue
		}
		item := strings.TrimSpace(record[itemIndex])
		if item == "" {
			continue
		}
		for i, label := range monthIndex {
			if i >= len(record) {
				continue
			}
			cell := strings.TrimSpace(record[i])
			if cell == "" {
				continue
			}
			value, err := strconv.ParseFloat(cell, 64)
			if err != nil {
				return nil, fmt.Errorf("%s: item %q month %s: %w", path, item, label, err)
			}
			rows = append(rows, Row{
				Item:         item,
				Month:        label,
				Jurisdiction: jurisdiction,
				Value:        value,
			})
		}
	}
	return rows, nil
}

// LoadMinimumWages reads MinimumWages.csv (Province code, Minimum Wage).
func (l *Loader) LoadMinimumWages(dir string) ([]Wage, error) {
	path := filepath.Join(dir, constants.MinimumWagesFile)
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.TrimLeadingSpace = true
	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	if len(records) < 2 {
		return nil, fmt.Errorf("%s: expected a header row and at least one data row", path)
	}

	provinceIndex, wageIndex := -1, -1
	for i, col := range records[0] {
		switch strings.TrimSpace(col) {
		case "Province":
			provinceIndex = i
		case "Minimum Wage":
			wageIndex = i
		}
	}
	if provinceIndex < 0 || wageIndex < 0 {
		return nil, fmt.Errorf("%s: expected Province and Minimum Wage columns", path)
	}

	var wages []Wage
	for _, record := range records[1:] {
		if provinceIndex >= len(record) || wageIndex >= len(record) {
			continue
		}
		code := strings.TrimSpace(record[provinceIndex])
		if code == "" {
			continue
		}
		value, err := strconv.ParseFloat(strings.TrimSpace(record[wageIndex]), 64)
		if err != nil {
			return nil, fmt.Errorf("%s: province %q: %w", path, code, err)
		}
		jurisdiction := code
		if full, ok := provinceNames[code]; ok && code != "Canada" {
			jurisdiction = full
		}
		wages = append(wages, Wage{Jurisdiction: jurisdiction, Wage: value})
	}
	if len(wages) == 0 {
		return nil, fmt.Errorf("%s: no wage rows found", path)
	}
	return wages, nil
}

// Jurisdictions returns the sorted distinct jurisdictions in the table.
func (t *Table) Jurisdictions() []string {
	seen := make(map[string]bool)
	var out []string
	for _, row := range t.Rows {
		if !seen[row.Jurisdiction] {
			seen[row.Jurisdiction] = true
			out = append(out, row.Jurisdiction)
		}
	}
	sort.Strings(out)
	return out
}

// Series returns the calendar-ordered index values for one jurisdiction and
// item, covering only the months present.
func (t *Table) Series(jurisdiction, item string) []float64 {
	byMonth := make(map[string]float64)
	for _, row := range t.Rows {
		if row.Jurisdiction == jurisdiction && row.Item == item {
			byMonth[row.Month] = row.Value
		}
	}
	var out []float64
	for _, label := range monthLabels {
		if v, ok := byMonth[label]; ok {
			out = append(out, v)
		}
	}
	return out
}

// Value returns the index value for one jurisdiction, item, and month.
func (t *Table) Value(jurisdiction, item, month string) (float64, bool) {
	for _, row := range t.Rows {
		if row.Jurisdiction == jurisdiction && row.Item == item && row.Month == month {
			return row.Value, true
		}
	}
	return 0, false
}

// SortForDisplay orders rows by month label, jurisdiction, then item, the
// order the combined table is presented in.
func (t *Table) SortForDisplay() {
	sort.SliceStable(t.Rows, func(i, j int) bool {
		a, b := t.Rows[i], t.Rows[j]
		if a.Month != b.Month {
			return a.Month < b.Month
		}
		if a.Jurisdiction != b.Jurisdiction {
			return a.Jurisdiction < b.Jurisdiction
		}
		return a.Item < b.Item
	})
}

// Head returns the first n rows of the table.
func (t *Table) Head(n int) []Row {
	if n > len(t.Rows) {
		n = len(t.Rows)
	}
	return t.Rows[:n]
}
