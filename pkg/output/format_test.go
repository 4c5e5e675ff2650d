package output

import (
	"io"
	"os"
	"strings"
	"testing"

	"go.uber.org/zap"

	"github.com/jimmydeci/FINE3300-2025-A2/internal/mortgage"
)

func captureStdout(t *testing.T, fn func()) string {
	t.Helper()

	oldStdout := os.Stdout
	r, w, err := os.Pipe()
	if err != nil {
		t.Fatalf("creating pipe: %v", err)
	}
	os.Stdout = w

	type readResult struct {
		out []byte
		err error
	}
	done := make(chan readResult, 1)
	go func() {
		out, err := io.ReadAll(r)
		done <- readResult{out, err}
	}()

	fn()

	_ = w.Close()
	os.Stdout = oldStdout

	res := <-done
	if res.err != nil {
		t.Fatalf("reading captured output: %v", res.err)
	}
	return string(res.out)
}

func testSchedules(t *testing.T) (mortgage.PaymentSet, []*mortgage.Schedule) {
	t.Helper()

	engine := mortgage.NewEngine(zap.NewNop())
	params := mortgage.LoanParameters{Principal: 100000, QuotedRate: 5.0, AmortizationYears: 10}
	payments, err := engine.Payments(params)
	if err != nil {
		t.Fatalf("Payments() error = %v", err)
	}
	schedules, err := engine.GenerateAll(params)
	if err != nil {
		t.Fatalf("GenerateAll() error = %v", err)
	}
	return payments, schedules
}

func TestValidateFormat(t *testing.T) {
	for _, format := range []string{"pretty", "csv"} {
		if err := ValidateFormat(format); err != nil {
			t.Errorf("ValidateFormat(%q) = %v, expected nil", format, err)
		}
	}
	if err := ValidateFormat("xml"); err == nil {
		t.Error("ValidateFormat(\"xml\") = nil, expected error")
	}
}

func TestPrettyFormat(t *testing.T) {
	payments, schedules := testSchedules(t)

	out := captureStdout(t, func() {
		PrettyFormat(payments, schedules, 5)
	})

	for _, want := range []string{
		"--- Mortgage Payments ---",
		"Monthly",
		"Accelerated weekly",
		"Outstanding balance after 5-year term",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("pretty output missing %q:\n%s", want, out)
		}
	}
}

func TestPrettyFormatWithoutTerm(t *testing.T) {
	payments, schedules := testSchedules(t)

	out := captureStdout(t, func() {
		PrettyFormat(payments, schedules, 0)
	})
	if strings.Contains(out, "Outstanding balance") {
		t.Errorf("pretty output reported a term balance with no term configured:\n%s", out)
	}
}

func TestCsvFormat(t *testing.T) {
	_, schedules := testSchedules(t)

	out := captureStdout(t, func() {
		CsvFormat(schedules)
	})

	lines := strings.Split(strings.TrimSpace(out), "\n")
	wantLines := 1
	for _, s := range schedules {
		wantLines += len(s.Periods)
	}
	if len(lines) != wantLines {
		t.Errorf("csv output has %d lines, expected %d", len(lines), wantLines)
	}
	if lines[0] != "\"frequency\",\"period\",\"starting balance\",\"interest\",\"payment\",\"ending balance\"" {
		t.Errorf("csv header = %q", lines[0])
	}
	if !strings.Contains(lines[1], "\"Monthly\",\"1\",\"100000.00\"") {
		t.Errorf("first csv row = %q", lines[1])
	}
}
