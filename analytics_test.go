package garagebook

import (
	"strings"
	"testing"
	"time"
)

func analyticsBook(t *testing.T) *Book {
	t.Helper()
	b := testBook(t)
	seed := []struct {
		customer, reg, id, date string
		labour, parts           float64
	}{
		{"cust-smith", "AB12 CDE", "INV-1", "05/01/2024", 80, 20},
		{"cust-smith", "XY99 ZZZ", "INV-2", "12/03/2024", 150, 50},
		{"cust-jones", "CD34 EFG", "INV-3", "05/01/2024", 40, 10},
		{"cust-jones", "CD34 EFG", "INV-4", "garbage", 999, 999}, // excluded everywhere
	}
	for _, s := range seed {
		if err := b.UpsertInvoice(s.customer, s.reg, invoice(s.id, s.date, s.labour, s.parts)); err != nil {
			t.Fatalf("UpsertInvoice(%s): %v", s.id, err)
		}
	}
	return b
}

func TestNewReport_MonthlyGrouping(t *testing.T) {
	r := NewReport(analyticsBook(t), DayFirst)

	if len(r.MonthlyBreakdown) != 2 {
		t.Fatalf("months = %d, want 2", len(r.MonthlyBreakdown))
	}

	// newest first
	march, january := r.MonthlyBreakdown[0], r.MonthlyBreakdown[1]
	if march.Month != time.March || march.Year != 2024 {
		t.Fatalf("first group = %s, want March 2024", march.MonthName)
	}
	if march.InvoiceCount != 1 {
		t.Errorf("March invoices = %d, want 1", march.InvoiceCount)
	}

	// two invoices share 05/01/2024: one group, count 2
	if january.Month != time.January || january.InvoiceCount != 2 {
		t.Errorf("January group = %s count %d, want January count 2", january.MonthName, january.InvoiceCount)
	}
	if want := M(150); !january.FinalTotal.Equal(want) {
		t.Errorf("January total = %s, want %s", january.FinalTotal, want)
	}

	// the invoice with an unparsable date counts nowhere
	if r.Summary.TotalInvoices != 3 {
		t.Errorf("TotalInvoices = %d, want 3", r.Summary.TotalInvoices)
	}
	if want := M(350); !r.Summary.TotalProfit.Equal(want) {
		t.Errorf("TotalProfit = %s, want %s", r.Summary.TotalProfit, want)
	}
}

func TestNewReport_EmptyBook(t *testing.T) {
	r := NewReport(NewBook(), DayFirst)
	if len(r.MonthlyBreakdown) != 0 {
		t.Errorf("breakdown = %d groups, want none", len(r.MonthlyBreakdown))
	}
	s := r.Summary
	if !s.TotalProfit.IsZero() || s.TotalInvoices != 0 || s.MonthsWithData != 0 {
		t.Errorf("summary not all-zero: %+v", s)
	}
	if !s.AverageInvoice.IsZero() {
		t.Errorf("average with zero invoices = %s, want zero", s.AverageInvoice)
	}
	if got := r.Trends(); len(got) != 0 {
		t.Errorf("trends on empty report = %v, want none", got)
	}
}

func TestReport_ByYear(t *testing.T) {
	b := analyticsBook(t)
	if err := b.UpsertInvoice("cust-smith", "AB12 CDE", invoice("INV-5", "20/06/2023", 100, 0)); err != nil {
		t.Fatalf("UpsertInvoice: %v", err)
	}

	r := NewReport(b, DayFirst)
	if got := r.Years(); len(got) != 2 || got[0] != 2024 || got[1] != 2023 {
		t.Fatalf("Years() = %v, want [2024 2023]", got)
	}

	y23 := r.ByYear(2023)
	if len(y23.MonthlyBreakdown) != 1 || y23.Summary.TotalInvoices != 1 {
		t.Fatalf("2023 filter: %d months, %d invoices", len(y23.MonthlyBreakdown), y23.Summary.TotalInvoices)
	}
	if want := M(100); !y23.Summary.TotalProfit.Equal(want) {
		t.Errorf("2023 profit = %s, want %s", y23.Summary.TotalProfit, want)
	}
	// the summary is recomputed over the subset, not inherited
	if want := M(100); !y23.Summary.AverageInvoice.Equal(want) {
		t.Errorf("2023 average = %s, want %s", y23.Summary.AverageInvoice, want)
	}
}

func TestReport_Trends(t *testing.T) {
	r := NewReport(analyticsBook(t), DayFirst)
	trends := r.Trends()
	if len(trends) != 1 {
		t.Fatalf("trends = %d, want 1", len(trends))
	}
	tr := trends[0]
	if tr.Month != "March 2024" {
		t.Errorf("trend month = %q, want March 2024", tr.Month)
	}
	// March 200 vs January 150
	if want := M(50); !tr.Change.Equal(want) {
		t.Errorf("trend change = %s, want %s", tr.Change, want)
	}
	if tr.Direction != "up" {
		t.Errorf("direction = %q, want up", tr.Direction)
	}
	if tr.PercentChange < 33.3 || tr.PercentChange > 33.4 {
		t.Errorf("percent = %v, want about 33.33", tr.PercentChange)
	}
}

func TestTextReport(t *testing.T) {
	r := NewReport(analyticsBook(t), DayFirst)
	text := TextReport(r, "all", time.Date(2024, 4, 1, 12, 0, 0, 0, time.UTC))

	for _, want := range []string{
		"INVOICE ANALYTICS REPORT",
		"All Years",
		"SUMMARY:",
		"Total Invoices: 3",
		"MONTHLY BREAKDOWN:",
		"March 2024:",
		"January 2024:",
		"Report generated on: 01/04/2024 12:00:00",
	} {
		if !strings.Contains(text, want) {
			t.Errorf("report missing %q\n%s", want, text)
		}
	}
}
