package garagebook

import (
	"fmt"
	"strings"
	"time"
)

// TextReport renders the analytics report in the downloadable plain-text
// format: human-readable sections, not meant for round-trip parsing.
// yearLabel is the filter the report was built with, "all" for every year.
func TextReport(r *Report, yearLabel string, generated time.Time) string {
	var b strings.Builder

	b.WriteString("INVOICE ANALYTICS REPORT\n")
	b.WriteString("========================\n")
	if yearLabel != "" && yearLabel != "all" {
		fmt.Fprintf(&b, "Year: %s\n", yearLabel)
	} else {
		b.WriteString("All Years\n")
	}
	b.WriteString("\n")

	s := r.Summary
	b.WriteString("SUMMARY:\n")
	fmt.Fprintf(&b, "Total Profit: %s\n", s.TotalProfit)
	fmt.Fprintf(&b, "Total Parts: %s\n", s.TotalParts)
	fmt.Fprintf(&b, "Total Labour: %s\n", s.TotalLabour)
	fmt.Fprintf(&b, "Total Invoices: %d\n", s.TotalInvoices)
	fmt.Fprintf(&b, "Average Invoice Value: %s\n", s.AverageInvoice)
	fmt.Fprintf(&b, "Average Parts Value: %s\n", s.AverageParts)
	fmt.Fprintf(&b, "Average Labour Value: %s\n", s.AverageLabour)
	fmt.Fprintf(&b, "Months with Data: %d\n\n", s.MonthsWithData)

	b.WriteString("MONTHLY BREAKDOWN:\n")
	b.WriteString("==================\n")
	for _, m := range r.MonthlyBreakdown {
		fmt.Fprintf(&b, "\n%s:\n", m.MonthName)
		fmt.Fprintf(&b, "  Total Profit: %s\n", m.FinalTotal)
		fmt.Fprintf(&b, "  Labour: %s\n", m.TotalLabour)
		fmt.Fprintf(&b, "  Parts: %s\n", m.TotalParts)
		fmt.Fprintf(&b, "  Invoices: %d\n", m.InvoiceCount)
	}

	fmt.Fprintf(&b, "\n\nReport generated on: %s\n", generated.Format("02/01/2006 15:04:05"))
	return b.String()
}
