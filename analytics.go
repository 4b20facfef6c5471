package garagebook

import (
	"sort"
	"time"
)

// MonthGroup is the rollup of all invoices dated within one calendar month.
type MonthGroup struct {
	MonthName   string
	Year        int
	Month       time.Month
	TotalLabour Money
	TotalParts  Money
	FinalTotal  Money
	// InvoiceCount and Invoices support drill-down into the month.
	InvoiceCount int
	Invoices     []InvoiceRef
}

// Summary is the grand-total view over a breakdown.
type Summary struct {
	TotalProfit        Money
	TotalParts         Money
	TotalLabour        Money
	TotalInvoices      int
	AverageInvoice     Money
	AverageParts       Money
	AverageLabour      Money
	MonthsWithData     int
}

// Report is the monthly profit breakdown over the whole book, read-only.
// Months are sorted newest first.
type Report struct {
	MonthlyBreakdown []MonthGroup
	Summary          Summary
}

// Trend is the month-over-month change between a month and the
// chronologically prior one.
type Trend struct {
	Month         string
	Change        Money
	PercentChange float64
	Direction     string // "up", "down" or "stable"
}

// NewReport walks the book and groups every invoice by calendar month.
// Invoices whose date cannot be parsed are excluded entirely, from the
// breakdown and from the grand totals alike. An empty book produces an
// all-zero summary and an empty breakdown.
func NewReport(b *Book, order DateOrder) *Report {
	groups := make(map[string]*MonthGroup)
	var summary Summary

	for _, ref := range b.AllInvoices() {
		d, err := ParseDisplayDate(ref.Invoice.Date, order)
		if err != nil {
			continue
		}

		key := d.MonthKey()
		g, ok := groups[key]
		if !ok {
			g = &MonthGroup{MonthName: d.MonthName(), Year: d.Year(), Month: d.Month()}
			groups[key] = g
		}
		g.TotalLabour = g.TotalLabour.Add(ref.Invoice.Totals.TotalLabour)
		g.TotalParts = g.TotalParts.Add(ref.Invoice.Totals.TotalParts)
		g.FinalTotal = g.FinalTotal.Add(ref.Invoice.Totals.FinalTotal)
		g.InvoiceCount++
		g.Invoices = append(g.Invoices, ref)

		summary.TotalProfit = summary.TotalProfit.Add(ref.Invoice.Totals.FinalTotal)
		summary.TotalInvoices++
	}

	months := make([]MonthGroup, 0, len(groups))
	for _, g := range groups {
		months = append(months, *g)
	}
	sort.Slice(months, func(i, j int) bool {
		if months[i].Year != months[j].Year {
			return months[i].Year > months[j].Year
		}
		return months[i].Month > months[j].Month
	})

	for i := range months {
		summary.TotalParts = summary.TotalParts.Add(months[i].TotalParts)
		summary.TotalLabour = summary.TotalLabour.Add(months[i].TotalLabour)
	}
	finishSummary(&summary, len(months))

	return &Report{MonthlyBreakdown: months, Summary: summary}
}

// ByYear returns the breakdown restricted to a single year, with the summary
// recomputed over the filtered subset only.
func (r *Report) ByYear(year int) *Report {
	var months []MonthGroup
	var summary Summary
	for _, g := range r.MonthlyBreakdown {
		if g.Year != year {
			continue
		}
		months = append(months, g)
		summary.TotalProfit = summary.TotalProfit.Add(g.FinalTotal)
		summary.TotalParts = summary.TotalParts.Add(g.TotalParts)
		summary.TotalLabour = summary.TotalLabour.Add(g.TotalLabour)
		summary.TotalInvoices += g.InvoiceCount
	}
	finishSummary(&summary, len(months))
	return &Report{MonthlyBreakdown: months, Summary: summary}
}

func finishSummary(s *Summary, monthsWithData int) {
	s.MonthsWithData = monthsWithData
	if s.TotalInvoices > 0 {
		s.AverageInvoice = s.TotalProfit.DivCount(s.TotalInvoices)
		s.AverageParts = s.TotalParts.DivCount(s.TotalInvoices)
		s.AverageLabour = s.TotalLabour.DivCount(s.TotalInvoices)
	}
}

// Years returns the distinct years present in the breakdown, newest first.
func (r *Report) Years() []int {
	seen := make(map[int]bool)
	var years []int
	for _, g := range r.MonthlyBreakdown {
		if !seen[g.Year] {
			seen[g.Year] = true
			years = append(years, g.Year)
		}
	}
	sort.Sort(sort.Reverse(sort.IntSlice(years)))
	return years
}

// Trends compares each month with the chronologically prior one in the
// breakdown. The percentage is relative to the prior month and reported as
// zero when that month had no profit.
func (r *Report) Trends() []Trend {
	months := r.MonthlyBreakdown
	var trends []Trend
	for i := 0; i+1 < len(months); i++ {
		current, previous := months[i], months[i+1]
		change := current.FinalTotal.Sub(previous.FinalTotal)

		pct := 0.0
		if previous.FinalTotal.IsPositive() {
			pct = change.Ratio(previous.FinalTotal) * 100
		}

		direction := "stable"
		if change.IsPositive() {
			direction = "up"
		} else if change.IsNegative() {
			direction = "down"
		}

		trends = append(trends, Trend{
			Month:         current.MonthName,
			Change:        change,
			PercentChange: pct,
			Direction:     direction,
		})
	}
	return trends
}
