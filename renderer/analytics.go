package renderer

import (
	"bytes"
	"fmt"

	"garagebook"

	md "github.com/nao1215/markdown"
)

// MonthlyMarkdown renders the monthly profit breakdown and its summary.
// yearLabel names the filter the report was built with, "All Years" style.
func MonthlyMarkdown(r *garagebook.Report, yearLabel string) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1(fmt.Sprintf("Monthly Profit Breakdown (%s)", yearLabel))

	s := r.Summary
	doc.Table(md.TableSet{
		Alignment: []md.TableAlignment{md.AlignLeft, md.AlignRight},
		Header:    []string{md.Bold("Total Profit"), md.Bold(s.TotalProfit.String())},
		Rows: [][]string{
			{"Total Parts", s.TotalParts.String()},
			{"Total Labour", s.TotalLabour.String()},
			{"Total Invoices", fmt.Sprintf("%d", s.TotalInvoices)},
			{"Average Invoice", s.AverageInvoice.String()},
			{"Months with Data", fmt.Sprintf("%d", s.MonthsWithData)},
		},
	})

	if len(r.MonthlyBreakdown) == 0 {
		doc.PlainText("No invoice data.")
		return doc.String()
	}

	doc.H2("By Month")
	table := md.TableSet{
		Alignment: []md.TableAlignment{
			md.AlignLeft, md.AlignRight, md.AlignRight, md.AlignRight, md.AlignRight,
		},
		Header: []string{"Month", "Labour", "Parts", "Profit", "Invoices"},
	}
	for _, m := range r.MonthlyBreakdown {
		table.Rows = append(table.Rows, []string{
			m.MonthName,
			m.TotalLabour.String(),
			m.TotalParts.String(),
			m.FinalTotal.String(),
			fmt.Sprintf("%d", m.InvoiceCount),
		})
	}
	doc.Table(table)
	return doc.String()
}

// MonthDetailMarkdown renders the drill-down of one month's invoices.
func MonthDetailMarkdown(m *garagebook.MonthGroup) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1(m.MonthName)
	table := md.TableSet{
		Alignment: []md.TableAlignment{md.AlignLeft, md.AlignLeft, md.AlignLeft, md.AlignRight},
		Header:    []string{"Customer", "Car", "Reg", "Total"},
	}
	for _, ref := range m.Invoices {
		table.Rows = append(table.Rows, []string{
			ref.CustomerName, ref.Car, ref.Reg, ref.Invoice.Totals.FinalTotal.String(),
		})
	}
	doc.Table(table)
	return doc.String()
}

// TrendsMarkdown renders the month-over-month changes.
func TrendsMarkdown(trends []garagebook.Trend) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Profit Trends")
	if len(trends) == 0 {
		doc.PlainText("Not enough data for trend analysis.")
		return doc.String()
	}

	table := md.TableSet{
		Alignment: []md.TableAlignment{md.AlignLeft, md.AlignRight, md.AlignRight, md.AlignLeft},
		Header:    []string{"Month", "Change", "%", "Direction"},
	}
	for _, tr := range trends {
		table.Rows = append(table.Rows, []string{
			tr.Month,
			tr.Change.SignedString(),
			fmt.Sprintf("%+.1f%%", tr.PercentChange),
			tr.Direction,
		})
	}
	doc.Table(table)
	return doc.String()
}
