package renderer

import (
	"bytes"
	"fmt"
	"sort"

	"garagebook"

	md "github.com/nao1215/markdown"
)

// InsightsMarkdown renders the aggregate view the assistant works from.
// This is the complete extent of the data the language model ever sees.
func InsightsMarkdown(in *garagebook.Insights) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Workshop Overview")
	doc.Table(md.TableSet{
		Alignment: []md.TableAlignment{md.AlignLeft, md.AlignRight},
		Header:    []string{"", ""},
		Rows: [][]string{
			{"Customers", fmt.Sprintf("%d", in.TotalCustomers)},
			{"Invoices", fmt.Sprintf("%d", in.TotalInvoices)},
			{"Revenue", in.TotalRevenue.String()},
			{"Average Invoice", in.AverageInvoice.String()},
		},
	})

	if len(in.ServiceTypes) > 0 {
		doc.H2("Service Types")
		doc.Table(countTable(in.ServiceTypes))
	}
	if len(in.CarBrands) > 0 {
		doc.H2("Car Makes")
		doc.Table(countTable(in.CarBrands))
	}

	if len(in.TopCustomers) > 0 {
		doc.H2("Top Customers")
		table := md.TableSet{
			Alignment: []md.TableAlignment{md.AlignLeft, md.AlignRight, md.AlignRight, md.AlignRight},
			Header:    []string{"Name", "Cars", "Invoices", "Revenue"},
		}
		for _, c := range in.TopCustomers {
			table.Rows = append(table.Rows, []string{
				c.Name,
				fmt.Sprintf("%d", c.CarCount),
				fmt.Sprintf("%d", c.InvoiceCount),
				c.Revenue.String(),
			})
		}
		doc.Table(table)
	}

	if len(in.RecentInvoices) > 0 {
		doc.H2("Recent Invoices")
		table := md.TableSet{
			Alignment: []md.TableAlignment{md.AlignLeft, md.AlignLeft, md.AlignLeft, md.AlignLeft, md.AlignRight},
			Header:    []string{"Date", "Customer", "Car", "Reg", "Total"},
		}
		for _, inv := range in.RecentInvoices {
			table.Rows = append(table.Rows, []string{
				inv.Date, inv.Customer, inv.Car, inv.Reg, inv.Total.String(),
			})
		}
		doc.Table(table)
	}

	return doc.String()
}

// countTable renders a label->count map as a table in stable order.
func countTable(counts map[string]int) md.TableSet {
	labels := make([]string, 0, len(counts))
	for label := range counts {
		labels = append(labels, label)
	}
	sort.Slice(labels, func(i, j int) bool {
		if counts[labels[i]] != counts[labels[j]] {
			return counts[labels[i]] > counts[labels[j]]
		}
		return labels[i] < labels[j]
	})

	table := md.TableSet{
		Alignment: []md.TableAlignment{md.AlignLeft, md.AlignRight},
		Header:    []string{"Type", "Count"},
	}
	for _, label := range labels {
		table.Rows = append(table.Rows, []string{label, fmt.Sprintf("%d", counts[label])})
	}
	return table
}
