package renderer

import (
	"bytes"
	"fmt"
	"strings"

	"garagebook"

	md "github.com/nao1215/markdown"
)

// BookMarkdown renders the customer book as a table, one row per customer.
func BookMarkdown(customers []*garagebook.Customer) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Customer Book")
	if len(customers) == 0 {
		doc.PlainText("No customers.")
		return doc.String()
	}

	table := md.TableSet{
		Header: []string{"Name", "Mobile", "Cars", "Invoices", "ID"},
	}
	for _, c := range customers {
		regs := make([]string, 0, len(c.Cars))
		for _, car := range c.Cars {
			regs = append(regs, car.Reg)
		}
		table.Rows = append(table.Rows, []string{
			c.Name,
			c.FirstMobile(),
			strings.Join(regs, ", "),
			fmt.Sprintf("%d", c.InvoiceCount()),
			c.ID,
		})
	}
	doc.Table(table)
	return doc.String()
}

// CustomerMarkdown renders one customer's details with per-vehicle invoice
// history, the finder's drill-down view.
func CustomerMarkdown(c *garagebook.Customer, order garagebook.DateOrder, year int) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1(c.Name)
	doc.PlainText(fmt.Sprintf("%s, %s", c.Address, strings.Join(c.Mobiles, ", ")))

	for _, car := range c.Cars {
		doc.H2(fmt.Sprintf("%s (%s)", car.Car, car.Reg))
		invoices, err := garagebook.VehicleInvoices(c, car.Reg, year, order)
		if err != nil || len(invoices) == 0 {
			doc.PlainText("No invoices.")
			continue
		}
		table := md.TableSet{
			Alignment: []md.TableAlignment{md.AlignLeft, md.AlignLeft, md.AlignLeft, md.AlignRight},
			Header:    []string{"Invoice", "Date", "Mileage", "Total"},
		}
		for _, inv := range invoices {
			table.Rows = append(table.Rows, []string{
				inv.InvoiceID, inv.Date, inv.Mileage, inv.Totals.FinalTotal.String(),
			})
		}
		doc.Table(table)
	}
	return doc.String()
}
