// Package renderer builds the markdown views of the garagebook: the
// printable invoice document, the customer book and the analytics reports.
package renderer

import (
	"bytes"
	"fmt"

	"garagebook"

	md "github.com/nao1215/markdown"
)

// InvoiceMarkdown renders the printable invoice document: business header,
// customer and vehicle details, the line-item table and the totals.
func InvoiceMarkdown(info garagebook.BusinessInfo, customerName string, inv *garagebook.Invoice, car string) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	title := info.InvoiceTitle
	if title == "" {
		title = "Invoice"
	}
	doc.H1(title)
	if info.Address != "" || info.Mobile != "" {
		doc.PlainText(fmt.Sprintf("%s, %s", info.Address, info.Mobile))
	}

	doc.H2(fmt.Sprintf("Invoice %s", inv.InvoiceID))
	doc.Table(md.TableSet{
		Header: []string{"", ""},
		Rows: [][]string{
			{md.Bold("Customer"), customerName},
			{md.Bold("Date"), inv.Date},
			{md.Bold("Reg"), inv.Reg},
			{md.Bold("Car"), car},
			{md.Bold("Mileage"), inv.Mileage},
		},
	})

	doc.H2("Work")
	table := md.TableSet{
		Alignment: []md.TableAlignment{
			md.AlignLeft, md.AlignLeft, md.AlignRight, md.AlignRight,
		},
		Header: []string{"Qty", "Description", "Parts", "Labour"},
	}
	for _, row := range inv.TableRows {
		table.Rows = append(table.Rows, []string{
			row.Qty, row.Description, sterling(row.Parts), sterling(row.Labor),
		})
	}
	doc.Table(table)

	doc.H2("Totals")
	doc.Table(md.TableSet{
		Alignment: []md.TableAlignment{md.AlignLeft, md.AlignRight},
		Header:    []string{"", ""},
		Rows: [][]string{
			{"Parts", inv.Totals.TotalParts.String()},
			{"Labour", inv.Totals.TotalLabour.String()},
			{md.Bold("Total"), md.Bold(inv.Totals.FinalTotal.String())},
		},
	})

	return doc.String()
}

// sterling formats a stored amount string for display, leaving blanks blank.
func sterling(amount string) string {
	if amount == "" {
		return ""
	}
	m, err := garagebook.ParseAmount(amount)
	if err != nil {
		return amount
	}
	return m.String()
}
