package cmd

import (
	"context"
	"flag"
	"fmt"

	"garagebook"
	"garagebook/renderer"

	"github.com/google/subcommands"
)

type showCmd struct{}

func (*showCmd) Name() string     { return "show" }
func (*showCmd) Synopsis() string { return "display a printable invoice" }
func (*showCmd) Usage() string {
	return `gbk show <invoice id>

  Renders the invoice with the workshop's header, ready to hand over.
`
}

func (*showCmd) SetFlags(f *flag.FlagSet) {}

func (c *showCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		return fail(fmt.Errorf("an invoice id is required"))
	}
	id := f.Arg(0)

	store := Store()
	b, err := store.LoadBook()
	if err != nil {
		return fail(err)
	}
	info, err := store.LoadBusinessInfo()
	if err != nil {
		return fail(err)
	}

	for _, ref := range b.AllInvoices() {
		if ref.Invoice.InvoiceID == id {
			printMarkdown(renderer.InvoiceMarkdown(info, ref.CustomerName, &ref.Invoice, ref.Car))
			return subcommands.ExitSuccess
		}
	}
	return fail(fmt.Errorf("invoice %q: %w", id, garagebook.ErrInvoiceNotFound))
}
