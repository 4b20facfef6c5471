package cmd

import (
	"context"
	"flag"
	"fmt"
	"strings"

	"garagebook"

	"github.com/google/subcommands"
)

type invoiceCmd struct {
	id   string
	name string
	reg  string

	edit   string
	remove string

	date    string
	mileage string
	items   stringList
	mot     bool

	vat       float64
	motAmount float64
}

func (*invoiceCmd) Name() string     { return "invoice" }
func (*invoiceCmd) Synopsis() string { return "create, edit or remove an invoice" }
func (*invoiceCmd) Usage() string {
	return `gbk invoice -reg <reg> [-id <id>] [-name <name>] [options]

  Composes an invoice against the designated customer's vehicle and saves
  it. With -edit, reopens a saved invoice instead of starting a new one;
  with -rm, removes it.

  Each -item adds a line in the form "qty:description:parts:labour".
  The parts amount is multiplied by the VAT percent once, as it is
  entered; labour never is. Either amount may be left blank. -mot adds
  the standard MOT line at the configured charge, VAT-free.

  -vat and -mot-amount override the global settings for this invoice only.

Usage Examples:
# A service with parts and labour.
$ gbk invoice -reg "AB12 CDE" -date 05/01/2024 -mileage 42000 \
    -item "1:Front brake pads:45.00:80.00" -item "1:Oil and filter:32.50:"

# Reprice a line on a saved invoice.
$ gbk invoice -reg "AB12 CDE" -edit INV-1234 -item "1:Front brake pads:52.00:80.00"
`
}

func (c *invoiceCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.id, "id", "", "Customer id")
	f.StringVar(&c.name, "name", "", "Exact customer name")
	f.StringVar(&c.reg, "reg", "", "Registration of the vehicle being invoiced")
	f.StringVar(&c.edit, "edit", "", "Invoice id to reopen for editing")
	f.StringVar(&c.remove, "rm", "", "Invoice id to remove")
	f.StringVar(&c.date, "date", "", "Invoice date (defaults to today)")
	f.StringVar(&c.mileage, "mileage", "", "Recorded mileage")
	f.Var(&c.items, "item", "Line item \"qty:description:parts:labour\", repeatable")
	f.BoolVar(&c.mot, "mot", false, "Add the standard MOT line")
	f.Float64Var(&c.vat, "vat", 0, "VAT multiplier for this invoice only, e.g. 1.2")
	f.Float64Var(&c.motAmount, "mot-amount", 0, "MOT charge for this invoice only")
}

func (c *invoiceCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	order, err := DateOrder()
	if err != nil {
		return fail(err)
	}
	store := Store()
	b, err := store.LoadBook()
	if err != nil {
		return fail(err)
	}

	customer, err := resolveCustomer(b, c.id, c.name, c.reg)
	if err != nil {
		return fail(err)
	}
	if c.reg == "" {
		return fail(fmt.Errorf("a vehicle -reg is required"))
	}

	if c.remove != "" {
		if err := b.DeleteInvoice(customer.ID, c.reg, c.remove); err != nil {
			return fail(err)
		}
		if err := store.SaveBook(b); err != nil {
			return fail(err)
		}
		fmt.Printf("Removed invoice %s\n", c.remove)
		return subcommands.ExitSuccess
	}

	global, err := store.LoadSettings()
	if err != nil {
		return fail(err)
	}
	session := garagebook.NewSession(global)
	session.SetDateOrder(order)

	if c.vat != 0 || c.motAmount != 0 {
		override := session.Settings()
		if c.vat != 0 {
			override.VATPercent = c.vat
		}
		if c.motAmount != 0 {
			override.MOTAmount = c.motAmount
		}
		if err := session.UseSettings(override); err != nil {
			return fail(err)
		}
	}

	if c.edit != "" {
		err = session.LoadInvoice(customer, c.reg, c.edit)
	} else {
		err = session.Select(customer, c.reg)
	}
	if err != nil {
		return fail(err)
	}

	if c.date != "" {
		d, err := garagebook.ParseDisplayDate(c.date, order)
		if err != nil {
			return fail(err)
		}
		if err := session.SetDate(d); err != nil {
			return fail(err)
		}
	}
	if c.mileage != "" {
		if err := session.SetMileage(c.mileage); err != nil {
			return fail(err)
		}
	}

	for _, item := range c.items {
		if err := addItem(session, item); err != nil {
			return fail(err)
		}
	}
	if c.mot {
		if _, err := session.AddMOTRow(); err != nil {
			return fail(err)
		}
	}

	if err := session.Save(b); err != nil {
		return fail(err)
	}
	if err := store.SaveBook(b); err != nil {
		return fail(err)
	}

	totals := session.Totals()
	fmt.Printf("Saved invoice %s for %s (%s): labour %s, parts %s, total %s\n",
		session.InvoiceID(), customer.Name, session.Reg(),
		totals.TotalLabour, totals.TotalParts, totals.FinalTotal)
	return subcommands.ExitSuccess
}

// addItem parses "qty:description:parts:labour" and appends it as a row.
func addItem(session *garagebook.Session, item string) error {
	fields := strings.Split(item, ":")
	if len(fields) != 4 {
		return fmt.Errorf("item %q: want \"qty:description:parts:labour\"", item)
	}
	i, err := session.AddRow()
	if err != nil {
		return err
	}
	if err := session.SetQty(i, strings.TrimSpace(fields[0])); err != nil {
		return err
	}
	if err := session.SetDescription(i, strings.TrimSpace(fields[1])); err != nil {
		return err
	}
	if err := session.SetParts(i, strings.TrimSpace(fields[2])); err != nil {
		return fmt.Errorf("item %q: %w", item, err)
	}
	if err := session.SetLabour(i, strings.TrimSpace(fields[3])); err != nil {
		return fmt.Errorf("item %q: %w", item, err)
	}
	return nil
}
