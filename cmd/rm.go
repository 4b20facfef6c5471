package cmd

import (
	"context"
	"flag"
	"fmt"

	"github.com/google/subcommands"
)

type rmCmd struct {
	id   string
	name string
	reg  string
}

func (*rmCmd) Name() string     { return "rm" }
func (*rmCmd) Synopsis() string { return "remove a customer and all their invoices" }
func (*rmCmd) Usage() string {
	return `gbk rm [-id <id>] [-name <name>] [-reg <reg>]

  Removes the designated customer from the book, together with their
  vehicles and every invoice on them. No other customer is touched.
`
}

func (c *rmCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.id, "id", "", "Customer id")
	f.StringVar(&c.name, "name", "", "Exact customer name")
	f.StringVar(&c.reg, "reg", "", "A registration of one of the customer's vehicles")
}

func (c *rmCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	store := Store()
	b, err := store.LoadBook()
	if err != nil {
		return fail(err)
	}

	customer, err := resolveCustomer(b, c.id, c.name, c.reg)
	if err != nil {
		return fail(err)
	}
	name := customer.Name
	if err := b.DeleteCustomer(customer.ID); err != nil {
		return fail(err)
	}
	if err := store.SaveBook(b); err != nil {
		return fail(err)
	}

	fmt.Printf("Removed customer %s\n", name)
	return subcommands.ExitSuccess
}
