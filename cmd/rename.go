package cmd

import (
	"context"
	"flag"
	"fmt"

	"github.com/google/subcommands"
)

type renameCmd struct {
	id   string
	name string
	to   string
}

func (*renameCmd) Name() string     { return "rename" }
func (*renameCmd) Synopsis() string { return "change a customer's name" }
func (*renameCmd) Usage() string {
	return `gbk rename [-id <id>] [-name <name>] -to <new name>

  Renames the designated customer. Their vehicles and invoices follow.
`
}

func (c *renameCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.id, "id", "", "Customer id")
	f.StringVar(&c.name, "name", "", "Exact current customer name")
	f.StringVar(&c.to, "to", "", "New customer name")
}

func (c *renameCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	store := Store()
	b, err := store.LoadBook()
	if err != nil {
		return fail(err)
	}

	customer, err := resolveCustomer(b, c.id, c.name, "")
	if err != nil {
		return fail(err)
	}
	old := customer.Name
	if err := b.Rename(customer.ID, c.to); err != nil {
		return fail(err)
	}
	if err := store.SaveBook(b); err != nil {
		return fail(err)
	}

	fmt.Printf("Renamed %s to %s\n", old, c.to)
	return subcommands.ExitSuccess
}
