package cmd

import (
	"context"
	"flag"
	"fmt"

	"github.com/google/subcommands"
)

type mobileCmd struct {
	id     string
	name   string
	mobile string
}

func (*mobileCmd) Name() string     { return "mobile" }
func (*mobileCmd) Synopsis() string { return "add a mobile number to an existing customer" }
func (*mobileCmd) Usage() string {
	return `gbk mobile [-id <id>] [-name <name>] -number <mobile>

  Adds a mobile number to the designated customer. The first number on
  record stays the customer's primary one.
`
}

func (c *mobileCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.id, "id", "", "Customer id")
	f.StringVar(&c.name, "name", "", "Exact customer name")
	f.StringVar(&c.mobile, "number", "", "Mobile number to add")
}

func (c *mobileCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	store := Store()
	b, err := store.LoadBook()
	if err != nil {
		return fail(err)
	}

	customer, err := resolveCustomer(b, c.id, c.name, "")
	if err != nil {
		return fail(err)
	}
	if err := b.AddMobile(customer.ID, c.mobile); err != nil {
		return fail(err)
	}
	if err := store.SaveBook(b); err != nil {
		return fail(err)
	}

	fmt.Printf("Added %s to %s\n", c.mobile, customer.Name)
	return subcommands.ExitSuccess
}
