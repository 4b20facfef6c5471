package cmd

import (
	"context"
	"flag"
	"fmt"

	"garagebook"

	"github.com/google/subcommands"
)

type addCmd struct {
	name    string
	address string
	mobile  string
	reg     string
	car     string
}

func (*addCmd) Name() string     { return "add" }
func (*addCmd) Synopsis() string { return "add a new customer to the book" }
func (*addCmd) Usage() string {
	return `gbk add -name <name> -address <address> -mobile <mobile> -reg <reg> -car <car>

  Adds a customer with their first vehicle. All five fields are required.
`
}

func (c *addCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.name, "name", "", "Customer name")
	f.StringVar(&c.address, "address", "", "Customer address")
	f.StringVar(&c.mobile, "mobile", "", "Customer mobile number")
	f.StringVar(&c.reg, "reg", "", "Vehicle registration")
	f.StringVar(&c.car, "car", "", "Vehicle description, e.g. \"Ford Focus\"")
}

func (c *addCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	customer, err := garagebook.NewCustomer(c.name, c.address, c.mobile, c.reg, c.car)
	if err != nil {
		return fail(err)
	}

	store := Store()
	b, err := store.LoadBook()
	if err != nil {
		return fail(err)
	}
	if err := b.Add(customer); err != nil {
		return fail(err)
	}
	if err := store.SaveBook(b); err != nil {
		return fail(err)
	}

	fmt.Printf("Added customer %s (%s)\n", customer.Name, customer.ID)
	return subcommands.ExitSuccess
}
