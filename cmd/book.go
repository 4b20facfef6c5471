package cmd

import (
	"context"
	"flag"

	"garagebook"
	"garagebook/renderer"

	"github.com/google/subcommands"
)

type bookCmd struct {
	year int
}

func (*bookCmd) Name() string     { return "book" }
func (*bookCmd) Synopsis() string { return "list the customer book" }
func (*bookCmd) Usage() string {
	return `gbk book [-year <year>] [<customer name>]

  Without an argument, lists every customer with their vehicles and
  invoice counts. With a name, shows that customer in full: vehicles,
  mobiles and dated invoice history, optionally restricted to one year.
`
}

func (c *bookCmd) SetFlags(f *flag.FlagSet) {
	f.IntVar(&c.year, "year", 0, "Restrict invoice history to one year (0 for all)")
}

func (c *bookCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	order, err := DateOrder()
	if err != nil {
		return fail(err)
	}
	b, err := Store().LoadBook()
	if err != nil {
		return fail(err)
	}

	if f.NArg() == 0 {
		all := b.Customers()
		customers := make([]*garagebook.Customer, 0, len(all))
		for i := range all {
			customers = append(customers, &all[i])
		}
		printMarkdown(renderer.BookMarkdown(customers))
		return subcommands.ExitSuccess
	}

	customer, err := resolveCustomer(b, "", f.Arg(0), "")
	if err != nil {
		return fail(err)
	}
	printMarkdown(renderer.CustomerMarkdown(customer, order, c.year))
	return subcommands.ExitSuccess
}
