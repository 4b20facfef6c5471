package cmd

import (
	"context"
	"flag"
	"fmt"

	"github.com/google/subcommands"
)

type businessCmd struct {
	title   string
	mobile  string
	address string
}

func (*businessCmd) Name() string     { return "business" }
func (*businessCmd) Synopsis() string { return "show or change the workshop details on invoices" }
func (*businessCmd) Usage() string {
	return `gbk business [-title <title>] [-mobile <mobile>] [-address <address>]

  Without flags, shows the details printed at the top of every invoice.
  With flags, updates them.
`
}

func (c *businessCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.title, "title", "", "Invoice title, e.g. the workshop name")
	f.StringVar(&c.mobile, "mobile", "", "Workshop contact number")
	f.StringVar(&c.address, "address", "", "Workshop address")
}

func (c *businessCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	store := Store()
	info, err := store.LoadBusinessInfo()
	if err != nil {
		return fail(err)
	}

	if c.title == "" && c.mobile == "" && c.address == "" {
		fmt.Printf("title: %s\nmobile: %s\naddress: %s\n", info.InvoiceTitle, info.Mobile, info.Address)
		return subcommands.ExitSuccess
	}

	if c.title != "" {
		info.InvoiceTitle = c.title
	}
	if c.mobile != "" {
		info.Mobile = c.mobile
	}
	if c.address != "" {
		info.Address = c.address
	}
	if err := store.SaveBusinessInfo(info); err != nil {
		return fail(err)
	}
	fmt.Println("Business details saved.")
	return subcommands.ExitSuccess
}
