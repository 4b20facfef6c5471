package cmd

import (
	"context"
	"flag"
	"fmt"
	"strings"

	"garagebook"
	"garagebook/renderer"

	"github.com/google/subcommands"
)

type findCmd struct {
	by   string
	year int
}

func (*findCmd) Name() string     { return "find" }
func (*findCmd) Synopsis() string { return "search the customer book" }
func (*findCmd) Usage() string {
	return `gbk find [-by name|reg|mobile] [-year <year>] <term>

  Searches the book for customers whose chosen field contains the term,
  case-insensitively, and shows each match in full.
`
}

func (c *findCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.by, "by", "name", "Field to search: name, reg or mobile")
	f.IntVar(&c.year, "year", 0, "Restrict invoice history to one year (0 for all)")
}

func (c *findCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	term := strings.TrimSpace(strings.Join(f.Args(), " "))
	if term == "" {
		return fail(fmt.Errorf("a search term is required"))
	}
	by, err := garagebook.ParseSearchBy(c.by)
	if err != nil {
		return fail(err)
	}
	order, err := DateOrder()
	if err != nil {
		return fail(err)
	}

	b, err := Store().LoadBook()
	if err != nil {
		return fail(err)
	}

	matches := b.Search(term, by)
	if len(matches) == 0 {
		fmt.Printf("No customer matches %q.\n", term)
		return subcommands.ExitSuccess
	}
	for _, customer := range matches {
		printMarkdown(renderer.CustomerMarkdown(customer, order, c.year))
	}
	return subcommands.ExitSuccess
}
