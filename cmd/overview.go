package cmd

import (
	"context"
	"flag"

	"garagebook"
	"garagebook/renderer"

	"github.com/google/subcommands"
)

type overviewCmd struct{}

func (*overviewCmd) Name() string     { return "overview" }
func (*overviewCmd) Synopsis() string { return "display a business overview of the book" }
func (*overviewCmd) Usage() string {
	return `gbk overview

  Summarises the whole book: counts, revenue, top customers by revenue,
  the mix of service types and car brands, and the most recent invoices.
`
}

func (*overviewCmd) SetFlags(f *flag.FlagSet) {}

func (c *overviewCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	order, err := DateOrder()
	if err != nil {
		return fail(err)
	}
	b, err := Store().LoadBook()
	if err != nil {
		return fail(err)
	}
	printMarkdown(renderer.InsightsMarkdown(garagebook.NewInsights(b, order)))
	return subcommands.ExitSuccess
}
