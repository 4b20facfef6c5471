package cmd

import (
	"context"
	"flag"

	"garagebook"
	"garagebook/renderer"

	"github.com/google/subcommands"
)

type trendsCmd struct {
	year int
}

func (*trendsCmd) Name() string     { return "trends" }
func (*trendsCmd) Synopsis() string { return "display month-over-month profit trends" }
func (*trendsCmd) Usage() string {
	return `gbk trends [-year <year>]

  Compares each month's profit with the chronologically prior one and
  reports the change, its percentage and the direction.
`
}

func (c *trendsCmd) SetFlags(f *flag.FlagSet) {
	f.IntVar(&c.year, "year", 0, "Restrict the comparison to one year (0 for all)")
}

func (c *trendsCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	order, err := DateOrder()
	if err != nil {
		return fail(err)
	}
	b, err := Store().LoadBook()
	if err != nil {
		return fail(err)
	}

	r := garagebook.NewReport(b, order)
	if c.year != 0 {
		r = r.ByYear(c.year)
	}
	printMarkdown(renderer.TrendsMarkdown(r.Trends()))
	return subcommands.ExitSuccess
}
