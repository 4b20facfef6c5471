package cmd

import (
	"context"
	"flag"
	"fmt"
	"strconv"

	"garagebook"
	"garagebook/renderer"

	"github.com/google/subcommands"
)

type monthlyCmd struct {
	year  int
	month string
}

func (*monthlyCmd) Name() string     { return "monthly" }
func (*monthlyCmd) Synopsis() string { return "display the monthly profit breakdown" }
func (*monthlyCmd) Usage() string {
	return `gbk monthly [-year <year>] [-month <YYYY-MM>]

  Groups every dated invoice by calendar month, most recent first, with
  labour, parts and final totals per month and a grand summary. With
  -month, drills into one month's invoices. Invoices whose date does not
  parse are left out.
`
}

func (c *monthlyCmd) SetFlags(f *flag.FlagSet) {
	f.IntVar(&c.year, "year", 0, "Restrict the breakdown to one year (0 for all)")
	f.StringVar(&c.month, "month", "", "Show one month in detail, e.g. 2024-01")
}

func (c *monthlyCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	order, err := DateOrder()
	if err != nil {
		return fail(err)
	}
	b, err := Store().LoadBook()
	if err != nil {
		return fail(err)
	}

	r := garagebook.NewReport(b, order)
	label := "All Time"
	if c.year != 0 {
		r = r.ByYear(c.year)
		label = strconv.Itoa(c.year)
	}

	if c.month != "" {
		for i := range r.MonthlyBreakdown {
			g := &r.MonthlyBreakdown[i]
			if fmt.Sprintf("%04d-%02d", g.Year, int(g.Month)) == c.month {
				printMarkdown(renderer.MonthDetailMarkdown(g))
				return subcommands.ExitSuccess
			}
		}
		return fail(fmt.Errorf("no invoices in %s", c.month))
	}

	printMarkdown(renderer.MonthlyMarkdown(r, label))
	return subcommands.ExitSuccess
}
