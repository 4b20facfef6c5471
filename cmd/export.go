package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strconv"
	"time"

	"garagebook"

	"github.com/google/subcommands"
)

type exportCmd struct {
	year int
	out  string
}

func (*exportCmd) Name() string     { return "export" }
func (*exportCmd) Synopsis() string { return "export the analytics report as plain text" }
func (*exportCmd) Usage() string {
	return `gbk export [-year <year>] [-o <file>]

  Writes the monthly analytics report as a plain-text document, suitable
  for printing or mailing. Without -o it goes to stdout.
`
}

func (c *exportCmd) SetFlags(f *flag.FlagSet) {
	f.IntVar(&c.year, "year", 0, "Restrict the report to one year (0 for all)")
	f.StringVar(&c.out, "o", "", "Output file (stdout by default)")
}

func (c *exportCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
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

	report := garagebook.TextReport(r, label, time.Now())
	if c.out == "" {
		fmt.Print(report)
		return subcommands.ExitSuccess
	}
	if err := os.WriteFile(c.out, []byte(report), 0644); err != nil {
		return fail(err)
	}
	fmt.Printf("Wrote %s\n", c.out)
	return subcommands.ExitSuccess
}
