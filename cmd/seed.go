package cmd

import (
	"context"
	"flag"
	"fmt"

	"github.com/google/subcommands"
)

type seedCmd struct{}

func (*seedCmd) Name() string     { return "seed" }
func (*seedCmd) Synopsis() string { return "bootstrap an empty book from a seed file" }
func (*seedCmd) Usage() string {
	return `gbk seed [<file>]

  Loads customers from a JSON seed file into an empty book. A book that
  already has customers is left untouched. The file may hold a plain
  array of customers or wrap it under a "customers" key. Defaults to
  seed.json.
`
}

func (*seedCmd) SetFlags(f *flag.FlagSet) {}

func (c *seedCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	seedPath := "seed.json"
	if f.NArg() > 0 {
		seedPath = f.Arg(0)
	}

	store := Store()
	b, err := store.LoadBook()
	if err != nil {
		return fail(err)
	}
	n, err := store.Bootstrap(b, seedPath)
	if err != nil {
		return fail(err)
	}
	fmt.Printf("Seeded %d customers from %s\n", n, seedPath)
	return subcommands.ExitSuccess
}
