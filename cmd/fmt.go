package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
)

type fmtCmd struct{}

func (*fmtCmd) Name() string { return "fmt" }
func (*fmtCmd) Synopsis() string {
	return "rewrites the customer book into a canonical form"
}
func (*fmtCmd) Usage() string {
	return `gbk fmt

  Reads the whole customer book and writes it back in canonical form:
  indented, stable field order, missing ids assigned, missing sequences
  made explicit.
`
}

func (*fmtCmd) SetFlags(f *flag.FlagSet) {}

func (c *fmtCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	store := Store()
	b, err := store.LoadBook()
	if err != nil {
		return fail(err)
	}
	if err := store.SaveBook(b); err != nil {
		return fail(err)
	}
	fmt.Fprintf(os.Stderr, "Formatted book with %d customers.\n", b.Len())
	return subcommands.ExitSuccess
}
