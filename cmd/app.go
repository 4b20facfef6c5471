// Package cmd implements the CLI application to manage the workshop's
// customer book.
package cmd

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"garagebook"

	"github.com/charmbracelet/glamour"
	"github.com/google/subcommands"
)

// Commands lists every subcommand. A main package registers them on a
// subcommands.Commander and executes the user-selected one.
var Commands = []subcommands.Command{
	&addCmd{},
	&rmCmd{},
	&vehicleCmd{},
	&mobileCmd{},
	&renameCmd{},
	&bookCmd{},
	&findCmd{},
	&invoiceCmd{},
	&showCmd{},
	&overviewCmd{},
	&monthlyCmd{},
	&trendsCmd{},
	&exportCmd{},
	&settingsCmd{},
	&businessCmd{},
	&seedCmd{},
	&fmtCmd{},
	&assistCmd{},
	&topicCmd{},
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var storePath = flag.String("store", ".", "Path to the folder holding the customer book")
var dateOrderFlag = flag.String("date-order", "day-first", "How to read ambiguous slash dates (day-first, month-first)")

// Store returns the application store.
func Store() *garagebook.Store { return garagebook.NewStore(*storePath) }

// DateOrder returns the configured date order.
func DateOrder() (garagebook.DateOrder, error) {
	return garagebook.ParseDateOrder(*dateOrderFlag)
}

// resolveCustomer finds the one customer designated by id, exact name or
// vehicle reg, in that order of precedence. An ambiguous name or reg is an
// error rather than a guess.
func resolveCustomer(b *garagebook.Book, id, name, reg string) (*garagebook.Customer, error) {
	if id != "" {
		c, ok := b.FindByID(id)
		if !ok {
			return nil, fmt.Errorf("customer id %q: %w", id, garagebook.ErrCustomerNotFound)
		}
		return c, nil
	}
	if name != "" {
		var found *garagebook.Customer
		for _, c := range b.Search(name, garagebook.ByName) {
			if strings.EqualFold(strings.TrimSpace(c.Name), strings.TrimSpace(name)) {
				if found != nil {
					return nil, fmt.Errorf("name %q matches more than one customer, use -id", name)
				}
				found = c
			}
		}
		if found == nil {
			return nil, fmt.Errorf("name %q: %w", name, garagebook.ErrCustomerNotFound)
		}
		return found, nil
	}
	if reg != "" {
		var found *garagebook.Customer
		for _, c := range b.Search(reg, garagebook.ByReg) {
			if c.Vehicle(reg) != nil {
				if found != nil {
					return nil, fmt.Errorf("reg %q matches more than one customer, use -id", reg)
				}
				found = c
			}
		}
		if found == nil {
			return nil, fmt.Errorf("reg %q: %w", reg, garagebook.ErrCustomerNotFound)
		}
		return found, nil
	}
	return nil, fmt.Errorf("identify the customer with -id, -name or -reg")
}

// printMarkdown renders markdown in the terminal.
func printMarkdown(md string) {
	out, err := glamour.Render(md, "auto")
	if err != nil {
		// fall back to the raw markdown
		fmt.Println(md)
		return
	}
	fmt.Print(out)
}

// stringList collects a repeatable flag.
type stringList []string

func (l *stringList) String() string { return strings.Join(*l, ", ") }
func (l *stringList) Set(v string) error {
	*l = append(*l, v)
	return nil
}

func fail(err error) subcommands.ExitStatus {
	fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	return subcommands.ExitFailure
}
