package cmd

import (
	"context"
	"flag"
	"fmt"

	"garagebook"

	"github.com/google/subcommands"
)

type vehicleCmd struct {
	id   string
	name string
	reg  string
	car  string
}

func (*vehicleCmd) Name() string     { return "vehicle" }
func (*vehicleCmd) Synopsis() string { return "add a vehicle to an existing customer" }
func (*vehicleCmd) Usage() string {
	return `gbk vehicle [-id <id>] [-name <name>] -reg <reg> -car <car>

  Adds a vehicle to the designated customer's cars. The registration must
  not already be on record for that customer.
`
}

func (c *vehicleCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.id, "id", "", "Customer id")
	f.StringVar(&c.name, "name", "", "Exact customer name")
	f.StringVar(&c.reg, "reg", "", "Vehicle registration")
	f.StringVar(&c.car, "car", "", "Vehicle description")
}

func (c *vehicleCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	store := Store()
	b, err := store.LoadBook()
	if err != nil {
		return fail(err)
	}

	customer, err := resolveCustomer(b, c.id, c.name, "")
	if err != nil {
		return fail(err)
	}
	if err := b.AddVehicle(customer.ID, garagebook.Vehicle{Reg: c.reg, Car: c.car}); err != nil {
		return fail(err)
	}
	if err := store.SaveBook(b); err != nil {
		return fail(err)
	}

	fmt.Printf("Added %s (%s) to %s\n", c.reg, c.car, customer.Name)
	return subcommands.ExitSuccess
}
