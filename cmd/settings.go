package cmd

import (
	"context"
	"flag"
	"fmt"

	"github.com/google/subcommands"
)

type settingsCmd struct {
	vat       float64
	motAmount float64
}

func (*settingsCmd) Name() string     { return "settings" }
func (*settingsCmd) Synopsis() string { return "show or change the global settings" }
func (*settingsCmd) Usage() string {
	return `gbk settings [-vat <multiplier>] [-mot-amount <amount>]

  Without flags, shows the effective settings. With flags, updates the
  global scope; values must be positive. The VAT value is a multiplier:
  1.2 means 20% VAT.
`
}

func (c *settingsCmd) SetFlags(f *flag.FlagSet) {
	f.Float64Var(&c.vat, "vat", 0, "VAT multiplier, e.g. 1.2")
	f.Float64Var(&c.motAmount, "mot-amount", 0, "Standard MOT charge")
}

func (c *settingsCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	store := Store()
	settings, err := store.LoadSettings()
	if err != nil {
		return fail(err)
	}

	if c.vat == 0 && c.motAmount == 0 {
		fmt.Printf("vatPercent: %g\nmotAmount: %.2f\n", settings.VATPercent, settings.MOTAmount)
		return subcommands.ExitSuccess
	}

	if c.vat != 0 {
		settings.VATPercent = c.vat
	}
	if c.motAmount != 0 {
		settings.MOTAmount = c.motAmount
	}
	if err := store.SaveSettings(settings); err != nil {
		return fail(err)
	}
	fmt.Printf("Settings saved: vatPercent %g, motAmount %.2f\n", settings.VATPercent, settings.MOTAmount)
	return subcommands.ExitSuccess
}
