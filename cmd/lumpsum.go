package cmd

import (
	"context"
	"flag"

	"github.com/etnz/hindsight"
	"github.com/google/subcommands"
)

// lumpsumCmd holds the flags for the 'lumpsum' subcommand.
type lumpsumCmd struct {
	simulationFlags
	date string
}

func (*lumpsumCmd) Name() string { return "lumpsum" }
func (*lumpsumCmd) Synopsis() string {
	return "simulate investing a budget at once on a past date"
}
func (*lumpsumCmd) Usage() string {
	return `hs lumpsum [-plan <file>] [-b <ids>] [-budget <amount>] [-d <date>] [-json|-q <path>]

  Splits the budget equally over the basket and buys every instrument at its
  Low of the purchase date. Positions are valued at the last Close available.

  Instruments without a price on the purchase date are skipped.
`
}

func (c *lumpsumCmd) SetFlags(f *flag.FlagSet) {
	c.simulationFlags.SetFlags(f)
	f.StringVar(&c.budget, "budget", "", "Total budget to invest (default 900)")
	f.StringVar(&c.date, "d", "", "Purchase date (default "+hindsight.DefaultDate+")")
}

func (c *lumpsumCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	cfg, err := c.loadPlanFile()
	if err != nil {
		return fail(subcommands.ExitFailure, "Error loading plan: %v", err)
	}
	plan, err := cfg.LumpSum()
	if err != nil {
		return fail(subcommands.ExitFailure, "Error in plan %q: %v", c.plan, err)
	}
	if err := c.override(f, cfg, &plan, "d", c.date); err != nil {
		return fail(subcommands.ExitUsageError, "Error: %v", err)
	}
	return c.run(ctx, cfg, plan)
}
