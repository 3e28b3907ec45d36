package cmd

import (
	"context"
	"flag"

	"github.com/etnz/hindsight"
	"github.com/google/subcommands"
)

// dcaCmd holds the flags for the 'dca' subcommand.
type dcaCmd struct {
	simulationFlags
	start  string
	anchor string
}

func (*dcaCmd) Name() string { return "dca" }
func (*dcaCmd) Synopsis() string {
	return "simulate investing a monthly budget since a past date"
}
func (*dcaCmd) Usage() string {
	return `hs dca [-plan <file>] [-b <ids>] [-budget <amount>] [-start <date>] [-anchor month-start|first-trade] [-json|-q <path>]

  Splits the monthly budget equally over the basket and buys every instrument
  once a month, from the first trading day on or after the start date until
  the end of its price history.

  Each investment day is resolved to the last trading day on or before it.
  With the month-start anchor, investments happen on the first of every month.
  With the first-trade anchor, they happen on the same day of month as the
  first trading day.
`
}

func (c *dcaCmd) SetFlags(f *flag.FlagSet) {
	c.simulationFlags.SetFlags(f)
	f.StringVar(&c.budget, "budget", "", "Monthly budget to invest (default 100)")
	f.StringVar(&c.start, "start", "", "Start investment date (default "+hindsight.DefaultDate+")")
	f.StringVar(&c.anchor, "anchor", "", "Monthly investment days: month-start or first-trade (default month-start)")
}

func (c *dcaCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	cfg, err := c.loadPlanFile()
	if err != nil {
		return fail(subcommands.ExitFailure, "Error loading plan: %v", err)
	}
	plan, err := cfg.Recurring()
	if err != nil {
		return fail(subcommands.ExitFailure, "Error in plan %q: %v", c.plan, err)
	}
	if err := c.override(f, cfg, &plan, "start", c.start); err != nil {
		return fail(subcommands.ExitUsageError, "Error: %v", err)
	}
	if isSet(f, "anchor") {
		if plan.Anchor, err = hindsight.ParseAnchor(c.anchor); err != nil {
			return fail(subcommands.ExitUsageError, "Error: %v", err)
		}
	}
	return c.run(ctx, cfg, plan)
}
