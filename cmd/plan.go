package cmd

import (
	"context"
	"flag"
	"fmt"

	"github.com/etnz/hindsight"
	"github.com/etnz/hindsight/date"
	"github.com/etnz/hindsight/renderer"
	"github.com/google/subcommands"
)

// allInstruments is the basket value that selects every price history of the
// data directory.
const allInstruments = "all"

// simulationFlags holds the flags shared by simulation subcommands.
type simulationFlags struct {
	plan      string
	basket    string
	budget    string
	jobs      int
	purchases bool
	json      bool
	query     string
}

func (c *simulationFlags) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.plan, "plan", "", "YAML plan file. Flags set on the command line take precedence")
	f.StringVar(&c.basket, "b", "", "Comma separated instrument ids, or '"+allInstruments+"' for every file in the data directory")
	f.IntVar(&c.jobs, "j", 0, "Number of instruments simulated at the same time. Defaults to the number of CPUs")
	f.BoolVar(&c.purchases, "purchases", false, "Also print every purchase")
	f.BoolVar(&c.json, "json", false, "Print the report as JSON")
	f.StringVar(&c.query, "q", "", "Print the value selected by a JSONPath expression in the JSON report, e.g. '$.total_profit'")
}

// isSet reports whether flag name was set on the command line.
func isSet(f *flag.FlagSet, name string) bool {
	set := false
	f.Visit(func(fl *flag.Flag) {
		if fl.Name == name {
			set = true
		}
	})
	return set
}

// loadPlanFile reads the plan file and applies the global flags.
func (c *simulationFlags) loadPlanFile() (*hindsight.PlanFile, error) {
	cfg, err := hindsight.LoadPlanFile(c.plan)
	if err != nil {
		return nil, err
	}
	if *dataDir != "" {
		cfg.DataDir = *dataDir
	}
	if *currency != "" {
		cfg.Currency = *currency
	}
	return cfg, nil
}

// override applies the command line flags to plan.
func (c *simulationFlags) override(f *flag.FlagSet, cfg *hindsight.PlanFile, plan *hindsight.Plan, dateFlag, day string) error {
	if isSet(f, "b") {
		plan.Basket = hindsight.NewBasket(c.basket)
		if c.basket == allInstruments {
			plan.Basket = nil
		}
	}
	if isSet(f, "budget") {
		budget, err := hindsight.ParseMoney(c.budget, cfg.Currency)
		if err != nil {
			return fmt.Errorf("invalid budget %q: %w", c.budget, err)
		}
		plan.Budget = budget
	}
	if isSet(f, dateFlag) {
		on, err := date.Parse(day)
		if err != nil {
			return fmt.Errorf("invalid date %q: %w", day, err)
		}
		plan.On = on
	}
	return nil
}

// run simulates plan on the data directory and prints the report.
func (c *simulationFlags) run(ctx context.Context, cfg *hindsight.PlanFile, plan hindsight.Plan) subcommands.ExitStatus {
	src := hindsight.NewDir(cfg.DataDir)
	if err := src.Check(); err != nil {
		return fail(subcommands.ExitFailure, "No files found in the data directory: %v", err)
	}
	if len(plan.Basket) == 0 {
		ids, err := src.Instruments()
		if err != nil {
			return fail(subcommands.ExitFailure, "Error listing instruments: %v", err)
		}
		plan.Basket = ids
	}

	bar := newProgressBar(len(plan.Basket), "Processing stock files...")
	report, err := hindsight.Run(ctx, src, plan,
		hindsight.WithConcurrency(c.jobs),
		hindsight.WithVerbose(*verbose),
		hindsight.WithProgress(func(string) { bar.Add(1) }),
	)
	bar.Finish()
	if err != nil {
		return fail(subcommands.ExitFailure, "Error: %v", err)
	}

	if err := c.print(report); err != nil {
		return fail(subcommands.ExitFailure, "Error printing report: %v", err)
	}
	return subcommands.ExitSuccess
}

// print writes the report in the format selected by the flags.
func (c *simulationFlags) print(report *hindsight.Report) error {
	switch {
	case c.query != "":
		return printQuery(stdout, report, c.query)
	case c.json:
		return hindsight.EncodeReport(stdout, report)
	default:
		printMarkdown(renderer.ReportMarkdown(report, renderer.Options{Purchases: c.purchases}))
		return nil
	}
}
