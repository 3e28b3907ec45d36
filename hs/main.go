package main

import (
	"context"
	"flag"
	"os"
	"path"

	"github.com/etnz/hindsight/cmd"
	"github.com/google/subcommands"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"
)

func main() {
	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))
	commander.Register(commander.HelpCommand(), "")
	commander.Register(commander.FlagsCommand(), "")
	commander.Register(commander.CommandsCommand(), "")
	cmd.Register(commander)

	completion().Complete("hs")

	flag.Parse()
	os.Exit(int(commander.Execute(context.Background())))
}

// completion describes the command line for shell completion.
// Install it with COMP_INSTALL=1 hs.
func completion() *complete.Command {
	simulation := map[string]complete.Predictor{
		"plan":      predict.Files("*.yaml"),
		"b":         predict.Something,
		"budget":    predict.Something,
		"j":         predict.Something,
		"purchases": predict.Nothing,
		"json":      predict.Nothing,
		"q":         predict.Set{"$.total_profit", "$.total_profit_pct", "$.ranked[*].id", "$.skipped"},
	}
	with := func(extra map[string]complete.Predictor) map[string]complete.Predictor {
		flags := make(map[string]complete.Predictor, len(simulation)+len(extra))
		for k, v := range simulation {
			flags[k] = v
		}
		for k, v := range extra {
			flags[k] = v
		}
		return flags
	}

	return &complete.Command{
		Sub: map[string]*complete.Command{
			"lumpsum": {Flags: with(map[string]complete.Predictor{
				"d": predict.Something,
			})},
			"dca": {Flags: with(map[string]complete.Predictor{
				"start":  predict.Something,
				"anchor": predict.Set{"month-start", "first-trade"},
			})},
			"topic": {
				Flags: map[string]complete.Predictor{"l": predict.Nothing},
				Args:  predict.Set{"readme", "data", "lumpsum", "dca", "plan", "*"},
			},
			"help":     {},
			"flags":    {},
			"commands": {},
		},
		Flags: map[string]complete.Predictor{
			"data":     predict.Dirs("*"),
			"currency": predict.Set{"USD", "EUR", "GBP", "JPY", "CHF"},
			"v":        predict.Nothing,
		},
	}
}
