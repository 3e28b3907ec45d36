// Package cmd implements the CLI application to simulate investments.
package cmd

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/etnz/hindsight"
	"github.com/google/subcommands"
)

// Register the subcommands.
// A main package will call Register() to allow subcommands, and Execute() on the user-selected one.
func Register(c *subcommands.Commander) {
	c.Register(&lumpsumCmd{}, "simulations")
	c.Register(&dcaCmd{}, "simulations")

	c.Register(&topicCmd{}, "documentation")
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var dataDir = flag.String("data", "", "Directory of <id>.csv price histories. Defaults to $HS_DATA_DIR, or "+hindsight.DefaultDataDir)
var currency = flag.String("currency", "", "Currency of prices and budgets. Defaults to $HS_CURRENCY, or "+hindsight.DefaultCurrency)
var verbose = flag.Bool("v", false, "Log every row dropped from price histories")

// stdout is where reports are printed.
var stdout io.Writer = os.Stdout

// stderr is where errors and progress are printed.
var stderr io.Writer = os.Stderr

// fail prints an error message and returns the exit status.
func fail(status subcommands.ExitStatus, format string, args ...any) subcommands.ExitStatus {
	fmt.Fprintf(stderr, format+"\n", args...)
	return status
}
