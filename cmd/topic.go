package cmd

import (
	"context"
	"flag"
	"fmt"
	"strings"

	"github.com/etnz/hindsight/docs"
	"github.com/google/subcommands"
)

type topicCmd struct {
	list bool
}

func (*topicCmd) Name() string     { return "topic" }
func (*topicCmd) Synopsis() string { return "show documentation" }
func (*topicCmd) Usage() string {
	return `hs topic [-l] [<topic>...]

Show documentation for the given topics, or the readme when there is none.
Use '*' for every topic.
`
}

func (c *topicCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.list, "l", false, "List available topics")
}

func (c *topicCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.list {
		topics, err := docs.GetAllTopics()
		if err != nil {
			return fail(subcommands.ExitFailure, "Error listing topics: %v", err)
		}
		fmt.Fprintln(stdout, strings.Join(topics, "\n"))
		return subcommands.ExitSuccess
	}

	topics := f.Args()
	if len(topics) == 0 {
		topics = []string{"readme"}
	}

	doc, err := docs.GetTopics(topics...)
	if err != nil {
		return fail(subcommands.ExitFailure, "Error reading doc: %v", err)
	}
	printMarkdown(doc)

	return subcommands.ExitSuccess
}
