package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
)

// txCmd holds the flags for the 'tx' subcommand.
type txCmd struct {
	input      string
	incomplete bool
}

func (*txCmd) Name() string     { return "tx" }
func (*txCmd) Synopsis() string { return "list the transactions reassembled from the history" }
func (*txCmd) Usage() string {
	return `btb tx [-i <history.csv>] [-incomplete]

  Lists every transaction reassembled from the history rows, one per line,
  in date then id order. With -incomplete, only the transactions missing a
  leg are listed.
`
}

func (c *txCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.input, "i", "", "History file to read. Defaults to the -history-file flag.")
	f.BoolVar(&c.incomplete, "incomplete", false, "Only list incomplete transactions.")
}

func (c *txCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.input == "" {
		c.input = *historyFile
	}

	journal, err := loadJournal(c.input)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading history: %v\n", err)
		return subcommands.ExitFailure
	}

	for _, on := range journal.Days() {
		for tx := range journal.Transactions(on) {
			if c.incomplete && tx.Complete() {
				continue
			}
			fmt.Println(tx)
		}
	}
	return subcommands.ExitSuccess
}
