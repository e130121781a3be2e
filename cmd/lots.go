package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/btcbasis"
	"github.com/etnz/btcbasis/renderer"
	"github.com/google/subcommands"
)

// lotsCmd holds the flags for the 'lots' subcommand.
type lotsCmd struct {
	input   string
	output  string
	combine bool
}

func (*lotsCmd) Name() string     { return "lots" }
func (*lotsCmd) Synopsis() string { return "compute the FIFO lot ledger and write it as CSV" }
func (*lotsCmd) Usage() string {
	return `btb lots [-i <history.csv>] [-o <file>] [-combine]

  Reassembles the transactions of the history file, nets them per day, and
  matches sales against purchases in FIFO order. Writes the resulting lot
  ledger as CSV: sold lots first in settlement order, then the open lots.
`
}

func (c *lotsCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.input, "i", "", "History file to read. Defaults to the -history-file flag.")
	f.StringVar(&c.output, "o", "", "File to write the ledger to. Defaults to stdout.")
	f.BoolVar(&c.combine, "combine", false, "Collapse the open lots into a single combined lot.")
}

func (c *lotsCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.input == "" {
		c.input = *historyFile
	}

	report, err := buildReport(c.input)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error computing lot ledger: %v\n", err)
		return subcommands.ExitFailure
	}

	if c.combine && len(report.Open) > 0 {
		report.Open = []*btcbasis.Lot{btcbasis.Combine(report.Open)}
	}

	out := os.Stdout
	if c.output != "" {
		out, err = os.Create(c.output)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error creating output file %q: %v\n", c.output, err)
			return subcommands.ExitFailure
		}
		defer out.Close()
	}

	if err := renderer.LedgerCSV(out, report); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing lot ledger: %v\n", err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}
