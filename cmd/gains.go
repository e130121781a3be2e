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

// gainsCmd holds the flags for the 'gains' subcommand.
type gainsCmd struct {
	input string
	year  int
}

func (*gainsCmd) Name() string     { return "gains" }
func (*gainsCmd) Synopsis() string { return "realized gains summary" }
func (*gainsCmd) Usage() string {
	return `btb gains [-i <history.csv>] [-year <YYYY>]

  Displays the realized capital gains of the history, per sale year, along
  with the remaining open position.
`
}

func (c *gainsCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.input, "i", "", "History file to read. Defaults to the -history-file flag.")
	f.IntVar(&c.year, "year", 0, "Restrict the summary to sales of that year.")
}

func (c *gainsCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.input == "" {
		c.input = *historyFile
	}

	report, err := buildReport(c.input)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error computing gains: %v\n", err)
		return subcommands.ExitFailure
	}

	if c.year != 0 {
		filtered := &btcbasis.Report{Open: report.Open, Incomplete: report.Incomplete}
		for _, lot := range report.Sold {
			if lot.SaleDate.Year() == c.year {
				filtered.Sold = append(filtered.Sold, lot)
			}
		}
		report = filtered
	}

	printMarkdown(renderer.GainsMarkdown(report))
	return subcommands.ExitSuccess
}
