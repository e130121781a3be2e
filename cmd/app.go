// Package cmd implements the CLI application to compute the BTC cost basis
// ledger from an exchange trade history.
package cmd

import (
	"errors"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/etnz/btcbasis"
	"github.com/google/subcommands"
)

// Commands lists the subcommands. A main package registers them all and
// Executes the user-selected one.
var Commands = []subcommands.Command{
	&lotsCmd{},
	&gainsCmd{},
	&txCmd{},
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var historyFile = flag.String("history-file", "history.csv", "Path to the concatenated exchange history CSV exports")

// loadJournal imports the history file and routes every entry into a journal.
// Entries hitting an already-set transaction field are duplicated input; they
// are logged and skipped so one bad row does not lose the whole history.
func loadJournal(filename string) (*btcbasis.Journal, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("cannot open history file %q: %w", filename, err)
	}
	defer f.Close()

	entries, err := btcbasis.ImportEntries(f)
	if err != nil {
		return nil, fmt.Errorf("cannot read history file %q: %w", filename, err)
	}

	journal := btcbasis.NewJournal()
	for _, e := range entries {
		err := journal.Route(e)
		var dup *btcbasis.DuplicateFieldError
		if errors.As(err, &dup) {
			log.Printf("warning, skipping duplicated entry for tid:%s: %v", dup.ID, err)
			continue
		}
		if err != nil {
			return nil, err
		}
	}
	return journal, nil
}

// buildReport loads the journal and runs the FIFO matching.
func buildReport(filename string) (*btcbasis.Report, error) {
	journal, err := loadJournal(filename)
	if err != nil {
		return nil, err
	}
	return btcbasis.NewLedger(journal).BuildReport()
}
