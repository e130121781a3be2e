// Package renderer formats basis reports: the CSV lot ledger and the
// markdown summaries printed by the CLI.
package renderer

import (
	"encoding/csv"
	"fmt"
	"io"

	"github.com/etnz/btcbasis"
)

// ledgerHeader is the fixed header of the lot ledger.
var ledgerHeader = []string{"Lot Date", "Bought", "Price", "Cost", "Sale Date", "Sale Price", "Proceeds", "Gain"}

// LedgerCSV writes the report as a CSV lot ledger: one diagnostic line per
// incomplete transaction, the fixed header, then one row per lot, sold lots
// in settlement order followed by the open lots.
//
// Amounts are written as raw decimals, not display-rounded money, so the
// ledger can be fed to other tools without losing precision.
func LedgerCSV(w io.Writer, report *btcbasis.Report) error {
	for _, id := range report.Incomplete {
		if _, err := fmt.Fprintf(w, "Incomplete tx %s\n", id); err != nil {
			return err
		}
	}

	cw := csv.NewWriter(w)
	if err := cw.Write(ledgerHeader); err != nil {
		return err
	}
	for _, lot := range report.Lots() {
		row := []string{
			lot.Date.String(),
			lot.BTC.String(),
			lot.Price().Decimal().String(),
			lot.Cost.Decimal().String(),
			"", "", "", "",
		}
		if lot.Sold {
			row[4] = lot.SaleDate.String()
			row[5] = lot.SalePrice().Decimal().String()
			row[6] = lot.SaleProceeds.Decimal().String()
			row[7] = lot.Gain().Decimal().String()
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
