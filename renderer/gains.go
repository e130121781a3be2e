package renderer

import (
	"fmt"
	"strings"

	"github.com/etnz/btcbasis"
)

// GainsMarkdown renders the realized gains summary of a report.
func GainsMarkdown(report *btcbasis.Report) string {
	var b strings.Builder

	fmt.Fprint(&b, "# Capital Gains Report\n\n")
	fmt.Fprint(&b, "Method: fifo\n\n")

	fmt.Fprint(&b, "## Realized Gains per Year\n\n")
	fmt.Fprintln(&b, "| Year | Proceeds | Cost of Sales | Realized |")
	fmt.Fprintln(&b, "|:---|---:|---:|---:|")

	years, gains := report.RealizedGainByYear()
	for _, year := range years {
		var proceeds, cost btcbasis.Money
		for _, lot := range report.Sold {
			if lot.SaleDate.Year() != year {
				continue
			}
			proceeds = proceeds.Add(lot.SaleProceeds)
			cost = cost.Add(lot.Cost)
		}
		fmt.Fprintf(&b, "| %d | %s | %s | %s |\n", year, proceeds, cost, gains[year].SignedString())
	}
	fmt.Fprintf(&b, "| **%s** | **%s** | **%s** | **%s** |\n",
		"Total",
		report.TotalProceeds(),
		report.CostOfSales(),
		report.RealizedGain().SignedString(),
	)

	openBTC, openCost := report.OpenPosition()
	fmt.Fprint(&b, "\n## Open Position\n\n")
	fmt.Fprintf(&b, "%s BTC held across %d lots, cost basis %s\n", openBTC, len(report.Open), openCost)

	if len(report.Incomplete) > 0 {
		fmt.Fprint(&b, "\n## Incomplete Transactions\n\n")
		for _, id := range report.Incomplete {
			fmt.Fprintf(&b, "- tid:%s is missing a leg and was excluded\n", id)
		}
	}

	return b.String()
}
