package btcbasis

import (
	"fmt"
	"slices"
)

// Ledger runs the basis pipeline over a routed journal: net each day's
// flows, match them through the FIFO inventory, and collect the resulting
// lot ledger.
type Ledger struct {
	journal *Journal
}

// NewLedger creates a ledger over a journal. The journal is expected to be
// fully routed; routing entries after the ledger reported is undefined.
func NewLedger(j *Journal) *Ledger { return &Ledger{journal: j} }

// Report is the final chronological lot ledger.
type Report struct {
	Sold       []*Lot   // sold lots in settlement order
	Open       []*Lot   // still-open lots, oldest first
	Incomplete []string // ids of transactions excluded for missing a leg, in date order
}

// BuildReport nets the journal day by day in ascending calendar order and
// matches every day's flows, sells before buys. It fails on the first
// inventory underflow: past that point the FIFO accounting is meaningless.
func (l *Ledger) BuildReport() (*Report, error) {
	inv := NewInventory()
	report := &Report{}
	for _, flow := range DayFlows(l.journal) {
		report.Incomplete = append(report.Incomplete, flow.Incomplete...)
		if flow.SellBTC.IsPositive() {
			if err := inv.Sell(flow.Date, flow.SellBTC, flow.SellPrice()); err != nil {
				return nil, fmt.Errorf("cannot match sales of %s: %w", flow.Date, err)
			}
		}
		if flow.BuyBTC.IsPositive() {
			inv.Buy(flow.Date, flow.BuyBTC, flow.BuyCost)
		}
	}
	report.Sold = inv.Sold()
	report.Open = slices.Clone(inv.Open())
	return report, nil
}

// Lots returns the full ledger: sold lots in settlement order followed by
// the open lots, oldest first.
func (r *Report) Lots() []*Lot {
	return append(slices.Clone(r.Sold), r.Open...)
}

// RealizedGain returns the total gain over all sold lots.
func (r *Report) RealizedGain() Money {
	var gain Money
	for _, l := range r.Sold {
		gain = gain.Add(l.Gain())
	}
	return gain
}

// RealizedGainByYear breaks the realized gain down by sale year for
// year-over-year reporting. The returned years are sorted ascending.
func (r *Report) RealizedGainByYear() (years []int, gains map[int]Money) {
	gains = make(map[int]Money)
	for _, l := range r.Sold {
		y := l.SaleDate.Year()
		if _, ok := gains[y]; !ok {
			years = append(years, y)
		}
		gains[y] = gains[y].Add(l.Gain())
	}
	slices.Sort(years)
	return years, gains
}

// OpenPosition returns the quantity and cost of the still-open lots.
func (r *Report) OpenPosition() (btc Quantity, cost Money) {
	for _, l := range r.Open {
		btc = btc.Add(l.BTC)
		cost = cost.Add(l.Cost)
	}
	return btc, cost
}

// TotalProceeds returns the cash received over all sold lots.
func (r *Report) TotalProceeds() Money {
	var total Money
	for _, l := range r.Sold {
		total = total.Add(l.SaleProceeds)
	}
	return total
}

// CostOfSales returns the acquisition cost consumed by the sold lots.
func (r *Report) CostOfSales() Money {
	var total Money
	for _, l := range r.Sold {
		total = total.Add(l.Cost)
	}
	return total
}
