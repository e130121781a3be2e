package btcbasis

import "github.com/etnz/btcbasis/date"

// DayFlow is the aggregate trading activity of one calendar day: every
// complete buy of the day netted into one purchase, every complete sell
// netted into one disposal.
type DayFlow struct {
	Date date.Date

	BuyBTC  Quantity // total BTC acquired, net of fees
	BuyCost Money    // absolute cash paid for BuyBTC

	SellBTC      Quantity // total BTC disposed
	SellProceeds Money    // absolute cash received, net of fees

	Incomplete []string // ids of transactions excluded for missing a leg
}

// SellPrice returns the blended price of the day's disposals: one average
// price for all BTC sold that day, regardless of which transaction it came
// from. Meaningful only when SellBTC is positive.
func (f DayFlow) SellPrice() Money { return f.SellProceeds.Div(f.SellBTC) }

// netDay sums one day's complete transactions into a DayFlow.
//
// NetUSD carries signs (negative buy cost, positive sell proceeds), so the
// flow stores the absolute buy cost by negating the buy sum.
func netDay(j *Journal, on date.Date) DayFlow {
	flow := DayFlow{Date: on}
	var buyUSD Money
	for tx := range j.Transactions(on) {
		if !tx.Complete() {
			flow.Incomplete = append(flow.Incomplete, tx.ID())
			continue
		}
		if tx.IsBuy() {
			flow.BuyBTC = flow.BuyBTC.Add(tx.NetBTC())
			buyUSD = buyUSD.Add(tx.NetUSD())
		} else {
			flow.SellBTC = flow.SellBTC.Add(tx.NetBTC())
			flow.SellProceeds = flow.SellProceeds.Add(tx.NetUSD())
		}
	}
	flow.BuyCost = buyUSD.Neg()
	return flow
}

// DayFlows nets the journal day by day, in ascending calendar order.
// Days with no complete transaction and no incomplete diagnostic are elided.
func DayFlows(j *Journal) []DayFlow {
	var flows []DayFlow
	for _, on := range j.Days() {
		flow := netDay(j, on)
		if flow.BuyBTC.IsZero() && flow.SellBTC.IsZero() && len(flow.Incomplete) == 0 {
			continue
		}
		flows = append(flows, flow)
	}
	return flows
}
