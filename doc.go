// Package btcbasis computes realized capital-gain lots from a BTC exchange
// trade history, matching sales against purchases First-In-First-Out.
//
// The pipeline has three stages, consumed left to right:
//
//   - a [Journal] reassembles raw history rows ([Entry]) into [Transaction]
//     values keyed by date and transaction id;
//   - [DayFlows] nets each day's complete transactions into one aggregate
//     purchase and one aggregate disposal ([DayFlow]);
//   - an [Inventory] matches each day's disposal against the oldest open
//     [Lot] first, splitting a lot when a sale consumes only part of it,
//     and records purchases as new open lots.
//
// [Ledger.BuildReport] runs the whole pipeline and returns the chronological
// lot ledger. All quantities and amounts are decimals; see [Quantity] and
// [Money].
package btcbasis
