package btcbasis

import (
	"fmt"

	"github.com/etnz/btcbasis/date"
)

// Lot is a parcel of BTC acquired on a single day at a known total cost,
// tracked until it is fully sold. Selling less than a whole lot splits it
// first, so a lot is only ever sold in full.
type Lot struct {
	Date date.Date // acquisition date
	BTC  Quantity  // positive quantity, fixed after creation except by split
	Cost Money     // positive total cost

	Sold         bool
	SaleDate     date.Date
	SaleProceeds Money // zero until sold
}

// Price returns the average acquisition price of the lot.
func (l *Lot) Price() Money { return l.Cost.Div(l.BTC) }

// SalePrice returns the sale price per BTC. Meaningful only once sold.
func (l *Lot) SalePrice() Money { return l.SaleProceeds.Div(l.BTC) }

// Gain returns the realized gain, proceeds minus cost. Meaningful only once sold.
func (l *Lot) Gain() Money { return l.SaleProceeds.Sub(l.Cost) }

// sell marks the whole lot sold on the given day at the given price.
func (l *Lot) sell(on date.Date, price Money) {
	l.Sold = true
	l.SaleDate = on
	l.SaleProceeds = price.Mul(l.BTC)
}

// split divides the lot into a taken part of the given quantity and the
// rest. Quantities sum exactly to the original. The taken cost is the
// proportional share; the rest gets the exact remainder so that the parent
// cost is conserved to the last digit even when the proportional division
// is not exact.
func (l *Lot) split(amount Quantity) (taken, rest *Lot) {
	takenCost := l.Cost.Mul(amount).Div(l.BTC)
	taken = &Lot{Date: l.Date, BTC: amount, Cost: takenCost}
	rest = &Lot{Date: l.Date, BTC: l.BTC.Sub(amount), Cost: l.Cost.Sub(takenCost)}
	return taken, rest
}

// Combine merges several lots into one whose quantity and cost are the sums
// and whose date is the last constituent's date. It is used to collapse the
// open tail of a ledger into a single position.
func Combine(lots []*Lot) *Lot {
	if len(lots) == 0 {
		return nil
	}
	c := &Lot{Date: lots[len(lots)-1].Date}
	for _, l := range lots {
		c.BTC = c.BTC.Add(l.BTC)
		c.Cost = c.Cost.Add(l.Cost)
	}
	return c
}

// lotQueue is the FIFO inventory of open lots, oldest first. The head is an
// offset into the backing slice so that PopFront and the PushFront of a
// split remainder are O(1).
type lotQueue struct {
	lots []*Lot
	head int
}

func (q *lotQueue) Len() int { return len(q.lots) - q.head }

// PushBack appends a lot as the newest inventory.
func (q *lotQueue) PushBack(l *Lot) { q.lots = append(q.lots, l) }

// PopFront removes and returns the oldest lot. The caller checks Len first.
func (q *lotQueue) PopFront() *Lot {
	l := q.lots[q.head]
	q.lots[q.head] = nil
	q.head++
	return l
}

// PushFront puts a lot back as the oldest inventory, where the unsold
// remainder of a split belongs.
func (q *lotQueue) PushFront(l *Lot) {
	if q.head > 0 {
		q.head--
		q.lots[q.head] = l
		return
	}
	q.lots = append([]*Lot{l}, q.lots...)
}

// InsufficientInventoryError reports a sale of more BTC than the inventory
// holds. There is no valid recovery: either the input is bad or the
// accounting is, so the run must stop instead of clamping.
type InsufficientInventoryError struct {
	Date   date.Date
	Wanted Quantity // quantity left unmatched when the queue ran dry
}

func (e *InsufficientInventoryError) Error() string {
	return fmt.Sprintf("inventory exhausted on %s with %s BTC left to sell", e.Date, e.Wanted)
}

// Inventory is the FIFO matching engine. Buys push open lots to the back of
// the queue; sells consume lots from the front, splitting the last one
// consumed when a sale takes only part of it. Sold lots move to a terminal
// collection in settlement order and are never mutated again.
//
// Inventory is the exclusive owner of both collections.
type Inventory struct {
	open lotQueue
	sold []*Lot
}

// NewInventory creates an empty inventory.
func NewInventory() *Inventory { return &Inventory{} }

// Buy appends a new open lot acquired on the given day.
func (v *Inventory) Buy(on date.Date, amount Quantity, cost Money) {
	v.open.PushBack(&Lot{Date: on, BTC: amount, Cost: cost})
}

// Sell consumes the given quantity from the oldest open lots at the given
// blended price. A lot larger than what remains to sell is split: the taken
// part is sold, the rest goes back to the front of the queue as the oldest
// available inventory.
func (v *Inventory) Sell(on date.Date, amount Quantity, price Money) error {
	remaining := amount
	for remaining.IsPositive() {
		if v.open.Len() == 0 {
			return &InsufficientInventoryError{Date: on, Wanted: remaining}
		}
		lot := v.open.PopFront()
		if lot.BTC.GreaterThan(remaining) {
			taken, rest := lot.split(remaining)
			v.open.PushFront(rest)
			lot = taken
		}
		lot.sell(on, price)
		v.sold = append(v.sold, lot)
		remaining = remaining.Sub(lot.BTC)
	}
	return nil
}

// Sold returns the sold lots in settlement order.
func (v *Inventory) Sold() []*Lot { return v.sold }

// Open returns the still-open lots, oldest first.
func (v *Inventory) Open() []*Lot {
	return v.open.lots[v.open.head:]
}

// Held returns the total open quantity.
func (v *Inventory) Held() Quantity {
	var total Quantity
	for _, l := range v.Open() {
		total = total.Add(l.BTC)
	}
	return total
}
