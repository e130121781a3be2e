package btcbasis

import (
	"iter"
	"slices"

	"github.com/etnz/btcbasis/date"
	"github.com/shopspring/decimal"
)

// Entry is one raw row of the trade history: a partial leg of a transaction.
// Entries referencing the same (date, id) pair belong to the same transaction.
type Entry struct {
	Date   date.Date
	ID     string
	Action Action
	Amount decimal.Decimal
}

// Journal owns the transactions being reassembled from raw entries, indexed
// by date then transaction id. It is the single owner of that accumulation
// state; nothing else mutates transactions once routed.
type Journal struct {
	days map[date.Date]map[string]*Transaction
}

// NewJournal creates an empty journal.
func NewJournal() *Journal {
	return &Journal{days: make(map[date.Date]map[string]*Transaction)}
}

// Route attaches one entry to its transaction, creating the transaction on
// first sight of its (date, id) key.
//
// Routing is order independent: entries index by explicit id, so the legs of
// a transaction may arrive in any order. A *DuplicateFieldError means the
// entry targeted an already-set field; the journal state is left untouched
// and the caller may skip the entry and keep routing.
func (j *Journal) Route(e Entry) error {
	day, ok := j.days[e.Date]
	if !ok {
		day = make(map[string]*Transaction)
		j.days[e.Date] = day
	}
	tx, ok := day[e.ID]
	if !ok {
		tx = NewTransaction(e.ID, e.Date)
		day[e.ID] = tx
	}
	return tx.Apply(e.Action, e.Amount)
}

// Days returns the journal's distinct dates in ascending calendar order.
// FIFO matching depends on that ordering; it is an invariant, not a detail.
func (j *Journal) Days() []date.Date {
	days := make([]date.Date, 0, len(j.days))
	for d := range j.days {
		days = append(days, d)
	}
	slices.SortFunc(days, date.Date.Compare)
	return days
}

// Transactions iterates over all transactions of a day, in id order so that
// reports are deterministic.
func (j *Journal) Transactions(on date.Date) iter.Seq[*Transaction] {
	return func(yield func(*Transaction) bool) {
		day := j.days[on]
		ids := make([]string, 0, len(day))
		for id := range day {
			ids = append(ids, id)
		}
		slices.Sort(ids)
		for _, id := range ids {
			if !yield(day[id]) {
				return
			}
		}
	}
}

// Len returns the total number of transactions in the journal.
func (j *Journal) Len() int {
	n := 0
	for _, day := range j.days {
		n += len(day)
	}
	return n
}
