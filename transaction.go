package btcbasis

import (
	"fmt"

	"github.com/etnz/btcbasis/date"
	"github.com/shopspring/decimal"
)

// DuplicateFieldError reports that an entry tried to set a transaction field
// that was already set. It means the input carries duplicated rows for that
// transaction id; the already-set value is left untouched.
type DuplicateFieldError struct {
	ID    string
	Field string // "btc", "usd" or "fee"
}

func (e *DuplicateFieldError) Error() string {
	return fmt.Sprintf("%s set twice in transaction %s", e.Field, e.ID)
}

// Transaction is one logical trade event, reassembled from the raw entries
// that reference its id. A trade appears in the history as several partial
// rows (the BTC leg, the USD leg, possibly a fee); each row fills exactly one
// field, and a field can be filled at most once.
type Transaction struct {
	id string
	on date.Date

	btc decimal.Decimal // signed: positive acquired, negative disposed
	usd decimal.Decimal // signed: positive earned, negative spent
	fee decimal.Decimal // non-negative, zero until a fee row arrives

	btcSet bool
	usdSet bool
}

// NewTransaction creates an empty transaction for the given id and date.
func NewTransaction(id string, on date.Date) *Transaction {
	return &Transaction{id: id, on: on}
}

// ID returns the transaction identifier from the history.
func (t *Transaction) ID() string { return t.id }

// Date returns the calendar day the transaction settled on.
func (t *Transaction) Date() date.Date { return t.on }

// SetBTC records the signed BTC amount. Setting it twice is a data error.
func (t *Transaction) SetBTC(btc decimal.Decimal) error {
	if t.btcSet {
		return &DuplicateFieldError{ID: t.id, Field: "btc"}
	}
	t.btc, t.btcSet = btc, true
	return nil
}

// SetUSD records the signed USD amount. Setting it twice is a data error.
func (t *Transaction) SetUSD(usd decimal.Decimal) error {
	if t.usdSet {
		return &DuplicateFieldError{ID: t.id, Field: "usd"}
	}
	t.usd, t.usdSet = usd, true
	return nil
}

// SetFee records the trade fee. A second fee row for the same id is a data error.
func (t *Transaction) SetFee(fee decimal.Decimal) error {
	if !t.fee.IsZero() {
		return &DuplicateFieldError{ID: t.id, Field: "fee"}
	}
	t.fee = fee
	return nil
}

// Apply dispatches one entry's contribution onto the transaction.
// Unknown actions are tolerated and leave the transaction untouched.
func (t *Transaction) Apply(action Action, amount decimal.Decimal) error {
	switch action {
	case Acquire:
		return t.SetBTC(amount)
	case Dispose:
		return t.SetBTC(amount.Neg())
	case Fee:
		return t.SetFee(amount)
	case ProceedsIn:
		return t.SetUSD(amount)
	case ProceedsOut:
		return t.SetUSD(amount.Neg())
	case Unknown:
		return nil
	default:
		return nil
	}
}

// Complete reports whether both legs of the trade have been seen.
// Incomplete transactions are reported and excluded from netting.
func (t *Transaction) Complete() bool { return t.btcSet && t.usdSet }

// IsBuy reports whether the transaction acquired BTC.
func (t *Transaction) IsBuy() bool { return t.btc.IsPositive() }

// NetBTC returns the BTC actually held (buy) or released (sell), sign
// normalized to a positive quantity. The fee is charged on the BTC leg of a
// buy and on the USD leg of a sell, matching the exchange's convention.
func (t *Transaction) NetBTC() Quantity {
	if t.IsBuy() {
		return Quantity{value: t.btc.Sub(t.fee)}
	}
	return Quantity{value: t.btc.Neg()}
}

// NetUSD returns the cash impact: the (negative) cost of a buy, the net
// proceeds after fee of a sell. A "spent" row already records a negative
// amount, so a buy's cash impact is the recorded value itself.
func (t *Transaction) NetUSD() Money {
	if t.IsBuy() {
		return Money{value: t.usd}
	}
	return Money{value: t.usd.Sub(t.fee)}
}

// Fee returns the recorded trade fee.
func (t *Transaction) Fee() Quantity { return Quantity{value: t.fee} }

// String renders a one-line description for transaction listings.
func (t *Transaction) String() string {
	if !t.Complete() {
		return fmt.Sprintf("%s tid:%s incomplete", t.on, t.id)
	}
	side, cash := "sell", t.NetUSD()
	if t.IsBuy() {
		side, cash = "buy", cash.Neg()
	}
	return fmt.Sprintf("%s tid:%s %s %s BTC for %s", t.on, t.id, side, t.NetBTC(), cash)
}
