package btcbasis

// Action identifies what a raw entry contributes to its transaction.
type Action int

const (
	// Unknown is any category the history may contain that does not take part
	// in basis accounting. It is tolerated and ignored, never an error.
	Unknown Action = iota
	// Acquire is BTC coming in ("in" rows): sets the transaction's BTC amount.
	Acquire
	// Dispose is BTC going out ("out" rows): sets a negative BTC amount.
	Dispose
	// Fee is the BTC-denominated trade fee ("fee" rows).
	Fee
	// ProceedsIn is USD received for a sale ("earned" rows).
	ProceedsIn
	// ProceedsOut is USD paid for a purchase ("spent" rows).
	ProceedsOut
)

func (a Action) String() string {
	switch a {
	case Acquire:
		return "in"
	case Dispose:
		return "out"
	case Fee:
		return "fee"
	case ProceedsIn:
		return "earned"
	case ProceedsOut:
		return "spent"
	default:
		return "unknown"
	}
}

// ParseAction maps a raw history keyword to an Action. Unrecognized keywords
// map to Unknown: the exports carry categories (withdrawals, deposits) that
// are irrelevant here and must pass through without failing the row.
func ParseAction(s string) Action {
	switch s {
	case "in":
		return Acquire
	case "out":
		return Dispose
	case "fee":
		return Fee
	case "earned":
		return ProceedsIn
	case "spent":
		return ProceedsOut
	default:
		return Unknown
	}
}
