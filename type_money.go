package btcbasis

import (
	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// Money represents a USD value. The whole history is single-currency, so
// Money carries only the amount; formatting uses the USD currency definition.
type Money struct {
	value decimal.Decimal // as major unit value
}

// USD is the Money factory for any numeric type.
func USD[T float32 | float64 | int | int32 | int64 | uint | uint32 | uint64 | decimal.Decimal](value T) Money {
	return Money{value: newDecimal(value)}
}

// currency returns the USD currency definition (fraction digits, formatter).
func usd() money.Currency {
	// to get a never nil currency I need to call the Money constructor
	return *money.New(0, money.USD).Currency()
}

// String returns the formatted representation of the money value, e.g. "$1,234.56".
func (m Money) String() string {
	cur := usd()
	dec := m.value.Shift(int32(cur.Fraction))
	return cur.Formatter().Format(dec.IntPart())
}

// SignedString returns the string representation of the money value with a sign.
// 0 is represented as "-".
func (m Money) SignedString() string {
	if m.value.IsZero() {
		return "-"
	}
	if m.value.IsPositive() {
		return "+" + m.String()
	}
	return m.String()
}

// Decimal returns the raw decimal amount, e.g. for report columns that must
// keep the full precision instead of rounding to cents.
func (m Money) Decimal() decimal.Decimal { return m.value }

func (m Money) Equal(n Money) bool        { return m.value.Equal(n.value) }
func (m Money) IsZero() bool              { return m.value.IsZero() }
func (m Money) IsPositive() bool          { return m.value.IsPositive() }
func (m Money) IsNegative() bool          { return m.value.IsNegative() }
func (m Money) LessThan(n Money) bool     { return m.value.LessThan(n.value) }
func (m Money) GreaterThan(n Money) bool  { return m.value.GreaterThan(n.value) }
func (m Money) Neg() Money                { return Money{value: m.value.Neg()} }
func (m Money) Add(n Money) Money         { return Money{value: m.value.Add(n.value)} }
func (m Money) Sub(n Money) Money         { return Money{value: m.value.Sub(n.value)} }
func (m Money) Mul(q Quantity) Money      { return Money{value: m.value.Mul(q.value)} }
func (m Money) Div(q Quantity) Money      { return Money{value: m.value.Div(q.value)} }
func (m Money) DivPrice(n Money) Quantity { return Quantity{value: m.value.Div(n.value)} }
