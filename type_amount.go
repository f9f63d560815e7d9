package fifo

import (
	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// Amount is an exact monetary value, quantity times price (times factor).
// It carries no currency: a FIFO stream is about a single instrument and the
// currency, if any, is only known when rendering.
type Amount struct {
	value decimal.Decimal
}

// A creates an Amount from any supported numeric value.
func A[T float32 | float64 | int | int32 | int64 | uint | uint32 | uint64 | decimal.Decimal](value T) Amount {
	return Amount{value: newDecimal(value)}
}

func (m Amount) Equal(n Amount) bool      { return m.value.Equal(n.value) }
func (m Amount) IsZero() bool             { return m.value.IsZero() }
func (m Amount) IsPositive() bool         { return m.value.IsPositive() }
func (m Amount) IsNegative() bool         { return m.value.IsNegative() }
func (m Amount) Neg() Amount              { return Amount{value: m.value.Neg()} }
func (m Amount) Add(n Amount) Amount      { return Amount{value: m.value.Add(n.value)} }
func (m Amount) Sub(n Amount) Amount      { return Amount{value: m.value.Sub(n.value)} }
func (m Amount) Decimal() decimal.Decimal { return m.value }
func (m Amount) String() string           { return m.value.String() }

// MulFactor scales the amount, typically by an entry's factor.
func (m Amount) MulFactor(f decimal.Decimal) Amount { return Amount{value: m.value.Mul(f)} }

// Per returns the unit price that this amount represents over q units.
// q must not be zero.
func (m Amount) Per(q Quantity) Price { return Price{value: m.value.Div(q.value)} }

// Format returns the amount formatted for the given currency code, rounded
// to the currency's fraction digits. An empty or unknown currency falls back
// to the plain decimal representation.
func (m Amount) Format(currency string) string {
	if currency == "" || money.GetCurrency(currency) == nil {
		return m.value.String()
	}
	// to get a never nil currency I need to call the Money constructor
	cur := *money.New(0, currency).Currency()
	dec := m.value.Shift(int32(cur.Fraction)).Round(0)
	return cur.Formatter().Format(dec.IntPart())
}

// SignedString returns the formatted amount with an explicit sign.
// 0 is represented as a "-".
func (m Amount) SignedString(currency string) string {
	if m.value.IsZero() {
		return "-"
	}
	if m.value.IsPositive() {
		return "+" + m.Format(currency)
	}
	return m.Format(currency)
}

func (m Amount) MarshalJSON() ([]byte, error) {
	return m.value.MarshalJSON()
}

func (m *Amount) UnmarshalJSON(decimalBytes []byte) error {
	return m.value.UnmarshalJSON(decimalBytes)
}
