package fifo

import (
	"bytes"
	"encoding/json"
	"fmt"
	"maps"

	"github.com/shopspring/decimal"
)

// Data holds caller-defined fields attached to an entry, like a trade id or a
// date. It is carried through the accounting untouched.
type Data map[string]any

// Entry is a single movement of stock: a signed quantity at a unit price.
//
// Entries are values: the accounting never mutates an Entry it was given,
// fragments are new entries created with WithQuantity.
type Entry struct {
	quantity Quantity
	price    Price
	factor   decimal.Decimal
	data     Data
}

// EntryOption customizes an Entry at construction time.
type EntryOption func(*Entry)

// WithFactor sets the multiplier applied to the price in the factored
// valuations (e.g. a contract multiplier or an exchange rate).
func WithFactor(factor decimal.Decimal) EntryOption {
	return func(e *Entry) { e.factor = factor }
}

// WithData attaches caller data to the entry. The map is copied, without the
// "quantity", "price" and "factor" keys that belong to the entry itself.
func WithData(data Data) EntryOption {
	return func(e *Entry) {
		e.data = maps.Clone(data)
		delete(e.data, attrQuantity)
		delete(e.data, attrPrice)
		delete(e.data, attrFactor)
	}
}

// NewEntry creates an entry with a factor of 1 unless told otherwise.
func NewEntry(quantity Quantity, price Price, opts ...EntryOption) Entry {
	e := Entry{
		quantity: quantity,
		price:    price,
		factor:   decimal.NewFromInt(1),
	}
	for _, opt := range opts {
		opt(&e)
	}
	return e
}

func (e Entry) Quantity() Quantity      { return e.quantity }
func (e Entry) Price() Price            { return e.price }
func (e Entry) Factor() decimal.Decimal { return e.factor }
func (e Entry) Size() Quantity          { return e.quantity.Abs() }
func (e Entry) IsBuy() bool             { return e.quantity.IsPositive() }
func (e Entry) IsZero() bool            { return e.quantity.IsZero() }

// Get returns a single data field.
func (e Entry) Get(key string) (any, bool) {
	v, ok := e.data[key]
	return v, ok
}

// IsSell reports whether the entry is not a buy. A zero quantity entry counts
// as a sell.
func (e Entry) IsSell() bool { return !e.IsBuy() }

// Data returns a copy of the caller data.
func (e Entry) Data() Data { return maps.Clone(e.data) }

// Cost is quantity times price, regardless of the factor.
func (e Entry) Cost() Amount { return e.price.Mul(e.quantity) }

// Value is quantity times price times factor.
func (e Entry) Value() Amount { return e.Cost().MulFactor(e.factor) }

// Copy returns an identical entry that shares nothing with e.
func (e Entry) Copy() Entry { return e.WithQuantity(e.quantity) }

// WithQuantity returns a copy of e with a different quantity.
func (e Entry) WithQuantity(q Quantity) Entry {
	return Entry{
		quantity: q,
		price:    e.price,
		factor:   e.factor,
		data:     maps.Clone(e.data),
	}
}

func (e Entry) String() string {
	return fmt.Sprintf("%s @%s", e.quantity, e.price)
}

// reserved keys of the flat JSON representation.
const (
	attrQuantity = "quantity"
	attrPrice    = "price"
	attrFactor   = "factor"
)

// MarshalJSON writes the entry as a flat object: quantity, price, factor (only
// when it is not 1) then the data fields.
func (e Entry) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append(attrQuantity, e.quantity)
	w.Append(attrPrice, e.price)
	if !e.factor.Equal(decimal.NewFromInt(1)) {
		w.Append(attrFactor, e.factor)
	}
	if len(e.data) > 0 {
		w.EmbedFrom(map[string]any(e.data))
	}
	return w.MarshalJSON()
}

// UnmarshalJSON reads a flat object. quantity and price are required, every
// field other than the reserved ones ends up in the entry's data.
func (e *Entry) UnmarshalJSON(b []byte) error {
	dec := json.NewDecoder(bytes.NewReader(b))
	dec.UseNumber()
	var jobj map[string]any
	if err := dec.Decode(&jobj); err != nil {
		return err
	}
	if jobj == nil {
		return fmt.Errorf("entry must be a json object")
	}
	ne, err := entryFromValues(jobj[attrQuantity], jobj[attrPrice], jobj[attrFactor])
	if err != nil {
		return err
	}
	delete(jobj, attrQuantity)
	delete(jobj, attrPrice)
	delete(jobj, attrFactor)
	if len(jobj) > 0 {
		ne.data = Data(jobj)
	}
	*e = ne
	return nil
}

// entryFromValues builds an entry from loosely typed json values. factor may be nil.
func entryFromValues(quantity, price, factor any) (Entry, error) {
	q, err := decimalFrom(attrQuantity, quantity)
	if err != nil {
		return Entry{}, err
	}
	p, err := decimalFrom(attrPrice, price)
	if err != nil {
		return Entry{}, err
	}
	var opts []EntryOption
	if factor != nil {
		f, err := decimalFrom(attrFactor, factor)
		if err != nil {
			return Entry{}, err
		}
		opts = append(opts, WithFactor(f))
	}
	return NewEntry(Q(q), P(p), opts...), nil
}

// decimalFrom converts a json value (number or numeric string) into a decimal.
func decimalFrom(name string, v any) (decimal.Decimal, error) {
	switch t := v.(type) {
	case nil:
		return decimal.Decimal{}, fmt.Errorf("missing %q", name)
	case json.Number:
		return decimalFrom(name, t.String())
	case string:
		d, err := decimal.NewFromString(t)
		if err != nil {
			return decimal.Decimal{}, fmt.Errorf("invalid %q %q: %w", name, t, err)
		}
		return d, nil
	case float64:
		return decimal.NewFromFloat(t), nil
	default:
		return decimal.Decimal{}, fmt.Errorf("invalid %q: expecting a number, got %T", name, v)
	}
}
