package fifo

import "github.com/shopspring/decimal"

// E is a helper for test to create an entry from consts.
func E(quantity, price float64) Entry { return NewEntry(Q(quantity), P(price)) }

// EF is a helper for test to create a factored entry from consts.
func EF(quantity, price, factor float64) Entry {
	return NewEntry(Q(quantity), P(price), WithFactor(decimal.NewFromFloat(factor)))
}

// ED is a helper for test to create an entry with an id.
func ED(quantity, price float64, id string) Entry {
	return NewEntry(Q(quantity), P(price), WithData(Data{"id": id}))
}
