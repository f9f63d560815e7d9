package fifo

// IsEmpty reports whether the inventory has no lots.
func (f *FIFO) IsEmpty() bool { return f.inventory.Len() == 0 }

// Stock returns the quantity in hand, negative for a short position.
func (f *FIFO) Stock() Quantity { return f.balance }

// Inventory returns a copy of the open lots, oldest first.
func (f *FIFO) Inventory() []Entry { return f.inventory.all() }

// Trace returns a copy of the matches, in the order they happened.
func (f *FIFO) Trace() []Match { return append(make([]Match, 0, len(f.trace)), f.trace...) }

// Valuation returns the sum of quantity times price of the open lots.
func (f *FIFO) Valuation() Amount { return f.inventory.cost() }

// ValuationFactored returns the sum of quantity times price times factor of
// the open lots.
func (f *FIFO) ValuationFactored() Amount { return f.inventory.value() }

// AvgCost returns the average unit cost of the stock. It is not defined when
// the stock is zero.
func (f *FIFO) AvgCost() (Price, bool) {
	if f.balance.IsZero() {
		return Price{}, false
	}
	return f.Valuation().Per(f.balance), true
}

// AvgCostFactored is like AvgCost but using the factored valuation.
func (f *FIFO) AvgCostFactored() (Price, bool) {
	if f.balance.IsZero() {
		return Price{}, false
	}
	return f.ValuationFactored().Per(f.balance), true
}

// RealizedPnL returns the sum of the realized gains of all matches.
func (f *FIFO) RealizedPnL() Amount {
	var total Amount
	for _, m := range f.trace {
		total = total.Add(m.PnL())
	}
	return total
}
