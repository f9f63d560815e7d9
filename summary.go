package fifo

// Summary gathers the figures of a computed FIFO.
type Summary struct {
	Stock             Quantity
	Lots              int
	Valuation         Amount
	ValuationFactored Amount
	AvgCost           *Price // nil when the stock is zero.
	AvgCostFactored   *Price // nil when the stock is zero.
	Matches           int
	RealizedPnL       Amount
}

// Summary returns the figures of f.
func (f *FIFO) Summary() Summary {
	s := Summary{
		Stock:             f.Stock(),
		Lots:              f.inventory.Len(),
		Valuation:         f.Valuation(),
		ValuationFactored: f.ValuationFactored(),
		Matches:           len(f.trace),
		RealizedPnL:       f.RealizedPnL(),
	}
	if avg, ok := f.AvgCost(); ok {
		s.AvgCost = &avg
	}
	if avg, ok := f.AvgCostFactored(); ok {
		s.AvgCostFactored = &avg
	}
	return s
}

func (s Summary) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("stock", s.Stock)
	w.Append("lots", s.Lots)
	w.Append("valuation", s.Valuation)
	w.Append("valuationFactored", s.ValuationFactored)
	w.Optional("avgCost", s.AvgCost)
	w.Optional("avgCostFactored", s.AvgCostFactored)
	w.Append("matches", s.Matches)
	w.Append("realizedPnL", s.RealizedPnL)
	return w.MarshalJSON()
}
