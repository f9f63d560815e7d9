package fifo

// Match is a trace element: a fragment of an open lot that was closed by a
// fragment of a later, opposite, entry.
//
// Both fragments have the same size and opposite quantities.
type Match struct {
	Closed  Entry // the fragment of the lot that was closed.
	Closing Entry // the fragment of the entry that closed it.
}

// Quantity returns the size that was closed.
func (m Match) Quantity() Quantity { return m.Closed.Size() }

// PnL returns the realized gain (or loss if negative) of the match, using
// factored values.
func (m Match) PnL() Amount {
	return m.Closed.Value().Add(m.Closing.Value()).Neg()
}

func (m Match) String() string {
	return "(" + m.Closed.String() + "),(" + m.Closing.String() + ")"
}

func (m Match) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("closed", m.Closed)
	w.Append("closing", m.Closing)
	w.Append("pnl", m.PnL())
	return w.MarshalJSON()
}
