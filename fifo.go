package fifo

// FIFO computes the First-In-First-Out accounting of a stream of entries:
// the inventory still in hand and the trace of closed lots.
//
// A FIFO is computed once, by New, and is read-only afterwards. It is safe for
// concurrent reads.
type FIFO struct {
	balance   Quantity
	inventory lots
	trace     []Match
}

// New computes the FIFO accounting of entries.
//
// Entries must already be sorted chronologically, New processes them in the
// given order. The entries are not modified.
func New(entries []Entry) *FIFO {
	f := &FIFO{}
	for _, e := range entries {
		f.add(e)
	}
	return f
}

// add routes a single entry.
//
// | Stock    | Entry | Action                                 |
// |----------|-------|----------------------------------------|
// | >= 0     | buy   | push                                   |
// | <= 0     | sell  | push                                   |
// | > 0      | sell  | close the oldest lots (and reverse)    |
// | < 0      | buy   | fill the backorders (and reverse)      |
//
// Zero quantity entries never change anything.
func (f *FIFO) add(e Entry) {
	if e.IsZero() {
		return
	}
	if (!f.balance.IsNegative() && e.IsBuy()) || (!f.balance.IsPositive() && e.IsSell()) {
		f.push(e.Copy())
		return
	}
	f.fill(e)
}

// push adds a new lot at the back of the inventory.
func (f *FIFO) push(e Entry) {
	f.inventory.pushBack(e)
	f.balance = f.balance.Add(e.quantity)
}

// fill closes the inventory lots, oldest first, against e whose direction is
// opposite to the balance. If e is bigger than the whole inventory, the
// remainder opens a position in the other direction.
func (f *FIFO) fill(e Entry) {
	entry := e.Copy()

	for !entry.IsZero() {
		if f.inventory.Len() == 0 {
			// reversal
			f.push(entry)
			return
		}

		earliest := f.inventory.popFront()

		if !entry.Size().GreaterThan(earliest.Size()) {
			// entry is consumed by the earliest lot, possibly exactly.
			closed := earliest.WithQuantity(entry.quantity.Neg())
			earliest.quantity = earliest.quantity.Add(entry.quantity)
			if !earliest.IsZero() {
				f.inventory.pushFront(earliest)
			}
			f.trace = append(f.trace, Match{Closed: closed, Closing: entry})
			f.balance = f.balance.Add(entry.quantity)
			return
		}

		// earliest lot is consumed, the remainder of entry goes on.
		closing := entry.WithQuantity(earliest.quantity.Neg())
		entry.quantity = entry.quantity.Add(earliest.quantity)
		f.trace = append(f.trace, Match{Closed: earliest, Closing: closing})
		f.balance = f.balance.Add(closing.quantity)
	}
}
