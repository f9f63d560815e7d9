package fifo

import (
	"github.com/gammazero/deque"
)

// lots is the inventory: open lots ordered by arrival, oldest at the front.
// All lots share the same sign and none has a zero quantity.
type lots struct {
	q deque.Deque[Entry]
}

func (l *lots) Len() int { return l.q.Len() }

// pushBack appends a new lot, it becomes the most recent one.
func (l *lots) pushBack(e Entry) { l.q.PushBack(e) }

// pushFront puts back a partially consumed lot, it is still the oldest one.
func (l *lots) pushFront(e Entry) { l.q.PushFront(e) }

// popFront removes and returns the oldest lot.
func (l *lots) popFront() Entry { return l.q.PopFront() }

// all returns a copy of the lots, oldest first.
func (l *lots) all() []Entry {
	list := make([]Entry, 0, l.q.Len())
	for i := 0; i < l.q.Len(); i++ {
		list = append(list, l.q.At(i).Copy())
	}
	return list
}

// sum returns the signed sum of the lots quantities.
func (l *lots) sum() Quantity {
	var total Quantity
	for i := 0; i < l.q.Len(); i++ {
		total = total.Add(l.q.At(i).quantity)
	}
	return total
}

// cost returns the sum of quantity times price of the lots.
func (l *lots) cost() Amount {
	var total Amount
	for i := 0; i < l.q.Len(); i++ {
		total = total.Add(l.q.At(i).Cost())
	}
	return total
}

// value returns the sum of quantity times price times factor of the lots.
func (l *lots) value() Amount {
	var total Amount
	for i := 0; i < l.q.Len(); i++ {
		total = total.Add(l.q.At(i).Value())
	}
	return total
}
