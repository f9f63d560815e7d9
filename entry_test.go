package fifo

import (
	"encoding/json"
	"testing"

	"github.com/shopspring/decimal"
)

func TestEntry_Properties(t *testing.T) {
	testCases := []struct {
		name                    string
		entry                   Entry
		wantSize                float64
		wantBuy, wantSell, zero bool
		wantValue               float64
	}{
		{"buy", E(100, 10), 100, true, false, false, 1000},
		{"sell", E(-100, 10), 100, false, true, false, -1000},
		{"zero is a sell", E(0, 10), 0, false, true, true, 0},
		{"factored", EF(-2, 10, 50), 2, false, true, false, -1000},
		{"negative price", E(3, -2), 3, true, false, false, -6},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			e := tc.entry
			if got := e.Size(); !got.Equal(Q(tc.wantSize)) {
				t.Errorf("Size() = %v, want %v", got, tc.wantSize)
			}
			if got := e.IsBuy(); got != tc.wantBuy {
				t.Errorf("IsBuy() = %v, want %v", got, tc.wantBuy)
			}
			if got := e.IsSell(); got != tc.wantSell {
				t.Errorf("IsSell() = %v, want %v", got, tc.wantSell)
			}
			if got := e.IsZero(); got != tc.zero {
				t.Errorf("IsZero() = %v, want %v", got, tc.zero)
			}
			if got := e.Value(); !got.Equal(A(tc.wantValue)) {
				t.Errorf("Value() = %v, want %v", got, tc.wantValue)
			}
		})
	}
}

func TestEntry_DefaultFactor(t *testing.T) {
	if got := E(1, 1).Factor(); !got.Equal(decimal.NewFromInt(1)) {
		t.Errorf("Factor() = %v, want 1", got)
	}
}

func TestEntry_WithQuantity(t *testing.T) {
	e := NewEntry(Q(100), P(10), WithFactor(decimal.NewFromInt(2)), WithData(Data{"id": "t1"}))

	c := e.WithQuantity(Q(-30))
	if got := c.Quantity(); !got.Equal(Q(-30)) {
		t.Errorf("Quantity() = %v, want -30", got)
	}
	if !c.Price().Equal(e.Price()) || !c.Factor().Equal(e.Factor()) {
		t.Errorf("WithQuantity() = %v, price and factor must be kept from %v", c, e)
	}
	if id, _ := c.Get("id"); id != "t1" {
		t.Errorf("Get(id) = %v, want t1", id)
	}

	if got := e.Copy().Quantity(); !got.Equal(Q(100)) {
		t.Errorf("Copy().Quantity() = %v, want 100", got)
	}

	// data is not shared between copies.
	data := Data{"id": "t2"}
	orig := NewEntry(Q(1), P(1), WithData(data))
	data["id"] = "changed"
	if id, _ := orig.Get("id"); id != "t2" {
		t.Errorf("Get(id) = %v, want t2", id)
	}
}

func TestEntry_JSON(t *testing.T) {
	t.Run("marshal", func(t *testing.T) {
		e := NewEntry(Q(100), P(10.5), WithData(Data{"id": "t1", "date": "2025-01-02"}))
		got, err := json.Marshal(e)
		if err != nil {
			t.Fatalf("json.Marshal() unexpected error: %v", err)
		}
		want := `{"quantity":"100","price":"10.5","date":"2025-01-02","id":"t1"}`
		if string(got) != want {
			t.Errorf("json.Marshal() = %s, want %s", got, want)
		}
	})

	t.Run("marshal factor", func(t *testing.T) {
		got, err := json.Marshal(EF(-1, 2, 3))
		if err != nil {
			t.Fatalf("json.Marshal() unexpected error: %v", err)
		}
		if want := `{"quantity":"-1","price":"2","factor":"3"}`; string(got) != want {
			t.Errorf("json.Marshal() = %s, want %s", got, want)
		}
	})

	t.Run("marshal reserved data keys", func(t *testing.T) {
		e := NewEntry(Q(1), P(2), WithData(Data{"quantity": "x", "factor": 3, "id": "a"}))
		got, err := json.Marshal(e)
		if err != nil {
			t.Fatalf("json.Marshal() unexpected error: %v", err)
		}
		if want := `{"quantity":"1","price":"2","id":"a"}`; string(got) != want {
			t.Errorf("json.Marshal() = %s, want %s", got, want)
		}
		if _, ok := e.Get("quantity"); ok {
			t.Errorf("Get(quantity) found a data field, want none")
		}
	})

	t.Run("unmarshal", func(t *testing.T) {
		var e Entry
		if err := json.Unmarshal([]byte(`{"quantity":-5,"price":"1.25","factor":2,"id":"x","n":3}`), &e); err != nil {
			t.Fatalf("json.Unmarshal() unexpected error: %v", err)
		}
		if !e.Quantity().Equal(Q(-5)) || !e.Price().Equal(P(1.25)) || !e.Factor().Equal(decimal.NewFromInt(2)) {
			t.Errorf("json.Unmarshal() = %v factor %v, want -5 @1.25 factor 2", e, e.Factor())
		}
		if id, _ := e.Get("id"); id != "x" {
			t.Errorf("Get(id) = %v, want x", id)
		}
		if n, _ := e.Get("n"); n != json.Number("3") {
			t.Errorf("Get(n) = %#v, want json.Number(3)", n)
		}
	})

	t.Run("unmarshal errors", func(t *testing.T) {
		for _, in := range []string{`{"price":1}`, `{"quantity":1}`, `{"quantity":true,"price":1}`, `{"quantity":"x","price":1}`, `null`, `[]`} {
			var e Entry
			if err := json.Unmarshal([]byte(in), &e); err == nil {
				t.Errorf("json.Unmarshal(%s) expected an error, got nil", in)
			}
		}
	})
}
