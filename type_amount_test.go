package fifo

import "testing"

func TestAmount_Format(t *testing.T) {
	testCases := []struct {
		amount   Amount
		currency string
		want     string
	}{
		{A(1234.5), "USD", "$1,234.50"},
		{A(1234.5), "", "1234.5"},
		{A(1234.5), "XXX-unknown", "1234.5"},
		{A(0.125), "USD", "$0.13"},
	}
	for _, tc := range testCases {
		if got := tc.amount.Format(tc.currency); got != tc.want {
			t.Errorf("%v.Format(%q) = %q, want %q", tc.amount, tc.currency, got, tc.want)
		}
	}
}

func TestAmount_SignedString(t *testing.T) {
	if got := A(0).SignedString("USD"); got != "-" {
		t.Errorf("SignedString() = %q, want %q", got, "-")
	}
	if got := A(10).SignedString(""); got != "+10" {
		t.Errorf("SignedString() = %q, want %q", got, "+10")
	}
	if got := A(-10).SignedString(""); got != "-10" {
		t.Errorf("SignedString() = %q, want %q", got, "-10")
	}
}
