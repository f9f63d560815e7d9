package server

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/rs/zerolog"
)

func post(t *testing.T, body string) (int, []byte) {
	t.Helper()
	app := New(zerolog.Nop())

	req := httptest.NewRequest(http.MethodPost, "/api/v1/fifo", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req, -1)
	if err != nil {
		t.Fatalf("app.Test() unexpected error: %v", err)
	}
	defer resp.Body.Close()
	b, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("reading response: %v", err)
	}
	return resp.StatusCode, b
}

func TestCompute(t *testing.T) {
	body := `{"entries":[
		{"quantity":60,"price":10,"id":"a"},
		{"quantity":10,"price":12,"id":"b"},
		{"quantity":-50,"price":10,"id":"c"}
	]}`
	status, b := post(t, body)
	if status != http.StatusOK {
		t.Fatalf("status = %d, want 200: %s", status, b)
	}

	var resp struct {
		ID      string `json:"id"`
		Summary struct {
			Stock   string `json:"stock"`
			AvgCost string `json:"avgCost"`
			Matches int    `json:"matches"`
		} `json:"summary"`
		Inventory []map[string]any `json:"inventory"`
		Trace     []struct {
			Closed  map[string]any `json:"closed"`
			Closing map[string]any `json:"closing"`
			PnL     string         `json:"pnl"`
		} `json:"trace"`
	}
	if err := json.Unmarshal(b, &resp); err != nil {
		t.Fatalf("response is not valid json: %v: %s", err, b)
	}
	if resp.ID == "" {
		t.Errorf("response has no id")
	}
	if resp.Summary.Stock != "20" || resp.Summary.AvgCost != "11" || resp.Summary.Matches != 1 {
		t.Errorf("summary = %+v, want stock 20, avgCost 11, 1 match", resp.Summary)
	}
	if len(resp.Inventory) != 2 || resp.Inventory[0]["id"] != "a" || resp.Inventory[0]["quantity"] != "10" {
		t.Errorf("inventory = %v, want [10 @10 (a), 10 @12 (b)]", resp.Inventory)
	}
	if len(resp.Trace) != 1 || resp.Trace[0].Closed["id"] != "a" || resp.Trace[0].Closing["id"] != "c" || resp.Trace[0].PnL != "0" {
		t.Errorf("trace = %+v, want a single match of a by c", resp.Trace)
	}
}

func TestCompute_Empty(t *testing.T) {
	status, b := post(t, `{"entries":[]}`)
	if status != http.StatusOK {
		t.Fatalf("status = %d, want 200: %s", status, b)
	}
	if !bytes.Contains(b, []byte(`"inventory":[]`)) || !bytes.Contains(b, []byte(`"trace":[]`)) {
		t.Errorf("response = %s, want empty inventory and trace", b)
	}
}

func TestCompute_BadRequest(t *testing.T) {
	for _, body := range []string{`{"entries":`, `{"entries":[{"price":1}]}`} {
		status, b := post(t, body)
		if status != http.StatusBadRequest {
			t.Errorf("status = %d, want 400 for %s", status, body)
		}
		var e ErrorResponse
		if err := json.Unmarshal(b, &e); err != nil || e.Error == "" {
			t.Errorf("response = %s, want an error message", b)
		}
	}
}

func TestHealth(t *testing.T) {
	app := New(zerolog.Nop())
	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/health", nil), -1)
	if err != nil {
		t.Fatalf("app.Test() unexpected error: %v", err)
	}
	if resp.StatusCode != http.StatusOK {
		t.Errorf("status = %d, want 200", resp.StatusCode)
	}
}
