// Package renderer renders the FIFO accounting as markdown.
package renderer

import (
	"fmt"
	"io"
	"strings"

	"github.com/etnz/fifo"
)

// Options holds configuration for rendering a report.
type Options struct {
	Currency string // Format amounts in this currency, plain decimals if empty.
	Quiet    bool   // Do not render the trace.
	Label    string // Data field used to identify entries in the tables (e.g. "id").
}

// Markdown renders the summary, the inventory and the trace of f.
func Markdown(title string, f *fifo.FIFO, opts Options) string {
	var b strings.Builder
	s := f.Summary()

	fmt.Fprintf(&b, "# %s\n\n", title)

	fmt.Fprintln(&b, "| Metric | Value |")
	fmt.Fprintln(&b, "|:---|---:|")
	fmt.Fprintf(&b, "| Available Stock | %s |\n", s.Stock)
	fmt.Fprintf(&b, "| Stock Valuation | %s |\n", s.Valuation.Format(opts.Currency))
	fmt.Fprintf(&b, "| Average Cost | %s |\n", price(s.AvgCost))
	fmt.Fprintf(&b, "| Factored Stock Valuation | %s |\n", s.ValuationFactored.Format(opts.Currency))
	fmt.Fprintf(&b, "| Factored Average Cost | %s |\n", price(s.AvgCostFactored))
	fmt.Fprintf(&b, "| Realized Gains | %s |\n", s.RealizedPnL.SignedString(opts.Currency))
	fmt.Fprintf(&b, "| Trace Length | %d |\n", s.Matches)

	ConditionalBlock(&b, func(w io.Writer) bool {
		fmt.Fprint(w, "\n## Inventory\n\n")
		fmt.Fprintln(w, "| # | Entry | Quantity | Price | Factor | Value |")
		fmt.Fprintln(w, "|---:|:---|---:|---:|---:|---:|")
		lots := f.Inventory()
		for i, lot := range lots {
			fmt.Fprintf(w, "| %d | %s | %s | %s | %s | %s |\n",
				i+1,
				label(lot, opts.Label),
				lot.Quantity(),
				lot.Price(),
				lot.Factor(),
				lot.Value().Format(opts.Currency),
			)
		}
		return len(lots) > 0
	})

	if opts.Quiet {
		return b.String()
	}

	ConditionalBlock(&b, func(w io.Writer) bool {
		fmt.Fprint(w, "\n## Trace\n\n")
		fmt.Fprintln(w, "| # | Closed | Closing | Quantity | Open Price | Close Price | Gain |")
		fmt.Fprintln(w, "|---:|:---|:---|---:|---:|---:|---:|")
		trace := f.Trace()
		for i, m := range trace {
			fmt.Fprintf(w, "| %d | %s | %s | %s | %s | %s | %s |\n",
				i+1,
				label(m.Closed, opts.Label),
				label(m.Closing, opts.Label),
				m.Quantity(),
				m.Closed.Price(),
				m.Closing.Price(),
				m.PnL().SignedString(opts.Currency),
			)
		}
		return len(trace) > 0
	})

	return b.String()
}

// price renders an optional average cost.
func price(p *fifo.Price) string {
	if p == nil {
		return "-"
	}
	return p.String()
}

// label identifies an entry in a table using its data field key.
func label(e fifo.Entry, key string) string {
	if key == "" {
		return "-"
	}
	v, ok := e.Get(key)
	if !ok {
		return "-"
	}
	return orDash(fmt.Sprint(v))
}
