// Package fifo computes the First-In-First-Out accounting of a stream of
// stock movements.
//
// The core is a matching engine, FIFO, that consumes chronologically sorted
// entries (signed quantity at a unit price) and produces:
//   - the inventory: the open lots, oldest first, and their valuation;
//   - the trace: the chronological list of lot fragments that were closed,
//     with the entry fragments that closed them, from which the realized
//     gains are derived.
//
// Short positions (selling before buying) are handled the same way as long
// positions: an entry bigger than the whole inventory closes it and opens a
// position in the other direction.
//
// All quantities, prices and amounts are exact decimals.
//
// The package also provides the plumbing around the engine: decoding entries
// from CSV or JSONL, splitting a mixed stream per instrument and computing
// several streams concurrently. It serves as the foundational logic for the
// `fifo` command-line tool.
package fifo
