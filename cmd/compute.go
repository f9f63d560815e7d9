package cmd

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/etnz/fifo"
	"github.com/etnz/fifo/renderer"
	"github.com/google/subcommands"
)

// computeCmd holds the flags for the 'compute' subcommand.
type computeCmd struct {
	inputFlags
	quiet    bool
	format   string
	currency string
	by       string
	label    string

	stdin  io.Reader // defaults to os.Stdin
	stdout io.Writer // defaults to os.Stdout, rendered as markdown for terminals.
}

func (*computeCmd) Name() string     { return "compute" }
func (*computeCmd) Synopsis() string { return "compute the FIFO inventory and trace of a list of entries" }
func (*computeCmd) Usage() string {
	return `fifo compute [-q] [-format <markdown|json>] [-currency <code>] [-by <field>] [-input <csv|jsonl>] <file|->

  Computes the FIFO accounting of the entries in <file> (or stdin for "-"),
  and prints the stock, its valuation, the average cost, the open lots and
  the trace of closed lots.

  Entries must be sorted chronologically.

`
}

func (c *computeCmd) SetFlags(f *flag.FlagSet) {
	c.inputFlags.SetFlags(f)
	f.BoolVar(&c.quiet, "q", false, "Do not print the trace")
	f.StringVar(&c.format, "format", "markdown", "Output format (markdown, json)")
	f.StringVar(&c.currency, "currency", "", "Currency code used to format amounts")
	f.StringVar(&c.by, "by", "", "Data field used to split the entries into one stream per instrument")
	f.StringVar(&c.label, "label", "id", "Data field used to identify entries in the tables")
}

func (c *computeCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		f.Usage()
		return subcommands.ExitUsageError
	}
	if c.format != "markdown" && c.format != "json" {
		fmt.Fprintf(os.Stderr, "Error: unknown output format %q\n", c.format)
		return subcommands.ExitUsageError
	}
	log := Logger()

	stdin := c.stdin
	if stdin == nil {
		stdin = os.Stdin
	}
	filename := f.Arg(0)
	entries, err := c.read(filename, stdin)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading entries: %v\n", err)
		return subcommands.ExitFailure
	}
	log.Debug().Str("file", filename).Int("entries", len(entries)).Msg("entries loaded")

	keys, streams := []string{""}, map[string][]fifo.Entry{"": entries}
	if c.by != "" {
		keys, streams = fifo.SplitBy(entries, c.by)
	}

	start := time.Now()
	results, err := fifo.ComputeAll(ctx, streams)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error computing: %v\n", err)
		return subcommands.ExitFailure
	}
	log.Debug().Int("streams", len(keys)).Dur("runtime", time.Since(start)).Msg("computed")

	if c.format == "json" {
		return c.printJSON(keys, results)
	}

	opts := renderer.Options{Currency: c.currency, Quiet: c.quiet, Label: c.label}
	var md string
	for _, key := range keys {
		title := "FIFO Accounting"
		if key != "" {
			title = fmt.Sprintf("FIFO Accounting for %s", key)
		}
		md += renderer.Markdown(title, results[key], opts) + "\n"
	}
	if c.stdout != nil {
		writeMarkdown(c.stdout, md, false)
	} else {
		printMarkdown(md)
	}
	return subcommands.ExitSuccess
}

// jsonReport is the json output of the compute command, for one stream.
type jsonReport struct {
	Key       string       `json:"key,omitempty"`
	Summary   fifo.Summary `json:"summary"`
	Inventory []fifo.Entry `json:"inventory"`
	Trace     []fifo.Match `json:"trace,omitempty"`
}

func (c *computeCmd) printJSON(keys []string, results map[string]*fifo.FIFO) subcommands.ExitStatus {
	w := c.stdout
	if w == nil {
		w = os.Stdout
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	for _, key := range keys {
		f := results[key]
		r := jsonReport{Key: key, Summary: f.Summary(), Inventory: f.Inventory()}
		if !c.quiet {
			r.Trace = f.Trace()
		}
		if err := enc.Encode(r); err != nil {
			fmt.Fprintf(os.Stderr, "Error writing report: %v\n", err)
			return subcommands.ExitFailure
		}
	}
	return subcommands.ExitSuccess
}
