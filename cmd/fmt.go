package cmd

import (
	"bytes"
	"context"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/etnz/fifo"
	"github.com/google/subcommands"
)

type fmtCmd struct {
	inputFlags
	outputFile string

	stdin  io.Reader
	stdout io.Writer
}

func (*fmtCmd) Name() string { return "fmt" }
func (*fmtCmd) Synopsis() string {
	return "validates and formats entries into a canonical JSONL form"
}
func (*fmtCmd) Usage() string {
	return `fifo fmt [-o <file>] [-input <csv|jsonl>] <file|->

  Validates the entries in <file> (or stdin for "-") and writes them in the
  canonical JSONL format: exact decimals, the factor only when it is not 1,
  and every other field kept as is.

Usage Examples:
# Converts a CSV file to JSONL.
$ fifo fmt -o trades.jsonl trades.csv

`
}

func (c *fmtCmd) SetFlags(f *flag.FlagSet) {
	c.inputFlags.SetFlags(f)
	f.StringVar(&c.outputFile, "o", "", "Output file. Defaults to stdout.")
}

func (c *fmtCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		f.Usage()
		return subcommands.ExitUsageError
	}
	stdin := c.stdin
	if stdin == nil {
		stdin = os.Stdin
	}

	entries, err := c.read(f.Arg(0), stdin)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading entries: %v\n", err)
		return subcommands.ExitFailure
	}

	// Encode everything first, so that an input file can be formatted in-place.
	var b bytes.Buffer
	if err := fifo.EncodeEntries(&b, entries); err != nil {
		fmt.Fprintf(os.Stderr, "Error formatting entries: %v\n", err)
		return subcommands.ExitFailure
	}

	if c.outputFile != "" {
		if err := os.WriteFile(c.outputFile, b.Bytes(), 0644); err != nil {
			fmt.Fprintf(os.Stderr, "Error writing %q: %v\n", c.outputFile, err)
			return subcommands.ExitFailure
		}
		log := Logger()
		log.Info().Str("file", c.outputFile).Int("entries", len(entries)).Msg("formatted")
		return subcommands.ExitSuccess
	}

	stdout := c.stdout
	if stdout == nil {
		stdout = os.Stdout
	}
	if _, err := b.WriteTo(stdout); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing entries: %v\n", err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}
