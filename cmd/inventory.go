package cmd

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/etnz/fifo"
	"github.com/google/subcommands"
)

type inventoryCmd struct {
	inputFlags

	stdin  io.Reader
	stdout io.Writer
}

func (*inventoryCmd) Name() string     { return "inventory" }
func (*inventoryCmd) Synopsis() string { return "print the open lots as JSONL entries" }
func (*inventoryCmd) Usage() string {
	return `fifo inventory [-input <csv|jsonl>] <file|->

  Computes the FIFO accounting of the entries in <file> (or stdin for "-")
  and prints the lots still open, oldest first, one JSON entry per line.

  The output can be used as the opening position of a later computation.

`
}

func (c *inventoryCmd) SetFlags(f *flag.FlagSet) {
	c.inputFlags.SetFlags(f)
}

func (c *inventoryCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		f.Usage()
		return subcommands.ExitUsageError
	}
	stdin, stdout := c.stdin, c.stdout
	if stdin == nil {
		stdin = os.Stdin
	}
	if stdout == nil {
		stdout = os.Stdout
	}

	entries, err := c.read(f.Arg(0), stdin)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading entries: %v\n", err)
		return subcommands.ExitFailure
	}

	if err := fifo.EncodeEntries(stdout, fifo.New(entries).Inventory()); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing inventory: %v\n", err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}
