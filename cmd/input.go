package cmd

import (
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/etnz/fifo"
)

// inputFlags are the flags shared by the commands reading entries.
type inputFlags struct {
	input    string
	quantity string
	price    string
	factor   string
}

func (in *inputFlags) SetFlags(f *flag.FlagSet) {
	f.StringVar(&in.input, "input", "", "Input format (csv, jsonl). Guessed from the file extension by default.")
	f.StringVar(&in.quantity, "quantity", "", "jsonpath of the quantity in jsonl input (default $.quantity)")
	f.StringVar(&in.price, "price", "", "jsonpath of the price in jsonl input (default $.price)")
	f.StringVar(&in.factor, "factor", "", "jsonpath of the factor in jsonl input (default $.factor)")
}

// formatOf returns the input format to use for filename.
func (in *inputFlags) formatOf(filename string) (string, error) {
	format := in.input
	if format == "" {
		switch strings.ToLower(filepath.Ext(filename)) {
		case ".jsonl", ".json", ".ndjson":
			format = "jsonl"
		default:
			format = "csv"
		}
	}
	switch format {
	case "csv", "jsonl":
		return format, nil
	default:
		return "", fmt.Errorf("unknown input format %q", format)
	}
}

// decode reads entries from r.
func (in *inputFlags) decode(r io.Reader, format string) ([]fifo.Entry, error) {
	if format == "jsonl" {
		return fifo.DecodeJSONL(r, fifo.Mapping{Quantity: in.quantity, Price: in.price, Factor: in.factor})
	}
	return fifo.DecodeCSV(r)
}

// read reads entries from filename, or stdin if filename is "-".
func (in *inputFlags) read(filename string, stdin io.Reader) ([]fifo.Entry, error) {
	format, err := in.formatOf(filename)
	if err != nil {
		return nil, err
	}
	if filename == "-" {
		return in.decode(stdin, format)
	}

	f, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("cannot open %q for reading: %w", filename, err)
	}
	defer f.Close()

	entries, err := in.decode(f, format)
	if err != nil {
		return nil, fmt.Errorf("in %q: %w", filename, err)
	}
	return entries, nil
}
