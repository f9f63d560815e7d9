package fifo

import (
	"bufio"
	"bytes"
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/PaesslerAG/jsonpath"
	"github.com/shopspring/decimal"
)

// This file contains the code to read entries from the two supported formats:
//
//   CSV:   "quantity,price[,factor]" records, or a header line naming the
//          columns, in which case any column other than quantity, price and
//          factor is kept as entry data.
//   JSONL: one JSON object per line. The quantity, price and factor are
//          located with jsonpath expressions, the rest of the object is kept
//          as entry data.

// DecodeCSV reads entries from a CSV source.
func DecodeCSV(r io.Reader) ([]Entry, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true

	var (
		entries []Entry
		header  []string // nil when the file is headerless
		first   = true
	)
	for {
		record, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("format error: %w", err)
		}
		line, _ := cr.FieldPos(0)

		if first {
			first = false
			record[0] = strings.TrimPrefix(record[0], "\ufeff")
			if _, err := decimal.NewFromString(strings.TrimSpace(record[0])); err != nil {
				header, err = csvHeader(record)
				if err != nil {
					return nil, fmt.Errorf("format error on line %d: %w", line, err)
				}
				continue
			}
		}

		var e Entry
		if header == nil {
			e, err = csvPositional(record)
		} else {
			e, err = csvNamed(header, record)
		}
		if err != nil {
			return nil, fmt.Errorf("format error on line %d: %w", line, err)
		}
		entries = append(entries, e)
	}
	return entries, nil
}

// csvHeader normalizes and checks the header record.
func csvHeader(record []string) ([]string, error) {
	header := make([]string, len(record))
	seen := make(map[string]bool)
	for i, h := range record {
		h = strings.ToLower(strings.TrimSpace(h))
		if seen[h] {
			return nil, fmt.Errorf("duplicated column %q", h)
		}
		seen[h] = true
		header[i] = h
	}
	if !seen[attrQuantity] || !seen[attrPrice] {
		return nil, fmt.Errorf("header must have a %q and a %q column", attrQuantity, attrPrice)
	}
	return header, nil
}

// csvPositional decodes a "quantity,price[,factor]" record.
func csvPositional(record []string) (Entry, error) {
	if len(record) < 2 || len(record) > 3 {
		return Entry{}, fmt.Errorf("expecting 'quantity,price[,factor]', got %d fields", len(record))
	}
	var factor any
	if len(record) == 3 {
		factor = strings.TrimSpace(record[2])
	}
	return entryFromValues(strings.TrimSpace(record[0]), strings.TrimSpace(record[1]), factor)
}

// csvNamed decodes a record according to the header.
func csvNamed(header, record []string) (Entry, error) {
	if len(record) != len(header) {
		return Entry{}, fmt.Errorf("expecting %d fields, got %d", len(header), len(record))
	}
	var quantity, price, factor any
	var data Data
	for i, h := range header {
		v := strings.TrimSpace(record[i])
		switch h {
		case attrQuantity:
			quantity = v
		case attrPrice:
			price = v
		case attrFactor:
			if v != "" {
				factor = v
			}
		default:
			if data == nil {
				data = make(Data)
			}
			data[h] = v
		}
	}
	e, err := entryFromValues(quantity, price, factor)
	if err != nil {
		return Entry{}, err
	}
	e.data = data
	return e, nil
}

// Mapping locates the entry's fields in a JSON object, using jsonpath
// expressions. Empty expressions default to the top level "quantity",
// "price" and "factor" properties.
//
// The factor is optional only at its default location: a Factor expression
// that matches nothing is an error.
type Mapping struct {
	Quantity string
	Price    string
	Factor   string
}

func (m Mapping) withDefaults() Mapping {
	if m.Quantity == "" {
		m.Quantity = "$." + attrQuantity
	}
	if m.Price == "" {
		m.Price = "$." + attrPrice
	}
	return m
}

// DecodeJSONL reads entries from a JSONL source, one JSON object per line.
// Empty lines are ignored.
func DecodeJSONL(r io.Reader, m Mapping) ([]Entry, error) {
	m = m.withDefaults()

	var entries []Entry
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	i := 0
	for scanner.Scan() {
		i++
		line := bytes.TrimSpace(scanner.Bytes())
		if len(line) == 0 {
			continue
		}
		e, err := decodeJSONEntry(line, m)
		if err != nil {
			return nil, fmt.Errorf("format error on line %d: %w", i, err)
		}
		entries = append(entries, e)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading entries: %w", err)
	}
	return entries, nil
}

// decodeJSONEntry decodes a single JSON object.
func decodeJSONEntry(line []byte, m Mapping) (Entry, error) {
	dec := json.NewDecoder(bytes.NewReader(line))
	dec.UseNumber()
	var jobj map[string]any
	if err := dec.Decode(&jobj); err != nil {
		return Entry{}, fmt.Errorf("not a correct json: %w", err)
	}
	if jobj == nil {
		return Entry{}, fmt.Errorf("not a json object")
	}

	quantity, err := lookup(m.Quantity, jobj)
	if err != nil {
		return Entry{}, err
	}
	price, err := lookup(m.Price, jobj)
	if err != nil {
		return Entry{}, err
	}
	var factor any
	if m.Factor == "" {
		// the factor is optional
		factor, _ = lookup("$."+attrFactor, jobj)
	} else if factor, err = lookup(m.Factor, jobj); err != nil {
		return Entry{}, err
	}

	e, err := entryFromValues(quantity, price, factor)
	if err != nil {
		return Entry{}, err
	}
	delete(jobj, attrQuantity)
	delete(jobj, attrPrice)
	delete(jobj, attrFactor)
	if len(jobj) > 0 {
		e.data = Data(jobj)
	}
	return e, nil
}

// lookup evaluates a jsonpath expression, and returns a single value.
func lookup(path string, jobj any) (any, error) {
	v, err := jsonpath.Get(path, jobj)
	if err != nil {
		return nil, fmt.Errorf("evaluating %q: %w", path, err)
	}
	// jsonpath may return a list of 1 answer or a single answer:
	// keep the first one if any.
	if list, ok := v.([]any); ok {
		if len(list) == 0 {
			return nil, fmt.Errorf("evaluating %q: no match", path)
		}
		v = list[0]
	}
	return v, nil
}

// EncodeEntries writes entries in JSONL format.
func EncodeEntries(w io.Writer, entries []Entry) error {
	for _, e := range entries {
		b, err := json.Marshal(e)
		if err != nil {
			return fmt.Errorf("encoding entry %s: %w", e, err)
		}
		b = append(b, '\n')
		if _, err := w.Write(b); err != nil {
			return fmt.Errorf("writing entry %s: %w", e, err)
		}
	}
	return nil
}
