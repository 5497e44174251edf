package source

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
)

// Record is one data row exposed as a header-keyed mapping.
type Record struct {
	header map[string]int
	fields []string
}

// Get returns the named field, or false when the row is too short to
// carry that column.
func (r Record) Get(name string) (string, bool) {
	idx, ok := r.header[name]
	if !ok || idx >= len(r.fields) {
		return "", false
	}
	return r.fields[idx], true
}

// readTable streams a delimited file with a header row, calling fn per
// data row. Row-level parse failures are reported to onSkip and do not
// stop the read; a missing required column in the header does.
func readTable(path string, comma rune, required []string, fn func(Record) error, onSkip func(line int, err error)) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("source: open %s: %w", path, err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.Comma = comma
	r.LazyQuotes = true
	r.FieldsPerRecord = -1

	headerRow, err := r.Read()
	if err != nil {
		return fmt.Errorf("source: read header %s: %w", path, err)
	}
	header := make(map[string]int, len(headerRow))
	for i, h := range headerRow {
		header[strings.TrimSpace(h)] = i
	}
	for _, name := range required {
		if _, ok := header[name]; !ok {
			return fmt.Errorf("source: %s: missing column %q", path, name)
		}
	}

	line := 1
	for {
		line++
		fields, err := r.Read()
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			var perr *csv.ParseError
			if errors.As(err, &perr) {
				if onSkip != nil {
					onSkip(line, err)
				}
				continue
			}
			return fmt.Errorf("source: read %s: %w", path, err)
		}
		rec := Record{header: header, fields: fields}
		if err := fn(rec); err != nil {
			if onSkip != nil {
				onSkip(line, err)
			}
		}
	}
}
