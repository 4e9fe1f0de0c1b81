/*
Package csvio reads and writes the ledger CSV interchange format.

SCHEMA (header order):
  id, date, account, debit, credit, description, currency, entry_type, category

  - id is optional; blank ids are filled with a generated UUID by the
    entry constructor
  - date accepts ISO-8601 dates or timestamps; a "timestamp" header is
    accepted as an alias for "date"
  - blank debit/credit parse as 0, never as an error
  - currency defaults to USD, entry_type to debit

Reading goes through ledger.NewEntry, so every row is validated exactly
once at parse time; a malformed row surfaces as a ledger.ValidationError
with its row number attached. Write-back emits the same field set, so a
read/write round trip preserves every field (modulo decimal formatting).
*/
package csvio

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/warp/finance-engine/ledger"
)

// Header is the canonical column order for write-back.
var Header = []string{"id", "date", "account", "debit", "credit", "description", "currency", "entry_type", "category"}

// Read parses CSV rows into validated entries. The first row must be a
// header; columns may appear in any order.
func Read(r io.Reader) ([]ledger.Entry, error) {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if err == io.EOF {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading csv header: %w", err)
	}

	cols := make(map[string]int, len(header))
	for i, name := range header {
		if name == "timestamp" {
			name = "date"
		}
		cols[name] = i
	}

	var entries []ledger.Entry
	for row := 2; ; row++ {
		fields, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("reading csv row %d: %w", row, err)
		}

		at := func(name string) string {
			i, ok := cols[name]
			if !ok || i >= len(fields) {
				return ""
			}
			return fields[i]
		}

		entry, err := ledger.NewEntry(ledger.Record{
			ID:          at("id"),
			Date:        at("date"),
			Account:     at("account"),
			Debit:       at("debit"),
			Credit:      at("credit"),
			Description: at("description"),
			Currency:    at("currency"),
			Type:        at("entry_type"),
			Category:    at("category"),
		})
		if err != nil {
			return nil, fmt.Errorf("csv row %d: %w", row, err)
		}
		entries = append(entries, entry)
	}
	return entries, nil
}

// ReadFile parses one CSV file into a ledger file named after its base name.
func ReadFile(path string) (*ledger.File, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	entries, err := Read(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return ledger.NewFile(filepath.Base(path), entries), nil
}

// LoadDir parses every *.csv in a directory, sorted by name.
func LoadDir(dir string) ([]*ledger.File, error) {
	paths, err := filepath.Glob(filepath.Join(dir, "*.csv"))
	if err != nil {
		return nil, err
	}
	sort.Strings(paths)

	files := make([]*ledger.File, 0, len(paths))
	for _, path := range paths {
		f, err := ReadFile(path)
		if err != nil {
			return nil, err
		}
		files = append(files, f)
	}
	return files, nil
}

// Write emits entries in the canonical header order.
func Write(w io.Writer, entries []ledger.Entry) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(Header); err != nil {
		return err
	}

	for _, e := range entries {
		// Bare dates stay bare; only a real time-of-day forces the long form.
		date := e.Date.Format("2006-01-02")
		if hh, mm, ss := e.Date.Clock(); hh != 0 || mm != 0 || ss != 0 || e.Date.Nanosecond() != 0 {
			date = e.Date.Format(time.RFC3339)
		}
		row := []string{
			e.ID,
			date,
			e.Account,
			e.Debit.String(),
			e.Credit.String(),
			e.Description,
			e.Currency,
			string(e.Type),
			e.Category,
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}

// WriteFile writes entries to a CSV file, creating parent directories.
func WriteFile(path string, entries []ledger.Entry) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	return Write(f, entries)
}
