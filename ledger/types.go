/*
Package ledger provides the core double-entry bookkeeping model.

PURPOSE:
  This package contains the data model and arithmetic for ledger entries,
  ledger files (one statement's worth of entries), cross-file account
  aggregation, per-account reconciliation, and entry auditing.

KEY CONCEPTS IN THIS FILE (types.go):
  - Entry: A single immutable financial movement against an account
  - File: An ordered collection of entries sharing one source
  - Record: The raw, untyped row an Entry is constructed from

DESIGN PRINCIPLES:
  1. Immutability: Entries are constructed once at parse time, never mutated
  2. Precision: Uses decimal.Decimal to avoid cent-level drift in money math
  3. Graceful zeros: Empty files and empty aggregations are legitimate
     states, not errors
  4. Diagnostics over rejection: An imbalanced file is reported, not refused

USAGE:
  entry, err := ledger.NewEntry(ledger.Record{
      Date:    "2025-11-24",
      Account: "Cash",
      Debit:   "10",
  })

  file := ledger.NewFile("november.csv", entries)
  summary := file.Summary()

SEE ALSO:
  - entry.go: Entry construction and validation
  - file.go: File totals, imbalance, and the reconciliation summary
  - aggregate.go: Cross-file per-account rollups
*/
package ledger

import (
	"time"

	"github.com/shopspring/decimal"
)

// =============================================================================
// ENTRY - A single financial movement
// =============================================================================

// EntryType marks which side of the ledger a row was recorded on.
type EntryType string

const (
	TypeDebit  EntryType = "debit"
	TypeCredit EntryType = "credit"
)

// DefaultCurrency is applied when a record carries no currency code.
const DefaultCurrency = "USD"

// Entry is one recorded debit or credit movement against an account.
//
// INVARIANTS:
//   - Debit >= 0 and Credit >= 0 (enforced at construction)
//   - Immutable after construction; callers must not modify fields
//
// Exactly one of Debit/Credit is normally non-zero, but both may be zero
// for a no-op row. The ID is caller-supplied and not checked for
// uniqueness at this layer.
type Entry struct {
	ID          string
	Date        time.Time
	Account     string
	Description string
	Debit       decimal.Decimal
	Credit      decimal.Decimal
	Currency    string
	Type        EntryType
	Category    string
	Tags        []string
	Metadata    map[string]string
}

// Net returns the signed amount of the movement: Debit - Credit.
func (e Entry) Net() decimal.Decimal {
	return e.Debit.Sub(e.Credit)
}

// Record is the raw field set an Entry is parsed from. All fields are
// strings so that one type serves CSV rows, API payloads, and fixtures;
// NewEntry owns the coercion and validation.
type Record struct {
	ID          string
	Date        string
	Account     string
	Debit       string
	Credit      string
	Description string
	Currency    string
	Type        string
	Category    string
}

// =============================================================================
// FILE - One statement's worth of entries
// =============================================================================

// File is a named, ordered sequence of entries sharing a source, typically
// one statement or one CSV file. Entry order is insertion order; it matters
// for display only, never for aggregate results.
//
// A File is assembled in one shot by a parse step and treated as immutable
// afterwards. There is no incremental append in normal use.
type File struct {
	Name    string
	Entries []Entry
}

// NewFile creates a file from already-validated entries.
func NewFile(name string, entries []Entry) *File {
	return &File{Name: name, Entries: entries}
}
