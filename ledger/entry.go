/*
entry.go - Entry construction and validation

PURPOSE:
  The only way an Entry comes into existence. All coercion from raw string
  fields to typed values happens here, exactly once, at parse time.

VALIDATION RULES:
  - date and account are required
  - debit and credit must parse as decimals when present; blank means 0
  - debit and credit must both be >= 0
  - currency defaults to "USD", entry type defaults to "debit"
  - a blank id is filled with a generated UUID so downstream layers can
    always reference the row

A failed rule surfaces immediately as a *ValidationError. Nothing is
silently coerced to zero or dropped.
*/
package ledger

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Accepted date layouts, tried in order. The CSV schema specifies ISO-8601;
// both bare dates and full timestamps occur in real exports.
var dateLayouts = []string{"2006-01-02", time.RFC3339}

// NewEntry constructs a validated, immutable Entry from a raw record.
func NewEntry(rec Record) (Entry, error) {
	if strings.TrimSpace(rec.Account) == "" {
		return Entry{}, &ValidationError{Field: "account", Reason: "required"}
	}

	date, err := parseDate(rec.Date)
	if err != nil {
		return Entry{}, err
	}

	debit, err := parseAmount("debit", rec.Debit)
	if err != nil {
		return Entry{}, err
	}
	credit, err := parseAmount("credit", rec.Credit)
	if err != nil {
		return Entry{}, err
	}

	id := rec.ID
	if id == "" {
		id = uuid.NewString()
	}

	currency := rec.Currency
	if currency == "" {
		currency = DefaultCurrency
	}

	entryType := EntryType(rec.Type)
	switch entryType {
	case TypeDebit, TypeCredit:
	case "":
		entryType = TypeDebit
	default:
		return Entry{}, &ValidationError{Field: "entry_type", Reason: "must be debit or credit"}
	}

	return Entry{
		ID:          id,
		Date:        date,
		Account:     rec.Account,
		Description: rec.Description,
		Debit:       debit,
		Credit:      credit,
		Currency:    currency,
		Type:        entryType,
		Category:    rec.Category,
	}, nil
}

func parseDate(raw string) (time.Time, error) {
	if strings.TrimSpace(raw) == "" {
		return time.Time{}, &ValidationError{Field: "date", Reason: "required"}
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return t, nil
		}
	}
	return time.Time{}, &ValidationError{Field: "date", Reason: "not an ISO-8601 date: " + raw}
}

// parseAmount coerces a monetary field. Blank parses as zero (a common
// legitimate state in exports), anything else must be a non-negative decimal.
func parseAmount(field, raw string) (decimal.Decimal, error) {
	if strings.TrimSpace(raw) == "" {
		return decimal.Zero, nil
	}
	d, err := decimal.NewFromString(strings.TrimSpace(raw))
	if err != nil {
		return decimal.Zero, &ValidationError{Field: field, Reason: "not a decimal: " + raw}
	}
	if d.IsNegative() {
		return decimal.Zero, &ValidationError{Field: field, Reason: "must not be negative"}
	}
	return d, nil
}
