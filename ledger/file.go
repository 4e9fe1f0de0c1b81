/*
file.go - Totals, imbalance, and the per-file reconciliation summary

PURPOSE:
  Derived arithmetic over one ledger file. A well-formed double-entry file
  has total debits equal to total credits; the difference (imbalance) is the
  canonical diagnostic for one statement.

IMBALANCE IS A DIAGNOSTIC, NOT A GATE:
  The system reports imbalanced files but never rejects them. Rejecting
  would interrupt batch processing of many statements over one bad row;
  surfacing the imbalance lets an operator decide.

EDGE CASES:
  An empty file yields totals of 0 and imbalance 0, not an error.
*/
package ledger

import "github.com/shopspring/decimal"

// Summary is the reconciliation report for a single file.
type Summary struct {
	Entries   int
	Debits    decimal.Decimal
	Credits   decimal.Decimal
	Imbalance decimal.Decimal
}

// TotalDebits sums the debit side across all entries. O(n).
func (f *File) TotalDebits() decimal.Decimal {
	total := decimal.Zero
	for _, e := range f.Entries {
		total = total.Add(e.Debit)
	}
	return total
}

// TotalCredits sums the credit side across all entries. O(n).
func (f *File) TotalCredits() decimal.Decimal {
	total := decimal.Zero
	for _, e := range f.Entries {
		total = total.Add(e.Credit)
	}
	return total
}

// Imbalance returns total debits minus total credits, rounded to 2 decimal
// places. Zero indicates a balanced double-entry file.
func (f *File) Imbalance() decimal.Decimal {
	return f.TotalDebits().Sub(f.TotalCredits()).Round(2)
}

// Summary returns the canonical reconciliation report for this file.
func (f *File) Summary() Summary {
	return Summary{
		Entries:   len(f.Entries),
		Debits:    f.TotalDebits(),
		Credits:   f.TotalCredits(),
		Imbalance: f.Imbalance(),
	}
}
