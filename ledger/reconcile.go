/*
reconcile.go - Per-account reconciliation against an expected balance

PURPOSE:
  Replays one account's movements over a period and compares the calculated
  balance to an externally supplied expected balance (a bank statement, a
  GL extract). Credits raise the balance, debits lower it.

TOLERANCE:
  An account is considered balanced when |variance| < 0.01. Sub-cent
  residue from upstream rounding is not worth an operator's time.

The entry source is a narrow, single-method interface so any backing store
(SQLite, memory, a test fake) can serve it.
*/
package ledger

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

// balancedTolerance is the largest |variance| still reported as balanced.
var balancedTolerance = decimal.RequireFromString("0.01")

// EntrySource supplies one account's entries for a date range.
type EntrySource interface {
	EntriesInRange(ctx context.Context, account string, from, to time.Time) ([]Entry, error)
}

// ReconciliationReport is the outcome of reconciling one account.
type ReconciliationReport struct {
	Account           string
	PeriodStart       time.Time
	PeriodEnd         time.Time
	ExpectedBalance   decimal.Decimal
	CalculatedBalance decimal.Decimal
	Variance          decimal.Decimal
	Balanced          bool
	EntryCount        int
	ReconciledAt      time.Time
}

// Reconciler replays account movements from an injected entry source.
type Reconciler struct {
	Source EntrySource
}

// ReconcileAccount computes the balance of one account over [from, to] and
// reports the variance against the expected balance.
func (r *Reconciler) ReconcileAccount(ctx context.Context, account string, expected decimal.Decimal, from, to time.Time) (ReconciliationReport, error) {
	entries, err := r.Source.EntriesInRange(ctx, account, from, to)
	if err != nil {
		return ReconciliationReport{}, err
	}

	calculated := decimal.Zero
	for _, e := range entries {
		calculated = calculated.Add(e.Credit).Sub(e.Debit)
	}

	variance := expected.Sub(calculated)
	return ReconciliationReport{
		Account:           account,
		PeriodStart:       from,
		PeriodEnd:         to,
		ExpectedBalance:   expected,
		CalculatedBalance: calculated,
		Variance:          variance,
		Balanced:          variance.Abs().LessThan(balancedTolerance),
		EntryCount:        len(entries),
		ReconciledAt:      time.Now().UTC(),
	}, nil
}
