package sqlite_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/warp/finance-engine/budget"
	"github.com/warp/finance-engine/ledger"
	"github.com/warp/finance-engine/store/sqlite"
)

// =============================================================================
// TEST SETUP
// =============================================================================

func newTestStore(t *testing.T) *sqlite.Store {
	store, err := sqlite.New(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	return store
}

func entry(t *testing.T, rec ledger.Record) ledger.Entry {
	t.Helper()
	e, err := ledger.NewEntry(rec)
	require.NoError(t, err)
	return e
}

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

// =============================================================================
// LEDGER FILES
// =============================================================================

func TestStore_SaveAndGetFile(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	f := ledger.NewFile("nov.csv", []ledger.Entry{
		entry(t, ledger.Record{ID: "e-1", Date: "2025-11-24", Account: "Cash", Debit: "10", Description: "Seed", Category: "capital"}),
		entry(t, ledger.Record{ID: "e-2", Date: "2025-11-24", Account: "Equity", Credit: "10", Description: "Seed", Type: "credit"}),
	})
	require.NoError(t, store.SaveFile(ctx, f))

	got, err := store.GetFile(ctx, "nov.csv")
	require.NoError(t, err)
	require.Len(t, got.Entries, 2)

	// Insertion order and every field survive the round trip.
	assert.Equal(t, "e-1", got.Entries[0].ID)
	assert.Equal(t, "Cash", got.Entries[0].Account)
	assert.True(t, got.Entries[0].Debit.Equal(dec("10")))
	assert.Equal(t, "capital", got.Entries[0].Category)
	assert.Equal(t, ledger.TypeCredit, got.Entries[1].Type)
	assert.True(t, got.Summary().Imbalance.IsZero())
}

func TestStore_GetFile_NotFound(t *testing.T) {
	store := newTestStore(t)

	_, err := store.GetFile(context.Background(), "missing.csv")
	assert.ErrorIs(t, err, ledger.ErrFileNotFound)
}

func TestStore_SaveFile_ReplacesPrevious(t *testing.T) {
	// GIVEN: A file saved twice under the same name
	// THEN: The second save fully replaces the first

	store := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.SaveFile(ctx, ledger.NewFile("x.csv", []ledger.Entry{
		entry(t, ledger.Record{Date: "2025-01-01", Account: "Cash", Debit: "1"}),
		entry(t, ledger.Record{Date: "2025-01-02", Account: "Cash", Debit: "2"}),
	})))
	require.NoError(t, store.SaveFile(ctx, ledger.NewFile("x.csv", []ledger.Entry{
		entry(t, ledger.Record{Date: "2025-01-03", Account: "Cash", Debit: "3"}),
	})))

	got, err := store.GetFile(ctx, "x.csv")
	require.NoError(t, err)
	require.Len(t, got.Entries, 1)
	assert.True(t, got.Entries[0].Debit.Equal(dec("3")))
}

func TestStore_ListAndAllFiles(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.SaveFile(ctx, ledger.NewFile("b.csv", nil)))
	require.NoError(t, store.SaveFile(ctx, ledger.NewFile("a.csv", nil)))

	names, err := store.ListFiles(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"a.csv", "b.csv"}, names)

	files, err := store.AllFiles(ctx)
	require.NoError(t, err)
	require.Len(t, files, 2)
	assert.Equal(t, "a.csv", files[0].Name)
}

func TestStore_EntriesInRange(t *testing.T) {
	// GIVEN: Entries for two accounts across several dates
	// WHEN: Querying one account over a window
	// THEN: Only that account's in-window entries, chronological

	store := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.SaveFile(ctx, ledger.NewFile("jan.csv", []ledger.Entry{
		entry(t, ledger.Record{Date: "2025-01-20", Account: "acct-001", Credit: "250"}),
		entry(t, ledger.Record{Date: "2025-01-10", Account: "acct-001", Debit: "100"}),
		entry(t, ledger.Record{Date: "2025-02-10", Account: "acct-001", Debit: "999"}),
		entry(t, ledger.Record{Date: "2025-01-15", Account: "acct-002", Debit: "5"}),
	})))

	from := time.Date(2025, time.January, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2025, time.January, 31, 0, 0, 0, 0, time.UTC)

	entries, err := store.EntriesInRange(ctx, "acct-001", from, to)
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.True(t, entries[0].Date.Before(entries[1].Date))

	// The store satisfies the reconciler's source interface directly.
	r := &ledger.Reconciler{Source: store}
	report, err := r.ReconcileAccount(ctx, "acct-001", dec("150"), from, to)
	require.NoError(t, err)
	assert.True(t, report.Balanced)
}

// =============================================================================
// BUDGETS
// =============================================================================

func TestStore_SaveAndGetBudget(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	b, err := budget.New("budget-001", "Cloud Spend", budget.PeriodMonthly,
		time.Date(2025, time.November, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2025, time.November, 30, 0, 0, 0, 0, time.UTC),
		dec("100000"), "USD")
	require.NoError(t, err)
	require.NoError(t, b.SetSpent(dec("45000")))
	b.Categories["compute"] = dec("60000")

	require.NoError(t, store.SaveBudget(ctx, b))

	got, err := store.GetBudget(ctx, "budget-001")
	require.NoError(t, err)
	assert.Equal(t, b.Name, got.Name)
	assert.Equal(t, budget.PeriodMonthly, got.Period)
	assert.True(t, got.Allocated.Equal(dec("100000")))
	assert.True(t, got.Spent.Equal(dec("45000")))
	assert.True(t, got.Categories["compute"].Equal(dec("60000")))
	assert.True(t, got.Utilization().Equal(dec("45")))
}

func TestStore_GetBudget_NotFound(t *testing.T) {
	store := newTestStore(t)

	_, err := store.GetBudget(context.Background(), "missing")
	assert.ErrorIs(t, err, budget.ErrBudgetNotFound)
}

func TestStore_ListBudgets(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()
	start := time.Date(2025, time.January, 1, 0, 0, 0, 0, time.UTC)

	for _, id := range []string{"b-2", "b-1"} {
		b, err := budget.New(id, id, budget.PeriodYearly, start, start.AddDate(1, 0, 0), dec("10"), "USD")
		require.NoError(t, err)
		require.NoError(t, store.SaveBudget(ctx, b))
	}

	budgets, err := store.ListBudgets(ctx)
	require.NoError(t, err)
	require.Len(t, budgets, 2)
	assert.Equal(t, "b-1", budgets[0].ID)
}
