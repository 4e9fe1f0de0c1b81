package memory_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/warp/finance-engine/budget"
	"github.com/warp/finance-engine/ledger"
	"github.com/warp/finance-engine/store/memory"
)

func TestMemory_FileRoundTripAndIsolation(t *testing.T) {
	store := memory.New()
	ctx := context.Background()

	e, err := ledger.NewEntry(ledger.Record{Date: "2025-11-24", Account: "Cash", Debit: "10"})
	require.NoError(t, err)

	f := ledger.NewFile("nov.csv", []ledger.Entry{e})
	require.NoError(t, store.SaveFile(ctx, f))

	// Mutating the caller's copy must not reach the store.
	f.Entries[0].Account = "Tampered"

	got, err := store.GetFile(ctx, "nov.csv")
	require.NoError(t, err)
	assert.Equal(t, "Cash", got.Entries[0].Account)

	_, err = store.GetFile(ctx, "missing.csv")
	assert.ErrorIs(t, err, ledger.ErrFileNotFound)
}

func TestMemory_EntriesInRange(t *testing.T) {
	store := memory.New()
	ctx := context.Background()

	mk := func(date, account, debit string) ledger.Entry {
		e, err := ledger.NewEntry(ledger.Record{Date: date, Account: account, Debit: debit})
		require.NoError(t, err)
		return e
	}
	require.NoError(t, store.SaveFile(ctx, ledger.NewFile("a.csv", []ledger.Entry{
		mk("2025-01-20", "Cash", "2"),
		mk("2025-01-10", "Cash", "1"),
		mk("2025-03-10", "Cash", "9"),
		mk("2025-01-15", "Other", "5"),
	})))

	entries, err := store.EntriesInRange(ctx, "Cash",
		time.Date(2025, time.January, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2025, time.January, 31, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.True(t, entries[0].Date.Before(entries[1].Date), "chronological order")
}

func TestMemory_Budgets(t *testing.T) {
	store := memory.New()
	ctx := context.Background()
	start := time.Date(2025, time.November, 1, 0, 0, 0, 0, time.UTC)

	b, err := budget.New("b-1", "Cloud", budget.PeriodMonthly, start, start.AddDate(0, 1, 0),
		decimal.RequireFromString("100"), "USD")
	require.NoError(t, err)
	require.NoError(t, store.SaveBudget(ctx, b))

	got, err := store.GetBudget(ctx, "b-1")
	require.NoError(t, err)
	assert.Equal(t, "Cloud", got.Name)

	// The stored copy is isolated from later caller mutation.
	require.NoError(t, b.AddSpent(decimal.RequireFromString("50")))
	got, err = store.GetBudget(ctx, "b-1")
	require.NoError(t, err)
	assert.True(t, got.Spent.IsZero())

	_, err = store.GetBudget(ctx, "nope")
	assert.ErrorIs(t, err, budget.ErrBudgetNotFound)

	budgets, err := store.ListBudgets(ctx)
	require.NoError(t, err)
	assert.Len(t, budgets, 1)
}
