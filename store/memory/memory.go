// Package memory provides in-memory store implementations (for testing/dev).
//
// Implements ledger.Store, ledger.EntrySource, and budget.Store. Values are
// copied on the way in and out so callers cannot alias the store's state.
package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/shopspring/decimal"
	"github.com/warp/finance-engine/budget"
	"github.com/warp/finance-engine/ledger"
)

type Store struct {
	mu      sync.RWMutex
	files   map[string]*ledger.File
	budgets map[string]*budget.Budget
}

func New() *Store {
	return &Store{
		files:   make(map[string]*ledger.File),
		budgets: make(map[string]*budget.Budget),
	}
}

// =============================================================================
// LEDGER FILES
// =============================================================================

func (s *Store) SaveFile(_ context.Context, f *ledger.File) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.files[f.Name] = copyFile(f)
	return nil
}

func (s *Store) GetFile(_ context.Context, name string) (*ledger.File, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	f, ok := s.files[name]
	if !ok {
		return nil, ledger.ErrFileNotFound
	}
	return copyFile(f), nil
}

func (s *Store) ListFiles(_ context.Context) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	names := make([]string, 0, len(s.files))
	for name := range s.files {
		names = append(names, name)
	}
	sort.Strings(names)
	return names, nil
}

// AllFiles returns every stored file, sorted by name. Convenience for
// aggregation over the whole store.
func (s *Store) AllFiles(ctx context.Context) ([]*ledger.File, error) {
	names, _ := s.ListFiles(ctx)
	files := make([]*ledger.File, 0, len(names))
	for _, name := range names {
		f, err := s.GetFile(ctx, name)
		if err != nil {
			return nil, err
		}
		files = append(files, f)
	}
	return files, nil
}

// EntriesInRange implements ledger.EntrySource over all stored files.
func (s *Store) EntriesInRange(_ context.Context, account string, from, to time.Time) ([]ledger.Entry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []ledger.Entry
	for _, f := range s.files {
		for _, e := range f.Entries {
			if e.Account != account {
				continue
			}
			if e.Date.Before(from) || e.Date.After(to) {
				continue
			}
			out = append(out, e)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date.Before(out[j].Date) })
	return out, nil
}

// =============================================================================
// BUDGETS
// =============================================================================

func (s *Store) SaveBudget(_ context.Context, b *budget.Budget) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.budgets[b.ID] = copyBudget(b)
	return nil
}

func (s *Store) GetBudget(_ context.Context, id string) (*budget.Budget, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	b, ok := s.budgets[id]
	if !ok {
		return nil, budget.ErrBudgetNotFound
	}
	return copyBudget(b), nil
}

func (s *Store) ListBudgets(_ context.Context) ([]*budget.Budget, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	ids := make([]string, 0, len(s.budgets))
	for id := range s.budgets {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	budgets := make([]*budget.Budget, 0, len(ids))
	for _, id := range ids {
		budgets = append(budgets, copyBudget(s.budgets[id]))
	}
	return budgets, nil
}

// =============================================================================
// COPY HELPERS
// =============================================================================

func copyFile(f *ledger.File) *ledger.File {
	entries := make([]ledger.Entry, len(f.Entries))
	copy(entries, f.Entries)
	return ledger.NewFile(f.Name, entries)
}

func copyBudget(b *budget.Budget) *budget.Budget {
	dup := *b
	dup.Categories = make(map[string]decimal.Decimal, len(b.Categories))
	for k, v := range b.Categories {
		dup.Categories[k] = v
	}
	return &dup
}
