/*
Package sqlite provides a SQLite-backed implementation of the storage
interfaces.

PURPOSE:
  Implements ledger.Store, ledger.EntrySource, and budget.Store using
  SQLite. In production the same patterns apply to PostgreSQL - only minor
  SQL dialect differences.

KEY TABLES:
  ledger_files:   One row per imported statement
  ledger_entries: The entries of each file, in insertion order
  budgets:        Allocation plans with accumulated spend

WHOLE-FILE WRITES:
  Ledger files are parsed and persisted in one shot; SaveFile replaces the
  previous copy of the same name inside a transaction. Entries are never
  mutated individually - the file is the unit of persistence, matching the
  immutability contract of the ledger package.

MONEY COLUMNS:
  Debit, credit, allocated, and spent are stored as decimal TEXT, never as
  REAL. Round-tripping through float would reintroduce the cent-level
  drift the decimal type exists to prevent.

CONCURRENCY:
  Uses sync.RWMutex for thread-safety. SQLite is opened with WAL for
  better read concurrency and crash recovery.

USAGE:
  store, err := sqlite.New("./data/finance.db")
  if err != nil {
      log.Fatal(err)
  }
  defer store.Close()

SEE ALSO:
  - ledger/store.go, budget/store.go: Interface definitions
  - store/memory: In-memory implementation for testing
*/
package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	_ "github.com/mattn/go-sqlite3"
	"github.com/shopspring/decimal"
	"github.com/warp/finance-engine/budget"
	"github.com/warp/finance-engine/ledger"
)

// Store implements the ledger and budget storage interfaces using SQLite.
type Store struct {
	db *sql.DB
	mu sync.RWMutex
}

// New creates a new SQLite store with the given database path.
// Use ":memory:" for an in-memory database.
func New(dbPath string) (*Store, error) {
	db, err := sql.Open("sqlite3", dbPath+"?_foreign_keys=on&_journal_mode=WAL")
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	store := &Store{db: db}
	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	return store, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// migrate creates the database schema.
func (s *Store) migrate() error {
	schema := `
	-- Imported ledger files (one row per statement)
	CREATE TABLE IF NOT EXISTS ledger_files (
		name TEXT PRIMARY KEY,
		imported_at TEXT NOT NULL
	);

	-- Entries, in insertion order within their file
	CREATE TABLE IF NOT EXISTS ledger_entries (
		file_name TEXT NOT NULL REFERENCES ledger_files(name) ON DELETE CASCADE,
		position INTEGER NOT NULL,
		id TEXT NOT NULL,
		entry_date TEXT NOT NULL,
		account TEXT NOT NULL,
		debit TEXT NOT NULL,
		credit TEXT NOT NULL,
		description TEXT NOT NULL DEFAULT '',
		currency TEXT NOT NULL,
		entry_type TEXT NOT NULL,
		category TEXT NOT NULL DEFAULT '',
		PRIMARY KEY (file_name, position)
	);

	-- Hot path: per-account reconciliation over a date range
	CREATE INDEX IF NOT EXISTS idx_entries_account_date
		ON ledger_entries(account, entry_date);

	-- Budgets (spend is updated in place; it is an explicit accumulator)
	CREATE TABLE IF NOT EXISTS budgets (
		id TEXT PRIMARY KEY,
		name TEXT NOT NULL,
		period TEXT NOT NULL,
		start_date TEXT NOT NULL,
		end_date TEXT NOT NULL,
		allocated TEXT NOT NULL,
		spent TEXT NOT NULL,
		currency TEXT NOT NULL,
		categories_json TEXT NOT NULL DEFAULT '{}'
	);
	`
	_, err := s.db.Exec(schema)
	return err
}

// =============================================================================
// LEDGER FILES
// =============================================================================

// SaveFile stores a file, replacing any previous file with the same name.
func (s *Store) SaveFile(ctx context.Context, f *ledger.File) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx,
		`INSERT INTO ledger_files (name, imported_at) VALUES (?, ?)
		 ON CONFLICT(name) DO UPDATE SET imported_at = excluded.imported_at`,
		f.Name, time.Now().UTC().Format(time.RFC3339)); err != nil {
		return err
	}
	if _, err := tx.ExecContext(ctx,
		`DELETE FROM ledger_entries WHERE file_name = ?`, f.Name); err != nil {
		return err
	}

	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO ledger_entries
			(file_name, position, id, entry_date, account, debit, credit,
			 description, currency, entry_type, category)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return err
	}
	defer stmt.Close()

	for i, e := range f.Entries {
		if _, err := stmt.ExecContext(ctx,
			f.Name, i, e.ID, e.Date.UTC().Format(time.RFC3339), e.Account,
			e.Debit.String(), e.Credit.String(), e.Description, e.Currency,
			string(e.Type), e.Category); err != nil {
			return err
		}
	}

	return tx.Commit()
}

// GetFile returns the named file, or ledger.ErrFileNotFound.
func (s *Store) GetFile(ctx context.Context, name string) (*ledger.File, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var imported string
	err := s.db.QueryRowContext(ctx,
		`SELECT imported_at FROM ledger_files WHERE name = ?`, name).Scan(&imported)
	if err == sql.ErrNoRows {
		return nil, ledger.ErrFileNotFound
	}
	if err != nil {
		return nil, err
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT id, entry_date, account, debit, credit, description,
		       currency, entry_type, category
		FROM ledger_entries
		WHERE file_name = ?
		ORDER BY position`, name)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []ledger.Entry
	for rows.Next() {
		e, err := scanEntry(rows)
		if err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return ledger.NewFile(name, entries), nil
}

// ListFiles returns all stored file names, sorted.
func (s *Store) ListFiles(ctx context.Context) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rows, err := s.db.QueryContext(ctx, `SELECT name FROM ledger_files ORDER BY name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var names []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, err
		}
		names = append(names, name)
	}
	return names, rows.Err()
}

// AllFiles loads every stored file, sorted by name.
func (s *Store) AllFiles(ctx context.Context) ([]*ledger.File, error) {
	names, err := s.ListFiles(ctx)
	if err != nil {
		return nil, err
	}
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

// EntriesInRange implements ledger.EntrySource across all stored files.
func (s *Store) EntriesInRange(ctx context.Context, account string, from, to time.Time) ([]ledger.Entry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rows, err := s.db.QueryContext(ctx, `
		SELECT id, entry_date, account, debit, credit, description,
		       currency, entry_type, category
		FROM ledger_entries
		WHERE account = ? AND entry_date >= ? AND entry_date <= ?
		ORDER BY entry_date`,
		account, from.UTC().Format(time.RFC3339), to.UTC().Format(time.RFC3339))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []ledger.Entry
	for rows.Next() {
		e, err := scanEntry(rows)
		if err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

func scanEntry(rows *sql.Rows) (ledger.Entry, error) {
	var (
		e         ledger.Entry
		date      string
		debit     string
		credit    string
		entryType string
	)
	if err := rows.Scan(&e.ID, &date, &e.Account, &debit, &credit,
		&e.Description, &e.Currency, &entryType, &e.Category); err != nil {
		return ledger.Entry{}, err
	}

	parsed, err := time.Parse(time.RFC3339, date)
	if err != nil {
		return ledger.Entry{}, fmt.Errorf("corrupt entry_date %q: %w", date, err)
	}
	e.Date = parsed
	e.Type = ledger.EntryType(entryType)

	if e.Debit, err = decimal.NewFromString(debit); err != nil {
		return ledger.Entry{}, fmt.Errorf("corrupt debit %q: %w", debit, err)
	}
	if e.Credit, err = decimal.NewFromString(credit); err != nil {
		return ledger.Entry{}, fmt.Errorf("corrupt credit %q: %w", credit, err)
	}
	return e, nil
}

// =============================================================================
// BUDGETS
// =============================================================================

// SaveBudget stores a budget, replacing any previous record with the same id.
func (s *Store) SaveBudget(ctx context.Context, b *budget.Budget) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	categories := make(map[string]string, len(b.Categories))
	for account, limit := range b.Categories {
		categories[account] = limit.String()
	}
	categoriesJSON, err := json.Marshal(categories)
	if err != nil {
		return err
	}

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO budgets
			(id, name, period, start_date, end_date, allocated, spent, currency, categories_json)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			name = excluded.name,
			period = excluded.period,
			start_date = excluded.start_date,
			end_date = excluded.end_date,
			allocated = excluded.allocated,
			spent = excluded.spent,
			currency = excluded.currency,
			categories_json = excluded.categories_json`,
		b.ID, b.Name, string(b.Period),
		b.Start.UTC().Format(time.RFC3339), b.End.UTC().Format(time.RFC3339),
		b.Allocated.String(), b.Spent.String(), b.Currency, string(categoriesJSON))
	return err
}

// GetBudget returns the budget with the given id, or budget.ErrBudgetNotFound.
func (s *Store) GetBudget(ctx context.Context, id string) (*budget.Budget, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	row := s.db.QueryRowContext(ctx, `
		SELECT id, name, period, start_date, end_date, allocated, spent, currency, categories_json
		FROM budgets WHERE id = ?`, id)

	b, err := scanBudget(row)
	if err == sql.ErrNoRows {
		return nil, budget.ErrBudgetNotFound
	}
	return b, err
}

// ListBudgets returns all stored budgets, sorted by id.
func (s *Store) ListBudgets(ctx context.Context) ([]*budget.Budget, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rows, err := s.db.QueryContext(ctx, `
		SELECT id, name, period, start_date, end_date, allocated, spent, currency, categories_json
		FROM budgets ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var budgets []*budget.Budget
	for rows.Next() {
		b, err := scanBudget(rows)
		if err != nil {
			return nil, err
		}
		budgets = append(budgets, b)
	}
	return budgets, rows.Err()
}

type scanner interface {
	Scan(dest ...any) error
}

func scanBudget(row scanner) (*budget.Budget, error) {
	var (
		b              budget.Budget
		period         string
		start, end     string
		allocated      string
		spent          string
		categoriesJSON string
	)
	if err := row.Scan(&b.ID, &b.Name, &period, &start, &end,
		&allocated, &spent, &b.Currency, &categoriesJSON); err != nil {
		return nil, err
	}

	b.Period = budget.Period(period)

	var err error
	if b.Start, err = time.Parse(time.RFC3339, start); err != nil {
		return nil, fmt.Errorf("corrupt start_date %q: %w", start, err)
	}
	if b.End, err = time.Parse(time.RFC3339, end); err != nil {
		return nil, fmt.Errorf("corrupt end_date %q: %w", end, err)
	}
	if b.Allocated, err = decimal.NewFromString(allocated); err != nil {
		return nil, fmt.Errorf("corrupt allocated %q: %w", allocated, err)
	}
	if b.Spent, err = decimal.NewFromString(spent); err != nil {
		return nil, fmt.Errorf("corrupt spent %q: %w", spent, err)
	}

	var categories map[string]string
	if err := json.Unmarshal([]byte(categoriesJSON), &categories); err != nil {
		return nil, fmt.Errorf("corrupt categories_json: %w", err)
	}
	b.Categories = make(map[string]decimal.Decimal, len(categories))
	for account, limit := range categories {
		d, err := decimal.NewFromString(limit)
		if err != nil {
			return nil, fmt.Errorf("corrupt category limit %q: %w", limit, err)
		}
		b.Categories[account] = d
	}

	return &b, nil
}
