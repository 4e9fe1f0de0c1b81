/*
store.go - Persistence interface for ledger files

PURPOSE:
  The ledger package defines what it needs from storage; implementations
  live elsewhere (store/sqlite for durability, store/memory for tests).
  The core never performs I/O itself. It is handed pre-loaded, in-memory
  structures.

NOT-FOUND SEMANTICS:
  GetFile of a missing name returns ErrFileNotFound. A stored file with
  zero entries is NOT an error; "empty but present" and "absent" are
  distinct conditions.
*/
package ledger

import "context"

// Store persists whole ledger files. Files are written in one shot and
// read back intact; there is no per-entry mutation.
type Store interface {
	// SaveFile stores a file, replacing any previous file with the same name.
	SaveFile(ctx context.Context, f *File) error

	// GetFile returns the named file, or ErrFileNotFound.
	GetFile(ctx context.Context, name string) (*File, error)

	// ListFiles returns all stored file names, sorted.
	ListFiles(ctx context.Context) ([]string, error)
}
