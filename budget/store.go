// store.go - Persistence interface for budgets.
//
// GetBudget of a missing id returns ErrBudgetNotFound; an existing budget
// with zero spend and zero categories is a legitimate state, not an error.
package budget

import "context"

// Store persists budgets. Implementations live in store/sqlite and
// store/memory.
type Store interface {
	// SaveBudget stores a budget, replacing any previous record with the
	// same id.
	SaveBudget(ctx context.Context, b *Budget) error

	// GetBudget returns the budget with the given id, or ErrBudgetNotFound.
	GetBudget(ctx context.Context, id string) (*Budget, error)

	// ListBudgets returns all stored budgets, sorted by id.
	ListBudgets(ctx context.Context) ([]*Budget, error)
}
