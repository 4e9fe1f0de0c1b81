/*
Package budget provides the allocation-plan model and its spend tracking.

PURPOSE:
  A Budget is an allocation plan for a period: how much may be spent, how
  much has been spent, and optional per-account category limits. It answers
  three questions:
  - How much is left?           Remaining()
  - How hot are we running?     Utilization()
  - Can we afford this?         Check()

SPENT IS AN EXPLICIT ACCUMULATOR:
  Spent moves only through SetSpent/AddSpent, driven by the caller. It is
  never silently recomputed from ledger data inside this model; actuals
  and plan are reconciled by Variance and the forecast layer, not fused.
  The design assumes one writer at a time; there is no internal locking.

INVARIANTS:
  - Allocated >= 0 (enforced at construction)
  - Remaining may go negative (over-budget) and is never clamped
  - Utilization is 0 when Allocated is 0, guarded, not an error

SEE ALSO:
  - variance.go: Actuals-vs-plan audit per category
  - scaffold.go: JSON scaffold document generation
  - store.go: Persistence interface
*/
package budget

import (
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// Period is the kind of window a budget covers.
type Period string

const (
	PeriodMonthly   Period = "monthly"
	PeriodQuarterly Period = "quarterly"
	PeriodYearly    Period = "yearly"
)

var (
	// ErrInvalidBudget is the root of all budget construction failures.
	ErrInvalidBudget = errors.New("invalid budget")

	// ErrBudgetNotFound is returned when a requested budget record does
	// not exist in a store.
	ErrBudgetNotFound = errors.New("budget not found")
)

var hundred = decimal.NewFromInt(100)

// Budget is an allocation plan with caller-driven spend tracking.
//
// Treat fields as read-only after construction; Spent is mutated only
// through SetSpent/AddSpent.
type Budget struct {
	ID         string
	Name       string
	Period     Period
	Start      time.Time
	End        time.Time
	Allocated  decimal.Decimal
	Spent      decimal.Decimal
	Currency   string
	Categories map[string]decimal.Decimal // account -> per-category limit
}

// New creates a budget with zero spend.
func New(id, name string, period Period, start, end time.Time, allocated decimal.Decimal, currency string) (*Budget, error) {
	switch period {
	case PeriodMonthly, PeriodQuarterly, PeriodYearly:
	default:
		return nil, fmt.Errorf("%w: unknown period %q", ErrInvalidBudget, period)
	}
	if allocated.IsNegative() {
		return nil, fmt.Errorf("%w: allocated must not be negative", ErrInvalidBudget)
	}
	if end.Before(start) {
		return nil, fmt.Errorf("%w: end before start", ErrInvalidBudget)
	}
	if currency == "" {
		currency = "USD"
	}
	return &Budget{
		ID:         id,
		Name:       name,
		Period:     period,
		Start:      start,
		End:        end,
		Allocated:  allocated,
		Spent:      decimal.Zero,
		Currency:   currency,
		Categories: make(map[string]decimal.Decimal),
	}, nil
}

// Remaining returns allocated minus spent. Negative means over-budget;
// the value is not clamped.
func (b *Budget) Remaining() decimal.Decimal {
	return b.Allocated.Sub(b.Spent)
}

// Utilization returns spent as a percentage of allocated. A zero
// allocation (a brand-new budget) yields 0, not a division error.
func (b *Budget) Utilization() decimal.Decimal {
	if b.Allocated.IsZero() {
		return decimal.Zero
	}
	return b.Spent.Div(b.Allocated).Mul(hundred)
}

// SetSpent replaces the accumulated spend. This is the explicit update
// operation; nothing else writes Spent.
func (b *Budget) SetSpent(spent decimal.Decimal) error {
	if spent.IsNegative() {
		return fmt.Errorf("%w: spent must not be negative", ErrInvalidBudget)
	}
	b.Spent = spent
	return nil
}

// AddSpent accumulates additional spend.
func (b *Budget) AddSpent(amount decimal.Decimal) error {
	if amount.IsNegative() {
		return fmt.Errorf("%w: spend increment must not be negative", ErrInvalidBudget)
	}
	b.Spent = b.Spent.Add(amount)
	return nil
}

// Decision is the outcome of a budget check, with supporting figures.
type Decision struct {
	Approved    bool
	Proposed    decimal.Decimal
	Remaining   decimal.Decimal
	Utilization decimal.Decimal
	EvaluatedAt time.Time
}

// Check evaluates whether a proposed amount fits the remaining budget.
// Pure predicate: it never mutates Spent.
func (b *Budget) Check(proposed decimal.Decimal) Decision {
	return Decision{
		Approved:    proposed.LessThanOrEqual(b.Remaining()),
		Proposed:    proposed,
		Remaining:   b.Remaining(),
		Utilization: b.Utilization(),
		EvaluatedAt: time.Now().UTC(),
	}
}
