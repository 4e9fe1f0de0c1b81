/*
variance.go - Actuals-vs-plan audit per budget category

SCOPE:
  Variance only audits planned lines. An account present in the actuals but
  absent from the plan is ignored, not reported; unplanned accounts are a
  categorization problem, not a variance problem. A planned account with no
  actual entry is treated as actual = 0.
*/
package budget

import (
	"sort"

	"github.com/shopspring/decimal"
)

// VarianceLine is the actual-vs-planned result for one budget category.
// Variance = actual - planned, so positive means overspend.
type VarianceLine struct {
	Account  string
	Planned  decimal.Decimal
	Actual   decimal.Decimal
	Variance decimal.Decimal
}

// Variance compares actual spend per account against the planned category
// limits, rounded to 2 decimals, sorted by account.
func (b *Budget) Variance(actuals map[string]decimal.Decimal) []VarianceLine {
	lines := make([]VarianceLine, 0, len(b.Categories))
	for account, planned := range b.Categories {
		actual := actuals[account] // zero value when absent
		lines = append(lines, VarianceLine{
			Account:  account,
			Planned:  planned,
			Actual:   actual,
			Variance: actual.Sub(planned).Round(2),
		})
	}

	sort.Slice(lines, func(i, j int) bool {
		return lines[i].Account < lines[j].Account
	})
	return lines
}
