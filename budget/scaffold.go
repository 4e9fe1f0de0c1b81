/*
scaffold.go - Budget scaffold document generation

PURPOSE:
  Produces the JSON scaffold that seeds a new budgeting period: an
  effective date plus one line per account with its monthly limit and an
  owner. The document is the interchange format consumed by downstream
  planning tools; field names are part of the contract.
*/
package budget

import (
	"encoding/json"
	"io"
	"time"
)

// ScaffoldLine is one planned budget line.
type ScaffoldLine struct {
	Account      string `json:"account"`
	MonthlyLimit string `json:"monthly_limit"`
	Owner        string `json:"owner"`
}

// Scaffold is the budget scaffold document.
type Scaffold struct {
	EffectiveDate string         `json:"effective_date"`
	Lines         []ScaffoldLine `json:"lines"`
}

// NewScaffold builds a scaffold from a budget's categories, all owned by
// the given owner, effective on the budget's start date. Lines follow
// Variance ordering (sorted by account).
func NewScaffold(b *Budget, owner string) Scaffold {
	lines := make([]ScaffoldLine, 0, len(b.Categories))
	for _, v := range b.Variance(nil) {
		lines = append(lines, ScaffoldLine{
			Account:      v.Account,
			MonthlyLimit: v.Planned.StringFixed(2),
			Owner:        owner,
		})
	}
	return Scaffold{
		EffectiveDate: b.Start.Format("2006-01-02"),
		Lines:         lines,
	}
}

// Encode writes the scaffold as indented JSON.
func (s Scaffold) Encode(w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(s)
}

// EffectiveTime parses the effective date back into a time value.
func (s Scaffold) EffectiveTime() (time.Time, error) {
	return time.Parse("2006-01-02", s.EffectiveDate)
}
