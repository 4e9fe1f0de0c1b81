package budget_test

import (
	"bytes"
	"encoding/json"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/warp/finance-engine/budget"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func newBudget(t *testing.T, allocated string) *budget.Budget {
	t.Helper()
	b, err := budget.New("budget-001", "Cloud Spend", budget.PeriodMonthly,
		time.Date(2025, time.November, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2025, time.November, 30, 0, 0, 0, 0, time.UTC),
		dec(allocated), "USD")
	require.NoError(t, err)
	return b
}

// =============================================================================
// CONSTRUCTION
// =============================================================================

func TestNew_RejectsBadInputs(t *testing.T) {
	start := time.Date(2025, time.November, 1, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 1, 0)

	_, err := budget.New("b", "b", "weekly", start, end, dec("100"), "USD")
	assert.ErrorIs(t, err, budget.ErrInvalidBudget, "unknown period")

	_, err = budget.New("b", "b", budget.PeriodMonthly, start, end, dec("-1"), "USD")
	assert.ErrorIs(t, err, budget.ErrInvalidBudget, "negative allocation")

	_, err = budget.New("b", "b", budget.PeriodMonthly, end, start, dec("100"), "USD")
	assert.ErrorIs(t, err, budget.ErrInvalidBudget, "end before start")
}

// =============================================================================
// REMAINING / UTILIZATION
// =============================================================================

func TestRemaining_MayGoNegative(t *testing.T) {
	b := newBudget(t, "100")
	require.NoError(t, b.SetSpent(dec("150")))
	assert.True(t, b.Remaining().Equal(dec("-50")), "over-budget is not clamped")
}

func TestUtilization(t *testing.T) {
	// GIVEN: Various spent/allocated pairs
	// THEN: utilization = spent/allocated*100, 0 when allocated is 0

	cases := []struct {
		allocated, spent, want string
	}{
		{"100000", "45000", "45"},
		{"200", "50", "25"},
		{"100", "0", "0"},
		{"0", "500", "0"}, // zero allocation guarded, not an error
	}
	for _, tc := range cases {
		b := newBudget(t, tc.allocated)
		require.NoError(t, b.SetSpent(dec(tc.spent)))
		assert.True(t, b.Utilization().Equal(dec(tc.want)),
			"allocated=%s spent=%s: got %s", tc.allocated, tc.spent, b.Utilization())
	}
}

func TestSpentUpdates_RejectNegative(t *testing.T) {
	b := newBudget(t, "100")
	assert.ErrorIs(t, b.SetSpent(dec("-1")), budget.ErrInvalidBudget)
	assert.ErrorIs(t, b.AddSpent(dec("-1")), budget.ErrInvalidBudget)

	require.NoError(t, b.AddSpent(dec("30")))
	require.NoError(t, b.AddSpent(dec("12.50")))
	assert.True(t, b.Spent.Equal(dec("42.50")))
}

// =============================================================================
// CHECK
// =============================================================================

func TestCheck_Approval(t *testing.T) {
	// GIVEN: allocated=100000, spent=45000
	// WHEN: Checking a proposed spend of 5000
	// THEN: Approved, remaining 55000.00, spent untouched

	b := newBudget(t, "100000")
	require.NoError(t, b.SetSpent(dec("45000")))

	d := b.Check(dec("5000"))
	assert.True(t, d.Approved)
	assert.Equal(t, "55000.00", d.Remaining.StringFixed(2))
	assert.True(t, d.Utilization.Equal(dec("45")))
	assert.False(t, d.EvaluatedAt.IsZero())
	assert.True(t, b.Spent.Equal(dec("45000")), "Check must not mutate spent")
}

func TestCheck_ExactRemainingApproved(t *testing.T) {
	b := newBudget(t, "100")
	require.NoError(t, b.SetSpent(dec("40")))

	assert.True(t, b.Check(dec("60")).Approved, "proposed == remaining is approved")
	assert.False(t, b.Check(dec("60.01")).Approved)
}

// =============================================================================
// VARIANCE
// =============================================================================

func TestVariance_AuditsPlannedLinesOnly(t *testing.T) {
	b := newBudget(t, "1000")
	b.Categories["compute"] = dec("600")
	b.Categories["storage"] = dec("200")

	actuals := map[string]decimal.Decimal{
		"compute":   dec("712.345"),
		"marketing": dec("9999"), // unplanned: ignored
	}

	lines := b.Variance(actuals)
	require.Len(t, lines, 2)

	assert.Equal(t, "compute", lines[0].Account)
	assert.True(t, lines[0].Variance.Equal(dec("112.35")), "rounded to 2 decimals, got %s", lines[0].Variance)

	assert.Equal(t, "storage", lines[1].Account)
	assert.True(t, lines[1].Actual.IsZero(), "missing actual treated as 0")
	assert.True(t, lines[1].Variance.Equal(dec("-200")))
}

// =============================================================================
// SCAFFOLD
// =============================================================================

func TestScaffold_Document(t *testing.T) {
	b := newBudget(t, "1000")
	b.Categories["compute"] = dec("600")
	b.Categories["storage"] = dec("200")

	s := budget.NewScaffold(b, "finops")
	assert.Equal(t, "2025-11-01", s.EffectiveDate)
	require.Len(t, s.Lines, 2)
	assert.Equal(t, budget.ScaffoldLine{Account: "compute", MonthlyLimit: "600.00", Owner: "finops"}, s.Lines[0])

	var buf bytes.Buffer
	require.NoError(t, s.Encode(&buf))

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	assert.Contains(t, decoded, "effective_date")
	assert.Contains(t, decoded, "lines")
}
