/*
dto.go - Data Transfer Objects for API requests and responses

PURPOSE:
  Defines the JSON structures for API communication. These types decouple
  the internal domain model from the external API contract, allowing:
  - Field renaming without breaking clients
  - API-specific validation
  - Version evolution

CONVENTIONS:
  - *DTO: Response types returned to clients
  - *Request: Request body types from clients
  - Ledger figures are JSON numbers; budget figures are fixed-point
    strings ("55000.00") so clients never re-round money of record

SEE ALSO:
  - handlers.go: Uses these types
*/
package api

import (
	"github.com/warp/finance-engine/budget"
	"github.com/warp/finance-engine/forecast"
	"github.com/warp/finance-engine/ledger"
)

// =============================================================================
// LEDGER TYPES
// =============================================================================

// EntryDTO represents a ledger entry in API responses.
type EntryDTO struct {
	ID          string  `json:"id"`
	Date        string  `json:"date"`
	Account     string  `json:"account"`
	Debit       float64 `json:"debit"`
	Credit      float64 `json:"credit"`
	Description string  `json:"description,omitempty"`
	Currency    string  `json:"currency"`
	EntryType   string  `json:"entry_type"`
	Category    string  `json:"category,omitempty"`
}

// SummaryDTO is the reconciliation summary for one file.
type SummaryDTO struct {
	Entries   int     `json:"entries"`
	Debits    float64 `json:"debits"`
	Credits   float64 `json:"credits"`
	Imbalance float64 `json:"imbalance"`
}

// AccountBalanceDTO is one aggregated per-account row.
type AccountBalanceDTO struct {
	Account string  `json:"account"`
	Debit   float64 `json:"debit"`
	Credit  float64 `json:"credit"`
	Net     float64 `json:"net"`
}

// ReconciliationDTO reports one account reconciliation.
type ReconciliationDTO struct {
	Account           string `json:"account"`
	PeriodStart       string `json:"period_start"`
	PeriodEnd         string `json:"period_end"`
	ExpectedBalance   string `json:"expected_balance"`
	CalculatedBalance string `json:"calculated_balance"`
	Variance          string `json:"variance"`
	Balanced          bool   `json:"balanced"`
	EntryCount        int    `json:"entry_count"`
	ReconciledAt      string `json:"reconciled_at"`
}

// =============================================================================
// BUDGET TYPES
// =============================================================================

// CreateBudgetRequest is the request to create a budget.
type CreateBudgetRequest struct {
	ID         string            `json:"id"`
	Name       string            `json:"name"`
	Period     string            `json:"period"`
	Start      string            `json:"start"`
	End        string            `json:"end"`
	Allocated  string            `json:"allocated"`
	Currency   string            `json:"currency,omitempty"`
	Categories map[string]string `json:"categories,omitempty"`
}

// BudgetDTO represents a budget in API responses.
type BudgetDTO struct {
	ID          string            `json:"id"`
	Name        string            `json:"name"`
	Period      string            `json:"period"`
	Start       string            `json:"start"`
	End         string            `json:"end"`
	Allocated   string            `json:"allocated"`
	Spent       string            `json:"spent"`
	Remaining   string            `json:"remaining"`
	Utilization string            `json:"utilization"`
	Currency    string            `json:"currency"`
	Categories  map[string]string `json:"categories,omitempty"`
}

// AmountRequest carries a single monetary amount (check, spend).
type AmountRequest struct {
	Amount string `json:"amount"`
}

// DecisionDTO is the outcome of a budget check.
type DecisionDTO struct {
	Approved    bool   `json:"approved"`
	Proposed    string `json:"proposed"`
	Remaining   string `json:"remaining"`
	Utilization string `json:"utilization"`
	EvaluatedAt string `json:"evaluated_at"`
}

// VarianceLineDTO is one actual-vs-planned budget line.
type VarianceLineDTO struct {
	Account  string `json:"account"`
	Planned  string `json:"planned"`
	Actual   string `json:"actual"`
	Variance string `json:"variance"`
}

// =============================================================================
// FORECAST TYPES
// =============================================================================

// BurnForecastDTO is the burn-rate forecast with its rendered report.
type BurnForecastDTO struct {
	CurrentSpend    float64 `json:"current_spend"`
	BurnRate        float64 `json:"burn_rate"`
	ForecastMonthly float64 `json:"forecast_monthly"`
	PercentOfBudget float64 `json:"percent_of_budget"`
	Report          string  `json:"report"`
}

// CashFlowRequest asks for a rolling cash-flow projection.
type CashFlowRequest struct {
	History []float64 `json:"history"`
	Months  int       `json:"months"`
	Growth  *float64  `json:"growth,omitempty"` // default 1%/month
}

// CashFlowDTO is the projection result.
type CashFlowDTO struct {
	Forecast []float64 `json:"forecast"`
	Growth   float64   `json:"growth"`
}

// ErrorResponse is the uniform error payload.
type ErrorResponse struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}

// =============================================================================
// DOMAIN -> DTO MAPPING
// =============================================================================

func toEntryDTO(e ledger.Entry) EntryDTO {
	return EntryDTO{
		ID:          e.ID,
		Date:        e.Date.Format("2006-01-02"),
		Account:     e.Account,
		Debit:       e.Debit.InexactFloat64(),
		Credit:      e.Credit.InexactFloat64(),
		Description: e.Description,
		Currency:    e.Currency,
		EntryType:   string(e.Type),
		Category:    e.Category,
	}
}

func toSummaryDTO(s ledger.Summary) SummaryDTO {
	return SummaryDTO{
		Entries:   s.Entries,
		Debits:    s.Debits.InexactFloat64(),
		Credits:   s.Credits.InexactFloat64(),
		Imbalance: s.Imbalance.InexactFloat64(),
	}
}

func toBudgetDTO(b *budget.Budget) BudgetDTO {
	categories := make(map[string]string, len(b.Categories))
	for account, limit := range b.Categories {
		categories[account] = limit.StringFixed(2)
	}
	return BudgetDTO{
		ID:          b.ID,
		Name:        b.Name,
		Period:      string(b.Period),
		Start:       b.Start.Format("2006-01-02"),
		End:         b.End.Format("2006-01-02"),
		Allocated:   b.Allocated.StringFixed(2),
		Spent:       b.Spent.StringFixed(2),
		Remaining:   b.Remaining().StringFixed(2),
		Utilization: b.Utilization().StringFixed(2),
		Currency:    b.Currency,
		Categories:  categories,
	}
}

func toDecisionDTO(d budget.Decision) DecisionDTO {
	return DecisionDTO{
		Approved:    d.Approved,
		Proposed:    d.Proposed.StringFixed(2),
		Remaining:   d.Remaining.StringFixed(2),
		Utilization: d.Utilization.StringFixed(2),
		EvaluatedAt: d.EvaluatedAt.Format("2006-01-02T15:04:05Z07:00"),
	}
}

func toBurnForecastDTO(r forecast.Result) BurnForecastDTO {
	return BurnForecastDTO{
		CurrentSpend:    r.CurrentSpend,
		BurnRate:        r.BurnRate,
		ForecastMonthly: r.ForecastMonthly,
		PercentOfBudget: r.PercentOfBudget,
		Report:          forecast.Render(r),
	}
}
