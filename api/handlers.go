/*
handlers.go - HTTP API handlers for the finance engine

PURPOSE:
  Exposes the ledger, budget, and forecast components via REST. Handlers
  follow one shape:
  1. Parse/validate input
  2. Call domain logic
  3. Serialize response
  4. Map errors

ERROR HANDLING:
  Errors are returned as JSON with appropriate HTTP status:
  - 400: Validation errors, invalid forecast arguments, bad input
  - 404: Ledger file or budget not found
  - 500: Store failures and other internal errors

SEE ALSO:
  - dto.go: Request/response data structures
  - server.go: Router setup and middleware
*/
package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"
	"github.com/warp/finance-engine/budget"
	"github.com/warp/finance-engine/csvio"
	"github.com/warp/finance-engine/forecast"
	"github.com/warp/finance-engine/ledger"
)

// =============================================================================
// HANDLER CONTEXT
// =============================================================================

// Store is everything the handlers need from persistence. Both
// store/sqlite.Store and store/memory.Store satisfy it.
type Store interface {
	ledger.Store
	ledger.EntrySource
	budget.Store
	AllFiles(ctx context.Context) ([]*ledger.File, error)
}

// Handler holds all dependencies for HTTP handlers.
type Handler struct {
	Store Store

	// GrowthRate feeds the cash-flow projection when the request does
	// not override it.
	GrowthRate float64
}

// NewHandler creates a handler with the default 1%/month growth rate.
func NewHandler(store Store) *Handler {
	return &Handler{Store: store, GrowthRate: forecast.DefaultGrowthRate}
}

// =============================================================================
// LEDGER HANDLERS
// =============================================================================

// UploadLedger ingests a CSV body as the named ledger file.
func (h *Handler) UploadLedger(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")

	entries, err := csvio.Read(r.Body)
	if err != nil {
		respondError(w, "Failed to parse ledger CSV", err)
		return
	}

	f := ledger.NewFile(name, entries)
	if err := h.Store.SaveFile(r.Context(), f); err != nil {
		respondError(w, "Failed to store ledger file", err)
		return
	}

	writeJSON(w, http.StatusCreated, toSummaryDTO(f.Summary()))
}

// ListLedgers returns the names of all stored ledger files.
func (h *Handler) ListLedgers(w http.ResponseWriter, r *http.Request) {
	names, err := h.Store.ListFiles(r.Context())
	if err != nil {
		respondError(w, "Failed to list ledger files", err)
		return
	}
	writeJSON(w, http.StatusOK, names)
}

// GetLedger returns the entries of one ledger file.
func (h *Handler) GetLedger(w http.ResponseWriter, r *http.Request) {
	f, err := h.Store.GetFile(r.Context(), chi.URLParam(r, "name"))
	if err != nil {
		respondError(w, "Failed to load ledger file", err)
		return
	}

	dtos := make([]EntryDTO, len(f.Entries))
	for i, e := range f.Entries {
		dtos[i] = toEntryDTO(e)
	}
	writeJSON(w, http.StatusOK, dtos)
}

// GetLedgerSummary returns the reconciliation summary of one file.
func (h *Handler) GetLedgerSummary(w http.ResponseWriter, r *http.Request) {
	f, err := h.Store.GetFile(r.Context(), chi.URLParam(r, "name"))
	if err != nil {
		respondError(w, "Failed to load ledger file", err)
		return
	}
	writeJSON(w, http.StatusOK, toSummaryDTO(f.Summary()))
}

// GetAccounts aggregates all stored files into per-account balances.
func (h *Handler) GetAccounts(w http.ResponseWriter, r *http.Request) {
	files, err := h.Store.AllFiles(r.Context())
	if err != nil {
		respondError(w, "Failed to load ledger files", err)
		return
	}

	balances := ledger.Aggregate(files)
	dtos := make([]AccountBalanceDTO, len(balances))
	for i, b := range balances {
		dtos[i] = AccountBalanceDTO{
			Account: b.Account,
			Debit:   b.Debit.InexactFloat64(),
			Credit:  b.Credit.InexactFloat64(),
			Net:     b.Net.InexactFloat64(),
		}
	}
	writeJSON(w, http.StatusOK, dtos)
}

// ReconcileAccount reconciles one account against an expected balance.
// Query params: expected (decimal), from, to (YYYY-MM-DD).
func (h *Handler) ReconcileAccount(w http.ResponseWriter, r *http.Request) {
	account := chi.URLParam(r, "account")

	expected, err := decimal.NewFromString(r.URL.Query().Get("expected"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid expected balance", err)
		return
	}
	from, err := time.Parse("2006-01-02", r.URL.Query().Get("from"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid from date (use YYYY-MM-DD)", err)
		return
	}
	to, err := time.Parse("2006-01-02", r.URL.Query().Get("to"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid to date (use YYYY-MM-DD)", err)
		return
	}

	reconciler := &ledger.Reconciler{Source: h.Store}
	report, err := reconciler.ReconcileAccount(r.Context(), account, expected, from, to)
	if err != nil {
		respondError(w, "Reconciliation failed", err)
		return
	}

	writeJSON(w, http.StatusOK, ReconciliationDTO{
		Account:           report.Account,
		PeriodStart:       report.PeriodStart.Format("2006-01-02"),
		PeriodEnd:         report.PeriodEnd.Format("2006-01-02"),
		ExpectedBalance:   report.ExpectedBalance.StringFixed(2),
		CalculatedBalance: report.CalculatedBalance.StringFixed(2),
		Variance:          report.Variance.StringFixed(2),
		Balanced:          report.Balanced,
		EntryCount:        report.EntryCount,
		ReconciledAt:      report.ReconciledAt.Format(time.RFC3339),
	})
}

// =============================================================================
// BUDGET HANDLERS
// =============================================================================

// CreateBudget creates and stores a budget.
func (h *Handler) CreateBudget(w http.ResponseWriter, r *http.Request) {
	var req CreateBudgetRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	start, err := time.Parse("2006-01-02", req.Start)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid start date (use YYYY-MM-DD)", err)
		return
	}
	end, err := time.Parse("2006-01-02", req.End)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid end date (use YYYY-MM-DD)", err)
		return
	}
	allocated, err := decimal.NewFromString(req.Allocated)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid allocated amount", err)
		return
	}

	b, err := budget.New(req.ID, req.Name, budget.Period(req.Period), start, end, allocated, req.Currency)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid budget", err)
		return
	}
	for account, limit := range req.Categories {
		d, err := decimal.NewFromString(limit)
		if err != nil {
			writeError(w, http.StatusBadRequest, "Invalid category limit for "+account, err)
			return
		}
		b.Categories[account] = d
	}

	if err := h.Store.SaveBudget(r.Context(), b); err != nil {
		respondError(w, "Failed to store budget", err)
		return
	}
	writeJSON(w, http.StatusCreated, toBudgetDTO(b))
}

// ListBudgets returns all stored budgets.
func (h *Handler) ListBudgets(w http.ResponseWriter, r *http.Request) {
	budgets, err := h.Store.ListBudgets(r.Context())
	if err != nil {
		respondError(w, "Failed to list budgets", err)
		return
	}

	dtos := make([]BudgetDTO, len(budgets))
	for i, b := range budgets {
		dtos[i] = toBudgetDTO(b)
	}
	writeJSON(w, http.StatusOK, dtos)
}

// GetBudget returns one budget.
func (h *Handler) GetBudget(w http.ResponseWriter, r *http.Request) {
	b, err := h.Store.GetBudget(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		respondError(w, "Failed to load budget", err)
		return
	}
	writeJSON(w, http.StatusOK, toBudgetDTO(b))
}

// CheckBudget evaluates a proposed spend without mutating the budget.
func (h *Handler) CheckBudget(w http.ResponseWriter, r *http.Request) {
	b, proposed, ok := h.budgetAndAmount(w, r)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, toDecisionDTO(b.Check(proposed)))
}

// AddSpend accumulates spend on a budget and persists it.
func (h *Handler) AddSpend(w http.ResponseWriter, r *http.Request) {
	b, amount, ok := h.budgetAndAmount(w, r)
	if !ok {
		return
	}

	if err := b.AddSpent(amount); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid spend amount", err)
		return
	}
	if err := h.Store.SaveBudget(r.Context(), b); err != nil {
		respondError(w, "Failed to store budget", err)
		return
	}
	writeJSON(w, http.StatusOK, toBudgetDTO(b))
}

// GetVariance audits the budget's planned lines against ledger actuals.
// Actual spend per account is the aggregated debit total.
func (h *Handler) GetVariance(w http.ResponseWriter, r *http.Request) {
	b, err := h.Store.GetBudget(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		respondError(w, "Failed to load budget", err)
		return
	}
	files, err := h.Store.AllFiles(r.Context())
	if err != nil {
		respondError(w, "Failed to load ledger files", err)
		return
	}

	actuals := make(map[string]decimal.Decimal)
	for _, balance := range ledger.Aggregate(files) {
		actuals[balance.Account] = balance.Debit
	}

	lines := b.Variance(actuals)
	dtos := make([]VarianceLineDTO, len(lines))
	for i, line := range lines {
		dtos[i] = VarianceLineDTO{
			Account:  line.Account,
			Planned:  line.Planned.StringFixed(2),
			Actual:   line.Actual.StringFixed(2),
			Variance: line.Variance.StringFixed(2),
		}
	}
	writeJSON(w, http.StatusOK, dtos)
}

// GetScaffold renders the budget scaffold document.
// Query param: owner (defaults to "finance").
func (h *Handler) GetScaffold(w http.ResponseWriter, r *http.Request) {
	b, err := h.Store.GetBudget(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		respondError(w, "Failed to load budget", err)
		return
	}

	owner := r.URL.Query().Get("owner")
	if owner == "" {
		owner = "finance"
	}
	writeJSON(w, http.StatusOK, budget.NewScaffold(b, owner))
}

func (h *Handler) budgetAndAmount(w http.ResponseWriter, r *http.Request) (*budget.Budget, decimal.Decimal, bool) {
	b, err := h.Store.GetBudget(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		respondError(w, "Failed to load budget", err)
		return nil, decimal.Zero, false
	}

	var req AmountRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body", err)
		return nil, decimal.Zero, false
	}
	amount, err := decimal.NewFromString(req.Amount)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid amount", err)
		return nil, decimal.Zero, false
	}
	return b, amount, true
}

// =============================================================================
// FORECAST HANDLERS
// =============================================================================

// BurnForecast runs the burn-rate projection.
// Query params: current_spend, days_elapsed, days_in_month, budget_limit.
func (h *Handler) BurnForecast(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	currentSpend, err := strconv.ParseFloat(q.Get("current_spend"), 64)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid current_spend", err)
		return
	}
	daysElapsed, err := strconv.Atoi(q.Get("days_elapsed"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid days_elapsed", err)
		return
	}
	daysInMonth, err := strconv.Atoi(q.Get("days_in_month"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid days_in_month", err)
		return
	}
	budgetLimit := 0.0
	if raw := q.Get("budget_limit"); raw != "" {
		if budgetLimit, err = strconv.ParseFloat(raw, 64); err != nil {
			writeError(w, http.StatusBadRequest, "Invalid budget_limit", err)
			return
		}
	}

	f := forecast.Forecaster{BudgetLimit: budgetLimit}
	result, err := f.Forecast(currentSpend, daysElapsed, daysInMonth)
	if err != nil {
		respondError(w, "Burn-rate forecast failed", err)
		return
	}
	writeJSON(w, http.StatusOK, toBurnForecastDTO(result))
}

// CashFlowForecast runs the rolling cash-flow projection.
func (h *Handler) CashFlowForecast(w http.ResponseWriter, r *http.Request) {
	var req CashFlowRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body", err)
		return
	}
	if req.Months <= 0 {
		writeError(w, http.StatusBadRequest, "months must be positive", nil)
		return
	}

	growth := h.GrowthRate
	if req.Growth != nil {
		growth = *req.Growth
	}
	writeJSON(w, http.StatusOK, CashFlowDTO{
		Forecast: forecast.CashFlow(req.History, req.Months, growth),
		Growth:   growth,
	})
}

// =============================================================================
// RESPONSE HELPERS
// =============================================================================

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, message string, err error) {
	resp := ErrorResponse{Error: message}
	if err != nil {
		resp.Details = err.Error()
	}
	writeJSON(w, status, resp)
}

// respondError maps domain errors onto HTTP statuses.
func respondError(w http.ResponseWriter, message string, err error) {
	switch {
	case errors.Is(err, ledger.ErrValidation),
		errors.Is(err, forecast.ErrInvalidArgument),
		errors.Is(err, budget.ErrInvalidBudget):
		writeError(w, http.StatusBadRequest, message, err)
	case errors.Is(err, ledger.ErrFileNotFound),
		errors.Is(err, budget.ErrBudgetNotFound):
		writeError(w, http.StatusNotFound, message, err)
	default:
		writeError(w, http.StatusInternalServerError, message, err)
	}
}
