/*
server.go - HTTP router and middleware configuration

PURPOSE:
  Configures the HTTP router (chi), middleware stack, and route
  definitions. This is the wiring layer that connects URLs to handlers.

MIDDLEWARE STACK:
  1. Logger:     Request logging
  2. Recoverer:  Panic recovery (500 instead of crash)
  3. RequestID:  Unique ID per request for tracing
  4. CORS:       Cross-origin requests for dashboards

ROUTE GROUPS:
  /api/ledgers/*   Ledger file ingest, entries, summaries
  /api/accounts/*  Cross-file aggregation and reconciliation
  /api/budgets/*   Budget plans, checks, spend, variance, scaffold
  /api/forecast/*  Burn-rate and cash-flow projections

SECURITY NOTE:
  No authentication middleware. Deploy behind an authenticating proxy.

SEE ALSO:
  - handlers.go: Handler implementations
  - cmd/finserver/main.go: Server startup
*/
package api

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

// NewRouter creates a new router with all routes configured.
func NewRouter(h *Handler) *chi.Mux {
	r := chi.NewRouter()

	// Middleware
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.RequestID)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"http://localhost:5173", "http://localhost:8080"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: true,
	}))

	r.Route("/api", func(r chi.Router) {
		// Ledger routes
		r.Route("/ledgers", func(r chi.Router) {
			r.Get("/", h.ListLedgers)
			r.Post("/{name}", h.UploadLedger)
			r.Get("/{name}", h.GetLedger)
			r.Get("/{name}/summary", h.GetLedgerSummary)
		})

		// Account routes
		r.Route("/accounts", func(r chi.Router) {
			r.Get("/", h.GetAccounts)
			r.Get("/{account}/reconcile", h.ReconcileAccount)
		})

		// Budget routes
		r.Route("/budgets", func(r chi.Router) {
			r.Get("/", h.ListBudgets)
			r.Post("/", h.CreateBudget)
			r.Get("/{id}", h.GetBudget)
			r.Post("/{id}/check", h.CheckBudget)
			r.Post("/{id}/spend", h.AddSpend)
			r.Get("/{id}/variance", h.GetVariance)
			r.Get("/{id}/scaffold", h.GetScaffold)
		})

		// Forecast routes
		r.Route("/forecast", func(r chi.Router) {
			r.Get("/burn", h.BurnForecast)
			r.Post("/cashflow", h.CashFlowForecast)
		})
	})

	return r
}
