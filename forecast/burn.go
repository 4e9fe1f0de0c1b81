/*
Package forecast provides the forward-looking projection algorithms.

PURPOSE:
  Two independent, pure projections over historical numeric series:
  - Burn-rate: extrapolates month-to-date spend to a month-end total and
    compares it against a budget limit (burn.go)
  - Rolling cash-flow: smooths a historical net-flow series and projects
    future months from the baseline (cashflow.go)

  Plus a simple moving-average trend detector (trend.go) and the weekly
  burn report assembly (report.go).

NUMERIC MODEL:
  Rates and percentages use float64; these are projections, not money of
  record. Amounts of record stay decimal in the ledger and budget packages;
  callers convert once at the boundary.

ERROR POSTURE:
  Non-positive time divisors abort with ErrInvalidArgument rather than
  producing NaN or Inf; a wrong divisor silently corrupts every downstream
  figure. Empty histories degrade to zero-valued results: a period with no
  activity is a legitimate state and must not interrupt batch runs.
*/
package forecast

import (
	"errors"
	"fmt"
)

// ErrInvalidArgument is returned for non-positive time divisors.
var ErrInvalidArgument = errors.New("invalid argument")

// Result is a burn-rate forecast. Produced fresh on every call, never
// stored; treat as immutable.
type Result struct {
	CurrentSpend    float64
	BurnRate        float64 // average spend per elapsed day
	ForecastMonthly float64 // projected month-end total
	PercentOfBudget float64 // forecast as a percentage of the budget limit
}

// Forecaster projects month-end spend against an allocated limit.
type Forecaster struct {
	BudgetLimit float64
}

// Forecast extrapolates current spend to month end.
//
//	burn rate        = currentSpend / daysElapsed
//	forecast monthly = burn rate * daysInMonth
//	percent          = forecast monthly / BudgetLimit * 100 (0 if limit is 0)
func (f Forecaster) Forecast(currentSpend float64, daysElapsed, daysInMonth int) (Result, error) {
	if daysElapsed <= 0 {
		return Result{}, fmt.Errorf("%w: days_elapsed must be positive, got %d", ErrInvalidArgument, daysElapsed)
	}
	if daysInMonth <= 0 {
		return Result{}, fmt.Errorf("%w: days_in_month must be positive, got %d", ErrInvalidArgument, daysInMonth)
	}

	burnRate := currentSpend / float64(daysElapsed)
	forecastMonthly := burnRate * float64(daysInMonth)

	percent := 0.0
	if f.BudgetLimit != 0 {
		percent = forecastMonthly / f.BudgetLimit * 100
	}

	return Result{
		CurrentSpend:    currentSpend,
		BurnRate:        burnRate,
		ForecastMonthly: forecastMonthly,
		PercentOfBudget: percent,
	}, nil
}
