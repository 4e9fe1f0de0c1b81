/*
report.go - Weekly burn report assembly

PURPOSE:
  Pulls month-to-date spend from an injected source, runs the burn-rate
  forecast, and renders the four weekly figures: MTD spend, daily burn,
  projected month-end, percent of budget. The rendered text is posted to a
  configured channel when a reporter is attached.

DEPENDENCY SHAPE:
  SpendSource and Reporter are single-method interfaces injected at
  construction. Any cost-usage API client satisfies SpendSource; any chat
  client satisfies Reporter; tests use in-memory fakes.
*/
package forecast

import (
	"context"
	"fmt"
	"math"

	"github.com/Rhymond/go-money"
)

// SpendSource supplies month-to-date spend for an elapsed-day window.
type SpendSource interface {
	MonthToDateSpend(ctx context.Context, daysElapsed int) (float64, error)
}

// Reporter posts a rendered report to a chat destination.
type Reporter interface {
	Post(channel, message string) error
}

// WeeklyReport builds and delivers the weekly burn report.
type WeeklyReport struct {
	Forecaster Forecaster
	Source     SpendSource
	Reporter   Reporter // optional; nil skips delivery
	Channel    string
}

// Build fetches MTD spend, forecasts month-end, renders the report, and
// posts it when a reporter is configured. Returns the rendered text.
func (w *WeeklyReport) Build(ctx context.Context, daysElapsed, daysInMonth int) (string, error) {
	spend, err := w.Source.MonthToDateSpend(ctx, daysElapsed)
	if err != nil {
		return "", fmt.Errorf("fetching month-to-date spend: %w", err)
	}

	result, err := w.Forecaster.Forecast(spend, daysElapsed, daysInMonth)
	if err != nil {
		return "", err
	}

	report := Render(result)
	if w.Reporter != nil {
		if err := w.Reporter.Post(w.Channel, report); err != nil {
			return "", fmt.Errorf("posting report: %w", err)
		}
	}
	return report, nil
}

// Render formats the four report figures as human text. Currency display
// goes through go-money so thousands separators and symbols are right.
func Render(r Result) string {
	return fmt.Sprintf(
		"[finance] Week closeout - MTD spend: %s\nDaily burn: %s\nProjected month-end: %s (%.1f%% of budget)",
		usd(r.CurrentSpend), usd(r.BurnRate), usd(r.ForecastMonthly), r.PercentOfBudget)
}

// usd rounds to whole cents before handing off to go-money, which
// truncates floats.
func usd(amount float64) string {
	return money.New(int64(math.Round(amount*100)), money.USD).Display()
}
