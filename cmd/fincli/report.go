package main

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/spf13/cobra"
	"github.com/warp/finance-engine/forecast"
	"github.com/warp/finance-engine/store/sqlite"
)

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Build the weekly burn report from stored ledger data",
	Run:   runReport,
}

func init() {
	rootCmd.AddCommand(reportCmd)
}

// ledgerSpendSource derives month-to-date spend from stored ledger
// debits. The elapsed-day window is anchored at the first of the
// current month.
type ledgerSpendSource struct {
	store *sqlite.Store
}

func (s *ledgerSpendSource) MonthToDateSpend(ctx context.Context, daysElapsed int) (float64, error) {
	now := time.Now().UTC()
	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)
	cutoff := monthStart.AddDate(0, 0, daysElapsed)

	files, err := s.store.AllFiles(ctx)
	if err != nil {
		return 0, err
	}

	spend := 0.0
	for _, f := range files {
		for _, e := range f.Entries {
			if e.Date.Before(monthStart) || !e.Date.Before(cutoff) {
				continue
			}
			spend += e.Debit.InexactFloat64()
		}
	}
	return spend, nil
}

// consoleReporter prints the report the way a chat client would post it.
type consoleReporter struct{}

func (consoleReporter) Post(channel, message string) error {
	fmt.Printf("%s:\n%s\n", channel, message)
	return nil
}

func runReport(cmd *cobra.Command, args []string) {
	cfg := loadConfig()
	store := openStore(cfg)
	defer store.Close()

	now := time.Now().UTC()
	daysElapsed := now.Day()
	daysInMonth := time.Date(now.Year(), now.Month()+1, 0, 0, 0, 0, 0, time.UTC).Day()

	report := forecast.WeeklyReport{
		Forecaster: forecast.Forecaster{BudgetLimit: cfg.Report.MonthlyBudget},
		Source:     &ledgerSpendSource{store: store},
		Reporter:   consoleReporter{},
		Channel:    cfg.Report.Channel,
	}

	if _, err := report.Build(cmd.Context(), daysElapsed, daysInMonth); err != nil {
		log.Fatalf("Report failed: %v", err)
	}
}
