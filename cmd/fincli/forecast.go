package main

import (
	"fmt"
	"log"

	"github.com/spf13/cobra"
	"github.com/warp/finance-engine/forecast"
)

var (
	flagSpend       float64
	flagDaysElapsed int
	flagDaysInMonth int
	flagLimit       float64

	flagHistory []float64
	flagMonths  int
	flagGrowth  float64
)

var forecastCmd = &cobra.Command{
	Use:   "forecast",
	Short: "Spend projections",
}

var burnCmd = &cobra.Command{
	Use:   "burn",
	Short: "Project month-end spend from the daily burn rate",
	Run:   runBurn,
}

var cashflowCmd = &cobra.Command{
	Use:   "cashflow",
	Short: "Project future net flow from a monthly history",
	Run:   runCashflow,
}

func init() {
	burnCmd.Flags().Float64Var(&flagSpend, "spend", 0, "Month-to-date spend")
	burnCmd.Flags().IntVar(&flagDaysElapsed, "days-elapsed", 0, "Days elapsed in the month")
	burnCmd.Flags().IntVar(&flagDaysInMonth, "days-in-month", 30, "Days in the month")
	burnCmd.Flags().Float64Var(&flagLimit, "limit", 0, "Monthly budget limit (0 uses config)")
	burnCmd.MarkFlagRequired("days-elapsed")

	cashflowCmd.Flags().Float64SliceVar(&flagHistory, "history", nil, "Monthly net flows, oldest first")
	cashflowCmd.Flags().IntVar(&flagMonths, "months", 3, "Months to project")
	cashflowCmd.Flags().Float64Var(&flagGrowth, "growth", -1, "Monthly growth rate (negative uses config)")

	forecastCmd.AddCommand(burnCmd, cashflowCmd)
	rootCmd.AddCommand(forecastCmd)
}

func runBurn(cmd *cobra.Command, args []string) {
	cfg := loadConfig()
	limit := flagLimit
	if limit == 0 {
		limit = cfg.Report.MonthlyBudget
	}

	f := forecast.Forecaster{BudgetLimit: limit}
	result, err := f.Forecast(flagSpend, flagDaysElapsed, flagDaysInMonth)
	if err != nil {
		log.Fatalf("Forecast failed: %v", err)
	}
	fmt.Println(forecast.Render(result))
}

func runCashflow(cmd *cobra.Command, args []string) {
	cfg := loadConfig()
	growth := flagGrowth
	if growth < 0 {
		growth = cfg.Forecast.GrowthRate
	}

	projection := forecast.CashFlow(flagHistory, flagMonths, growth)
	for i, v := range projection {
		fmt.Printf("month %d: %.2f\n", i+1, v)
	}

	if ma, err := forecast.SimpleMovingAverage(flagHistory, 3); err == nil {
		fmt.Printf("trend: %s (3-month average %.2f)\n", ma.Trend, ma.Predicted)
	}
}
