package main

import (
	"fmt"
	"log"
	"time"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
	"github.com/warp/finance-engine/ledger"
)

var (
	flagExpected string
	flagFrom     string
	flagTo       string
)

var reconcileCmd = &cobra.Command{
	Use:   "reconcile <account>",
	Short: "Reconcile an account against an expected balance",
	Args:  cobra.ExactArgs(1),
	Run:   runReconcile,
}

func init() {
	reconcileCmd.Flags().StringVar(&flagExpected, "expected", "0", "Expected balance")
	reconcileCmd.Flags().StringVar(&flagFrom, "from", "", "Period start (YYYY-MM-DD)")
	reconcileCmd.Flags().StringVar(&flagTo, "to", "", "Period end (YYYY-MM-DD)")
	reconcileCmd.MarkFlagRequired("from")
	reconcileCmd.MarkFlagRequired("to")
	rootCmd.AddCommand(reconcileCmd)
}

func runReconcile(cmd *cobra.Command, args []string) {
	expected, err := decimal.NewFromString(flagExpected)
	if err != nil {
		log.Fatalf("Invalid --expected: %v", err)
	}
	from, err := time.Parse("2006-01-02", flagFrom)
	if err != nil {
		log.Fatalf("Invalid --from (use YYYY-MM-DD): %v", err)
	}
	to, err := time.Parse("2006-01-02", flagTo)
	if err != nil {
		log.Fatalf("Invalid --to (use YYYY-MM-DD): %v", err)
	}

	store := openStore(loadConfig())
	defer store.Close()

	reconciler := &ledger.Reconciler{Source: store}
	report, err := reconciler.ReconcileAccount(cmd.Context(), args[0], expected, from, to)
	if err != nil {
		log.Fatalf("Reconciliation failed: %v", err)
	}

	fmt.Printf("Account:    %s\n", report.Account)
	fmt.Printf("Period:     %s to %s\n",
		report.PeriodStart.Format("2006-01-02"), report.PeriodEnd.Format("2006-01-02"))
	fmt.Printf("Expected:   %s\n", report.ExpectedBalance.StringFixed(2))
	fmt.Printf("Calculated: %s (%d entries)\n", report.CalculatedBalance.StringFixed(2), report.EntryCount)
	fmt.Printf("Variance:   %s\n", report.Variance.StringFixed(2))
	if report.Balanced {
		fmt.Println("BALANCED")
	} else {
		fmt.Println("OUT OF BALANCE")
	}
}
