package main

import (
	"fmt"
	"log"
	"os"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
	"github.com/warp/finance-engine/budget"
)

var (
	flagAmount string
	flagOwner  string
)

var budgetCmd = &cobra.Command{
	Use:   "budget",
	Short: "Budget checks and scaffolds",
}

var checkCmd = &cobra.Command{
	Use:   "check <budget-id>",
	Short: "Check whether a proposed spend fits the remaining budget",
	Args:  cobra.ExactArgs(1),
	Run:   runCheck,
}

var scaffoldCmd = &cobra.Command{
	Use:   "scaffold <budget-id>",
	Short: "Emit a budget scaffold document as JSON",
	Args:  cobra.ExactArgs(1),
	Run:   runScaffold,
}

func init() {
	checkCmd.Flags().StringVar(&flagAmount, "amount", "", "Proposed spend amount")
	checkCmd.MarkFlagRequired("amount")

	scaffoldCmd.Flags().StringVar(&flagOwner, "owner", "finance", "Owner recorded on each line")

	budgetCmd.AddCommand(checkCmd, scaffoldCmd)
	rootCmd.AddCommand(budgetCmd)
}

func runCheck(cmd *cobra.Command, args []string) {
	amount, err := decimal.NewFromString(flagAmount)
	if err != nil {
		log.Fatalf("Invalid --amount: %v", err)
	}

	store := openStore(loadConfig())
	defer store.Close()

	b, err := store.GetBudget(cmd.Context(), args[0])
	if err != nil {
		log.Fatalf("Failed to load budget: %v", err)
	}

	decision := b.Check(amount)
	fmt.Printf("Budget:      %s (%s)\n", b.Name, b.ID)
	fmt.Printf("Proposed:    %s\n", decision.Proposed.StringFixed(2))
	fmt.Printf("Remaining:   %s\n", decision.Remaining.StringFixed(2))
	fmt.Printf("Utilization: %s%%\n", decision.Utilization.StringFixed(2))
	if decision.Approved {
		fmt.Println("APPROVED")
	} else {
		fmt.Println("DENIED")
		os.Exit(1)
	}
}

func runScaffold(cmd *cobra.Command, args []string) {
	store := openStore(loadConfig())
	defer store.Close()

	b, err := store.GetBudget(cmd.Context(), args[0])
	if err != nil {
		log.Fatalf("Failed to load budget: %v", err)
	}

	if err := budget.NewScaffold(b, flagOwner).Encode(os.Stdout); err != nil {
		log.Fatalf("Failed to encode scaffold: %v", err)
	}
}
