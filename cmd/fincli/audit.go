package main

import (
	"fmt"
	"log"
	"os"

	"github.com/spf13/cobra"
	"github.com/warp/finance-engine/csvio"
	"github.com/warp/finance-engine/ledger"
)

var auditCmd = &cobra.Command{
	Use:   "audit <file.csv>",
	Short: "Verify entry integrity and flag duplicates in a CSV file",
	Args:  cobra.ExactArgs(1),
	Run:   runAudit,
}

func init() {
	rootCmd.AddCommand(auditCmd)
}

func runAudit(cmd *cobra.Command, args []string) {
	f, err := csvio.ReadFile(args[0])
	if err != nil {
		log.Fatalf("Audit failed: %v", err)
	}

	result := ledger.VerifyEntries(f.Entries)
	dupes := ledger.DetectDuplicates(f.Entries)

	fmt.Printf("Verified %d entries\n", result.Verified)
	for _, issue := range result.Issues {
		fmt.Printf("  issue: %s\n", issue)
	}
	for _, d := range dupes {
		fmt.Printf("  duplicate: %s\n", d)
	}

	if !result.Passed || len(dupes) > 0 {
		fmt.Println("FAILED")
		os.Exit(1)
	}
	fmt.Println("PASSED")
}
