package main

import (
	"fmt"
	"log"
	"os"

	"github.com/spf13/cobra"
	"github.com/warp/finance-engine/csvio"
	"github.com/warp/finance-engine/ledger"
)

var importCmd = &cobra.Command{
	Use:   "import <file.csv|directory>",
	Short: "Import ledger CSV files into the database",
	Args:  cobra.ExactArgs(1),
	Run:   runImport,
}

func init() {
	rootCmd.AddCommand(importCmd)
}

func runImport(cmd *cobra.Command, args []string) {
	store := openStore(loadConfig())
	defer store.Close()

	path := args[0]
	info, err := os.Stat(path)
	if err != nil {
		log.Fatalf("Cannot read %s: %v", path, err)
	}

	var files []*ledger.File
	if info.IsDir() {
		files, err = csvio.LoadDir(path)
	} else {
		var f *ledger.File
		f, err = csvio.ReadFile(path)
		files = []*ledger.File{f}
	}
	if err != nil {
		log.Fatalf("Import failed: %v", err)
	}

	ctx := cmd.Context()
	for _, f := range files {
		if err := store.SaveFile(ctx, f); err != nil {
			log.Fatalf("Failed to store %s: %v", f.Name, err)
		}
		s := f.Summary()
		fmt.Printf("%s: %d entries, debits %s, credits %s, imbalance %s\n",
			f.Name, s.Entries,
			s.Debits.StringFixed(2), s.Credits.StringFixed(2), s.Imbalance.StringFixed(2))
	}
}
