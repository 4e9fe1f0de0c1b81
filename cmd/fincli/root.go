package main

import (
	"log"
	"os"

	"github.com/spf13/cobra"
	"github.com/warp/finance-engine/config"
	"github.com/warp/finance-engine/store/sqlite"
)

var (
	flagConfig string
	flagDB     string
)

var rootCmd = &cobra.Command{
	Use:   "fincli",
	Short: "Warp finance engine CLI",
	Long:  "Import ledger CSVs, audit and reconcile accounts, check budgets, and run spend forecasts.",
}

// Execute is the main entry point called from main.go.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Config file path")
	rootCmd.PersistentFlags().StringVar(&flagDB, "db", "", "SQLite database path (overrides config)")
}

// loadConfig merges the config file with flag overrides.
func loadConfig() config.Config {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	if flagDB != "" {
		cfg.Server.DBPath = flagDB
	}
	return cfg
}

// openStore opens the shared SQLite database. The caller must Close it.
func openStore(cfg config.Config) *sqlite.Store {
	store, err := sqlite.New(cfg.Server.DBPath)
	if err != nil {
		log.Fatalf("Failed to open database: %v", err)
	}
	return store
}
