package main

import (
	"bufio"
	"context"
	"io"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"github.com/warp/finance-engine/watch"
)

var flagThreshold float64

var watchCmd = &cobra.Command{
	Use:   "watch [events-file]",
	Short: "Stream spend events and alert on threshold breaches",
	Long: "Reads \"service,cost\" lines from the given file (or stdin) and posts an\n" +
		"alert for every event at or above the threshold.",
	Args: cobra.MaximumNArgs(1),
	Run:  runWatch,
}

func init() {
	watchCmd.Flags().Float64Var(&flagThreshold, "threshold", 0, "Alert threshold in USD (0 uses config)")
	rootCmd.AddCommand(watchCmd)
}

// lineEventStream parses "service,cost" lines into spend events.
type lineEventStream struct {
	scanner *bufio.Scanner
}

func (s *lineEventStream) Next(_ context.Context) (watch.SpendEvent, error) {
	for s.scanner.Scan() {
		line := strings.TrimSpace(s.scanner.Text())
		if line == "" {
			continue
		}
		service, raw, ok := strings.Cut(line, ",")
		if !ok {
			continue
		}
		cost, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
		if err != nil {
			continue
		}
		return watch.SpendEvent{Service: strings.TrimSpace(service), Cost: cost}, nil
	}
	if err := s.scanner.Err(); err != nil {
		return watch.SpendEvent{}, err
	}
	return watch.SpendEvent{}, io.EOF
}

func runWatch(cmd *cobra.Command, args []string) {
	cfg := loadConfig()
	threshold := flagThreshold
	if threshold == 0 {
		threshold = cfg.Report.AlertThreshold
	}

	in := os.Stdin
	if len(args) == 1 {
		f, err := os.Open(args[0])
		if err != nil {
			log.Fatalf("Cannot read %s: %v", args[0], err)
		}
		defer f.Close()
		in = f
	}

	watcher := watch.Watcher{Channel: cfg.Report.Channel, Threshold: threshold}
	stream := &lineEventStream{scanner: bufio.NewScanner(in)}
	if err := watcher.StreamAlerts(cmd.Context(), stream, consoleReporter{}); err != nil {
		log.Fatalf("Watch failed: %v", err)
	}
}
