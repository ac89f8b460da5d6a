package main

import (
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(newStatsCmd())
}

func newStatsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Print operator-facing counters",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runStats()
		},
	}
}

func runStats() error {
	db, err := openDB()
	if err != nil {
		return err
	}
	defer db.Close()

	s := db.Stats()
	if jsonOut {
		return printJSON(s)
	}

	printInfo("writes:            %d\n", s.Writes)
	printInfo("reads:             %d\n", s.Reads)
	printInfo("forbidden:         %d\n", s.Forbidden)
	printInfo("dropped events:    %d\n", s.DroppedEvents)
	printInfo("subscriptions:     %d\n", s.Subscriptions)
	printInfo("async queue depth: %d\n", s.AsyncQueueDepth)
	printInfo("stale markers:     %d\n", s.StaleMarkers)
	return nil
}
