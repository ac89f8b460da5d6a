package main

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/elkyn-db/elkyn/pkg/elkyn"
	"github.com/spf13/cobra"
)

var watchDescendants bool

func init() {
	cmd := newWatchCmd()
	cmd.Flags().BoolVar(&watchDescendants, "descendants", true, "also receive events for paths under the pattern")
	rootCmd.AddCommand(cmd)
}

func newWatchCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "watch <pattern>",
		Short: "Subscribe to a path and print events as they arrive",
		Long: `The watch command subscribes to a pattern and streams every
matching change or delete event to stdout until interrupted.

Example:
  elkynctl --data-dir ./data watch /users --descendants`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runWatch(args[0])
		},
	}
}

func runWatch(pattern string) error {
	db, err := openDB()
	if err != nil {
		return err
	}
	defer db.Close()

	id, err := db.Subscribe(pattern, watchDescendants, func(ev elkyn.Event) {
		printEvent(ev)
	})
	if err != nil {
		return err
	}
	defer db.Unsubscribe(id)

	printInfo("watching %s (descendants=%v), press Ctrl+C to stop\n", pattern, watchDescendants)
	waitForInterrupt()
	return nil
}

// waitForInterrupt blocks until SIGINT or SIGTERM arrives, used by the
// long-running subcommands (watch, rules load).
func waitForInterrupt() {
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	<-sigCh
}

func printEvent(ev elkyn.Event) {
	kind := "change"
	if ev.Kind == elkyn.EventValueDeleted {
		kind = "delete"
	}
	if jsonOut {
		obj := map[string]any{"kind": kind, "path": string(ev.Path)}
		if ev.NewValue != nil {
			obj["value"] = string(elkyn.ToJSON(*ev.NewValue))
		}
		_ = printJSON(obj)
		return
	}
	if ev.NewValue != nil {
		printInfo("%s %s %s\n", kind, ev.Path, elkyn.ToJSON(*ev.NewValue))
		return
	}
	printInfo("%s %s\n", kind, ev.Path)
}
