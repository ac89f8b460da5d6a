package main

import (
	"fmt"
	"os"

	"github.com/elkyn-db/elkyn/pkg/elkyn"
	"github.com/spf13/cobra"
)

func init() {
	rulesCmd := &cobra.Command{
		Use:   "rules",
		Short: "Manage rule documents",
	}
	rulesCmd.AddCommand(newRulesLoadCmd(), newRulesValidateCmd())
	rootCmd.AddCommand(rulesCmd)
}

func newRulesLoadCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "load <file>",
		Short: "Load a rule document into the database and keep watching it for changes",
		Long: `The rules load command loads a rule document from disk and
installs it as the database's active rule set, then watches the file
and reloads it on every subsequent edit until interrupted.

Example:
  elkynctl --data-dir ./data rules load ./rules.json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRulesLoad(args[0])
		},
	}
}

func runRulesLoad(rulesPath string) error {
	db, err := openDB()
	if err != nil {
		return err
	}
	defer db.Close()

	stop, err := db.WatchRulesFile(rulesPath)
	if err != nil {
		return fmt.Errorf("load rules: %w", err)
	}
	defer stop()

	printInfo("loaded rules from %s, watching for changes, press Ctrl+C to stop\n", rulesPath)
	waitForInterrupt()
	return nil
}

func newRulesValidateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "validate <file>",
		Short: "Validate a rule document without installing it",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRulesValidate(args[0])
		},
	}
}

func runRulesValidate(rulesPath string) error {
	data, err := os.ReadFile(rulesPath)
	if err != nil {
		return fmt.Errorf("read %s: %w", rulesPath, err)
	}
	if err := elkyn.ParseRuleDocument(data); err != nil {
		printError("invalid rule document: %v\n", err)
		return err
	}
	printInfo("%s is a valid rule document\n", rulesPath)
	return nil
}
