package main

import (
	"errors"
	"fmt"

	"github.com/elkyn-db/elkyn/pkg/elkyn"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(newGetCmd())
}

func newGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get <path>",
		Short: "Read the value at a path",
		Long: `The get command reads and prints the value stored at a path.

Example:
  elkynctl --data-dir ./data get /users/alice`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGet(args[0])
		},
	}
}

func runGet(pathStr string) error {
	db, err := openDB()
	if err != nil {
		return err
	}
	defer db.Close()

	a, err := resolveAuth(db)
	if err != nil {
		return err
	}

	v, err := db.Get(pathStr, a)
	if err != nil {
		if errors.Is(err, elkyn.ErrNotFound) {
			printError("not found: %s\n", pathStr)
			return err
		}
		if errors.Is(err, elkyn.ErrForbidden) {
			printError("forbidden: %s\n", pathStr)
			return err
		}
		return fmt.Errorf("get %s: %w", pathStr, err)
	}

	printInfo("%s\n", elkyn.ToJSON(v))
	return nil
}
