package main

import (
	"context"
	"errors"
	"fmt"

	"github.com/elkyn-db/elkyn/pkg/elkyn"
	"github.com/spf13/cobra"
)

var setAsync bool

func init() {
	cmd := newSetCmd()
	cmd.Flags().BoolVar(&setAsync, "async", false, "enqueue the write and wait for its completion instead of writing synchronously")
	rootCmd.AddCommand(cmd)
}

func newSetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "set <path> <json-value>",
		Short: "Write a value at a path",
		Long: `The set command decomposes a JSON value and writes it at a path.

Example:
  elkynctl --data-dir ./data set /users/alice '{"name":"Alice","age":30}'
  elkynctl --data-dir ./data set /counter 1 --async`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSet(args[0], args[1])
		},
	}
}

func runSet(pathStr, jsonStr string) error {
	db, err := openDB()
	if err != nil {
		return err
	}
	defer db.Close()

	v, err := elkyn.FromJSON([]byte(jsonStr))
	if err != nil {
		return fmt.Errorf("parse value: %w", err)
	}

	a, err := resolveAuth(db)
	if err != nil {
		return err
	}

	if setAsync {
		db.EnableAsync(0)
		id, err := db.SetAsync(pathStr, v, a)
		if err != nil {
			return forbiddenAware(err, pathStr)
		}
		if err := db.WaitForWrite(context.Background(), id); err != nil {
			return fmt.Errorf("set %s: %w", pathStr, err)
		}
		printInfo("set %s (async op %d)\n", pathStr, id)
		return nil
	}

	if err := db.Set(pathStr, v, a); err != nil {
		return forbiddenAware(err, pathStr)
	}
	printInfo("set %s\n", pathStr)
	return nil
}

func forbiddenAware(err error, pathStr string) error {
	if errors.Is(err, elkyn.ErrForbidden) {
		printError("forbidden: %s\n", pathStr)
	}
	return err
}
