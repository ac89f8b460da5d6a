package main

import (
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(newDeleteCmd())
}

func newDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <path>",
		Short: "Delete the subtree rooted at a path",
		Long: `The delete command removes a path and every descendant under it.

Example:
  elkynctl --data-dir ./data delete /users/alice`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDelete(args[0])
		},
	}
}

func runDelete(pathStr string) error {
	db, err := openDB()
	if err != nil {
		return err
	}
	defer db.Close()

	a, err := resolveAuth(db)
	if err != nil {
		return err
	}

	if err := db.Delete(pathStr, a); err != nil {
		return forbiddenAware(err, pathStr)
	}
	printInfo("deleted %s\n", pathStr)
	return nil
}
