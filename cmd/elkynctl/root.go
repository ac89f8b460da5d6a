package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/elkyn-db/elkyn/pkg/elkyn"
	"github.com/spf13/cobra"
)

var (
	// Persistent flags.
	dataDir    string
	authSecret string
	token      string
	jsonOut    bool
)

var rootCmd = &cobra.Command{
	Use:     "elkynctl",
	Short:   "Inspect and manipulate an Elkyn database",
	Long:    `elkynctl is a tool for reading, writing, and watching an embedded Elkyn database, and for managing its rule documents.`,
	Version: "0.1.0",
}

func init() {
	rootCmd.PersistentFlags().StringVar(&dataDir, "data-dir", "", "path to the database directory (required)")
	rootCmd.PersistentFlags().StringVar(&authSecret, "auth-secret", "", "HMAC secret enabling JWT verification; required for --token to have any effect")
	rootCmd.PersistentFlags().StringVar(&token, "token", "", "JWT to authenticate as (requires --auth-secret and rules that check auth.uid/auth.email)")
	rootCmd.PersistentFlags().BoolVar(&jsonOut, "json", false, "output in JSON format")
}

func execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// openDB opens the database at --data-dir, requiring the flag to be set,
// and enables JWT verification if --auth-secret was given.
func openDB() (*elkyn.DB, error) {
	if dataDir == "" {
		return nil, fmt.Errorf("--data-dir is required")
	}
	db, err := elkyn.Open(dataDir)
	if err != nil {
		return nil, err
	}
	if authSecret != "" {
		db.EnableAuth(authSecret)
	}
	return db, nil
}

// resolveAuth validates --token against db, if set, returning the
// resulting AuthContext. With no --token it returns nil (anonymous). A
// --token without --auth-secret fails before any verification is
// attempted, since db never enabled verification in that case.
func resolveAuth(db *elkyn.DB) (*elkyn.AuthContext, error) {
	if token == "" {
		return nil, nil
	}
	if authSecret == "" {
		return nil, fmt.Errorf("--token requires --auth-secret")
	}
	ctx, err := db.ValidateToken(token)
	if err != nil {
		return nil, fmt.Errorf("validate --token: %w", err)
	}
	return &ctx, nil
}

func printInfo(format string, args ...any) {
	fmt.Fprintf(os.Stdout, format, args...)
}

func printError(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "Error: "+format, args...)
}

func printJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
