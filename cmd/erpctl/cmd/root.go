// Package cmd holds the erpctl subcommands used to operate an ERP deployment.
package cmd

import (
	"database/sql"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/MrJamesThe3rd/ledger/internal/config"
	"github.com/MrJamesThe3rd/ledger/internal/database"
)

var version = "1.0.0"

// NewRootCmd builds the command tree. Each call returns a fresh tree so tests can
// run commands in isolation.
func NewRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "erpctl",
		Short: "Operate the ERP backend: migrations, tokens and stock imports",
		Long: `erpctl runs the operational tasks that sit next to the API server.

Configuration comes from the same environment variables (and .env file)
the server reads, so DB_* and AUTH_JWT_SECRET apply here too.`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(newMigrateCmd(), newTokenCmd(), newImportCmd())

	return root
}

func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		slog.Error("command failed", "error", err)
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func openDB() (*sql.DB, *config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, err
	}

	slog.SetLogLoggerLevel(cfg.LogLevel())

	db, err := database.New(cfg.ConnectionString(), cfg.DB.MaxOpenConns)
	if err != nil {
		return nil, nil, fmt.Errorf("connecting to database: %w", err)
	}

	return db, cfg, nil
}
