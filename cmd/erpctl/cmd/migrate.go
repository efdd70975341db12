package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/MrJamesThe3rd/ledger/internal/database"
)

func newMigrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Create any missing tables and indexes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			db, _, err := openDB()
			if err != nil {
				return err
			}
			defer db.Close()

			if err := database.Migrate(cmd.Context(), db); err != nil {
				return fmt.Errorf("migrating database: %w", err)
			}

			fmt.Fprintln(cmd.OutOrStdout(), "schema is up to date")

			return nil
		},
	}
}
