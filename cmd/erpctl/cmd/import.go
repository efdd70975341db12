package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/MrJamesThe3rd/ledger/internal/importer"
	"github.com/MrJamesThe3rd/ledger/internal/inventory"
	inventoryStore "github.com/MrJamesThe3rd/ledger/internal/inventory/store"
)

func newImportCmd() *cobra.Command {
	var (
		format string
		dryRun bool
	)

	cmd := &cobra.Command{
		Use:   "import [stock-sheet]",
		Short: "Load inventory items from a stock sheet",
		Long: `Parse a stock sheet and insert every row as an inventory item in one
transaction. A single invalid row or duplicate SKU rejects the whole file.`,
		Example: `  # Check a sheet without touching the database
  erpctl import stock.csv --dry-run

  # Load it
  erpctl import stock.csv`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := os.Open(args[0])
			if err != nil {
				return fmt.Errorf("opening stock sheet: %w", err)
			}
			defer f.Close()

			rows, err := importer.NewService().Parse(importer.Format(format), f)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()

			if dryRun {
				if err := inventory.ValidateImport(rows); err != nil {
					return err
				}

				fmt.Fprintf(out, "%d rows valid, nothing stored\n", len(rows))

				for _, row := range rows {
					fmt.Fprintf(out, "%-12s %-30s %s %s\n", row.SKU, row.Name, row.Quantity, row.Unit)
				}

				return nil
			}

			db, _, err := openDB()
			if err != nil {
				return err
			}
			defer db.Close()

			items, err := inventory.NewService(inventoryStore.New(db)).Import(cmd.Context(), rows)
			if err != nil {
				return err
			}

			fmt.Fprintf(out, "imported %d inventory items\n", len(items))

			return nil
		},
	}

	cmd.Flags().StringVar(&format, "format", string(importer.FormatCSV), "stock sheet format")
	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "parse and validate the rows without storing them")

	return cmd
}
