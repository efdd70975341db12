// Package dbtest opens a migrated PostgreSQL database for store integration tests.
package dbtest

import (
	"context"
	"database/sql"
	"os"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/MrJamesThe3rd/ledger/internal/database"
)

const EnvURL = "ERP_TEST_DATABASE_URL"

// Open connects to the database named by ERP_TEST_DATABASE_URL, applies the schema and
// empties every table. The test is skipped when the variable is unset.
func Open(t *testing.T) *sql.DB {
	t.Helper()

	url := os.Getenv(EnvURL)
	if url == "" {
		t.Skip(EnvURL + " not set, skipping integration test")
	}

	db, err := database.New(url, 4)
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	ctx := context.Background()
	require.NoError(t, database.Migrate(ctx, db))

	_, err = db.ExecContext(ctx, `
		TRUNCATE invoice_items, invoices, sale_orders, purchase_orders,
		         inventory_items, customers, suppliers
		RESTART IDENTITY CASCADE
	`)
	require.NoError(t, err)

	return db
}

// Customer inserts a bare customer row and returns its id.
func Customer(t *testing.T, db *sql.DB, email string) int64 {
	t.Helper()

	var id int64

	err := db.QueryRowContext(context.Background(),
		`INSERT INTO customers (name, email) VALUES ($1, $2) RETURNING id`, "Customer "+email, email,
	).Scan(&id)
	require.NoError(t, err)

	return id
}

// Supplier inserts a bare supplier row and returns its id.
func Supplier(t *testing.T, db *sql.DB, email string) int64 {
	t.Helper()

	var id int64

	err := db.QueryRowContext(context.Background(),
		`INSERT INTO suppliers (name, email) VALUES ($1, $2) RETURNING id`, "Supplier "+email, email,
	).Scan(&id)
	require.NoError(t, err)

	return id
}
