package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/MrJamesThe3rd/ledger/internal/database"
	"github.com/MrJamesThe3rd/ledger/internal/invoice"
	"github.com/MrJamesThe3rd/ledger/internal/page"
)

const (
	entityInvoice = "invoice"
	entityItem    = "invoice item"
)

type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

// scanner is satisfied by both *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

// querier is satisfied by both *sql.DB and *sql.Tx.
type querier interface {
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
}

const selectInvoiceColumns = `
	id, customer_id, issue_date, due_date, status,
	total_amount, vat_amount, total_amount_with_vat, created_at, updated_at
`

const selectItemColumns = `id, invoice_id, item_name, quantity, unit_price, line_total`

// scanInvoice expects the column order of selectInvoiceColumns.
func scanInvoice(s scanner) (*invoice.Invoice, error) {
	var inv invoice.Invoice

	var status string

	if err := s.Scan(
		&inv.ID, &inv.CustomerID, &inv.IssueDate, &inv.DueDate, &status,
		&inv.TotalAmount, &inv.VATAmount, &inv.TotalAmountWithVAT,
		&inv.CreatedAt, &inv.UpdatedAt,
	); err != nil {
		return nil, err
	}

	inv.Status = invoice.Status(status)
	inv.Items = []*invoice.Item{}

	return &inv, nil
}

func scanItem(s scanner) (*invoice.Item, error) {
	var it invoice.Item
	if err := s.Scan(&it.ID, &it.InvoiceID, &it.ItemName, &it.Quantity, &it.UnitPrice, &it.LineTotal); err != nil {
		return nil, err
	}

	return &it, nil
}

func (s *Store) CreateInvoice(ctx context.Context, inv *invoice.Invoice) error {
	err := database.InTx(ctx, s.db, func(tx *sql.Tx) error {
		query := `
			INSERT INTO invoices (customer_id, issue_date, due_date, status, total_amount, vat_amount, total_amount_with_vat, created_at)
			VALUES ($1, $2, $3, $4, $5, $6, $7, NOW())
			RETURNING id, created_at, updated_at
		`

		err := tx.QueryRowContext(ctx, query,
			inv.CustomerID,
			inv.IssueDate,
			inv.DueDate,
			inv.Status,
			inv.TotalAmount,
			inv.VATAmount,
			inv.TotalAmountWithVAT,
		).Scan(&inv.ID, &inv.CreatedAt, &inv.UpdatedAt)
		if err != nil {
			return fmt.Errorf("inserting invoice: %w", err)
		}

		return insertItems(ctx, tx, inv.ID, inv.Items)
	})
	if err != nil {
		return database.Classify(entityInvoice, "creating invoice", 0, err)
	}

	return nil
}

func insertItems(ctx context.Context, tx *sql.Tx, invoiceID int64, items []*invoice.Item) error {
	query := `
		INSERT INTO invoice_items (invoice_id, item_name, quantity, unit_price, line_total)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id
	`

	for _, it := range items {
		it.InvoiceID = invoiceID

		err := tx.QueryRowContext(ctx, query,
			invoiceID,
			it.ItemName,
			it.Quantity,
			it.UnitPrice,
			it.LineTotal,
		).Scan(&it.ID)
		if err != nil {
			return fmt.Errorf("inserting invoice item: %w", err)
		}
	}

	return nil
}

func (s *Store) GetInvoice(ctx context.Context, id int64) (*invoice.Invoice, error) {
	query := `SELECT ` + selectInvoiceColumns + ` FROM invoices WHERE id = $1`

	inv, err := scanInvoice(s.db.QueryRowContext(ctx, query, id))
	if err != nil {
		return nil, database.Classify(entityInvoice, "getting invoice", id, err)
	}

	if err := loadItems(ctx, s.db, []*invoice.Invoice{inv}); err != nil {
		return nil, database.Classify(entityInvoice, "getting invoice", id, err)
	}

	return inv, nil
}

func (s *Store) ListInvoices(ctx context.Context, filter invoice.ListFilter, p page.Page) ([]*invoice.Invoice, error) {
	query := `SELECT ` + selectInvoiceColumns + ` FROM invoices`

	var args []any

	argIdx := 1

	if filter.CustomerID != nil {
		query += fmt.Sprintf(" WHERE customer_id = $%d", argIdx)

		args = append(args, *filter.CustomerID)
		argIdx++
	}

	query += fmt.Sprintf(" ORDER BY id ASC OFFSET $%d LIMIT $%d", argIdx, argIdx+1)
	args = append(args, p.Skip, p.Limit)

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, database.Classify(entityInvoice, "listing invoices", 0, err)
	}
	defer rows.Close()

	invoices := []*invoice.Invoice{}

	for rows.Next() {
		inv, err := scanInvoice(rows)
		if err != nil {
			return nil, database.Classify(entityInvoice, "scanning invoice", 0, err)
		}

		invoices = append(invoices, inv)
	}

	if err := rows.Err(); err != nil {
		return nil, database.Classify(entityInvoice, "iterating invoice rows", 0, err)
	}

	if err := loadItems(ctx, s.db, invoices); err != nil {
		return nil, database.Classify(entityInvoice, "listing invoices", 0, err)
	}

	return invoices, nil
}

// loadItems fills the Items of every invoice in one query, ordered by item id.
func loadItems(ctx context.Context, q querier, invoices []*invoice.Invoice) error {
	if len(invoices) == 0 {
		return nil
	}

	ids := make([]int64, len(invoices))
	byID := make(map[int64]*invoice.Invoice, len(invoices))

	for i, inv := range invoices {
		ids[i] = inv.ID
		byID[inv.ID] = inv
	}

	query := `SELECT ` + selectItemColumns + ` FROM invoice_items WHERE invoice_id = ANY($1) ORDER BY id ASC`

	rows, err := q.QueryContext(ctx, query, ids)
	if err != nil {
		return fmt.Errorf("loading invoice items: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		it, err := scanItem(rows)
		if err != nil {
			return fmt.Errorf("scanning invoice item: %w", err)
		}

		if inv, ok := byID[it.InvoiceID]; ok {
			inv.Items = append(inv.Items, it)
		}
	}

	if err := rows.Err(); err != nil {
		return fmt.Errorf("iterating invoice item rows: %w", err)
	}

	return nil
}

// UpdateInvoice locks the row, applies the patch and writes it back. When the patch
// carries items the old ones are replaced in the same transaction.
func (s *Store) UpdateInvoice(ctx context.Context, id int64, patch invoice.Patch) (*invoice.Invoice, error) {
	var inv *invoice.Invoice

	err := database.InTx(ctx, s.db, func(tx *sql.Tx) error {
		query := `SELECT ` + selectInvoiceColumns + ` FROM invoices WHERE id = $1 FOR UPDATE`

		var err error

		inv, err = scanInvoice(tx.QueryRowContext(ctx, query, id))
		if err != nil {
			return err
		}

		if patch.Totals == nil {
			if err := loadItems(ctx, tx, []*invoice.Invoice{inv}); err != nil {
				return err
			}
		}

		if err := patch.Apply(inv); err != nil {
			return err
		}

		update := `
			UPDATE invoices
			SET customer_id = $1, issue_date = $2, due_date = $3, status = $4,
			    total_amount = $5, vat_amount = $6, total_amount_with_vat = $7, updated_at = NOW()
			WHERE id = $8
			RETURNING updated_at
		`

		err = tx.QueryRowContext(ctx, update,
			inv.CustomerID,
			inv.IssueDate,
			inv.DueDate,
			inv.Status,
			inv.TotalAmount,
			inv.VATAmount,
			inv.TotalAmountWithVAT,
			inv.ID,
		).Scan(&inv.UpdatedAt)
		if err != nil {
			return fmt.Errorf("updating invoice: %w", err)
		}

		if patch.Totals == nil {
			return nil
		}

		if _, err := tx.ExecContext(ctx, `DELETE FROM invoice_items WHERE invoice_id = $1`, id); err != nil {
			return fmt.Errorf("removing invoice items: %w", err)
		}

		return insertItems(ctx, tx, id, inv.Items)
	})
	if err != nil {
		return nil, database.Classify(entityInvoice, "updating invoice", id, err)
	}

	return inv, nil
}

func (s *Store) DeleteInvoice(ctx context.Context, id int64) (bool, error) {
	var deleted bool

	err := database.InTx(ctx, s.db, func(tx *sql.Tx) error {
		if _, err := tx.ExecContext(ctx, `DELETE FROM invoice_items WHERE invoice_id = $1`, id); err != nil {
			return fmt.Errorf("removing invoice items: %w", err)
		}

		res, err := tx.ExecContext(ctx, `DELETE FROM invoices WHERE id = $1`, id)
		if err != nil {
			return fmt.Errorf("deleting invoice: %w", err)
		}

		n, err := res.RowsAffected()
		if err != nil {
			return fmt.Errorf("reading affected rows: %w", err)
		}

		deleted = n > 0

		return nil
	})
	if err != nil {
		return false, database.Classify(entityInvoice, "deleting invoice", id, err)
	}

	return deleted, nil
}

func (s *Store) GetItem(ctx context.Context, id int64) (*invoice.Item, error) {
	query := `SELECT ` + selectItemColumns + ` FROM invoice_items WHERE id = $1`

	it, err := scanItem(s.db.QueryRowContext(ctx, query, id))
	if err != nil {
		return nil, database.Classify(entityItem, "getting invoice item", id, err)
	}

	return it, nil
}
