package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/MrJamesThe3rd/ledger/internal/database"
	"github.com/MrJamesThe3rd/ledger/internal/page"
	"github.com/MrJamesThe3rd/ledger/internal/purchasing"
)

const entity = "purchase order"

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

const selectColumns = `
	id, order_number, supplier_id, status, total_amount, tax_amount, discount_amount,
	currency, notes, order_date, expected_delivery_date, actual_delivery_date, created_at, updated_at
`

func scanOrder(s scanner) (*purchasing.Order, error) {
	var o purchasing.Order

	var status string

	if err := s.Scan(
		&o.ID, &o.OrderNumber, &o.SupplierID, &status, &o.TotalAmount, &o.TaxAmount, &o.DiscountAmount,
		&o.Currency, &o.Notes, &o.OrderDate, &o.ExpectedDeliveryDate, &o.ActualDeliveryDate,
		&o.CreatedAt, &o.UpdatedAt,
	); err != nil {
		return nil, err
	}

	o.Status = purchasing.Status(status)

	return &o, nil
}

func (s *Store) CreateOrder(ctx context.Context, o *purchasing.Order) error {
	query := `
		INSERT INTO purchase_orders (order_number, supplier_id, status, total_amount, tax_amount, discount_amount,
		                             currency, notes, order_date, expected_delivery_date, actual_delivery_date, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, NOW())
		RETURNING id, created_at, updated_at
	`

	err := s.db.QueryRowContext(ctx, query,
		o.OrderNumber,
		o.SupplierID,
		o.Status,
		o.TotalAmount,
		o.TaxAmount,
		o.DiscountAmount,
		o.Currency,
		o.Notes,
		o.OrderDate,
		o.ExpectedDeliveryDate,
		o.ActualDeliveryDate,
	).Scan(&o.ID, &o.CreatedAt, &o.UpdatedAt)
	if err != nil {
		return database.Classify(entity, "creating purchase order", 0, err)
	}

	return nil
}

func (s *Store) GetOrder(ctx context.Context, id int64) (*purchasing.Order, error) {
	query := `SELECT ` + selectColumns + ` FROM purchase_orders WHERE id = $1`

	o, err := scanOrder(s.db.QueryRowContext(ctx, query, id))
	if err != nil {
		return nil, database.Classify(entity, "getting purchase order", id, err)
	}

	return o, nil
}

func (s *Store) ListOrders(ctx context.Context, p page.Page) ([]*purchasing.Order, error) {
	query := `SELECT ` + selectColumns + ` FROM purchase_orders ORDER BY id ASC OFFSET $1 LIMIT $2`

	rows, err := s.db.QueryContext(ctx, query, p.Skip, p.Limit)
	if err != nil {
		return nil, database.Classify(entity, "listing purchase orders", 0, err)
	}
	defer rows.Close()

	orders := []*purchasing.Order{}

	for rows.Next() {
		o, err := scanOrder(rows)
		if err != nil {
			return nil, database.Classify(entity, "scanning purchase order", 0, err)
		}

		orders = append(orders, o)
	}

	if err := rows.Err(); err != nil {
		return nil, database.Classify(entity, "iterating purchase order rows", 0, err)
	}

	return orders, nil
}

func (s *Store) UpdateOrder(ctx context.Context, id int64, params purchasing.UpdateParams) (*purchasing.Order, error) {
	var o *purchasing.Order

	err := database.InTx(ctx, s.db, func(tx *sql.Tx) error {
		query := `SELECT ` + selectColumns + ` FROM purchase_orders WHERE id = $1 FOR UPDATE`

		var err error

		o, err = scanOrder(tx.QueryRowContext(ctx, query, id))
		if err != nil {
			return err
		}

		params.Apply(o)

		update := `
			UPDATE purchase_orders
			SET order_number = $1, supplier_id = $2, status = $3, total_amount = $4, tax_amount = $5,
			    discount_amount = $6, currency = $7, notes = $8,
			    expected_delivery_date = $9, actual_delivery_date = $10, updated_at = NOW()
			WHERE id = $11
			RETURNING updated_at
		`

		err = tx.QueryRowContext(ctx, update,
			o.OrderNumber,
			o.SupplierID,
			o.Status,
			o.TotalAmount,
			o.TaxAmount,
			o.DiscountAmount,
			o.Currency,
			o.Notes,
			o.ExpectedDeliveryDate,
			o.ActualDeliveryDate,
			o.ID,
		).Scan(&o.UpdatedAt)
		if err != nil {
			return fmt.Errorf("updating purchase order: %w", err)
		}

		return nil
	})
	if err != nil {
		return nil, database.Classify(entity, "updating purchase order", id, err)
	}

	return o, nil
}

func (s *Store) DeleteOrder(ctx context.Context, id int64) (bool, error) {
	res, err := s.db.ExecContext(ctx, `DELETE FROM purchase_orders WHERE id = $1`, id)
	if err != nil {
		return false, database.Classify(entity, "deleting purchase order", id, err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return false, database.Classify(entity, "deleting purchase order", id, err)
	}

	return n > 0, nil
}
