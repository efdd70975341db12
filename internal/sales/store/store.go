package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/MrJamesThe3rd/ledger/internal/database"
	"github.com/MrJamesThe3rd/ledger/internal/page"
	"github.com/MrJamesThe3rd/ledger/internal/sales"
)

const entity = "sale order"

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
	id, order_number, customer_id, status, total_amount, tax_amount, discount_amount,
	currency, notes, order_date, delivery_date, created_at, updated_at
`

func scanOrder(s scanner) (*sales.Order, error) {
	var o sales.Order

	var status string

	if err := s.Scan(
		&o.ID, &o.OrderNumber, &o.CustomerID, &status, &o.TotalAmount, &o.TaxAmount, &o.DiscountAmount,
		&o.Currency, &o.Notes, &o.OrderDate, &o.DeliveryDate, &o.CreatedAt, &o.UpdatedAt,
	); err != nil {
		return nil, err
	}

	o.Status = sales.Status(status)

	return &o, nil
}

func (s *Store) CreateOrder(ctx context.Context, o *sales.Order) error {
	query := `
		INSERT INTO sale_orders (order_number, customer_id, status, total_amount, tax_amount, discount_amount,
		                         currency, notes, order_date, delivery_date, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, NOW())
		RETURNING id, created_at, updated_at
	`

	err := s.db.QueryRowContext(ctx, query,
		o.OrderNumber,
		o.CustomerID,
		o.Status,
		o.TotalAmount,
		o.TaxAmount,
		o.DiscountAmount,
		o.Currency,
		o.Notes,
		o.OrderDate,
		o.DeliveryDate,
	).Scan(&o.ID, &o.CreatedAt, &o.UpdatedAt)
	if err != nil {
		return database.Classify(entity, "creating sale order", 0, err)
	}

	return nil
}

func (s *Store) GetOrder(ctx context.Context, id int64) (*sales.Order, error) {
	query := `SELECT ` + selectColumns + ` FROM sale_orders WHERE id = $1`

	o, err := scanOrder(s.db.QueryRowContext(ctx, query, id))
	if err != nil {
		return nil, database.Classify(entity, "getting sale order", id, err)
	}

	return o, nil
}

func (s *Store) ListOrders(ctx context.Context, p page.Page) ([]*sales.Order, error) {
	query := `SELECT ` + selectColumns + ` FROM sale_orders ORDER BY id ASC OFFSET $1 LIMIT $2`

	rows, err := s.db.QueryContext(ctx, query, p.Skip, p.Limit)
	if err != nil {
		return nil, database.Classify(entity, "listing sale orders", 0, err)
	}
	defer rows.Close()

	orders := []*sales.Order{}

	for rows.Next() {
		o, err := scanOrder(rows)
		if err != nil {
			return nil, database.Classify(entity, "scanning sale order", 0, err)
		}

		orders = append(orders, o)
	}

	if err := rows.Err(); err != nil {
		return nil, database.Classify(entity, "iterating sale order rows", 0, err)
	}

	return orders, nil
}

func (s *Store) UpdateOrder(ctx context.Context, id int64, params sales.UpdateParams) (*sales.Order, error) {
	var o *sales.Order

	err := database.InTx(ctx, s.db, func(tx *sql.Tx) error {
		query := `SELECT ` + selectColumns + ` FROM sale_orders WHERE id = $1 FOR UPDATE`

		var err error

		o, err = scanOrder(tx.QueryRowContext(ctx, query, id))
		if err != nil {
			return err
		}

		params.Apply(o)

		update := `
			UPDATE sale_orders
			SET order_number = $1, customer_id = $2, status = $3, total_amount = $4, tax_amount = $5,
			    discount_amount = $6, currency = $7, notes = $8, delivery_date = $9, updated_at = NOW()
			WHERE id = $10
			RETURNING updated_at
		`

		err = tx.QueryRowContext(ctx, update,
			o.OrderNumber,
			o.CustomerID,
			o.Status,
			o.TotalAmount,
			o.TaxAmount,
			o.DiscountAmount,
			o.Currency,
			o.Notes,
			o.DeliveryDate,
			o.ID,
		).Scan(&o.UpdatedAt)
		if err != nil {
			return fmt.Errorf("updating sale order: %w", err)
		}

		return nil
	})
	if err != nil {
		return nil, database.Classify(entity, "updating sale order", id, err)
	}

	return o, nil
}

func (s *Store) DeleteOrder(ctx context.Context, id int64) (bool, error) {
	res, err := s.db.ExecContext(ctx, `DELETE FROM sale_orders WHERE id = $1`, id)
	if err != nil {
		return false, database.Classify(entity, "deleting sale order", id, err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return false, database.Classify(entity, "deleting sale order", id, err)
	}

	return n > 0, nil
}
