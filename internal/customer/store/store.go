package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/MrJamesThe3rd/ledger/internal/customer"
	"github.com/MrJamesThe3rd/ledger/internal/database"
	"github.com/MrJamesThe3rd/ledger/internal/page"
)

const entity = "customer"

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

const selectColumns = `id, name, email, phone, address, city, country, tax_id, created_at, updated_at`

func scanCustomer(s scanner) (*customer.Customer, error) {
	var c customer.Customer
	if err := s.Scan(
		&c.ID, &c.Name, &c.Email, &c.Phone, &c.Address, &c.City, &c.Country, &c.TaxID,
		&c.CreatedAt, &c.UpdatedAt,
	); err != nil {
		return nil, err
	}

	return &c, nil
}

func (s *Store) CreateCustomer(ctx context.Context, c *customer.Customer) error {
	query := `
		INSERT INTO customers (name, email, phone, address, city, country, tax_id, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, NOW())
		RETURNING id, created_at, updated_at
	`

	err := s.db.QueryRowContext(ctx, query,
		c.Name,
		c.Email,
		c.Phone,
		c.Address,
		c.City,
		c.Country,
		c.TaxID,
	).Scan(&c.ID, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		return database.Classify(entity, "creating customer", 0, err)
	}

	return nil
}

func (s *Store) GetCustomer(ctx context.Context, id int64) (*customer.Customer, error) {
	query := `SELECT ` + selectColumns + ` FROM customers WHERE id = $1`

	c, err := scanCustomer(s.db.QueryRowContext(ctx, query, id))
	if err != nil {
		return nil, database.Classify(entity, "getting customer", id, err)
	}

	return c, nil
}

func (s *Store) ListCustomers(ctx context.Context, p page.Page) ([]*customer.Customer, error) {
	query := `SELECT ` + selectColumns + ` FROM customers ORDER BY id ASC OFFSET $1 LIMIT $2`

	rows, err := s.db.QueryContext(ctx, query, p.Skip, p.Limit)
	if err != nil {
		return nil, database.Classify(entity, "listing customers", 0, err)
	}
	defer rows.Close()

	customers := []*customer.Customer{}

	for rows.Next() {
		c, err := scanCustomer(rows)
		if err != nil {
			return nil, database.Classify(entity, "scanning customer", 0, err)
		}

		customers = append(customers, c)
	}

	if err := rows.Err(); err != nil {
		return nil, database.Classify(entity, "iterating customer rows", 0, err)
	}

	return customers, nil
}

func (s *Store) UpdateCustomer(ctx context.Context, id int64, params customer.UpdateParams) (*customer.Customer, error) {
	var c *customer.Customer

	err := database.InTx(ctx, s.db, func(tx *sql.Tx) error {
		query := `SELECT ` + selectColumns + ` FROM customers WHERE id = $1 FOR UPDATE`

		var err error

		c, err = scanCustomer(tx.QueryRowContext(ctx, query, id))
		if err != nil {
			return err
		}

		params.Apply(c)

		update := `
			UPDATE customers
			SET name = $1, email = $2, phone = $3, address = $4, city = $5, country = $6, tax_id = $7,
			    updated_at = NOW()
			WHERE id = $8
			RETURNING updated_at
		`

		err = tx.QueryRowContext(ctx, update,
			c.Name,
			c.Email,
			c.Phone,
			c.Address,
			c.City,
			c.Country,
			c.TaxID,
			c.ID,
		).Scan(&c.UpdatedAt)
		if err != nil {
			return fmt.Errorf("updating customer: %w", err)
		}

		return nil
	})
	if err != nil {
		return nil, database.Classify(entity, "updating customer", id, err)
	}

	return c, nil
}

func (s *Store) DeleteCustomer(ctx context.Context, id int64) (bool, error) {
	res, err := s.db.ExecContext(ctx, `DELETE FROM customers WHERE id = $1`, id)
	if err != nil {
		return false, database.Classify(entity, "deleting customer", id, err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return false, database.Classify(entity, "deleting customer", id, err)
	}

	return n > 0, nil
}
