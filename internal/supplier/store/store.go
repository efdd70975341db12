package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/MrJamesThe3rd/ledger/internal/supplier"
	"github.com/MrJamesThe3rd/ledger/internal/database"
	"github.com/MrJamesThe3rd/ledger/internal/page"
)

const entity = "supplier"

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

const selectColumns = `id, name, email, phone, address, city, country, tax_id, payment_terms,
	created_at, updated_at`

func scanSupplier(s scanner) (*supplier.Supplier, error) {
	var sup supplier.Supplier
	if err := s.Scan(
		&sup.ID, &sup.Name, &sup.Email, &sup.Phone, &sup.Address, &sup.City, &sup.Country, &sup.TaxID, &sup.PaymentTerms,
		&sup.CreatedAt, &sup.UpdatedAt,
	); err != nil {
		return nil, err
	}

	return &sup, nil
}

func (s *Store) CreateSupplier(ctx context.Context, sup *supplier.Supplier) error {
	query := `
		INSERT INTO suppliers (name, email, phone, address, city, country, tax_id, payment_terms, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, NOW())
		RETURNING id, created_at, updated_at
	`

	err := s.db.QueryRowContext(ctx, query,
		sup.Name,
		sup.Email,
		sup.Phone,
		sup.Address,
		sup.City,
		sup.Country,
		sup.TaxID,
		sup.PaymentTerms,
	).Scan(&sup.ID, &sup.CreatedAt, &sup.UpdatedAt)
	if err != nil {
		return database.Classify(entity, "creating supplier", 0, err)
	}

	return nil
}

func (s *Store) GetSupplier(ctx context.Context, id int64) (*supplier.Supplier, error) {
	query := `SELECT ` + selectColumns + ` FROM suppliers WHERE id = $1`

	sup, err := scanSupplier(s.db.QueryRowContext(ctx, query, id))
	if err != nil {
		return nil, database.Classify(entity, "getting supplier", id, err)
	}

	return sup, nil
}

func (s *Store) ListSuppliers(ctx context.Context, p page.Page) ([]*supplier.Supplier, error) {
	query := `SELECT ` + selectColumns + ` FROM suppliers ORDER BY id ASC OFFSET $1 LIMIT $2`

	rows, err := s.db.QueryContext(ctx, query, p.Skip, p.Limit)
	if err != nil {
		return nil, database.Classify(entity, "listing suppliers", 0, err)
	}
	defer rows.Close()

	suppliers := []*supplier.Supplier{}

	for rows.Next() {
		sup, err := scanSupplier(rows)
		if err != nil {
			return nil, database.Classify(entity, "scanning supplier", 0, err)
		}

		suppliers = append(suppliers, sup)
	}

	if err := rows.Err(); err != nil {
		return nil, database.Classify(entity, "iterating supplier rows", 0, err)
	}

	return suppliers, nil
}

func (s *Store) UpdateSupplier(ctx context.Context, id int64, params supplier.UpdateParams) (*supplier.Supplier, error) {
	var sup *supplier.Supplier

	err := database.InTx(ctx, s.db, func(tx *sql.Tx) error {
		query := `SELECT ` + selectColumns + ` FROM suppliers WHERE id = $1 FOR UPDATE`

		var err error

		sup, err = scanSupplier(tx.QueryRowContext(ctx, query, id))
		if err != nil {
			return err
		}

		params.Apply(sup)

		update := `
			UPDATE suppliers
			SET name = $1, email = $2, phone = $3, address = $4, city = $5, country = $6, tax_id = $7,
			    payment_terms = $8, updated_at = NOW()
			WHERE id = $9
			RETURNING updated_at
		`

		err = tx.QueryRowContext(ctx, update,
			sup.Name,
			sup.Email,
			sup.Phone,
			sup.Address,
			sup.City,
			sup.Country,
			sup.TaxID,
			sup.PaymentTerms,
			sup.ID,
		).Scan(&sup.UpdatedAt)
		if err != nil {
			return fmt.Errorf("updating supplier: %w", err)
		}

		return nil
	})
	if err != nil {
		return nil, database.Classify(entity, "updating supplier", id, err)
	}

	return sup, nil
}

func (s *Store) DeleteSupplier(ctx context.Context, id int64) (bool, error) {
	res, err := s.db.ExecContext(ctx, `DELETE FROM suppliers WHERE id = $1`, id)
	if err != nil {
		return false, database.Classify(entity, "deleting supplier", id, err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return false, database.Classify(entity, "deleting supplier", id, err)
	}

	return n > 0, nil
}
