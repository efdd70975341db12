package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/MrJamesThe3rd/ledger/internal/database"
	"github.com/MrJamesThe3rd/ledger/internal/inventory"
	"github.com/MrJamesThe3rd/ledger/internal/page"
)

const entity = "inventory item"

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
	id, name, description, category, sku, quantity, unit, unit_price, location, minimum_stock,
	created_at, updated_at
`

func scanItem(s scanner) (*inventory.Item, error) {
	var it inventory.Item
	if err := s.Scan(
		&it.ID, &it.Name, &it.Description, &it.Category, &it.SKU, &it.Quantity, &it.Unit,
		&it.UnitPrice, &it.Location, &it.MinimumStock,
		&it.CreatedAt, &it.UpdatedAt,
	); err != nil {
		return nil, err
	}

	return &it, nil
}

const insertQuery = `
	INSERT INTO inventory_items (name, description, category, sku, quantity, unit, unit_price, location, minimum_stock, created_at)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, NOW())
	RETURNING id, created_at, updated_at
`

type rowQuerier interface {
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

func insert(ctx context.Context, q rowQuerier, it *inventory.Item) error {
	return q.QueryRowContext(ctx, insertQuery,
		it.Name,
		it.Description,
		it.Category,
		it.SKU,
		it.Quantity,
		it.Unit,
		it.UnitPrice,
		it.Location,
		it.MinimumStock,
	).Scan(&it.ID, &it.CreatedAt, &it.UpdatedAt)
}

func (s *Store) CreateItem(ctx context.Context, it *inventory.Item) error {
	if err := insert(ctx, s.db, it); err != nil {
		return database.Classify(entity, "creating inventory item", 0, err)
	}

	return nil
}

// CreateItems inserts the whole batch in one transaction.
func (s *Store) CreateItems(ctx context.Context, items []*inventory.Item) error {
	err := database.InTx(ctx, s.db, func(tx *sql.Tx) error {
		for _, it := range items {
			if err := insert(ctx, tx, it); err != nil {
				return fmt.Errorf("inserting sku %q: %w", it.SKU, err)
			}
		}

		return nil
	})
	if err != nil {
		return database.Classify(entity, "importing inventory items", 0, err)
	}

	return nil
}

func (s *Store) GetItem(ctx context.Context, id int64) (*inventory.Item, error) {
	query := `SELECT ` + selectColumns + ` FROM inventory_items WHERE id = $1`

	it, err := scanItem(s.db.QueryRowContext(ctx, query, id))
	if err != nil {
		return nil, database.Classify(entity, "getting inventory item", id, err)
	}

	return it, nil
}

func (s *Store) ListItems(ctx context.Context, p page.Page) ([]*inventory.Item, error) {
	query := `SELECT ` + selectColumns + ` FROM inventory_items ORDER BY id ASC OFFSET $1 LIMIT $2`

	rows, err := s.db.QueryContext(ctx, query, p.Skip, p.Limit)
	if err != nil {
		return nil, database.Classify(entity, "listing inventory items", 0, err)
	}
	defer rows.Close()

	items := []*inventory.Item{}

	for rows.Next() {
		it, err := scanItem(rows)
		if err != nil {
			return nil, database.Classify(entity, "scanning inventory item", 0, err)
		}

		items = append(items, it)
	}

	if err := rows.Err(); err != nil {
		return nil, database.Classify(entity, "iterating inventory rows", 0, err)
	}

	return items, nil
}

func (s *Store) UpdateItem(ctx context.Context, id int64, params inventory.UpdateParams) (*inventory.Item, error) {
	var it *inventory.Item

	err := database.InTx(ctx, s.db, func(tx *sql.Tx) error {
		query := `SELECT ` + selectColumns + ` FROM inventory_items WHERE id = $1 FOR UPDATE`

		var err error

		it, err = scanItem(tx.QueryRowContext(ctx, query, id))
		if err != nil {
			return err
		}

		params.Apply(it)

		update := `
			UPDATE inventory_items
			SET name = $1, description = $2, category = $3, sku = $4, quantity = $5, unit = $6,
			    unit_price = $7, location = $8, minimum_stock = $9, updated_at = NOW()
			WHERE id = $10
			RETURNING updated_at
		`

		err = tx.QueryRowContext(ctx, update,
			it.Name,
			it.Description,
			it.Category,
			it.SKU,
			it.Quantity,
			it.Unit,
			it.UnitPrice,
			it.Location,
			it.MinimumStock,
			it.ID,
		).Scan(&it.UpdatedAt)
		if err != nil {
			return fmt.Errorf("updating inventory item: %w", err)
		}

		return nil
	})
	if err != nil {
		return nil, database.Classify(entity, "updating inventory item", id, err)
	}

	return it, nil
}

func (s *Store) DeleteItem(ctx context.Context, id int64) (bool, error) {
	res, err := s.db.ExecContext(ctx, `DELETE FROM inventory_items WHERE id = $1`, id)
	if err != nil {
		return false, database.Classify(entity, "deleting inventory item", id, err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return false, database.Classify(entity, "deleting inventory item", id, err)
	}

	return n > 0, nil
}
