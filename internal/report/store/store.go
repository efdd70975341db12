package store

import (
	"context"
	"database/sql"

	"github.com/MrJamesThe3rd/ledger/internal/database"
	"github.com/MrJamesThe3rd/ledger/internal/page"
	"github.com/MrJamesThe3rd/ledger/internal/report"
)

const entity = "report"

type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

func (s *Store) Dashboard(ctx context.Context) (*report.Dashboard, error) {
	query := `
		SELECT
			(SELECT COUNT(*) FROM inventory_items),
			(SELECT COALESCE(SUM(ROUND(quantity * unit_price, 2)), 0) FROM inventory_items),
			(SELECT COUNT(*) FROM sale_orders),
			(SELECT COUNT(*) FROM purchase_orders),
			(SELECT COUNT(*) FROM invoices),
			(SELECT COALESCE(SUM(total_amount_with_vat), 0) FROM invoices),
			(SELECT COALESCE(SUM(total_amount_with_vat), 0) FROM invoices WHERE status NOT IN ('Paid', 'Cancelled'))
	`

	var d report.Dashboard

	err := s.db.QueryRowContext(ctx, query).Scan(
		&d.Inventory.TotalItems,
		&d.Inventory.TotalValue,
		&d.Sales.TotalOrders,
		&d.Purchasing.TotalOrders,
		&d.Invoices.TotalInvoices,
		&d.Invoices.TotalInvoiced,
		&d.Invoices.Outstanding,
	)
	if err != nil {
		return nil, database.Classify(entity, "reading dashboard", 0, err)
	}

	return &d, nil
}

func (s *Store) InventoryByCategory(ctx context.Context) ([]*report.CategorySummary, error) {
	query := `
		SELECT category, COUNT(*), COALESCE(SUM(quantity), 0), COALESCE(SUM(ROUND(quantity * unit_price, 2)), 0)
		FROM inventory_items
		GROUP BY category
		ORDER BY category ASC
	`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, database.Classify(entity, "summarising inventory", 0, err)
	}
	defer rows.Close()

	summary := []*report.CategorySummary{}

	for rows.Next() {
		var c report.CategorySummary
		if err := rows.Scan(&c.Category, &c.Count, &c.TotalQuantity, &c.TotalValue); err != nil {
			return nil, database.Classify(entity, "scanning category summary", 0, err)
		}

		summary = append(summary, &c)
	}

	if err := rows.Err(); err != nil {
		return nil, database.Classify(entity, "iterating category rows", 0, err)
	}

	return summary, nil
}

func (s *Store) SalesByStatus(ctx context.Context) ([]*report.StatusSummary, error) {
	query := `
		SELECT status, COUNT(*), COALESCE(SUM(total_amount), 0)
		FROM sale_orders
		GROUP BY status
		ORDER BY status ASC
	`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, database.Classify(entity, "summarising sales", 0, err)
	}
	defer rows.Close()

	summary := []*report.StatusSummary{}

	for rows.Next() {
		var st report.StatusSummary
		if err := rows.Scan(&st.Status, &st.Count, &st.TotalAmount); err != nil {
			return nil, database.Classify(entity, "scanning status summary", 0, err)
		}

		summary = append(summary, &st)
	}

	if err := rows.Err(); err != nil {
		return nil, database.Classify(entity, "iterating status rows", 0, err)
	}

	return summary, nil
}

func (s *Store) LowStock(ctx context.Context, p page.Page) ([]*report.LowStockItem, error) {
	query := `
		SELECT id, name, sku, category, unit, location, quantity, minimum_stock
		FROM inventory_items
		WHERE quantity <= minimum_stock
		ORDER BY id ASC
		OFFSET $1 LIMIT $2
	`

	rows, err := s.db.QueryContext(ctx, query, p.Skip, p.Limit)
	if err != nil {
		return nil, database.Classify(entity, "listing low stock", 0, err)
	}
	defer rows.Close()

	items := []*report.LowStockItem{}

	for rows.Next() {
		var it report.LowStockItem
		if err := rows.Scan(&it.ID, &it.Name, &it.SKU, &it.Category, &it.Unit, &it.Location, &it.Quantity, &it.MinimumStock); err != nil {
			return nil, database.Classify(entity, "scanning low stock item", 0, err)
		}

		items = append(items, &it)
	}

	if err := rows.Err(); err != nil {
		return nil, database.Classify(entity, "iterating low stock rows", 0, err)
	}

	return items, nil
}
