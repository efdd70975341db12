package store_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MrJamesThe3rd/ledger/internal/database/dbtest"
	"github.com/MrJamesThe3rd/ledger/internal/inventory"
	inventorystore "github.com/MrJamesThe3rd/ledger/internal/inventory/store"
	"github.com/MrJamesThe3rd/ledger/internal/invoice"
	invoicestore "github.com/MrJamesThe3rd/ledger/internal/invoice/store"
	"github.com/MrJamesThe3rd/ledger/internal/page"
	"github.com/MrJamesThe3rd/ledger/internal/report"
	"github.com/MrJamesThe3rd/ledger/internal/report/store"
	"github.com/MrJamesThe3rd/ledger/internal/sales"
	salesstore "github.com/MrJamesThe3rd/ledger/internal/sales/store"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func TestStore_Reports(t *testing.T) {
	db := dbtest.Open(t)
	ctx := context.Background()

	stock := inventory.NewService(inventorystore.New(db))
	_, err := stock.Import(ctx, []inventory.CreateParams{
		{Name: "Copper", Category: "Non-Ferrous", SKU: "CU-1", Quantity: dec("10"), Unit: "kg", UnitPrice: dec("30"), MinimumStock: dec("20")},
		{Name: "Brass", Category: "Non-Ferrous", SKU: "BR-1", Quantity: dec("5"), Unit: "kg", UnitPrice: dec("20"), MinimumStock: dec("1")},
		{Name: "Rebar", Category: "Ferrous", SKU: "FE-1", Quantity: dec("100"), Unit: "kg", UnitPrice: dec("2.5"), MinimumStock: dec("100")},
	})
	require.NoError(t, err)

	customerID := dbtest.Customer(t, db, "reports@example.sa")

	orders := sales.NewService(salesstore.New(db))
	for _, st := range []sales.Status{sales.StatusPending, sales.StatusPending, sales.StatusShipped} {
		_, err := orders.Create(ctx, sales.CreateParams{CustomerID: customerID, Status: st, TotalAmount: dec("100")})
		require.NoError(t, err)
	}

	issued := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	_, err = invoice.NewService(invoicestore.New(db)).Create(ctx, invoice.CreateParams{
		CustomerID: customerID,
		IssueDate:  issued,
		DueDate:    issued,
		Items:      []invoice.ItemParams{{ItemName: "Copper", Quantity: dec("2"), UnitPrice: dec("50")}},
	})
	require.NoError(t, err)

	svc := report.NewService(store.New(db))

	d, err := svc.Dashboard(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(3), d.Inventory.TotalItems)
	assert.Equal(t, "650.00", d.Inventory.TotalValue.StringFixed(2))
	assert.Equal(t, int64(3), d.Sales.TotalOrders)
	assert.Equal(t, int64(0), d.Purchasing.TotalOrders)
	assert.Equal(t, int64(1), d.Invoices.TotalInvoices)
	assert.Equal(t, "115.00", d.Invoices.TotalInvoiced.StringFixed(2))
	assert.Equal(t, "115.00", d.Invoices.Outstanding.StringFixed(2))

	categories, err := svc.InventorySummary(ctx)
	require.NoError(t, err)
	require.Len(t, categories, 2)
	assert.Equal(t, "Ferrous", categories[0].Category)
	assert.Equal(t, int64(2), categories[1].Count)
	assert.Equal(t, "15", categories[1].TotalQuantity.String())
	assert.Equal(t, "400.00", categories[1].TotalValue.StringFixed(2))

	statuses, err := svc.SalesSummary(ctx)
	require.NoError(t, err)
	require.Len(t, statuses, 2)
	assert.Equal(t, "pending", statuses[0].Status)
	assert.Equal(t, int64(2), statuses[0].Count)
	assert.Equal(t, "200.00", statuses[0].TotalAmount.StringFixed(2))

	low, err := svc.LowStock(ctx, page.Default())
	require.NoError(t, err)
	require.Len(t, low, 2)
	assert.Equal(t, "CU-1", low[0].SKU)
	assert.Equal(t, "FE-1", low[1].SKU)
}
