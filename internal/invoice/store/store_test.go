package store_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MrJamesThe3rd/ledger/internal/apperr"
	"github.com/MrJamesThe3rd/ledger/internal/database/dbtest"
	"github.com/MrJamesThe3rd/ledger/internal/invoice"
	"github.com/MrJamesThe3rd/ledger/internal/invoice/store"
	"github.com/MrJamesThe3rd/ledger/internal/page"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func TestStore_Lifecycle(t *testing.T) {
	db := dbtest.Open(t)
	ctx := context.Background()
	customerID := dbtest.Customer(t, db, "buyer@example.sa")

	svc := invoice.NewService(store.New(db))

	issued := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)

	created, err := svc.Create(ctx, invoice.CreateParams{
		CustomerID: customerID,
		IssueDate:  issued,
		DueDate:    issued.AddDate(0, 1, 0),
		Items: []invoice.ItemParams{
			{ItemName: "Scrap Copper", Quantity: dec("2"), UnitPrice: dec("50.00")},
			{ItemName: "Scrap Steel", Quantity: dec("3"), UnitPrice: dec("10.00")},
		},
	})
	require.NoError(t, err)
	require.NotZero(t, created.ID)

	got, err := svc.Get(ctx, created.ID)
	require.NoError(t, err)
	require.Len(t, got.Items, 2)
	assert.Equal(t, "Scrap Copper", got.Items[0].ItemName)
	assert.Equal(t, "149.50", got.TotalAmountWithVAT.StringFixed(2))
	assert.Nil(t, got.UpdatedAt)

	item, err := svc.GetItem(ctx, got.Items[1].ID)
	require.NoError(t, err)
	assert.Equal(t, "30.00", item.LineTotal.StringFixed(2))

	updated, err := svc.Update(ctx, created.ID, invoice.UpdateParams{
		Items: []invoice.ItemParams{{ItemName: "Lead", Quantity: dec("4"), UnitPrice: dec("10")}},
	})
	require.NoError(t, err)
	require.Len(t, updated.Items, 1)
	assert.Equal(t, "46.00", updated.TotalAmountWithVAT.StringFixed(2))
	assert.NotNil(t, updated.UpdatedAt)

	_, err = svc.GetItem(ctx, got.Items[0].ID)
	assert.True(t, apperr.IsNotFound(err))

	paid, err := svc.UpdateStatus(ctx, created.ID, invoice.StatusPaid)
	require.NoError(t, err)
	assert.Equal(t, invoice.StatusPaid, paid.Status)
	require.Len(t, paid.Items, 1)

	list, err := svc.List(ctx, invoice.ListFilter{CustomerID: &customerID}, page.Default())
	require.NoError(t, err)
	assert.Len(t, list, 1)

	deleted, err := svc.Delete(ctx, created.ID)
	require.NoError(t, err)
	assert.True(t, deleted)

	_, err = svc.Get(ctx, created.ID)
	assert.True(t, apperr.IsNotFound(err))

	_, err = svc.GetItem(ctx, updated.Items[0].ID)
	assert.True(t, apperr.IsNotFound(err))

	deleted, err = svc.Delete(ctx, created.ID)
	require.NoError(t, err)
	assert.False(t, deleted)
}

func TestStore_UnknownCustomer(t *testing.T) {
	db := dbtest.Open(t)
	svc := invoice.NewService(store.New(db))

	issued := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)

	_, err := svc.Create(context.Background(), invoice.CreateParams{
		CustomerID: 999,
		IssueDate:  issued,
		DueDate:    issued,
		Items:      []invoice.ItemParams{{ItemName: "Brass", Quantity: dec("1"), UnitPrice: dec("1")}},
	})
	var nf *apperr.NotFoundError
	require.ErrorAs(t, err, &nf)
	assert.Equal(t, "customer", nf.Entity)
	assert.Equal(t, int64(999), nf.ID)

	var n int
	require.NoError(t, db.QueryRow(`SELECT COUNT(*) FROM invoice_items`).Scan(&n))
	assert.Zero(t, n)
}

func TestStore_ListPaging(t *testing.T) {
	db := dbtest.Open(t)
	ctx := context.Background()
	customerID := dbtest.Customer(t, db, "pager@example.sa")
	svc := invoice.NewService(store.New(db))

	issued := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)

	for range 5 {
		_, err := svc.Create(ctx, invoice.CreateParams{CustomerID: customerID, IssueDate: issued, DueDate: issued})
		require.NoError(t, err)
	}

	all, err := svc.List(ctx, invoice.ListFilter{}, page.Default())
	require.NoError(t, err)
	require.Len(t, all, 5)

	window, err := svc.List(ctx, invoice.ListFilter{}, page.Page{Skip: 1, Limit: 2})
	require.NoError(t, err)
	require.Len(t, window, 2)
	assert.Equal(t, all[1].ID, window[0].ID)
	assert.Equal(t, all[2].ID, window[1].ID)
}
