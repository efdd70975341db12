package store_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MrJamesThe3rd/ledger/internal/apperr"
	"github.com/MrJamesThe3rd/ledger/internal/database/dbtest"
	"github.com/MrJamesThe3rd/ledger/internal/page"
	"github.com/MrJamesThe3rd/ledger/internal/sales"
	"github.com/MrJamesThe3rd/ledger/internal/sales/store"
)

func TestStore_Lifecycle(t *testing.T) {
	db := dbtest.Open(t)
	ctx := context.Background()
	customerID := dbtest.Customer(t, db, "orders@example.sa")
	svc := sales.NewService(store.New(db))

	created, err := svc.Create(ctx, sales.CreateParams{
		CustomerID:  customerID,
		TotalAmount: decimal.RequireFromString("2500.00"),
		TaxAmount:   decimal.RequireFromString("375.00"),
	})
	require.NoError(t, err)

	got, err := svc.Get(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.OrderNumber, got.OrderNumber)
	assert.Equal(t, "2500.00", got.TotalAmount.StringFixed(2))
	assert.Equal(t, sales.StatusPending, got.Status)

	_, err = svc.Create(ctx, sales.CreateParams{OrderNumber: created.OrderNumber, CustomerID: customerID})
	assert.True(t, apperr.IsConflict(err))

	delivered, err := svc.UpdateStatus(ctx, created.ID, sales.StatusDelivered)
	require.NoError(t, err)
	assert.Equal(t, sales.StatusDelivered, delivered.Status)
	assert.Equal(t, "375.00", delivered.TaxAmount.StringFixed(2))

	list, err := svc.List(ctx, page.Default())
	require.NoError(t, err)
	assert.Len(t, list, 1)

	deleted, err := svc.Delete(ctx, created.ID)
	require.NoError(t, err)
	assert.True(t, deleted)

	_, err = svc.UpdateStatus(ctx, created.ID, sales.StatusCancelled)
	assert.True(t, apperr.IsNotFound(err))
}

func TestStore_UnknownCustomer(t *testing.T) {
	db := dbtest.Open(t)
	svc := sales.NewService(store.New(db))

	_, err := svc.Create(context.Background(), sales.CreateParams{CustomerID: 999})

	var nf *apperr.NotFoundError
	require.ErrorAs(t, err, &nf)
	assert.Equal(t, "customer", nf.Entity)
	assert.Equal(t, int64(999), nf.ID)
}
