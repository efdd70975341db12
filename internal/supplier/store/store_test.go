package store_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MrJamesThe3rd/ledger/internal/apperr"
	"github.com/MrJamesThe3rd/ledger/internal/supplier"
	"github.com/MrJamesThe3rd/ledger/internal/supplier/store"
	"github.com/MrJamesThe3rd/ledger/internal/database/dbtest"
	"github.com/MrJamesThe3rd/ledger/internal/page"
)

func TestStore_Lifecycle(t *testing.T) {
	db := dbtest.Open(t)
	ctx := context.Background()
	svc := supplier.NewService(store.New(db))

	created, err := svc.Create(ctx, supplier.CreateParams{Name: "Jubail Steel Works", Email: "orders@jubailsteel.sa", PaymentTerms: "Net 30"})
	require.NoError(t, err)
	assert.NotZero(t, created.ID)
	assert.Equal(t, supplier.DefaultCountry, created.Country)

	_, err = svc.Create(ctx, supplier.CreateParams{Name: "Copycat", Email: "orders@jubailsteel.sa"})
	assert.True(t, apperr.IsConflict(err))

	phone := "+966 11 000 0000"
	updated, err := svc.Update(ctx, created.ID, supplier.UpdateParams{Phone: &phone})
	require.NoError(t, err)
	assert.Equal(t, phone, updated.Phone)
	assert.Equal(t, "Jubail Steel Works", updated.Name)
	assert.Equal(t, "Net 30", updated.PaymentTerms)
	assert.NotNil(t, updated.UpdatedAt)

	_, err = svc.Update(ctx, 9999, supplier.UpdateParams{Phone: &phone})
	assert.True(t, apperr.IsNotFound(err))

	list, err := svc.List(ctx, page.Default())
	require.NoError(t, err)
	assert.Len(t, list, 1)

	deleted, err := svc.Delete(ctx, created.ID)
	require.NoError(t, err)
	assert.True(t, deleted)

	_, err = svc.Get(ctx, created.ID)
	assert.True(t, apperr.IsNotFound(err))
}

func TestStore_DeleteReferenced(t *testing.T) {
	db := dbtest.Open(t)
	ctx := context.Background()
	id := dbtest.Supplier(t, db, "held@example.sa")

	_, err := db.ExecContext(ctx,
		`INSERT INTO purchase_orders (order_number, supplier_id, total_amount) VALUES ('PO-TEST-1', $1, 10)`, id)
	require.NoError(t, err)

	deleted, err := store.New(db).DeleteSupplier(ctx, id)
	assert.True(t, apperr.IsConflict(err))
	assert.False(t, deleted)

	_, err = store.New(db).GetSupplier(ctx, id)
	assert.NoError(t, err)
}
