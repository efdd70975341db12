package store_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MrJamesThe3rd/ledger/internal/apperr"
	"github.com/MrJamesThe3rd/ledger/internal/database/dbtest"
	"github.com/MrJamesThe3rd/ledger/internal/inventory"
	"github.com/MrJamesThe3rd/ledger/internal/inventory/store"
	"github.com/MrJamesThe3rd/ledger/internal/page"
)

func item(sku string) inventory.CreateParams {
	return inventory.CreateParams{
		Name:         "Aluminium Cans " + sku,
		Category:     "Non-Ferrous",
		SKU:          sku,
		Quantity:     decimal.RequireFromString("500"),
		Unit:         "kg",
		UnitPrice:    decimal.RequireFromString("4.25"),
		Location:     "Yard B",
		MinimumStock: decimal.RequireFromString("100"),
	}
}

func TestStore_Lifecycle(t *testing.T) {
	db := dbtest.Open(t)
	ctx := context.Background()
	svc := inventory.NewService(store.New(db))

	created, err := svc.Create(ctx, item("AL-001"))
	require.NoError(t, err)

	_, err = svc.Create(ctx, item("AL-001"))
	assert.True(t, apperr.IsConflict(err))

	loc := "Yard C"
	updated, err := svc.Update(ctx, created.ID, inventory.UpdateParams{Location: &loc})
	require.NoError(t, err)
	assert.Equal(t, "Yard C", updated.Location)
	assert.True(t, updated.Quantity.Equal(decimal.NewFromInt(500)))

	got, err := svc.Get(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "2125.00", got.Value().StringFixed(2))

	deleted, err := svc.Delete(ctx, created.ID)
	require.NoError(t, err)
	assert.True(t, deleted)
}

func TestStore_ImportIsAllOrNothing(t *testing.T) {
	db := dbtest.Open(t)
	ctx := context.Background()
	svc := inventory.NewService(store.New(db))

	_, err := svc.Create(ctx, item("AL-009"))
	require.NoError(t, err)

	_, err = svc.Import(ctx, []inventory.CreateParams{item("AL-010"), item("AL-009")})
	assert.True(t, apperr.IsConflict(err))

	list, err := svc.List(ctx, page.Default())
	require.NoError(t, err)
	assert.Len(t, list, 1)

	imported, err := svc.Import(ctx, []inventory.CreateParams{item("AL-010"), item("AL-011")})
	require.NoError(t, err)
	assert.NotZero(t, imported[1].ID)

	list, err = svc.List(ctx, page.Default())
	require.NoError(t, err)
	assert.Len(t, list, 3)
}
