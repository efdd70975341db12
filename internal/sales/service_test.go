package sales_test

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MrJamesThe3rd/ledger/internal/apperr"
	"github.com/MrJamesThe3rd/ledger/internal/page"
	"github.com/MrJamesThe3rd/ledger/internal/sales"
)

var generatedNumber = regexp.MustCompile(`^SO-\d{8}-[0-9A-F]{8}$`)

func TestService_Create(t *testing.T) {
	delivery := time.Date(2026, 5, 1, 0, 0, 0, 0, time.UTC)
	ordered := time.Date(2026, 4, 1, 9, 30, 0, 0, time.UTC)

	type testCase struct {
		name      string
		params    sales.CreateParams
		setupMock func(m *sales.MockRepository)
		verify    func(t *testing.T, o *sales.Order)
		wantErr   func(err error) bool
	}

	tests := []testCase{
		{
			name: "AppliesDefaults",
			params: sales.CreateParams{
				CustomerID:  2,
				TotalAmount: decimal.RequireFromString("1500.00"),
			},
			setupMock: func(m *sales.MockRepository) {
				m.EXPECT().CreateOrder(gomock.Any(), gomock.Any()).Return(nil)
			},
			verify: func(t *testing.T, o *sales.Order) {
				assert.Regexp(t, generatedNumber, o.OrderNumber)
				assert.Equal(t, sales.StatusPending, o.Status)
				assert.Equal(t, "SAR", o.Currency)
				assert.False(t, o.OrderDate.IsZero())
				assert.True(t, o.DiscountAmount.IsZero())
				assert.Nil(t, o.DeliveryDate)
			},
		},
		{
			name: "KeepsCallerValues",
			params: sales.CreateParams{
				OrderNumber:  "SO-MANUAL-1",
				CustomerID:   2,
				Status:       sales.StatusConfirmed,
				TotalAmount:  decimal.RequireFromString("99.90"),
				Currency:     "USD",
				OrderDate:    &ordered,
				DeliveryDate: &delivery,
			},
			setupMock: func(m *sales.MockRepository) {
				m.EXPECT().CreateOrder(gomock.Any(), gomock.Any()).Return(nil)
			},
			verify: func(t *testing.T, o *sales.Order) {
				assert.Equal(t, "SO-MANUAL-1", o.OrderNumber)
				assert.Equal(t, sales.StatusConfirmed, o.Status)
				assert.Equal(t, "USD", o.Currency)
				assert.Equal(t, ordered, o.OrderDate)
				assert.Equal(t, &delivery, o.DeliveryDate)
			},
		},
		{
			name:    "NegativeTotal",
			params:  sales.CreateParams{CustomerID: 2, TotalAmount: decimal.RequireFromString("-1")},
			wantErr: apperr.IsValidation,
		},
		{
			name:    "BadCurrency",
			params:  sales.CreateParams{CustomerID: 2, Currency: "RIYAL"},
			wantErr: apperr.IsValidation,
		},
		{
			name:   "UnknownCustomer",
			params: sales.CreateParams{CustomerID: 404},
			setupMock: func(m *sales.MockRepository) {
				m.EXPECT().
					CreateOrder(gomock.Any(), gomock.Any()).
					Return(&apperr.ConflictError{Entity: "sale order", Constraint: "sale_orders_customer_id_fkey"})
			},
			wantErr: apperr.IsConflict,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			repo := sales.NewMockRepository(ctrl)
			if tt.setupMock != nil {
				tt.setupMock(repo)
			}

			svc := sales.NewService(repo)
			got, err := svc.Create(context.Background(), tt.params)

			if tt.wantErr != nil {
				assert.True(t, tt.wantErr(err), "unexpected error: %v", err)
				assert.Nil(t, got)

				return
			}

			require.NoError(t, err)
			tt.verify(t, got)
		})
	}
}

func TestService_UpdateStatus(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := sales.NewMockRepository(ctrl)
	svc := sales.NewService(repo)

	shipped := sales.StatusShipped
	repo.EXPECT().
		UpdateOrder(gomock.Any(), int64(8), sales.UpdateParams{Status: &shipped}).
		Return(&sales.Order{ID: 8, Status: shipped}, nil)

	got, err := svc.UpdateStatus(context.Background(), 8, sales.StatusShipped)
	require.NoError(t, err)
	assert.Equal(t, sales.StatusShipped, got.Status)

	_, err = svc.UpdateStatus(context.Background(), 8, "")
	assert.True(t, apperr.IsValidation(err))
}

func TestUpdateParams_Apply(t *testing.T) {
	o := &sales.Order{ID: 1, OrderNumber: "SO-1", Status: sales.StatusPending, Currency: "SAR"}
	notes := "call before delivery"

	sales.UpdateParams{Notes: &notes}.Apply(o)

	assert.Equal(t, &sales.Order{ID: 1, OrderNumber: "SO-1", Status: sales.StatusPending, Currency: "SAR", Notes: notes}, o)
}

func TestService_List(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := sales.NewMockRepository(ctrl)
	svc := sales.NewService(repo)

	repo.EXPECT().ListOrders(gomock.Any(), page.Default()).Return([]*sales.Order{}, nil)

	got, err := svc.List(context.Background(), page.Default())
	require.NoError(t, err)
	assert.Empty(t, got)

	_, err = svc.List(context.Background(), page.Page{Skip: -5})
	assert.True(t, apperr.IsValidation(err))
}
