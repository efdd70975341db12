package purchasing_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MrJamesThe3rd/ledger/internal/apperr"
	purchasinghttp "github.com/MrJamesThe3rd/ledger/internal/http/purchasing"
	"github.com/MrJamesThe3rd/ledger/internal/purchasing"
)

func TestHandler(t *testing.T) {
	tests := []struct {
		name       string
		method     string
		target     string
		body       string
		setupMock  func(m *purchasing.MockRepository)
		wantStatus int
		wantBody   []string
	}{
		{
			name:   "Create",
			method: http.MethodPost,
			target: "/purchasing/",
			body:   `{"supplier_id":2,"total_amount":500,"currency":"USD","expected_delivery_date":"2026-05-01T00:00:00Z"}`,
			setupMock: func(m *purchasing.MockRepository) {
				m.EXPECT().
					CreateOrder(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, o *purchasing.Order) error {
						o.ID = 1
						return nil
					})
			},
			wantStatus: http.StatusCreated,
			wantBody:   []string{`"currency":"USD"`, `"status":"pending"`, `"order_number":"PO-`, `"actual_delivery_date":null`},
		},
		{
			name:       "CreateBadCurrency",
			method:     http.MethodPost,
			target:     "/purchasing/",
			body:       `{"supplier_id":2,"currency":"RIYAL"}`,
			wantStatus: http.StatusUnprocessableEntity,
			wantBody:   []string{`"field":"currency"`},
		},
		{
			name:   "UnknownSupplier",
			method: http.MethodPost,
			target: "/purchasing/",
			body:   `{"supplier_id":99}`,
			setupMock: func(m *purchasing.MockRepository) {
				m.EXPECT().
					CreateOrder(gomock.Any(), gomock.Any()).
					Return(&apperr.ConflictError{Entity: "purchase order", Constraint: "purchase_orders_supplier_id_fkey"})
			},
			wantStatus: http.StatusConflict,
		},
		{
			name:   "UpdateStatus",
			method: http.MethodPut,
			target: "/purchasing/1/status",
			body:   `{"status":"approved"}`,
			setupMock: func(m *purchasing.MockRepository) {
				m.EXPECT().
					UpdateOrder(gomock.Any(), int64(1), gomock.Any()).
					DoAndReturn(func(_ context.Context, id int64, params purchasing.UpdateParams) (*purchasing.Order, error) {
						return &purchasing.Order{ID: id, Status: *params.Status}, nil
					})
			},
			wantStatus: http.StatusOK,
			wantBody:   []string{`"status":"approved"`},
		},
		{
			name:   "Receive",
			method: http.MethodPost,
			target: "/purchasing/1/receive",
			setupMock: func(m *purchasing.MockRepository) {
				m.EXPECT().
					UpdateOrder(gomock.Any(), int64(1), gomock.Any()).
					DoAndReturn(func(_ context.Context, id int64, params purchasing.UpdateParams) (*purchasing.Order, error) {
						require.NotNil(t, params.ActualDeliveryDate)

						o := &purchasing.Order{ID: id}
						params.Apply(o)

						return o, nil
					})
			},
			wantStatus: http.StatusOK,
			wantBody:   []string{`"status":"received"`},
		},
		{
			name:   "DeleteMissing",
			method: http.MethodDelete,
			target: "/purchasing/5",
			setupMock: func(m *purchasing.MockRepository) {
				m.EXPECT().DeleteOrder(gomock.Any(), int64(5)).Return(false, nil)
			},
			wantStatus: http.StatusNotFound,
			wantBody:   []string{"purchase order 5 not found"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			repo := purchasing.NewMockRepository(ctrl)

			if tt.setupMock != nil {
				tt.setupMock(repo)
			}

			r := chi.NewRouter()
			r.Route("/purchasing", purchasinghttp.NewHandler(purchasing.NewService(repo)).Routes)

			rec := httptest.NewRecorder()
			r.ServeHTTP(rec, httptest.NewRequest(tt.method, tt.target, strings.NewReader(tt.body)))

			assert.Equal(t, tt.wantStatus, rec.Code, rec.Body.String())

			for _, want := range tt.wantBody {
				assert.Contains(t, rec.Body.String(), want)
			}
		})
	}
}
