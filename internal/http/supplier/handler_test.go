package supplier_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/MrJamesThe3rd/ledger/internal/apperr"
	supplierhttp "github.com/MrJamesThe3rd/ledger/internal/http/supplier"
	"github.com/MrJamesThe3rd/ledger/internal/supplier"
)

func TestHandler(t *testing.T) {
	tests := []struct {
		name       string
		method     string
		target     string
		body       string
		setupMock  func(m *supplier.MockRepository)
		wantStatus int
		wantBody   string
	}{
		{
			name:   "Create",
			method: http.MethodPost,
			target: "/suppliers/",
			body:   `{"name":"Eastern Recycling","email":"sales@eastern.sa","payment_terms":"Net 30"}`,
			setupMock: func(m *supplier.MockRepository) {
				m.EXPECT().
					CreateSupplier(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, sup *supplier.Supplier) error {
						sup.ID = 4
						return nil
					})
			},
			wantStatus: http.StatusCreated,
			wantBody:   `"payment_terms":"Net 30"`,
		},
		{
			name:       "CreateMissingName",
			method:     http.MethodPost,
			target:     "/suppliers/",
			body:       `{"email":"sales@eastern.sa"}`,
			wantStatus: http.StatusUnprocessableEntity,
			wantBody:   `"field":"name"`,
		},
		{
			name:   "Get",
			method: http.MethodGet,
			target: "/suppliers/4",
			setupMock: func(m *supplier.MockRepository) {
				m.EXPECT().GetSupplier(gomock.Any(), int64(4)).Return(&supplier.Supplier{ID: 4, Name: "Eastern Recycling"}, nil)
			},
			wantStatus: http.StatusOK,
			wantBody:   `"name":"Eastern Recycling"`,
		},
		{
			name:   "UpdateTerms",
			method: http.MethodPut,
			target: "/suppliers/4",
			body:   `{"payment_terms":"Net 60"}`,
			setupMock: func(m *supplier.MockRepository) {
				m.EXPECT().
					UpdateSupplier(gomock.Any(), int64(4), gomock.Any()).
					DoAndReturn(func(_ context.Context, id int64, params supplier.UpdateParams) (*supplier.Supplier, error) {
						sup := &supplier.Supplier{ID: id}
						params.Apply(sup)

						return sup, nil
					})
			},
			wantStatus: http.StatusOK,
			wantBody:   `"payment_terms":"Net 60"`,
		},
		{
			name:   "DeleteReferenced",
			method: http.MethodDelete,
			target: "/suppliers/4",
			setupMock: func(m *supplier.MockRepository) {
				m.EXPECT().
					DeleteSupplier(gomock.Any(), int64(4)).
					Return(false, &apperr.ConflictError{Entity: "supplier", Constraint: "purchase_orders_supplier_id_fkey"})
			},
			wantStatus: http.StatusConflict,
		},
		{
			name:   "Delete",
			method: http.MethodDelete,
			target: "/suppliers/4",
			setupMock: func(m *supplier.MockRepository) {
				m.EXPECT().DeleteSupplier(gomock.Any(), int64(4)).Return(true, nil)
			},
			wantStatus: http.StatusNoContent,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			repo := supplier.NewMockRepository(ctrl)

			if tt.setupMock != nil {
				tt.setupMock(repo)
			}

			r := chi.NewRouter()
			r.Route("/suppliers", supplierhttp.NewHandler(supplier.NewService(repo)).Routes)

			rec := httptest.NewRecorder()
			r.ServeHTTP(rec, httptest.NewRequest(tt.method, tt.target, strings.NewReader(tt.body)))

			assert.Equal(t, tt.wantStatus, rec.Code, rec.Body.String())

			if tt.wantBody != "" {
				assert.Contains(t, rec.Body.String(), tt.wantBody)
			}
		})
	}
}
