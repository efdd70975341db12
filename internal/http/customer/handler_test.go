package customer_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MrJamesThe3rd/ledger/internal/apperr"
	"github.com/MrJamesThe3rd/ledger/internal/customer"
	customerhttp "github.com/MrJamesThe3rd/ledger/internal/http/customer"
	"github.com/MrJamesThe3rd/ledger/internal/page"
)

func serve(t *testing.T, repo customer.Repository, method, target, body string) *httptest.ResponseRecorder {
	t.Helper()

	r := chi.NewRouter()
	r.Route("/customers", customerhttp.NewHandler(customer.NewService(repo)).Routes)

	req := httptest.NewRequest(method, target, strings.NewReader(body))
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	return rec
}

func TestHandler(t *testing.T) {
	tests := []struct {
		name       string
		method     string
		target     string
		body       string
		setupMock  func(m *customer.MockRepository)
		wantStatus int
		wantBody   string
	}{
		{
			name:   "CreateDefaultsCountry",
			method: http.MethodPost,
			target: "/customers/",
			body:   `{"name":"Gulf Metals","email":"ops@gulfmetals.sa"}`,
			setupMock: func(m *customer.MockRepository) {
				m.EXPECT().
					CreateCustomer(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, c *customer.Customer) error {
						c.ID = 1
						return nil
					})
			},
			wantStatus: http.StatusCreated,
			wantBody:   `"country":"Saudi Arabia"`,
		},
		{
			name:       "CreateInvalidEmail",
			method:     http.MethodPost,
			target:     "/customers/",
			body:       `{"name":"Gulf Metals","email":"not-an-email"}`,
			wantStatus: http.StatusUnprocessableEntity,
			wantBody:   `"field":"email"`,
		},
		{
			name:   "CreateDuplicateEmail",
			method: http.MethodPost,
			target: "/customers/",
			body:   `{"name":"Gulf Metals","email":"ops@gulfmetals.sa"}`,
			setupMock: func(m *customer.MockRepository) {
				m.EXPECT().
					CreateCustomer(gomock.Any(), gomock.Any()).
					Return(&apperr.ConflictError{Entity: "customer", Constraint: "customers_email_key"})
			},
			wantStatus: http.StatusConflict,
		},
		{
			name:   "List",
			method: http.MethodGet,
			target: "/customers/?skip=0&limit=10",
			setupMock: func(m *customer.MockRepository) {
				m.EXPECT().
					ListCustomers(gomock.Any(), page.Page{Skip: 0, Limit: 10}).
					Return([]*customer.Customer{{ID: 1}, {ID: 2}}, nil)
			},
			wantStatus: http.StatusOK,
		},
		{
			name:   "UpdateMissing",
			method: http.MethodPut,
			target: "/customers/9",
			body:   `{"city":"Dammam"}`,
			setupMock: func(m *customer.MockRepository) {
				m.EXPECT().
					UpdateCustomer(gomock.Any(), int64(9), gomock.Any()).
					Return(nil, &apperr.NotFoundError{Entity: "customer", ID: 9})
			},
			wantStatus: http.StatusNotFound,
		},
		{
			name:   "DeleteReferenced",
			method: http.MethodDelete,
			target: "/customers/1",
			setupMock: func(m *customer.MockRepository) {
				m.EXPECT().
					DeleteCustomer(gomock.Any(), int64(1)).
					Return(false, &apperr.ConflictError{Entity: "customer", Constraint: "sale_orders_customer_id_fkey"})
			},
			wantStatus: http.StatusConflict,
		},
		{
			name:   "DeleteMissing",
			method: http.MethodDelete,
			target: "/customers/2",
			setupMock: func(m *customer.MockRepository) {
				m.EXPECT().DeleteCustomer(gomock.Any(), int64(2)).Return(false, nil)
			},
			wantStatus: http.StatusNotFound,
		},
		{
			name:       "GetBadID",
			method:     http.MethodGet,
			target:     "/customers/0",
			wantStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			repo := customer.NewMockRepository(ctrl)

			if tt.setupMock != nil {
				tt.setupMock(repo)
			}

			rec := serve(t, repo, tt.method, tt.target, tt.body)
			assert.Equal(t, tt.wantStatus, rec.Code, rec.Body.String())
			assert.True(t, json.Valid(rec.Body.Bytes()))

			if tt.wantBody != "" {
				assert.Contains(t, rec.Body.String(), tt.wantBody)
			}
		})
	}
}

func TestHandler_ListShape(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := customer.NewMockRepository(ctrl)
	repo.EXPECT().ListCustomers(gomock.Any(), page.Default()).Return([]*customer.Customer{}, nil)

	rec := serve(t, repo, http.MethodGet, "/customers/", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[]`, rec.Body.String())
}
