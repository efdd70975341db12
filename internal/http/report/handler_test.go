package report_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	reporthttp "github.com/MrJamesThe3rd/ledger/internal/http/report"
	"github.com/MrJamesThe3rd/ledger/internal/page"
	"github.com/MrJamesThe3rd/ledger/internal/report"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func TestHandler(t *testing.T) {
	tests := []struct {
		name       string
		target     string
		setupMock  func(m *report.MockRepository)
		wantStatus int
		wantJSON   string
	}{
		{
			name:   "Dashboard",
			target: "/reports/dashboard",
			setupMock: func(m *report.MockRepository) {
				m.EXPECT().Dashboard(gomock.Any()).Return(&report.Dashboard{
					Inventory:  report.InventoryStats{TotalItems: 3, TotalValue: dec("650")},
					Sales:      report.OrderStats{TotalOrders: 2},
					Purchasing: report.OrderStats{TotalOrders: 1},
					Invoices:   report.InvoiceStats{TotalInvoices: 1, TotalInvoiced: dec("115"), Outstanding: dec("115")},
				}, nil)
			},
			wantStatus: http.StatusOK,
			wantJSON: `{
				"inventory": {"total_items": 3, "total_value": 650.00},
				"sales": {"total_orders": 2},
				"purchasing": {"total_orders": 1},
				"invoices": {"total_invoices": 1, "total_invoiced": 115.00, "outstanding": 115.00}
			}`,
		},
		{
			name:   "InventorySummary",
			target: "/reports/inventory/summary",
			setupMock: func(m *report.MockRepository) {
				m.EXPECT().InventoryByCategory(gomock.Any()).Return([]*report.CategorySummary{
					{Category: "Ferrous", Count: 1, TotalQuantity: dec("100"), TotalValue: dec("200")},
				}, nil)
			},
			wantStatus: http.StatusOK,
			wantJSON:   `[{"category":"Ferrous","count":1,"total_quantity":100,"total_value":200.00}]`,
		},
		{
			name:   "SalesSummaryEmpty",
			target: "/reports/sales/summary",
			setupMock: func(m *report.MockRepository) {
				m.EXPECT().SalesByStatus(gomock.Any()).Return([]*report.StatusSummary{}, nil)
			},
			wantStatus: http.StatusOK,
			wantJSON:   `[]`,
		},
		{
			name:   "LowStock",
			target: "/reports/inventory/low-stock?limit=5",
			setupMock: func(m *report.MockRepository) {
				m.EXPECT().LowStock(gomock.Any(), page.Page{Limit: 5}).Return([]*report.LowStockItem{
					{ID: 1, Name: "Copper", SKU: "CU-1", Quantity: dec("20"), MinimumStock: dec("50")},
				}, nil)
			},
			wantStatus: http.StatusOK,
			wantJSON: `[{"id":1,"name":"Copper","sku":"CU-1","category":"","unit":"","location":"",
				"quantity":20,"minimum_stock":50,"shortfall":30}]`,
		},
		{
			name:       "LowStockBadPage",
			target:     "/reports/inventory/low-stock?skip=-2",
			wantStatus: http.StatusUnprocessableEntity,
		},
		{
			name:   "StoreFailure",
			target: "/reports/dashboard",
			setupMock: func(m *report.MockRepository) {
				m.EXPECT().Dashboard(gomock.Any()).Return(nil, errors.New("connection refused"))
			},
			wantStatus: http.StatusInternalServerError,
			wantJSON:   `{"detail":"internal error"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			repo := report.NewMockRepository(ctrl)

			if tt.setupMock != nil {
				tt.setupMock(repo)
			}

			r := chi.NewRouter()
			r.Route("/reports", reporthttp.NewHandler(report.NewService(repo)).Routes)

			rec := httptest.NewRecorder()
			r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, tt.target, nil))

			assert.Equal(t, tt.wantStatus, rec.Code, rec.Body.String())

			if tt.wantJSON != "" {
				assert.JSONEq(t, tt.wantJSON, rec.Body.String())
			}
		})
	}
}
