package inventory_test

import (
	"bytes"
	"context"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MrJamesThe3rd/ledger/internal/apperr"
	inventoryhttp "github.com/MrJamesThe3rd/ledger/internal/http/inventory"
	"github.com/MrJamesThe3rd/ledger/internal/importer"
	"github.com/MrJamesThe3rd/ledger/internal/inventory"
)

func newRouter(repo inventory.Repository) http.Handler {
	h := inventoryhttp.NewHandler(inventory.NewService(repo), importer.NewService())

	r := chi.NewRouter()
	r.Route("/inventory", h.Routes)

	return r
}

func upload(t *testing.T, fields map[string]string, file string) *http.Request {
	t.Helper()

	var buf bytes.Buffer

	mw := multipart.NewWriter(&buf)

	for k, v := range fields {
		require.NoError(t, mw.WriteField(k, v))
	}

	if file != "" {
		fw, err := mw.CreateFormFile("file", "stock.csv")
		require.NoError(t, err)

		_, err = fw.Write([]byte(file))
		require.NoError(t, err)
	}

	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, "/inventory/import", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())

	return req
}

func TestHandler_Create(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := inventory.NewMockRepository(ctrl)

	repo.EXPECT().
		CreateItem(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, item *inventory.Item) error {
			item.ID = 1
			return nil
		})

	body := `{"name":"Copper Wire","category":"Non-Ferrous","sku":"CU-001","quantity":"20","unit":"kg","unit_price":"32.5","minimum_stock":50}`
	rec := httptest.NewRecorder()
	newRouter(repo).ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/inventory/", strings.NewReader(body)))

	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	var got map[string]any
	dec := json.NewDecoder(rec.Body)
	dec.UseNumber()
	require.NoError(t, dec.Decode(&got))

	assert.Equal(t, json.Number("20"), got["quantity"])
	assert.Equal(t, json.Number("32.50"), got["unit_price"])
	assert.Equal(t, json.Number("650.00"), got["value"])
	assert.Equal(t, true, got["low_stock"])
}

func TestHandler_CRUDErrors(t *testing.T) {
	tests := []struct {
		name       string
		method     string
		target     string
		body       string
		setupMock  func(m *inventory.MockRepository)
		wantStatus int
	}{
		{
			name:       "NegativeQuantity",
			method:     http.MethodPost,
			target:     "/inventory/",
			body:       `{"name":"Copper","category":"Metal","sku":"CU","quantity":-1,"unit":"kg","unit_price":1}`,
			wantStatus: http.StatusUnprocessableEntity,
		},
		{
			name:   "DuplicateSKU",
			method: http.MethodPost,
			target: "/inventory/",
			body:   `{"name":"Copper","category":"Metal","sku":"CU","quantity":1,"unit":"kg","unit_price":1}`,
			setupMock: func(m *inventory.MockRepository) {
				m.EXPECT().
					CreateItem(gomock.Any(), gomock.Any()).
					Return(&apperr.ConflictError{Entity: "inventory item", Constraint: "inventory_items_sku_key"})
			},
			wantStatus: http.StatusConflict,
		},
		{
			name:   "UpdateLocation",
			method: http.MethodPut,
			target: "/inventory/3",
			body:   `{"location":"Yard C"}`,
			setupMock: func(m *inventory.MockRepository) {
				m.EXPECT().
					UpdateItem(gomock.Any(), int64(3), gomock.Any()).
					Return(&inventory.Item{ID: 3, Location: "Yard C"}, nil)
			},
			wantStatus: http.StatusOK,
		},
		{
			name:   "GetMissing",
			method: http.MethodGet,
			target: "/inventory/3",
			setupMock: func(m *inventory.MockRepository) {
				m.EXPECT().GetItem(gomock.Any(), int64(3)).Return(nil, &apperr.NotFoundError{Entity: "inventory item", ID: 3})
			},
			wantStatus: http.StatusNotFound,
		},
		{
			name:   "DeleteMissing",
			method: http.MethodDelete,
			target: "/inventory/3",
			setupMock: func(m *inventory.MockRepository) {
				m.EXPECT().DeleteItem(gomock.Any(), int64(3)).Return(false, nil)
			},
			wantStatus: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			repo := inventory.NewMockRepository(ctrl)

			if tt.setupMock != nil {
				tt.setupMock(repo)
			}

			rec := httptest.NewRecorder()
			newRouter(repo).ServeHTTP(rec, httptest.NewRequest(tt.method, tt.target, strings.NewReader(tt.body)))

			assert.Equal(t, tt.wantStatus, rec.Code, rec.Body.String())
		})
	}
}

func TestHandler_Import(t *testing.T) {
	const sheet = `name,category,sku,quantity,unit,unit_price,minimum_stock
Copper Wire,Non-Ferrous,CU-001,120.5,kg,32.40,50
Steel Rebar,Ferrous,FE-001,900,kg,2.10,100
`

	t.Run("Success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := inventory.NewMockRepository(ctrl)

		repo.EXPECT().
			CreateItems(gomock.Any(), gomock.Len(2)).
			DoAndReturn(func(_ context.Context, items []*inventory.Item) error {
				for i, item := range items {
					item.ID = int64(i + 1)
				}

				return nil
			})

		rec := httptest.NewRecorder()
		newRouter(repo).ServeHTTP(rec, upload(t, nil, sheet))

		require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

		var got struct {
			Imported int `json:"imported"`
			Items    []struct {
				SKU      string          `json:"sku"`
				Quantity decimal.Decimal `json:"quantity"`
			} `json:"items"`
		}
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
		assert.Equal(t, 2, got.Imported)
		require.Len(t, got.Items, 2)
		assert.Equal(t, "CU-001", got.Items[0].SKU)
		assert.Equal(t, "120.5", got.Items[0].Quantity.String())
	})

	t.Run("DuplicateSKURejectsBatch", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := inventory.NewMockRepository(ctrl)

		dup := sheet + "Copper Sheet,Non-Ferrous,CU-001,5,kg,40,0\n"

		rec := httptest.NewRecorder()
		newRouter(repo).ServeHTTP(rec, upload(t, nil, dup))

		assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
		assert.Contains(t, rec.Body.String(), `"field":"rows[2].sku"`)
	})

	t.Run("MissingFile", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := inventory.NewMockRepository(ctrl)

		rec := httptest.NewRecorder()
		newRouter(repo).ServeHTTP(rec, upload(t, map[string]string{"format": "csv"}, ""))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("UnknownFormat", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := inventory.NewMockRepository(ctrl)

		rec := httptest.NewRecorder()
		newRouter(repo).ServeHTTP(rec, upload(t, map[string]string{"format": "xlsx"}, sheet))

		assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
		assert.Contains(t, rec.Body.String(), `"field":"format"`)
	})
}
