package report

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/MrJamesThe3rd/ledger/internal/http/respond"
	"github.com/MrJamesThe3rd/ledger/internal/page"
	"github.com/MrJamesThe3rd/ledger/internal/report"
)

type Handler struct {
	svc *report.Service
}

func NewHandler(svc *report.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) Routes(r chi.Router) {
	r.Get("/dashboard", h.dashboard)
	r.Get("/inventory/summary", h.inventorySummary)
	r.Get("/inventory/low-stock", h.lowStock)
	r.Get("/sales/summary", h.salesSummary)
}

func (h *Handler) dashboard(w http.ResponseWriter, r *http.Request) {
	d, err := h.svc.Dashboard(r.Context())
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	respond.JSON(w, http.StatusOK, toDashboardResponse(d))
}

func (h *Handler) inventorySummary(w http.ResponseWriter, r *http.Request) {
	summary, err := h.svc.InventorySummary(r.Context())
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	respond.JSON(w, http.StatusOK, toCategoryResponse(summary))
}

func (h *Handler) salesSummary(w http.ResponseWriter, r *http.Request) {
	summary, err := h.svc.SalesSummary(r.Context())
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	respond.JSON(w, http.StatusOK, toStatusResponse(summary))
}

func (h *Handler) lowStock(w http.ResponseWriter, r *http.Request) {
	p, err := page.Parse(r.URL.Query().Get("skip"), r.URL.Query().Get("limit"))
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	items, err := h.svc.LowStock(r.Context(), p)
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	respond.JSON(w, http.StatusOK, toLowStockResponse(items))
}
