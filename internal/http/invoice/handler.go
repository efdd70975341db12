package invoice

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/MrJamesThe3rd/ledger/internal/apperr"
	"github.com/MrJamesThe3rd/ledger/internal/http/respond"
	"github.com/MrJamesThe3rd/ledger/internal/invoice"
	"github.com/MrJamesThe3rd/ledger/internal/page"
)

const entity = "invoice"

type Handler struct {
	svc *invoice.Service
}

func NewHandler(svc *invoice.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) Routes(r chi.Router) {
	r.Post("/", h.create)
	r.Get("/", h.list)
	r.Get("/items/{itemID}", h.getItem)
	r.Get("/{id}", h.get)
	r.Put("/{id}", h.update)
	r.Delete("/{id}", h.delete)
}

func (h *Handler) create(w http.ResponseWriter, r *http.Request) {
	var req invoice.CreateParams
	if err := respond.Decode(r, &req); err != nil {
		respond.Error(w, r, err)
		return
	}

	inv, err := h.svc.Create(r.Context(), req)
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	respond.JSON(w, http.StatusCreated, toResponse(inv))
}

func (h *Handler) list(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	p, err := page.Parse(q.Get("skip"), q.Get("limit"))
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	filter := invoice.ListFilter{}

	if s := q.Get("customer_id"); s != "" {
		id, err := strconv.ParseInt(s, 10, 64)
		if err != nil || id <= 0 {
			respond.Error(w, r, apperr.Invalid("customer_id", "must be a positive integer"))
			return
		}

		filter.CustomerID = new(id)
	}

	h.writeList(w, r, filter, p)
}

// ListByCustomer serves the invoices of the customer named by the {id} path parameter.
func (h *Handler) ListByCustomer(w http.ResponseWriter, r *http.Request) {
	customerID, err := respond.ID(r, "id")
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	p, err := page.Parse(r.URL.Query().Get("skip"), r.URL.Query().Get("limit"))
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	h.writeList(w, r, invoice.ListFilter{CustomerID: &customerID}, p)
}

func (h *Handler) writeList(w http.ResponseWriter, r *http.Request, filter invoice.ListFilter, p page.Page) {
	invoices, err := h.svc.List(r.Context(), filter, p)
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	respond.JSON(w, http.StatusOK, toResponseList(invoices))
}

func (h *Handler) get(w http.ResponseWriter, r *http.Request) {
	id, err := respond.ID(r, "id")
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	inv, err := h.svc.Get(r.Context(), id)
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	respond.JSON(w, http.StatusOK, toResponse(inv))
}

func (h *Handler) getItem(w http.ResponseWriter, r *http.Request) {
	id, err := respond.ID(r, "itemID")
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	it, err := h.svc.GetItem(r.Context(), id)
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	respond.JSON(w, http.StatusOK, toItemResponse(it))
}

func (h *Handler) update(w http.ResponseWriter, r *http.Request) {
	id, err := respond.ID(r, "id")
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	var req invoice.UpdateParams
	if err := respond.Decode(r, &req); err != nil {
		respond.Error(w, r, err)
		return
	}

	inv, err := h.svc.Update(r.Context(), id, req)
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	respond.JSON(w, http.StatusOK, toResponse(inv))
}

func (h *Handler) delete(w http.ResponseWriter, r *http.Request) {
	id, err := respond.ID(r, "id")
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	deleted, err := h.svc.Delete(r.Context(), id)
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	if !deleted {
		respond.NotFound(w, entity, id)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
