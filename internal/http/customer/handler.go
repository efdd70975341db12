package customer

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/MrJamesThe3rd/ledger/internal/customer"
	"github.com/MrJamesThe3rd/ledger/internal/http/respond"
	"github.com/MrJamesThe3rd/ledger/internal/page"
)

const entity = "customer"

type Handler struct {
	svc *customer.Service
}

func NewHandler(svc *customer.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) Routes(r chi.Router) {
	r.Post("/", h.create)
	r.Get("/", h.list)
	r.Get("/{id}", h.get)
	r.Put("/{id}", h.update)
	r.Delete("/{id}", h.delete)
}

func (h *Handler) create(w http.ResponseWriter, r *http.Request) {
	var req customer.CreateParams
	if err := respond.Decode(r, &req); err != nil {
		respond.Error(w, r, err)
		return
	}

	c, err := h.svc.Create(r.Context(), req)
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	respond.JSON(w, http.StatusCreated, toResponse(c))
}

func (h *Handler) list(w http.ResponseWriter, r *http.Request) {
	p, err := page.Parse(r.URL.Query().Get("skip"), r.URL.Query().Get("limit"))
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	customers, err := h.svc.List(r.Context(), p)
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	respond.JSON(w, http.StatusOK, toResponseList(customers))
}

func (h *Handler) get(w http.ResponseWriter, r *http.Request) {
	id, err := respond.ID(r, "id")
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	c, err := h.svc.Get(r.Context(), id)
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	respond.JSON(w, http.StatusOK, toResponse(c))
}

func (h *Handler) update(w http.ResponseWriter, r *http.Request) {
	id, err := respond.ID(r, "id")
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	var req customer.UpdateParams
	if err := respond.Decode(r, &req); err != nil {
		respond.Error(w, r, err)
		return
	}

	c, err := h.svc.Update(r.Context(), id, req)
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	respond.JSON(w, http.StatusOK, toResponse(c))
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
