package purchasing

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/MrJamesThe3rd/ledger/internal/http/respond"
	"github.com/MrJamesThe3rd/ledger/internal/page"
	"github.com/MrJamesThe3rd/ledger/internal/purchasing"
)

const entity = "purchase order"

type Handler struct {
	svc *purchasing.Service
}

func NewHandler(svc *purchasing.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) Routes(r chi.Router) {
	r.Post("/", h.create)
	r.Get("/", h.list)
	r.Get("/{id}", h.get)
	r.Put("/{id}", h.update)
	r.Put("/{id}/status", h.updateStatus)
	r.Post("/{id}/receive", h.receive)
	r.Delete("/{id}", h.delete)
}

func (h *Handler) create(w http.ResponseWriter, r *http.Request) {
	var req purchasing.CreateParams
	if err := respond.Decode(r, &req); err != nil {
		respond.Error(w, r, err)
		return
	}

	o, err := h.svc.Create(r.Context(), req)
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	respond.JSON(w, http.StatusCreated, toResponse(o))
}

func (h *Handler) list(w http.ResponseWriter, r *http.Request) {
	p, err := page.Parse(r.URL.Query().Get("skip"), r.URL.Query().Get("limit"))
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	orders, err := h.svc.List(r.Context(), p)
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	respond.JSON(w, http.StatusOK, toResponseList(orders))
}

func (h *Handler) get(w http.ResponseWriter, r *http.Request) {
	id, err := respond.ID(r, "id")
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	o, err := h.svc.Get(r.Context(), id)
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	respond.JSON(w, http.StatusOK, toResponse(o))
}

func (h *Handler) update(w http.ResponseWriter, r *http.Request) {
	id, err := respond.ID(r, "id")
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	var req purchasing.UpdateParams
	if err := respond.Decode(r, &req); err != nil {
		respond.Error(w, r, err)
		return
	}

	o, err := h.svc.Update(r.Context(), id, req)
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	respond.JSON(w, http.StatusOK, toResponse(o))
}

type updateStatusRequest struct {
	Status purchasing.Status `json:"status"`
}

func (h *Handler) updateStatus(w http.ResponseWriter, r *http.Request) {
	id, err := respond.ID(r, "id")
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	var req updateStatusRequest
	if err := respond.Decode(r, &req); err != nil {
		respond.Error(w, r, err)
		return
	}

	o, err := h.svc.UpdateStatus(r.Context(), id, req.Status)
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	respond.JSON(w, http.StatusOK, toResponse(o))
}

func (h *Handler) receive(w http.ResponseWriter, r *http.Request) {
	id, err := respond.ID(r, "id")
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	o, err := h.svc.Receive(r.Context(), id)
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	respond.JSON(w, http.StatusOK, toResponse(o))
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
