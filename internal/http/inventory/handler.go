package inventory

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/MrJamesThe3rd/ledger/internal/http/respond"
	"github.com/MrJamesThe3rd/ledger/internal/importer"
	"github.com/MrJamesThe3rd/ledger/internal/inventory"
	"github.com/MrJamesThe3rd/ledger/internal/page"
)

const (
	entity = "inventory item"

	maxUploadSize = 10 << 20
)

type Handler struct {
	svc       *inventory.Service
	importSvc *importer.Service
}

func NewHandler(svc *inventory.Service, importSvc *importer.Service) *Handler {
	return &Handler{
		svc:       svc,
		importSvc: importSvc,
	}
}

func (h *Handler) Routes(r chi.Router) {
	r.Post("/", h.create)
	r.Get("/", h.list)
	r.Post("/import", h.importFile)
	r.Get("/{id}", h.get)
	r.Put("/{id}", h.update)
	r.Delete("/{id}", h.delete)
}

func (h *Handler) create(w http.ResponseWriter, r *http.Request) {
	var req inventory.CreateParams
	if err := respond.Decode(r, &req); err != nil {
		respond.Error(w, r, err)
		return
	}

	item, err := h.svc.Create(r.Context(), req)
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	respond.JSON(w, http.StatusCreated, toResponse(item))
}

func (h *Handler) list(w http.ResponseWriter, r *http.Request) {
	p, err := page.Parse(r.URL.Query().Get("skip"), r.URL.Query().Get("limit"))
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	items, err := h.svc.List(r.Context(), p)
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	respond.JSON(w, http.StatusOK, toResponseList(items))
}

func (h *Handler) get(w http.ResponseWriter, r *http.Request) {
	id, err := respond.ID(r, "id")
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	item, err := h.svc.Get(r.Context(), id)
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	respond.JSON(w, http.StatusOK, toResponse(item))
}

func (h *Handler) update(w http.ResponseWriter, r *http.Request) {
	id, err := respond.ID(r, "id")
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	var req inventory.UpdateParams
	if err := respond.Decode(r, &req); err != nil {
		respond.Error(w, r, err)
		return
	}

	item, err := h.svc.Update(r.Context(), id, req)
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	respond.JSON(w, http.StatusOK, toResponse(item))
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

// importFile loads a stock sheet from the multipart "file" field. The optional
// "format" field picks the parser.
func (h *Handler) importFile(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxUploadSize)

	if err := r.ParseMultipartForm(maxUploadSize); err != nil {
		respond.Error(w, r, &respond.BadRequestError{Field: "file", Message: "failed to parse form: " + err.Error()})
		return
	}

	file, _, err := r.FormFile("file")
	if err != nil {
		respond.Error(w, r, &respond.BadRequestError{Field: "file", Message: "file field is required"})
		return
	}
	defer file.Close()

	rows, err := h.importSvc.Parse(importer.Format(r.FormValue("format")), file)
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	items, err := h.svc.Import(r.Context(), rows)
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	respond.JSON(w, http.StatusCreated, importResponse{
		Imported: len(items),
		Items:    toResponseList(items),
	})
}
