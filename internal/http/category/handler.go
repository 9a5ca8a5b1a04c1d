package category

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/mgoncalo/centavo/internal/category"
	"github.com/mgoncalo/centavo/internal/http/auth"
	"github.com/mgoncalo/centavo/internal/http/respond"
)

type Handler struct {
	svc *category.Service
}

func NewHandler(svc *category.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) Routes(r chi.Router) {
	r.Get("/", h.list)
	r.Post("/", h.create)
	r.Delete("/{id}", h.delete)
}

type categoryResponse struct {
	ID   uuid.UUID     `json:"id"`
	Name string        `json:"name"`
	Type category.Type `json:"type"`
}

func toResponse(c *category.Category) categoryResponse {
	return categoryResponse{ID: c.ID, Name: c.Name, Type: c.Type}
}

type createRequest struct {
	Name string        `json:"name"`
	Type category.Type `json:"type"`
}

func (h *Handler) create(w http.ResponseWriter, r *http.Request) {
	ownerID, _ := auth.OwnerID(r.Context())

	var req createRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	c, err := h.svc.CreateOrGet(r.Context(), ownerID, req.Name, req.Type)
	if err != nil {
		respond.Error(w, err)
		return
	}

	respond.JSON(w, http.StatusCreated, toResponse(c))
}

func (h *Handler) list(w http.ResponseWriter, r *http.Request) {
	ownerID, _ := auth.OwnerID(r.Context())

	filter := category.ListFilter{}

	if s := r.URL.Query().Get("type"); s != "" {
		typ := category.Type(s)
		filter.Type = &typ
	}

	categories, err := h.svc.List(r.Context(), ownerID, filter)
	if err != nil {
		respond.Error(w, err)
		return
	}

	resp := make([]categoryResponse, len(categories))
	for i, c := range categories {
		resp[i] = toResponse(c)
	}

	respond.JSON(w, http.StatusOK, resp)
}

func (h *Handler) delete(w http.ResponseWriter, r *http.Request) {
	ownerID, _ := auth.OwnerID(r.Context())

	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	if err := h.svc.Delete(r.Context(), ownerID, id); err != nil {
		respond.Error(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
