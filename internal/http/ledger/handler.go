// Package ledger exposes the income and expense transaction routes. One
// Handler serves a single transaction type; the router mounts an instance
// under /finance/income and another under /finance/expenses, which is how
// the type stays implicit in the URL.
package ledger

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/mgoncalo/centavo/internal/http/auth"
	"github.com/mgoncalo/centavo/internal/http/respond"
	"github.com/mgoncalo/centavo/internal/ledger"
	"github.com/mgoncalo/centavo/internal/money"
)

type Handler struct {
	svc *ledger.Service
	typ ledger.Type
}

func NewHandler(svc *ledger.Service, typ ledger.Type) *Handler {
	return &Handler{svc: svc, typ: typ}
}

func (h *Handler) Routes(r chi.Router) {
	r.Get("/", h.list)
	r.Post("/", h.create)
	r.Delete("/{id}", h.delete)
}

type createRequest struct {
	Amount      string     `json:"amount"`
	Category    *uuid.UUID `json:"category,omitempty"`
	Date        string     `json:"date"`
	Description string     `json:"description"`
}

func (h *Handler) create(w http.ResponseWriter, r *http.Request) {
	ownerID, _ := auth.OwnerID(r.Context())

	var req createRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	amount, err := money.ParsePositive(req.Amount)
	if err != nil {
		respond.Error(w, err)
		return
	}

	date, err := time.Parse(time.DateOnly, req.Date)
	if err != nil {
		http.Error(w, "invalid date, expected YYYY-MM-DD", http.StatusBadRequest)
		return
	}

	tx, err := h.svc.Create(r.Context(), ownerID, ledger.CreateParams{
		Type:        h.typ,
		Amount:      amount,
		CategoryID:  req.Category,
		Date:        date,
		Description: req.Description,
	})
	if err != nil {
		respond.Error(w, err)
		return
	}

	respond.JSON(w, http.StatusCreated, toResponse(tx))
}

func (h *Handler) list(w http.ResponseWriter, r *http.Request) {
	ownerID, _ := auth.OwnerID(r.Context())

	filter := ledger.ListFilter{Type: &h.typ}

	if s := r.URL.Query().Get("start_date"); s != "" {
		if t, err := time.Parse(time.DateOnly, s); err == nil {
			filter.StartDate = &t
		}
	}

	if s := r.URL.Query().Get("end_date"); s != "" {
		if t, err := time.Parse(time.DateOnly, s); err == nil {
			filter.EndDate = &t
		}
	}

	if s := r.URL.Query().Get("category"); s != "" {
		if id, err := uuid.Parse(s); err == nil {
			filter.CategoryID = &id
		}
	}

	txs, err := h.svc.List(r.Context(), ownerID, filter)
	if err != nil {
		respond.Error(w, err)
		return
	}

	respond.JSON(w, http.StatusOK, toResponseList(txs))
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
