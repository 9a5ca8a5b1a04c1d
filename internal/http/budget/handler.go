package budget

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/mgoncalo/centavo/internal/budget"
	"github.com/mgoncalo/centavo/internal/http/auth"
	"github.com/mgoncalo/centavo/internal/http/respond"
	"github.com/mgoncalo/centavo/internal/money"
)

type Handler struct {
	svc *budget.Service
}

func NewHandler(svc *budget.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) Routes(r chi.Router) {
	r.Get("/", h.list)
	r.Post("/", h.set)
}

type allocationResponse struct {
	ID           uuid.UUID    `json:"id"`
	Category     uuid.UUID    `json:"category"`
	CategoryName string       `json:"category_name"`
	Amount       money.Amount `json:"amount"`
	Month        string       `json:"month"`
}

func toResponse(a *budget.Allocation) allocationResponse {
	return allocationResponse{
		ID:           a.ID,
		Category:     a.CategoryID,
		CategoryName: a.CategoryName,
		Amount:       a.Amount,
		Month:        a.Month.Format(time.DateOnly),
	}
}

type setRequest struct {
	Category uuid.UUID `json:"category"`
	Amount   string    `json:"amount"`
	Month    string    `json:"month"`
}

// set upserts the allocation. Month accepts any date of the target month
// and is stored as the 1st; posting the same month twice replaces the
// amount rather than duplicating the allocation.
func (h *Handler) set(w http.ResponseWriter, r *http.Request) {
	ownerID, _ := auth.OwnerID(r.Context())

	var req setRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	amount, err := money.ParseNonNegative(req.Amount)
	if err != nil {
		respond.Error(w, err)
		return
	}

	month, err := time.Parse(time.DateOnly, req.Month)
	if err != nil {
		http.Error(w, "invalid month, expected YYYY-MM-DD", http.StatusBadRequest)
		return
	}

	a, err := h.svc.Set(r.Context(), ownerID, budget.SetParams{
		CategoryID: req.Category,
		Amount:     amount,
		Month:      month,
	})
	if err != nil {
		respond.Error(w, err)
		return
	}

	respond.JSON(w, http.StatusCreated, toResponse(a))
}

func (h *Handler) list(w http.ResponseWriter, r *http.Request) {
	ownerID, _ := auth.OwnerID(r.Context())

	month := time.Now().UTC()

	if s := r.URL.Query().Get("month"); s != "" {
		t, err := time.Parse(time.DateOnly, s)
		if err != nil {
			http.Error(w, "invalid month, expected YYYY-MM-DD", http.StatusBadRequest)
			return
		}

		month = t
	}

	allocations, err := h.svc.AllocationsForMonth(r.Context(), ownerID, month)
	if err != nil {
		respond.Error(w, err)
		return
	}

	resp := make([]allocationResponse, len(allocations))
	for i, a := range allocations {
		resp[i] = toResponse(a)
	}

	respond.JSON(w, http.StatusOK, resp)
}
