package insight

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/mgoncalo/centavo/internal/http/auth"
	"github.com/mgoncalo/centavo/internal/http/respond"
	"github.com/mgoncalo/centavo/internal/insight"
	"github.com/mgoncalo/centavo/internal/money"
)

type Handler struct {
	svc *insight.Service
}

func NewHandler(svc *insight.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) Routes(r chi.Router) {
	r.Get("/", h.get)
}

type alertResponse struct {
	Type     string       `json:"type"`
	Category string       `json:"category"`
	Budget   money.Amount `json:"budget"`
	Spent    money.Amount `json:"spent"`
	Message  string       `json:"message"`
}

type predictionResponse struct {
	Type         string       `json:"type"`
	Category     string       `json:"category"`
	Budget       money.Amount `json:"budget"`
	CurrentSpent money.Amount `json:"current_spent"`
	Projected    money.Amount `json:"projected"`
	Message      string       `json:"message"`
}

type reportResponse struct {
	Overspending []alertResponse      `json:"overspending"`
	Predictions  []predictionResponse `json:"predictions"`
}

func toResponse(report *insight.Report) reportResponse {
	resp := reportResponse{
		Overspending: make([]alertResponse, len(report.Overspending)),
		Predictions:  make([]predictionResponse, len(report.Predictions)),
	}

	for i, a := range report.Overspending {
		resp.Overspending[i] = alertResponse{
			Type:     "OVERSPENDING",
			Category: a.Category,
			Budget:   a.Budget,
			Spent:    a.Spent,
			Message:  a.Message,
		}
	}

	for i, p := range report.Predictions {
		resp.Predictions[i] = predictionResponse{
			Type:         "PREDICTED_OVERRUN",
			Category:     p.Category,
			Budget:       p.Budget,
			CurrentSpent: p.Spent,
			Projected:    p.Projected,
			Message:      p.Message,
		}
	}

	return resp
}

func (h *Handler) get(w http.ResponseWriter, r *http.Request) {
	ownerID, _ := auth.OwnerID(r.Context())

	asOf := time.Now().UTC()

	if s := r.URL.Query().Get("as_of"); s != "" {
		t, err := time.Parse(time.DateOnly, s)
		if err != nil {
			http.Error(w, "invalid as_of, expected YYYY-MM-DD", http.StatusBadRequest)
			return
		}

		asOf = t
	}

	report, err := h.svc.Report(r.Context(), ownerID, asOf)
	if err != nil {
		respond.Error(w, err)
		return
	}

	respond.JSON(w, http.StatusOK, toResponse(report))
}
