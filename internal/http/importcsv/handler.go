package importcsv

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/mgoncalo/centavo/internal/category"
	"github.com/mgoncalo/centavo/internal/http/auth"
	"github.com/mgoncalo/centavo/internal/http/respond"
	"github.com/mgoncalo/centavo/internal/importer"
	"github.com/mgoncalo/centavo/internal/ledger"
	"github.com/mgoncalo/centavo/internal/money"
)

type Handler struct {
	importSvc *importer.Service
	txSvc     *ledger.Service
	catSvc    *category.Service
}

func NewHandler(importSvc *importer.Service, txSvc *ledger.Service, catSvc *category.Service) *Handler {
	return &Handler{
		importSvc: importSvc,
		txSvc:     txSvc,
		catSvc:    catSvc,
	}
}

func (h *Handler) Routes(r chi.Router) {
	r.Post("/", h.importCSV)
}

type importResponse struct {
	Imported int          `json:"imported"`
	Total    money.Amount `json:"total"`
}

func (h *Handler) importCSV(w http.ResponseWriter, r *http.Request) {
	ownerID, _ := auth.OwnerID(r.Context())

	if err := r.ParseMultipartForm(10 << 20); err != nil {
		http.Error(w, "failed to parse form: "+err.Error(), http.StatusBadRequest)
		return
	}

	file, _, err := r.FormFile("file")
	if err != nil {
		http.Error(w, "missing file field", http.StatusBadRequest)
		return
	}
	defer file.Close()

	rows, err := h.importSvc.Parse(file)
	if err != nil {
		respond.Error(w, err)
		return
	}

	params, err := h.resolveCategories(r, ownerID, rows)
	if err != nil {
		respond.Error(w, err)
		return
	}

	txs, err := h.txSvc.CreateBatch(r.Context(), ownerID, params)
	if err != nil {
		respond.Error(w, err)
		return
	}

	var total money.Amount
	for _, tx := range txs {
		total += tx.Amount
	}

	respond.JSON(w, http.StatusCreated, importResponse{
		Imported: len(txs),
		Total:    total,
	})
}

// resolveCategories maps each row's category name to a category record,
// creating missing ones with the row's type. Names are resolved once per
// (name, type) pair, not per row.
func (h *Handler) resolveCategories(r *http.Request, ownerID uuid.UUID, rows []importer.Row) ([]ledger.CreateParams, error) {
	type nameKey struct {
		name string
		typ  category.Type
	}

	resolved := make(map[nameKey]uuid.UUID)
	params := make([]ledger.CreateParams, len(rows))

	for i, row := range rows {
		p := ledger.CreateParams{
			Type:        row.Type,
			Amount:      row.Amount,
			Date:        row.Date,
			Description: row.Description,
		}

		if row.Category != "" {
			k := nameKey{name: row.Category, typ: row.Type.CategoryType()}

			id, ok := resolved[k]
			if !ok {
				c, err := h.catSvc.CreateOrGet(r.Context(), ownerID, k.name, k.typ)
				if err != nil {
					return nil, err
				}

				id = c.ID
				resolved[k] = id
			}

			p.CategoryID = &id
		}

		params[i] = p
	}

	return params, nil
}
