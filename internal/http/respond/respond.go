// Package respond centralizes JSON responses and the mapping from domain
// errors to HTTP status codes.
package respond

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/mgoncalo/centavo/internal/budget"
	"github.com/mgoncalo/centavo/internal/category"
	"github.com/mgoncalo/centavo/internal/database"
	"github.com/mgoncalo/centavo/internal/importer"
	"github.com/mgoncalo/centavo/internal/insight"
	"github.com/mgoncalo/centavo/internal/ledger"
	"github.com/mgoncalo/centavo/internal/money"
)

func JSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

type errorResponse struct {
	Message string `json:"message"`
}

// Error writes err with the status its kind maps to. Validation failures
// carry their message to the caller; anything unrecognized is an opaque 500.
func Error(w http.ResponseWriter, err error) {
	switch {
	case isValidation(err):
		JSON(w, http.StatusBadRequest, errorResponse{Message: err.Error()})
	case isNotFound(err):
		JSON(w, http.StatusNotFound, errorResponse{Message: err.Error()})
	case errors.Is(err, database.ErrUnavailable):
		slog.Error("storage unavailable", "error", err)
		JSON(w, http.StatusServiceUnavailable, errorResponse{Message: "storage unavailable"})
	default:
		slog.Error("request failed", "error", err)
		JSON(w, http.StatusInternalServerError, errorResponse{Message: "internal error"})
	}
}

func isValidation(err error) bool {
	for _, target := range []error{
		money.ErrInvalidAmount,
		ledger.ErrInvalidAmount,
		ledger.ErrCategoryTypeMismatch,
		category.ErrInvalidName,
		category.ErrInvalidType,
		budget.ErrInvalidAmount,
		budget.ErrNotExpenseCategory,
		budget.ErrMonthOutOfRange,
		importer.ErrEmptyFile,
		importer.ErrMissingColumn,
	} {
		if errors.Is(err, target) {
			return true
		}
	}

	return false
}

func isNotFound(err error) bool {
	for _, target := range []error{
		category.ErrNotFound,
		ledger.ErrNotFound,
		insight.ErrOwnerNotFound,
	} {
		if errors.Is(err, target) {
			return true
		}
	}

	return false
}
