package ledger

import (
	"time"

	"github.com/google/uuid"

	"github.com/mgoncalo/centavo/internal/ledger"
	"github.com/mgoncalo/centavo/internal/money"
)

type transactionResponse struct {
	ID           uuid.UUID    `json:"id"`
	Amount       money.Amount `json:"amount"`
	Category     *uuid.UUID   `json:"category,omitempty"`
	CategoryName string       `json:"category_name,omitempty"`
	Date         string       `json:"date"`
	Description  string       `json:"description"`
	CreatedAt    time.Time    `json:"created_at"`
}

func toResponse(tx *ledger.Transaction) transactionResponse {
	return transactionResponse{
		ID:           tx.ID,
		Amount:       tx.Amount,
		Category:     tx.CategoryID,
		CategoryName: tx.CategoryName,
		Date:         tx.Date.Format(time.DateOnly),
		Description:  tx.Description,
		CreatedAt:    tx.CreatedAt,
	}
}

func toResponseList(txs []*ledger.Transaction) []transactionResponse {
	resp := make([]transactionResponse, len(txs))
	for i, tx := range txs {
		resp[i] = toResponse(tx)
	}

	return resp
}
