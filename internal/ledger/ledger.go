package ledger

import (
	"time"

	"github.com/google/uuid"

	"github.com/mgoncalo/centavo/internal/category"
	"github.com/mgoncalo/centavo/internal/money"
)

// Type represents the direction of a transaction (income or expense).
type Type string

const (
	TypeIncome  Type = "income"
	TypeExpense Type = "expense"
)

// CategoryType maps a transaction type to the category type it may reference.
func (t Type) CategoryType() category.Type {
	if t == TypeIncome {
		return category.TypeIncome
	}

	return category.TypeExpense
}

// Transaction is a single income or expense record.
type Transaction struct {
	ID           uuid.UUID
	OwnerID      uuid.UUID
	CategoryID   *uuid.UUID
	CategoryName string // loaded via JOIN, empty when uncategorized
	Type         Type
	Amount       money.Amount
	Date         time.Time
	Description  string
	CreatedAt    time.Time
}
