package category

import (
	"errors"

	"github.com/google/uuid"
)

var ErrNotFound = errors.New("category not found")

// Type says whether a category groups income or expenses.
// It is fixed at creation time.
type Type string

const (
	TypeIncome  Type = "income"
	TypeExpense Type = "expense"
)

// Valid reports whether t is one of the known category types.
func (t Type) Valid() bool {
	return t == TypeIncome || t == TypeExpense
}

// Category groups transactions for one owner. Name is unique per
// (owner, type), so "Food" may exist once as expense and once as income.
type Category struct {
	ID      uuid.UUID
	OwnerID uuid.UUID
	Name    string
	Type    Type
}
