package ledger

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/mgoncalo/centavo/internal/category"
	"github.com/mgoncalo/centavo/internal/money"
)

var (
	ErrNotFound             = errors.New("transaction not found")
	ErrOwnerNotFound        = errors.New("owner not found")
	ErrInvalidAmount        = errors.New("transaction amount must be greater than zero")
	ErrCategoryTypeMismatch = errors.New("transaction type does not match category type")
)

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=ledger
type Repository interface {
	CreateTransaction(ctx context.Context, tx *Transaction) error
	CreateTransactions(ctx context.Context, txs []*Transaction) error
	GetTransaction(ctx context.Context, ownerID, id uuid.UUID) (*Transaction, error)
	ListTransactions(ctx context.Context, ownerID uuid.UUID, filter ListFilter) ([]*Transaction, error)
	DeleteTransaction(ctx context.Context, ownerID, id uuid.UUID) error

	GetCategory(ctx context.Context, ownerID, id uuid.UUID) (*category.Category, error)
	OwnerExists(ctx context.Context, ownerID uuid.UUID) (bool, error)
}

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

type CreateParams struct {
	Type        Type
	Amount      money.Amount
	CategoryID  *uuid.UUID
	Date        time.Time
	Description string
}

type ListFilter struct {
	Type       *Type
	CategoryID *uuid.UUID
	StartDate  *time.Time
	EndDate    *time.Time
}

// Create records a transaction after validating the amount and, when a
// category is referenced, that it belongs to the owner and its type matches
// the transaction's.
func (s *Service) Create(ctx context.Context, ownerID uuid.UUID, params CreateParams) (*Transaction, error) {
	if err := s.validate(ctx, ownerID, params); err != nil {
		return nil, err
	}

	tx := &Transaction{
		OwnerID:     ownerID,
		CategoryID:  params.CategoryID,
		Type:        params.Type,
		Amount:      params.Amount,
		Date:        params.Date,
		Description: params.Description,
	}
	if err := s.repo.CreateTransaction(ctx, tx); err != nil {
		return nil, err
	}

	return tx, nil
}

// CreateBatch records a set of transactions, validating each before any is
// written so a bad row rejects the whole batch.
func (s *Service) CreateBatch(ctx context.Context, ownerID uuid.UUID, params []CreateParams) ([]*Transaction, error) {
	if len(params) == 0 {
		return nil, nil
	}

	txs := make([]*Transaction, len(params))

	for i, p := range params {
		if err := s.validate(ctx, ownerID, p); err != nil {
			return nil, fmt.Errorf("row %d: %w", i+1, err)
		}

		txs[i] = &Transaction{
			OwnerID:     ownerID,
			CategoryID:  p.CategoryID,
			Type:        p.Type,
			Amount:      p.Amount,
			Date:        p.Date,
			Description: p.Description,
		}
	}

	if err := s.repo.CreateTransactions(ctx, txs); err != nil {
		return nil, err
	}

	return txs, nil
}

func (s *Service) validate(ctx context.Context, ownerID uuid.UUID, params CreateParams) error {
	if params.Amount <= 0 {
		return ErrInvalidAmount
	}

	if params.CategoryID == nil {
		return nil
	}

	cat, err := s.repo.GetCategory(ctx, ownerID, *params.CategoryID)
	if err != nil {
		return err
	}

	if cat.Type != params.Type.CategoryType() {
		return fmt.Errorf("%w: %s transaction against %s category %q",
			ErrCategoryTypeMismatch, params.Type, cat.Type, cat.Name)
	}

	return nil
}

func (s *Service) Get(ctx context.Context, ownerID, id uuid.UUID) (*Transaction, error) {
	return s.repo.GetTransaction(ctx, ownerID, id)
}

func (s *Service) List(ctx context.Context, ownerID uuid.UUID, filter ListFilter) ([]*Transaction, error) {
	return s.repo.ListTransactions(ctx, ownerID, filter)
}

func (s *Service) Delete(ctx context.Context, ownerID, id uuid.UUID) error {
	return s.repo.DeleteTransaction(ctx, ownerID, id)
}

// OwnerExists reports whether the owner is known to the ledger store.
func (s *Service) OwnerExists(ctx context.Context, ownerID uuid.UUID) (bool, error) {
	return s.repo.OwnerExists(ctx, ownerID)
}

// SpentInMonth sums the owner's expense transactions for the category over
// the calendar month containing the given date, inclusive of both the first
// and last day. No matching transactions yields zero, not an error.
//
// Rows whose type is not expense are skipped even if the store returns them:
// a mis-linked income row must never inflate the spend for an expense
// category.
func (s *Service) SpentInMonth(ctx context.Context, ownerID, categoryID uuid.UUID, month time.Time) (money.Amount, error) {
	first, last := MonthBounds(month)

	txs, err := s.repo.ListTransactions(ctx, ownerID, ListFilter{
		CategoryID: &categoryID,
		StartDate:  &first,
		EndDate:    &last,
	})
	if err != nil {
		return 0, err
	}

	var total money.Amount

	for _, tx := range txs {
		if tx.Type != TypeExpense {
			continue
		}

		total += tx.Amount
	}

	return total, nil
}

// MonthBounds returns the first and last day of the calendar month
// containing t, at midnight UTC.
func MonthBounds(t time.Time) (first, last time.Time) {
	first = time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, time.UTC)
	last = first.AddDate(0, 1, -1)

	return first, last
}
