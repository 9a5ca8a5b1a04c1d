package budget

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
	// ErrNotSet distinguishes "no budget configured" from a budget of zero.
	ErrNotSet = errors.New("no budget set")

	ErrInvalidAmount      = errors.New("budget amount must not be negative")
	ErrNotExpenseCategory = errors.New("budgets can only be set on expense categories")
	ErrMonthOutOfRange    = errors.New("budget month out of range")
)

// Months far outside anything a dashboard would show are rejected rather
// than stored; day-of-month normalization is the only silent adjustment.
const (
	minYear        = 2000
	maxYearsFuture = 10
)

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=budget
type Repository interface {
	// UpsertAllocation inserts the allocation or replaces the amount of the
	// existing (owner, category, month) row, loading the row's id either way.
	UpsertAllocation(ctx context.Context, a *Allocation) error
	GetAllocation(ctx context.Context, ownerID, categoryID uuid.UUID, month time.Time) (*Allocation, error)
	ListAllocations(ctx context.Context, ownerID uuid.UUID, month time.Time) ([]*Allocation, error)

	GetCategory(ctx context.Context, ownerID, id uuid.UUID) (*category.Category, error)
}

type Service struct {
	repo Repository
	now  func() time.Time
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo, now: time.Now}
}

type SetParams struct {
	CategoryID uuid.UUID
	Amount     money.Amount
	Month      time.Time
}

// Set upserts the allocation for (owner, category, month). The month may be
// any day of the target month; it is stored as the 1st. Setting the same
// month twice replaces the amount, it never creates a second allocation.
func (s *Service) Set(ctx context.Context, ownerID uuid.UUID, params SetParams) (*Allocation, error) {
	if params.Amount < 0 {
		return nil, ErrInvalidAmount
	}

	month := NormalizeMonth(params.Month)
	if err := s.checkMonth(month); err != nil {
		return nil, err
	}

	cat, err := s.repo.GetCategory(ctx, ownerID, params.CategoryID)
	if err != nil {
		return nil, err
	}

	if cat.Type != category.TypeExpense {
		return nil, fmt.Errorf("%w: %q is an income category", ErrNotExpenseCategory, cat.Name)
	}

	a := &Allocation{
		OwnerID:      ownerID,
		CategoryID:   params.CategoryID,
		CategoryName: cat.Name,
		Amount:       params.Amount,
		Month:        month,
	}
	if err := s.repo.UpsertAllocation(ctx, a); err != nil {
		return nil, err
	}

	return a, nil
}

func (s *Service) checkMonth(month time.Time) error {
	if month.Year() < minYear {
		return fmt.Errorf("%w: %s is before %d", ErrMonthOutOfRange, month.Format("2006-01"), minYear)
	}

	if limit := s.now().AddDate(maxYearsFuture, 0, 0); month.After(limit) {
		return fmt.Errorf("%w: %s is more than %d years ahead", ErrMonthOutOfRange, month.Format("2006-01"), maxYearsFuture)
	}

	return nil
}

// AmountFor returns the budget amount for (owner, category, month), or
// ErrNotSet when no allocation exists. Callers must treat ErrNotSet as
// "skip this category", never as a zero budget.
func (s *Service) AmountFor(ctx context.Context, ownerID, categoryID uuid.UUID, month time.Time) (money.Amount, error) {
	a, err := s.repo.GetAllocation(ctx, ownerID, categoryID, NormalizeMonth(month))
	if err != nil {
		return 0, err
	}

	return a.Amount, nil
}

// AllocationsForMonth lists every allocation the owner has for the month
// containing the given date, with category names resolved.
func (s *Service) AllocationsForMonth(ctx context.Context, ownerID uuid.UUID, month time.Time) ([]*Allocation, error) {
	return s.repo.ListAllocations(ctx, ownerID, NormalizeMonth(month))
}
