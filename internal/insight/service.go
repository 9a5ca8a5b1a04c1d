package insight

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/mgoncalo/centavo/internal/budget"
	"github.com/mgoncalo/centavo/internal/money"
)

var ErrOwnerNotFound = errors.New("owner not found")

//go:generate mockgen -source=service.go -destination=sources_mock.go -package=insight

// Aggregator supplies month-to-date expense totals per category.
type Aggregator interface {
	SpentInMonth(ctx context.Context, ownerID, categoryID uuid.UUID, month time.Time) (money.Amount, error)
}

// BudgetSource supplies the owner's budget allocations for a month.
type BudgetSource interface {
	AllocationsForMonth(ctx context.Context, ownerID uuid.UUID, month time.Time) ([]*budget.Allocation, error)
}

// OwnerDirectory answers whether an owner exists at all, so an unknown
// owner can be told apart from an owner with no data.
type OwnerDirectory interface {
	OwnerExists(ctx context.Context, ownerID uuid.UUID) (bool, error)
}

// Service is stateless; concurrent Report calls share nothing but the
// underlying read-only stores.
type Service struct {
	spending Aggregator
	budgets  BudgetSource
	owners   OwnerDirectory
}

func NewService(spending Aggregator, budgets BudgetSource, owners OwnerDirectory) *Service {
	return &Service{
		spending: spending,
		budgets:  budgets,
		owners:   owners,
	}
}

// spendline pairs an allocation with its month-to-date spend.
type spendline struct {
	allocation *budget.Allocation
	spent      money.Amount
}

// Report computes the insight report for the owner as of the given date.
// Absence of budgets or transactions yields an empty report, not an error.
// If any per-category read fails (or the context is cancelled) the whole
// report fails; a partial report is never returned.
func (s *Service) Report(ctx context.Context, ownerID uuid.UUID, asOf time.Time) (*Report, error) {
	exists, err := s.owners.OwnerExists(ctx, ownerID)
	if err != nil {
		return nil, fmt.Errorf("checking owner: %w", err)
	}

	if !exists {
		return nil, ErrOwnerNotFound
	}

	allocations, err := s.budgets.AllocationsForMonth(ctx, ownerID, asOf)
	if err != nil {
		return nil, fmt.Errorf("loading budgets: %w", err)
	}

	lines, err := s.gatherSpending(ctx, ownerID, asOf, allocations)
	if err != nil {
		return nil, err
	}

	report := &Report{
		Overspending: detectOverspending(lines),
		Predictions:  predictOverruns(lines, asOf),
	}

	sort.Slice(report.Overspending, func(i, j int) bool {
		return report.Overspending[i].Category < report.Overspending[j].Category
	})
	sort.Slice(report.Predictions, func(i, j int) bool {
		return report.Predictions[i].Category < report.Predictions[j].Category
	})

	return report, nil
}

// gatherSpending fans the per-category aggregation queries out in parallel;
// they are independent reads with no cross-category dependency. The first
// failure cancels the rest.
func (s *Service) gatherSpending(ctx context.Context, ownerID uuid.UUID, asOf time.Time, allocations []*budget.Allocation) ([]spendline, error) {
	lines := make([]spendline, len(allocations))

	g, gctx := errgroup.WithContext(ctx)

	for i, a := range allocations {
		i, a := i, a
		g.Go(func() error {
			spent, err := s.spending.SpentInMonth(gctx, ownerID, a.CategoryID, asOf)
			if err != nil {
				return fmt.Errorf("aggregating %q: %w", a.CategoryName, err)
			}

			lines[i] = spendline{allocation: a, spent: spent}

			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return lines, nil
}

// detectOverspending emits an alert for every category whose spend has
// reached its budget. Spending exactly the budget already alerts: there is
// nothing left to spend.
func detectOverspending(lines []spendline) []Alert {
	var alerts []Alert

	for _, l := range lines {
		if l.spent < l.allocation.Amount {
			continue
		}

		overage := l.spent - l.allocation.Amount
		alerts = append(alerts, Alert{
			Category: l.allocation.CategoryName,
			Budget:   l.allocation.Amount,
			Spent:    l.spent,
			Overage:  overage,
			Message: fmt.Sprintf("You have exceeded your %s budget by %s",
				l.allocation.CategoryName, overage),
		})
	}

	return alerts
}

// predictOverruns linearly extrapolates each category's spend to month end
// and emits a warning when the projection exceeds the budget. Categories
// already overspent are skipped so the report never flags a category twice,
// and day zero is skipped outright since there is no run rate to project.
func predictOverruns(lines []spendline, asOf time.Time) []Prediction {
	daysElapsed := asOf.Day()
	if daysElapsed < 1 {
		return nil
	}

	daysInMonth := time.Date(asOf.Year(), asOf.Month()+1, 0, 0, 0, 0, 0, time.UTC).Day()

	var predictions []Prediction

	for _, l := range lines {
		if l.spent >= l.allocation.Amount {
			continue
		}

		projected := money.Amount(int64(l.spent) * int64(daysInMonth) / int64(daysElapsed))
		if projected <= l.allocation.Amount {
			continue
		}

		predictions = append(predictions, Prediction{
			Category:  l.allocation.CategoryName,
			Budget:    l.allocation.Amount,
			Spent:     l.spent,
			Projected: projected,
			Message: fmt.Sprintf("At current rate, you will exceed %s budget by %s",
				l.allocation.CategoryName, projected-l.allocation.Amount),
		})
	}

	return predictions
}
