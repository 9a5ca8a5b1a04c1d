package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/mgoncalo/centavo/internal/budget"
	"github.com/mgoncalo/centavo/internal/category"
	"github.com/mgoncalo/centavo/internal/database"
)

type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

func (s *Store) UpsertAllocation(ctx context.Context, a *budget.Allocation) error {
	query := `
		INSERT INTO budget_allocations (owner_id, category_id, amount, month)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (owner_id, category_id, month) DO UPDATE SET amount = EXCLUDED.amount
		RETURNING id
	`

	err := s.db.QueryRowContext(ctx, query, a.OwnerID, a.CategoryID, a.Amount, a.Month).Scan(&a.ID)
	if err != nil {
		return fmt.Errorf("upserting allocation: %w: %v", database.ErrUnavailable, err)
	}

	return nil
}

func (s *Store) GetAllocation(ctx context.Context, ownerID, categoryID uuid.UUID, month time.Time) (*budget.Allocation, error) {
	query := `
		SELECT b.id, b.owner_id, b.category_id, c.name, b.amount, b.month
		FROM budget_allocations b
		JOIN categories c ON b.category_id = c.id
		WHERE b.owner_id = $1 AND b.category_id = $2 AND b.month = $3
	`

	var a budget.Allocation

	err := s.db.QueryRowContext(ctx, query, ownerID, categoryID, month).
		Scan(&a.ID, &a.OwnerID, &a.CategoryID, &a.CategoryName, &a.Amount, &a.Month)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, budget.ErrNotSet
		}

		return nil, fmt.Errorf("getting allocation: %w: %v", database.ErrUnavailable, err)
	}

	return &a, nil
}

func (s *Store) ListAllocations(ctx context.Context, ownerID uuid.UUID, month time.Time) ([]*budget.Allocation, error) {
	query := `
		SELECT b.id, b.owner_id, b.category_id, c.name, b.amount, b.month
		FROM budget_allocations b
		JOIN categories c ON b.category_id = c.id
		WHERE b.owner_id = $1 AND b.month = $2
		ORDER BY c.name ASC
	`

	rows, err := s.db.QueryContext(ctx, query, ownerID, month)
	if err != nil {
		return nil, fmt.Errorf("listing allocations: %w: %v", database.ErrUnavailable, err)
	}
	defer rows.Close()

	var allocations []*budget.Allocation

	for rows.Next() {
		var a budget.Allocation

		if err := rows.Scan(&a.ID, &a.OwnerID, &a.CategoryID, &a.CategoryName, &a.Amount, &a.Month); err != nil {
			return nil, fmt.Errorf("scanning allocation: %w: %v", database.ErrUnavailable, err)
		}

		allocations = append(allocations, &a)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating allocations: %w: %v", database.ErrUnavailable, err)
	}

	return allocations, nil
}

func (s *Store) GetCategory(ctx context.Context, ownerID, id uuid.UUID) (*category.Category, error) {
	query := `
		SELECT id, owner_id, name, type
		FROM categories
		WHERE owner_id = $1 AND id = $2
	`

	var c category.Category

	var typeStr string

	err := s.db.QueryRowContext(ctx, query, ownerID, id).
		Scan(&c.ID, &c.OwnerID, &c.Name, &typeStr)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, category.ErrNotFound
		}

		return nil, fmt.Errorf("getting category: %w: %v", database.ErrUnavailable, err)
	}

	c.Type = category.Type(typeStr)

	return &c, nil
}
