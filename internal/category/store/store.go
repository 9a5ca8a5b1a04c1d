package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"github.com/mgoncalo/centavo/internal/category"
	"github.com/mgoncalo/centavo/internal/database"
)

type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

func (s *Store) UpsertCategory(ctx context.Context, c *category.Category) error {
	// The no-op DO UPDATE makes RETURNING yield the existing row's id
	// on conflict, so a duplicate create resolves to a reference.
	query := `
		INSERT INTO categories (owner_id, name, type)
		VALUES ($1, $2, $3)
		ON CONFLICT (owner_id, name, type) DO UPDATE SET name = EXCLUDED.name
		RETURNING id
	`

	err := s.db.QueryRowContext(ctx, query, c.OwnerID, c.Name, c.Type).Scan(&c.ID)
	if err != nil {
		return fmt.Errorf("upserting category: %w: %v", database.ErrUnavailable, err)
	}

	return nil
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

func (s *Store) ListCategories(ctx context.Context, ownerID uuid.UUID, filter category.ListFilter) ([]*category.Category, error) {
	query := `
		SELECT id, owner_id, name, type
		FROM categories
		WHERE owner_id = $1
	`

	args := []any{ownerID}

	if filter.Type != nil {
		query += " AND type = $2"

		args = append(args, *filter.Type)
	}

	query += " ORDER BY name ASC"

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing categories: %w: %v", database.ErrUnavailable, err)
	}
	defer rows.Close()

	var categories []*category.Category

	for rows.Next() {
		var c category.Category

		var typeStr string

		if err := rows.Scan(&c.ID, &c.OwnerID, &c.Name, &typeStr); err != nil {
			return nil, fmt.Errorf("scanning category: %w: %v", database.ErrUnavailable, err)
		}

		c.Type = category.Type(typeStr)
		categories = append(categories, &c)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating categories: %w: %v", database.ErrUnavailable, err)
	}

	return categories, nil
}

func (s *Store) DeleteCategory(ctx context.Context, ownerID, id uuid.UUID) error {
	query := `DELETE FROM categories WHERE owner_id = $1 AND id = $2`

	res, err := s.db.ExecContext(ctx, query, ownerID, id)
	if err != nil {
		return fmt.Errorf("deleting category: %w: %v", database.ErrUnavailable, err)
	}

	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return category.ErrNotFound
	}

	return nil
}
