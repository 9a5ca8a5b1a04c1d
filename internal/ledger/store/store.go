package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"github.com/mgoncalo/centavo/internal/category"
	"github.com/mgoncalo/centavo/internal/database"
	"github.com/mgoncalo/centavo/internal/ledger"
)

type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

// scanner is satisfied by both *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

const selectTransactionColumns = `
	t.id, t.owner_id, t.category_id, COALESCE(c.name, ''), t.type, t.amount, t.date, t.description, t.created_at
`

// scanTransaction reads one row in selectTransactionColumns order.
func scanTransaction(s scanner) (*ledger.Transaction, error) {
	var tx ledger.Transaction

	var typeStr string

	if err := s.Scan(
		&tx.ID, &tx.OwnerID, &tx.CategoryID, &tx.CategoryName,
		&typeStr, &tx.Amount, &tx.Date, &tx.Description, &tx.CreatedAt,
	); err != nil {
		return nil, err
	}

	tx.Type = ledger.Type(typeStr)

	return &tx, nil
}

func (s *Store) CreateTransaction(ctx context.Context, tx *ledger.Transaction) error {
	query := `
		INSERT INTO transactions (owner_id, category_id, type, amount, date, description)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at
	`

	err := s.db.QueryRowContext(ctx, query,
		tx.OwnerID,
		tx.CategoryID,
		tx.Type,
		tx.Amount,
		tx.Date,
		tx.Description,
	).Scan(&tx.ID, &tx.CreatedAt)
	if err != nil {
		return fmt.Errorf("creating transaction: %w: %v", database.ErrUnavailable, err)
	}

	return nil
}

func (s *Store) CreateTransactions(ctx context.Context, txs []*ledger.Transaction) error {
	dbTx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning batch: %w: %v", database.ErrUnavailable, err)
	}
	defer dbTx.Rollback()

	query := `
		INSERT INTO transactions (owner_id, category_id, type, amount, date, description)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at
	`

	for _, tx := range txs {
		err := dbTx.QueryRowContext(ctx, query,
			tx.OwnerID,
			tx.CategoryID,
			tx.Type,
			tx.Amount,
			tx.Date,
			tx.Description,
		).Scan(&tx.ID, &tx.CreatedAt)
		if err != nil {
			return fmt.Errorf("creating transaction: %w: %v", database.ErrUnavailable, err)
		}
	}

	if err := dbTx.Commit(); err != nil {
		return fmt.Errorf("committing batch: %w: %v", database.ErrUnavailable, err)
	}

	return nil
}

func (s *Store) GetTransaction(ctx context.Context, ownerID, id uuid.UUID) (*ledger.Transaction, error) {
	query := `SELECT ` + selectTransactionColumns + `
		FROM transactions t
		LEFT JOIN categories c ON t.category_id = c.id
		WHERE t.owner_id = $1 AND t.id = $2`

	tx, err := scanTransaction(s.db.QueryRowContext(ctx, query, ownerID, id))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, ledger.ErrNotFound
		}

		return nil, fmt.Errorf("getting transaction: %w: %v", database.ErrUnavailable, err)
	}

	return tx, nil
}

func (s *Store) ListTransactions(ctx context.Context, ownerID uuid.UUID, filter ledger.ListFilter) ([]*ledger.Transaction, error) {
	query := `SELECT ` + selectTransactionColumns + `
		FROM transactions t
		LEFT JOIN categories c ON t.category_id = c.id
		WHERE t.owner_id = $1`

	args := []any{ownerID}
	argIdx := 2

	if filter.Type != nil {
		query += fmt.Sprintf(" AND t.type = $%d", argIdx)

		args = append(args, *filter.Type)
		argIdx++
	}

	if filter.CategoryID != nil {
		query += fmt.Sprintf(" AND t.category_id = $%d", argIdx)

		args = append(args, *filter.CategoryID)
		argIdx++
	}

	if filter.StartDate != nil {
		query += fmt.Sprintf(" AND t.date >= $%d", argIdx)

		args = append(args, *filter.StartDate)
		argIdx++
	}

	if filter.EndDate != nil {
		query += fmt.Sprintf(" AND t.date <= $%d", argIdx)

		args = append(args, *filter.EndDate)
		argIdx++
	}

	query += " ORDER BY t.date ASC, t.created_at ASC"

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing transactions: %w: %v", database.ErrUnavailable, err)
	}
	defer rows.Close()

	var txs []*ledger.Transaction

	for rows.Next() {
		tx, err := scanTransaction(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning transaction: %w: %v", database.ErrUnavailable, err)
		}

		txs = append(txs, tx)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating transactions: %w: %v", database.ErrUnavailable, err)
	}

	return txs, nil
}

func (s *Store) DeleteTransaction(ctx context.Context, ownerID, id uuid.UUID) error {
	query := `DELETE FROM transactions WHERE owner_id = $1 AND id = $2`

	res, err := s.db.ExecContext(ctx, query, ownerID, id)
	if err != nil {
		return fmt.Errorf("deleting transaction: %w: %v", database.ErrUnavailable, err)
	}

	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return ledger.ErrNotFound
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

func (s *Store) OwnerExists(ctx context.Context, ownerID uuid.UUID) (bool, error) {
	query := `SELECT EXISTS (SELECT 1 FROM users WHERE id = $1)`

	var exists bool
	if err := s.db.QueryRowContext(ctx, query, ownerID).Scan(&exists); err != nil {
		return false, fmt.Errorf("checking owner: %w: %v", database.ErrUnavailable, err)
	}

	return exists, nil
}
