package category

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
)

var (
	ErrInvalidType = errors.New("invalid category type")
	ErrInvalidName = errors.New("invalid category name")
)

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=category
type Repository interface {
	// UpsertCategory inserts the category or, when one with the same
	// (owner, name, type) already exists, loads the existing row into it.
	UpsertCategory(ctx context.Context, c *Category) error
	GetCategory(ctx context.Context, ownerID, id uuid.UUID) (*Category, error)
	ListCategories(ctx context.Context, ownerID uuid.UUID, filter ListFilter) ([]*Category, error)
	DeleteCategory(ctx context.Context, ownerID, id uuid.UUID) error
}

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

type ListFilter struct {
	Type *Type
}

// CreateOrGet returns the owner's category with the given name and type,
// creating it first if needed. Saving a transaction against a brand-new
// category name therefore never needs a separate create call.
func (s *Service) CreateOrGet(ctx context.Context, ownerID uuid.UUID, name string, typ Type) (*Category, error) {
	if name == "" {
		return nil, fmt.Errorf("%w: name must not be empty", ErrInvalidName)
	}

	if !typ.Valid() {
		return nil, fmt.Errorf("%w: %q", ErrInvalidType, typ)
	}

	c := &Category{
		OwnerID: ownerID,
		Name:    name,
		Type:    typ,
	}
	if err := s.repo.UpsertCategory(ctx, c); err != nil {
		return nil, err
	}

	return c, nil
}

func (s *Service) Get(ctx context.Context, ownerID, id uuid.UUID) (*Category, error) {
	return s.repo.GetCategory(ctx, ownerID, id)
}

func (s *Service) List(ctx context.Context, ownerID uuid.UUID, filter ListFilter) ([]*Category, error) {
	return s.repo.ListCategories(ctx, ownerID, filter)
}

func (s *Service) Delete(ctx context.Context, ownerID, id uuid.UUID) error {
	return s.repo.DeleteCategory(ctx, ownerID, id)
}
