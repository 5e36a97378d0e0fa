package items

import (
	"context"
	"errors"
	"fmt"
	"strings"

	pkgerrors "github.com/itemstore/itemstore-backend/pkg/errors"
)

// Service exposes item management operations.
type Service interface {
	ListItems(ctx context.Context) ([]ItemDTO, error)
	GetItem(ctx context.Context, id int64) (*ItemDTO, error)
	CreateItem(ctx context.Context, input ItemInput) (*ItemDTO, error)
	UpdateItem(ctx context.Context, id int64, input ItemInput) (*ItemDTO, error)
	DeleteItem(ctx context.Context, id int64) (*ItemDTO, error)
}

// ItemInput holds the validated payload to create or fully replace an item.
type ItemInput struct {
	Name        string
	Description *string
	Price       float64
	IsAvailable bool
}

type service struct {
	store *Store
}

// NewService constructs an item service instance.
func NewService(store *Store) (Service, error) {
	if store == nil {
		return nil, fmt.Errorf("item store required")
	}
	return &service{store: store}, nil
}

// ListItems returns all items in insertion order.
func (s *service) ListItems(_ context.Context) ([]ItemDTO, error) {
	stored := s.store.List()
	out := make([]ItemDTO, 0, len(stored))
	for _, item := range stored {
		out = append(out, *newItemDTO(item))
	}
	return out, nil
}

// GetItem returns the item with the given id.
func (s *service) GetItem(_ context.Context, id int64) (*ItemDTO, error) {
	item, err := s.store.Get(id)
	if err != nil {
		return nil, notFound(id, err)
	}
	return newItemDTO(item), nil
}

// CreateItem validates the payload and inserts a new item with a fresh id.
func (s *service) CreateItem(_ context.Context, input ItemInput) (*ItemDTO, error) {
	if err := validateInput(input); err != nil {
		return nil, err
	}

	created := s.store.Insert(Item{
		Name:        input.Name,
		Description: input.Description,
		Price:       input.Price,
		IsAvailable: input.IsAvailable,
	})
	return newItemDTO(created), nil
}

// UpdateItem replaces every mutable field of an existing item. The payload
// carries the full new state; there are no partial updates.
func (s *service) UpdateItem(_ context.Context, id int64, input ItemInput) (*ItemDTO, error) {
	if err := validateInput(input); err != nil {
		return nil, err
	}

	updated, err := s.store.Replace(id, Item{
		Name:        input.Name,
		Description: input.Description,
		Price:       input.Price,
		IsAvailable: input.IsAvailable,
	})
	if err != nil {
		return nil, notFound(id, err)
	}
	return newItemDTO(updated), nil
}

// DeleteItem removes the item permanently and returns the removed record so
// callers can name it in the confirmation. The id is never reissued.
func (s *service) DeleteItem(_ context.Context, id int64) (*ItemDTO, error) {
	removed, err := s.store.Remove(id)
	if err != nil {
		return nil, notFound(id, err)
	}
	return newItemDTO(removed), nil
}

func validateInput(input ItemInput) error {
	if strings.TrimSpace(input.Name) == "" {
		return pkgerrors.New(pkgerrors.CodeValidation, "name must not be empty")
	}
	if input.Price < 0 {
		return pkgerrors.New(pkgerrors.CodeValidation, "price must be non-negative")
	}
	return nil
}

func notFound(id int64, err error) error {
	if errors.Is(err, ErrNotFound) {
		return pkgerrors.New(pkgerrors.CodeNotFound, fmt.Sprintf("item %d not found", id))
	}
	return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "load item")
}
