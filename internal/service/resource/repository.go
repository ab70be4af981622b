package resource

import (
	"context"
	"errors"

	"github.com/gvsu-realestate/clubsite/internal/domain"
	"github.com/gvsu-realestate/clubsite/internal/store"
)

// Collection is the document store collection resources live in.
const Collection = "resources"

// Repository defines the data access contract for resource metadata.
type Repository interface {
	// List returns all resources in no particular order.
	List(ctx context.Context) ([]domain.Resource, error)

	// Get returns one resource. Returns ErrNotFound if it doesn't exist.
	Get(ctx context.Context, id string) (*domain.Resource, error)

	// Put stores a resource keyed by id.
	Put(ctx context.Context, res domain.Resource) error

	// Delete removes a resource by id. Returns ErrNotFound if it
	// doesn't exist.
	Delete(ctx context.Context, id string) error
}

type docRepo struct {
	docs store.DocumentStore
}

// NewRepository creates a Repository backed by the given document store.
func NewRepository(docs store.DocumentStore) Repository {
	return &docRepo{docs: docs}
}

func (r *docRepo) List(ctx context.Context) ([]domain.Resource, error) {
	raw, err := r.docs.List(ctx, Collection)
	if err != nil {
		return nil, err
	}
	return store.UnmarshalAll[domain.Resource](raw), nil
}

func (r *docRepo) Get(ctx context.Context, id string) (*domain.Resource, error) {
	var res domain.Resource
	err := r.docs.Get(ctx, Collection, id, &res)
	if errors.Is(err, store.ErrNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &res, nil
}

func (r *docRepo) Put(ctx context.Context, res domain.Resource) error {
	return r.docs.Put(ctx, Collection, res.ID, res)
}

func (r *docRepo) Delete(ctx context.Context, id string) error {
	err := r.docs.Delete(ctx, Collection, id)
	if errors.Is(err, store.ErrNotFound) {
		return ErrNotFound
	}
	return err
}
