package member

import (
	"context"
	"errors"

	"github.com/gvsu-realestate/clubsite/internal/domain"
	"github.com/gvsu-realestate/clubsite/internal/store"
)

// Collection is the document store collection members live in.
const Collection = "members"

// Repository defines the data access contract for roster members.
type Repository interface {
	// List returns all members in no particular order.
	List(ctx context.Context) ([]domain.Member, error)

	// Get returns one member. Returns ErrNotFound if it doesn't exist.
	Get(ctx context.Context, id string) (*domain.Member, error)

	// Put stores a member keyed by id.
	Put(ctx context.Context, m domain.Member) error

	// Delete removes a member by id. Returns ErrNotFound if it
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

func (r *docRepo) List(ctx context.Context) ([]domain.Member, error) {
	raw, err := r.docs.List(ctx, Collection)
	if err != nil {
		return nil, err
	}
	return store.UnmarshalAll[domain.Member](raw), nil
}

func (r *docRepo) Get(ctx context.Context, id string) (*domain.Member, error) {
	var m domain.Member
	err := r.docs.Get(ctx, Collection, id, &m)
	if errors.Is(err, store.ErrNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &m, nil
}

func (r *docRepo) Put(ctx context.Context, m domain.Member) error {
	return r.docs.Put(ctx, Collection, m.ID, m)
}

func (r *docRepo) Delete(ctx context.Context, id string) error {
	err := r.docs.Delete(ctx, Collection, id)
	if errors.Is(err, store.ErrNotFound) {
		return ErrNotFound
	}
	return err
}
