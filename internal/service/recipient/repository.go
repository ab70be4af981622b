package recipient

import (
	"context"
	"errors"

	"github.com/gvsu-realestate/clubsite/internal/domain"
	"github.com/gvsu-realestate/clubsite/internal/store"
)

// Collection is the document store collection recipients live in.
const Collection = "recipients"

// Repository defines the data access contract for the subscriber list.
// Implementations must be safe for concurrent use.
type Repository interface {
	// List returns all recipients in no particular order.
	List(ctx context.Context) ([]domain.Recipient, error)

	// Put stores a recipient keyed by id.
	Put(ctx context.Context, rec domain.Recipient) error

	// Delete removes a recipient by id. Returns ErrNotFound if it
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

func (r *docRepo) List(ctx context.Context) ([]domain.Recipient, error) {
	raw, err := r.docs.List(ctx, Collection)
	if err != nil {
		return nil, err
	}
	return store.UnmarshalAll[domain.Recipient](raw), nil
}

func (r *docRepo) Put(ctx context.Context, rec domain.Recipient) error {
	return r.docs.Put(ctx, Collection, rec.ID, rec)
}

func (r *docRepo) Delete(ctx context.Context, id string) error {
	err := r.docs.Delete(ctx, Collection, id)
	if errors.Is(err, store.ErrNotFound) {
		return ErrNotFound
	}
	return err
}
