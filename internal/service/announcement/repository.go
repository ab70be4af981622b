package announcement

import (
	"context"
	"errors"

	"github.com/gvsu-realestate/clubsite/internal/domain"
	"github.com/gvsu-realestate/clubsite/internal/store"
)

// Collection is the document store collection announcements live in.
const Collection = "announcements"

// Repository defines the data access contract for announcements.
// Implementations must be safe for concurrent use.
type Repository interface {
	// List returns all announcements in no particular order.
	List(ctx context.Context) ([]domain.Announcement, error)

	// Put stores an announcement, overwriting any existing one with the
	// same id.
	Put(ctx context.Context, ann domain.Announcement) error

	// Delete removes an announcement. Returns ErrNotFound if it doesn't exist.
	Delete(ctx context.Context, id string) error
}

// docRepo is the document-store-backed Repository.
type docRepo struct {
	docs store.DocumentStore
}

// NewRepository creates a Repository backed by the given document store.
func NewRepository(docs store.DocumentStore) Repository {
	return &docRepo{docs: docs}
}

func (r *docRepo) List(ctx context.Context) ([]domain.Announcement, error) {
	raw, err := r.docs.List(ctx, Collection)
	if err != nil {
		return nil, err
	}
	return store.UnmarshalAll[domain.Announcement](raw), nil
}

func (r *docRepo) Put(ctx context.Context, ann domain.Announcement) error {
	return r.docs.Put(ctx, Collection, ann.ID, ann)
}

func (r *docRepo) Delete(ctx context.Context, id string) error {
	err := r.docs.Delete(ctx, Collection, id)
	if errors.Is(err, store.ErrNotFound) {
		return ErrNotFound
	}
	return err
}
