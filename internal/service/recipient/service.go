package recipient

import (
	"context"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/gvsu-realestate/clubsite/internal/domain"
)

// Service implements subscriber list business logic.
//
// Uniqueness is enforced by listing before inserting. Two simultaneous
// subscribes for the same address can both pass the check and write two
// documents; the list is small and admin-curated, and a duplicate only
// costs one extra Bcc entry, so the race is accepted rather than paying
// for a conditional write.
type Service struct {
	repo Repository
}

// NewService creates a recipient service backed by the given repository.
func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// ListAll returns every recipient, oldest subscription first.
func (s *Service) ListAll(ctx context.Context) ([]domain.Recipient, error) {
	recs, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	sort.Slice(recs, func(i, j int) bool {
		return recs[i].AddedAt.Before(recs[j].AddedAt)
	})
	return recs, nil
}

// Addresses returns just the email addresses, for the broadcast Bcc list.
func (s *Service) Addresses(ctx context.Context) ([]string, error) {
	recs, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	addrs := make([]string, 0, len(recs))
	for _, rec := range recs {
		addrs = append(addrs, rec.Email)
	}
	return addrs, nil
}

// Subscribe validates, normalizes, and stores a new email address.
// Returns ErrDuplicate when the address is already on the list.
func (s *Service) Subscribe(ctx context.Context, email string) (*domain.Recipient, error) {
	email = domain.NormalizeEmail(email)
	if !domain.ValidEmail(email) {
		return nil, ErrInvalidEmail
	}

	existing, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	for _, rec := range existing {
		if rec.Email == email {
			return nil, ErrDuplicate
		}
	}

	rec := domain.Recipient{
		ID:      uuid.New().String(),
		Email:   email,
		AddedAt: time.Now().UTC(),
	}
	if err := s.repo.Put(ctx, rec); err != nil {
		return nil, err
	}
	return &rec, nil
}

// Unsubscribe removes the recipient with the given address.
// Returns ErrNotFound if the address is not on the list.
func (s *Service) Unsubscribe(ctx context.Context, email string) error {
	email = domain.NormalizeEmail(email)

	recs, err := s.repo.List(ctx)
	if err != nil {
		return err
	}
	for _, rec := range recs {
		if rec.Email == email {
			return s.repo.Delete(ctx, rec.ID)
		}
	}
	return ErrNotFound
}
