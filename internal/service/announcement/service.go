package announcement

import (
	"context"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/gvsu-realestate/clubsite/internal/domain"
)

// Service implements announcement business logic.
type Service struct {
	repo Repository
}

// NewService creates an announcement service backed by the given repository.
func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// ListAll returns every announcement, newest first.
func (s *Service) ListAll(ctx context.Context) ([]domain.Announcement, error) {
	anns, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	sort.Slice(anns, func(i, j int) bool {
		return anns[i].Timestamp.After(anns[j].Timestamp)
	})
	return anns, nil
}

// Create validates and persists a new announcement, stamped with the
// current time.
func (s *Service) Create(ctx context.Context, title, content string) (*domain.Announcement, error) {
	title = strings.TrimSpace(title)
	content = strings.TrimSpace(content)
	if title == "" {
		return nil, ErrEmptyTitle
	}
	if content == "" {
		return nil, ErrEmptyContent
	}

	ann := domain.Announcement{
		ID:        uuid.New().String(),
		Title:     title,
		Content:   content,
		Timestamp: time.Now().UTC(),
	}
	if err := s.repo.Put(ctx, ann); err != nil {
		return nil, err
	}
	return &ann, nil
}

// DeleteByID removes an announcement. Returns ErrNotFound if no
// announcement has the given id.
func (s *Service) DeleteByID(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}
