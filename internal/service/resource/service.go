package resource

import (
	"context"
	"fmt"
	"io"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/gvsu-realestate/clubsite/internal/domain"
	"github.com/gvsu-realestate/clubsite/internal/pkg/logger"
	"github.com/gvsu-realestate/clubsite/internal/store"
)

// Service implements resource library business logic.
type Service struct {
	repo    Repository
	objects store.ObjectStore
}

// NewService creates a resource service.
func NewService(repo Repository, objects store.ObjectStore) *Service {
	return &Service{repo: repo, objects: objects}
}

// Upload describes an incoming file.
type Upload struct {
	Filename    string
	ContentType string
	Body        io.Reader
}

// ListAll returns every resource, newest first.
func (s *Service) ListAll(ctx context.Context) ([]domain.Resource, error) {
	res, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	sort.Slice(res, func(i, j int) bool {
		return res[i].CreatedAt.After(res[j].CreatedAt)
	})
	return res, nil
}

// Create uploads the file and stores the resource metadata. The file
// goes to the object store first; if the metadata write then fails, the
// uploaded object is removed so no orphan is left behind.
func (s *Service) Create(ctx context.Context, name, description string, up Upload) (*domain.Resource, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrEmptyName
	}
	if up.Body == nil || up.Filename == "" {
		return nil, ErrMissingFile
	}

	id := uuid.New().String()
	key := store.ObjectKey("resources", id, up.Filename)

	url, err := s.objects.Upload(ctx, key, up.ContentType, up.Body)
	if err != nil {
		return nil, fmt.Errorf("uploading resource file: %w", err)
	}

	res := domain.Resource{
		ID:          id,
		Name:        name,
		Description: strings.TrimSpace(description),
		FileURL:     url,
		StorageKey:  key,
		CreatedAt:   time.Now().UTC(),
	}
	if err := s.repo.Put(ctx, res); err != nil {
		if delErr := s.objects.Delete(ctx, key); delErr != nil {
			logger.Warn("orphaned upload left in object store", "key", key, "error", delErr.Error())
		}
		return nil, err
	}

	return &res, nil
}

// DeleteByID removes the resource metadata and, best-effort, its file.
// A failed object delete is logged but does not fail the operation: the
// metadata is already gone and the file is unreachable.
func (s *Service) DeleteByID(ctx context.Context, id string) error {
	res, err := s.repo.Get(ctx, id)
	if err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}

	if res.StorageKey != "" {
		if err := s.objects.Delete(ctx, res.StorageKey); err != nil {
			logger.Warn("deleting resource file", "key", res.StorageKey, "error", err.Error())
		}
	}
	return nil
}
