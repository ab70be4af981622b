package member

import (
	"bytes"
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

// Service implements leadership roster business logic.
type Service struct {
	repo    Repository
	objects store.ObjectStore
}

// NewService creates a member service.
func NewService(repo Repository, objects store.ObjectStore) *Service {
	return &Service{repo: repo, objects: objects}
}

// Photo describes an incoming headshot upload.
type Photo struct {
	Filename    string
	ContentType string
	Body        io.Reader
}

// CreateInput holds the fields for a new roster member.
type CreateInput struct {
	Name        string
	Title       string
	Email       string
	Description string
	Position    int
}

// UpdateInput holds the mutable fields for a member update.
// Nil fields are left unchanged.
type UpdateInput struct {
	Name        *string
	Title       *string
	Email       *string
	Description *string
	Position    *int
}

// ListAll returns the roster ordered by display position, then by
// join date for members sharing a position.
func (s *Service) ListAll(ctx context.Context) ([]domain.Member, error) {
	members, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	sort.Slice(members, func(i, j int) bool {
		if members[i].Position != members[j].Position {
			return members[i].Position < members[j].Position
		}
		return members[i].CreatedAt.Before(members[j].CreatedAt)
	})
	return members, nil
}

// Create stores a new member. When a photo is supplied, the original
// and a generated thumbnail are uploaded before the document is written.
func (s *Service) Create(ctx context.Context, in CreateInput, photo *Photo) (*domain.Member, error) {
	in.Name = strings.TrimSpace(in.Name)
	if in.Name == "" {
		return nil, ErrEmptyName
	}

	m := domain.Member{
		ID:          uuid.New().String(),
		Name:        in.Name,
		Title:       strings.TrimSpace(in.Title),
		Email:       domain.NormalizeEmail(in.Email),
		Description: strings.TrimSpace(in.Description),
		Position:    in.Position,
		CreatedAt:   time.Now().UTC(),
	}

	if photo != nil {
		if err := s.attachPhoto(ctx, &m, photo); err != nil {
			return nil, err
		}
	}

	if err := s.repo.Put(ctx, m); err != nil {
		s.removePhotos(ctx, m)
		return nil, err
	}
	return &m, nil
}

// Update merges the given fields into an existing member. A new photo
// replaces the stored one and its thumbnail.
func (s *Service) Update(ctx context.Context, id string, in UpdateInput, photo *Photo) (*domain.Member, error) {
	m, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if in.Name != nil {
		name := strings.TrimSpace(*in.Name)
		if name == "" {
			return nil, ErrEmptyName
		}
		m.Name = name
	}
	if in.Title != nil {
		m.Title = strings.TrimSpace(*in.Title)
	}
	if in.Email != nil {
		m.Email = domain.NormalizeEmail(*in.Email)
	}
	if in.Description != nil {
		m.Description = strings.TrimSpace(*in.Description)
	}
	if in.Position != nil {
		m.Position = *in.Position
	}

	if photo != nil {
		old := *m
		if err := s.attachPhoto(ctx, m, photo); err != nil {
			return nil, err
		}
		if old.StorageKey != "" && old.StorageKey != m.StorageKey {
			s.removePhotos(ctx, old)
		}
	}

	if err := s.repo.Put(ctx, *m); err != nil {
		return nil, err
	}
	return m, nil
}

// DeleteByID removes a member and, best-effort, their photos.
func (s *Service) DeleteByID(ctx context.Context, id string) error {
	m, err := s.repo.Get(ctx, id)
	if err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.removePhotos(ctx, *m)
	return nil
}

func (s *Service) attachPhoto(ctx context.Context, m *domain.Member, photo *Photo) error {
	data, err := io.ReadAll(photo.Body)
	if err != nil {
		return fmt.Errorf("reading photo: %w", err)
	}

	thumb, err := makeThumbnail(data)
	if err != nil {
		return err
	}

	key := store.ObjectKey(Collection, m.ID, photo.Filename)
	photoURL, err := s.objects.Upload(ctx, key, photo.ContentType, bytes.NewReader(data))
	if err != nil {
		return fmt.Errorf("uploading photo: %w", err)
	}

	thumbURL, err := s.objects.Upload(ctx, thumbKey(m.ID), "image/jpeg", bytes.NewReader(thumb))
	if err != nil {
		return fmt.Errorf("uploading thumbnail: %w", err)
	}

	m.StorageKey = key
	m.PhotoURL = photoURL
	m.ThumbnailURL = thumbURL
	return nil
}

func (s *Service) removePhotos(ctx context.Context, m domain.Member) {
	if m.StorageKey == "" {
		return
	}
	if err := s.objects.Delete(ctx, m.StorageKey); err != nil {
		logger.Warn("deleting member photo", "key", m.StorageKey, "error", err.Error())
	}
	if err := s.objects.Delete(ctx, thumbKey(m.ID)); err != nil {
		logger.Warn("deleting member thumbnail", "member_id", m.ID, "error", err.Error())
	}
}

func thumbKey(id string) string {
	return fmt.Sprintf("%s/%s/thumb.jpg", Collection, id)
}
