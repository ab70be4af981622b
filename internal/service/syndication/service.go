package syndication

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/url"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/gvsu-realestate/clubsite/internal/domain"
	"github.com/gvsu-realestate/clubsite/internal/pkg/logger"
	"github.com/gvsu-realestate/clubsite/internal/store"
)

// Collection is the document store collection syndication content
// lives in. The overview is a fixed document; documents and links are
// keyed by generated id with a kind discriminator in the document id
// prefix.
const Collection = "syndication"

const overviewDocID = "overview"

// LinkKind distinguishes the two curated link lists.
type LinkKind string

const (
	WatchThrough LinkKind = "watchthrough"
	ReadThrough  LinkKind = "readthrough"
)

// Service implements syndication tab business logic.
type Service struct {
	docs    store.DocumentStore
	objects store.ObjectStore
	news    *NewsFetcher
}

// NewService creates a syndication service.
func NewService(docs store.DocumentStore, objects store.ObjectStore, news *NewsFetcher) *Service {
	return &Service{docs: docs, objects: objects, news: news}
}

// Upload describes an incoming study document file.
type Upload struct {
	Filename    string
	ContentType string
	Body        io.Reader
}

// Overview returns the syndication intro text, empty if never set.
func (s *Service) Overview(ctx context.Context) (*domain.SyndicationOverview, error) {
	var ov domain.SyndicationOverview
	err := s.docs.Get(ctx, Collection, overviewDocID, &ov)
	if err != nil && !errors.Is(err, store.ErrNotFound) {
		return nil, fmt.Errorf("loading syndication overview: %w", err)
	}
	return &ov, nil
}

// SetOverview replaces the syndication intro text.
func (s *Service) SetOverview(ctx context.Context, text string) (*domain.SyndicationOverview, error) {
	ov := domain.SyndicationOverview{Text: strings.TrimSpace(text)}
	if err := s.docs.Put(ctx, Collection, overviewDocID, ov); err != nil {
		return nil, fmt.Errorf("saving syndication overview: %w", err)
	}
	return &ov, nil
}

type storedDocument struct {
	Kind string `json:"kind"`
	domain.SyndicationDocument
}

type storedLink struct {
	Kind string `json:"kind"`
	domain.SyndicationLink
}

// ListDocuments returns all uploaded study documents, newest first.
func (s *Service) ListDocuments(ctx context.Context) ([]domain.SyndicationDocument, error) {
	raw, err := s.docs.List(ctx, Collection)
	if err != nil {
		return nil, err
	}
	var out []domain.SyndicationDocument
	for _, sd := range store.UnmarshalAll[storedDocument](raw) {
		if sd.Kind == "document" {
			out = append(out, sd.SyndicationDocument)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	if out == nil {
		out = []domain.SyndicationDocument{}
	}
	return out, nil
}

// AddDocument uploads a study document and stores its metadata. Mirrors
// the resource library: file first, metadata second, object cleaned up
// when the metadata write fails.
func (s *Service) AddDocument(ctx context.Context, name, description string, up Upload) (*domain.SyndicationDocument, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrEmptyName
	}
	if up.Body == nil || up.Filename == "" {
		return nil, ErrMissingFile
	}

	id := uuid.New().String()
	key := store.ObjectKey("syndication", id, up.Filename)

	fileURL, err := s.objects.Upload(ctx, key, up.ContentType, up.Body)
	if err != nil {
		return nil, fmt.Errorf("uploading syndication document: %w", err)
	}

	doc := domain.SyndicationDocument{
		ID:          id,
		Name:        name,
		Description: strings.TrimSpace(description),
		FileURL:     fileURL,
		StorageKey:  key,
		CreatedAt:   time.Now().UTC(),
	}
	stored := storedDocument{Kind: "document", SyndicationDocument: doc}
	if err := s.docs.Put(ctx, Collection, id, stored); err != nil {
		if delErr := s.objects.Delete(ctx, key); delErr != nil {
			logger.Warn("orphaned upload left in object store", "key", key, "error", delErr.Error())
		}
		return nil, err
	}
	return &doc, nil
}

// DeleteDocument removes a study document and, best-effort, its file.
func (s *Service) DeleteDocument(ctx context.Context, id string) error {
	var stored storedDocument
	err := s.docs.Get(ctx, Collection, id, &stored)
	if errors.Is(err, store.ErrNotFound) {
		return ErrNotFound
	}
	if err != nil {
		return err
	}
	if stored.Kind != "document" {
		return ErrNotFound
	}

	if err := s.docs.Delete(ctx, Collection, id); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrNotFound
		}
		return err
	}
	if stored.StorageKey != "" {
		if err := s.objects.Delete(ctx, stored.StorageKey); err != nil {
			logger.Warn("deleting syndication document file", "key", stored.StorageKey, "error", err.Error())
		}
	}
	return nil
}

// ListLinks returns the curated links of one kind, newest first.
func (s *Service) ListLinks(ctx context.Context, kind LinkKind) ([]domain.SyndicationLink, error) {
	raw, err := s.docs.List(ctx, Collection)
	if err != nil {
		return nil, err
	}
	var out []domain.SyndicationLink
	for _, sl := range store.UnmarshalAll[storedLink](raw) {
		if sl.Kind == string(kind) {
			out = append(out, sl.SyndicationLink)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	if out == nil {
		out = []domain.SyndicationLink{}
	}
	return out, nil
}

// AddLink stores a new watch-through or read-through entry.
func (s *Service) AddLink(ctx context.Context, kind LinkKind, title, rawURL, description string) (*domain.SyndicationLink, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return nil, ErrEmptyTitle
	}
	rawURL = strings.TrimSpace(rawURL)
	parsed, err := url.Parse(rawURL)
	if err != nil || (parsed.Scheme != "http" && parsed.Scheme != "https") || parsed.Host == "" {
		return nil, ErrInvalidURL
	}

	link := domain.SyndicationLink{
		ID:          uuid.New().String(),
		Title:       title,
		URL:         rawURL,
		Description: strings.TrimSpace(description),
		CreatedAt:   time.Now().UTC(),
	}
	stored := storedLink{Kind: string(kind), SyndicationLink: link}
	if err := s.docs.Put(ctx, Collection, link.ID, stored); err != nil {
		return nil, err
	}
	return &link, nil
}

// DeleteLink removes a curated link of the given kind.
func (s *Service) DeleteLink(ctx context.Context, kind LinkKind, id string) error {
	var stored storedLink
	err := s.docs.Get(ctx, Collection, id, &stored)
	if errors.Is(err, store.ErrNotFound) {
		return ErrNotFound
	}
	if err != nil {
		return err
	}
	if stored.Kind != string(kind) {
		return ErrNotFound
	}

	err = s.docs.Delete(ctx, Collection, id)
	if errors.Is(err, store.ErrNotFound) {
		return ErrNotFound
	}
	return err
}

// News returns current headlines from the configured external feed.
func (s *Service) News(ctx context.Context) ([]domain.NewsItem, error) {
	return s.news.Fetch(ctx)
}
