package home

import (
	"context"
	"errors"
	"fmt"

	"github.com/gvsu-realestate/clubsite/internal/domain"
	"github.com/gvsu-realestate/clubsite/internal/store"
)

// Collection is the document store collection home content lives in.
// It holds two fixed documents: the welcome block and the mission.
const Collection = "home"

const (
	welcomeDocID = "homeContent"
	missionDocID = "ourMission"
)

type welcomeDoc struct {
	WelcomeMessage string             `json:"welcomeMessage"`
	NextMeeting    domain.TitledBlock `json:"nextMeeting"`
}

// UpdateInput holds the mutable home fields. Nil fields are left
// unchanged, so the admin UI can save one section at a time.
type UpdateInput struct {
	WelcomeMessage *string
	NextMeeting    *domain.TitledBlock
	Mission        *domain.TitledBlock
}

// Service implements home content business logic.
type Service struct {
	docs store.DocumentStore
}

// NewService creates a home content service.
func NewService(docs store.DocumentStore) *Service {
	return &Service{docs: docs}
}

// Get assembles the home content from its two documents. Documents
// that were never written come back as empty blocks, never an error,
// so a fresh deployment renders an empty-but-working Home tab.
func (s *Service) Get(ctx context.Context) (*domain.HomeContent, error) {
	var content domain.HomeContent

	var welcome welcomeDoc
	err := s.docs.Get(ctx, Collection, welcomeDocID, &welcome)
	if err != nil && !errors.Is(err, store.ErrNotFound) {
		return nil, fmt.Errorf("loading welcome content: %w", err)
	}
	content.WelcomeMessage = welcome.WelcomeMessage
	content.NextMeeting = welcome.NextMeeting

	var mission domain.TitledBlock
	err = s.docs.Get(ctx, Collection, missionDocID, &mission)
	if err != nil && !errors.Is(err, store.ErrNotFound) {
		return nil, fmt.Errorf("loading mission content: %w", err)
	}
	content.Mission = mission

	return &content, nil
}

// Update merges the given fields into the stored content and returns
// the new state.
func (s *Service) Update(ctx context.Context, in UpdateInput) (*domain.HomeContent, error) {
	current, err := s.Get(ctx)
	if err != nil {
		return nil, err
	}

	if in.WelcomeMessage != nil {
		current.WelcomeMessage = *in.WelcomeMessage
	}
	if in.NextMeeting != nil {
		current.NextMeeting = *in.NextMeeting
	}
	if in.Mission != nil {
		current.Mission = *in.Mission
	}

	if in.WelcomeMessage != nil || in.NextMeeting != nil {
		doc := welcomeDoc{
			WelcomeMessage: current.WelcomeMessage,
			NextMeeting:    current.NextMeeting,
		}
		if err := s.docs.Put(ctx, Collection, welcomeDocID, doc); err != nil {
			return nil, fmt.Errorf("saving welcome content: %w", err)
		}
	}
	if in.Mission != nil {
		if err := s.docs.Put(ctx, Collection, missionDocID, current.Mission); err != nil {
			return nil, fmt.Errorf("saving mission content: %w", err)
		}
	}

	return current, nil
}
