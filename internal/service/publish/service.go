package publish

import (
	"context"
	"time"

	"github.com/gvsu-realestate/clubsite/internal/domain"
	"github.com/gvsu-realestate/clubsite/internal/mailer"
	"github.com/gvsu-realestate/clubsite/internal/pkg/logger"
	"github.com/gvsu-realestate/clubsite/internal/service/announcement"
	"github.com/gvsu-realestate/clubsite/internal/service/recipient"
)

// notifyTimeout bounds the background broadcast, which outlives the
// HTTP request that triggered it.
const notifyTimeout = 2 * time.Minute

// Service runs the publish workflow.
type Service struct {
	announcements *announcement.Service
	recipients    *recipient.Service
	mailer        mailer.Mailer

	// notified is signaled after each background broadcast attempt,
	// successful or not. Tests use it to wait for the goroutine.
	notified chan struct{}
}

// NewService creates a publish service.
func NewService(anns *announcement.Service, recs *recipient.Service, m mailer.Mailer) *Service {
	return &Service{
		announcements: anns,
		recipients:    recs,
		mailer:        m,
		notified:      make(chan struct{}, 1),
	}
}

// Publish persists a new announcement and kicks off the subscriber
// broadcast in the background. The returned announcement reflects what
// was stored; broadcast failures are logged, never returned.
func (s *Service) Publish(ctx context.Context, title, content string) (*domain.Announcement, error) {
	ann, err := s.announcements.Create(ctx, title, content)
	if err != nil {
		return nil, err
	}

	// Detach from the request context: the caller's response must not
	// wait on SES, and a canceled request must not abort the broadcast.
	go s.notify(context.Background(), *ann)

	return ann, nil
}

func (s *Service) notify(ctx context.Context, ann domain.Announcement) {
	defer func() {
		select {
		case s.notified <- struct{}{}:
		default:
		}
	}()

	ctx, cancel := context.WithTimeout(ctx, notifyTimeout)
	defer cancel()

	addrs, err := s.recipients.Addresses(ctx)
	if err != nil {
		logger.Error("loading recipient list for broadcast", "title", ann.Title, "error", err.Error())
		return
	}
	if len(addrs) == 0 {
		logger.Info("no subscribers, skipping broadcast", "title", ann.Title)
		return
	}

	if err := s.mailer.SendAnnouncement(ctx, ann, addrs); err != nil {
		logger.Error("broadcasting announcement", "title", ann.Title, "count", len(addrs), "error", err.Error())
	}
}

// Notified exposes the broadcast-attempt signal for tests.
func (s *Service) Notified() <-chan struct{} {
	return s.notified
}
