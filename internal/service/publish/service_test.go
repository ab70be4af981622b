package publish_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gvsu-realestate/clubsite/internal/domain"
	"github.com/gvsu-realestate/clubsite/internal/service/announcement"
	"github.com/gvsu-realestate/clubsite/internal/service/publish"
	"github.com/gvsu-realestate/clubsite/internal/service/recipient"
	"github.com/gvsu-realestate/clubsite/internal/store"
)

// fakeMailer records broadcast calls.
type fakeMailer struct {
	mu    sync.Mutex
	calls []broadcastCall
	err   error
}

type broadcastCall struct {
	ann        domain.Announcement
	recipients []string
}

func (f *fakeMailer) SendAnnouncement(_ context.Context, ann domain.Announcement, recipients []string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, broadcastCall{ann: ann, recipients: recipients})
	return f.err
}

func (f *fakeMailer) callCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.calls)
}

func newFixture(m *fakeMailer) (*publish.Service, *recipient.Service) {
	docs := store.NewMemoryStore()
	anns := announcement.NewService(announcement.NewRepository(docs))
	recs := recipient.NewService(recipient.NewRepository(docs))
	return publish.NewService(anns, recs, m), recs
}

func waitNotified(t *testing.T, svc *publish.Service) {
	t.Helper()
	select {
	case <-svc.Notified():
	case <-time.After(5 * time.Second):
		t.Fatal("broadcast goroutine never ran")
	}
}

func TestPublishBroadcastsToSubscribers(t *testing.T) {
	m := &fakeMailer{}
	svc, recs := newFixture(m)
	ctx := context.Background()

	_, err := recs.Subscribe(ctx, "a@example.edu")
	require.NoError(t, err)
	_, err = recs.Subscribe(ctx, "b@example.edu")
	require.NoError(t, err)

	ann, err := svc.Publish(ctx, "Spring Kickoff", "First meeting of the semester.")
	require.NoError(t, err)
	assert.Equal(t, "Spring Kickoff", ann.Title)

	waitNotified(t, svc)

	m.mu.Lock()
	defer m.mu.Unlock()
	require.Len(t, m.calls, 1)
	assert.Equal(t, ann.ID, m.calls[0].ann.ID)
	assert.ElementsMatch(t, []string{"a@example.edu", "b@example.edu"}, m.calls[0].recipients)
}

func TestPublishSkipsBroadcastWithNoSubscribers(t *testing.T) {
	m := &fakeMailer{}
	svc, _ := newFixture(m)

	_, err := svc.Publish(context.Background(), "Quiet Post", "Nobody subscribed yet.")
	require.NoError(t, err)

	waitNotified(t, svc)
	assert.Zero(t, m.callCount())
}

func TestPublishSucceedsWhenBroadcastFails(t *testing.T) {
	m := &fakeMailer{err: errors.New("ses unavailable")}
	svc, recs := newFixture(m)
	ctx := context.Background()

	_, err := recs.Subscribe(ctx, "a@example.edu")
	require.NoError(t, err)

	ann, err := svc.Publish(ctx, "Still Posts", "Email being down is not our problem.")
	require.NoError(t, err, "broadcast failure must not fail the publish")
	assert.NotEmpty(t, ann.ID)

	waitNotified(t, svc)
	assert.Equal(t, 1, m.callCount())
}

func TestPublishValidationSkipsBroadcast(t *testing.T) {
	m := &fakeMailer{}
	svc, _ := newFixture(m)

	_, err := svc.Publish(context.Background(), "", "no title")
	assert.ErrorIs(t, err, announcement.ErrEmptyTitle)
	assert.Zero(t, m.callCount())
}
