package home_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gvsu-realestate/clubsite/internal/domain"
	"github.com/gvsu-realestate/clubsite/internal/service/home"
	"github.com/gvsu-realestate/clubsite/internal/store"
)

func TestGetEmpty(t *testing.T) {
	svc := home.NewService(store.NewMemoryStore())

	content, err := svc.Get(context.Background())
	require.NoError(t, err, "a fresh site has no home docs yet")
	assert.Empty(t, content.WelcomeMessage)
	assert.Empty(t, content.Mission.Title)
}

func TestUpdateThenGet(t *testing.T) {
	svc := home.NewService(store.NewMemoryStore())
	ctx := context.Background()

	welcome := "Welcome to the Real Estate Club!"
	_, err := svc.Update(ctx, home.UpdateInput{
		WelcomeMessage: &welcome,
		NextMeeting: &domain.TitledBlock{
			Title:   "Spring Kickoff",
			Content: "Tuesday 6pm, Seidman 204",
		},
		Mission: &domain.TitledBlock{
			Title:   "Our Mission",
			Content: "Connect students with the real estate industry.",
		},
	})
	require.NoError(t, err)

	content, err := svc.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, welcome, content.WelcomeMessage)
	assert.Equal(t, "Spring Kickoff", content.NextMeeting.Title)
	assert.Equal(t, "Our Mission", content.Mission.Title)
}

func TestUpdatePartial(t *testing.T) {
	svc := home.NewService(store.NewMemoryStore())
	ctx := context.Background()

	welcome := "Original welcome"
	_, err := svc.Update(ctx, home.UpdateInput{
		WelcomeMessage: &welcome,
		Mission:        &domain.TitledBlock{Title: "Mission", Content: "Original mission"},
	})
	require.NoError(t, err)

	// Only the mission changes; the welcome block stays put.
	newMission := domain.TitledBlock{Title: "Mission", Content: "Revised mission"}
	updated, err := svc.Update(ctx, home.UpdateInput{Mission: &newMission})
	require.NoError(t, err)
	assert.Equal(t, "Original welcome", updated.WelcomeMessage)
	assert.Equal(t, "Revised mission", updated.Mission.Content)

	content, err := svc.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Original welcome", content.WelcomeMessage)
	assert.Equal(t, "Revised mission", content.Mission.Content)
}
