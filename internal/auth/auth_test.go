package auth_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gvsu-realestate/clubsite/internal/auth"
	"github.com/gvsu-realestate/clubsite/internal/store"
)

func TestVerifyStoredCredential(t *testing.T) {
	docs := store.NewMemoryStore()
	ctx := context.Background()
	require.NoError(t, docs.Put(ctx, auth.Collection, auth.AccountID, map[string]string{"password": "club-secret"}))

	svc := auth.NewService(docs, "")

	ok, err := svc.Verify(ctx, "club-secret")
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = svc.Verify(ctx, "wrong")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestVerifyOverrideWins(t *testing.T) {
	docs := store.NewMemoryStore()
	ctx := context.Background()
	require.NoError(t, docs.Put(ctx, auth.Collection, auth.AccountID, map[string]string{"password": "stored"}))

	svc := auth.NewService(docs, "override")

	ok, err := svc.Verify(ctx, "override")
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = svc.Verify(ctx, "stored")
	require.NoError(t, err)
	assert.False(t, ok, "stored credential is ignored while the override is set")
}

func TestVerifyNoCredential(t *testing.T) {
	svc := auth.NewService(store.NewMemoryStore(), "")

	_, err := svc.Verify(context.Background(), "anything")
	assert.ErrorIs(t, err, auth.ErrNoCredential)
}
