package resource_test

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gvsu-realestate/clubsite/internal/service/resource"
	"github.com/gvsu-realestate/clubsite/internal/store"
)

func newFixture() (*resource.Service, *store.MemoryObjectStore) {
	objects := store.NewMemoryObjectStore()
	svc := resource.NewService(resource.NewRepository(store.NewMemoryStore()), objects)
	return svc, objects
}

func pdfUpload(name string) resource.Upload {
	return resource.Upload{
		Filename:    name,
		ContentType: "application/pdf",
		Body:        strings.NewReader("%PDF-1.4 fake"),
	}
}

func TestCreateUploadsAndStores(t *testing.T) {
	svc, objects := newFixture()
	ctx := context.Background()

	res, err := svc.Create(ctx, "Club Bylaws", "Current bylaws, ratified 2025.", pdfUpload("bylaws.pdf"))
	require.NoError(t, err)

	assert.NotEmpty(t, res.ID)
	assert.Equal(t, "Club Bylaws", res.Name)
	assert.Contains(t, res.FileURL, "bylaws.pdf")
	assert.WithinDuration(t, time.Now().UTC(), res.CreatedAt, 5*time.Second)

	_, ok := objects.Object(res.StorageKey)
	assert.True(t, ok, "file bytes reached the object store")
}

func TestCreateSanitizesFilename(t *testing.T) {
	svc, _ := newFixture()

	res, err := svc.Create(context.Background(), "Sketchy", "", pdfUpload("../../etc/pass wd.pdf"))
	require.NoError(t, err)
	assert.NotContains(t, res.StorageKey, "..")
	assert.NotContains(t, res.StorageKey, " ")
}

func TestCreateValidation(t *testing.T) {
	svc, _ := newFixture()
	ctx := context.Background()

	_, err := svc.Create(ctx, "", "desc", pdfUpload("f.pdf"))
	assert.ErrorIs(t, err, resource.ErrEmptyName)

	_, err = svc.Create(ctx, "name", "desc", resource.Upload{})
	assert.ErrorIs(t, err, resource.ErrMissingFile)
}

func TestListAllNewestFirst(t *testing.T) {
	svc, _ := newFixture()
	ctx := context.Background()

	first, err := svc.Create(ctx, "Older", "", pdfUpload("a.pdf"))
	require.NoError(t, err)
	time.Sleep(2 * time.Millisecond)
	second, err := svc.Create(ctx, "Newer", "", pdfUpload("b.pdf"))
	require.NoError(t, err)

	all, err := svc.ListAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, second.ID, all[0].ID)
	assert.Equal(t, first.ID, all[1].ID)
}

func TestDeleteByIDRemovesFile(t *testing.T) {
	svc, objects := newFixture()
	ctx := context.Background()

	res, err := svc.Create(ctx, "Doomed", "", pdfUpload("gone.pdf"))
	require.NoError(t, err)

	require.NoError(t, svc.DeleteByID(ctx, res.ID))

	all, err := svc.ListAll(ctx)
	require.NoError(t, err)
	assert.Empty(t, all)

	_, ok := objects.Object(res.StorageKey)
	assert.False(t, ok, "file removed alongside metadata")

	assert.ErrorIs(t, svc.DeleteByID(ctx, res.ID), resource.ErrNotFound)
}
