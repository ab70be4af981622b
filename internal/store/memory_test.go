package store

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testDoc struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

func TestMemoryStorePutGet(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()

	err := s.Put(ctx, "resources", "r1", testDoc{ID: "r1", Name: "bylaws"})
	require.NoError(t, err)

	var got testDoc
	err = s.Get(ctx, "resources", "r1", &got)
	require.NoError(t, err)
	assert.Equal(t, "bylaws", got.Name)
}

func TestMemoryStoreGetMissing(t *testing.T) {
	s := NewMemoryStore()

	var got testDoc
	err := s.Get(context.Background(), "resources", "nope", &got)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestMemoryStorePutOverwrites(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()

	require.NoError(t, s.Put(ctx, "resources", "r1", testDoc{ID: "r1", Name: "old"}))
	require.NoError(t, s.Put(ctx, "resources", "r1", testDoc{ID: "r1", Name: "new"}))

	var got testDoc
	require.NoError(t, s.Get(ctx, "resources", "r1", &got))
	assert.Equal(t, "new", got.Name)

	docs, err := s.List(ctx, "resources")
	require.NoError(t, err)
	assert.Len(t, docs, 1)
}

func TestMemoryStoreList(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()

	require.NoError(t, s.Put(ctx, "resources", "r1", testDoc{ID: "r1"}))
	require.NoError(t, s.Put(ctx, "resources", "r2", testDoc{ID: "r2"}))
	require.NoError(t, s.Put(ctx, "members", "m1", testDoc{ID: "m1"}))

	docs, err := s.List(ctx, "resources")
	require.NoError(t, err)
	assert.Len(t, docs, 2)

	empty, err := s.List(ctx, "announcements")
	require.NoError(t, err)
	assert.Empty(t, empty)
}

func TestMemoryStoreDelete(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()

	require.NoError(t, s.Put(ctx, "resources", "r1", testDoc{ID: "r1"}))
	require.NoError(t, s.Delete(ctx, "resources", "r1"))

	var got testDoc
	assert.ErrorIs(t, s.Get(ctx, "resources", "r1", &got), ErrNotFound)
	assert.ErrorIs(t, s.Delete(ctx, "resources", "r1"), ErrNotFound)
}

func TestUnmarshalAllSkipsMalformed(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()

	require.NoError(t, s.Put(ctx, "resources", "good", testDoc{ID: "good"}))
	// A document whose shape does not match still decodes into zero
	// values; only invalid JSON is skipped, which Put cannot produce.
	docs, err := s.List(ctx, "resources")
	require.NoError(t, err)

	out := UnmarshalAll[testDoc](docs)
	assert.Len(t, out, 1)
	assert.Equal(t, "good", out[0].ID)
}

func TestMemoryObjectStore(t *testing.T) {
	s := NewMemoryObjectStore()
	ctx := context.Background()

	url, err := s.Upload(ctx, "resources/r1/bylaws.pdf", "application/pdf", strings.NewReader("pdf-bytes"))
	require.NoError(t, err)
	assert.Contains(t, url, "resources/r1/bylaws.pdf")

	data, ok := s.Object("resources/r1/bylaws.pdf")
	require.True(t, ok)
	assert.Equal(t, "pdf-bytes", string(data))

	require.NoError(t, s.Delete(ctx, "resources/r1/bylaws.pdf"))
	_, ok = s.Object("resources/r1/bylaws.pdf")
	assert.False(t, ok)

	// Deleting again is a no-op.
	assert.NoError(t, s.Delete(ctx, "resources/r1/bylaws.pdf"))
}
