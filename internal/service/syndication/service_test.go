package syndication_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gvsu-realestate/clubsite/internal/service/syndication"
	"github.com/gvsu-realestate/clubsite/internal/store"
)

func newFixture() (*syndication.Service, *store.MemoryObjectStore) {
	objects := store.NewMemoryObjectStore()
	news := syndication.NewNewsFetcher("", 10, time.Second)
	svc := syndication.NewService(store.NewMemoryStore(), objects, news)
	return svc, objects
}

func TestOverviewRoundTrip(t *testing.T) {
	svc, _ := newFixture()
	ctx := context.Background()

	ov, err := svc.Overview(ctx)
	require.NoError(t, err, "unset overview is empty, not an error")
	assert.Empty(t, ov.Text)

	_, err = svc.SetOverview(ctx, "  Syndication pools investor capital into larger deals.  ")
	require.NoError(t, err)

	ov, err = svc.Overview(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Syndication pools investor capital into larger deals.", ov.Text)
}

func TestDocumentLifecycle(t *testing.T) {
	svc, objects := newFixture()
	ctx := context.Background()

	doc, err := svc.AddDocument(ctx, "Deal Packet", "Sample multifamily deal.", syndication.Upload{
		Filename:    "packet.pdf",
		ContentType: "application/pdf",
		Body:        strings.NewReader("%PDF"),
	})
	require.NoError(t, err)
	assert.Contains(t, doc.FileURL, "packet.pdf")

	docs, err := svc.ListDocuments(ctx)
	require.NoError(t, err)
	require.Len(t, docs, 1)
	assert.Equal(t, "Deal Packet", docs[0].Name)

	require.NoError(t, svc.DeleteDocument(ctx, doc.ID))
	_, ok := objects.Object(doc.StorageKey)
	assert.False(t, ok)

	assert.ErrorIs(t, svc.DeleteDocument(ctx, doc.ID), syndication.ErrNotFound)
}

func TestDocumentValidation(t *testing.T) {
	svc, _ := newFixture()
	ctx := context.Background()

	_, err := svc.AddDocument(ctx, "", "", syndication.Upload{Filename: "f.pdf", Body: strings.NewReader("x")})
	assert.ErrorIs(t, err, syndication.ErrEmptyName)

	_, err = svc.AddDocument(ctx, "Named", "", syndication.Upload{})
	assert.ErrorIs(t, err, syndication.ErrMissingFile)
}

func TestLinksSeparatedByKind(t *testing.T) {
	svc, _ := newFixture()
	ctx := context.Background()

	watch, err := svc.AddLink(ctx, syndication.WatchThrough, "Underwriting 101", "https://youtube.com/watch?v=abc", "45 min walkthrough")
	require.NoError(t, err)
	_, err = svc.AddLink(ctx, syndication.ReadThrough, "Cap Rates Explained", "https://example.com/cap-rates", "")
	require.NoError(t, err)

	watches, err := svc.ListLinks(ctx, syndication.WatchThrough)
	require.NoError(t, err)
	require.Len(t, watches, 1)
	assert.Equal(t, "Underwriting 101", watches[0].Title)

	reads, err := svc.ListLinks(ctx, syndication.ReadThrough)
	require.NoError(t, err)
	require.Len(t, reads, 1)
	assert.Equal(t, "Cap Rates Explained", reads[0].Title)

	// Deleting with the wrong kind does not touch the entry.
	assert.ErrorIs(t, svc.DeleteLink(ctx, syndication.ReadThrough, watch.ID), syndication.ErrNotFound)
	require.NoError(t, svc.DeleteLink(ctx, syndication.WatchThrough, watch.ID))

	watches, err = svc.ListLinks(ctx, syndication.WatchThrough)
	require.NoError(t, err)
	assert.Empty(t, watches)
}

func TestAddLinkValidation(t *testing.T) {
	svc, _ := newFixture()
	ctx := context.Background()

	_, err := svc.AddLink(ctx, syndication.WatchThrough, "", "https://example.com", "")
	assert.ErrorIs(t, err, syndication.ErrEmptyTitle)

	for _, bad := range []string{"", "not a url", "ftp://example.com/file", "javascript:alert(1)"} {
		_, err = svc.AddLink(ctx, syndication.WatchThrough, "Title", bad, "")
		assert.ErrorIs(t, err, syndication.ErrInvalidURL, "url %q", bad)
	}
}

const testRSS = `<?xml version="1.0" encoding="UTF-8"?>
<rss version="2.0"><channel>
<title>RE News</title>
<item><title>Rates drop</title><link>https://news.example.com/1</link>
<description>&lt;p&gt;Mortgage rates &amp;amp; more&lt;/p&gt;</description>
<pubDate>Mon, 02 Feb 2026 10:00:00 GMT</pubDate></item>
<item><title>Second story</title><link>https://news.example.com/2</link></item>
<item><title>Third story</title><link>https://news.example.com/3</link></item>
</channel></rss>`

func TestNewsFetch(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/rss+xml")
		_, _ = w.Write([]byte(testRSS))
	}))
	defer srv.Close()

	fetcher := syndication.NewNewsFetcher(srv.URL, 2, 5*time.Second)
	items, err := fetcher.Fetch(context.Background())
	require.NoError(t, err)

	require.Len(t, items, 2, "capped at maxItems")
	assert.Equal(t, "Rates drop", items[0].Title)
	assert.Equal(t, "https://news.example.com/1", items[0].Link)
	assert.Equal(t, "Mortgage rates & more", items[0].Summary, "summary is plain text")
	assert.Equal(t, 2026, items[0].Published.Year())
}

func TestNewsFetchUnconfigured(t *testing.T) {
	fetcher := syndication.NewNewsFetcher("", 10, time.Second)
	items, err := fetcher.Fetch(context.Background())
	require.NoError(t, err)
	assert.Empty(t, items)
}
