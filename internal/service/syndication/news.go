package syndication

import (
	"context"
	"fmt"
	"html"
	"regexp"
	"strings"
	"time"

	"github.com/mmcdole/gofeed"

	"github.com/gvsu-realestate/clubsite/internal/domain"
)

// NewsFetcher pulls headlines from an external RSS/Atom feed.
type NewsFetcher struct {
	parser   *gofeed.Parser
	feedURL  string
	maxItems int
	timeout  time.Duration
}

// NewNewsFetcher creates a fetcher for the given feed.
func NewNewsFetcher(feedURL string, maxItems int, timeout time.Duration) *NewsFetcher {
	return &NewsFetcher{
		parser:   gofeed.NewParser(),
		feedURL:  feedURL,
		maxItems: maxItems,
		timeout:  timeout,
	}
}

// Fetch downloads and parses the feed, returning at most maxItems
// headlines. Returns an empty slice when no feed is configured.
func (f *NewsFetcher) Fetch(ctx context.Context) ([]domain.NewsItem, error) {
	if f.feedURL == "" {
		return []domain.NewsItem{}, nil
	}

	ctx, cancel := context.WithTimeout(ctx, f.timeout)
	defer cancel()

	feed, err := f.parser.ParseURLWithContext(f.feedURL, ctx)
	if err != nil {
		return nil, fmt.Errorf("fetching news feed: %w", err)
	}

	items := make([]domain.NewsItem, 0, f.maxItems)
	for _, item := range feed.Items {
		if len(items) >= f.maxItems {
			break
		}
		items = append(items, newsItemFromFeed(item))
	}
	return items, nil
}

func newsItemFromFeed(item *gofeed.Item) domain.NewsItem {
	n := domain.NewsItem{
		Title:   item.Title,
		Link:    item.Link,
		Summary: stripHTML(item.Description),
	}
	if item.PublishedParsed != nil {
		n.Published = *item.PublishedParsed
	} else if item.UpdatedParsed != nil {
		n.Published = *item.UpdatedParsed
	}
	return n
}

var tagPattern = regexp.MustCompile(`<[^>]*>`)

func stripHTML(input string) string {
	text := tagPattern.ReplaceAllString(input, "")
	text = html.UnescapeString(text)
	return strings.Join(strings.Fields(text), " ")
}
