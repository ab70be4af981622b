package domain

import "time"

// SyndicationOverview is the intro text on the Syndication tab.
type SyndicationOverview struct {
	Text string `json:"text"`
}

// SyndicationDocument is an uploaded study document (deal packets, guides).
// Like Resource, the binary lives in the object store.
type SyndicationDocument struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	FileURL     string    `json:"fileUrl"`
	StorageKey  string    `json:"storageKey,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
}

// SyndicationLink is a recommended watch-through (video) or read-through
// (article) entry. Both kinds share a shape and differ only by collection.
type SyndicationLink struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	URL         string    `json:"url"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"createdAt"`
}

// NewsItem is a headline pulled from the configured external real-estate
// feed. Computed fresh per request, never stored.
type NewsItem struct {
	Title     string    `json:"title"`
	Link      string    `json:"link"`
	Summary   string    `json:"summary,omitempty"`
	Published time.Time `json:"published"`
}
