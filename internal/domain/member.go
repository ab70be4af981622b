package domain

import "time"

// Member is an executive-board profile on the About/Leadership tab.
//
// Position controls display order (ascending). PhotoURL points at the
// original upload in the object store and ThumbnailURL at the scaled-down
// copy generated at upload time.
type Member struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Title        string    `json:"title"`
	Email        string    `json:"email"`
	Description  string    `json:"description"`
	PhotoURL     string    `json:"photoUrl,omitempty"`
	ThumbnailURL string    `json:"thumbnailUrl,omitempty"`
	StorageKey   string    `json:"storageKey,omitempty"`
	Position     int       `json:"position"`
	CreatedAt    time.Time `json:"createdAt"`
}
