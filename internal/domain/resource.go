package domain

import "time"

// Resource is a downloadable file on the Resources tab. The file itself
// lives in the object store; FileURL is the public URL the frontend links to
// and StorageKey is the object key used for deletion.
type Resource struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	FileURL     string    `json:"fileUrl"`
	StorageKey  string    `json:"storageKey,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
}
