package store

import (
	"context"
	"encoding/json"
	"errors"
	"io"
)

// ErrNotFound is returned when a document or object does not exist.
var ErrNotFound = errors.New("not found")

// DocumentStore persists JSON documents grouped into named collections.
// Writes replace the whole document for an id.
type DocumentStore interface {
	// Put stores doc under collection/id, overwriting any existing document.
	Put(ctx context.Context, collection, id string, doc interface{}) error

	// Get loads the document at collection/id into out.
	// Returns ErrNotFound when no document exists.
	Get(ctx context.Context, collection, id string, out interface{}) error

	// List returns the raw JSON of every document in the collection,
	// in no particular order. An empty collection yields an empty slice.
	List(ctx context.Context, collection string) ([]json.RawMessage, error)

	// Delete removes collection/id. Returns ErrNotFound when no
	// document existed at that key.
	Delete(ctx context.Context, collection, id string) error
}

// ObjectStore holds uploaded binaries and serves them by public URL.
type ObjectStore interface {
	// Upload stores body under key and returns the public URL the
	// object is reachable at.
	Upload(ctx context.Context, key, contentType string, body io.Reader) (string, error)

	// Delete removes the object at key. Deleting a missing key is not
	// an error.
	Delete(ctx context.Context, key string) error
}

// UnmarshalAll decodes every raw document in items into a slice of T,
// skipping documents that fail to decode. A malformed document in one
// collection entry should not take down the whole listing.
func UnmarshalAll[T any](items []json.RawMessage) []T {
	out := make([]T, 0, len(items))
	for _, raw := range items {
		var v T
		if err := json.Unmarshal(raw, &v); err != nil {
			continue
		}
		out = append(out, v)
	}
	return out
}
